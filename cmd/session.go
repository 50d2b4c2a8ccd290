package cmd

import (
	"quicktext/pkg/config"
	"quicktext/pkg/document"
	"quicktext/pkg/errors"
	"quicktext/pkg/filter"
	"quicktext/pkg/logger"
	"quicktext/pkg/notify"
	"quicktext/pkg/quicktext"
	"quicktext/pkg/settings"

	"github.com/spf13/cobra"
)

// Session bundles the services a command invocation works against.
type Session struct {
	Config   *config.Config
	Store    settings.Store
	Doc      *document.Document
	DocPath  string
	Notifier quicktext.Notifier
	Out      *OutputWriter
}

func (s *Session) Close() {
	if s.Store == nil {
		return
	}
	if err := s.Store.Close(); err != nil {
		logger.Warn().Err(err).Msg("failed to close settings store")
	}
}

// selectionOptions are the flags shared by commands that read a selection.
type selectionOptions struct {
	docPath   string
	ids       []string
	match     string
	matchMode string
	types     []string
}

func (o *selectionOptions) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&o.docPath, "doc", "", "Document file (YAML or JSON); defaults to config document.path")
	cmd.Flags().StringSliceVar(&o.ids, "select", nil, "Layer ids to select, replacing the document's saved selection")
	cmd.Flags().StringVar(&o.match, "match", "", "Select layers whose name matches this pattern")
	cmd.Flags().StringVar(&o.matchMode, "match-mode", "exact", "Name matching mode (exact, contains, regex, fuzzy)")
	cmd.Flags().StringSliceVar(&o.types, "type", nil, "Restrict --match to these layer types")
}

func loadConfig() (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	if storePathFlag != "" {
		cfg.Store.Driver = config.StoreDriverSQLite
		cfg.Store.Path = storePathFlag
	}
	return cfg, nil
}

func openStore(cfg *config.Config) (settings.Store, error) {
	switch cfg.Store.Driver {
	case config.StoreDriverMemory:
		return settings.NewMemoryStore(), nil
	default:
		store, err := settings.NewSQLiteStore(cfg.Store.Path)
		if err != nil {
			return nil, errors.NewWithAll(errors.ExitCodeStore, errors.ErrMsgStoreOpen, err,
				"Check store.path in the config file or pass --store.")
		}
		return store, nil
	}
}

// openSession loads config, the settings store and, when opts is non-nil, the
// document with the requested selection applied.
func openSession(opts *selectionOptions) (*Session, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}

	store, err := openStore(cfg)
	if err != nil {
		return nil, err
	}

	out := NewOutputWriter(outputFormat)
	s := &Session{
		Config: cfg,
		Store:  store,
		Out:    out,
	}
	if out.IsStructured() {
		s.Notifier = notify.Discard{}
	} else {
		s.Notifier = notify.NewTerminal()
	}

	if opts == nil {
		return s, nil
	}

	if err := s.loadDocument(opts); err != nil {
		s.Close()
		return nil, err
	}
	return s, nil
}

func (s *Session) loadDocument(opts *selectionOptions) error {
	path := opts.docPath
	if path == "" {
		path = s.Config.Document.Path
	}
	if path == "" {
		return errors.ConfigError("no document specified. Pass --doc, set document.path in the config file, or set QUICKTEXT_DOCUMENT")
	}

	doc, err := document.Load(path)
	if err != nil {
		return err
	}
	s.Doc = doc
	s.DocPath = path
	if n := doc.AssignedIDs(); n > 0 {
		logger.Debug().Str("path", path).Int("layers", n).Msg("derived ids for layers without one")
	}

	if len(opts.ids) > 0 && opts.match != "" {
		return errors.ValidationError("--select and --match cannot be used together")
	}

	switch {
	case len(opts.ids) > 0:
		if err := doc.Select(opts.ids); err != nil {
			return err
		}
	case opts.match != "":
		mode, err := filter.ParseMode(opts.matchMode)
		if err != nil {
			return errors.ValidationError(err.Error())
		}
		name, err := filter.NewStringFilter(opts.match, mode)
		if err != nil {
			return errors.ValidationError(err.Error())
		}
		n := doc.SelectMatching(&filter.LayerFilter{Name: name, Types: opts.types})
		logger.Debug().Str("pattern", opts.match).Int("selected", n).Msg("selected layers by name")
	}

	return nil
}
