package cmd

import (
	"quicktext/pkg/notify"

	"github.com/spf13/cobra"
)

type CommandBuilder struct {
	cmd       *cobra.Command
	selection *selectionOptions
}

func NewCommand(name, short, long string) *CommandBuilder {
	return &CommandBuilder{
		cmd: &cobra.Command{
			Use:   name,
			Short: short,
			Long:  long,
			Args:  cobra.NoArgs,
		},
	}
}

func (b *CommandBuilder) WithExample(example string) *CommandBuilder {
	b.cmd.Example = example
	return b
}

// WithSelection adds the document and selection flags.
func (b *CommandBuilder) WithSelection() *CommandBuilder {
	b.selection = &selectionOptions{}
	b.selection.register(b.cmd)
	return b
}

// WithSession runs fn against an opened Session, closing it afterwards.
func (b *CommandBuilder) WithSession(fn func(cmd *cobra.Command, s *Session) error) *CommandBuilder {
	b.cmd.RunE = func(cmd *cobra.Command, args []string) error {
		s, err := openSession(b.selection)
		if err != nil {
			return err
		}
		defer s.Close()
		s.Out.SetWriter(cmd.OutOrStdout())
		if t, ok := s.Notifier.(*notify.Terminal); ok {
			t.SetWriter(cmd.OutOrStdout())
		}
		return fn(cmd, s)
	}
	return b
}

func (b *CommandBuilder) Build() *cobra.Command {
	return b.cmd
}
