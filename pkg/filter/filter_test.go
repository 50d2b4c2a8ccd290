package filter

import (
	"reflect"
	"strings"
	"testing"

	"quicktext/pkg/layer"
)

func TestParseMode(t *testing.T) {
	tests := []struct {
		name    string
		want    FilterMode
		wantErr bool
	}{
		{name: "", want: FilterModeExact},
		{name: "exact", want: FilterModeExact},
		{name: "Contains", want: FilterModeContains},
		{name: "regex", want: FilterModeRegex},
		{name: "fuzzy", want: FilterModeFuzzy},
		{name: "glob", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseMode(tt.name)
			if tt.wantErr {
				if err == nil {
					t.Errorf("ParseMode(%q) expected error, got nil", tt.name)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseMode(%q) unexpected error = %v", tt.name, err)
			}
			if got != tt.want {
				t.Errorf("ParseMode(%q) = %v, want %v", tt.name, got, tt.want)
			}
		})
	}
}

func TestNewStringFilter(t *testing.T) {
	if _, err := NewStringFilter("^Title$", FilterModeRegex); err != nil {
		t.Errorf("NewStringFilter() unexpected error = %v", err)
	}

	_, err := NewStringFilter("[invalid(", FilterModeRegex)
	if err == nil {
		t.Fatal("NewStringFilter() expected error, got nil")
	}
	if !strings.Contains(err.Error(), "invalid regex pattern") {
		t.Errorf("NewStringFilter() error = %v, want containing %q", err, "invalid regex pattern")
	}
}

func TestStringFilter_Match(t *testing.T) {
	tests := []struct {
		name    string
		pattern string
		mode    FilterMode
		input   string
		want    bool
	}{
		{
			name:    "exact match - case insensitive",
			pattern: "Title",
			mode:    FilterModeExact,
			input:   "title",
			want:    true,
		},
		{
			name:    "exact no match",
			pattern: "Title",
			mode:    FilterModeExact,
			input:   "Title copy",
			want:    false,
		},
		{
			name:    "contains match",
			pattern: "button",
			mode:    FilterModeContains,
			input:   "Primary Button / Label",
			want:    true,
		},
		{
			name:    "regex match",
			pattern: `^Card \d+$`,
			mode:    FilterModeRegex,
			input:   "Card 12",
			want:    true,
		},
		{
			name:    "regex no match",
			pattern: `^Card \d+$`,
			mode:    FilterModeRegex,
			input:   "Card twelve",
			want:    false,
		},
		{
			name:    "fuzzy match",
			pattern: "hdr",
			mode:    FilterModeFuzzy,
			input:   "Header",
			want:    true,
		},
		{
			name:    "none matches anything",
			pattern: "",
			mode:    FilterModeNone,
			input:   "whatever",
			want:    true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			filter, err := NewStringFilter(tt.pattern, tt.mode)
			if err != nil {
				t.Fatalf("NewStringFilter() unexpected error = %v", err)
			}
			got := filter.Match(tt.input)
			if got != tt.want {
				t.Errorf("Match(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestFuzzyMatch(t *testing.T) {
	tests := []struct {
		name    string
		pattern string
		text    string
		want    bool
	}{
		{"empty pattern matches everything", "", "anything", true},
		{"empty text with non-empty pattern", "abc", "", false},
		{"case insensitive", "TEST", "test", true},
		{"subsequence match", "btn", "Button", true},
		{"no match - wrong order", "cba", "abc", false},
		{"longer pattern than text", "abcdef", "abc", false},
		{"non-ascii text", "tít", "Título", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FuzzyMatch(tt.pattern, tt.text)
			if got != tt.want {
				t.Errorf("FuzzyMatch(%q, %q) = %v, want %v", tt.pattern, tt.text, got, tt.want)
			}
		})
	}
}

func TestLevenshteinDistance(t *testing.T) {
	tests := []struct {
		s1, s2 string
		want   int
	}{
		{"", "", 0},
		{"", "abc", 3},
		{"abc", "", 3},
		{"kitten", "sitting", 3},
		{"Title", "title", 0},
		{"café", "cafe", 1},
	}

	for _, tt := range tests {
		t.Run(tt.s1+"_"+tt.s2, func(t *testing.T) {
			if got := LevenshteinDistance(tt.s1, tt.s2); got != tt.want {
				t.Errorf("LevenshteinDistance(%q, %q) = %d, want %d", tt.s1, tt.s2, got, tt.want)
			}
		})
	}
}

func TestSimilar(t *testing.T) {
	candidates := []string{"title-1", "title-2", "subtitle", "footer"}

	got := Similar("title-3", candidates, 0.6, 2)
	want := []string{"title-1", "title-2"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Similar() = %v, want %v", got, want)
	}

	if got := Similar("zzz", candidates, 0.6, 2); len(got) != 0 {
		t.Errorf("Similar() with no close candidates = %v, want empty", got)
	}
}

func TestLayerFilter_MatchesLayer(t *testing.T) {
	name, err := NewStringFilter("label", FilterModeContains)
	if err != nil {
		t.Fatalf("NewStringFilter() unexpected error = %v", err)
	}

	text := &layer.Text{Meta: layer.Meta{ID: "t1", Name: "Button Label", Type: layer.TypeText}}
	inst := &layer.Instance{Meta: layer.Meta{ID: "i1", Name: "Label Chip", Type: layer.TypeSymbolInstance}}
	group := &layer.Group{Meta: layer.Meta{ID: "g1", Name: "Header", Type: layer.TypeGroup}}

	tests := []struct {
		name   string
		filter LayerFilter
		node   layer.Node
		want   bool
	}{
		{"name match", LayerFilter{Name: name}, text, true},
		{"name no match", LayerFilter{Name: name}, group, false},
		{"type restricts", LayerFilter{Name: name, Types: []string{"Text"}}, inst, false},
		{"type case insensitive", LayerFilter{Types: []string{"symbolinstance"}}, inst, true},
		{"empty filter matches all", LayerFilter{}, group, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.filter.MatchesLayer(tt.node); got != tt.want {
				t.Errorf("MatchesLayer(%s) = %v, want %v", tt.node.Info().ID, got, tt.want)
			}
		})
	}
}
