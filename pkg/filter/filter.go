package filter

import (
	"fmt"
	"regexp"
	"sort"
	"strings"
	"unicode"

	"quicktext/pkg/layer"
)

type FilterMode int

const (
	FilterModeNone FilterMode = iota
	FilterModeExact
	FilterModeContains
	FilterModeRegex
	FilterModeFuzzy
)

// ModeNames lists the accepted --match-mode values.
var ModeNames = []string{"exact", "contains", "regex", "fuzzy"}

// ParseMode maps a --match-mode value to a FilterMode.
func ParseMode(name string) (FilterMode, error) {
	switch strings.ToLower(name) {
	case "", "exact":
		return FilterModeExact, nil
	case "contains":
		return FilterModeContains, nil
	case "regex":
		return FilterModeRegex, nil
	case "fuzzy":
		return FilterModeFuzzy, nil
	default:
		return FilterModeNone, fmt.Errorf("unknown match mode '%s' (expected one of %s)", name, strings.Join(ModeNames, ", "))
	}
}

type StringFilter struct {
	Pattern string
	Mode    FilterMode
	regex   *regexp.Regexp
}

func NewStringFilter(pattern string, mode FilterMode) (*StringFilter, error) {
	f := &StringFilter{
		Pattern: pattern,
		Mode:    mode,
	}

	if mode == FilterModeRegex {
		re, err := regexp.Compile(pattern)
		if err != nil {
			return nil, fmt.Errorf("invalid regex pattern '%s': %w", pattern, err)
		}
		f.regex = re
	}

	return f, nil
}

func (f *StringFilter) Match(s string) bool {
	switch f.Mode {
	case FilterModeNone:
		return true
	case FilterModeExact:
		return strings.EqualFold(s, f.Pattern)
	case FilterModeContains:
		return strings.Contains(strings.ToLower(s), strings.ToLower(f.Pattern))
	case FilterModeRegex:
		return f.regex != nil && f.regex.MatchString(s)
	case FilterModeFuzzy:
		return FuzzyMatch(f.Pattern, s)
	default:
		return true
	}
}

// FuzzyMatch reports whether every character of pattern appears in text in
// order, ignoring case.
func FuzzyMatch(pattern, text string) bool {
	if pattern == "" {
		return true
	}
	if text == "" {
		return false
	}

	p := []rune(strings.ToLower(pattern))
	t := []rune(strings.ToLower(text))

	i := 0
	for _, r := range t {
		if r == p[i] {
			i++
			if i == len(p) {
				return true
			}
		}
	}
	return false
}

func LevenshteinDistance(s1, s2 string) int {
	r1, r2 := []rune(s1), []rune(s2)
	if len(r1) == 0 {
		return len(r2)
	}
	if len(r2) == 0 {
		return len(r1)
	}

	previousRow := make([]int, len(r2)+1)
	currentRow := make([]int, len(r2)+1)

	for i := 0; i <= len(r2); i++ {
		previousRow[i] = i
	}

	for i := 0; i < len(r1); i++ {
		currentRow[0] = i + 1

		for j := 0; j < len(r2); j++ {
			cost := 1
			if unicode.ToLower(r1[i]) == unicode.ToLower(r2[j]) {
				cost = 0
			}

			deletion := currentRow[j] + 1
			insertion := previousRow[j+1] + 1
			substitution := previousRow[j] + cost

			currentRow[j+1] = min(deletion, insertion, substitution)
		}

		previousRow, currentRow = currentRow, previousRow
	}

	return previousRow[len(r2)]
}

// Similar returns up to limit candidates closest to target by edit distance,
// keeping only those at least threshold similar (0..1).
func Similar(target string, candidates []string, threshold float64, limit int) []string {
	type scored struct {
		value string
		score float64
	}

	var matches []scored
	for _, c := range candidates {
		maxLen := max(len([]rune(target)), len([]rune(c)))
		if maxLen == 0 {
			continue
		}
		score := 1.0 - float64(LevenshteinDistance(target, c))/float64(maxLen)
		if score >= threshold {
			matches = append(matches, scored{c, score})
		}
	}

	sort.SliceStable(matches, func(i, j int) bool { return matches[i].score > matches[j].score })

	var result []string
	for i := 0; i < len(matches) && i < limit; i++ {
		result = append(result, matches[i].value)
	}
	return result
}

// LayerFilter selects layers by name and, optionally, host type.
type LayerFilter struct {
	Name  *StringFilter
	Types []string
}

func (f *LayerFilter) MatchesLayer(n layer.Node) bool {
	meta := n.Info()

	if len(f.Types) > 0 {
		found := false
		for _, t := range f.Types {
			if strings.EqualFold(t, meta.Type) {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}

	if f.Name != nil && !f.Name.Match(meta.Name) {
		return false
	}

	return true
}
