package domain

import "strings"

// StyleFilterAll disables the style predicate of SavedFilter.
const StyleFilterAll = "all"

// SavedFilter narrows the saved-captions list. Both predicates must hold.
type SavedFilter struct {
	// Search is matched case-insensitively against text and hashtags.
	Search string
	// Style is "all", empty, or one of the Style values.
	Style string
}

// Match reports whether c satisfies the filter.
func (f SavedFilter) Match(c Caption) bool {
	style := strings.ToLower(strings.TrimSpace(f.Style))
	if style != "" && style != StyleFilterAll && Style(style) != c.Style {
		return false
	}
	return c.Matches(f.Search)
}
