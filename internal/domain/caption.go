package domain

import (
	"strings"
	"time"
)

// Style selects the tone of generated captions and therefore the template set.
type Style string

const (
	StyleEngaging     Style = "engaging"
	StyleFunny        Style = "funny"
	StyleInspiring    Style = "inspiring"
	StyleTrending     Style = "trending"
	StyleStorytelling Style = "storytelling"
)

// Styles lists every known style in display order.
var Styles = []Style{StyleEngaging, StyleFunny, StyleInspiring, StyleTrending, StyleStorytelling}

func (s Style) String() string { return string(s) }

func (s Style) IsValid() bool {
	switch s {
	case StyleEngaging, StyleFunny, StyleInspiring, StyleTrending, StyleStorytelling:
		return true
	}
	return false
}

// ResolveStyle parses s case-insensitively. Unknown values fall back to
// StyleEngaging.
func ResolveStyle(s string) Style {
	style := Style(strings.ToLower(strings.TrimSpace(s)))
	if !style.IsValid() {
		return StyleEngaging
	}
	return style
}

// Niche selects the topic of generated captions and therefore the hashtag set.
type Niche string

const (
	NicheGeneral   Niche = "general"
	NicheFitness   Niche = "fitness"
	NicheBeauty    Niche = "beauty"
	NicheFood      Niche = "food"
	NicheFashion   Niche = "fashion"
	NicheTech      Niche = "tech"
	NicheTravel    Niche = "travel"
	NicheLifestyle Niche = "lifestyle"
)

// Niches lists every known niche in display order.
var Niches = []Niche{
	NicheGeneral, NicheFitness, NicheBeauty, NicheFood,
	NicheFashion, NicheTech, NicheTravel, NicheLifestyle,
}

func (n Niche) String() string { return string(n) }

func (n Niche) IsValid() bool {
	switch n {
	case NicheGeneral, NicheFitness, NicheBeauty, NicheFood,
		NicheFashion, NicheTech, NicheTravel, NicheLifestyle:
		return true
	}
	return false
}

// ResolveNiche parses n case-insensitively. Unknown values fall back to
// NicheGeneral.
func ResolveNiche(n string) Niche {
	niche := Niche(strings.ToLower(strings.TrimSpace(n)))
	if !niche.IsValid() {
		return NicheGeneral
	}
	return niche
}

// Caption is a generated or saved caption candidate.
// SavedAt is nil until the caption is persisted.
type Caption struct {
	ID         int64      `json:"id"`
	Text       string     `json:"text"`
	Style      Style      `json:"style"`
	Hashtags   []string   `json:"hashtags"`
	Engagement int        `json:"engagement"`
	Likes      string     `json:"likes"`
	Niche      Niche      `json:"niche"`
	SavedAt    *time.Time `json:"savedAt,omitempty"`
}

// Clone returns a deep copy so callers can't mutate shared hashtag slices.
func (c Caption) Clone() Caption {
	out := c
	out.Hashtags = append([]string(nil), c.Hashtags...)
	if c.SavedAt != nil {
		t := *c.SavedAt
		out.SavedAt = &t
	}
	return out
}

// IsSaved reports whether the caption carries a saved timestamp.
func (c Caption) IsSaved() bool { return c.SavedAt != nil }

// Matches reports whether the caption contains term (case-insensitive) in its
// text or in any hashtag. An empty term matches everything.
func (c Caption) Matches(term string) bool {
	if term == "" {
		return true
	}
	term = strings.ToLower(term)
	if strings.Contains(strings.ToLower(c.Text), term) {
		return true
	}
	for _, tag := range c.Hashtags {
		if strings.Contains(strings.ToLower(tag), term) {
			return true
		}
	}
	return false
}

// HashtagLine renders the hashtags as a copy-ready line: "#a #b #c".
func (c Caption) HashtagLine() string {
	tags := make([]string, len(c.Hashtags))
	for i, tag := range c.Hashtags {
		tags[i] = FormatHashtag(tag)
	}
	return strings.Join(tags, " ")
}

// FormatHashtag prefixes tag with '#' unless it already has one.
func FormatHashtag(tag string) string {
	if strings.HasPrefix(tag, "#") {
		return tag
	}
	return "#" + tag
}
