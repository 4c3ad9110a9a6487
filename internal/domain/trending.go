package domain

// Difficulty estimates how hard it is to rank under a hashtag.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "Easy"
	DifficultyMedium Difficulty = "Medium"
	DifficultyHard   Difficulty = "Hard"
)

func (d Difficulty) String() string { return string(d) }

// TrendingHashtag is a row of the static trending dataset.
type TrendingHashtag struct {
	Hashtag    string     `json:"hashtag"`
	Posts      string     `json:"posts"`
	Growth     string     `json:"growth"`
	Category   Niche      `json:"category"`
	Difficulty Difficulty `json:"difficulty"`
}

// HashtagGroup is one column of per-niche suggestions (Trending, Popular, Niche).
type HashtagGroup struct {
	Name     string   `json:"name"`
	Hashtags []string `json:"hashtags"`
}
