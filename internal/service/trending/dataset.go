package trending

import "github.com/heartmarshall/captionkit-backend/internal/domain"

// CategoryAll disables the category filter.
const CategoryAll = "all"

// categories lists the filter values offered by the trending view.
var categories = []string{
	CategoryAll,
	domain.NicheGeneral.String(),
	domain.NicheFitness.String(),
	domain.NicheBeauty.String(),
	domain.NicheFood.String(),
	domain.NicheFashion.String(),
}

var hashtags = []domain.TrendingHashtag{
	{Hashtag: "fyp", Posts: "2.1B", Growth: "+15%", Category: domain.NicheGeneral, Difficulty: domain.DifficultyHard},
	{Hashtag: "viral", Posts: "1.8B", Growth: "+12%", Category: domain.NicheGeneral, Difficulty: domain.DifficultyHard},
	{Hashtag: "gymtok", Posts: "890M", Growth: "+25%", Category: domain.NicheFitness, Difficulty: domain.DifficultyMedium},
	{Hashtag: "beautytok", Posts: "756M", Growth: "+18%", Category: domain.NicheBeauty, Difficulty: domain.DifficultyMedium},
	{Hashtag: "foodtok", Posts: "623M", Growth: "+22%", Category: domain.NicheFood, Difficulty: domain.DifficultyMedium},
	{Hashtag: "fashiontok", Posts: "445M", Growth: "+20%", Category: domain.NicheFashion, Difficulty: domain.DifficultyMedium},
	{Hashtag: "workoutmotivation", Posts: "234M", Growth: "+30%", Category: domain.NicheFitness, Difficulty: domain.DifficultyEasy},
	{Hashtag: "skincareroutine", Posts: "198M", Growth: "+28%", Category: domain.NicheBeauty, Difficulty: domain.DifficultyEasy},
	{Hashtag: "recipeoftheday", Posts: "167M", Growth: "+35%", Category: domain.NicheFood, Difficulty: domain.DifficultyEasy},
	{Hashtag: "ootdinspo", Posts: "145M", Growth: "+32%", Category: domain.NicheFashion, Difficulty: domain.DifficultyEasy},
}

// Suggestion group names, in display order.
const (
	GroupTrending = "Trending"
	GroupPopular  = "Popular"
	GroupNiche    = "Niche"
)

var suggestions = map[domain.Niche][3][]string{
	domain.NicheGeneral: {
		{"fyp", "viral", "foryou", "trending", "explore"},
		{"love", "life", "happy", "fun", "mood"},
		{"content", "creator", "daily", "vibes", "aesthetic"},
	},
	domain.NicheFitness: {
		{"gymtok", "fitnessmotivation", "workoutvideos", "fitfam", "gains"},
		{"gym", "workout", "fitness", "health", "strong"},
		{"homeworkout", "cardio", "strength", "bodybuilding", "fitlife"},
	},
	domain.NicheBeauty: {
		{"beautytok", "makeuptutorial", "skincareroutine", "glowup", "beautyhacks"},
		{"makeup", "skincare", "beauty", "selfcare", "glam"},
		{"makeover", "beautytips", "skincaretips", "cosmetics", "beautyreview"},
	},
	domain.NicheFood: {
		{"foodtok", "recipe", "cooking", "foodie", "yummy"},
		{"food", "delicious", "tasty", "hungry", "eat"},
		{"homecooking", "baking", "healthy", "dessert", "foodprep"},
	},
	domain.NicheFashion: {
		{"fashiontok", "ootd", "style", "outfit", "fashion"},
		{"clothes", "styling", "look", "trend", "wear"},
		{"vintage", "streetstyle", "fashionista", "designer", "thrift"},
	},
}
