package generator

import "github.com/heartmarshall/captionkit-backend/internal/domain"

// Placeholder is replaced with the user's input in every template.
const Placeholder = "{input}"

// creatorTag is appended to every generated caption after the niche tags.
const creatorTag = "creator"

// nicheTagCount is how many niche hashtags lead each caption's hashtag list.
const nicheTagCount = 3

var templatesByStyle = map[domain.Style][]string{
	domain.StyleEngaging: {
		"POV: {input} and it's absolutely mind-blowing! 🤯 Who else can relate?",
		"Tell me you {input} without telling me you {input}... I'll go first! ✨",
		"The way I {input} hits different every time 💫 Am I the only one?",
		"When you {input} and realize you're living your best life 🌟",
	},
	domain.StyleFunny: {
		"Me trying to {input} vs. reality 😭 Why is this so accurate?",
		"Nobody: \nAbsolutely nobody: \nMe: *{input}* 🤡",
		"The audacity I have to {input} like I know what I'm doing 💀",
		"Plot twist: I actually don't know how to {input} properly 😂",
	},
	domain.StyleInspiring: {
		"Your reminder that {input} is possible! ✨ Keep going, you've got this!",
		"Started from the bottom, now we {input} 💪 Progress over perfection!",
		"Daily affirmation: I can {input} and I will succeed! 🌟",
		"Proof that consistency with {input} pays off! What's your why? 💫",
	},
	domain.StyleTrending: {
		"This {input} trend but make it ✨aesthetic✨",
		"Doing the {input} challenge because everyone else is doing it 👀",
		"Rate my {input} from 1-10 in the comments! No cap 🧢",
		"This {input} hits different when you add this one thing...",
	},
	domain.StyleStorytelling: {
		"Chapter 1: I decided to {input}. Chapter 2: Everything changed...",
		"The story of how {input} completely transformed my perspective 📖",
		"Once upon a time I {input}, and here's what happened next...",
		"Plot twist: {input} wasn't what I expected, but it was exactly what I needed ✨",
	},
}

var hashtagsByNiche = map[domain.Niche][]string{
	domain.NicheGeneral:   {"fyp", "viral", "trending", "foryou", "content"},
	domain.NicheFitness:   {"fitness", "workout", "gym", "health", "motivation"},
	domain.NicheBeauty:    {"beauty", "makeup", "skincare", "glowup", "selfcare"},
	domain.NicheFood:      {"food", "recipe", "cooking", "yummy", "foodie"},
	domain.NicheFashion:   {"fashion", "ootd", "style", "outfit", "trendy"},
	domain.NicheTech:      {"tech", "gadgets", "innovation", "techtok", "future"},
	domain.NicheTravel:    {"travel", "adventure", "wanderlust", "explore", "vacation"},
	domain.NicheLifestyle: {"lifestyle", "daily", "vibes", "aesthetic", "mindset"},
}

// Templates returns the template set for style, falling back to the engaging
// set for unknown styles. The returned slice must not be modified.
func Templates(style domain.Style) []string {
	if tpl, ok := templatesByStyle[style]; ok {
		return tpl
	}
	return templatesByStyle[domain.StyleEngaging]
}

// NicheHashtags returns the hashtag pool for niche, falling back to general.
// The returned slice must not be modified.
func NicheHashtags(niche domain.Niche) []string {
	if tags, ok := hashtagsByNiche[niche]; ok {
		return tags
	}
	return hashtagsByNiche[domain.NicheGeneral]
}

// styleTag is the trailing hashtag for a style; trending captions use "viral".
func styleTag(style domain.Style) string {
	if style == domain.StyleTrending {
		return "viral"
	}
	return style.String()
}

// buildHashtags returns nicheTagCount niche tags, the creator tag and the style tag.
func buildHashtags(style domain.Style, niche domain.Niche) []string {
	pool := NicheHashtags(niche)
	tags := make([]string, 0, nicheTagCount+2)
	tags = append(tags, pool[:nicheTagCount]...)
	tags = append(tags, creatorTag, styleTag(style))
	return tags
}
