package lexicon

// EmojiBuckets partitions the emoji that feed the emoji feature.
type EmojiBuckets struct {
	Aggressive []string
	Stressed   []string
	Positive   []string
	Sarcastic  []string
}

var emojiBuckets = EmojiBuckets{
	Aggressive: []string{"😡", "🤬", "😤", "💢", "👿", "😠", "🖕", "💩"},
	Stressed:   []string{"😰", "😱", "🤯", "😵", "🔥", "⚡", "💥", "🚨"},
	Positive:   []string{"😊", "😄", "👍", "✅", "🎉", "💪", "❤", "👏", "🥰", "😍"},
	Sarcastic:  []string{"🙄", "🤡", "😏", "🤷", "🤦"},
}

// EmojiMood is an emoji replaced by an English mood token during normalization.
type EmojiMood struct {
	Emoji string
	Token string
}

// Mood tokens are kept out of the keyword tables so a substituted emoji never
// counts twice.
var emojiMoods = []EmojiMood{
	{"😡", "angry"},
	{"😠", "angry"},
	{"😤", "frustrated"},
	{"😢", "sad"},
	{"😭", "very sad"},
	{"😂", "laughing"},
	{"😊", "smiling"},
	{"😍", "adoring"},
	{"🤔", "thinking"},
	{"😬", "awkward"},
	{"🙄", "sarcastic"},
	{"😱", "shocked"},
	{"😨", "frightened"},
	{"🤬", "furious"},
	{"😴", "tired"},
	{"🤯", "mind blown"},
}
