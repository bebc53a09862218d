package analyzer

// defaultStopWords is the common-words filter from the original explorer plus
// a handful of fillers that dominate sung lyrics. Words shorter than the table
// minimum are listed anyway so the set stands on its own.
var defaultStopWords = []string{
	"i", "you", "the", "a", "and", "to", "it", "me", "my", "we",
	"is", "in", "of", "that", "this",
	"your", "with", "was", "but", "not", "for", "on", "be", "so",
	"all", "just", "like", "don't", "i'm", "it's", "when", "what",
	"they", "she", "he", "her", "his", "him", "are", "were", "will",
	"oh", "ooh", "yeah", "la", "na",
}

// DefaultStopWords returns a copy of the default stop-word set.
func DefaultStopWords() []string {
	out := make([]string, len(defaultStopWords))
	copy(out, defaultStopWords)
	return out
}
