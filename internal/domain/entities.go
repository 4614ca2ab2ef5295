package domain

// Method selects the similarity measure used to rank corpus entries.
type Method string

const (
	MethodCombined    Method = "combined"
	MethodSequence    Method = "sequence"
	MethodLevenshtein Method = "levenshtein"
	MethodTFIDF       Method = "tfidf"
)

// ParseMethod maps a method tag to its Method. Unknown tags resolve to
// MethodCombined with ok=false so callers can tell a typo from a real
// selection before the engine silently falls back.
func ParseMethod(s string) (m Method, ok bool) {
	switch Method(s) {
	case MethodCombined, MethodSequence, MethodLevenshtein, MethodTFIDF:
		return Method(s), true
	default:
		return MethodCombined, false
	}
}

// MatchResult is one scored corpus entry. Scores are metric-specific but
// always non-negative; zero means no similarity.
type MatchResult struct {
	Name  string  `json:"name"`
	Score float64 `json:"score"`
}

// QueryResult is the outcome of ranking the corpus against a query.
// Best is nil when the corpus is empty or nothing scored above zero.
type QueryResult struct {
	Query   string        `json:"query"`
	Method  Method        `json:"method"`
	Best    *MatchResult  `json:"best_match,omitempty"`
	Matches []MatchResult `json:"matches"`
}

// Stats summarizes the engine's current state.
type Stats struct {
	TotalNames     int `json:"total_names"`
	VocabularySize int `json:"vocabulary_size"`
}
