package metric

// Fixed blend weights. Block matching tolerates reordering and transposed
// typos, so it carries more weight; edit distance still penalizes large
// rewrites.
const (
	sequenceWeight    = 0.6
	levenshteinWeight = 0.4
)

// Combined blends the sequence ratio and the normalized edit-distance
// similarity into a single score in [0, 1].
func Combined(query, name string) float64 {
	return sequenceWeight*Ratio(query, name) +
		levenshteinWeight*NormalizedSimilarity(query, name)
}
