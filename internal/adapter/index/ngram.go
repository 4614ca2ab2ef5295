package index

// n-gram lengths extracted from every name. Short names still produce the
// grams that fit; there is no boundary padding.
const (
	minGram = 1
	maxGram = 3
)

// ngrams returns every contiguous rune n-gram of s for lengths minGram
// through maxGram, shorter lengths first, each length in left-to-right
// order. The order is what makes vocabulary assignment deterministic.
func ngrams(s string) []string {
	runes := []rune(s)

	var grams []string
	for n := minGram; n <= maxGram; n++ {
		for i := 0; i+n <= len(runes); i++ {
			grams = append(grams, string(runes[i:i+n]))
		}
	}
	return grams
}

// gramCounts returns the term frequency of each n-gram in s.
func gramCounts(s string) map[string]int {
	counts := make(map[string]int)
	for _, g := range ngrams(s) {
		counts[g]++
	}
	return counts
}
