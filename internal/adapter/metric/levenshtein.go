package metric

// Distance returns the Levenshtein edit distance between a and b: the minimum
// number of single-rune insertions, deletions, and substitutions needed to
// turn one into the other. Uses a rolling row so auxiliary space is
// O(min(len(a), len(b))).
func Distance(a, b string) int {
	ar := []rune(a)
	br := []rune(b)

	// Keep the shorter string as the row dimension.
	if len(ar) < len(br) {
		ar, br = br, ar
	}

	if len(br) == 0 {
		return len(ar)
	}

	prev := make([]int, len(br)+1)
	curr := make([]int, len(br)+1)
	for j := range prev {
		prev[j] = j
	}

	for i, ca := range ar {
		curr[0] = i + 1
		for j, cb := range br {
			cost := 0
			if ca != cb {
				cost = 1
			}
			curr[j+1] = min3(
				prev[j+1]+1,  // deletion
				curr[j]+1,    // insertion
				prev[j]+cost, // substitution
			)
		}
		prev, curr = curr, prev
	}

	return prev[len(br)]
}

// NormalizedSimilarity maps edit distance into [0, 1]: identical strings
// score 1.0, completely different strings of equal length score 0.0. Two
// empty strings are identical, so they score 1.0.
func NormalizedSimilarity(a, b string) float64 {
	maxLen := len([]rune(a))
	if n := len([]rune(b)); n > maxLen {
		maxLen = n
	}
	if maxLen == 0 {
		return 1.0
	}
	return 1.0 - float64(Distance(a, b))/float64(maxLen)
}

func min3(a, b, c int) int {
	if b < a {
		a = b
	}
	if c < a {
		a = c
	}
	return a
}
