package metric

import "strings"

// Ratio returns the Ratcliff/Obershelp similarity of a and b in [0, 1]:
// twice the total length of matching blocks over the combined length.
// Comparison is case-insensitive. Ratio(s, s) is always 1.0, including for
// two empty strings.
func Ratio(a, b string) float64 {
	ar := []rune(strings.ToLower(a))
	br := []rune(strings.ToLower(b))

	total := len(ar) + len(br)
	if total == 0 {
		return 1.0
	}

	return 2.0 * float64(matchingBlocks(ar, br)) / float64(total)
}

// matchingBlocks returns the total length of matched runes: the longest
// common contiguous block, plus whatever matches recursively in the pieces
// to its left and right.
func matchingBlocks(a, b []rune) int {
	ai, bi, size := longestBlock(a, b)
	if size == 0 {
		return 0
	}
	return size +
		matchingBlocks(a[:ai], b[:bi]) +
		matchingBlocks(a[ai+size:], b[bi+size:])
}

// longestBlock finds the longest common contiguous block of a and b,
// returning its start in each and its length. The leftmost longest block
// wins ties. Uses a rolling row of common-suffix lengths.
func longestBlock(a, b []rune) (ai, bi, size int) {
	if len(a) == 0 || len(b) == 0 {
		return 0, 0, 0
	}

	prev := make([]int, len(b)+1)
	curr := make([]int, len(b)+1)

	for i := range a {
		curr[0] = 0
		for j := range b {
			if a[i] == b[j] {
				curr[j+1] = prev[j] + 1
				if curr[j+1] > size {
					size = curr[j+1]
					ai = i + 1 - size
					bi = j + 1 - size
				}
			} else {
				curr[j+1] = 0
			}
		}
		prev, curr = curr, prev
	}

	return ai, bi, size
}
