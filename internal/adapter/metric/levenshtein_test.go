package metric

import "testing"

func TestDistance(t *testing.T) {
	tests := []struct {
		a, b string
		want int
	}{
		{"cat", "cat", 0},
		{"kitten", "sitting", 3},
		{"", "test", 4},
		{"test", "", 4},
		{"", "", 0},
		{"flaw", "lawn", 2},
		{"héllo", "hello", 1}, // distance counts runes, not bytes
	}

	for _, tc := range tests {
		if got := Distance(tc.a, tc.b); got != tc.want {
			t.Errorf("Distance(%q, %q) = %d, want %d", tc.a, tc.b, got, tc.want)
		}
	}
}

func TestDistanceSymmetric(t *testing.T) {
	pairs := [][2]string{
		{"kitten", "sitting"},
		{"", "abc"},
		{"Geetha", "Gita"},
	}

	for _, p := range pairs {
		if Distance(p[0], p[1]) != Distance(p[1], p[0]) {
			t.Errorf("Distance(%q, %q) not symmetric", p[0], p[1])
		}
	}
}

func TestNormalizedSimilarity(t *testing.T) {
	if got := NormalizedSimilarity("cat", "cat"); got != 1.0 {
		t.Errorf("expected identical strings to score 1.0, got %f", got)
	}
	if got := NormalizedSimilarity("", ""); got != 1.0 {
		t.Errorf("expected two empty strings to score 1.0, got %f", got)
	}
	if got := NormalizedSimilarity("cat", "bat"); got <= 0.5 {
		t.Errorf("expected cat/bat > 0.5, got %f", got)
	}
	if got := NormalizedSimilarity("cat", "dog"); got >= 0.5 {
		t.Errorf("expected cat/dog < 0.5, got %f", got)
	}
	if got := NormalizedSimilarity("", "test"); got != 0.0 {
		t.Errorf("expected empty vs non-empty to score 0.0, got %f", got)
	}
}
