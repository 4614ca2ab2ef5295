package domain

import "testing"

func TestParseMethod(t *testing.T) {
	tests := []struct {
		tag  string
		want Method
		ok   bool
	}{
		{"combined", MethodCombined, true},
		{"sequence", MethodSequence, true},
		{"levenshtein", MethodLevenshtein, true},
		{"tfidf", MethodTFIDF, true},
		{"", MethodCombined, false},
		{"soundex", MethodCombined, false},
		{"TFIDF", MethodCombined, false}, // tags are case-sensitive
	}

	for _, tc := range tests {
		got, ok := ParseMethod(tc.tag)
		if got != tc.want || ok != tc.ok {
			t.Errorf("ParseMethod(%q) = (%s, %v), want (%s, %v)", tc.tag, got, ok, tc.want, tc.ok)
		}
	}
}
