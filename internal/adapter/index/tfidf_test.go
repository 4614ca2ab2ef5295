package index

import (
	"errors"
	"math"
	"testing"
)

func TestNGrams(t *testing.T) {
	got := ngrams("jon")
	want := []string{"j", "o", "n", "jo", "on", "jon"}
	if len(got) != len(want) {
		t.Fatalf("ngrams(jon) = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("gram %d = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestNGramsShortStrings(t *testing.T) {
	if got := ngrams(""); len(got) != 0 {
		t.Errorf("expected no grams for empty string, got %v", got)
	}
	// A single rune yields only its 1-gram; no padding is applied.
	if got := ngrams("a"); len(got) != 1 || got[0] != "a" {
		t.Errorf("ngrams(a) = %v, want [a]", got)
	}
}

func TestBuildAndSearch(t *testing.T) {
	names := []string{"John", "Jon", "Johny"}

	ix, err := Build(names)
	if err != nil {
		t.Fatalf("unexpected build error: %v", err)
	}

	scores, err := ix.Search("Jon")
	if err != nil {
		t.Fatalf("unexpected search error: %v", err)
	}
	if len(scores) != len(names) {
		t.Fatalf("expected %d scores, got %d", len(names), len(scores))
	}

	// The exact entry shares every gram with the query.
	if math.Abs(scores[1]-1.0) > 1e-9 {
		t.Errorf("expected self-similarity ~1.0 for Jon, got %f", scores[1])
	}
	for i, s := range scores {
		if s < 0 {
			t.Errorf("score %d is negative: %f", i, s)
		}
	}
	if scores[0] <= 0 {
		t.Errorf("expected John to share grams with Jon, got %f", scores[0])
	}
}

func TestSearchOutOfVocabulary(t *testing.T) {
	ix, err := Build([]string{"John", "Jon"})
	if err != nil {
		t.Fatal(err)
	}

	// Grams absent from the vocabulary are dropped, not errors.
	scores, err := ix.Search("qqq")
	if err != nil {
		t.Fatalf("unexpected error for out-of-vocabulary query: %v", err)
	}
	for i, s := range scores {
		if s != 0 {
			t.Errorf("expected zero score for disjoint query, got %f at %d", s, i)
		}
	}
}

func TestSearchEmptyQuery(t *testing.T) {
	ix, err := Build([]string{"John"})
	if err != nil {
		t.Fatal(err)
	}

	scores, err := ix.Search("")
	if err != nil {
		t.Fatalf("unexpected error for empty query: %v", err)
	}
	for _, s := range scores {
		if s != 0 {
			t.Errorf("expected zero scores for empty query, got %f", s)
		}
	}
}

func TestBuildEmptyVocabulary(t *testing.T) {
	if _, err := Build(nil); !errors.Is(err, ErrEmptyVocabulary) {
		t.Errorf("expected ErrEmptyVocabulary for empty corpus, got %v", err)
	}
	if _, err := Build([]string{"", ""}); !errors.Is(err, ErrEmptyVocabulary) {
		t.Errorf("expected ErrEmptyVocabulary for gram-less corpus, got %v", err)
	}
}

func TestSearchNotBuilt(t *testing.T) {
	var ix *Index
	if _, err := ix.Search("Jon"); !errors.Is(err, ErrNotBuilt) {
		t.Errorf("expected ErrNotBuilt on nil index, got %v", err)
	}
	if ix.VocabularySize() != 0 {
		t.Error("expected zero vocabulary size on nil index")
	}
}

func TestVocabularyFirstSeenOrder(t *testing.T) {
	ix, err := Build([]string{"jon", "jo"})
	if err != nil {
		t.Fatal(err)
	}

	// Columns follow gram extraction order across the corpus: all of the
	// first name's grams before any new gram of the second.
	want := map[string]int{"j": 0, "o": 1, "n": 2, "jo": 3, "on": 4, "jon": 5}
	if ix.VocabularySize() != len(want) {
		t.Fatalf("expected %d columns, got %d", len(want), ix.VocabularySize())
	}
	for g, col := range want {
		if ix.vocab[g] != col {
			t.Errorf("gram %q assigned column %d, want %d", g, ix.vocab[g], col)
		}
	}
}

func TestVocabularyDeterministic(t *testing.T) {
	names := []string{"Geetha", "Gita", "Gitu"}

	a, err := Build(names)
	if err != nil {
		t.Fatal(err)
	}
	b, err := Build(names)
	if err != nil {
		t.Fatal(err)
	}

	if a.VocabularySize() != b.VocabularySize() {
		t.Fatalf("vocabulary sizes differ: %d vs %d", a.VocabularySize(), b.VocabularySize())
	}
	for g, col := range a.vocab {
		if b.vocab[g] != col {
			t.Errorf("gram %q assigned column %d then %d", g, col, b.vocab[g])
		}
	}
}
