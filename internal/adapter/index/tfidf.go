package index

import (
	"errors"
	"math"
)

var (
	// ErrNotBuilt reports a query against an index that was never built.
	ErrNotBuilt = errors.New("tfidf index not built")

	// ErrEmptyVocabulary reports a corpus that produced no n-grams at all,
	// so no vector space exists to search in.
	ErrEmptyVocabulary = errors.New("tfidf vocabulary is empty")
)

// Index is a TF-IDF weighted character-n-gram vector space over a corpus
// snapshot. It is immutable once built; a corpus mutation requires a new
// Build, and the caller must not publish a new Index until Build returns.
type Index struct {
	vocab map[string]int // n-gram -> column
	idf   []float64      // per column
	docs  []sparseVec    // one per corpus entry, in corpus order
	norms []float64      // L2 norm per document
}

type sparseVec map[int]float64

// Build constructs the vector space for the given corpus snapshot:
// vocabulary columns assigned in first-seen order, smoothed IDF weights,
// and one TF-IDF document vector per name.
func Build(names []string) (*Index, error) {
	vocab := make(map[string]int)
	docCounts := make([]map[string]int, len(names))
	docFreq := make(map[string]int)

	for i, name := range names {
		// Walk the grams in extraction order so column assignment is
		// first-seen and deterministic for a given corpus.
		counts := make(map[string]int, len(name))
		for _, g := range ngrams(name) {
			if counts[g] == 0 {
				if _, seen := vocab[g]; !seen {
					vocab[g] = len(vocab)
				}
				docFreq[g]++
			}
			counts[g]++
		}
		docCounts[i] = counts
	}

	if len(vocab) == 0 {
		return nil, ErrEmptyVocabulary
	}

	// Smoothed IDF keeps grams present in every document at a small
	// positive weight instead of zeroing them out.
	n := float64(len(names))
	idf := make([]float64, len(vocab))
	for g, col := range vocab {
		df := float64(docFreq[g])
		idf[col] = math.Log((1+n)/(1+df)) + 1
	}

	ix := &Index{
		vocab: vocab,
		idf:   idf,
		docs:  make([]sparseVec, len(names)),
		norms: make([]float64, len(names)),
	}
	for i, counts := range docCounts {
		ix.docs[i] = ix.weigh(counts)
		ix.norms[i] = norm(ix.docs[i])
	}

	return ix, nil
}

// Search scores every document against the query by cosine similarity,
// returning one score per corpus entry in corpus order. Query n-grams
// outside the vocabulary contribute nothing; they never error and never
// trigger a rebuild. A zero-norm query or document scores 0.
func (ix *Index) Search(query string) ([]float64, error) {
	if ix == nil {
		return nil, ErrNotBuilt
	}

	qvec := ix.weigh(gramCounts(query))
	qnorm := norm(qvec)

	scores := make([]float64, len(ix.docs))
	if qnorm == 0 {
		return scores, nil
	}

	for i, doc := range ix.docs {
		if ix.norms[i] == 0 {
			continue
		}
		var dot float64
		for col, w := range qvec {
			dot += w * doc[col]
		}
		scores[i] = dot / (qnorm * ix.norms[i])
	}

	return scores, nil
}

// VocabularySize returns the number of distinct n-grams in the vector space.
func (ix *Index) VocabularySize() int {
	if ix == nil {
		return 0
	}
	return len(ix.vocab)
}

// weigh maps raw n-gram counts onto vocabulary columns with TF-IDF weights,
// dropping out-of-vocabulary grams.
func (ix *Index) weigh(counts map[string]int) sparseVec {
	vec := make(sparseVec, len(counts))
	for g, tf := range counts {
		col, ok := ix.vocab[g]
		if !ok {
			continue
		}
		vec[col] = float64(tf) * ix.idf[col]
	}
	return vec
}

func norm(vec sparseVec) float64 {
	var sum float64
	for _, w := range vec {
		sum += w * w
	}
	return math.Sqrt(sum)
}
