package usecase

import (
	"fmt"
	"sort"
	"sync"

	"namematch/internal/adapter/cache"
	"namematch/internal/adapter/index"
	"namematch/internal/adapter/metric"
	"namematch/internal/corpus"
	"namematch/internal/domain"
	"namematch/internal/port"
)

// Matcher is the ranking engine: it owns the corpus, the TF-IDF index
// derived from it, and the query cache. One Matcher is constructed at
// startup and shared by reference; there is no package-level instance.
//
// The mutex serializes the add-then-rebuild sequence against queries. The
// index and the cache generation are only ever replaced under the write
// lock, so a query can never observe a vocabulary inconsistent with the
// document vectors or a corpus mid-append.
type Matcher struct {
	mu       sync.RWMutex
	corpus   *corpus.Corpus
	source   port.CorpusSource
	index    *index.Index
	indexErr error
	cache    *cache.QueryCache
}

// NewMatcher loads the corpus from source (substituting the default corpus
// when none is persisted), builds the index, and returns a ready engine.
func NewMatcher(source port.CorpusSource) (*Matcher, error) {
	c, err := corpus.Load(source)
	if err != nil {
		return nil, fmt.Errorf("failed to load corpus: %w", err)
	}

	m := &Matcher{
		corpus: c,
		source: source,
		cache:  cache.NewQueryCache(0, 0),
	}
	m.rebuildIndex()

	return m, nil
}

// FindMatches scores every corpus entry against query with the selected
// method, sorts descending (ties keep corpus insertion order), drops
// non-positive scores, and truncates to topK. It never fails: a degenerate
// query, an empty corpus, or an unusable index all degrade to an empty
// match list with Best nil.
func (m *Matcher) FindMatches(query string, method domain.Method, topK int) domain.QueryResult {
	if topK < 1 {
		topK = 1
	}

	// Unknown tags fall back to combined, mirroring ParseMethod. Callers
	// that care use ParseMethod first to detect the fallback.
	switch method {
	case domain.MethodCombined, domain.MethodSequence, domain.MethodLevenshtein, domain.MethodTFIDF:
	default:
		method = domain.MethodCombined
	}

	if result, hit := m.cache.Get(query, method, topK); hit {
		return result
	}

	// The read lock is held through the cache fill: Add invalidates the
	// cache under the write lock, so a result computed here can never be
	// stored against a newer corpus generation.
	m.mu.RLock()
	defer m.mu.RUnlock()

	matches := m.score(query, method)

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].Score > matches[j].Score
	})

	filtered := matches[:0]
	for _, match := range matches {
		if match.Score > 0 {
			filtered = append(filtered, match)
		}
	}
	if len(filtered) > topK {
		filtered = filtered[:topK]
	}

	result := domain.QueryResult{
		Query:   query,
		Method:  method,
		Matches: filtered,
	}
	if len(filtered) > 0 {
		best := filtered[0]
		result.Best = &best
	}

	m.cache.Put(query, method, topK, result)

	return result
}

// score computes one MatchResult per corpus entry, in corpus order.
// Caller holds at least the read lock.
func (m *Matcher) score(query string, method domain.Method) []domain.MatchResult {
	names := m.corpus.Names()

	if method == domain.MethodTFIDF {
		scores, err := m.index.Search(query)
		if err != nil {
			// Index never built (degenerate corpus). The query still
			// succeeds with no matches from this metric.
			return nil
		}
		matches := make([]domain.MatchResult, len(names))
		for i, name := range names {
			matches[i] = domain.MatchResult{Name: name, Score: scores[i]}
		}
		return matches
	}

	var fn func(a, b string) float64
	switch method {
	case domain.MethodSequence:
		fn = metric.Ratio
	case domain.MethodLevenshtein:
		fn = metric.NormalizedSimilarity
	default:
		fn = metric.Combined
	}

	matches := make([]domain.MatchResult, len(names))
	for i, name := range names {
		matches[i] = domain.MatchResult{Name: name, Score: fn(query, name)}
	}
	return matches
}

// Add appends name to the corpus unless an exact duplicate exists. On
// insertion the corpus is persisted, the index rebuilt, and the cache
// invalidated before Add returns, so the next query sees a consistent
// state. Reports whether the corpus grew.
func (m *Matcher) Add(name string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.corpus.Add(name) {
		return false, nil
	}

	if err := m.source.Save(m.corpus.Names()); err != nil {
		m.rebuildIndex()
		m.cache.Invalidate()
		return true, fmt.Errorf("name added but not persisted: %w", err)
	}

	m.rebuildIndex()
	m.cache.Invalidate()
	return true, nil
}

// Import appends every absent name from the batch with a single save and a
// single index rebuild. Returns how many names were actually inserted.
func (m *Matcher) Import(names []string) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	added := 0
	for _, name := range names {
		if m.corpus.Add(name) {
			added++
		}
	}
	if added == 0 {
		return 0, nil
	}

	if err := m.source.Save(m.corpus.Names()); err != nil {
		m.rebuildIndex()
		m.cache.Invalidate()
		return added, fmt.Errorf("names added but not persisted: %w", err)
	}

	m.rebuildIndex()
	m.cache.Invalidate()
	return added, nil
}

// Names returns the corpus entries in insertion order.
func (m *Matcher) Names() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.corpus.Names()
}

// Stats reports the current corpus and vector-space sizes.
func (m *Matcher) Stats() domain.Stats {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return domain.Stats{
		TotalNames:     m.corpus.Len(),
		VocabularySize: m.index.VocabularySize(),
	}
}

// IndexError returns why the last index build failed, or nil. The tfidf
// query path treats a missing index as "no matches"; this keeps the reason
// available for diagnostics.
func (m *Matcher) IndexError() error {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.indexErr
}

// rebuildIndex rebuilds the vector space from the current corpus. Caller
// holds the write lock (or is the constructor). A build failure leaves the
// index nil; tfidf queries then return no matches.
func (m *Matcher) rebuildIndex() {
	ix, err := index.Build(m.corpus.Names())
	if err != nil {
		m.index, m.indexErr = nil, err
		return
	}
	m.index, m.indexErr = ix, nil
}
