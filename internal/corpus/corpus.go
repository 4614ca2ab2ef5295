package corpus

import (
	"errors"

	"namematch/internal/port"
)

// Corpus is the ordered sequence of names queries are ranked against.
// Insertion order is significant: it is the stable tie-break during ranking.
// Corpus does no locking of its own; the owning engine serializes access.
type Corpus struct {
	names []string
	seen  map[string]struct{}
}

// New builds a Corpus from the given names, preserving order. Duplicates
// are rejected only on explicit Add; a loaded corpus keeps whatever
// entries it contains.
func New(names []string) *Corpus {
	c := &Corpus{
		names: make([]string, 0, len(names)),
		seen:  make(map[string]struct{}, len(names)),
	}
	for _, name := range names {
		c.names = append(c.names, name)
		c.seen[name] = struct{}{}
	}
	return c
}

// Load reads the corpus from a source. A missing backing resource is not an
// error: the well-known default corpus is substituted instead.
func Load(src port.CorpusSource) (*Corpus, error) {
	names, err := src.Load()
	if err != nil {
		if errors.Is(err, port.ErrNotFound) {
			return New(DefaultNames()), nil
		}
		return nil, err
	}
	return New(names), nil
}

// Add appends name unless an entry already equals it exactly. Reports
// whether the corpus grew.
func (c *Corpus) Add(name string) bool {
	if _, dup := c.seen[name]; dup {
		return false
	}
	c.seen[name] = struct{}{}
	c.names = append(c.names, name)
	return true
}

// Contains reports whether name is already present, by exact comparison.
func (c *Corpus) Contains(name string) bool {
	_, ok := c.seen[name]
	return ok
}

// Names returns the entries in insertion order. The returned slice is a
// copy; callers may hold it across mutations.
func (c *Corpus) Names() []string {
	out := make([]string, len(c.names))
	copy(out, c.names)
	return out
}

// Len returns the number of entries.
func (c *Corpus) Len() int {
	return len(c.names)
}

// DefaultNames returns the built-in corpus used when no persisted corpus
// exists yet: clusters of similar given names, one cluster per line.
func DefaultNames() []string {
	return []string{
		"Geetha", "Gita", "Gitu", "Geeta", "Githa",
		"John", "Jon", "Johny", "Jonathan", "Jonathon",
		"Michael", "Mike", "Micheal", "Mikael", "Mikhail",
		"Sarah", "Sara", "Saira", "Zara", "Sahra",
		"Robert", "Rob", "Bob", "Roberto", "Robby",
		"Jennifer", "Jenny", "Jenn", "Jenifer", "Jenna",
		"Christopher", "Chris", "Kristopher", "Topher", "Cristobal",
		"Elizabeth", "Liz", "Beth", "Eliza", "Liza",
		"William", "Will", "Bill", "Billy", "Willy",
		"Katherine", "Kate", "Katie", "Catherine", "Kat",
	}
}
