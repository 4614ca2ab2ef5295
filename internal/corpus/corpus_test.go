package corpus

import (
	"errors"
	"testing"

	"namematch/internal/port"
)

type stubSource struct {
	names []string
	err   error
}

func (s *stubSource) Load() ([]string, error)   { return s.names, s.err }
func (s *stubSource) Save(names []string) error { return nil }
func (s *stubSource) Close() error              { return nil }

func TestAdd(t *testing.T) {
	c := New(nil)

	if !c.Add("Geetha") {
		t.Error("expected first add to insert")
	}
	if c.Add("Geetha") {
		t.Error("expected duplicate add to be a no-op")
	}
	if !c.Add("geetha") {
		t.Error("expected comparison to be case-sensitive")
	}

	if c.Len() != 2 {
		t.Errorf("expected 2 entries, got %d", c.Len())
	}
}

func TestNamesPreservesOrder(t *testing.T) {
	c := New([]string{"b", "a", "c"})

	names := c.Names()
	want := []string{"b", "a", "c"}
	if len(names) != len(want) {
		t.Fatalf("expected %v, got %v", want, names)
	}
	for i := range want {
		if names[i] != want[i] {
			t.Errorf("entry %d = %q, want %q", i, names[i], want[i])
		}
	}
}

func TestNewKeepsLoadedDuplicates(t *testing.T) {
	// Only explicit Add rejects duplicates; a persisted corpus that
	// already contains them loads at full length.
	c := New([]string{"b", "a", "c", "a"})

	if c.Len() != 4 {
		t.Errorf("expected loaded duplicates to be kept, got %d entries", c.Len())
	}
	if c.Add("a") {
		t.Error("expected Add to still reject a name present in the loaded corpus")
	}
	if c.Len() != 4 {
		t.Errorf("expected corpus size unchanged after duplicate add, got %d", c.Len())
	}
}

func TestNamesReturnsCopy(t *testing.T) {
	c := New([]string{"a", "b"})

	names := c.Names()
	names[0] = "mutated"

	if c.Names()[0] != "a" {
		t.Error("expected Names to return a copy")
	}
}

func TestLoad(t *testing.T) {
	c, err := Load(&stubSource{names: []string{"x", "y"}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c.Len() != 2 {
		t.Errorf("expected 2 entries, got %d", c.Len())
	}
}

func TestLoadMissingSubstitutesDefaults(t *testing.T) {
	c, err := Load(&stubSource{err: port.ErrNotFound})
	if err != nil {
		t.Fatalf("expected missing corpus to substitute defaults, got %v", err)
	}
	if c.Len() != len(DefaultNames()) {
		t.Errorf("expected %d default names, got %d", len(DefaultNames()), c.Len())
	}
	if !c.Contains("Geetha") {
		t.Error("expected default corpus to contain Geetha")
	}
}

func TestLoadOtherErrorsPropagate(t *testing.T) {
	boom := errors.New("disk on fire")
	if _, err := Load(&stubSource{err: boom}); !errors.Is(err, boom) {
		t.Errorf("expected underlying error, got %v", err)
	}
}
