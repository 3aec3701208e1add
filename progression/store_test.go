package progression

import (
	"errors"
	"testing"

	"github.com/milk9111/ledgeclimb/character"
)

type memBackend struct {
	items   map[string][]byte
	loadErr error
}

func (m *memBackend) LoadItem(key string) ([]byte, error) {
	if m.loadErr != nil {
		return nil, m.loadErr
	}
	return m.items[key], nil
}

func (m *memBackend) SaveItem(key string, data []byte) error {
	if m.items == nil {
		m.items = map[string][]byte{}
	}
	m.items[key] = data
	return nil
}

func TestStoreRoundTrip(t *testing.T) {
	backend := &memBackend{}
	store := NewStore(backend)

	if kinds, err := store.Load(); err != nil || len(kinds) != 0 {
		t.Fatalf("expected empty store, got %v (%v)", kinds, err)
	}

	if err := store.Save(character.AbilityState{HasSprint: true, HasDoubleJump: true}); err != nil {
		t.Fatalf("save: %v", err)
	}
	kinds, err := store.Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(kinds) != 2 || kinds[0] != character.AbilityDoubleJump || kinds[1] != character.AbilitySprint {
		t.Fatalf("unexpected kinds %v", kinds)
	}

	if err := store.Clear(); err != nil {
		t.Fatalf("clear: %v", err)
	}
	if kinds, _ := store.Load(); len(kinds) != 0 {
		t.Fatalf("expected cleared store, got %v", kinds)
	}
}

func TestStoreLoadFailures(t *testing.T) {
	errDisk := errors.New("disk unreadable")
	broken := NewStore(&memBackend{loadErr: errDisk})
	if kinds, err := broken.Load(); !errors.Is(err, errDisk) || kinds != nil {
		t.Fatalf("expected the backend error, got %v (%v)", kinds, err)
	}

	empty := NewStore(&memBackend{})
	if kinds, err := empty.Load(); err != nil || kinds != nil {
		t.Fatalf("an empty save should read as none, got %v (%v)", kinds, err)
	}

	cleared := NewStore(&memBackend{})
	if err := cleared.Clear(); err != nil {
		t.Fatal(err)
	}
	if kinds, err := cleared.Load(); err != nil || kinds != nil {
		t.Fatalf("a cleared save should read as none, got %v (%v)", kinds, err)
	}

	corrupt := NewStore(&memBackend{items: map[string][]byte{abilitiesKey: []byte("{")}})
	if _, err := corrupt.Load(); err == nil {
		t.Fatalf("expected parse error")
	}

	filtered := NewStore(&memBackend{items: map[string][]byte{abilitiesKey: []byte(`{"granted":["sprint","wall_run"]}`)}})
	kinds, err := filtered.Load()
	if err != nil || len(kinds) != 1 || kinds[0] != character.AbilitySprint {
		t.Fatalf("expected only sprint, got %v (%v)", kinds, err)
	}
}
