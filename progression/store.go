package progression

import (
	"encoding/json"
	"fmt"

	"github.com/milk9111/ledgeclimb/character"
	"github.com/quasilyte/gdata"
)

const abilitiesKey = "abilities"

// Backend is the key/value persistence a Store writes to.
type Backend interface {
	LoadItem(key string) ([]byte, error)
	SaveItem(key string, data []byte) error
}

// Store persists granted abilities between runs.
type Store struct {
	backend Backend
}

type savedAbilities struct {
	Granted []string `json:"granted"`
}

// OpenStore opens the per-user data directory for appName.
func OpenStore(appName string) (*Store, error) {
	m, err := gdata.Open(gdata.Config{AppName: appName})
	if err != nil {
		return nil, fmt.Errorf("progression: open store: %w", err)
	}
	return NewStore(m), nil
}

func NewStore(backend Backend) *Store {
	return &Store{backend: backend}
}

// Load returns the saved grants. An empty save yields none.
func (s *Store) Load() ([]character.AbilityKind, error) {
	if s == nil || s.backend == nil {
		return nil, nil
	}
	data, err := s.backend.LoadItem(abilitiesKey)
	if err != nil {
		return nil, fmt.Errorf("progression: load abilities: %w", err)
	}
	if len(data) == 0 {
		return nil, nil
	}

	var saved savedAbilities
	if err := json.Unmarshal(data, &saved); err != nil {
		return nil, fmt.Errorf("progression: parse saved abilities: %w", err)
	}

	out := make([]character.AbilityKind, 0, len(saved.Granted))
	for _, name := range saved.Granted {
		if kind := character.ParseAbilityKind(name); kind != character.AbilityUnknown {
			out = append(out, kind)
		}
	}
	return out, nil
}

func (s *Store) Save(state character.AbilityState) error {
	if s == nil || s.backend == nil {
		return nil
	}
	var saved savedAbilities
	for _, kind := range []character.AbilityKind{character.AbilityDoubleJump, character.AbilitySprint} {
		if state.Has(kind) {
			saved.Granted = append(saved.Granted, kind.String())
		}
	}
	data, err := json.Marshal(saved)
	if err != nil {
		return fmt.Errorf("progression: encode abilities: %w", err)
	}
	if err := s.backend.SaveItem(abilitiesKey, data); err != nil {
		return fmt.Errorf("progression: save abilities: %w", err)
	}
	return nil
}

// Clear forgets all saved grants.
func (s *Store) Clear() error {
	if s == nil || s.backend == nil {
		return nil
	}
	return s.backend.SaveItem(abilitiesKey, nil)
}
