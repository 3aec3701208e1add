package scene

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/milk9111/ledgeclimb/character"
	"github.com/milk9111/ledgeclimb/ecs"
	"github.com/milk9111/ledgeclimb/prefabs"
	"github.com/milk9111/ledgeclimb/progression"
)

type memBackend struct {
	items map[string][]byte
}

func (m *memBackend) LoadItem(key string) ([]byte, error) { return m.items[key], nil }
func (m *memBackend) SaveItem(key string, data []byte) error {
	if m.items == nil {
		m.items = map[string][]byte{}
	}
	m.items[key] = data
	return nil
}

func withDiskDir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	prev := prefabs.Dir
	prefabs.Dir = dir
	t.Cleanup(func() { prefabs.Dir = prev })
	return dir
}

func testOptions(level string) Options {
	return Options{
		Level:  level,
		Store:  progression.NewStore(&memBackend{}),
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

func TestLoadBuildsPlayer(t *testing.T) {
	withDiskDir(t)

	opts := testOptions("level.yaml")
	opts.Abilities = []character.AbilityKind{character.AbilitySprint}
	sc, err := Load(opts)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	defer sc.Close()

	actor := sc.Actor()
	if actor == nil || sc.Motor() == nil || sc.Montage() == nil {
		t.Fatalf("expected a fully built player")
	}
	if !actor.Abilities().HasSprint {
		t.Fatalf("expected requested abilities to be granted")
	}
	if got, want := sc.Motor().Position(), sc.Level.SpawnPoint(); got != want {
		t.Fatalf("expected spawn at %v, got %v", want, got)
	}

	frame := sc.World.Frame()
	sc.Step(1.0 / 60)
	if sc.World.Frame() != frame+1 {
		t.Fatalf("expected step to advance the frame")
	}
}

func TestCloseStopsTheScene(t *testing.T) {
	withDiskDir(t)

	sc, err := Load(testOptions("level.yaml"))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	sc.Close()
	sc.Close()

	if ecs.IsAlive(sc.World, sc.Player) {
		t.Fatalf("expected the player to be destroyed")
	}
	frame := sc.World.Frame()
	sc.Step(1.0 / 60)
	if sc.World.Frame() != frame {
		t.Fatalf("a closed scene must not step")
	}
}

func TestReplaceKeepsCurrentOnFailure(t *testing.T) {
	withDiskDir(t)

	current, err := Load(testOptions("level.yaml"))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	defer current.Close()

	got, err := Replace(current, testOptions("missing.yaml"))
	if err == nil {
		t.Fatalf("expected an error for a missing level")
	}
	if got != current {
		t.Fatalf("expected the current scene back on failure")
	}
	if !ecs.IsAlive(current.World, current.Player) {
		t.Fatalf("a failed replace must not tear down the running player")
	}

	frame := current.World.Frame()
	got.Step(1.0 / 60)
	if current.World.Frame() != frame+1 {
		t.Fatalf("the kept scene should keep stepping")
	}
}

func TestReplaceClosesPrevious(t *testing.T) {
	withDiskDir(t)

	current, err := Load(testOptions("level.yaml"))
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	next, err := Replace(current, testOptions("level.yaml"))
	if err != nil {
		t.Fatalf("replace: %v", err)
	}
	defer next.Close()

	if next == current {
		t.Fatalf("expected a new scene")
	}
	if ecs.IsAlive(current.World, current.Player) {
		t.Fatalf("expected the previous player to be destroyed")
	}
	if !ecs.IsAlive(next.World, next.Player) {
		t.Fatalf("expected the new player to be alive")
	}
}

func TestReplaceFromNothing(t *testing.T) {
	withDiskDir(t)

	next, err := Replace(nil, testOptions("level.yaml"))
	if err != nil {
		t.Fatalf("replace: %v", err)
	}
	defer next.Close()
	if next.Actor() == nil {
		t.Fatalf("expected a player")
	}
}

func TestLoadAppliesMontageRate(t *testing.T) {
	tests := []struct {
		name    string
		yaml    string
		want    float64
		wantErr bool
	}{
		{name: "double speed", yaml: "rate: 2\nmontages:\n  climb: 1.0\n", want: 0.5},
		{name: "unset rate", yaml: "montages:\n  climb: 1.0\n", want: 1.0},
		{name: "zero rate", yaml: "rate: 0\nmontages:\n  climb: 1.0\n", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := withDiskDir(t)
			if err := os.WriteFile(filepath.Join(dir, "montages.yaml"), []byte(tt.yaml), 0o644); err != nil {
				t.Fatal(err)
			}

			sc, err := Load(testOptions("level.yaml"))
			if tt.wantErr {
				if err == nil {
					sc.Close()
					t.Fatalf("expected an error")
				}
				return
			}
			if err != nil {
				t.Fatalf("load: %v", err)
			}
			defer sc.Close()

			if got := sc.Montage().Player.PlayMontage("climb"); got != tt.want {
				t.Fatalf("expected climb to play for %v, got %v", tt.want, got)
			}
		})
	}
}
