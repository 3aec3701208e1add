package progression

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"
	"github.com/milk9111/ledgeclimb/character"
	"github.com/milk9111/ledgeclimb/prefabs"
)

// Grantee is the character surface a progression script may touch.
type Grantee interface {
	GrantAbility(kind character.AbilityKind)
	Abilities() character.AbilityState
}

var ErrNoHandler = errors.New("progression: script does not define onEvent")

const dispatchScript = `
__result := false
if __event != "" {
	__result = onEvent(__engine, __event)
}
`

// Runtime runs a compiled progression script. Scripts define
// onEvent(engine, name) and call engine.grant(kind) or engine.has(kind).
type Runtime struct {
	name     string
	compiled *tengo.Compiled
	logger   *slog.Logger
}

// Load compiles a script from the prefabs scripts directory.
func Load(name string, logger *slog.Logger) (*Runtime, error) {
	src, err := prefabs.LoadScript(name)
	if err != nil {
		return nil, fmt.Errorf("progression: load %s: %w", name, err)
	}
	return Compile(name, src, logger)
}

func Compile(name string, src []byte, logger *slog.Logger) (*Runtime, error) {
	if logger == nil {
		logger = slog.Default()
	}

	if err := checkHandler(name, src); err != nil {
		return nil, err
	}

	script := tengo.NewScript([]byte(string(src) + "\n" + dispatchScript))
	_ = script.Add("__event", "")
	_ = script.Add("__engine", map[string]any{})
	script.SetImports(stdlib.GetModuleMap(stdlib.AllModuleNames()...))

	compiled, err := script.Compile()
	if err != nil {
		return nil, fmt.Errorf("progression: compile %s: %w", name, err)
	}

	return &Runtime{name: name, compiled: compiled, logger: logger}, nil
}

// checkHandler compiles and runs the bare script so a missing onEvent is
// reported as ErrNoHandler rather than an unresolved reference.
func checkHandler(name string, src []byte) error {
	script := tengo.NewScript(src)
	script.SetImports(stdlib.GetModuleMap(stdlib.AllModuleNames()...))
	compiled, err := script.Compile()
	if err != nil {
		return fmt.Errorf("progression: compile %s: %w", name, err)
	}
	if err := compiled.Run(); err != nil {
		return fmt.Errorf("progression: init %s: %w", name, err)
	}
	if !compiled.IsDefined("onEvent") {
		return fmt.Errorf("%w: %s", ErrNoHandler, name)
	}
	return nil
}

// Dispatch hands a level event to the script. It reports whether the script
// granted anything.
func (r *Runtime) Dispatch(target Grantee, event string) (bool, error) {
	if r == nil || r.compiled == nil || target == nil {
		return false, nil
	}
	event = strings.TrimSpace(event)
	if event == "" {
		return false, nil
	}

	granted := false
	engine := buildEngine(target, &granted)
	if err := r.compiled.Set("__engine", engine); err != nil {
		return false, err
	}
	if err := r.compiled.Set("__event", event); err != nil {
		return false, err
	}
	if err := r.compiled.Run(); err != nil {
		return false, fmt.Errorf("progression: %s: event %s: %w", r.name, event, err)
	}

	r.logger.Debug("progression event", "script", r.name, "event", event, "granted", granted)
	return granted, nil
}

func buildEngine(target Grantee, granted *bool) *tengo.ImmutableMap {
	values := map[string]tengo.Object{}

	values["grant"] = &tengo.UserFunction{Name: "grant", Value: func(args ...tengo.Object) (tengo.Object, error) {
		if len(args) < 1 {
			return tengo.FalseValue, nil
		}
		kind := character.ParseAbilityKind(objectAsString(args[0]))
		if kind == character.AbilityUnknown {
			return tengo.FalseValue, nil
		}
		if target.Abilities().Has(kind) {
			return tengo.FalseValue, nil
		}
		target.GrantAbility(kind)
		*granted = true
		return tengo.TrueValue, nil
	}}

	values["has"] = &tengo.UserFunction{Name: "has", Value: func(args ...tengo.Object) (tengo.Object, error) {
		if len(args) < 1 {
			return tengo.FalseValue, nil
		}
		kind := character.ParseAbilityKind(objectAsString(args[0]))
		if target.Abilities().Has(kind) {
			return tengo.TrueValue, nil
		}
		return tengo.FalseValue, nil
	}}

	return &tengo.ImmutableMap{Value: values}
}

func objectAsString(obj tengo.Object) string {
	if obj == nil {
		return ""
	}
	if s, ok := tengo.ToString(obj); ok {
		return s
	}
	return ""
}
