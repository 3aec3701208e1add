package component

import (
	"github.com/milk9111/ledgeclimb/character"
	"github.com/milk9111/ledgeclimb/montage"
	"github.com/milk9111/ledgeclimb/physics"
)

// Character wraps the movement ability core of an actor.
type Character struct {
	Actor *character.Character
}

var CharacterComponent = NewComponent[Character]()

// Motor wraps the physics body that moves an actor.
type Motor struct {
	Body *physics.Motor
}

var MotorComponent = NewComponent[Motor]()

// Montage wraps the montage player driving an actor's animation graph.
type Montage struct {
	Player *montage.Player
}

var MontageComponent = NewComponent[Montage]()
