package ecs

import "strconv"

// Entity packs a slot index with the generation that owns it, so handles to
// destroyed entities never alias a reused slot.
type Entity uint64

type entityID uint32
type generation uint32

const entityIDBits = 32

func makeEntity(id entityID, gen generation) Entity {
	return Entity(uint64(gen)<<entityIDBits | uint64(id))
}

func (e Entity) id() entityID {
	return entityID(uint32(e))
}

func (e Entity) generation() generation {
	return generation(uint32(uint64(e) >> entityIDBits))
}

func (e Entity) String() string {
	return strconv.FormatUint(uint64(e.id()), 10) + "v" + strconv.FormatUint(uint64(e.generation()), 10)
}

func (e Entity) Valid() bool {
	return e.id() != 0
}

// entityPool hands out slots starting at 1. Slot 0 is the invalid entity.
type entityPool struct {
	gens  []generation
	alive []bool
	free  []entityID
	count int
}

func (p *entityPool) create() Entity {
	if n := len(p.free); n > 0 {
		id := p.free[n-1]
		p.free = p.free[:n-1]
		p.alive[id] = true
		p.count++
		return makeEntity(id, p.gens[id])
	}
	if len(p.gens) == 0 {
		p.gens = append(p.gens, 0)
		p.alive = append(p.alive, false)
	}
	id := entityID(len(p.gens))
	p.gens = append(p.gens, 1)
	p.alive = append(p.alive, true)
	p.count++
	return makeEntity(id, 1)
}

func (p *entityPool) isAlive(e Entity) bool {
	id := e.id()
	if id == 0 || int(id) >= len(p.gens) {
		return false
	}
	return p.alive[id] && p.gens[id] == e.generation()
}

func (p *entityPool) destroy(e Entity) bool {
	if !p.isAlive(e) {
		return false
	}
	id := e.id()
	p.alive[id] = false
	p.gens[id]++
	p.free = append(p.free, id)
	p.count--
	return true
}

func (p *entityPool) entities() []Entity {
	out := make([]Entity, 0, p.count)
	for i := 1; i < len(p.gens); i++ {
		if p.alive[i] {
			out = append(out, makeEntity(entityID(i), p.gens[i]))
		}
	}
	return out
}
