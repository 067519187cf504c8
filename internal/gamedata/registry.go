package gamedata

import "errors"

// ClassRegistry holds loaded class definitions and provides lookup utilities.
type ClassRegistry struct {
	byID map[string]*ClassDef
	all  []ClassDef
}

// NewClassRegistry creates a registry from loaded class definitions.
func NewClassRegistry(classes []ClassDef) *ClassRegistry {
	registry := &ClassRegistry{
		byID: make(map[string]*ClassDef),
		all:  classes,
	}
	for i := range classes {
		registry.byID[classes[i].ID] = &classes[i]
	}
	return registry
}

// LoadClassRegistry loads and creates a registry from the embedded classes.json.
func LoadClassRegistry() (*ClassRegistry, error) {
	classes, err := LoadClasses()
	if err != nil {
		return nil, err
	}
	if len(classes) == 0 {
		return nil, errors.New("no classes loaded from classes.json")
	}
	return NewClassRegistry(classes), nil
}

// MustLoadClassRegistry loads a registry, panicking on error.
func MustLoadClassRegistry() *ClassRegistry {
	registry, err := LoadClassRegistry()
	if err != nil {
		panic(err)
	}
	return registry
}

// GetByID returns the class definition with the given ID, or nil if not found.
func (r *ClassRegistry) GetByID(id string) *ClassDef {
	return r.byID[id]
}

// All returns all class definitions.
func (r *ClassRegistry) All() []ClassDef {
	return r.all
}

// Count returns the number of classes in the registry.
func (r *ClassRegistry) Count() int {
	return len(r.all)
}

// =============================================================================
// MoveRegistry
// =============================================================================

// MoveRegistry holds the fixed move tables for every class.
type MoveRegistry struct {
	byClass map[string][]MoveDef
}

// NewMoveRegistry creates a registry from loaded move set definitions.
func NewMoveRegistry(sets []MoveSetDef) *MoveRegistry {
	registry := &MoveRegistry{
		byClass: make(map[string][]MoveDef),
	}
	for _, set := range sets {
		registry.byClass[set.Class] = set.Moves
	}
	return registry
}

// LoadMoveRegistry loads and creates a registry from the embedded moves.json.
func LoadMoveRegistry() (*MoveRegistry, error) {
	sets, err := LoadMoveSets()
	if err != nil {
		return nil, err
	}
	if len(sets) == 0 {
		return nil, errors.New("no move sets loaded from moves.json")
	}
	return NewMoveRegistry(sets), nil
}

// MustLoadMoveRegistry loads a registry, panicking on error.
func MustLoadMoveRegistry() *MoveRegistry {
	registry, err := LoadMoveRegistry()
	if err != nil {
		panic(err)
	}
	return registry
}

// GetByClass returns the five-move table for a class ID, or nil if not found.
func (r *MoveRegistry) GetByClass(classID string) []MoveDef {
	return r.byClass[classID]
}

// Count returns the number of move sets in the registry.
func (r *MoveRegistry) Count() int {
	return len(r.byClass)
}
