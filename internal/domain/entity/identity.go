package entity

import "github.com/google/uuid"

// Identity identifies an entity. It never changes once assigned.
type Identity struct {
	id string
}

// NewIdentity wraps id, or generates a random UUID when id is empty.
func NewIdentity(id string) Identity {
	if id == "" {
		id = uuid.NewString()
	}
	return Identity{id: id}
}

func (i Identity) String() string { return i.id }

func (i Identity) IsZero() bool { return i.id == "" }
