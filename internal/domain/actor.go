package domain

// Actor represents a cast member. Movies is the actor's side of the
// many-to-many relation and is only populated on eager-loaded reads.
type Actor struct {
	Entity
	Name   string
	Movies []Movie
}

// NewActor constructs an unsaved actor with a client-side ID.
func NewActor(name string) Actor {
	return Actor{
		Entity: NewEntity(),
		Name:   name,
	}
}
