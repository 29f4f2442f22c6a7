package choices

import (
	"sort"

	"github.com/dfox288/ledger-of-heroes-backend-sub002/internal/catalog"
	"github.com/dfox288/ledger-of-heroes-backend-sub002/internal/entities"
)

// Handler implements one choice type. Pending derives every live choice
// of the handler's type from the character's current grants, with
// Resolved/Selection filled from the character's records. Validate
// checks a selection against a live choice; values held through that
// same choice's prior selection are legal (they are about to be
// replaced). Apply and Reverse mutate base character state only and
// must mirror each other exactly.
type Handler interface {
	Type() string
	Pending(c *entities.Character, store catalog.Store) ([]Choice, error)
	Validate(c *entities.Character, choice *Choice, selection []string) error
	Apply(c *entities.Character, choice *Choice, selection []string, store catalog.Store) error
	Reverse(c *entities.Character, choice *Choice, selection []string, store catalog.Store) error
}

// Registry maps choice types to handlers. It is built once at startup
// and passed into the orchestrator; there is no global registry.
type Registry struct {
	handlers map[string]Handler
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{handlers: make(map[string]Handler)}
}

// Register adds a handler, replacing any previous handler of the same type.
func (r *Registry) Register(h Handler) {
	r.handlers[h.Type()] = h
}

// Get returns the handler for a choice type.
func (r *Registry) Get(choiceType string) (Handler, bool) {
	h, ok := r.handlers[choiceType]
	return h, ok
}

// Handlers returns all registered handlers in type order.
func (r *Registry) Handlers() []Handler {
	types := make([]string, 0, len(r.handlers))
	for t := range r.handlers {
		types = append(types, t)
	}
	// map iteration order would leak into listings
	sort.Strings(types)
	out := make([]Handler, 0, len(types))
	for _, t := range types {
		out = append(out, r.handlers[t])
	}
	return out
}

// DefaultRegistry builds the registry with every shipped handler.
func DefaultRegistry() *Registry {
	r := NewRegistry()
	r.Register(&ProficiencyHandler{})
	r.Register(&ExpertiseHandler{})
	r.Register(&ASIHandler{})
	r.Register(&FeatHandler{})
	r.Register(&EquipmentHandler{})
	r.Register(&SpellHandler{})
	return r
}
