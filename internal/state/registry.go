package state

// Registry is the program catalog: states by name, kept in registration
// order so the selection menu lists them the way they were added.
type Registry struct {
	m     map[string]State
	order []string
}

func NewRegistry() *Registry { return &Registry{m: map[string]State{}} }

// Register adds s under its name. Registering a name again replaces the
// state but keeps its position.
func (r *Registry) Register(s State) {
	if s == nil {
		return
	}
	name := s.Name()
	if _, ok := r.m[name]; !ok {
		r.order = append(r.order, name)
	}
	r.m[name] = s
}

func (r *Registry) Get(name string) (State, bool) { s, ok := r.m[name]; return s, ok }

func (r *Registry) List() []string {
	out := make([]string, len(r.order))
	copy(out, r.order)
	return out
}

func (r *Registry) Len() int { return len(r.order) }
