package keymap

import "slices"

// Conflict is a key bound to two different actions. The earlier binding
// is kept.
type Conflict struct {
	Key     string
	Kept    Action
	Ignored Action
}

// Resolver maps key strings to actions.
type Resolver struct {
	actions   map[string]Action
	keys      map[Action][]string
	conflicts []Conflict
}

// NewResolver creates a resolver from bindings. Bindings without an action
// only document keys handled elsewhere and are skipped.
func NewResolver(bindings []Binding) *Resolver {
	r := &Resolver{
		actions: make(map[string]Action),
		keys:    make(map[Action][]string),
	}
	for _, b := range bindings {
		if b.Action == "" {
			continue
		}
		for _, key := range b.Keys {
			if kept, ok := r.actions[key]; ok {
				if kept != b.Action {
					r.conflicts = append(r.conflicts, Conflict{Key: key, Kept: kept, Ignored: b.Action})
				}
				continue
			}
			r.actions[key] = b.Action
			r.keys[b.Action] = append(r.keys[b.Action], key)
		}
	}
	return r
}

// Resolve returns the action for a key, or "" if the key is not bound.
func (r *Resolver) Resolve(key string) Action {
	return r.actions[key]
}

// KeysFor returns the keys bound to an action, in binding order.
func (r *Resolver) KeysFor(action Action) []string {
	return slices.Clone(r.keys[action])
}

// Conflicts returns the keys that were bound more than once.
func (r *Resolver) Conflicts() []Conflict {
	return r.conflicts
}
