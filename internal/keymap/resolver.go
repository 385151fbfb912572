package keymap

import "slices"

// Resolver answers "what does this key do" for one dispatch context.
// The app builds one from ByContext("global") and consults it for every
// key press that the overlay and popups let through.
type Resolver struct {
	bindings map[string]Action   // key -> action
	byAction map[Action][]string // action -> keys, for help text
}

// NewResolver indexes the given bindings. When the same key appears in
// several bindings the last one wins; keys listed for an action are kept
// in first-seen order without duplicates.
func NewResolver(bindings []Binding) *Resolver {
	r := &Resolver{
		bindings: make(map[string]Action),
		byAction: make(map[Action][]string),
	}
	for _, b := range bindings {
		for _, key := range b.Keys {
			r.bindings[key] = b.Action
			if !slices.Contains(r.byAction[b.Action], key) {
				r.byAction[b.Action] = append(r.byAction[b.Action], key)
			}
		}
	}
	return r
}

// Resolve returns the action bound to key, or the empty Action.
func (r *Resolver) Resolve(key string) Action {
	return r.bindings[key]
}

// KeysFor returns the keys bound to an action, for help text.
func (r *Resolver) KeysFor(action Action) []string {
	return r.byAction[action]
}
