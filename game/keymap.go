package game

import "github.com/kamstrup/intmap"

// Keymap translates device key codes into actions. K is the adapter's own key
// type, e.g. ebiten.Key or tcell.Key.
type Keymap[K intmap.IntKey] struct {
	bindings *intmap.Map[K, Action]
}

func NewKeymap[K intmap.IntKey](bindings map[K]Action) *Keymap[K] {
	k := &Keymap[K]{
		bindings: intmap.New[K, Action](len(bindings)),
	}
	for key, action := range bindings {
		k.Bind(key, action)
	}
	return k
}

// Bind maps key to action, replacing any earlier binding. Binding
// ActionNone removes the key.
func (k *Keymap[K]) Bind(key K, action Action) {
	if action == ActionNone {
		k.bindings.Del(key)
		return
	}
	k.bindings.Put(key, action)
}

// Lookup returns the action bound to key, or ActionNone.
func (k *Keymap[K]) Lookup(key K) Action {
	action, ok := k.bindings.Get(key)
	if !ok {
		return ActionNone
	}
	return action
}

func (k *Keymap[K]) Len() int {
	return k.bindings.Len()
}
