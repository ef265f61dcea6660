package runtime

import "sort"

// Environment provides lexical scoping for letcalc runtime values. It is a
// persistent singly-linked chain of bindings: extending an environment
// allocates a new head node and never touches existing nodes, so every
// previously obtained reference stays valid and unchanged. The nil
// *Environment is the empty (terminal) environment and all methods accept it.
type Environment struct {
	name  string
	value Value
	tail  *Environment
}

// NewEnvironment returns the empty environment.
func NewEnvironment() *Environment {
	return nil
}

// Extend returns a new environment with (name, value) bound at the head and
// the receiver as its tail. O(1); the receiver is not modified.
func (e *Environment) Extend(name string, value Value) *Environment {
	return &Environment{name: name, value: value, tail: e}
}

// Lookup scans from the head toward the terminal node and returns the first
// binding whose name matches exactly. The nearest binding shadows earlier
// ones with the same name. Cost is O(chain depth).
func (e *Environment) Lookup(name string) (Value, bool) {
	for node := e; node != nil; node = node.tail {
		if node.name == name {
			return node.value, true
		}
	}
	return nil, false
}

// Depth reports the number of binding nodes in the chain, counting shadowed
// bindings.
func (e *Environment) Depth() int {
	n := 0
	for node := e; node != nil; node = node.tail {
		n++
	}
	return n
}

// Snapshot returns the visible bindings as a map, with shadowing applied:
// for each name, the value nearest the head wins.
func (e *Environment) Snapshot() map[string]Value {
	out := make(map[string]Value)
	for node := e; node != nil; node = node.tail {
		if _, ok := out[node.name]; !ok {
			out[node.name] = node.value
		}
	}
	return out
}

// Keys returns the visible binding names in sorted order (useful for
// determinism in tests).
func (e *Environment) Keys() []string {
	snapshot := e.Snapshot()
	keys := make([]string, 0, len(snapshot))
	for k := range snapshot {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
