package state

// Aliases is the alias-name -> replacement-text table (spec §3 Alias).
type Aliases struct {
	names  []string
	values map[string]string
}

// NewAliases returns an empty alias table.
func NewAliases() *Aliases {
	return &Aliases{values: map[string]string{}}
}

// Get looks up an alias by name.
func (a *Aliases) Get(name string) (string, bool) {
	v, ok := a.values[name]
	return v, ok
}

// Set inserts or replaces an alias, preserving first-seen order for
// listing (`alias` with no arguments, spec SPEC_FULL.md §C.3).
func (a *Aliases) Set(name, replacement string) {
	if _, ok := a.values[name]; !ok {
		a.names = append(a.names, name)
	}
	a.values[name] = replacement
}

// Unset removes an alias, reporting whether it existed.
func (a *Aliases) Unset(name string) bool {
	if _, ok := a.values[name]; !ok {
		return false
	}
	delete(a.values, name)
	for i, n := range a.names {
		if n == name {
			a.names = append(a.names[:i], a.names[i+1:]...)
			break
		}
	}
	return true
}

// Clear removes every alias (`unalias -a`).
func (a *Aliases) Clear() {
	a.names = nil
	a.values = map[string]string{}
}

// Names returns alias names in insertion order.
func (a *Aliases) Names() []string {
	out := make([]string, len(a.names))
	copy(out, a.names)
	return out
}
