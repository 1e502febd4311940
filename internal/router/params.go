package router

// WildcardKey is the reserved parameter name under which a '*' segment stores
// the unconsumed remainder of the path.
const WildcardKey = "path"

// Param is a single captured path variable.
type Param struct {
	Key   string
	Value string
}

// Params holds captured variables in the order their segments appear in the
// matched pattern.
type Params []Param

// Get returns the value bound to name and whether it was captured at all.
func (ps Params) Get(name string) (string, bool) {
	for _, p := range ps {
		if p.Key == name {
			return p.Value, true
		}
	}
	return "", false
}

// ByName returns the value bound to name, or an empty string.
func (ps Params) ByName(name string) string {
	v, _ := ps.Get(name)
	return v
}

// Map copies the captured variables into a map. When a name was captured more
// than once, the later segment wins.
func (ps Params) Map() map[string]string {
	m := make(map[string]string, len(ps))
	for _, p := range ps {
		m[p.Key] = p.Value
	}
	return m
}
