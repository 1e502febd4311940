package router

import "strings"

// Tree maps (method, path) pairs to values of type T.
type Tree[T any] struct {
	root *node[T]
}

// Match is the result of a successful lookup.
type Match[T any] struct {
	Route  T
	Params Params
}

// New returns an empty Tree.
func New[T any]() *Tree[T] {
	return &Tree[T]{root: newNode[T]("")}
}

// Add registers value under method and pattern. Registering the same method
// and pattern again replaces the previous value.
//
// A wildcard segment must be the last segment of pattern. This is not
// validated; segments after a wildcard are unreachable.
func (t *Tree[T]) Add(method, pattern string, value T) {
	t.root.add(segments(method, pattern), value)
}

// Match looks up the route registered for method and path. The path is
// compared as given, without any decoding or cleaning.
func (t *Tree[T]) Match(method, path string) (Match[T], bool) {
	var params Params
	n := t.root.match(segments(method, path), &params)
	if n == nil || !n.hasRoute {
		return Match[T]{}, false
	}
	return Match[T]{Route: n.route, Params: params}, true
}

// segments builds the method-qualified segment list, e.g. "GET", "/a/b"
// becomes ["GET", "a", "b"]. Empty segments produced by repeated or trailing
// slashes are kept.
func segments(method, path string) []string {
	expr := "/" + strings.ToUpper(method) + path
	return strings.Split(expr, "/")[1:]
}
