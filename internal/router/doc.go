// Package router implements the method-qualified prefix tree used by the
// dispatcher to resolve an inbound request to a registered route.
//
// Patterns are split on "/". A segment starting with ':' binds exactly one
// path segment under the remainder of its name; a lone '*' captures every
// remaining segment under [WildcardKey]. Any other segment is matched
// literally, byte for byte.
//
// Every node keeps three disjoint child slots (literals, one variable, one
// wildcard), so the precedence literal > variable > wildcard is a property of
// the tree shape and does not depend on registration order. Matching never
// backtracks: once a literal child is taken, variables and wildcards at that
// node are not reconsidered.
//
// A Tree is built once during start-up and is read-only afterwards, so Match
// is safe for concurrent use without locking.
package router
