package router

import "strings"

const (
	variablePrefix = ':'
	wildcardToken  = "*"
)

type node[T any] struct {
	label string

	children map[string]*node[T]
	variable *node[T]
	star     *node[T]

	route    T
	hasRoute bool
}

func newNode[T any](label string) *node[T] {
	return &node[T]{label: label}
}

// getOrCreateChild returns the child slot for seg, creating it on first use.
// The variable child keeps the name it was created with; later patterns that
// use a different name at the same position share that node.
func (n *node[T]) getOrCreateChild(seg string) *node[T] {
	if seg == wildcardToken {
		if n.star == nil {
			n.star = newNode[T](seg)
		}
		return n.star
	}

	if len(seg) > 0 && seg[0] == variablePrefix {
		if n.variable == nil {
			n.variable = newNode[T](seg[1:])
		}
		return n.variable
	}

	if n.children == nil {
		n.children = make(map[string]*node[T])
	}
	child, ok := n.children[seg]
	if !ok {
		child = newNode[T](seg)
		n.children[seg] = child
	}
	return child
}

func (n *node[T]) add(segs []string, value T) {
	cur := n
	for _, seg := range segs {
		cur = cur.getOrCreateChild(seg)
	}
	cur.route = value
	cur.hasRoute = true
}

func (n *node[T]) match(segs []string, params *Params) *node[T] {
	cur := n
	for i, seg := range segs {
		if next, ok := cur.children[seg]; ok {
			cur = next
			continue
		}

		if cur.variable != nil {
			*params = append(*params, Param{Key: cur.variable.label, Value: seg})
			cur = cur.variable
			continue
		}

		if cur.star != nil {
			*params = append(*params, Param{Key: WildcardKey, Value: "/" + strings.Join(segs[i:], "/")})
			return cur.star
		}

		return nil
	}
	return cur
}
