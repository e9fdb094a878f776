// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scene

import (
	"github.com/jinzhu/copier"

	"cogentcore.org/exgui/base/errors"
	"cogentcore.org/exgui/math32"
	"cogentcore.org/exgui/paint/render"
	"cogentcore.org/exgui/styles"
)

// Node is a node in a scene shape tree. The set of nodes is closed:
// [Rect], [Circle], [Path], [Group], [Text], and [Word], each of which
// embeds [NodeBase]. Nodes are exclusively owned by their parent; the
// same node must not appear in more than one place in a tree.
type Node interface {

	// AsNodeBase returns the [NodeBase] embedded in this node, which
	// gives access to the tree structure and the cached layout state.
	AsNodeBase() *NodeBase

	// resolve performs one layout pass over this node and its subtree:
	// percent and auto dimensions are resolved against the given parent
	// bound, the global transform is composed from the given parent
	// matrix and cached, and the node's final bound is computed,
	// stored, and returned. The cascading defaults are passed by value
	// so that [Group] derivations stay scoped to their own subtree.
	resolve(sc *Scene, parent math32.Box2, matrix math32.Matrix2, defaults styles.Defaults) math32.Box2

	// compose appends the render items for this node and its subtree
	// to the given list, resolving its style values against the
	// cascading defaults. It must only be called on a resolved tree.
	compose(list *render.Render, defaults styles.Defaults) error
}

// NodeBase is the base type embedded in all [Node] variants, holding
// the tree structure, the styling common to all variants, and the
// bound cached by the last layout pass.
type NodeBase struct {

	// ID is an optional identifier for this node.
	ID string

	// Transform is the transform of this node, composed with the
	// ancestor transforms during layout.
	Transform styles.Transform

	// Clip is the clipping of this node. If it is none, the cascading
	// default clip applies instead.
	Clip styles.Clip

	// Bound is the bounding box computed by the last layout pass, in
	// the coordinate space of the parent.
	Bound math32.Box2

	// Children are the child nodes of this node.
	Children []Node `copier:"-"`
}

// AsNodeBase returns this [NodeBase]. It implements part of the
// [Node] interface.
func (nb *NodeBase) AsNodeBase() *NodeBase {
	return nb
}

// AddChild adds the given nodes as children of this node.
func (nb *NodeBase) AddChild(kids ...Node) {
	nb.Children = append(nb.Children, kids...)
}

// resolveChildren runs the layout pass on all children against the
// given bound and composed matrix, and returns the union of their
// resulting bounds. With no children it returns the zero box, which is
// distinct from no constraint.
func (nb *NodeBase) resolveChildren(sc *Scene, bound math32.Box2, matrix math32.Matrix2, defaults styles.Defaults) math32.Box2 {
	if len(nb.Children) == 0 {
		return math32.Box2{}
	}
	inner := nb.Children[0].resolve(sc, bound, matrix, defaults)
	for _, k := range nb.Children[1:] {
		inner = inner.Union(k.resolve(sc, bound, matrix, defaults))
	}
	return inner
}

// composeChildren composes all children in document order, stopping
// at the first error.
func (nb *NodeBase) composeChildren(list *render.Render, defaults styles.Defaults) error {
	for _, k := range nb.Children {
		if err := k.compose(list, defaults); err != nil {
			return err
		}
	}
	return nil
}

// renderContext builds the effective [render.Context] for a geometric
// node: own fill and stroke else the defaults, opacity from the node's
// transparency combined with the default transparency, own clip else
// the default clip, and the cached global transform.
func renderContext(fill *styles.Fill, stroke *styles.Stroke, transparency float32, clip styles.Clip, transform *styles.Transform, defaults styles.Defaults) render.Context {
	if fill == nil {
		fill = defaults.Fill
	}
	if stroke == nil {
		stroke = defaults.Stroke
	}
	return render.Context{
		Fill:      fill,
		Stroke:    stroke,
		Opacity:   (1 - transparency) * (1 - defaults.Transparency),
		Clip:      clip.Or(defaults.Clip),
		Transform: transform.Global,
	}
}

// WalkDown calls the given function on the given node and then
// recursively on all of its children, in document order. If the
// function returns false, the walk does not descend into that
// node's children.
func WalkDown(n Node, fun func(n Node) bool) {
	if !fun(n) {
		return
	}
	for _, k := range n.AsNodeBase().Children {
		WalkDown(k, fun)
	}
}

// CopyFrom copies the field values of the given source node into the
// given destination node, deeply copying any pointer fields so that
// the two nodes share no mutable state. Children are not copied; see
// [Clone] for copying a whole subtree. Both nodes should be of the
// same type.
func CopyFrom(dst, from Node) error {
	return copier.CopyWithOption(dst, from, copier.Option{CaseSensitive: true, DeepCopy: true})
}

// Clone returns a deep copy of the given node and all of its children.
func Clone(n Node) Node {
	if n == nil {
		return nil
	}
	var nc Node
	switch n.(type) {
	case *Rect:
		nc = &Rect{}
	case *Circle:
		nc = &Circle{}
	case *Path:
		nc = &Path{}
	case *Group:
		nc = &Group{}
	case *Text:
		nc = &Text{}
	case *Word:
		nc = &Word{}
	default:
		return nil
	}
	errors.Log(CopyFrom(nc, n))
	nb := nc.AsNodeBase()
	for _, k := range n.AsNodeBase().Children {
		nb.AddChild(Clone(k))
	}
	return nc
}
