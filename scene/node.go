// Copyright (c) 2019, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package scene provides the minimal scene nodes that the manipulation
// widgets operate on: a tree of named nodes, each with a local
// [math32.Transform] and optional [Shape] geometry.
package scene

import (
	"strings"

	"cogentcore.org/gizmo/math32"
	"github.com/google/uuid"
)

// Walk return values, matching the tree walking convention.
const (
	// Continue = true can be returned from tree iteration functions to continue
	// processing down the tree.
	Continue = true

	// Break = false can be returned from tree iteration functions to stop
	// processing this branch of the tree.
	Break = false
)

// Node is one element of a scene: a named pose with optional geometry
// and child nodes. The transform is local, relative to the parent.
//
// Nodes are owned by whoever created the tree (the scene graph for
// scene objects, a widget for its handles); other parties only hold
// references.
type Node struct {

	// ID uniquely identifies the node, and survives renaming.
	ID uuid.UUID

	// Name is the user-visible name of the node.
	Name string

	// Shape is the optional geometry drawn for this node.
	Shape *Shape

	// Parent is the parent node, nil for a root.
	Parent *Node

	// Kids are the child nodes, in drawing order.
	Kids []*Node

	transform math32.Transform
}

// NewNode returns a new root node with an identity transform.
func NewNode(name string) *Node {
	return &Node{ID: uuid.New(), Name: name, transform: math32.NewTransform()}
}

// NewChild makes a new node with the given name and adds it as a child.
func (n *Node) NewChild(name string) *Node {
	return n.AddChild(NewNode(name))
}

// AddChild adds the given node as the last child, removing it
// from any previous parent first. It returns the child.
func (n *Node) AddChild(kid *Node) *Node {
	if kid.Parent != nil {
		kid.Parent.RemoveChild(kid)
	}
	kid.Parent = n
	n.Kids = append(n.Kids, kid)
	return kid
}

// RemoveChild removes the given child, returning false if it is not
// a direct child of this node.
func (n *Node) RemoveChild(kid *Node) bool {
	for i, k := range n.Kids {
		if k == kid {
			n.Kids = append(n.Kids[:i], n.Kids[i+1:]...)
			kid.Parent = nil
			return true
		}
	}
	return false
}

// Transform returns the local transform of the node.
func (n *Node) Transform() math32.Transform {
	return n.transform
}

// SetTransform sets the local transform of the node.
func (n *Node) SetTransform(tr math32.Transform) {
	n.transform = tr
}

// AbsoluteTransform returns the transform from this node's space to
// world space: the product of all transforms from the root down.
func (n *Node) AbsoluteTransform() math32.Transform {
	tr := n.transform
	for p := n.Parent; p != nil; p = p.Parent {
		tr = p.transform.Mul(tr)
	}
	return tr
}

// Bounds returns the world space bounding box of the shapes of this
// node and all of its descendants. It is empty if there are no shapes.
func (n *Node) Bounds() math32.Box3 {
	b := math32.B3Empty()
	n.WalkDown(func(k *Node) bool {
		if k.Shape != nil {
			b = b.Union(k.Shape.Bounds().MulMatrix4(k.AbsoluteTransform().Matrix4))
		}
		return Continue
	})
	return b
}

// WalkDown calls the given function on the node and all of its
// descendants in depth-first order. If the function returns [Break],
// the children of that node are skipped.
func (n *Node) WalkDown(fun func(k *Node) bool) {
	if !fun(n) {
		return
	}
	for _, k := range n.Kids {
		k.WalkDown(fun)
	}
}

// find returns the first node in the subtree for which match is true.
func (n *Node) find(match func(k *Node) bool) *Node {
	var found *Node
	n.WalkDown(func(k *Node) bool {
		if found != nil {
			return Break
		}
		if match(k) {
			found = k
			return Break
		}
		return Continue
	})
	return found
}

// FindByID returns the node in this subtree with the given ID, or nil.
func (n *Node) FindByID(id uuid.UUID) *Node {
	return n.find(func(k *Node) bool { return k.ID == id })
}

// FindByName returns the first node in this subtree with the given name, or nil.
func (n *Node) FindByName(name string) *Node {
	return n.find(func(k *Node) bool { return k.Name == name })
}

// Owns returns true if other is this node or one of its descendants.
func (n *Node) Owns(other *Node) bool {
	for k := other; k != nil; k = k.Parent {
		if k == n {
			return true
		}
	}
	return false
}

// Path returns the names from the root to this node, separated by slashes.
func (n *Node) Path() string {
	var names []string
	for k := n; k != nil; k = k.Parent {
		names = append(names, k.Name)
	}
	var b strings.Builder
	for i := len(names) - 1; i >= 0; i-- {
		b.WriteByte('/')
		b.WriteString(names[i])
	}
	return b.String()
}

// Clone returns a deep copy of this node and its subtree with new IDs.
// The clone has no parent.
func (n *Node) Clone() *Node {
	c := NewNode(n.Name)
	c.transform = n.transform
	if n.Shape != nil {
		c.Shape = n.Shape.Clone()
	}
	for _, k := range n.Kids {
		c.AddChild(k.Clone())
	}
	return c
}

func (n *Node) String() string {
	return n.Path()
}
