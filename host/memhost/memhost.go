// Copyright 2025, Command Line Inc.
// SPDX-License-Identifier: Apache-2.0

// Package memhost is an in-memory host tree.  It records every mutation the
// engine makes so tests can assert on exactly which host calls happened.
package memhost

import (
	"fmt"
	"slices"

	"github.com/wavetermdev/ripple/vdom"
)

type OpType string

const (
	OpCreate         OpType = "create"
	OpSetProp        OpType = "setprop"
	OpRemoveProp     OpType = "removeprop"
	OpAddListener    OpType = "addlistener"
	OpRemoveListener OpType = "removelistener"
	OpAppend         OpType = "append"
	OpInsert         OpType = "insert"
	OpRemove         OpType = "remove"
)

func (t OpType) IsStructural() bool {
	return t == OpAppend || t == OpInsert || t == OpRemove
}

type Op struct {
	Type  OpType
	Node  *Node // the node mutated (the parent for structural ops)
	Name  string
	Value any
	Child *Node // structural ops only
}

func (op Op) String() string {
	switch op.Type {
	case OpCreate:
		return fmt.Sprintf("create %s", op.Node.Label())
	case OpSetProp:
		return fmt.Sprintf("setprop %s %s=%v", op.Node.Label(), op.Name, op.Value)
	case OpAppend, OpInsert, OpRemove:
		return fmt.Sprintf("%s %s <- %s", op.Type, op.Node.Label(), op.Child.Label())
	default:
		return fmt.Sprintf("%s %s %s", op.Type, op.Node.Label(), op.Name)
	}
}

type Host struct {
	ops    []Op
	nextId int
}

func MakeHost() *Host {
	return &Host{}
}

func (h *Host) newNode(tag string) *Node {
	h.nextId++
	return &Node{Id: h.nextId, Tag: tag, Props: make(map[string]any), Listeners: make(map[string][]*vdom.VDomFunc)}
}

// NewContainer makes a detached node to render into.  not recorded as an op.
func (h *Host) NewContainer(tag string) *Node {
	return h.newNode(tag)
}

func (h *Host) record(op Op) {
	h.ops = append(h.ops, op)
}

func (h *Host) Ops() []Op {
	return h.ops
}

func (h *Host) ResetOps() {
	h.ops = nil
}

// CountOps counts recorded ops of the given types (all ops if none given)
func (h *Host) CountOps(types ...OpType) int {
	if len(types) == 0 {
		return len(h.ops)
	}
	count := 0
	for _, op := range h.ops {
		if slices.Contains(types, op.Type) {
			count++
		}
	}
	return count
}

func (h *Host) StructuralOps() int {
	return h.CountOps(OpAppend, OpInsert, OpRemove)
}

func asNode(n any) *Node {
	node, ok := n.(*Node)
	if !ok || node == nil {
		panic(fmt.Sprintf("memhost: not a memhost node: %T", n))
	}
	return node
}

func (h *Host) CreateNode(tag string) any {
	node := h.newNode(tag)
	h.record(Op{Type: OpCreate, Node: node})
	return node
}

func (h *Host) SetProperty(n any, name string, val any) {
	node := asNode(n)
	node.Props[name] = val
	h.record(Op{Type: OpSetProp, Node: node, Name: name, Value: val})
}

func (h *Host) RemoveProperty(n any, name string) {
	node := asNode(n)
	delete(node.Props, name)
	h.record(Op{Type: OpRemoveProp, Node: node, Name: name})
}

func (h *Host) AddEventListener(n any, event string, handler *vdom.VDomFunc) {
	node := asNode(n)
	node.Listeners[event] = append(node.Listeners[event], handler)
	h.record(Op{Type: OpAddListener, Node: node, Name: event, Value: handler})
}

func (h *Host) RemoveEventListener(n any, event string, handler *vdom.VDomFunc) {
	node := asNode(n)
	node.Listeners[event] = slices.DeleteFunc(node.Listeners[event], func(l *vdom.VDomFunc) bool {
		return l == handler
	})
	if len(node.Listeners[event]) == 0 {
		delete(node.Listeners, event)
	}
	h.record(Op{Type: OpRemoveListener, Node: node, Name: event, Value: handler})
}

func (h *Host) AppendChild(p any, c any) {
	parent, child := asNode(p), asNode(c)
	child.detach()
	parent.Children = append(parent.Children, child)
	child.Parent = parent
	h.record(Op{Type: OpAppend, Node: parent, Child: child})
}

func (h *Host) InsertBefore(p any, c any, b any) {
	parent, child, before := asNode(p), asNode(c), asNode(b)
	child.detach()
	idx := slices.Index(parent.Children, before)
	if idx < 0 {
		panic(fmt.Sprintf("memhost: %s is not a child of %s", before.Label(), parent.Label()))
	}
	parent.Children = slices.Insert(parent.Children, idx, child)
	child.Parent = parent
	h.record(Op{Type: OpInsert, Node: parent, Child: child})
}

func (h *Host) RemoveChild(p any, c any) {
	parent, child := asNode(p), asNode(c)
	if child.Parent != parent {
		panic(fmt.Sprintf("memhost: %s is not a child of %s", child.Label(), parent.Label()))
	}
	child.detach()
	h.record(Op{Type: OpRemove, Node: parent, Child: child})
}

// Dispatch invokes the node's listeners for event, returns how many ran
func (h *Host) Dispatch(node *Node, event string, data vdom.VDomEvent) int {
	if node == nil {
		return 0
	}
	if data.EventType == "" {
		data.EventType = event
	}
	listeners := slices.Clone(node.Listeners[event])
	for _, l := range listeners {
		l.Call(data)
	}
	return len(listeners)
}
