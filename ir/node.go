package ir

import (
	"iter"
	"strconv"
)

// Value is either a leaf string or a nested Node. Leaves have a nil Node.
type Value struct {
	Node   *Node
	String string
}

func FromString(s string) Value {
	return Value{String: s}
}

func FromNode(n *Node) Value {
	return Value{Node: n}
}

func (v Value) IsLeaf() bool {
	return v.Node == nil
}

// Node is an ordered map with unique string keys. Setting an existing key
// replaces its value in place.
//
// The zero Node is empty and ready to use.
type Node struct {
	keys   []string
	values []Value
	index  map[string]int
}

func New() *Node {
	return &Node{}
}

func (n *Node) Len() int {
	return len(n.keys)
}

// Keys returns the keys of n in insertion order.
func (n *Node) Keys() []string {
	return append([]string(nil), n.keys...)
}

func (n *Node) Get(key string) (Value, bool) {
	i, ok := n.index[key]
	if !ok {
		return Value{}, false
	}
	return n.values[i], true
}

func (n *Node) Has(key string) bool {
	_, ok := n.index[key]
	return ok
}

func (n *Node) Set(key string, v Value) {
	if i, ok := n.index[key]; ok {
		n.values[i] = v
		return
	}
	if n.index == nil {
		n.index = map[string]int{}
	}
	n.index[key] = len(n.keys)
	n.keys = append(n.keys, key)
	n.values = append(n.values, v)
}

func (n *Node) SetString(key, v string) {
	n.Set(key, FromString(v))
}

// NextKey returns the smallest index, counting from 0, that is not a key
// of n.
func (n *Node) NextKey() string {
	for i := 0; ; i++ {
		key := strconv.Itoa(i)
		if !n.Has(key) {
			return key
		}
	}
}

// Push sets v under NextKey.
func (n *Node) Push(v Value) {
	n.Set(n.NextKey(), v)
}

// IsArray reports whether the keys of n are exactly the indices 0 to
// Len()-1.
func (n *Node) IsArray() bool {
	return n.NextKey() == strconv.Itoa(n.Len())
}

// All iterates over the entries of n in insertion order.
func (n *Node) All() iter.Seq2[string, Value] {
	return func(yield func(string, Value) bool) {
		for i, k := range n.keys {
			if !yield(k, n.values[i]) {
				return
			}
		}
	}
}

// Item is an entry of a Node as it is written out. Positional items are
// written without their key.
type Item struct {
	Key        string
	Positional bool
	Value      Value
}

// Items iterates over the entries of n, marking those whose key equals a
// running count of the positional entries before them.
func (n *Node) Items() iter.Seq[Item] {
	return func(yield func(Item) bool) {
		counter := 0
		for i, k := range n.keys {
			it := Item{Key: k, Value: n.values[i]}
			if k == strconv.Itoa(counter) {
				counter++
				it.Positional = true
			}
			if !yield(it) {
				return
			}
		}
	}
}

// Clone returns a deep copy of n.
func (n *Node) Clone() *Node {
	res := &Node{
		keys:   append([]string(nil), n.keys...),
		values: make([]Value, len(n.values)),
		index:  make(map[string]int, len(n.index)),
	}
	for k, i := range n.index {
		res.index[k] = i
	}
	for i, v := range n.values {
		if v.Node != nil {
			v.Node = v.Node.Clone()
		}
		res.values[i] = v
	}
	return res
}
