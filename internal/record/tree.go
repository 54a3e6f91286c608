// Package record defines the format-agnostic intermediate structure the
// adapters produce and the normalizer consumes, plus the per-parse
// unknown-element tracker.
package record

import (
	"github.com/Farhaan96/CollisionOS-sub009/internal/domain"
)

// Node is one named element of a markup document, with its text content and
// ordered children.
type Node struct {
	Tag      string
	Text     string
	Children []*Node
}

// Child returns the first child with the given tag, or nil.
func (n *Node) Child(tag string) *Node {
	for _, c := range n.Children {
		if c.Tag == tag {
			return c
		}
	}
	return nil
}

// ChildText returns the text of the first child with the given tag, or ""
// when no such child exists.
func (n *Node) ChildText(tag string) string {
	if c := n.Child(tag); c != nil {
		return c.Text
	}
	return ""
}

// EachChild calls fn for every child with the given tag, in document order.
func (n *Node) EachChild(tag string, fn func(*Node)) {
	for _, c := range n.Children {
		if c.Tag == tag {
			fn(c)
		}
	}
}

// Row is one record of a flat document: its record-type code, the remaining
// fields in layout order, and the raw line for diagnostics. Seq is the row's
// position within the document, counted across all record types, so
// diagnostics can be reported in document order.
type Row struct {
	Type   string
	Fields []string
	Raw    string
	Seq    int
}

// Field returns the i-th field of the row (0 = first field after the
// record-type code), or "" when the row is too short.
func (r Row) Field(i int) string {
	if i < 0 || i >= len(r.Fields) {
		return ""
	}
	return r.Fields[i]
}

// Tree is the adapter output handed to the normalizer. Exactly one of Root
// (markup) and Rows (flat) is populated, per Format. All holds every flat
// row in document order, across record types.
type Tree struct {
	Format domain.DocumentFormat
	Root   *Node
	Rows   map[string][]Row
	All    []Row
}

// RowsOf returns the rows of one record type, in document order.
func (t *Tree) RowsOf(code string) []Row {
	if t.Rows == nil {
		return nil
	}
	return t.Rows[code]
}
