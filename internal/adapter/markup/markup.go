// Package markup parses the structured markup estimate format into the
// format-agnostic record tree. It performs no domain normalization; that is
// the normalizer's job.
package markup

import (
	"strings"

	"github.com/beevik/etree"

	"github.com/Farhaan96/CollisionOS-sub009/internal/domain"
	"github.com/Farhaan96/CollisionOS-sub009/internal/profile"
	"github.com/Farhaan96/CollisionOS-sub009/internal/record"
)

// Parse reads a markup document into a record.Tree. Empty input fails with
// domain.ErrEmptyInput; input that is not well-formed markup fails with a
// MalformedDocumentError carrying the underlying syntax error. The top-level
// element is accepted under any name listed in the vendor profile table; an
// unlisted root is tracked as an unknown tag but still parsed.
func Parse(raw []byte, tr *record.Tracker) (*record.Tree, error) {
	if len(strings.TrimSpace(string(raw))) == 0 {
		return nil, domain.ErrEmptyInput
	}

	doc := etree.NewDocument()
	if err := doc.ReadFromBytes(raw); err != nil {
		return nil, domain.NewMalformedDocumentError("markup", err)
	}

	root := doc.Root()
	if root == nil {
		return nil, domain.NewMalformedDocumentError("markup", errNoRoot)
	}
	if !profile.IsMarkupRoot(root.Tag) {
		tr.Addf("unrecognized root element %q", root.Tag)
	}

	return &record.Tree{
		Format: domain.FormatMarkup,
		Root:   convert(root),
	}, nil
}

// convert maps an etree element subtree onto record.Node, keeping child
// order and trimming text content.
func convert(el *etree.Element) *record.Node {
	n := &record.Node{
		Tag:  el.Tag,
		Text: strings.TrimSpace(el.Text()),
	}
	for _, child := range el.ChildElements() {
		n.Children = append(n.Children, convert(child))
	}
	return n
}
