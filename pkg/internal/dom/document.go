package dom

import (
	"io"

	"github.com/joeydtaylor/loggerhead/pkg/internal/codec"
	"github.com/joeydtaylor/loggerhead/pkg/internal/types"
	"golang.org/x/net/html"
)

// Document is the root event target of a parsed page.
type Document struct {
	eventTarget
	root *html.Node
}

// ParseDocument parses page markup into a Document.
func ParseDocument(r io.Reader) (*Document, error) {
	root, err := codec.NewHTMLDecoder().Decode(r)
	if err != nil {
		return nil, err
	}
	return NewDocument(root), nil
}

// NewDocument wraps an existing parse tree.
func NewDocument(root *html.Node) *Document {
	return &Document{root: root}
}

// ElementByID returns the first element whose id attribute equals id.
func (d *Document) ElementByID(id string) types.Element {
	if found := d.find(func(e *Element) bool {
		v, ok := e.Attribute("id")
		return ok && v == id
	}, 1); len(found) > 0 {
		return found[0]
	}
	return nil
}

// ElementsByTagName returns every element with the given tag, in document order.
func (d *Document) ElementsByTagName(tag string) []types.Element {
	found := d.find(func(e *Element) bool {
		return e.node.Data == tag
	}, -1)
	out := make([]types.Element, len(found))
	for i, e := range found {
		out[i] = e
	}
	return out
}

// Click dispatches a click targeted at el.
func (d *Document) Click(el types.Element) {
	d.Dispatch(types.ClickEvent{Target: el})
}

func (d *Document) find(match func(*Element) bool, limit int) []*Element {
	var out []*Element
	var walk func(*html.Node) bool
	walk = func(n *html.Node) bool {
		if el := WrapNode(n); el != nil && match(el) {
			out = append(out, el)
			if limit > 0 && len(out) >= limit {
				return false
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			if !walk(c) {
				return false
			}
		}
		return true
	}
	if d.root != nil {
		walk(d.root)
	}
	return out
}
