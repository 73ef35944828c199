package dom

import (
	"strings"

	"github.com/joeydtaylor/loggerhead/pkg/internal/types"
	"golang.org/x/net/html"
)

// Element adapts an *html.Node of type html.ElementNode to types.Element.
type Element struct {
	node *html.Node
}

// WrapNode returns the element for n, or nil when n is not an element node.
func WrapNode(n *html.Node) *Element {
	if n == nil || n.Type != html.ElementNode {
		return nil
	}
	return &Element{node: n}
}

// Node returns the underlying parse tree node.
func (e *Element) Node() *html.Node {
	return e.node
}

// TagName returns the upper-case tag name, as DOM elements report it.
func (e *Element) TagName() string {
	return strings.ToUpper(e.node.Data)
}

// Attribute returns the value of the named attribute.
func (e *Element) Attribute(name string) (string, bool) {
	for _, attr := range e.node.Attr {
		if attr.Namespace == "" && strings.EqualFold(attr.Key, name) {
			return attr.Val, true
		}
	}
	return "", false
}

// TextContent concatenates the text of every descendant text node.
func (e *Element) TextContent() string {
	var b strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			switch c.Type {
			case html.TextNode:
				b.WriteString(c.Data)
			case html.ElementNode:
				walk(c)
			}
		}
	}
	walk(e.node)
	return b.String()
}

// Parent returns the nearest ancestor element, or nil at the top of the tree.
func (e *Element) Parent() types.Element {
	for p := e.node.Parent; p != nil; p = p.Parent {
		if p.Type == html.ElementNode {
			return &Element{node: p}
		}
	}
	return nil
}
