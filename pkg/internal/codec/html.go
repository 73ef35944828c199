package codec

import (
	"io"

	"golang.org/x/net/html"
)

// HTMLDecoder parses host page markup into a navigable node tree.
type HTMLDecoder struct{}

func NewHTMLDecoder() *HTMLDecoder {
	return &HTMLDecoder{}
}

func (d *HTMLDecoder) Decode(r io.Reader) (*html.Node, error) {
	return html.Parse(r)
}
