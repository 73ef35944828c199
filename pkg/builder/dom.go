package builder

import (
	"io"

	"github.com/joeydtaylor/loggerhead/pkg/internal/dom"
)

// ParseDocument parses page markup into a document clicks can be dispatched on.
func ParseDocument(r io.Reader) (*dom.Document, error) {
	return dom.ParseDocument(r)
}

// NewWindow returns a window showing href that can raise errors and rejections.
func NewWindow(href string) *dom.Window {
	return dom.NewWindow(href)
}
