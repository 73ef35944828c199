package beacon

import (
	"strings"
	"testing"

	"github.com/joeydtaylor/loggerhead/pkg/internal/types"
	"github.com/stretchr/testify/assert"
)

func TestSanitizeLabel(t *testing.T) {
	cases := map[string]string{
		"  Save\n\tchanges! ": "Save changes",
		"Ｈｅｌｌｏ wörld":       "Hello wörld",
		"a\x00b":              "a b",
		"<>{}":                "",
		"file_name-v1.2":      "file_name-v1.2",
	}
	for in, want := range cases {
		assert.Equal(t, want, sanitizeLabel(in), "%q", in)
	}

	long := strings.Repeat("x", 60)
	assert.Equal(t, strings.Repeat("x", maxLabelRunes), sanitizeLabel(long))
	assert.Equal(t, "abc", sanitizeLabel("abc"+strings.Repeat(" ", 50)))
}

func TestNormalizeStack(t *testing.T) {
	stack := "at run (http://localhost:8080/static/main.js:10:3)\nat https://cdn.example.com/vendor.js:1:1"
	assert.Equal(t, "at run (static/main.js:10:3)\nat vendor.js:1:1", normalizeStack(stack))
	assert.Equal(t, "", normalizeStack(""))
}

func TestClickIdentifier_EmptyTrackValueIsSkipped(t *testing.T) {
	parent := &fakeElement{tag: "SECTION", attrs: map[string]string{trackAttribute: "hero"}}
	child := &fakeElement{tag: "P", attrs: map[string]string{trackAttribute: ""}, text: "Hi", parent: parent}

	assert.Equal(t, "hero", clickIdentifier(child))
}

type fakeElement struct {
	tag    string
	attrs  map[string]string
	text   string
	parent *fakeElement
}

func (e *fakeElement) TagName() string { return e.tag }
func (e *fakeElement) Attribute(name string) (string, bool) {
	v, ok := e.attrs[name]
	return v, ok
}
func (e *fakeElement) TextContent() string { return e.text }
func (e *fakeElement) Parent() types.Element {
	if e.parent == nil {
		return nil
	}
	return e.parent
}
