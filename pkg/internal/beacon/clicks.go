package beacon

import (
	"strings"
	"unicode"

	"github.com/joeydtaylor/loggerhead/pkg/internal/types"
	"golang.org/x/text/unicode/norm"
)

const (
	trackAttribute = "data-track"
	maxLabelRunes  = 40
)

// HandleClick emits an info "click" event whose context identifies the clicked element.
func (b *Beacon) HandleClick(e types.ClickEvent) {
	if e.Target == nil {
		return
	}
	id := clickIdentifier(e.Target)
	if err := b.Info(types.ClickEventType, id, nil); err != nil {
		b.NotifyLoggers(types.WarnLevel, "Failed to emit click",
			"component", b.GetComponentMetadata(),
			"context", id,
			"error", err,
		)
	}
}

// clickIdentifier prefers the nearest data-track value, then tag.label.
func clickIdentifier(target types.Element) string {
	for el := target; el != nil; el = el.Parent() {
		if v, ok := el.Attribute(trackAttribute); ok && v != "" {
			return v
		}
	}

	tag := strings.ToLower(target.TagName())
	if label := elementLabel(target); label != "" {
		return tag + "." + label
	}
	return tag
}

func elementLabel(el types.Element) string {
	if label := sanitizeLabel(el.TextContent()); label != "" {
		return label
	}
	for _, name := range []string{"alt", "title", "class"} {
		if v, ok := el.Attribute(name); ok {
			if label := sanitizeLabel(v); label != "" {
				return label
			}
		}
	}
	return ""
}

// sanitizeLabel keeps letters, digits and "-_." with single spaces between words.
func sanitizeLabel(s string) string {
	var out strings.Builder
	gap := false
	for _, r := range norm.NFKC.String(s) {
		switch {
		case unicode.IsSpace(r) || unicode.IsControl(r):
			gap = true
			continue
		case unicode.IsLetter(r) || unicode.IsDigit(r) || r == '-' || r == '_' || r == '.':
		default:
			continue
		}
		if gap && out.Len() > 0 {
			out.WriteByte(' ')
		}
		gap = false
		out.WriteRune(r)
	}

	label := []rune(out.String())
	if len(label) > maxLabelRunes {
		label = label[:maxLabelRunes]
	}
	return strings.TrimSpace(string(label))
}
