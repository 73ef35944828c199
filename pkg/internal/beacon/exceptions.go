package beacon

import (
	"fmt"
	"regexp"
	"runtime/debug"
	"strings"

	"github.com/joeydtaylor/loggerhead/pkg/internal/types"
)

const (
	maxStackLines = 12
	placeholder   = "null"
)

var (
	originPrefix = regexp.MustCompile(`https?://[^/\s)]+/`)

	genericMessages = map[string]struct{}{
		"null":            {},
		"undefined":       {},
		"Script error.":   {},
		"Script error":    {},
		"[object Object]": {},
	}
)

type stackTracer interface {
	Stack() string
}

// HandleError reports an uncaught error as an error event named after the event
// type, with the message as context and the normalized stack under "stack".
// Values that cannot be described, or only describe as a generic message, are dropped.
func (b *Beacon) HandleError(e types.ErrorEvent) {
	message, stack, ok := b.describe(e)
	if !ok {
		return
	}
	if _, generic := genericMessages[message]; generic {
		return
	}

	b.NotifyLoggers(types.ErrorLevel, "Captured uncaught error",
		"component", b.GetComponentMetadata(),
		"event", e.Type(),
		"error", message,
	)

	if err := b.Error(e.Type(), message, map[string]any{"stack": stack}); err != nil {
		b.NotifyLoggers(types.WarnLevel, "Failed to emit captured error",
			"component", b.GetComponentMetadata(),
			"event", e.Type(),
			"error", err,
		)
	}
}

// ReportPanic reports a recovered panic and panics again with the same value.
// Use it as a deferred call:
//
//	defer b.ReportPanic()
func (b *Beacon) ReportPanic() {
	r := recover()
	if r == nil {
		return
	}
	b.HandleError(types.ErrorEvent{
		Kind:  types.PanicEventType,
		Error: r,
		Stack: string(debug.Stack()),
	})
	panic(r)
}

// describe extracts message and stack. Any panic raised by the value aborts the report.
func (b *Beacon) describe(e types.ErrorEvent) (message, stack string, ok bool) {
	defer func() {
		if r := recover(); r != nil {
			b.NotifyLoggers(types.DebugLevel, "Unable to describe captured error",
				"component", b.GetComponentMetadata(),
				"event", e.Type(),
			)
			message, stack, ok = "", "", false
		}
	}()

	source := errorSource(e)
	if source == nil {
		return "", "", false
	}

	message = strings.TrimSpace(messageOf(source))
	stack = e.Stack
	if st, isTracer := source.(stackTracer); isTracer {
		if s := st.Stack(); s != "" {
			stack = s
		}
	}
	stack = strings.TrimSpace(normalizeStack(stack))

	if message == "" {
		message = placeholder
	}
	if stack == "" {
		stack = placeholder
	}
	return message, stack, true
}

func errorSource(e types.ErrorEvent) any {
	if present(e.Error) {
		return e.Error
	}
	if e.Message != "" {
		return e.Message
	}
	if present(e.Reason) {
		return e.Reason
	}
	return nil
}

func present(v any) bool {
	if v == nil {
		return false
	}
	if s, ok := v.(string); ok {
		return s != ""
	}
	return true
}

func messageOf(v any) string {
	switch x := v.(type) {
	case error:
		return x.Error()
	case fmt.Stringer:
		return x.String()
	case string:
		return x
	default:
		return fmt.Sprint(x)
	}
}

func normalizeStack(stack string) string {
	if stack == "" {
		return ""
	}
	lines := strings.Split(originPrefix.ReplaceAllString(stack, ""), "\n")
	if len(lines) > maxStackLines {
		lines = lines[:maxStackLines]
	}
	return strings.Join(lines, "\n")
}
