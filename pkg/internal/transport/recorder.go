package transport

import (
	"strings"
	"sync"

	"github.com/joeydtaylor/loggerhead/pkg/logschema"
)

// Recorder is an in-memory transport that keeps every URL it is handed.
type Recorder struct {
	mu   sync.Mutex
	urls []string
}

// NewRecorder returns an empty Recorder.
func NewRecorder() *Recorder {
	return &Recorder{}
}

// Send implements types.Transport.
func (r *Recorder) Send(url string) {
	r.mu.Lock()
	r.urls = append(r.urls, url)
	r.mu.Unlock()
}

// URLs returns a copy of the recorded URLs in send order.
func (r *Recorder) URLs() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.urls...)
}

// Len returns the number of recorded URLs.
func (r *Recorder) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.urls)
}

// Last returns the most recent URL, or "" when nothing was sent.
func (r *Recorder) Last() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.urls) == 0 {
		return ""
	}
	return r.urls[len(r.urls)-1]
}

// Reset forgets every recorded URL.
func (r *Recorder) Reset() {
	r.mu.Lock()
	r.urls = nil
	r.mu.Unlock()
}

// EncodedPayload extracts the raw, still escaped, payload from a beacon URL.
// The payload is everything after the first "?d=" so escaped content is not
// disturbed by query parsing.
func EncodedPayload(url string) (string, bool) {
	marker := "?" + logschema.QueryParam + "="
	idx := strings.Index(url, marker)
	if idx < 0 {
		return "", false
	}
	return url[idx+len(marker):], true
}
