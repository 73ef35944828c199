package main

import (
	"bufio"
	"encoding/json"
	"flag"
	"fmt"
	"net/url"
	"os"
	"strings"

	"github.com/joeydtaylor/loggerhead/pkg/builder"
	"github.com/joeydtaylor/loggerhead/pkg/logschema"
)

// Decodes beacons into keyed JSON. Arguments may be raw d= values or full beacon URLs;
// with no arguments, one beacon per line is read from stdin.
func main() {
	pretty := flag.Bool("pretty", false, "indent output")
	flag.Parse()

	enc := json.NewEncoder(os.Stdout)
	enc.SetEscapeHTML(false)
	if *pretty {
		enc.SetIndent("", "  ")
	}

	failed := false
	decodeOne := func(input string) {
		input = strings.TrimSpace(input)
		if input == "" {
			return
		}
		p, err := builder.DecodePayload(payloadOf(input))
		if err != nil {
			fmt.Fprintf(os.Stderr, "decode %q: %v\n", input, err)
			failed = true
			return
		}
		if err := enc.Encode(builder.PayloadRecord(p)); err != nil {
			fmt.Fprintln(os.Stderr, err)
			failed = true
		}
	}

	if flag.NArg() > 0 {
		for _, arg := range flag.Args() {
			decodeOne(arg)
		}
	} else {
		scanner := bufio.NewScanner(os.Stdin)
		scanner.Buffer(make([]byte, 0, 64<<10), 1<<20)
		for scanner.Scan() {
			decodeOne(scanner.Text())
		}
		if err := scanner.Err(); err != nil {
			fmt.Fprintln(os.Stderr, err)
			failed = true
		}
	}

	if failed {
		os.Exit(1)
	}
}

// payloadOf accepts a bare payload, "d=<payload>" or a beacon URL.
func payloadOf(input string) string {
	if encoded, ok := builder.EncodedPayload(input); ok {
		return encoded
	}
	if rest, ok := strings.CutPrefix(input, logschema.QueryParam+"="); ok {
		return rest
	}
	if u, err := url.Parse(input); err == nil && u.RawQuery != "" {
		if v := u.Query().Get(logschema.QueryParam); v != "" {
			return v
		}
	}
	return input
}
