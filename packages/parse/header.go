package parse

import (
	"fmt"
	"strings"
)

// Header is a single name/value pair from a -H flag. Order of
// appearance on the command line is preserved by keeping headers in a
// slice; collapsing duplicates is the transport's job.
type Header struct {
	Name  string
	Value string
}

// ParseHeader splits a -H token on the first "=" so values may contain
// "=" themselves (e.g. base64). Tokens without "=" or with an empty
// name or value are rejected.
func ParseHeader(token string) (Header, error) {
	name, value, found := strings.Cut(token, "=")
	if !found {
		return Header{}, fmt.Errorf("invalid header %q: expected key=value", token)
	}
	if name == "" || value == "" {
		return Header{}, fmt.Errorf("invalid header %q: name and value must be non-empty", token)
	}
	return Header{Name: name, Value: value}, nil
}

// ParseHeaders parses all -H tokens, failing on the first malformed
// one. This runs before any I/O.
func ParseHeaders(tokens []string) ([]Header, error) {
	if len(tokens) == 0 {
		return nil, nil
	}
	headers := make([]Header, 0, len(tokens))
	for _, token := range tokens {
		h, err := ParseHeader(token)
		if err != nil {
			return nil, err
		}
		headers = append(headers, h)
	}
	return headers, nil
}

// ValidHeaderName reports whether name is a valid HTTP header field
// name (RFC 7230 token).
func ValidHeaderName(name string) bool {
	if name == "" {
		return false
	}
	for i := 0; i < len(name); i++ {
		if !isTokenChar(name[i]) {
			return false
		}
	}
	return true
}

// ValidHeaderValue reports whether value can be sent as an HTTP header
// field value: no control bytes other than horizontal tab.
func ValidHeaderValue(value string) bool {
	for i := 0; i < len(value); i++ {
		b := value[i]
		if b == '\t' {
			continue
		}
		if b < 0x20 || b == 0x7f {
			return false
		}
	}
	return true
}

func isTokenChar(b byte) bool {
	switch {
	case b >= 'a' && b <= 'z', b >= 'A' && b <= 'Z', b >= '0' && b <= '9':
		return true
	}
	switch b {
	case '!', '#', '$', '%', '&', '\'', '*', '+', '-', '.', '^', '_', '`', '|', '~':
		return true
	}
	return false
}
