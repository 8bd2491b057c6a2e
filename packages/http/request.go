package http

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/avolkov/reqq/packages/parse"
)

// BodyKind discriminates the request body variant. Modeling the body
// as a tagged value (rather than two optional fields) makes the
// file-beats-data precedence a construction rule instead of a runtime
// check.
type BodyKind int

const (
	// BodyNone means the request carries no body (always the case for
	// GET and DELETE).
	BodyNone BodyKind = iota
	// BodyRaw is a raw byte payload from -d, sent with a fixed
	// application/json content type.
	BodyRaw
	// BodyFile is a whole file from -f, sent as a single-part
	// multipart form with the part named "file".
	BodyFile
)

type Body struct {
	Kind        BodyKind
	Data        []byte
	ContentType string // BodyRaw only; BodyFile derives its own boundary type
	Filename    string // BodyFile only
}

// Request describes one outgoing HTTP exchange. It is built once per
// invocation, consumed once by Client.Do, and never reused.
type Request struct {
	Method  string
	URL     string
	Headers []parse.Header
	Body    Body
}

// JSONContentType is forced onto -d payloads, overriding any
// user-supplied Content-Type header.
const JSONContentType = "application/json"

func methodAllowsBody(method string) bool {
	return method == "POST" || method == "PUT"
}

// BuildRequest assembles a Request from parsed arguments. The URL is
// expected to be scheme-prefixed already. For POST and PUT a file path
// wins over raw data when both are given; GET and DELETE ignore both.
// The file is read in full here so that an unreadable file aborts the
// invocation before any network I/O.
func BuildRequest(method, requestURL string, headers []parse.Header, data, filePath string) (*Request, error) {
	req := &Request{
		Method:  method,
		URL:     requestURL,
		Headers: headers,
	}

	if !methodAllowsBody(method) {
		return req, nil
	}

	switch {
	case filePath != "":
		content, err := os.ReadFile(filePath)
		if err != nil {
			return nil, fmt.Errorf("failed to read file %s: %w", filePath, err)
		}
		req.Body = Body{
			Kind:     BodyFile,
			Data:     content,
			Filename: filepath.Base(filePath),
		}
	case data != "":
		req.Body = Body{
			Kind:        BodyRaw,
			Data:        []byte(data),
			ContentType: JSONContentType,
		}
	}

	return req, nil
}
