package http

import (
	"strings"
	"unicode/utf8"
)

type Response struct {
	StatusCode int
	Status     string
	Headers    map[string]string
	Body       []byte
}

func (r *Response) BodyString() string {
	return string(r.Body)
}

// BodyIsText reports whether the body can be printed as UTF-8 text.
func (r *Response) BodyIsText() bool {
	return utf8.Valid(r.Body)
}

func (r *Response) Header(key string) string {
	for k, v := range r.Headers {
		if strings.EqualFold(k, key) {
			return v
		}
	}
	return ""
}

func (r *Response) ContentType() string {
	return r.Header("Content-Type")
}

func (r *Response) IsJSON() bool {
	return strings.Contains(r.ContentType(), "application/json")
}

func (r *Response) IsSuccess() bool {
	return r.StatusCode >= 200 && r.StatusCode < 300
}

func (r *Response) IsRedirect() bool {
	return r.StatusCode >= 300 && r.StatusCode < 400
}

func (r *Response) IsClientError() bool {
	return r.StatusCode >= 400 && r.StatusCode < 500
}

func (r *Response) IsServerError() bool {
	return r.StatusCode >= 500
}
