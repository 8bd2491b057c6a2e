package output

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/fatih/color"
	"github.com/tidwall/gjson"
	"github.com/tidwall/pretty"

	reqhttp "github.com/avolkov/reqq/packages/http"
)

// ConsolePresenter renders one response (or one failure) in the shape
// a human reads: status line, headers, blank line, body. Responses go
// to writer, every kind of error goes to errWriter.
type ConsolePresenter struct {
	writer    io.Writer
	errWriter io.Writer
	noColor   bool
	query     string
	prettify  bool
}

type ConsoleOption func(*ConsolePresenter)

func NewConsolePresenter(opts ...ConsoleOption) *ConsolePresenter {
	p := &ConsolePresenter{
		writer:    os.Stdout,
		errWriter: os.Stderr,
	}
	for _, opt := range opts {
		opt(p)
	}
	if p.noColor {
		color.NoColor = true
	}
	return p
}

func WithWriter(w io.Writer) ConsoleOption {
	return func(p *ConsolePresenter) {
		p.writer = w
	}
}

func WithErrWriter(w io.Writer) ConsoleOption {
	return func(p *ConsolePresenter) {
		p.errWriter = w
	}
}

func WithNoColor(nc bool) ConsoleOption {
	return func(p *ConsolePresenter) {
		p.noColor = nc
	}
}

// WithQuery sets a gjson path; when the response body is JSON, only
// the value at that path is printed instead of the whole body.
func WithQuery(path string) ConsoleOption {
	return func(p *ConsolePresenter) {
		p.query = path
	}
}

// WithPretty re-indents JSON bodies before printing.
func WithPretty(enabled bool) ConsoleOption {
	return func(p *ConsolePresenter) {
		p.prettify = enabled
	}
}

// PresentResponse writes status, headers and body. Headers are sorted
// by name; Go's header map does not retain arrival order. A body that
// is not valid UTF-8 is reported to errWriter after status and headers
// have already gone out, and that partial output stands.
func (p *ConsolePresenter) PresentResponse(resp *reqhttp.Response) {
	bold := color.New(color.Bold).SprintFunc()
	cyan := color.New(color.FgCyan).SprintFunc()

	fmt.Fprintf(p.writer, "%s\n", bold(p.statusColor(resp)(resp.Status)))

	names := make([]string, 0, len(resp.Headers))
	for name := range resp.Headers {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		fmt.Fprintf(p.writer, "%s: %s\n", cyan(name), resp.Headers[name])
	}
	fmt.Fprintf(p.writer, "\n")

	if !resp.BodyIsText() {
		fmt.Fprintf(p.errWriter, "failed to decode response body: not valid UTF-8 text\n")
		return
	}

	fmt.Fprintf(p.writer, "%s\n", p.renderBody(resp))
}

// PresentError reports a transport failure. Nothing is written to the
// response writer.
func (p *ConsolePresenter) PresentError(err error) {
	red := color.New(color.FgRed).SprintFunc()
	fmt.Fprintf(p.errWriter, "%s %v\n", red("request failed:"), err)
	fmt.Fprintf(p.errWriter, "details: %#v\n", err)
}

func (p *ConsolePresenter) renderBody(resp *reqhttp.Response) string {
	if resp.IsJSON() && gjson.ValidBytes(resp.Body) {
		if p.query != "" {
			return gjson.GetBytes(resp.Body, p.query).String()
		}
		if p.prettify {
			// pretty appends its own trailing newline
			return strings.TrimSuffix(string(pretty.Pretty(resp.Body)), "\n")
		}
	}
	return resp.BodyString()
}

func (p *ConsolePresenter) statusColor(resp *reqhttp.Response) func(...any) string {
	switch {
	case resp.IsSuccess():
		return color.New(color.FgGreen).SprintFunc()
	case resp.IsRedirect():
		return color.New(color.FgYellow).SprintFunc()
	default:
		return color.New(color.FgRed).SprintFunc()
	}
}
