package cmd

import (
	"github.com/spf13/cobra"

	reqhttp "github.com/avolkov/reqq/packages/http"
	"github.com/avolkov/reqq/packages/output"
	"github.com/avolkov/reqq/packages/parse"
)

// dispatch runs one request end to end: parse headers (fail fast,
// before any I/O), normalize the URL, build the request (which reads
// the -f file, if any), send, present. Transport failures are reported
// to the diagnostic stream and the command still exits zero; argument
// and file errors propagate as fatal.
func dispatch(cmd *cobra.Command, client *reqhttp.Client, method, rawURL string, headerTokens []string, data, file string) error {
	headers, err := parse.ParseHeaders(headerTokens)
	if err != nil {
		return err
	}

	req, err := reqhttp.BuildRequest(method, parse.EnsureScheme(rawURL), headers, data, file)
	if err != nil {
		return err
	}

	presenter := output.NewConsolePresenter(
		output.WithWriter(cmd.OutOrStdout()),
		output.WithErrWriter(cmd.ErrOrStderr()),
		output.WithNoColor(noColorFlag),
		output.WithQuery(queryFlag),
		output.WithPretty(prettyFlag),
	)

	resp, err := client.Do(cmd.Context(), req)
	if err != nil {
		presenter.PresentError(err)
		return nil
	}

	presenter.PresentResponse(resp)
	return nil
}
