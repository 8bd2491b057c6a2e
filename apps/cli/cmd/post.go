package cmd

import (
	"github.com/spf13/cobra"
)

var (
	postHeadersFlag []string
	postDataFlag    string
	postFileFlag    string
)

var postCmd = &cobra.Command{
	Use:   "post <URL>",
	Short: "Send a POST request with data or a file",
	Long: `Send a POST request to the given URL. Raw -d data is sent with
Content-Type: application/json; -f uploads the file as a multipart
form part named "file". When both are given the file wins.

Examples:
  reqq post http://example.com -d '{"key": "value"}'
  reqq post example.com -f file.txt`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return dispatch(cmd, httpClient, "POST", args[0], postHeadersFlag, postDataFlag, postFileFlag)
	},
}

func init() {
	postCmd.Flags().StringArrayVarP(&postHeadersFlag, "header", "H", nil, "Request header as key=value (repeatable)")
	postCmd.Flags().StringVarP(&postDataFlag, "data", "d", "", "Raw request body, sent as application/json")
	postCmd.Flags().StringVarP(&postFileFlag, "file", "f", "", "File to upload as multipart form data")
}
