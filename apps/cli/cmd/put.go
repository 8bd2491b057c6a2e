package cmd

import (
	"github.com/spf13/cobra"
)

var (
	putHeadersFlag []string
	putDataFlag    string
	putFileFlag    string
)

var putCmd = &cobra.Command{
	Use:   "put <URL>",
	Short: "Send a PUT request with data or a file",
	Long: `Send a PUT request to the given URL. Body handling matches post:
raw -d data goes out as application/json, -f uploads the file as a
multipart form part named "file", and the file wins over -d.

Examples:
  reqq put http://example.com -d '{"update": true}'
  reqq put example.com -f update.txt`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return dispatch(cmd, httpClient, "PUT", args[0], putHeadersFlag, putDataFlag, putFileFlag)
	},
}

func init() {
	putCmd.Flags().StringArrayVarP(&putHeadersFlag, "header", "H", nil, "Request header as key=value (repeatable)")
	putCmd.Flags().StringVarP(&putDataFlag, "data", "d", "", "Raw request body, sent as application/json")
	putCmd.Flags().StringVarP(&putFileFlag, "file", "f", "", "File to upload as multipart form data")
}
