package cmd

import (
	"github.com/spf13/cobra"
)

var getHeadersFlag []string

var getCmd = &cobra.Command{
	Use:   "get <URL>",
	Short: "Send a GET request",
	Long: `Send a GET request to the given URL. A missing scheme defaults
to http://.

Examples:
  reqq get http://example.com
  reqq get example.com -H "User-Agent=MyClient"`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return dispatch(cmd, httpClient, "GET", args[0], getHeadersFlag, "", "")
	},
}

func init() {
	getCmd.Flags().StringArrayVarP(&getHeadersFlag, "header", "H", nil, "Request header as key=value (repeatable)")
}
