package cmd

import (
	"github.com/spf13/cobra"
)

var deleteHeadersFlag []string

var deleteCmd = &cobra.Command{
	Use:   "delete <URL>",
	Short: "Send a DELETE request",
	Long: `Send a DELETE request to the given URL. Like get, it never
carries a body.

Examples:
  reqq delete http://example.com/items/1
  reqq delete example.com/items/1 -H "Authorization=Bearer token"`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return dispatch(cmd, httpClient, "DELETE", args[0], deleteHeadersFlag, "", "")
	},
}

func init() {
	deleteCmd.Flags().StringArrayVarP(&deleteHeadersFlag, "header", "H", nil, "Request header as key=value (repeatable)")
}
