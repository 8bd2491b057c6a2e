package cmd

import (
	"errors"
	"io/fs"
	"os"

	"github.com/spf13/cobra"

	reqhttp "github.com/avolkov/reqq/packages/http"
)

var (
	version   = "dev"
	buildTime = "unknown"
)

var (
	noColorFlag  bool
	insecureFlag bool
	proxyFlag    string
	queryFlag    string
	prettyFlag   bool
)

// httpClient is built once per process in PersistentPreRun, after the
// global flags are known, and handed into every dispatch.
var httpClient *reqhttp.Client

var rootCmd = &cobra.Command{
	Use:   "reqq",
	Short: "Send HTTP requests from the command line",
	Long: `reqq sends a single HTTP request and prints the response:
status line, headers, then the body.

Examples:
  reqq get example.com
  reqq get example.com -H "User-Agent=MyClient"
  reqq post example.com -d '{"key": "value"}'
  reqq post example.com -f file.txt
  reqq put example.com -d '{"update": true}'
  reqq delete http://example.com/items/1`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		opts := []reqhttp.ClientOption{
			reqhttp.WithDefaultHeader("User-Agent", "reqq/"+version),
		}
		if insecureFlag {
			opts = append(opts, reqhttp.WithValidateSSL(false))
		}
		if proxyFlag != "" {
			opts = append(opts, reqhttp.WithProxy(proxyFlag))
		}
		httpClient = reqhttp.NewClient(opts...)
	},
}

func Execute(v, bt string) {
	version = v
	buildTime = bt
	if err := rootCmd.Execute(); err != nil {
		os.Exit(exitCode(err))
	}
}

func exitCode(err error) int {
	if errors.Is(err, fs.ErrNotExist) || errors.Is(err, fs.ErrPermission) {
		return ExitFileError
	}
	return ExitUsageError
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&noColorFlag, "no-color", false, "Disable colored output")
	rootCmd.PersistentFlags().BoolVar(&insecureFlag, "insecure", false, "Skip TLS certificate verification")
	rootCmd.PersistentFlags().StringVar(&proxyFlag, "proxy", "", "Proxy URL for the request")
	rootCmd.PersistentFlags().StringVarP(&queryFlag, "query", "q", "", "Print only the value at this gjson path (JSON responses)")
	rootCmd.PersistentFlags().BoolVar(&prettyFlag, "pretty", false, "Re-indent JSON response bodies")

	rootCmd.AddCommand(getCmd)
	rootCmd.AddCommand(postCmd)
	rootCmd.AddCommand(putCmd)
	rootCmd.AddCommand(deleteCmd)
	rootCmd.AddCommand(versionCmd)
}
