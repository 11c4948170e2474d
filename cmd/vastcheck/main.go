package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/Gobd/vastcheck"
	"github.com/spf13/cobra"
)

var (
	implementationType string
	programmatic       bool
	jsonOutput         bool
	decode             bool
	quiet              bool

	exitCode int
)

var rootCmd = &cobra.Command{
	Use:   "vastcheck [flags] <vast-request>",
	Short: "Validate VAST ad request parameters",
	Long: `vastcheck checks the query parameters of a VAST ad request against the
parameter requirements of its implementation type (web, app, ctv, audio,
doh), including the extra tiers that apply to programmatic requests.

The request string is the part after the '?' of the ad request URL.`,
	Args:         cobra.ExactArgs(1),
	SilenceUsage: true,
	RunE:         run,
}

func init() {
	rootCmd.Flags().StringVarP(&implementationType, "implementation_type", "i", "",
		"implementation type of the VAST request (web, app, ctv, audio, doh)")
	rootCmd.Flags().BoolVarP(&programmatic, "programmatic", "p", false,
		"indicate if the request is programmatic")
	rootCmd.Flags().BoolVarP(&jsonOutput, "json", "j", false,
		"output in JSON format")
	rootCmd.Flags().BoolVarP(&decode, "decode", "d", false,
		"URL-decode parameter values")
	rootCmd.Flags().BoolVarP(&quiet, "quiet", "q", false,
		"suppress output except for errors")
	cobra.CheckErr(rootCmd.MarkFlagRequired("implementation_type"))
}

func run(cmd *cobra.Command, args []string) error {
	impl := strings.ToLower(implementationType)
	present, issues := vastcheck.Validate(args[0], impl, programmatic, decode)
	report := vastcheck.NewReport(present, issues)

	if jsonOutput {
		out, err := report.JSON()
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(out))
	} else {
		fmt.Fprint(cmd.OutOrStdout(), report.Text(impl, quiet))
	}

	if !report.Valid {
		exitCode = 1
	}
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
	os.Exit(exitCode)
}
