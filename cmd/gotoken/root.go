package main

import (
	"github.com/spf13/cobra"
)

func newRootCmd(environ map[string]string) *cobra.Command {
	root := &cobra.Command{
		Use:   "gotoken",
		Short: "Issue signed authentication tokens",
		Long: `gotoken issues compact HS256 tokens carrying a uid payload and optional
expiry, not-before, admin, debug and simulate claims.

The signing secret is read from GOTOKEN_SECRET unless --secret is given.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(issueCmd(environ))
	root.AddCommand(lintCmd(environ))
	return root
}
