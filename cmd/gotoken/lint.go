package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func lintCmd(environ map[string]string) *cobra.Command {
	var secret string
	cmd := &cobra.Command{
		Use:   "lint",
		Short: "Report risky issuer settings from the environment",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			envCfg, err := loadEnv(environ)
			if err != nil {
				return err
			}
			if secret != "" {
				envCfg.Secret = secret
			}

			cfg := envCfg.issuerConfig()
			if err := cfg.Validate(); err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			warnings := cfg.Lint()
			if len(warnings) == 0 {
				_, err := fmt.Fprintln(out, "ok")
				return err
			}
			for _, w := range warnings {
				if _, err := fmt.Fprintf(out, "%s: %s\n", w.Code, w.Message); err != nil {
					return err
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&secret, "secret", "", "signing secret (overrides GOTOKEN_SECRET)")
	return cmd
}
