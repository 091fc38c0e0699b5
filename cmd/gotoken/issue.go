package main

import (
	"encoding/json"
	"fmt"
	"time"

	goToken "github.com/MrEthical07/goToken"
	"github.com/spf13/cobra"
)

type issueFlags struct {
	secret    string
	uid       string
	data      string
	admin     bool
	debug     bool
	simulate  bool
	expires   time.Duration
	notBefore time.Duration
}

func issueCmd(environ map[string]string) *cobra.Command {
	var flags issueFlags
	cmd := &cobra.Command{
		Use:   "issue",
		Short: "Issue one token and print it",
		Long: `issue builds the payload from --data and --uid, signs it and prints the token.

--expires and --not-before are durations relative to now.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runIssue(cmd, environ, &flags)
		},
	}

	fs := cmd.Flags()
	fs.StringVar(&flags.secret, "secret", "", "signing secret (overrides GOTOKEN_SECRET)")
	fs.StringVarP(&flags.uid, "uid", "u", "", "uid placed in the payload")
	fs.StringVarP(&flags.data, "data", "d", "", "payload as a JSON object")
	fs.BoolVar(&flags.admin, "admin", false, "set the admin claim")
	fs.BoolVar(&flags.debug, "debug", false, "set the debug claim")
	fs.BoolVar(&flags.simulate, "simulate", false, "set the simulate claim")
	fs.DurationVar(&flags.expires, "expires", 0, "expire the token this long from now")
	fs.DurationVar(&flags.notBefore, "not-before", 0, "token becomes valid this long from now")

	return cmd
}

func runIssue(cmd *cobra.Command, environ map[string]string, flags *issueFlags) error {
	envCfg, err := loadEnv(environ)
	if err != nil {
		return err
	}
	if flags.secret != "" {
		envCfg.Secret = flags.secret
	}

	data, err := issuePayload(flags)
	if err != nil {
		return err
	}
	opts := issueOptions(cmd, flags, time.Now())

	b := goToken.New().WithConfig(envCfg.issuerConfig())
	if envCfg.AuditLog {
		logger := newAuditLogger(cmd.ErrOrStderr())
		defer func() { _ = logger.Sync() }()
		b = b.WithAuditSink(goToken.NewZapSink(logger))
	}
	issuer, err := b.Build()
	if err != nil {
		return err
	}
	defer issuer.Close()

	token, err := issuer.IssueFromValues(cmd.Context(), data, opts)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), token)
	return err
}

// issuePayload decodes --data and merges --uid into it. A non-object --data
// is passed through unchanged so issuance reports it as an invalid argument.
func issuePayload(flags *issueFlags) (any, error) {
	var data any
	if flags.data != "" {
		if err := json.Unmarshal([]byte(flags.data), &data); err != nil {
			return nil, fmt.Errorf("decode --data: %w", err)
		}
	}
	if flags.uid == "" {
		return data, nil
	}

	switch m := data.(type) {
	case nil:
		return map[string]any{"uid": flags.uid}, nil
	case map[string]any:
		m["uid"] = flags.uid
		return m, nil
	default:
		return data, nil
	}
}

func issueOptions(cmd *cobra.Command, flags *issueFlags, now time.Time) map[string]any {
	opts := make(map[string]any)
	fs := cmd.Flags()
	if fs.Changed("admin") {
		opts[goToken.OptionAdmin] = flags.admin
	}
	if fs.Changed("debug") {
		opts[goToken.OptionDebug] = flags.debug
	}
	if fs.Changed("simulate") {
		opts[goToken.OptionSimulate] = flags.simulate
	}
	if fs.Changed("expires") {
		opts[goToken.OptionExpires] = now.Add(flags.expires)
	}
	if fs.Changed("not-before") {
		opts[goToken.OptionNotBefore] = now.Add(flags.notBefore)
	}
	return opts
}
