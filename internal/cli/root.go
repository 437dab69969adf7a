package cli

import (
	"fmt"
	"os"
	"time"

	"digipet/internal/platform/httpclient"

	"github.com/spf13/cobra"
)

const defaultAddr = "http://localhost:8080"

type rootOptions struct {
	addr    string
	timeout time.Duration
}

// NewRootCmd arma el árbol de comandos de digipetctl.
func NewRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:           "digipetctl",
		Short:         "Look after your digipet from the terminal",
		Long:          "digipetctl talks to a running digipet API: check the stats, hatch, walk, feed, train, ignore or rehome your digipet.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	addr := os.Getenv("DIGIPET_ADDR")
	if addr == "" {
		addr = defaultAddr
	}
	cmd.PersistentFlags().StringVar(&opts.addr, "addr", addr, "digipet API base URL (env DIGIPET_ADDR)")
	cmd.PersistentFlags().DurationVar(&opts.timeout, "timeout", httpclient.DefaultTimeout, "request timeout")

	cmd.AddCommand(newShowCmd(opts))
	for _, a := range actionCommands {
		cmd.AddCommand(newActionCmd(opts, a))
	}
	cmd.AddCommand(newHistoryCmd(opts))

	return cmd
}

func Execute() error {
	cmd := NewRootCmd()
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(cmd.ErrOrStderr(), "error:", err)
		return err
	}
	return nil
}

func (o *rootOptions) client() (*httpclient.Client, error) {
	return httpclient.NewWithBaseURL(o.addr, o.timeout)
}
