package cli

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"text/tabwriter"
	"time"

	"digipet/internal/domain/digipet"

	"github.com/spf13/cobra"
)

type historyResponse struct {
	Events []struct {
		ID         string    `json:"id"`
		Action     string    `json:"action"`
		Happiness  int       `json:"happiness"`
		Nutrition  int       `json:"nutrition"`
		Discipline int       `json:"discipline"`
		OccurredAt time.Time `json:"occurred_at"`
	} `json:"events"`
}

func newHistoryCmd(opts *rootOptions) *cobra.Command {
	var (
		limit   int
		actions []string
	)

	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show what has happened to your digipet, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			for _, a := range actions {
				if _, err := digipet.ParseAction(a); err != nil {
					return err
				}
			}

			q := url.Values{}
			if limit > 0 {
				q.Set("limit", strconv.Itoa(limit))
			}
			if len(actions) > 0 {
				q.Set("actions", strings.Join(actions, ","))
			}
			path := "/digipet/history"
			if len(q) > 0 {
				path += "?" + q.Encode()
			}

			c, err := opts.client()
			if err != nil {
				return err
			}
			var resp historyResponse
			if err := c.Get(cmd.Context(), path, &resp); err != nil {
				return err
			}

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(tw, "WHEN\tACTION\tHAPPINESS\tNUTRITION\tDISCIPLINE")
			for _, e := range resp.Events {
				fmt.Fprintf(tw, "%s\t%s\t%d\t%d\t%d\n",
					e.OccurredAt.Local().Format(time.DateTime), e.Action, e.Happiness, e.Nutrition, e.Discipline)
			}
			return tw.Flush()
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 0, "maximum number of events (1-200, default 50)")
	cmd.Flags().StringSliceVar(&actions, "actions", nil, "only these actions (e.g. feed,ignore)")
	return cmd
}
