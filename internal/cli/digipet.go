package cli

import (
	"errors"
	"fmt"
	"io"

	"digipet/internal/domain/digipet"
	"digipet/internal/platform/httpclient"

	"github.com/spf13/cobra"
)

type stats struct {
	Happiness  int `json:"happiness"`
	Nutrition  int `json:"nutrition"`
	Discipline int `json:"discipline"`
}

type stateResponse struct {
	Message string `json:"message"`
	Digipet *stats `json:"digipet"`
}

type actionCommand struct {
	action digipet.Action
	short  string
}

var actionCommands = []actionCommand{
	{digipet.ActionHatch, "Hatch a new digipet"},
	{digipet.ActionWalk, "Walk your digipet (+happiness, -nutrition)"},
	{digipet.ActionFeed, "Feed your digipet (+nutrition, -discipline)"},
	{digipet.ActionTrain, "Train your digipet (+discipline, -happiness)"},
	{digipet.ActionIgnore, "Ignore your digipet (everything goes down)"},
	{digipet.ActionRehome, "Rehome your digipet"},
}

func newShowCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show your digipet's stats",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runState(cmd, opts, "/digipet")
		},
	}
}

func newActionCmd(opts *rootOptions, a actionCommand) *cobra.Command {
	return &cobra.Command{
		Use:   string(a.action),
		Short: a.short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runState(cmd, opts, "/digipet/"+string(a.action))
		},
	}
}

func runState(cmd *cobra.Command, opts *rootOptions, path string) error {
	c, err := opts.client()
	if err != nil {
		return err
	}

	var resp stateResponse
	if err := c.Get(cmd.Context(), path, &resp); err != nil {
		// 404/409 traen un mensaje pensado para el usuario.
		var he *httpclient.HTTPError
		if errors.As(err, &he) && he.Message != "" {
			return errors.New(he.Message)
		}
		return err
	}

	printState(cmd.OutOrStdout(), resp)
	return nil
}

func printState(w io.Writer, resp stateResponse) {
	fmt.Fprintln(w, resp.Message)
	if resp.Digipet != nil {
		fmt.Fprintf(w, "happiness=%d nutrition=%d discipline=%d\n",
			resp.Digipet.Happiness, resp.Digipet.Nutrition, resp.Digipet.Discipline)
	}
}
