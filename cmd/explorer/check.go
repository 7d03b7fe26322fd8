package main

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/gutendex/explorer/pkg/gate"
)

// printRenderer reports what the page would show instead of rendering it.
type printRenderer struct {
	w io.Writer
}

func (p printRenderer) ShowFallback(_ context.Context, notice string) error {
	_, err := fmt.Fprintf(p.w, "fallback: %s\n", notice)
	return err
}

func (p printRenderer) Attach(_ context.Context, m gate.Module) error {
	_, err := fmt.Fprintf(p.w, "attach:   %s\n", m.Path())
	return err
}

func newCheckCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check <user-agent>",
		Short: "Show the browser gate decision for a User-Agent string",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()

			d, err := gate.NewBootstrapper(nil).Run(cmd.Context(), args[0], printRenderer{w: out})
			if err != nil {
				return err
			}

			summary := fmt.Sprintf("browser:  %s\n", d.Identity)
			if d.Err != nil {
				summary = fmt.Sprintf("reason:   %v\n", d.Err)
			}
			if _, err := fmt.Fprintf(out, "%sstate:    %s\n", summary, d.State); err != nil {
				return fmt.Errorf("write decision: %w", err)
			}
			return nil
		},
	}
}
