package main

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/gutendex/explorer/pkg/logger"
	"github.com/gutendex/explorer/pkg/resultpanel"
)

func newFetchCmd() *cobra.Command {
	var (
		verbose bool
		hosts   []string
		base    string
	)

	cmd := &cobra.Command{
		Use:   "fetch <url>",
		Short: "Fetch a URL the way the results panel does and print the output",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()

			opts := []resultpanel.Option{
				resultpanel.WithAllowedHosts(hosts...),
				resultpanel.WithBaseURL(base),
			}
			if verbose {
				opts = append(opts, resultpanel.WithLogger(logger.New(
					logger.WithFormat(logger.FormatText),
					logger.WithOutput(cmd.ErrOrStderr()),
				)))
			}

			target := resultpanel.TargetFunc(func(_ context.Context, text string) error {
				_, err := io.WriteString(out, text+"\n")
				return err
			})
			_, err := resultpanel.New(opts...).Submit(cmd.Context(), args[0], target).Wait()
			if err != nil {
				return fmt.Errorf("write results: %w", err)
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "log fetch failures to stderr")
	cmd.Flags().StringSliceVar(&hosts, "allow-host", []string{resultpanel.AnyHost},
		`hosts the URL may point at; "*" allows any public address`)
	cmd.Flags().StringVar(&base, "base", "", "base URL for relative input")
	return cmd
}
