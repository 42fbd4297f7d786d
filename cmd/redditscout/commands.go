package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/prospectlab/redditscout/internal/app"
)

func newRangeCommand() *cobra.Command {
	var max int
	cmd := &cobra.Command{
		Use:   "range <start> <end>",
		Short: "Print the capped descending identifier batch between two fullnames",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			a := app.New(cfg)
			ids, err := a.GenerateRange(args[0], args[1], max)
			if err != nil {
				return err
			}
			for _, id := range ids {
				fmt.Fprintln(cmd.OutOrStdout(), id)
			}
			return nil
		},
	}
	cmd.Flags().IntVar(&max, "max", 0, "Batch cap (0 = default of 100)")
	return cmd
}

func newExtractCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "extract <url>",
		Short: "Fetch a URL, extract its readable body, and derive a product descriptor",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a := app.New(cfg)
			d, err := a.ExtractURL(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(d)
		},
	}
}

func newScanCommand() *cobra.Command {
	var max int
	cmd := &cobra.Command{
		Use:   "scan <start> <end>",
		Short: "Generate an identifier batch and bulk-fetch the posts behind it",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			a := app.New(cfg)
			posts, err := a.ScanRange(cmd.Context(), args[0], args[1], max)
			if err != nil {
				return err
			}
			enc := json.NewEncoder(cmd.OutOrStdout())
			for _, p := range posts {
				if err := enc.Encode(p); err != nil {
					return err
				}
			}
			return nil
		},
	}
	cmd.Flags().IntVar(&max, "max", 0, "Batch cap (0 = default of 100)")
	return cmd
}
