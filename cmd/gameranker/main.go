package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

const appVersion = "dev"

func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "gameranker",
		Short: "Rank a day of baseball games by how exciting they were",
	}

	root.AddCommand(rankCmd())
	root.AddCommand(previewCmd())
	root.AddCommand(rotationCmd())

	return root
}

func rankCmd() *cobra.Command {
	var opts rankOptions

	cmd := &cobra.Command{
		Use:   "rank",
		Short: "Score and rank a day's completed games",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRank(cmd.Context(), opts)
		},
	}

	cmd.Flags().StringVar(&opts.date, "date", "", "date to rank, YYYY-MM-DD (default: today)")
	cmd.Flags().IntVar(&opts.top, "top", 0, "only print the top N games (0 = all)")
	cmd.Flags().StringSliceVar(&opts.disable, "disable", nil, "factor names to exclude from scoring")
	cmd.Flags().StringVar(&opts.format, "format", "text", "output format: text or json")
	cmd.Flags().StringVar(&opts.out, "out", "", "also write a snapshot under this directory")
	return cmd
}

func previewCmd() *cobra.Command {
	var opts rankOptions

	cmd := &cobra.Command{
		Use:   "preview",
		Short: "Rank a day's scheduled games on matchup appeal",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPreview(cmd.Context(), opts)
		},
	}

	cmd.Flags().StringVar(&opts.date, "date", "", "date to preview, YYYY-MM-DD (default: today)")
	cmd.Flags().IntVar(&opts.top, "top", 0, "only print the top N games (0 = all)")
	cmd.Flags().StringSliceVar(&opts.disable, "disable", nil, "factor names to exclude from scoring")
	cmd.Flags().StringVar(&opts.format, "format", "text", "output format: text or json")
	return cmd
}

func rotationCmd() *cobra.Command {
	var (
		teamID int64
		format string
	)

	cmd := &cobra.Command{
		Use:   "rotation",
		Short: "Rank a team's pitchers by season ERA",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRotation(cmd.Context(), teamID, format)
		},
	}

	cmd.Flags().Int64Var(&teamID, "team", 0, "upstream team id (required)")
	cmd.Flags().StringVar(&format, "format", "text", "output format: text or json")
	_ = cmd.MarkFlagRequired("team")
	return cmd
}
