package cmd

import (
	"github.com/spf13/cobra"
	"github.com/studiolanding/promptgen/internal/evalcmd"
)

func newEvalCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "eval",
		Short: "Brand extraction evaluation tools",
		Long: `Evaluation tools for measuring how accurately the vision model extracts
brand attributes from labeled brandboard datasets.

Datasets are Parquet or JSONL files of brandboard images with expected colors,
typography and style keywords; results are written as YAML reports.`,
	}

	cmd.AddCommand(evalcmd.NewRunCmd())

	return cmd
}
