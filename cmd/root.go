package cmd

import (
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "promptgen",
		Short: "Lovable prompt generator powered by vision LLMs",
		Long: `Promptgen turns brandboard captures and approved-copy screenshots into a
structured Lovable prompt.

It extracts brand colors, typography and style from the brandboard, transcribes
the approved marketing copy verbatim, reorganizes it into a fixed section
template and interpolates everything into the final prompt.`,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// Load .env file if present (ignore errors)
			_ = godotenv.Load()
		},
	}

	// Add subcommands
	cmd.AddCommand(newServeCmd())
	cmd.AddCommand(newGenerateCmd())
	cmd.AddCommand(newEvalCmd())

	return cmd
}
