package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/studiolanding/promptgen/internal/generation"
	"github.com/studiolanding/promptgen/internal/images"
)

func newGenerateCmd() *cobra.Command {
	var (
		brandboardPaths []string
		copyPaths       []string
		output          string
	)

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a Lovable prompt from local image files",
		Example: `  # One brandboard capture and two copy screenshots
  promptgen generate --brandboard board.png --copy copy1.png --copy copy2.png

  # Write somewhere other than prompt_lovable.txt
  promptgen generate --brandboard board.png --copy copy.png -o webinar_prompt.txt`,
		RunE: func(cmd *cobra.Command, args []string) error {
			brandImgs, err := encodeFiles(brandboardPaths)
			if err != nil {
				return err
			}
			copyImgs, err := encodeFiles(copyPaths)
			if err != nil {
				return err
			}

			service := generation.NewService()
			result, err := service.Run(cmd.Context(), brandImgs, copyImgs)
			if err != nil {
				return err
			}

			brandJSON, err := json.MarshalIndent(result.BrandInfo, "", "  ")
			if err != nil {
				return fmt.Errorf("failed to render brand info: %w", err)
			}
			fmt.Printf("Extracted brand info:\n%s\n\n", brandJSON)

			if err := os.WriteFile(output, []byte(result.FinalPrompt), 0644); err != nil {
				return fmt.Errorf("failed to write prompt file: %w", err)
			}

			absPath, _ := filepath.Abs(output)
			fmt.Printf("Prompt saved to: %s\n", absPath)
			return nil
		},
	}

	cmd.Flags().StringArrayVar(&brandboardPaths, "brandboard", nil, "Brandboard image file (repeatable)")
	cmd.Flags().StringArrayVar(&copyPaths, "copy", nil, "Copy screenshot file (repeatable)")
	cmd.Flags().StringVarP(&output, "output", "o", "prompt_lovable.txt", "Output file for the generated prompt")
	_ = cmd.MarkFlagRequired("brandboard")
	_ = cmd.MarkFlagRequired("copy")

	return cmd
}

func encodeFiles(paths []string) ([]images.Encoded, error) {
	var encoded []images.Encoded
	for _, path := range paths {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read image %s: %w", path, err)
		}
		encoded = append(encoded, images.Encode(data, filepath.Base(path)))
	}
	return encoded, nil
}
