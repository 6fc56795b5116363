package evalcmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"

	"github.com/spf13/cobra"
	"github.com/studiolanding/promptgen/internal/eval/dataset"
	"github.com/studiolanding/promptgen/internal/eval/metrics"
	"github.com/studiolanding/promptgen/internal/eval/results"
	"github.com/studiolanding/promptgen/internal/generation"
	"github.com/studiolanding/promptgen/internal/images"
)

// NewRunCmd creates the eval run command
func NewRunCmd() *cobra.Command {
	var (
		datasetPath string
		sample      int
		concurrency int
	)

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run brand extraction evaluation against a labeled dataset",
		Example: `  # Evaluate against the whole dataset
  promptgen eval run --dataset brandboards.parquet

  # Quick sampled run
  promptgen eval run --dataset brandboards.jsonl --sample 10 --concurrency 4`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return executeRun(cmd.Context(), datasetPath, sample, concurrency)
		},
	}

	cmd.Flags().StringVar(&datasetPath, "dataset", "", "Path to labeled dataset (.parquet or .jsonl)")
	cmd.Flags().IntVar(&sample, "sample", 0, "Evaluate only the first N records (0 = all)")
	cmd.Flags().IntVar(&concurrency, "concurrency", 2, "Number of records evaluated in parallel")
	_ = cmd.MarkFlagRequired("dataset")

	return cmd
}

func executeRun(ctx context.Context, datasetPath string, sample, concurrency int) error {
	service := generation.NewService()
	slog.Info("Starting evaluation run", "dataset", datasetPath,
		"provider", service.ProviderName(), "model", service.Model())

	loader := dataset.NewLoader(datasetPath)
	var (
		records []dataset.BrandRecord
		err     error
	)
	if sample > 0 {
		records, err = loader.LoadSample(sample)
	} else {
		records, err = loader.Load()
	}
	if err != nil {
		return fmt.Errorf("failed to load dataset: %w", err)
	}

	slog.Info("Dataset loaded", "records", len(records))

	if concurrency < 1 {
		concurrency = 1
	}

	var wg sync.WaitGroup
	semaphore := make(chan struct{}, concurrency)
	resultsChan := make(chan metrics.EvalResult, len(records))

	for i, record := range records {
		wg.Add(1)
		go func(idx int, record dataset.BrandRecord) {
			defer wg.Done()
			semaphore <- struct{}{}        // Acquire
			defer func() { <-semaphore }() // Release

			slog.Info("Processing record", "id", record.ID, "progress", fmt.Sprintf("%d/%d", idx+1, len(records)))
			resultsChan <- processRecord(ctx, service, record, filepath.Dir(datasetPath))
		}(i, record)
	}

	go func() {
		wg.Wait()
		close(resultsChan)
	}()

	var evalResults []metrics.EvalResult
	for result := range resultsChan {
		evalResults = append(evalResults, result)
	}

	summary := metrics.Summarize(evalResults)
	printSummary(summary)

	savedPath, err := results.SaveToYAML(service.ProviderName(), service.Model(), datasetPath, len(records), evalResults, summary)
	if err != nil {
		return fmt.Errorf("failed to save results: %w", err)
	}

	fmt.Printf("\nEvaluation results saved to: %s\n", savedPath)
	return nil
}

func processRecord(ctx context.Context, service *generation.Service, record dataset.BrandRecord, baseDir string) metrics.EvalResult {
	result := metrics.EvalResult{
		ID:        record.ID,
		ImagePath: record.ImagePath,
	}

	imagePath := record.ImagePath
	if !filepath.IsAbs(imagePath) {
		imagePath = filepath.Join(baseDir, imagePath)
	}

	data, err := os.ReadFile(imagePath)
	if err != nil {
		result.Error = fmt.Sprintf("failed to read image: %v", err)
		return result
	}

	extracted, err := service.ExtractBrandInfo(ctx, []images.Encoded{
		images.Encode(data, filepath.Base(imagePath)),
	})
	if err != nil {
		result.Error = fmt.Sprintf("failed to extract brand info: %v", err)
		return result
	}

	result.Extracted = extracted
	result.Comparison = metrics.CompareBrandInfo(record.Expected(), extracted)
	return result
}

func printSummary(summary *metrics.Summary) {
	fmt.Printf("\nEvaluation summary\n")
	fmt.Printf("  Records:    %d (%d ok, %d failed)\n", summary.TotalRecords, summary.SuccessfulEvals, summary.FailedEvals)
	fmt.Printf("  Avg score:  %.3f\n", summary.AverageScore)
	fmt.Printf("  Median:     %.3f\n", summary.MedianScore)
	fmt.Printf("  Min/Max:    %.3f / %.3f\n", summary.MinScore, summary.MaxScore)
	if len(summary.FieldAccuracies) > 0 {
		fmt.Printf("  Field accuracies:\n")
		for field, score := range summary.FieldAccuracies {
			fmt.Printf("    %-18s %.3f\n", field, score)
		}
	}
}
