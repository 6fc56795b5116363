package results

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/studiolanding/promptgen/internal/eval/metrics"
	"gopkg.in/yaml.v3"
)

// EvalConfig represents the configuration section of the eval YAML
type EvalConfig struct {
	Provider    string `yaml:"provider"`
	Model       string `yaml:"model"`
	DatasetPath string `yaml:"datasetpath"`
	SampleSize  int    `yaml:"samplesize"`
	Timestamp   string `yaml:"timestamp"`
}

// EvalResult represents a single evaluation result
type EvalResult struct {
	Identifier      string             `yaml:"identifier"`
	ImagePath       string             `yaml:"imagepath"`
	Extracted       map[string]string  `yaml:"extracted"`
	OverallScore    float64            `yaml:"overallscore"`
	FieldsMatched   int                `yaml:"fieldsmatched"`
	FieldsMissing   int                `yaml:"fieldsmissing"`
	FieldsIncorrect int                `yaml:"fieldsincorrect"`
	FieldScores     map[string]float64 `yaml:"fieldscores"`
}

// EvalSpec represents the complete evaluation report
type EvalSpec struct {
	Config  EvalConfig   `yaml:"config"`
	Summary Summary      `yaml:"summary"`
	Results []EvalResult `yaml:"results"`
}

// Summary mirrors metrics.Summary in YAML form
type Summary struct {
	TotalRecords    int                `yaml:"totalrecords"`
	SuccessfulEvals int                `yaml:"successfulevals"`
	FailedEvals     int                `yaml:"failedevals"`
	AverageScore    float64            `yaml:"averagescore"`
	MedianScore     float64            `yaml:"medianscore"`
	MinScore        float64            `yaml:"minscore"`
	MaxScore        float64            `yaml:"maxscore"`
	FieldAccuracies map[string]float64 `yaml:"fieldaccuracies"`
}

// SaveToYAML saves evaluation results to a YAML file in evals/ directory
func SaveToYAML(provider, model, datasetPath string, sampleSize int, results []metrics.EvalResult, summary *metrics.Summary) (string, error) {
	if err := os.MkdirAll("evals", 0755); err != nil {
		return "", fmt.Errorf("failed to create evals directory: %w", err)
	}

	timestamp := time.Now().Format("2006-01-02_15-04-05")

	spec := EvalSpec{
		Config: EvalConfig{
			Provider:    provider,
			Model:       model,
			DatasetPath: datasetPath,
			SampleSize:  sampleSize,
			Timestamp:   timestamp,
		},
		Summary: Summary{
			TotalRecords:    summary.TotalRecords,
			SuccessfulEvals: summary.SuccessfulEvals,
			FailedEvals:     summary.FailedEvals,
			AverageScore:    summary.AverageScore,
			MedianScore:     summary.MedianScore,
			MinScore:        summary.MinScore,
			MaxScore:        summary.MaxScore,
			FieldAccuracies: summary.FieldAccuracies,
		},
		Results: make([]EvalResult, 0, len(results)),
	}

	for _, r := range results {
		if r.Error != "" {
			continue // Skip failed evaluations
		}

		evalResult := EvalResult{
			Identifier:      r.ID,
			ImagePath:       r.ImagePath,
			Extracted:       r.Extracted,
			OverallScore:    r.Comparison.OverallScore,
			FieldsMatched:   r.Comparison.FieldsMatched,
			FieldsMissing:   r.Comparison.FieldsMissing,
			FieldsIncorrect: r.Comparison.FieldsIncorrect,
			FieldScores:     make(map[string]float64),
		}
		for field, comp := range r.Comparison.Fields {
			evalResult.FieldScores[field] = comp.Score
		}

		spec.Results = append(spec.Results, evalResult)
	}

	// Model ids like anthropic/claude-sonnet-4 contain path separators
	safeModel := strings.ReplaceAll(model, "/", "-")
	filename := fmt.Sprintf("evals/%s-%s.yaml", safeModel, timestamp)

	data, err := yaml.Marshal(&spec)
	if err != nil {
		return "", fmt.Errorf("failed to marshal YAML: %w", err)
	}

	if err := os.WriteFile(filename, data, 0644); err != nil {
		return "", fmt.Errorf("failed to write YAML file: %w", err)
	}

	absPath, _ := filepath.Abs(filename)
	return absPath, nil
}
