package metrics

import (
	"sort"

	"github.com/studiolanding/promptgen/internal/generation"
)

// EvalResult represents the outcome for a single brandboard sample
type EvalResult struct {
	ID         string
	ImagePath  string
	Extracted  generation.BrandInfo
	Comparison *RecordComparison
	Error      string // If extraction failed
}

// Summary represents aggregated evaluation metrics
type Summary struct {
	TotalRecords    int
	SuccessfulEvals int
	FailedEvals     int
	AverageScore    float64
	MedianScore     float64
	MinScore        float64
	MaxScore        float64
	FieldAccuracies map[string]float64
}

// Summarize aggregates per-record comparisons into overall statistics
func Summarize(results []EvalResult) *Summary {
	summary := &Summary{
		TotalRecords:    len(results),
		FieldAccuracies: make(map[string]float64),
	}

	var scores []float64
	fieldScores := make(map[string][]float64)

	for _, result := range results {
		if result.Error != "" {
			summary.FailedEvals++
			continue
		}

		summary.SuccessfulEvals++
		scores = append(scores, result.Comparison.OverallScore)

		for field, comp := range result.Comparison.Fields {
			fieldScores[field] = append(fieldScores[field], comp.Score)
		}
	}

	if len(scores) == 0 {
		return summary
	}

	var total float64
	for _, score := range scores {
		total += score
	}
	summary.AverageScore = total / float64(len(scores))

	sort.Float64s(scores)
	mid := len(scores) / 2
	if len(scores)%2 == 0 {
		summary.MedianScore = (scores[mid-1] + scores[mid]) / 2
	} else {
		summary.MedianScore = scores[mid]
	}

	summary.MinScore = scores[0]
	summary.MaxScore = scores[len(scores)-1]

	for field, fs := range fieldScores {
		var fieldTotal float64
		for _, score := range fs {
			fieldTotal += score
		}
		summary.FieldAccuracies[field] = fieldTotal / float64(len(fs))
	}

	return summary
}
