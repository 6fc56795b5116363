package metrics

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/studiolanding/promptgen/internal/generation"
)

// FieldComparison represents comparison for a single brand attribute
type FieldComparison struct {
	FieldName string
	Expected  string
	Actual    string
	Score     float64 // 0.0 to 1.0
	Distance  int     // Levenshtein distance
	Match     string  // "exact", "fuzzy_high", "fuzzy_medium", "fuzzy_low", "no_match", "missing"
	Notes     string
}

// RecordComparison represents field-by-field comparison of one
// extraction against its reference record
type RecordComparison struct {
	Fields           map[string]FieldComparison
	OverallScore     float64
	FieldsMatched    int
	FieldsMissing    int
	FieldsIncorrect  int
	LevenshteinTotal int
}

// CompareBrandInfo compares extracted brand attributes against the
// reference values, field by field. Only fields the reference supplies
// are scored; a sentinel answer counts as missing.
func CompareBrandInfo(expected map[string]string, extracted generation.BrandInfo) *RecordComparison {
	comparison := &RecordComparison{
		Fields: make(map[string]FieldComparison),
	}

	totalScore := 0.0
	fieldCount := 0

	for field, want := range expected {
		got := extracted[field]
		if got == generation.Sentinel {
			got = ""
		}

		fieldComp := compareField(field, want, got)
		comparison.Fields[field] = fieldComp
		totalScore += fieldComp.Score
		comparison.LevenshteinTotal += fieldComp.Distance
		fieldCount++

		switch {
		case fieldComp.Score > 0.8:
			comparison.FieldsMatched++
		case got == "":
			comparison.FieldsMissing++
		default:
			comparison.FieldsIncorrect++
		}
	}

	if fieldCount > 0 {
		comparison.OverallScore = totalScore / float64(fieldCount)
	}

	return comparison
}

// compareField compares a single field using Levenshtein distance
func compareField(fieldName, expected, actual string) FieldComparison {
	comp := FieldComparison{
		FieldName: fieldName,
		Expected:  expected,
		Actual:    actual,
	}

	// Normalize for comparison
	expNorm := normalizeText(expected)
	actNorm := normalizeText(actual)

	if actNorm == "" {
		comp.Score = 0.0
		comp.Distance = len(expNorm)
		comp.Match = "missing"
		comp.Notes = "Field missing from extracted brand info"
		return comp
	}

	distance := levenshteinDistance(expNorm, actNorm)
	comp.Distance = distance

	if expNorm == actNorm {
		comp.Score = 1.0
		comp.Match = "exact"
		comp.Notes = "Exact match"
		return comp
	}

	maxLen := max(len(expNorm), len(actNorm))
	similarity := 1.0 - (float64(distance) / float64(maxLen))
	comp.Score = similarity

	// Classify match quality
	if similarity > 0.9 {
		comp.Match = "fuzzy_high"
		comp.Notes = fmt.Sprintf("Very high similarity (%.1f%%), Levenshtein: %d", similarity*100, distance)
	} else if similarity > 0.7 {
		comp.Match = "fuzzy_medium"
		comp.Notes = fmt.Sprintf("Medium similarity (%.1f%%), Levenshtein: %d", similarity*100, distance)
	} else if similarity > 0.5 {
		comp.Match = "fuzzy_low"
		comp.Notes = fmt.Sprintf("Low similarity (%.1f%%), Levenshtein: %d", similarity*100, distance)
	} else {
		comp.Match = "no_match"
		comp.Notes = fmt.Sprintf("Poor match (%.1f%%), Levenshtein: %d", similarity*100, distance)
	}

	return comp
}

// normalizeText normalizes text for comparison
func normalizeText(text string) string {
	// Convert to lowercase
	text = strings.ToLower(text)

	// Remove extra whitespace
	text = strings.Join(strings.Fields(text), " ")

	// Remove common punctuation for comparison
	re := regexp.MustCompile(`[^\w\s#]`)
	text = re.ReplaceAllString(text, "")

	return strings.TrimSpace(text)
}

// levenshteinDistance calculates the edit distance between two strings
func levenshteinDistance(a, b string) int {
	if len(a) == 0 {
		return len(b)
	}
	if len(b) == 0 {
		return len(a)
	}

	prev := make([]int, len(b)+1)
	curr := make([]int, len(b)+1)

	for j := 0; j <= len(b); j++ {
		prev[j] = j
	}

	for i := 1; i <= len(a); i++ {
		curr[0] = i
		for j := 1; j <= len(b); j++ {
			cost := 1
			if a[i-1] == b[j-1] {
				cost = 0
			}
			curr[j] = min(prev[j]+1, min(curr[j-1]+1, prev[j-1]+cost))
		}
		prev, curr = curr, prev
	}

	return prev[len(b)]
}
