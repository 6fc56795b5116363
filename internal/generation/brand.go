package generation

import (
	"encoding/json"
	"log/slog"
	"strings"
)

// Sentinel is the placeholder the model is told to use for any brand
// attribute it cannot determine.
const Sentinel = "NOT IDENTIFIED"

// BrandInfo holds the attributes extracted from a brandboard. Keys
// match the JSON schema the model is asked for; values are whatever
// the model returned, with no further validation.
type BrandInfo map[string]string

// brandKeys are the recognized attribute keys, in schema order.
var brandKeys = []string{
	"color_primario",
	"color_secundario",
	"color_texto",
	"color_fondo",
	"tipografia",
	"estilo",
}

// DecodeBrandResponse parses the model's brand-extraction response.
// A fenced code block around the JSON is tolerated. When the text does
// not parse as JSON the result degrades to a fallback record: every
// recognized key holds the sentinel and notas_adicionales carries the
// raw response text, so nothing is silently dropped. This boundary
// never returns an error.
func DecodeBrandResponse(raw string) BrandInfo {
	cleaned := stripCodeFence(raw)

	var info BrandInfo
	if err := json.Unmarshal([]byte(cleaned), &info); err != nil {
		slog.Warn("Failed to parse brand JSON response, using fallback record", "error", err)
		fallback := make(BrandInfo, len(brandKeys)+1)
		for _, key := range brandKeys {
			fallback[key] = Sentinel
		}
		fallback["notas_adicionales"] = strings.TrimSpace(raw)
		return fallback
	}

	return info
}

// stripCodeFence removes a surrounding markdown code block, with or
// without a "json" language tag.
func stripCodeFence(s string) string {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(s, "```")
	return strings.TrimSpace(s)
}
