package generation

import (
	"strings"
	"testing"
)

func TestAssemblePromptInterpolates(t *testing.T) {
	brand := BrandInfo{
		"color_primario":   "#112233",
		"color_secundario": "#445566",
		"color_texto":      "#333333",
		"color_fondo":      "white",
		"tipografia":       "Poppins",
		"estilo":           "wellness, clean",
	}
	sections := "### SECTION 1: HERO (centered)\nJoin the free webinar"

	prompt := AssemblePrompt(brand, sections)

	for _, want := range []string{
		"- Primary color: #112233",
		"- Secondary color: #445566",
		"- Text color: #333333",
		"- Background color: white",
		"- Typography: Poppins",
		"- Style: wellness, clean",
		"- Buttons: #445566 background, white text, rounded corners",
	} {
		if !strings.Contains(prompt, want) {
			t.Errorf("Expected prompt to contain %q", want)
		}
	}

	if strings.Contains(prompt, "{") {
		t.Errorf("Prompt contains unresolved placeholders:\n%s", prompt)
	}
}

func TestAssemblePromptDefaults(t *testing.T) {
	// Keys absent entirely fall back to defaults, never the sentinel.
	prompt := AssemblePrompt(BrandInfo{}, "sections here")

	for _, want := range []string{
		"- Primary color: #000000",
		"- Secondary color: #666666",
		"- Text color: dark gray",
		"- Background color: white",
		"- Typography: Inter",
		"- Style: modern, clean, professional",
	} {
		if !strings.Contains(prompt, want) {
			t.Errorf("Expected prompt to contain default %q", want)
		}
	}

	if strings.Contains(prompt, Sentinel) {
		t.Error("Defaults must never resolve to the sentinel")
	}
}

func TestAssemblePromptSentinelPassesThrough(t *testing.T) {
	// A key present with the sentinel value flows into the template
	// as-is; only absent keys get defaults.
	brand := BrandInfo{"tipografia": Sentinel}
	prompt := AssemblePrompt(brand, "s")

	if !strings.Contains(prompt, "- Typography: "+Sentinel) {
		t.Error("Expected sentinel value to pass through for a present key")
	}
}

func TestAssemblePromptIsPure(t *testing.T) {
	brand := BrandInfo{"color_primario": "#ABCDEF"}
	sections := "### SECTION 7: FINAL CTA (centered)\nSign up now"

	first := AssemblePrompt(brand, sections)
	second := AssemblePrompt(brand, sections)

	if first != second {
		t.Error("Expected byte-identical output for identical inputs")
	}
}

func TestAssemblePromptNeverAltersSections(t *testing.T) {
	tests := []struct {
		name     string
		sections string
	}{
		{
			name:     "multi-line sections",
			sections: "### SECTION 1: HERO (centered)\nTitle\n\n### SECTION 4: PAIN POINTS (centered)\n- tired of X",
		},
		{
			name:     "sections containing template-like braces",
			sections: "use {color_primario} literally",
		},
		{
			name:     "empty sections",
			sections: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			prompt := AssemblePrompt(BrandInfo{"color_primario": "#111111"}, tt.sections)
			if !strings.Contains(prompt, tt.sections) {
				t.Errorf("Expected sections to appear as an exact contiguous substring")
			}
		})
	}
}
