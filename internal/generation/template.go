package generation

import "strings"

// lovableTemplate is the fixed deliverable skeleton. Placeholders are
// filled from BrandInfo plus the structured sections; button styling
// reuses the secondary color.
const lovableTemplate = `Create a webinar registration landing page using the attached images as reference:
- Brandboard image -> for colors, typography and visual style
- Structure images (optional) -> for section layout reference

TECHNICAL DATA:
- Primary color: {color_primario}
- Secondary color: {color_secundario}
- Text color: {color_texto}
- Background color: {color_fondo}
- Typography: {tipografia}
- Style: {estilo}
- Buttons: {color_secundario} background, white text, rounded corners

IMPORTANT: do NOT modify the text I give you. Copy it exactly word for word, without changing a single comma.

SECTIONS:

{secciones}

TECHNICAL NOTES:
- Mobile-first, responsive
- Wherever PHOTO, IMAGE or MOCKUP is indicated, leave a gray placeholder
- Form with basic validation
- Working countdown timers where applicable
- Smooth scroll between sections

REMINDER: do not modify the copy. Every word, every comma, every period must be exact.`

// brandDefaults fill in for keys absent from BrandInfo. Defaults never
// resolve to the sentinel, so the final prompt has no unresolved
// placeholders.
var brandDefaults = map[string]string{
	"color_primario":   "#000000",
	"color_secundario": "#666666",
	"color_texto":      "dark gray",
	"color_fondo":      "white",
	"tipografia":       "Inter",
	"estilo":           "modern, clean, professional",
}

// AssemblePrompt interpolates the brand attributes and the structured
// sections into the Lovable template. Pure string substitution: same
// inputs always produce byte-identical output, and the sections text
// is embedded untouched.
func AssemblePrompt(brand BrandInfo, sections string) string {
	get := func(key string) string {
		if v, ok := brand[key]; ok {
			return v
		}
		return brandDefaults[key]
	}

	r := strings.NewReplacer(
		"{color_primario}", get("color_primario"),
		"{color_secundario}", get("color_secundario"),
		"{color_texto}", get("color_texto"),
		"{color_fondo}", get("color_fondo"),
		"{tipografia}", get("tipografia"),
		"{estilo}", get("estilo"),
		"{secciones}", sections,
	)
	return r.Replace(lovableTemplate)
}
