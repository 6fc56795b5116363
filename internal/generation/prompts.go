package generation

import "fmt"

// buildBrandPrompt asks the model to read a brandboard and answer with
// a JSON object using exactly the recognized attribute keys.
func buildBrandPrompt() string {
	return `Analyze this brandboard / brand manual and extract the following information as JSON:

{
    "color_primario": "#HEXCODE (the brand's main color)",
    "color_secundario": "#HEXCODE (the secondary or accent color, usually used for buttons/CTAs)",
    "color_texto": "description of the text color (e.g. 'dark blue-gray', '#333333')",
    "color_fondo": "description of the background (e.g. 'white', 'light cream', '#FAFAFA')",
    "tipografia": "EXACT name of the typeface (it must exist on Google Fonts)",
    "estilo": "keywords describing the style (e.g. 'wellness, professional, warm, clean')",
    "notas_adicionales": "any other relevant observation about the visual style"
}

IMPORTANT about typography:
- Look for the exact font name on the brandboard
- It must be a font that exists on Google Fonts
- Valid examples: "Be Vietnam Pro", "Montserrat", "Poppins", "Inter", "Playfair Display"

If you cannot identify something with certainty, answer "NOT IDENTIFIED".
Respond ONLY with the JSON, no additional explanations.`
}

// buildTranscriptionPrompt demands an exact, unsummarized transcription
// of every piece of text visible in the copy screenshots.
func buildTranscriptionPrompt() string {
	return `Transcribe ALL the text visible in these images.

CRITICAL RULES:
1. Transcribe WORD FOR WORD, exactly as it appears
2. Do NOT summarize, do NOT paraphrase, do NOT "improve" the text
3. Keep line breaks where you see them
4. If there are clear sections, separate them with a blank line
5. Include EVERYTHING: titles, subtitles, bullets, buttons, disclaimers

The marketing copy is client-approved and cannot be changed "by even a comma".

Respond ONLY with the transcribed text, no comments of your own.`
}

// buildSectionsPrompt embeds the transcribed copy and the fixed
// seven-section landing-page template the copy must be re-flowed into.
func buildSectionsPrompt(rawCopy string) string {
	return fmt.Sprintf(`Organize the following landing page copy into numbered sections for Lovable.

EXTRACTED COPY:
%s

OUTPUT FORMAT - Use EXACTLY this format with numbered sections:

### SECTION 1: HERO (centered)
[Main title]
[Subtitle]
[Descriptive text]
Form:
- Field: Name
- Field: Email
- Checkbox: [checkbox text if it exists]
- Button: [button text]

### SECTION 2: URGENCY (centered)
[Event date]
[Countdown timer]
[Urgency text]

### SECTION 3: LEAD MAGNET (centered)
[Gift mockup: description]
[Description of the gift/bonus]

### SECTION 4: PAIN POINTS (centered)
Title: [This is for you if... or similar]
- [point 1]
- [point 2]
- [etc.]

### SECTION 5: BENEFITS + BIO (2 parallel columns)
LEFT COLUMN:
Title: [What you will learn/discover]
- [benefit 1]
- [benefit 2]
- [etc.]

RIGHT COLUMN:
[PLACEHOLDER: PHOTO OF THE EXPERT]
Name: [name]
Title: [credentials]
Bio: [full bio text]

### SECTION 6: TESTIMONIALS (centered or 3-column grid)
[Testimonial 1]
[Testimonial 2]
[etc.]

### SECTION 7: FINAL CTA (centered)
[Closing title]
[Date reminder]
[Button: button text]

CRITICAL RULES:
1. Copy the text EXACTLY as it is - WORD FOR WORD
2. Do NOT summarize, do NOT paraphrase, do NOT "improve" the text
3. If a section does not exist in the copy, OMIT it (do not include it)
4. Mark photos with [PLACEHOLDER: description]
5. Do NOT invent content that is not in the original copy
6. For 2-column sections, state clearly what goes in each column`, rawCopy)
}
