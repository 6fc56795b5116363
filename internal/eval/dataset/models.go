package dataset

// BrandRecord is one labeled brandboard sample: the image to analyze
// plus the reference brand attributes a correct extraction should find.
type BrandRecord struct {
	ID              string `parquet:"id" json:"id"`
	ImagePath       string `parquet:"image_path" json:"image_path"`
	ColorPrimario   string `parquet:"color_primario,optional" json:"color_primario,omitempty"`
	ColorSecundario string `parquet:"color_secundario,optional" json:"color_secundario,omitempty"`
	ColorTexto      string `parquet:"color_texto,optional" json:"color_texto,omitempty"`
	ColorFondo      string `parquet:"color_fondo,optional" json:"color_fondo,omitempty"`
	Tipografia      string `parquet:"tipografia,optional" json:"tipografia,omitempty"`
	Estilo          string `parquet:"estilo,optional" json:"estilo,omitempty"`
}

// Expected returns the reference attributes keyed like the extraction
// schema, skipping fields the dataset left blank.
func (r BrandRecord) Expected() map[string]string {
	expected := map[string]string{}
	fields := map[string]string{
		"color_primario":   r.ColorPrimario,
		"color_secundario": r.ColorSecundario,
		"color_texto":      r.ColorTexto,
		"color_fondo":      r.ColorFondo,
		"tipografia":       r.Tipografia,
		"estilo":           r.Estilo,
	}
	for key, value := range fields {
		if value != "" {
			expected[key] = value
		}
	}
	return expected
}
