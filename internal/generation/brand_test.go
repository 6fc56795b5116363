package generation

import (
	"reflect"
	"testing"
)

func TestDecodeBrandResponseValidJSON(t *testing.T) {
	tests := []struct {
		name     string
		response string
		expected BrandInfo
	}{
		{
			name:     "bare JSON",
			response: `{"color_primario":"#112233","tipografia":"Poppins"}`,
			expected: BrandInfo{"color_primario": "#112233", "tipografia": "Poppins"},
		},
		{
			name: "fenced with json tag",
			response: "```json\n" +
				`{"color_primario":"#112233","color_secundario":"#445566"}` +
				"\n```",
			expected: BrandInfo{"color_primario": "#112233", "color_secundario": "#445566"},
		},
		{
			name: "fenced without tag",
			response: "```\n" +
				`{"estilo":"wellness, clean"}` +
				"\n```",
			expected: BrandInfo{"estilo": "wellness, clean"},
		},
		{
			name:     "leading whitespace",
			response: "  \n" + `{"color_fondo":"white"}` + "\n ",
			expected: BrandInfo{"color_fondo": "white"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DecodeBrandResponse(tt.response)
			if !reflect.DeepEqual(got, tt.expected) {
				t.Errorf("Expected %v, got %v", tt.expected, got)
			}
		})
	}
}

func TestDecodeBrandResponseFallback(t *testing.T) {
	tests := []struct {
		name     string
		response string
	}{
		{
			name:     "prose instead of JSON",
			response: "I could not find a clear color palette on this board.",
		},
		{
			name:     "truncated JSON",
			response: `{"color_primario": "#11`,
		},
		{
			name:     "non-string values",
			response: `{"color_primario": ["#112233", "#445566"]}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DecodeBrandResponse(tt.response)

			for _, key := range brandKeys {
				if got[key] != Sentinel {
					t.Errorf("Expected sentinel for %s, got %q", key, got[key])
				}
			}
			if got["notas_adicionales"] != tt.response {
				t.Errorf("Expected raw response in notas_adicionales, got %q", got["notas_adicionales"])
			}
		})
	}
}

func TestStripCodeFence(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "no fence",
			input:    `{"a":"b"}`,
			expected: `{"a":"b"}`,
		},
		{
			name:     "json fence",
			input:    "```json\n{\"a\":\"b\"}\n```",
			expected: `{"a":"b"}`,
		},
		{
			name:     "bare fence",
			input:    "```\n{\"a\":\"b\"}\n```",
			expected: `{"a":"b"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := stripCodeFence(tt.input)
			if got != tt.expected {
				t.Errorf("Expected %q, got %q", tt.expected, got)
			}
		})
	}
}
