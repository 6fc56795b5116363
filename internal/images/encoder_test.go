package images

import (
	"bytes"
	"testing"
)

func TestMediaTypeFor(t *testing.T) {
	tests := []struct {
		name     string
		filename string
		expected string
	}{
		{
			name:     "png",
			filename: "brandboard.png",
			expected: "image/png",
		},
		{
			name:     "jpg",
			filename: "copy.jpg",
			expected: "image/jpeg",
		},
		{
			name:     "jpeg",
			filename: "copy.jpeg",
			expected: "image/jpeg",
		},
		{
			name:     "gif",
			filename: "anim.gif",
			expected: "image/gif",
		},
		{
			name:     "webp",
			filename: "modern.webp",
			expected: "image/webp",
		},
		{
			name:     "uppercase extension",
			filename: "SCREENSHOT.PNG",
			expected: "image/png",
		},
		{
			name:     "unrecognized extension defaults to png",
			filename: "scan.tiff",
			expected: "image/png",
		},
		{
			name:     "no extension defaults to png",
			filename: "image",
			expected: "image/png",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MediaTypeFor(tt.filename)
			if got != tt.expected {
				t.Errorf("Expected %s, got %s", tt.expected, got)
			}
		})
	}
}

func TestEncodeRoundTrip(t *testing.T) {
	tests := []struct {
		name string
		data []byte
	}{
		{
			name: "arbitrary bytes",
			data: []byte{0x89, 0x50, 0x4e, 0x47, 0x0d, 0x0a, 0x1a, 0x0a, 0x00, 0xff},
		},
		{
			name: "empty input",
			data: []byte{},
		},
		{
			name: "text bytes",
			data: []byte("not actually an image"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			enc := Encode(tt.data, "file.jpg")

			decoded, err := enc.Bytes()
			if err != nil {
				t.Fatalf("Bytes() failed: %v", err)
			}
			if !bytes.Equal(decoded, tt.data) {
				t.Errorf("Round trip mismatch: expected %v, got %v", tt.data, decoded)
			}
		})
	}
}

func TestEncodeMediaType(t *testing.T) {
	enc := Encode([]byte("data"), "photo.webp")
	if enc.MediaType != "image/webp" {
		t.Errorf("Expected image/webp, got %s", enc.MediaType)
	}
}

func TestDataURL(t *testing.T) {
	enc := Encode([]byte("hi"), "a.png")
	expected := "data:image/png;base64,aGk="
	if enc.DataURL() != expected {
		t.Errorf("Expected %s, got %s", expected, enc.DataURL())
	}
}

func TestFormat(t *testing.T) {
	enc := Encode([]byte("hi"), "a.jpeg")
	if enc.Format() != "jpeg" {
		t.Errorf("Expected jpeg, got %s", enc.Format())
	}
}
