package images

import (
	"encoding/base64"
	"path/filepath"
	"strings"
)

// mediaTypes maps a lowercased filename extension to its MIME type.
// Anything else falls back to image/png.
var mediaTypes = map[string]string{
	".png":  "image/png",
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".gif":  "image/gif",
	".webp": "image/webp",
}

// Encoded is a self-describing inline image payload ready to embed in
// an outbound chat-completion request.
type Encoded struct {
	MediaType string
	Data      string // standard base64
}

// Encode converts raw image bytes into an Encoded payload. The media
// type comes from the filename extension alone; the bytes are not
// validated, so garbage input surfaces later as an API error.
func Encode(data []byte, filename string) Encoded {
	return Encoded{
		MediaType: MediaTypeFor(filename),
		Data:      base64.StdEncoding.EncodeToString(data),
	}
}

// MediaTypeFor returns the MIME type for a filename based on its
// extension, defaulting to image/png for unrecognized extensions.
func MediaTypeFor(filename string) string {
	ext := strings.ToLower(filepath.Ext(filename))
	if mt, ok := mediaTypes[ext]; ok {
		return mt
	}
	return "image/png"
}

// DataURL renders the payload in data:<mediaType>;base64,<data> form.
func (e Encoded) DataURL() string {
	return "data:" + e.MediaType + ";base64," + e.Data
}

// Bytes decodes the payload back to the original image bytes.
func (e Encoded) Bytes() ([]byte, error) {
	return base64.StdEncoding.DecodeString(e.Data)
}

// Format returns the bare format name ("png", "jpeg", ...) some SDKs
// want instead of a full MIME type.
func (e Encoded) Format() string {
	return strings.TrimPrefix(e.MediaType, "image/")
}
