package avatar

import (
	"encoding/base64"
	"strings"
)

// ImageRef points at an avatar image: a URL, a file path or an inline data URI.
// The empty ref means no image.
type ImageRef string

const dataURIPrefix = "data:"

func (r ImageRef) IsInline() bool {
	return strings.HasPrefix(string(r), dataURIPrefix)
}

// Options tune a single Resolve call.
type Options struct {
	ForceGenerate bool
	Gender        string
}

// Image is a generated image payload.
type Image struct {
	MIMEType string
	Data     []byte
}

func (img Image) DataURI() ImageRef {
	mime := img.MIMEType
	if mime == "" {
		mime = "image/png"
	}
	return ImageRef(dataURIPrefix + mime + ";base64," + base64.StdEncoding.EncodeToString(img.Data))
}
