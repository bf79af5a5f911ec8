package utils

import (
	"fmt"
	"net/http"
)

// acceptedImageMediaTypes are the image formats the Messages API accepts.
var acceptedImageMediaTypes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/gif":  true,
	"image/webp": true,
}

// DetectImageMediaType sniffs the media type of raw image bytes. It fails
// when the bytes are empty or the detected type is not one the API accepts.
func DetectImageMediaType(data []byte) (string, error) {
	if len(data) == 0 {
		return "", fmt.Errorf("empty image data")
	}
	mimeType := http.DetectContentType(data)
	if !acceptedImageMediaTypes[mimeType] {
		return "", fmt.Errorf("detected %q, want image/jpeg, image/png, image/gif or image/webp", mimeType)
	}
	return mimeType, nil
}
