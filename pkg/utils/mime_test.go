package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDetectImageMediaType(t *testing.T) {
	tests := []struct {
		name string
		data []byte
		want string
	}{
		{
			name: "png",
			data: []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n'},
			want: "image/png",
		},
		{
			name: "jpeg",
			data: []byte{0xff, 0xd8, 0xff, 0xe0},
			want: "image/jpeg",
		},
		{
			name: "gif",
			data: []byte("GIF89a"),
			want: "image/gif",
		},
		{
			name: "webp",
			data: []byte("RIFF\x00\x00\x00\x00WEBPVP8 "),
			want: "image/webp",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := DetectImageMediaType(tt.data)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDetectImageMediaTypeRejectsNonImages(t *testing.T) {
	_, err := DetectImageMediaType([]byte("plain text, not an image"))
	require.Error(t, err)

	_, err = DetectImageMediaType(nil)
	require.Error(t, err)
}
