package utils

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateCaptureID(t *testing.T) {
	id := GenerateCaptureID()
	require.Len(t, id, 15)
	assert.Equal(t, "_", id[8:9])

	// Ids must not collide across calls.
	other := GenerateCaptureID()
	assert.NotEqual(t, id, other)
}

func TestGetTimeFromCaptureID(t *testing.T) {
	id := GenerateCaptureID()
	ts, err := GetTimeFromCaptureID(id)
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now(), ts, 5*time.Second)
}

func TestGetTimeFromCaptureIDErrors(t *testing.T) {
	_, err := GetTimeFromCaptureID("short")
	require.Error(t, err)

	_, err = GetTimeFromCaptureID(strings.Repeat("z", 10))
	require.Error(t, err)
}
