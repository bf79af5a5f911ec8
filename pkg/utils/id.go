package utils

import (
	"crypto/rand"
	"encoding/binary"
	"encoding/hex"
	"fmt"
	"time"
)

// GenerateCaptureID returns an id for one stream capture: an 8-char hex
// timestamp, an underscore, then 6 random hex chars.
// Example: "65cfda3f_9b1c2e"
func GenerateCaptureID() string {
	ts := make([]byte, 4)
	binary.BigEndian.PutUint32(ts, uint32(time.Now().Unix()))
	suffix := make([]byte, 3)
	_, _ = rand.Read(suffix)
	return hex.EncodeToString(ts) + "_" + hex.EncodeToString(suffix)
}

// GetTimeFromCaptureID extracts the creation time from a capture id.
func GetTimeFromCaptureID(id string) (time.Time, error) {
	if len(id) < 8 {
		return time.Time{}, fmt.Errorf("id too short: %d", len(id))
	}
	b, err := hex.DecodeString(id[:8])
	if err != nil {
		return time.Time{}, err
	}
	sec := binary.BigEndian.Uint32(b)
	return time.Unix(int64(sec), 0), nil
}
