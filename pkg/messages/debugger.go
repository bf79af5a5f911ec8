package messages

import (
	"log/slog"
	"os"
	"path/filepath"

	"claudewire/pkg/utils"
)

// StreamDebugger handles the creation and writing of capture files for
// stream events. It centralizes directory creation, file naming, and safe
// writing; a disabled debugger is a no-op.
type StreamDebugger struct {
	file    *os.File
	path    string
	enabled bool
}

// NewStreamDebugger creates a debugger writing to dir. Each debugger owns
// one capture file named by a fresh capture id. Failures to set up the
// file are logged and degrade to a disabled debugger.
func NewStreamDebugger(dir string, enabled bool) *StreamDebugger {
	if !enabled {
		return &StreamDebugger{enabled: false}
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		slog.Error("Failed to create capture directory", "dir", dir, "error", err)
		return &StreamDebugger{enabled: false}
	}

	filename := filepath.Join(dir, utils.GenerateCaptureID()+".log")
	f, err := os.OpenFile(filename, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		slog.Error("Failed to open capture file", "file", filename, "error", err)
		return &StreamDebugger{enabled: false}
	}

	slog.Debug("Stream capture ON", "file", filename)
	return &StreamDebugger{
		file:    f,
		path:    filename,
		enabled: true,
	}
}

// Path returns the capture file path, empty when disabled.
func (d *StreamDebugger) Path() string {
	return d.path
}

// Write appends raw data to the capture file if enabled.
// It includes a newline after the data.
func (d *StreamDebugger) Write(data []byte) {
	if !d.enabled || d.file == nil {
		return
	}
	if _, err := d.file.Write(data); err != nil {
		slog.Warn("Failed to write to capture file", "error", err)
	}
	d.file.WriteString("\n")
}

// WriteString appends a string to the capture file if enabled.
func (d *StreamDebugger) WriteString(s string) {
	if !d.enabled || d.file == nil {
		return
	}
	if _, err := d.file.WriteString(s); err != nil {
		slog.Warn("Failed to write to capture file", "error", err)
	}
	d.file.WriteString("\n")
}

// Close closes the capture file handle.
func (d *StreamDebugger) Close() {
	if d.file != nil {
		d.file.Close()
		d.file = nil
	}
}
