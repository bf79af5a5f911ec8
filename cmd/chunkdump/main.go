// chunkdump decodes a recorded Messages API event stream and pretty-prints
// every chunk. The transcript comes from a file or stdin; there is no
// network involved.
//
// Usage:
//
//	chunkdump -f transcript.txt
//	curl -N ... | chunkdump -capture debug/chunks
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"claudewire/pkg/messages"
	"claudewire/pkg/monitor"
)

func main() {
	var (
		path    = flag.String("f", "", "SSE transcript file (default: stdin)")
		capture = flag.String("capture", "", "directory to capture raw event payloads into")
		quiet   = flag.Bool("q", false, "suppress per-chunk output")
		level   = flag.String("level", "info", "log level (debug|info|warn|error)")
	)
	flag.Parse()

	monitor.SetupSlog(*level)

	var in io.Reader = os.Stdin
	if *path != "" {
		f, err := os.Open(*path)
		if err != nil {
			slog.Error("Failed to open transcript", "file", *path, "error", err)
			os.Exit(1)
		}
		defer f.Close()
		in = f
	}

	stream := messages.NewChunkStream(in)
	if *capture != "" {
		debugger := messages.NewStreamDebugger(*capture, true)
		defer debugger.Close()
		stream.SetDebugger(debugger)
		slog.Info("Capturing raw events", "file", debugger.Path())
	}

	var (
		count      int
		text       string
		stopReason string
		usage      messages.DeltaUsage
	)

	for result := range stream.Stream(context.Background()) {
		if result.Err != nil {
			var apiErr *messages.ApiErrorResponse
			if errors.As(result.Err, &apiErr) {
				slog.Error("Stream ended with API error",
					"type", apiErr.Detail.Type, "message", apiErr.Detail.Message)
			} else {
				slog.Error("Failed to decode chunk", "error", result.Err)
			}
			os.Exit(1)
		}

		count++
		if !*quiet {
			fmt.Println(result.Chunk)
		}

		switch chunk := result.Chunk.(type) {
		case messages.ContentBlockDeltaChunk:
			text += chunk.Delta.Text
		case messages.MessageDeltaChunk:
			usage = chunk.Usage
			if chunk.Delta.StopReason != nil {
				stopReason = chunk.Delta.StopReason.String()
			}
		}
	}

	slog.Info("Transcript decoded",
		"chunks", count,
		"text_len", len(text),
		"stop_reason", stopReason,
		"output_tokens", usage.OutputTokens)

	if !*quiet && text != "" {
		fmt.Println("---")
		fmt.Println(text)
	}
}
