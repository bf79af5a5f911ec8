package messages

import (
	"bufio"
	"context"
	"errors"
	"io"
	"strings"

	"github.com/tidwall/gjson"
)

// maxEventSize bounds one SSE data line. Image-bearing events carry base64
// payloads well past bufio's default token size.
const maxEventSize = 1024 * 1024

// ChunkStreamResult carries one decoded chunk or the error that ended the
// stream.
type ChunkStreamResult struct {
	Chunk StreamChunk
	Err   error
}

// ChunkStream reads the Messages API's server-sent event format from any
// io.Reader and yields decoded stream chunks. It owns no transport: the
// reader is typically an HTTP response body managed by the caller, and
// reconnection or retry is the caller's concern.
type ChunkStream struct {
	scanner  *bufio.Scanner
	debugger *StreamDebugger
}

// NewChunkStream wraps r, which must yield "event:"/"data:" lines with
// blank-line event separators.
func NewChunkStream(r io.Reader) *ChunkStream {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxEventSize)
	return &ChunkStream{scanner: scanner}
}

// SetDebugger attaches a capture debugger; every raw event payload is
// appended to its file before decoding.
func (s *ChunkStream) SetDebugger(d *StreamDebugger) {
	s.debugger = d
}

// Next returns the next decoded chunk. It returns io.EOF when the reader
// is exhausted, an *ApiErrorResponse when the server sent an "error"
// event, and a decode error for malformed or unknown payloads.
func (s *ChunkStream) Next() (StreamChunk, error) {
	var event string
	var data []byte
	for s.scanner.Scan() {
		line := s.scanner.Text()
		switch {
		case strings.HasPrefix(line, "event:"):
			event = strings.TrimSpace(strings.TrimPrefix(line, "event:"))
		case strings.HasPrefix(line, "data:"):
			payload := strings.TrimSpace(strings.TrimPrefix(line, "data:"))
			// Multi-line data fields join with a newline per the SSE format.
			if len(data) > 0 {
				data = append(data, '\n')
			}
			data = append(data, payload...)
		case line == "":
			if len(data) == 0 {
				continue
			}
			return s.decodeEvent(event, data)
		}
	}
	if err := s.scanner.Err(); err != nil {
		return nil, err
	}
	// Final event without a trailing separator.
	if len(data) > 0 {
		return s.decodeEvent(event, data)
	}
	return nil, io.EOF
}

func (s *ChunkStream) decodeEvent(event string, data []byte) (StreamChunk, error) {
	if s.debugger != nil {
		s.debugger.Write(data)
	}
	if event == "error" || gjson.GetBytes(data, "type").String() == "error" {
		apiErr, err := DecodeApiErrorResponse(data)
		if err != nil {
			return nil, err
		}
		return nil, apiErr
	}
	return DecodeChunk(data)
}

// Stream drains the reader into a channel of results. The channel closes
// on end of stream, after the first error, or when ctx is done. The first
// error (API error event or decode failure) is delivered as the final
// result.
func (s *ChunkStream) Stream(ctx context.Context) <-chan ChunkStreamResult {
	ch := make(chan ChunkStreamResult, 16)
	go func() {
		defer close(ch)
		for {
			chunk, err := s.Next()
			if errors.Is(err, io.EOF) {
				return
			}
			select {
			case <-ctx.Done():
				return
			case ch <- ChunkStreamResult{Chunk: chunk, Err: err}:
			}
			if err != nil {
				return
			}
		}
	}()
	return ch
}
