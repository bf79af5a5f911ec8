package messages

import (
	jsoniter "github.com/json-iterator/go"
	"github.com/tidwall/gjson"
)

//----------------------------------------------------------------
// StreamChunk - 串流事件的 tagged union
//----------------------------------------------------------------

// StreamChunkType tags the shape of a server-sent stream event.
type StreamChunkType string

const (
	StreamChunkTypeMessageStart      StreamChunkType = "message_start"
	StreamChunkTypeContentBlockStart StreamChunkType = "content_block_start"
	StreamChunkTypePing              StreamChunkType = "ping"
	StreamChunkTypeContentBlockDelta StreamChunkType = "content_block_delta"
	StreamChunkTypeContentBlockStop  StreamChunkType = "content_block_stop"
	StreamChunkTypeMessageDelta      StreamChunkType = "message_delta"
	StreamChunkTypeMessageStop       StreamChunkType = "message_stop"
)

func (t StreamChunkType) String() string {
	return string(t)
}

// StreamChunk is one server-sent event in a streaming response, tagged by
// its "type" field. Variants: MessageStartChunk, ContentBlockStartChunk,
// PingChunk, ContentBlockDeltaChunk, ContentBlockStopChunk,
// MessageDeltaChunk, MessageStopChunk.
type StreamChunk interface {
	ChunkType() StreamChunkType
}

// MessageStartChunk opens a stream with the response shell: everything but
// the content, whose blocks follow as separate events.
type MessageStartChunk struct {
	Type    StreamChunkType      `json:"type"`
	Message MessagesResponseBody `json:"message"`
}

func NewMessageStartChunk(message MessagesResponseBody) MessageStartChunk {
	return MessageStartChunk{
		Type:    StreamChunkTypeMessageStart,
		Message: message,
	}
}

func (c MessageStartChunk) ChunkType() StreamChunkType {
	return StreamChunkTypeMessageStart
}

func (c MessageStartChunk) String() string {
	return prettyJSON(c)
}

// ContentBlockStartChunk opens one content block at the given index.
type ContentBlockStartChunk struct {
	Type         StreamChunkType `json:"type"`
	Index        int             `json:"index"`
	ContentBlock ContentBlock    `json:"content_block"`
}

func NewContentBlockStartChunk(index int, block ContentBlock) ContentBlockStartChunk {
	return ContentBlockStartChunk{
		Type:         StreamChunkTypeContentBlockStart,
		Index:        index,
		ContentBlock: block,
	}
}

func (c ContentBlockStartChunk) ChunkType() StreamChunkType {
	return StreamChunkTypeContentBlockStart
}

// UnmarshalJSON decodes the tagged content_block payload.
func (c *ContentBlockStartChunk) UnmarshalJSON(data []byte) error {
	aux := struct {
		Type         StreamChunkType     `json:"type"`
		Index        int                 `json:"index"`
		ContentBlock jsoniter.RawMessage `json:"content_block"`
	}{}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	block, err := decodeContentBlock(aux.ContentBlock)
	if err != nil {
		return err
	}
	c.Type = aux.Type
	c.Index = aux.Index
	c.ContentBlock = block
	return nil
}

func (c ContentBlockStartChunk) String() string {
	return prettyJSON(c)
}

// PingChunk is a keep-alive event with no payload.
type PingChunk struct {
	Type StreamChunkType `json:"type"`
}

func NewPingChunk() PingChunk {
	return PingChunk{Type: StreamChunkTypePing}
}

func (c PingChunk) ChunkType() StreamChunkType {
	return StreamChunkTypePing
}

func (c PingChunk) String() string {
	return prettyJSON(c)
}

// ContentBlockDeltaChunk appends a text fragment to the block at the given
// index.
type ContentBlockDeltaChunk struct {
	Type  StreamChunkType       `json:"type"`
	Index int                   `json:"index"`
	Delta TextDeltaContentBlock `json:"delta"`
}

func NewContentBlockDeltaChunk(index int, delta TextDeltaContentBlock) ContentBlockDeltaChunk {
	return ContentBlockDeltaChunk{
		Type:  StreamChunkTypeContentBlockDelta,
		Index: index,
		Delta: delta,
	}
}

func (c ContentBlockDeltaChunk) ChunkType() StreamChunkType {
	return StreamChunkTypeContentBlockDelta
}

func (c ContentBlockDeltaChunk) String() string {
	return prettyJSON(c)
}

// ContentBlockStopChunk closes the block at the given index.
type ContentBlockStopChunk struct {
	Type  StreamChunkType `json:"type"`
	Index int             `json:"index"`
}

func NewContentBlockStopChunk(index int) ContentBlockStopChunk {
	return ContentBlockStopChunk{
		Type:  StreamChunkTypeContentBlockStop,
		Index: index,
	}
}

func (c ContentBlockStopChunk) ChunkType() StreamChunkType {
	return StreamChunkTypeContentBlockStop
}

func (c ContentBlockStopChunk) String() string {
	return prettyJSON(c)
}

// StreamStop carries the final stop reason and sequence of a stream.
type StreamStop struct {
	StopReason   *StopReason   `json:"stop_reason"`
	StopSequence *StopSequence `json:"stop_sequence"`
}

func (s StreamStop) String() string {
	return prettyJSON(s)
}

// MessageDeltaChunk reports top-level changes to the final message: the
// stop state and the cumulative output-token usage.
type MessageDeltaChunk struct {
	Type  StreamChunkType `json:"type"`
	Delta StreamStop      `json:"delta"`
	Usage DeltaUsage      `json:"usage"`
}

func NewMessageDeltaChunk(delta StreamStop, usage DeltaUsage) MessageDeltaChunk {
	return MessageDeltaChunk{
		Type:  StreamChunkTypeMessageDelta,
		Delta: delta,
		Usage: usage,
	}
}

func (c MessageDeltaChunk) ChunkType() StreamChunkType {
	return StreamChunkTypeMessageDelta
}

func (c MessageDeltaChunk) String() string {
	return prettyJSON(c)
}

// MessageStopChunk closes the stream.
type MessageStopChunk struct {
	Type StreamChunkType `json:"type"`
}

func NewMessageStopChunk() MessageStopChunk {
	return MessageStopChunk{Type: StreamChunkTypeMessageStop}
}

func (c MessageStopChunk) ChunkType() StreamChunkType {
	return StreamChunkTypeMessageStop
}

func (c MessageStopChunk) String() string {
	return prettyJSON(c)
}

// DecodeChunk discriminates on the "type" field and decodes the matching
// chunk variant. Unknown or missing discriminators fail with
// UnknownChunkTypeError.
func DecodeChunk(data []byte) (StreamChunk, error) {
	tag := gjson.GetBytes(data, "type")
	if !tag.Exists() {
		return nil, &UnknownChunkTypeError{Value: ""}
	}
	switch StreamChunkType(tag.String()) {
	case StreamChunkTypeMessageStart:
		var c MessageStartChunk
		if err := json.Unmarshal(data, &c); err != nil {
			return nil, err
		}
		return c, nil
	case StreamChunkTypeContentBlockStart:
		var c ContentBlockStartChunk
		if err := json.Unmarshal(data, &c); err != nil {
			return nil, err
		}
		return c, nil
	case StreamChunkTypePing:
		var c PingChunk
		if err := json.Unmarshal(data, &c); err != nil {
			return nil, err
		}
		return c, nil
	case StreamChunkTypeContentBlockDelta:
		var c ContentBlockDeltaChunk
		if err := json.Unmarshal(data, &c); err != nil {
			return nil, err
		}
		return c, nil
	case StreamChunkTypeContentBlockStop:
		var c ContentBlockStopChunk
		if err := json.Unmarshal(data, &c); err != nil {
			return nil, err
		}
		return c, nil
	case StreamChunkTypeMessageDelta:
		var c MessageDeltaChunk
		if err := json.Unmarshal(data, &c); err != nil {
			return nil, err
		}
		return c, nil
	case StreamChunkTypeMessageStop:
		var c MessageStopChunk
		if err := json.Unmarshal(data, &c); err != nil {
			return nil, err
		}
		return c, nil
	}
	return nil, &UnknownChunkTypeError{Value: tag.String()}
}
