package messages

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"
)

func TestNewMaxTokens(t *testing.T) {
	mt, err := NewMaxTokens(1024, Claude3Sonnet20240229)
	require.NoError(t, err)
	assert.Equal(t, MaxTokens(1024), mt)

	_, err = NewMaxTokens(0, Claude3Sonnet20240229)
	require.ErrorIs(t, err, ErrInvalidMaxTokens)

	_, err = NewMaxTokens(4097, Claude3Sonnet20240229)
	require.ErrorIs(t, err, ErrInvalidMaxTokens)

	assert.Equal(t, MaxTokens(4096), DefaultMaxTokens(Claude3Sonnet20240229))
}

func TestNewTemperature(t *testing.T) {
	tests := []struct {
		value float64
		ok    bool
	}{
		{0.0, true},
		{0.5, true},
		{1.0, true},
		{-0.1, false},
		{1.1, false},
	}
	for _, tt := range tests {
		_, err := NewTemperature(tt.value)
		if tt.ok {
			assert.NoError(t, err, "value %v", tt.value)
		} else {
			assert.ErrorIs(t, err, ErrInvalidTemperature, "value %v", tt.value)
		}
	}
}

func TestNewTopP(t *testing.T) {
	_, err := NewTopP(0.9)
	require.NoError(t, err)

	_, err = NewTopP(1.5)
	require.ErrorIs(t, err, ErrInvalidTopP)
}

func TestNewTopK(t *testing.T) {
	_, err := NewTopK(40)
	require.NoError(t, err)

	_, err = NewTopK(0)
	require.ErrorIs(t, err, ErrInvalidTopK)
}

func TestRequestBodyMinimalSerialize(t *testing.T) {
	body := NewMessagesRequestBody(
		Claude3Sonnet20240229,
		[]Message{NewUserMessage("Hello, Claude!")},
		MaxTokens(16),
	)

	b, err := json.Marshal(body)
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"model": "claude-3-sonnet-20240229",
		"messages": [{"role":"user","content":"Hello, Claude!"}],
		"max_tokens": 16
	}`, string(b))
}

func TestRequestBodyFullSerialize(t *testing.T) {
	temperature, err := NewTemperature(0.7)
	require.NoError(t, err)
	topK, err := NewTopK(40)
	require.NoError(t, err)
	topP, err := NewTopP(0.9)
	require.NoError(t, err)

	stream := StreamOptionReturnStream
	body := NewMessagesRequestBody(
		Claude3Opus20240229,
		[]Message{NewUserMessage("hi")},
		MaxTokens(256),
	)
	body.System = NewSystemPrompt("Answer tersely.")
	body.Metadata = &Metadata{UserID: NewUserID("user-123")}
	body.StopSequences = []StopSequence{NewStopSequence("###")}
	body.Stream = &stream
	body.Temperature = &temperature
	body.TopK = &topK
	body.TopP = &topP

	b, err := json.Marshal(body)
	require.NoError(t, err)

	assert.Equal(t, "claude-3-opus-20240229", gjson.GetBytes(b, "model").String())
	assert.Equal(t, "Answer tersely.", gjson.GetBytes(b, "system").String())
	assert.Equal(t, int64(256), gjson.GetBytes(b, "max_tokens").Int())
	assert.Equal(t, "user-123", gjson.GetBytes(b, "metadata.user_id").String())
	assert.Equal(t, "###", gjson.GetBytes(b, "stop_sequences.0").String())
	assert.True(t, gjson.GetBytes(b, "stream").Bool())
	assert.Equal(t, 0.7, gjson.GetBytes(b, "temperature").Float())
	assert.Equal(t, int64(40), gjson.GetBytes(b, "top_k").Int())
	assert.Equal(t, 0.9, gjson.GetBytes(b, "top_p").Float())

	var decoded MessagesRequestBody
	require.NoError(t, json.Unmarshal(b, &decoded))
	assert.Equal(t, body, decoded)
}

func TestRequestBodyOmitsUnsetOptionals(t *testing.T) {
	body := NewMessagesRequestBody(
		Claude3Haiku20240307,
		[]Message{NewUserMessage("hi")},
		MaxTokens(16),
	)

	b, err := json.Marshal(body)
	require.NoError(t, err)

	for _, field := range []string{
		"system", "metadata", "stop_sequences", "stream",
		"temperature", "top_k", "top_p",
	} {
		assert.False(t, gjson.GetBytes(b, field).Exists(), "field %s should be omitted", field)
	}
}

func TestRequestBodyWireRoundTrip(t *testing.T) {
	wire := `{
		"model": "claude-3-5-sonnet-20240620",
		"messages": [
			{"role": "user", "content": "Hello"},
			{"role": "assistant", "content": [{"type": "text", "text": "Hi"}]}
		],
		"max_tokens": 1024,
		"stream": false,
		"temperature": 1.0
	}`

	var body MessagesRequestBody
	require.NoError(t, json.Unmarshal([]byte(wire), &body))

	out, err := json.Marshal(body)
	require.NoError(t, err)
	assert.JSONEq(t, wire, string(out))
}
