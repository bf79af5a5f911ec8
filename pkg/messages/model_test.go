package messages

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClaudeModelRoundTrip(t *testing.T) {
	models := []ClaudeModel{
		Claude3Opus20240229,
		Claude3Sonnet20240229,
		Claude3Haiku20240307,
		Claude35Sonnet20240620,
		Claude21,
		Claude20,
		ClaudeInstant12,
	}
	for _, model := range models {
		t.Run(model.String(), func(t *testing.T) {
			b, err := json.Marshal(model)
			require.NoError(t, err)

			var decoded ClaudeModel
			require.NoError(t, json.Unmarshal(b, &decoded))
			assert.Equal(t, model, decoded)
		})
	}
}

func TestClaudeModelSerialize(t *testing.T) {
	b, err := json.Marshal(Claude3Sonnet20240229)
	require.NoError(t, err)
	assert.Equal(t, `"claude-3-sonnet-20240229"`, string(b))
}

func TestClaudeModelRejectsUnknown(t *testing.T) {
	var m ClaudeModel
	err := json.Unmarshal([]byte(`"gpt-4"`), &m)
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown model value: "gpt-4"`)
}

func TestClaudeModelLimits(t *testing.T) {
	assert.Equal(t, 4096, Claude3Opus20240229.MaxOutputTokens())
	assert.Equal(t, 200_000, Claude3Opus20240229.ContextWindow())
	assert.Equal(t, 200_000, Claude21.ContextWindow())
	assert.Equal(t, 100_000, Claude20.ContextWindow())
	assert.Equal(t, 100_000, ClaudeInstant12.ContextWindow())
}
