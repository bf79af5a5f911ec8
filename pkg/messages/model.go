package messages

// ClaudeModel identifies a model the Messages API accepts.
type ClaudeModel string

const (
	Claude3Opus20240229    ClaudeModel = "claude-3-opus-20240229"
	Claude3Sonnet20240229  ClaudeModel = "claude-3-sonnet-20240229"
	Claude3Haiku20240307   ClaudeModel = "claude-3-haiku-20240307"
	Claude35Sonnet20240620 ClaudeModel = "claude-3-5-sonnet-20240620"
	Claude21               ClaudeModel = "claude-2.1"
	Claude20               ClaudeModel = "claude-2.0"
	ClaudeInstant12        ClaudeModel = "claude-instant-1.2"
)

func (m ClaudeModel) String() string {
	return string(m)
}

// MaxOutputTokens is the ceiling the API enforces on max_tokens for this
// model.
func (m ClaudeModel) MaxOutputTokens() int {
	return 4096
}

// ContextWindow is the model's context window size in tokens.
func (m ClaudeModel) ContextWindow() int {
	switch m {
	case Claude20, ClaudeInstant12:
		return 100_000
	default:
		return 200_000
	}
}

// UnmarshalJSON rejects model identifiers outside the documented set.
func (m *ClaudeModel) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	switch ClaudeModel(s) {
	case Claude3Opus20240229, Claude3Sonnet20240229, Claude3Haiku20240307,
		Claude35Sonnet20240620, Claude21, Claude20, ClaudeInstant12:
		*m = ClaudeModel(s)
		return nil
	}
	return &UnknownValueError{Field: "model", Value: s}
}
