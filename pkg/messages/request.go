package messages

import "fmt"

//----------------------------------------------------------------
// Request parameters - validated at construction
//----------------------------------------------------------------

// MaxTokens caps the number of tokens to generate. The API enforces a
// per-model ceiling, so construction validates against the target model.
type MaxTokens int

// NewMaxTokens validates value against the model's output ceiling.
func NewMaxTokens(value int, model ClaudeModel) (MaxTokens, error) {
	if value < 1 || value > model.MaxOutputTokens() {
		return 0, fmt.Errorf("%w: %d not in [1, %d] for %s",
			ErrInvalidMaxTokens, value, model.MaxOutputTokens(), model)
	}
	return MaxTokens(value), nil
}

// DefaultMaxTokens is the ceiling shared by every current model.
func DefaultMaxTokens(model ClaudeModel) MaxTokens {
	return MaxTokens(model.MaxOutputTokens())
}

// Temperature controls randomness, 0.0 to 1.0.
type Temperature float64

// NewTemperature validates the 0.0..1.0 range.
func NewTemperature(value float64) (Temperature, error) {
	if value < 0.0 || value > 1.0 {
		return 0, fmt.Errorf("%w: got %v", ErrInvalidTemperature, value)
	}
	return Temperature(value), nil
}

// TopP enables nucleus sampling, 0.0 to 1.0.
type TopP float64

// NewTopP validates the 0.0..1.0 range.
func NewTopP(value float64) (TopP, error) {
	if value < 0.0 || value > 1.0 {
		return 0, fmt.Errorf("%w: got %v", ErrInvalidTopP, value)
	}
	return TopP(value), nil
}

// TopK restricts sampling to the top K options per token.
type TopK int

// NewTopK validates that value is positive.
func NewTopK(value int) (TopK, error) {
	if value < 1 {
		return 0, fmt.Errorf("%w: got %d", ErrInvalidTopK, value)
	}
	return TopK(value), nil
}

// StopSequence is a custom sequence that stops generation when produced.
type StopSequence string

func NewStopSequence(value string) StopSequence {
	return StopSequence(value)
}

func (s StopSequence) String() string {
	return string(s)
}

// SystemPrompt provides context and instructions outside the message list.
type SystemPrompt string

func NewSystemPrompt(value string) SystemPrompt {
	return SystemPrompt(value)
}

func (s SystemPrompt) String() string {
	return string(s)
}

// StreamOption selects between a single response body and an event stream.
// It crosses the wire as a JSON bool.
type StreamOption bool

const (
	// StreamOptionReturnOnce requests the whole response in one body.
	StreamOptionReturnOnce StreamOption = false
	// StreamOptionReturnStream requests server-sent incremental events.
	StreamOptionReturnStream StreamOption = true
)

// UserID is an opaque external identifier for the end user, carried in
// request metadata for abuse detection.
type UserID string

func NewUserID(value string) UserID {
	return UserID(value)
}

func (u UserID) String() string {
	return string(u)
}

// Metadata describes the request's originator.
type Metadata struct {
	UserID UserID `json:"user_id"`
}

//----------------------------------------------------------------
// MessagesRequestBody
//----------------------------------------------------------------

// MessagesRequestBody is the request body for the Messages API. Optional
// fields are pointers and omitted from the wire form when nil.
type MessagesRequestBody struct {
	Model         ClaudeModel    `json:"model"`
	Messages      []Message      `json:"messages"`
	System        SystemPrompt   `json:"system,omitempty"`
	MaxTokens     MaxTokens      `json:"max_tokens"`
	Metadata      *Metadata      `json:"metadata,omitempty"`
	StopSequences []StopSequence `json:"stop_sequences,omitempty"`
	Stream        *StreamOption  `json:"stream,omitempty"`
	Temperature   *Temperature   `json:"temperature,omitempty"`
	TopK          *TopK          `json:"top_k,omitempty"`
	TopP          *TopP          `json:"top_p,omitempty"`
}

// NewMessagesRequestBody builds a request with the required fields; set
// optional fields on the returned value.
func NewMessagesRequestBody(model ClaudeModel, messages []Message, maxTokens MaxTokens) MessagesRequestBody {
	return MessagesRequestBody{
		Model:     model,
		Messages:  messages,
		MaxTokens: maxTokens,
	}
}

func (b MessagesRequestBody) String() string {
	return prettyJSON(b)
}
