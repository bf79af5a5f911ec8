package messages

// Usage carries the token counts the API bills and rate-limits by. The
// counts come from the API's own accounting and will not map one-to-one to
// the visible content of a request or response.
type Usage struct {
	InputTokens  int `json:"input_tokens"`
	OutputTokens int `json:"output_tokens"`
}

func (u Usage) String() string {
	return prettyJSON(u)
}

// DeltaUsage is the cumulative output-token count carried by a
// message_delta stream event.
type DeltaUsage struct {
	OutputTokens int `json:"output_tokens"`
}

func (u DeltaUsage) String() string {
	return prettyJSON(u)
}
