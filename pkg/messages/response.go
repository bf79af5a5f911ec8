package messages

// MessageObjectType is the object type of a response body, always
// "message".
type MessageObjectType string

const MessageObjectTypeMessage MessageObjectType = "message"

func (t MessageObjectType) String() string {
	return string(t)
}

// UnmarshalJSON rejects object types other than "message".
func (t *MessageObjectType) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	if MessageObjectType(s) != MessageObjectTypeMessage {
		return &UnknownValueError{Field: "message object type", Value: s}
	}
	*t = MessageObjectTypeMessage
	return nil
}

// MessagesResponseBody is the response body for the Messages API.
//
// StopReason and StopSequence are always present on the wire and null when
// absent: in streaming mode the message_start event carries a null
// stop_reason, and stop_sequence is null unless a custom sequence fired.
type MessagesResponseBody struct {
	ID           string            `json:"id"`
	Type         MessageObjectType `json:"type"`
	Role         Role              `json:"role"`
	Content      Content           `json:"content"`
	Model        ClaudeModel       `json:"model"`
	StopReason   *StopReason       `json:"stop_reason"`
	StopSequence *StopSequence     `json:"stop_sequence"`
	Usage        Usage             `json:"usage"`
}

// GetTextContent 提取回應的文字內容
func (b MessagesResponseBody) GetTextContent() string {
	text, err := b.Content.FlattenIntoText()
	if err != nil {
		return ""
	}
	return text
}

func (b MessagesResponseBody) String() string {
	return prettyJSON(b)
}
