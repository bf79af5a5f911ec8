package messages

// Role is the conversational role of a message.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

func (r Role) String() string {
	return string(r)
}

// UnmarshalJSON rejects roles outside the documented set.
func (r *Role) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	switch Role(s) {
	case RoleUser, RoleAssistant:
		*r = Role(s)
		return nil
	}
	return &UnknownValueError{Field: "role", Value: s}
}
