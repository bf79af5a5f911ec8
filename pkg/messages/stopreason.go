package messages

// StopReason enumerates why generation terminated.
//
//   - "end_turn": the model reached a natural stopping point
//   - "max_tokens": the requested max_tokens or the model's maximum was hit
//   - "stop_sequence": one of the custom stop sequences was generated
type StopReason string

const (
	StopReasonEndTurn      StopReason = "end_turn"
	StopReasonMaxTokens    StopReason = "max_tokens"
	StopReasonStopSequence StopReason = "stop_sequence"
)

func (r StopReason) String() string {
	return string(r)
}

// UnmarshalJSON rejects stop reasons outside the documented set.
func (r *StopReason) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	switch StopReason(s) {
	case StopReasonEndTurn, StopReasonMaxTokens, StopReasonStopSequence:
		*r = StopReason(s)
		return nil
	}
	return &UnknownValueError{Field: "stop_reason", Value: s}
}
