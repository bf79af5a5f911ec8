package messages

import (
	"errors"
	"fmt"
)

// Validation errors returned by the parameter constructors.
var (
	ErrInvalidTemperature   = errors.New("temperature must be between 0.0 and 1.0")
	ErrInvalidTopP          = errors.New("top_p must be between 0.0 and 1.0")
	ErrInvalidTopK          = errors.New("top_k must be greater than 0")
	ErrInvalidMaxTokens     = errors.New("max_tokens out of range for model")
	ErrUnsupportedMediaType = errors.New("unsupported image media type")
	ErrNoTextContent        = errors.New("content has no text block")
	ErrNoImageContent       = errors.New("content has no image block")
)

// UnknownContentTypeError reports a content block whose "type" field is not
// part of the wire schema.
type UnknownContentTypeError struct {
	Value string
}

func (e *UnknownContentTypeError) Error() string {
	return fmt.Sprintf("unknown content block type: %q", e.Value)
}

// UnknownChunkTypeError reports a stream event whose "type" field is not
// part of the wire schema.
type UnknownChunkTypeError struct {
	Value string
}

func (e *UnknownChunkTypeError) Error() string {
	return fmt.Sprintf("unknown stream chunk type: %q", e.Value)
}

// UnknownValueError reports an enumerated field carrying a value outside
// the documented set, e.g. an unrecognized role or stop reason.
type UnknownValueError struct {
	Field string
	Value string
}

func (e *UnknownValueError) Error() string {
	return fmt.Sprintf("unknown %s value: %q", e.Field, e.Value)
}

// ApiErrorType enumerates the error shapes the API reports in error bodies
// and in "error" stream events.
type ApiErrorType string

const (
	ApiErrorTypeInvalidRequest ApiErrorType = "invalid_request_error"
	ApiErrorTypeAuthentication ApiErrorType = "authentication_error"
	ApiErrorTypePermission     ApiErrorType = "permission_error"
	ApiErrorTypeNotFound       ApiErrorType = "not_found_error"
	ApiErrorTypeRateLimit      ApiErrorType = "rate_limit_error"
	ApiErrorTypeApi            ApiErrorType = "api_error"
	ApiErrorTypeOverloaded     ApiErrorType = "overloaded_error"
)

func (t ApiErrorType) String() string {
	return string(t)
}

// UnmarshalJSON rejects error types outside the documented set.
func (t *ApiErrorType) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	switch ApiErrorType(s) {
	case ApiErrorTypeInvalidRequest, ApiErrorTypeAuthentication,
		ApiErrorTypePermission, ApiErrorTypeNotFound,
		ApiErrorTypeRateLimit, ApiErrorTypeApi, ApiErrorTypeOverloaded:
		*t = ApiErrorType(s)
		return nil
	}
	return &UnknownValueError{Field: "error type", Value: s}
}

// ApiErrorDetail is the inner error object of an API error body.
type ApiErrorDetail struct {
	Type    ApiErrorType `json:"type"`
	Message string       `json:"message"`
}

// ApiErrorResponse is the body the API returns on failure, and the payload
// of an "error" stream event. The outer Type is always "error".
type ApiErrorResponse struct {
	Type   string         `json:"type"`
	Detail ApiErrorDetail `json:"error"`
}

// Error implements the error interface so an API failure can travel as a
// plain Go error.
func (e *ApiErrorResponse) Error() string {
	return fmt.Sprintf("%s: %s", e.Detail.Type, e.Detail.Message)
}

func (e *ApiErrorResponse) String() string {
	return prettyJSON(e)
}

// DecodeApiErrorResponse parses an API error body.
func DecodeApiErrorResponse(data []byte) (*ApiErrorResponse, error) {
	var resp ApiErrorResponse
	if err := json.Unmarshal(data, &resp); err != nil {
		return nil, err
	}
	if resp.Type != "error" {
		return nil, &UnknownValueError{Field: "error response type", Value: resp.Type}
	}
	return &resp, nil
}
