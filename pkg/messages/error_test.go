package messages

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeApiErrorResponse(t *testing.T) {
	wire := `{"type":"error","error":{"type":"rate_limit_error","message":"Number of requests exceeds your rate limit"}}`

	resp, err := DecodeApiErrorResponse([]byte(wire))
	require.NoError(t, err)
	assert.Equal(t, ApiErrorTypeRateLimit, resp.Detail.Type)
	assert.Equal(t, "rate_limit_error: Number of requests exceeds your rate limit", resp.Error())

	out, marshalErr := json.Marshal(resp)
	require.NoError(t, marshalErr)
	assert.JSONEq(t, wire, string(out))
}

func TestDecodeApiErrorResponseRejectsWrongOuterType(t *testing.T) {
	_, err := DecodeApiErrorResponse([]byte(`{"type":"message","error":{"type":"api_error","message":"x"}}`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown error response type")
}

func TestApiErrorTypeRejectsUnknown(t *testing.T) {
	var et ApiErrorType
	err := json.Unmarshal([]byte(`"billing_error"`), &et)
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown error type value: "billing_error"`)
}

func TestApiErrorTypeVariants(t *testing.T) {
	variants := []ApiErrorType{
		ApiErrorTypeInvalidRequest,
		ApiErrorTypeAuthentication,
		ApiErrorTypePermission,
		ApiErrorTypeNotFound,
		ApiErrorTypeRateLimit,
		ApiErrorTypeApi,
		ApiErrorTypeOverloaded,
	}
	for _, variant := range variants {
		b, err := json.Marshal(variant)
		require.NoError(t, err)

		var decoded ApiErrorType
		require.NoError(t, json.Unmarshal(b, &decoded))
		assert.Equal(t, variant, decoded)
	}
}
