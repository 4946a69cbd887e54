package aiclient

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestChatErrorRetryable(t *testing.T) {
	tests := []struct {
		kind      ErrorKind
		retryable bool
	}{
		{KindTransport, true},
		{KindTimeout, true},
		{KindMalformedResponse, true},
		{KindUpstream, true},
		{KindEmptyResponse, false},
		{KindRetriesExhausted, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.kind), func(t *testing.T) {
			err := newChatError(tt.kind, 1, 3, "x", nil)
			assert.Equal(t, tt.retryable, err.IsRetryable())
		})
	}
}

func TestChatErrorFormat(t *testing.T) {
	inner := errors.New("connection refused")
	err := newChatError(KindTransport, 2, 3, "send request", inner)

	assert.Contains(t, err.Error(), "transport_error")
	assert.Contains(t, err.Error(), "attempt 2/3")
	assert.Contains(t, err.Error(), "connection refused")
	assert.ErrorIs(t, err, inner)

	bare := newChatError(KindUpstream, 1, 1, "rate limited", nil)
	assert.Contains(t, bare.Error(), "rate limited")
	assert.NotContains(t, bare.Error(), "<nil>")
}

func TestChatErrorChain(t *testing.T) {
	inner := newChatError(KindUpstream, 3, 3, "boom", nil)
	outer := newChatError(KindRetriesExhausted, 3, 3, "all 3 attempts failed", inner)

	var cerr *ChatError
	assert.ErrorAs(t, outer.Unwrap(), &cerr)
	assert.Equal(t, KindUpstream, cerr.Kind)
}
