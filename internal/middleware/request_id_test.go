package middleware

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRequestIDRoundTrip(t *testing.T) {
	ctx := WithRequestID(context.Background(), "abc-123")
	require.Equal(t, "abc-123", RequestIDFromContext(ctx))
}

func TestRequestIDFromContextMintsWhenAbsent(t *testing.T) {
	id := RequestIDFromContext(context.Background())
	require.NotEmpty(t, id)
}

func TestNewRequestContextCarriesMintedID(t *testing.T) {
	ctx, id := NewRequestContext(context.Background())
	require.NotEmpty(t, id)
	require.Equal(t, id, RequestIDFromContext(ctx))
}
