package resources

import (
	"context"
	"errors"
	"testing"

	"edubridge/backend/catalog"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFetchKnownResource(t *testing.T) {
	retriever := NewMock(catalog.Default())

	name, payload, err := retriever.Fetch(context.Background(), "r1-1")
	require.NoError(t, err)
	assert.Equal(t, "Computer Basics Guide.pdf", name)
	assert.Equal(t, []byte("Mock content for Computer Basics Guide.pdf"), payload)
}

func TestFetchUnknownResource(t *testing.T) {
	retriever := NewMock(catalog.Default())

	_, _, err := retriever.Fetch(context.Background(), "nope")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestFetchFaultIsRetrievalError(t *testing.T) {
	retriever := NewMock(catalog.Default())
	retriever.Fault = errors.New("storage offline")

	_, _, err := retriever.Fetch(context.Background(), "r1-1")

	var retrievalErr *RetrievalError
	require.ErrorAs(t, err, &retrievalErr)
	assert.Equal(t, "r1-1", retrievalErr.ResourceID)
	assert.NotErrorIs(t, err, ErrNotFound)
}

func TestFetchCancelledContext(t *testing.T) {
	retriever := NewMock(catalog.Default())
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, _, err := retriever.Fetch(ctx, "r1-1")
	assert.ErrorIs(t, err, context.Canceled)
}
