// Package resources retrieves downloadable lesson attachments. The rest of
// the system only depends on this contract: a resource id maps to a named
// byte payload, and "unknown id" is reported distinctly from a failed fetch.
package resources

import (
	"context"
	"errors"
	"fmt"

	"edubridge/backend/catalog"
)

var ErrNotFound = errors.New("resources: not found")

// RetrievalError wraps a transport or storage failure for a known resource.
type RetrievalError struct {
	ResourceID string
	Err        error
}

func (e *RetrievalError) Error() string {
	return fmt.Sprintf("resources: fetch %s: %v", e.ResourceID, e.Err)
}

func (e *RetrievalError) Unwrap() error { return e.Err }

type Retriever interface {
	Fetch(ctx context.Context, resourceID string) (filename string, payload []byte, err error)
}

// MockRetriever serves placeholder payloads for catalog resources. Fault can
// be set in tests to exercise the retrieval-failure path.
type MockRetriever struct {
	Catalog *catalog.Catalog
	Fault   error
}

func NewMock(cat *catalog.Catalog) *MockRetriever {
	return &MockRetriever{Catalog: cat}
}

func (m *MockRetriever) Fetch(ctx context.Context, resourceID string) (string, []byte, error) {
	if err := ctx.Err(); err != nil {
		return "", nil, err
	}
	_, _, res, ok := m.Catalog.FindResource(resourceID)
	if !ok {
		return "", nil, ErrNotFound
	}
	if m.Fault != nil {
		return "", nil, &RetrievalError{ResourceID: resourceID, Err: m.Fault}
	}
	return res.Name, []byte("Mock content for " + res.Name), nil
}
