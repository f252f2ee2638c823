// internal/catalog/registry_test.go
package catalog

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/pawanbishnoiii/shineveda-backend/internal/models"
)

func TestRegistryOneViewPerSession(t *testing.T) {
	fetch := func(ctx context.Context, f FilterState) ([]models.Product, error) {
		return nil, nil
	}
	r := NewRegistry(fetch)

	a := r.Get("session-a")
	b := r.Get("session-b")

	assert.NotSame(t, a, b)
	assert.Same(t, a, r.Get("session-a"))
}
