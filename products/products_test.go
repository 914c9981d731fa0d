package products

import (
	"testing"

	"smartduka/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func page(n int) []models.Product {
	out := make([]models.Product, n)
	for i := range out {
		out[i] = models.Product{ProductID: "p", Price: 1}
	}
	return out
}

func TestPaginateFullPageHasNextCursor(t *testing.T) {
	// 13 fetched rows = 12 to serve + 1 probe
	got := paginate(page(13), 0, 12)

	assert.Len(t, got.Data, 12)
	require.NotNil(t, got.NextCursor)
	assert.Equal(t, int64(1), *got.NextCursor)
}

func TestPaginateLastPageEndsCursor(t *testing.T) {
	got := paginate(page(7), 3, 12)

	assert.Len(t, got.Data, 7)
	assert.Nil(t, got.NextCursor, "nil cursor signals end of data")
}

func TestPaginateEmptyCatalogue(t *testing.T) {
	got := paginate(nil, 0, 12)

	assert.NotNil(t, got.Data)
	assert.Empty(t, got.Data)
	assert.Nil(t, got.NextCursor)
}

func TestPaginateExactBoundary(t *testing.T) {
	// exactly one page in the catalogue: no probe row comes back
	got := paginate(page(12), 0, 12)

	assert.Len(t, got.Data, 12)
	assert.Nil(t, got.NextCursor)
}
