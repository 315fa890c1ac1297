package events

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryJournalRecentNewestFirst(t *testing.T) {
	ctx := context.Background()
	j := NewMemoryJournal()

	_, err := j.Publish(ctx, NewCatalogEdited("brands", []string{"shingles", "atlas"}, map[string]string{"name": "Atlas Roofing"}))
	require.NoError(t, err)
	_, err = j.Publish(ctx, NewStockChanged("landmark", 12))
	require.NoError(t, err)
	id, err := j.Publish(ctx, NewCatalogEdited("direct-products", []string{"nails", "staples"}, map[string]string{"price": "39.99"}))
	require.NoError(t, err)
	assert.Equal(t, "3-0", id)

	records, err := j.Recent(ctx, "CatalogEdited", 10)
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "3-0", records[0].ID)

	edit, err := UnmarshalEvent[*CatalogEdited](records[0].Data)
	require.NoError(t, err)
	assert.Equal(t, "direct-products", edit.Kind)
	assert.Equal(t, []string{"nails", "staples"}, edit.Path)
	assert.Equal(t, "39.99", edit.Fields["price"])
	assert.NotEmpty(t, edit.ID)

	limited, err := j.Recent(ctx, "CatalogEdited", 1)
	require.NoError(t, err)
	assert.Len(t, limited, 1)
}

func TestNewCatalogEditedCopiesPath(t *testing.T) {
	path := []string{"shingles", "certainteed"}
	e := NewCatalogEdited("brands", path, nil)
	path[1] = "atlas"

	assert.Equal(t, []string{"shingles", "certainteed"}, e.Path)
	assert.Equal(t, "CatalogEdited", e.EventType())
}

func TestNoopJournal(t *testing.T) {
	ctx := context.Background()
	j := Noop()

	id, err := j.Publish(ctx, NewStockChanged("staples", 3))
	require.NoError(t, err)
	assert.Empty(t, id)

	records, err := j.Recent(ctx, "StockChanged", 5)
	require.NoError(t, err)
	assert.Empty(t, records)
}
