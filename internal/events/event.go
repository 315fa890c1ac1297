package events

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

type Event interface {
	EventType() string
	EventValue() ([]byte, error)
}

// DefaultEventValue provides a common implementation for EventValue
func DefaultEventValue(event interface{}) ([]byte, error) {
	return json.Marshal(event)
}

func UnmarshalEvent[T Event](data []byte) (T, error) {
	var e T
	err := json.Unmarshal(data, &e)
	return e, err
}

// CatalogEdited records one applied catalog edit.
type CatalogEdited struct {
	ID       string            `json:"id"`
	Kind     string            `json:"kind"`      // persisted key that was rewritten
	Path     []string          `json:"path"`      // ids from category down to the edited node
	Fields   map[string]string `json:"fields"`    // patch as entered by the editor
	EditedAt time.Time         `json:"edited_at"` // UTC
}

func NewCatalogEdited(kind string, path []string, fields map[string]string) *CatalogEdited {
	return &CatalogEdited{
		ID:       uuid.NewString(),
		Kind:     kind,
		Path:     append([]string(nil), path...),
		Fields:   fields,
		EditedAt: time.Now().UTC(),
	}
}

func (e *CatalogEdited) EventType() string {
	return "CatalogEdited"
}

func (e *CatalogEdited) EventValue() ([]byte, error) {
	return DefaultEventValue(e)
}

// StockChanged records an explicit stock override.
type StockChanged struct {
	ID        string    `json:"id"`
	SKU       string    `json:"sku"`
	Stock     int       `json:"stock"`
	ChangedAt time.Time `json:"changed_at"`
}

func NewStockChanged(sku string, stock int) *StockChanged {
	return &StockChanged{
		ID:        uuid.NewString(),
		SKU:       sku,
		Stock:     stock,
		ChangedAt: time.Now().UTC(),
	}
}

func (e *StockChanged) EventType() string {
	return "StockChanged"
}

func (e *StockChanged) EventValue() ([]byte, error) {
	return DefaultEventValue(e)
}
