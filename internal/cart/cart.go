package cart

import (
	"context"
	"fmt"
	"sync"

	"github.com/shopspring/decimal"
)

// Item is a cart line item as the storefront adds it.
type Item struct {
	ID    string  `json:"id"`
	Name  string  `json:"name"`
	Price float64 `json:"price"`
	Image string  `json:"image"`
}

type Line struct {
	Item     Item `json:"item"`
	Quantity int  `json:"quantity"`
}

// Total is the line's price times quantity, rounded to cents.
func (l Line) Total() decimal.Decimal {
	return decimal.NewFromFloat(l.Item.Price).Mul(decimal.NewFromInt(int64(l.Quantity))).Round(2)
}

// Cart receives items from the storefront.
type Cart interface {
	AddToCart(ctx context.Context, item Item, quantity int) error
	TotalItems(ctx context.Context) (int, error)
}

// MemoryCart merges repeated items by id, summing their quantities.
type MemoryCart struct {
	mu    sync.Mutex
	order []string
	lines map[string]*Line
}

func NewMemoryCart() *MemoryCart {
	return &MemoryCart{lines: make(map[string]*Line)}
}

func (c *MemoryCart) AddToCart(_ context.Context, item Item, quantity int) error {
	if quantity < 1 {
		return fmt.Errorf("invalid quantity %d for %s", quantity, item.ID)
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if line, ok := c.lines[item.ID]; ok {
		line.Quantity += quantity
		line.Item = item
		return nil
	}
	c.lines[item.ID] = &Line{Item: item, Quantity: quantity}
	c.order = append(c.order, item.ID)
	return nil
}

func (c *MemoryCart) TotalItems(context.Context) (int, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	total := 0
	for _, line := range c.lines {
		total += line.Quantity
	}
	return total, nil
}

// Lines returns the cart contents in the order items were first added.
func (c *MemoryCart) Lines() []Line {
	c.mu.Lock()
	defer c.mu.Unlock()

	out := make([]Line, 0, len(c.order))
	for _, id := range c.order {
		out = append(out, *c.lines[id])
	}
	return out
}

func (c *MemoryCart) Subtotal() decimal.Decimal {
	sum := decimal.Zero
	for _, line := range c.Lines() {
		sum = sum.Add(line.Total())
	}
	return sum
}
