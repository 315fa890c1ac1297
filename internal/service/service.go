package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"mbs/inventory/internal/cart"
	"mbs/inventory/internal/catalog"
	"mbs/inventory/internal/domain"
	"mbs/inventory/internal/navigation"
	"mbs/inventory/internal/pricing"
	"mbs/inventory/internal/state"
	"mbs/inventory/internal/stock"

	log "github.com/sirupsen/logrus"
)

var (
	ErrNotInView   = errors.New("item is not in the current view")
	ErrNotSellable = errors.New("item must be opened before it can be added")
	ErrOutOfStock  = errors.New("item is out of stock")
)

// Entry is one listed item with what the storefront shows for it.
type Entry struct {
	Node      domain.Node
	Sellable  bool
	Stock     int // only meaningful when HasStock
	HasStock  bool
	Badge     stock.Badge
	Price     float64
	PriceText string
}

type Page struct {
	View        navigation.View
	Breadcrumbs []navigation.Breadcrumb
	Entries     []Entry
	Tiers       []domain.BulkPricingTier
}

// Quote is the bulk price for quantity units.
type Quote struct {
	Tier      domain.BulkPricingTier
	Quantity  int
	UnitPrice float64
	Total     decimal.Decimal
}

// LocationLevel is the stock of one product at one location.
type LocationLevel struct {
	Location domain.StockLocation
	Stock    int
}

// Inventory is the storefront facade over the catalog, stock, pricing
// and cart collaborators.
type Inventory struct {
	store        *catalog.Store
	stock        *stock.Service
	pricing      *pricing.Engine
	cart         cart.Cart
	stateManager state.StateManager
	locations    []domain.StockLocation
}

func NewInventory(
	store *catalog.Store,
	stockService *stock.Service,
	engine *pricing.Engine,
	cart cart.Cart,
	stateManager state.StateManager,
	locations []domain.StockLocation,
) *Inventory {
	if len(locations) == 0 {
		locations = stock.DefaultLocations()
	}
	return &Inventory{
		store:        store,
		stock:        stockService,
		pricing:      engine,
		cart:         cart,
		stateManager: stateManager,
		locations:    locations,
	}
}

// Navigator returns a navigator for session, positioned where the
// session last stood. An unreadable session starts over.
func (s *Inventory) Navigator(ctx context.Context, session string) *navigation.Navigator {
	nav := navigation.NewNavigator(s.store)
	pos, err := s.stateManager.GetPosition(ctx, session)
	if err != nil {
		log.Warnf("⚠️ Failed to restore session %s, starting at the categories: %v", session, err)
		return nav
	}
	nav.Enter(pos)
	return nav
}

func (s *Inventory) SaveNavigator(ctx context.Context, session string, nav *navigation.Navigator) error {
	return s.stateManager.SetPosition(ctx, session, nav.Position())
}

// CurrentView lists the current view with stock and prices at quantity 1.
func (s *Inventory) CurrentView(ctx context.Context, nav *navigation.Navigator) Page {
	tree := s.store.Snapshot(ctx)
	pos := nav.Position()
	view := navigation.DeriveView(tree, pos)

	page := Page{
		View:        view,
		Breadcrumbs: navigation.DeriveBreadcrumbs(tree, pos),
		Entries:     make([]Entry, 0, len(view.Items)),
	}
	if pos != nil {
		page.Tiers = s.pricing.Tiers(pos.CategoryID())
	}

	for _, node := range view.Items {
		page.Entries = append(page.Entries, s.entry(ctx, view.Type, node))
	}
	return page
}

func (s *Inventory) Breadcrumbs(ctx context.Context, nav *navigation.Navigator) []navigation.Breadcrumb {
	return nav.Breadcrumbs(ctx)
}

func (s *Inventory) entry(ctx context.Context, viewType navigation.ViewType, node domain.Node) Entry {
	e := Entry{Node: node, Price: node.Price}

	switch viewType {
	case navigation.ViewColorOptions:
		e.Sellable = true
		e.HasStock = true
		e.Stock = s.stock.GetStock(ctx, node.ID())
	case navigation.ViewProducts:
		// lines without colors are bought straight from the list
		e.Sellable = !node.HasColors && !node.HasSubProducts
		e.HasStock = true
		e.Stock = s.stock.GetStock(ctx, node.ID())
		if node.StartingPrice != 0 {
			e.Price = node.StartingPrice
		}
	case navigation.ViewColors, navigation.ViewDirectProducts:
		// these listings carry their own stock field
		e.Sellable = true
		e.HasStock = true
		e.Stock = node.Stock
	}

	if e.HasStock {
		e.Badge = stock.BadgeFor(e.Stock)
	}
	if e.Price != 0 {
		e.PriceText = pricing.FormatPrice(e.Price)
	}
	return e
}

func (s *Inventory) Locations() []domain.StockLocation {
	return s.locations
}

// MainLocation returns the location flagged as main, or the first one.
func (s *Inventory) MainLocation() domain.StockLocation {
	for _, l := range s.locations {
		if l.IsMain {
			return l
		}
	}
	return s.locations[0]
}

// LocationStock lists the stock of productID at every location, in
// location order. Each level is its own stock record.
func (s *Inventory) LocationStock(ctx context.Context, productID string) []LocationLevel {
	levels := make([]LocationLevel, 0, len(s.locations))
	for _, l := range s.locations {
		levels = append(levels, LocationLevel{
			Location: l,
			Stock:    s.stock.GetStock(ctx, stock.LocationSKU(productID, l.ID)),
		})
	}
	return levels
}

func (s *Inventory) StockBadge(stockLevel int) stock.Badge {
	return stock.BadgeFor(stockLevel)
}

func (s *Inventory) BulkDiscount(category string, quantity int) domain.BulkPricingTier {
	return s.pricing.GetTier(category, quantity)
}

func (s *Inventory) Quote(category string, unitPrice float64, quantity int) Quote {
	tier := s.pricing.GetTier(category, quantity)
	unit := s.pricing.Price(unitPrice, category, quantity)
	return Quote{
		Tier:      tier,
		Quantity:  quantity,
		UnitPrice: unit,
		Total:     pricing.LineTotal(unit, quantity),
	}
}

// AddToCart adds itemID from the current view. The quantity is clamped
// to [1, stock] and priced with the category's bulk tier. It returns the
// line item and the quantity actually added.
func (s *Inventory) AddToCart(ctx context.Context, nav *navigation.Navigator, itemID string, quantity int) (cart.Item, int, error) {
	pos := nav.Position()
	if pos == nil {
		return cart.Item{}, 0, ErrNotSellable
	}

	tree := s.store.Snapshot(ctx)
	view := navigation.DeriveView(tree, pos)

	var found *domain.Node
	for i := range view.Items {
		if view.Items[i].ID() == itemID {
			found = &view.Items[i]
			break
		}
	}
	if found == nil {
		return cart.Item{}, 0, fmt.Errorf("%w: %s", ErrNotInView, itemID)
	}

	e := s.entry(ctx, view.Type, *found)
	if !e.Sellable {
		return cart.Item{}, 0, fmt.Errorf("%w: %s", ErrNotSellable, itemID)
	}
	if e.Stock <= 0 {
		return cart.Item{}, 0, fmt.Errorf("%w: %s", ErrOutOfStock, itemID)
	}

	qty := stock.ClampQuantity(quantity, e.Stock)
	unit := s.pricing.Price(e.Price, pos.CategoryID(), qty)

	var item cart.Item
	switch view.Type {
	case navigation.ViewColorOptions:
		line, _ := tree.Node(view.Parent)
		item = cart.ColorOptionItem(line, *found, unit)
	case navigation.ViewColors:
		product, _ := tree.Node(view.Parent)
		item = cart.SwatchItem(product, *found, unit)
	case navigation.ViewProducts:
		item = cart.ProductLineItem(*found, unit)
	default:
		item = cart.DirectItem(*found, unit)
	}

	if err := s.cart.AddToCart(ctx, item, qty); err != nil {
		return cart.Item{}, 0, err
	}

	log.Infof("🛒 Added %d x %s at %s", qty, item.Name, pricing.FormatPrice(unit))
	return item, qty, nil
}
