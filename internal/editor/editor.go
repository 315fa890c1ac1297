package editor

import (
	"context"
	"strings"

	"mbs/inventory/internal/catalog"
	"mbs/inventory/internal/domain"
	"mbs/inventory/internal/events"
	"mbs/inventory/internal/stock"

	log "github.com/sirupsen/logrus"
)

// Target addresses the node to edit: its kind and the ids from its
// category down to itself.
type Target struct {
	Kind domain.Kind
	Path domain.Path
}

func (t Target) String() string {
	return t.Kind.String() + ":" + t.Path.String()
}

type Editor struct {
	store   *catalog.Store
	stock   *stock.Service
	journal events.Journal
	gate    *Gate
}

func NewEditor(store *catalog.Store, stockService *stock.Service, journal events.Journal, gate *Gate) *Editor {
	if journal == nil {
		journal = events.Noop()
	}
	return &Editor{
		store:   store,
		stock:   stockService,
		journal: journal,
		gate:    gate,
	}
}

func (e *Editor) Gate() *Gate {
	return e.gate
}

// Edit applies patch to the node at target and persists the one
// collection holding it. It reports false without writing when no node of
// target.Kind sits at target.Path or the patch has nothing applicable to
// the kind. The error is reserved for a locked gate and backend failures,
// including a catalog that could not be read.
func (e *Editor) Edit(ctx context.Context, target Target, patch Patch) (bool, error) {
	if !e.gate.Unlocked() {
		return false, ErrLocked
	}

	fields := patch.applicable(target.Kind)
	if len(fields) == 0 {
		log.Debugf("✏️ Nothing to apply to %s from %v", target, patch)
		return false, nil
	}
	if target.Path.Len() != target.Kind.Depth() {
		log.Debugf("✏️ Path %q does not address a %s", target.Path, target.Kind.GetKindName())
		return false, nil
	}

	var applied bool
	err := e.store.WithLock(target.Kind, func() error {
		for _, kind := range domain.Kinds {
			if err := e.store.Ensure(ctx, kind); err != nil {
				return err
			}
		}
		if node, ok := e.store.Snapshot(ctx).Node(target.Path); !ok || node.Kind != target.Kind {
			return nil
		}

		updated, ok := e.apply(ctx, target, fields)
		if !ok {
			return nil
		}
		if err := e.store.Save(ctx, target.Kind, updated); err != nil {
			return err
		}
		applied = true
		return nil
	})
	if err != nil {
		return false, err
	}
	if !applied {
		log.Debugf("✏️ %s not found, edit ignored", target)
		return false, nil
	}

	log.Infof("✏️ Updated %s (%s)", target, strings.Join(sortedKeys(fields), ", "))
	e.publish(ctx, events.NewCatalogEdited(target.Kind.String(), target.Path, fields))
	return true, nil
}

// SetStock overrides the tracked stock of sku. Negative values become 0.
func (e *Editor) SetStock(ctx context.Context, sku string, value int) (int, error) {
	if !e.gate.Unlocked() {
		return 0, ErrLocked
	}

	stored, err := e.stock.SetStock(ctx, sku, value)
	if err != nil {
		return 0, err
	}
	e.publish(ctx, events.NewStockChanged(sku, stored))
	return stored, nil
}

func (e *Editor) publish(ctx context.Context, event events.Event) {
	if _, err := e.journal.Publish(ctx, event); err != nil {
		log.Warnf("⚠️ Failed to journal %s: %v", event.EventType(), err)
	}
}

// apply returns a modified copy of the collection holding target. The
// cached collection is never mutated.
func (e *Editor) apply(ctx context.Context, target Target, p Patch) (any, bool) {
	path := target.Path

	switch target.Kind {
	case domain.KindCategory:
		cats := e.store.Categories(ctx).Clone()
		ok := update(cats, path.At(0), func(c *domain.Category) string { return c.ID }, func(c *domain.Category) {
			p.setString(FieldName, &c.Name)
			p.setString(FieldImage, &c.Image)
		})
		return cats, ok

	case domain.KindBrand:
		brands := e.store.Brands(ctx).Clone()
		ok := update(brands[path.At(0)], path.At(1), func(b *domain.Brand) string { return b.ID }, func(b *domain.Brand) {
			p.setString(FieldName, &b.Name)
			p.setString(FieldImage, &b.Image)
			p.setString(FieldLogo, &b.Logo)
		})
		return brands, ok

	case domain.KindProductLine:
		lines := e.store.ProductLines(ctx).Clone()
		ok := update(lines[path.At(1)][path.At(0)], path.At(2), func(l *domain.ProductLine) string { return l.ID }, func(l *domain.ProductLine) {
			p.setString(FieldName, &l.Name)
			p.setString(FieldImage, &l.Image)
			p.setString(FieldDescription, &l.Description)
			// price edits whichever price the line displays
			if l.BasePrice != 0 || l.StartingPrice == 0 {
				p.setFloat(FieldPrice, &l.BasePrice)
			} else {
				p.setFloat(FieldPrice, &l.StartingPrice)
			}
			p.setFloat(FieldBasePrice, &l.BasePrice)
			p.setFloat(FieldStartingPrice, &l.StartingPrice)
		})
		return lines, ok

	case domain.KindColorVariant:
		variants := e.store.ColorVariants(ctx).Clone()
		ok := update(variants[path.At(1)][path.At(2)], path.At(3), func(v *domain.ColorVariant) string { return v.ID }, func(v *domain.ColorVariant) {
			p.setString(FieldName, &v.Name)
			p.setString(FieldImage, &v.Image)
			p.setFloat(FieldPrice, &v.Price)
		})
		return variants, ok

	case domain.KindDirectProduct:
		products := e.store.DirectProducts(ctx).Clone()
		ok := update(products[path.At(0)], path.At(1), func(d *domain.DirectProduct) string { return d.ID }, func(d *domain.DirectProduct) {
			p.setString(FieldName, &d.Name)
			p.setString(FieldImage, &d.Image)
			p.setFloat(FieldPrice, &d.Price)
			p.setInt(FieldStock, &d.Stock)
		})
		return products, ok

	case domain.KindSwatch:
		swatches := e.store.Swatches(ctx).Clone()
		ok := update(swatches[path.At(2)], path.At(3), func(s *domain.Swatch) string { return s.ID }, func(s *domain.Swatch) {
			p.setString(FieldName, &s.Name)
			p.setString(FieldImage, &s.Image)
			p.setString(FieldHex, &s.Hex)
			p.setFloat(FieldPrice, &s.Price)
			p.setInt(FieldStock, &s.Stock)
		})
		return swatches, ok
	}

	return nil, false
}

// update applies fn to the first element of list whose id matches.
func update[T any](list []T, id string, idOf func(*T) string, fn func(*T)) bool {
	for i := range list {
		if idOf(&list[i]) == id {
			fn(&list[i])
			return true
		}
	}
	return false
}
