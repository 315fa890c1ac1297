package navigation

import (
	"context"
	"sync"

	"mbs/inventory/internal/domain"

	log "github.com/sirupsen/logrus"
)

// TreeSource yields the current catalog. The catalog store satisfies it.
type TreeSource interface {
	Snapshot(ctx context.Context) *domain.Tree
}

// Navigator tracks one shopper's position in the catalog. Transitions
// that do not apply to the current position are ignored and reported as
// false.
type Navigator struct {
	source TreeSource

	mu  sync.RWMutex
	pos Position
}

func NewNavigator(source TreeSource) *Navigator {
	return &Navigator{source: source}
}

// Position returns the current position, nil at the category list.
func (n *Navigator) Position() Position {
	n.mu.RLock()
	defer n.mu.RUnlock()
	return n.pos
}

// NavigateToCategory enters a category from any position. Categories with
// subcategories start at their brand list, the rest at their products.
func (n *Navigator) NavigateToCategory(ctx context.Context, categoryID string) bool {
	tree := n.source.Snapshot(ctx)
	node, ok := tree.Node(domain.NewPath(categoryID))
	if !ok || node.Kind != domain.KindCategory {
		log.Debugf("🧭 Unknown category %q, staying put", categoryID)
		return false
	}

	n.mu.Lock()
	defer n.mu.Unlock()
	if node.HasSubcategories {
		n.pos = Hierarchical{Category: categoryID}
	} else {
		n.pos = Flat{Category: categoryID}
	}
	return true
}

// NavigateToBrand selects a brand inside the current hierarchical
// category, clearing any deeper selection.
func (n *Navigator) NavigateToBrand(ctx context.Context, brandID string) bool {
	tree := n.source.Snapshot(ctx)

	n.mu.Lock()
	defer n.mu.Unlock()

	h, ok := n.pos.(Hierarchical)
	if !ok {
		log.Debugf("🧭 Brand %q ignored outside a hierarchical category", brandID)
		return false
	}
	if !isKind(tree, domain.NewPath(h.Category, brandID), domain.KindBrand) {
		log.Debugf("🧭 Brand %q not found in %q", brandID, h.Category)
		return false
	}

	n.pos = Hierarchical{Category: h.Category, Brand: brandID}
	return true
}

// NavigateToSubsection opens a product line that has color options.
func (n *Navigator) NavigateToSubsection(ctx context.Context, lineID string) bool {
	return n.openLine(ctx, lineID, true)
}

// NavigateToProduct opens a product line that has a color table.
func (n *Navigator) NavigateToProduct(ctx context.Context, lineID string) bool {
	return n.openLine(ctx, lineID, false)
}

func (n *Navigator) openLine(ctx context.Context, lineID string, subsection bool) bool {
	tree := n.source.Snapshot(ctx)

	n.mu.Lock()
	defer n.mu.Unlock()

	h, ok := n.pos.(Hierarchical)
	if !ok || h.Brand == "" {
		log.Debugf("🧭 Product line %q ignored without a selected brand", lineID)
		return false
	}

	line, found := tree.Node(domain.NewPath(h.Category, h.Brand, lineID))
	if !found || line.Kind != domain.KindProductLine {
		log.Debugf("🧭 Product line %q not found under %s/%s", lineID, h.Category, h.Brand)
		return false
	}
	if line.HasSubProducts != subsection {
		log.Debugf("🧭 Product line %q opened as the wrong level", lineID)
		return false
	}

	next := Hierarchical{Category: h.Category, Brand: h.Brand}
	if subsection {
		next.Subsection = lineID
	} else {
		next.Product = lineID
	}
	n.pos = next
	return true
}

// GoBack pops the deepest selection: product, then subsection, then
// brand, then the category itself.
func (n *Navigator) GoBack() {
	n.mu.Lock()
	defer n.mu.Unlock()

	switch p := n.pos.(type) {
	case Flat:
		n.pos = nil
	case Hierarchical:
		switch {
		case p.Product != "":
			p.Product = ""
			n.pos = p
		case p.Subsection != "":
			p.Subsection = ""
			n.pos = p
		case p.Brand != "":
			p.Brand = ""
			n.pos = p
		default:
			n.pos = nil
		}
	}
}

// Reset returns to the category list.
func (n *Navigator) Reset() {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.pos = nil
}

// Enter jumps straight to target, as when a breadcrumb is followed.
func (n *Navigator) Enter(target Position) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.pos = target
}

// CurrentView derives the view from the latest catalog, so edits show up
// without re-navigating.
func (n *Navigator) CurrentView(ctx context.Context) View {
	return DeriveView(n.source.Snapshot(ctx), n.Position())
}

func (n *Navigator) Breadcrumbs(ctx context.Context) []Breadcrumb {
	return DeriveBreadcrumbs(n.source.Snapshot(ctx), n.Position())
}

func isKind(tree *domain.Tree, p domain.Path, kind domain.Kind) bool {
	node, ok := tree.Node(p)
	return ok && node.Kind == kind
}
