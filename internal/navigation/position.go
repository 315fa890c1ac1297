package navigation

import "mbs/inventory/internal/domain"

// Position is where the shopper stands in the catalog. A nil Position is
// the category list; otherwise it is either Flat or Hierarchical,
// depending on the kind of category that was entered.
type Position interface {
	CategoryID() string
	// Path is the ordered list of non-empty selections.
	Path() domain.Path
	isPosition()
}

// Flat is inside a category that lists its products directly.
type Flat struct {
	Category string
}

func (f Flat) CategoryID() string {
	return f.Category
}

func (f Flat) Path() domain.Path {
	return domain.NewPath(f.Category)
}

func (Flat) isPosition() {}

// Hierarchical is inside a category organised by brand. Subsection and
// Product are mutually exclusive: a product line either has color
// options (subsection) or is itself a product with a color table.
type Hierarchical struct {
	Category   string
	Brand      string
	Subsection string
	Product    string
}

func (h Hierarchical) CategoryID() string {
	return h.Category
}

func (h Hierarchical) Path() domain.Path {
	p := domain.NewPath(h.Category)
	if h.Brand == "" {
		return p
	}
	p = p.Child(h.Brand)
	switch {
	case h.Subsection != "":
		p = p.Child(h.Subsection)
	case h.Product != "":
		p = p.Child(h.Product)
	}
	return p
}

func (Hierarchical) isPosition() {}

// PathOf is the selection path of any position, nil at the root.
func PathOf(pos Position) domain.Path {
	if pos == nil {
		return nil
	}
	return pos.Path()
}
