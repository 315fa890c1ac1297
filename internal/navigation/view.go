package navigation

import "mbs/inventory/internal/domain"

type ViewType string

const (
	ViewCategories     ViewType = "categories"
	ViewBrands         ViewType = "brands"
	ViewSubsections    ViewType = "subsections"
	ViewColorOptions   ViewType = "color-options"
	ViewProducts       ViewType = "products"
	ViewColors         ViewType = "colors"
	ViewDirectProducts ViewType = "direct-products"
)

// View is what to render at a position: the items listed and the path of
// the node they belong to.
type View struct {
	Type   ViewType
	Parent domain.Path
	Items  []domain.Node
}

type Breadcrumb struct {
	Label  string
	Target Position
}

const rootLabel = "Categories"

// DeriveView computes the view for pos from tree alone. A position whose
// category no longer exists falls back to the category list.
func DeriveView(tree *domain.Tree, pos Position) View {
	root := View{Type: ViewCategories, Items: tree.Children(nil)}
	if pos == nil {
		return root
	}

	catPath := domain.NewPath(pos.CategoryID())
	if _, ok := tree.Node(catPath); !ok {
		return root
	}

	switch p := pos.(type) {
	case Flat:
		return View{
			Type:   ViewDirectProducts,
			Parent: catPath,
			Items:  tree.ChildrenOfKind(catPath, domain.KindDirectProduct),
		}

	case Hierarchical:
		if p.Brand == "" {
			return View{
				Type:   ViewBrands,
				Parent: catPath,
				Items:  tree.ChildrenOfKind(catPath, domain.KindBrand),
			}
		}

		brandPath := catPath.Child(p.Brand)
		if p.Subsection != "" {
			linePath := brandPath.Child(p.Subsection)
			return View{
				Type:   ViewColorOptions,
				Parent: linePath,
				Items:  tree.ChildrenOfKind(linePath, domain.KindColorVariant),
			}
		}
		if p.Product != "" {
			linePath := brandPath.Child(p.Product)
			return View{
				Type:   ViewColors,
				Parent: linePath,
				Items:  tree.ChildrenOfKind(linePath, domain.KindSwatch),
			}
		}

		lines := tree.ChildrenOfKind(brandPath, domain.KindProductLine)
		viewType := ViewProducts
		if hasSubsections(lines) {
			viewType = ViewSubsections
		}
		return View{Type: viewType, Parent: brandPath, Items: lines}
	}

	return root
}

func hasSubsections(lines []domain.Node) bool {
	for _, l := range lines {
		if l.HasSubProducts {
			return true
		}
	}
	return false
}

// DeriveBreadcrumbs lists the root crumb followed by one crumb per
// selection, labelled with the names currently in tree. Each Target
// re-enters exactly that level.
func DeriveBreadcrumbs(tree *domain.Tree, pos Position) []Breadcrumb {
	crumbs := []Breadcrumb{{Label: rootLabel, Target: nil}}
	if pos == nil {
		return crumbs
	}

	catPath := domain.NewPath(pos.CategoryID())

	switch p := pos.(type) {
	case Flat:
		crumbs = append(crumbs, Breadcrumb{Label: tree.Name(catPath), Target: Flat{Category: p.Category}})

	case Hierarchical:
		crumbs = append(crumbs, Breadcrumb{Label: tree.Name(catPath), Target: Hierarchical{Category: p.Category}})
		if p.Brand == "" {
			break
		}

		brandPath := catPath.Child(p.Brand)
		crumbs = append(crumbs, Breadcrumb{
			Label:  tree.Name(brandPath),
			Target: Hierarchical{Category: p.Category, Brand: p.Brand},
		})

		if p.Subsection != "" {
			crumbs = append(crumbs, Breadcrumb{
				Label:  tree.Name(brandPath.Child(p.Subsection)),
				Target: Hierarchical{Category: p.Category, Brand: p.Brand, Subsection: p.Subsection},
			})
		}
		if p.Product != "" {
			crumbs = append(crumbs, Breadcrumb{
				Label:  tree.Name(brandPath.Child(p.Product)),
				Target: Hierarchical{Category: p.Category, Brand: p.Brand, Product: p.Product},
			})
		}
	}

	return crumbs
}
