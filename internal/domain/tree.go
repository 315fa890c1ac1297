package domain

import "strings"

// Path addresses a node by the ordered ids from its category down:
// (category, brand?, productLine?, color?). Direct products use
// (category, product).
type Path []string

func NewPath(ids ...string) Path {
	return Path(ids)
}

func (p Path) Len() int {
	return len(p)
}

// At returns the id at depth i, or "" when the path is shorter.
func (p Path) At(i int) string {
	if i < 0 || i >= len(p) {
		return ""
	}
	return p[i]
}

func (p Path) Last() string {
	return p.At(len(p) - 1)
}

func (p Path) Parent() Path {
	if len(p) == 0 {
		return nil
	}
	return p[:len(p)-1:len(p)-1]
}

func (p Path) Child(id string) Path {
	out := make(Path, len(p), len(p)+1)
	copy(out, p)
	return append(out, id)
}

func (p Path) String() string {
	return strings.Join(p, "/")
}

func (p Path) key() string {
	return strings.Join(p, "\x00")
}

// Node is one entry of the catalog arena. Fields that do not apply to the
// node's Kind are left zero.
type Node struct {
	Kind             Kind
	Path             Path
	Name             string
	Image            string
	Price            float64
	StartingPrice    float64
	Stock            int
	Description      string
	Hex              string
	HasSubcategories bool
	HasSubProducts   bool
	HasColors        bool
	HasOptions       bool
}

func (n Node) ID() string {
	return n.Path.Last()
}

// Tree is an arena of catalog nodes with a parent-path index. It is built
// from the persisted collections and never mutated afterwards.
type Tree struct {
	nodes    []Node
	byPath   map[string]int
	children map[string][]int
}

func newTree() *Tree {
	return &Tree{
		byPath:   make(map[string]int),
		children: make(map[string][]int),
	}
}

func (t *Tree) add(n Node) {
	idx := len(t.nodes)
	t.nodes = append(t.nodes, n)
	k := n.Path.key()
	if _, dup := t.byPath[k]; !dup {
		t.byPath[k] = idx
	}
	parent := n.Path.Parent().key()
	t.children[parent] = append(t.children[parent], idx)
}

// Node looks a node up by its full path.
func (t *Tree) Node(p Path) (Node, bool) {
	if t == nil || len(p) == 0 {
		return Node{}, false
	}
	idx, ok := t.byPath[p.key()]
	if !ok {
		return Node{}, false
	}
	return t.nodes[idx], true
}

// Children returns the children of p in collection order. A nil path
// returns the categories.
func (t *Tree) Children(p Path) []Node {
	if t == nil {
		return nil
	}
	idxs := t.children[p.key()]
	out := make([]Node, 0, len(idxs))
	for _, idx := range idxs {
		out = append(out, t.nodes[idx])
	}
	return out
}

// ChildrenOfKind filters Children by kind. A product line has either
// color variants or swatches below it, never both.
func (t *Tree) ChildrenOfKind(p Path, kind Kind) []Node {
	var out []Node
	for _, n := range t.Children(p) {
		if n.Kind == kind {
			out = append(out, n)
		}
	}
	return out
}

func (t *Tree) Name(p Path) string {
	n, ok := t.Node(p)
	if !ok {
		return ""
	}
	return n.Name
}

func (t *Tree) Len() int {
	if t == nil {
		return 0
	}
	return len(t.nodes)
}

// Collections groups one value of every persisted kind.
type Collections struct {
	Categories     Categories
	Brands         Brands
	ProductLines   ProductLines
	ColorVariants  ColorVariants
	DirectProducts DirectProducts
	Swatches       Swatches
}

// BuildTree projects the per-kind collections into a single arena.
// Records whose parent scope does not exist are not reachable and are
// skipped.
func BuildTree(c Collections) *Tree {
	t := newTree()

	for _, cat := range c.Categories {
		catPath := NewPath(cat.ID)
		t.add(Node{
			Kind:             KindCategory,
			Path:             catPath,
			Name:             cat.Name,
			Image:            cat.Image,
			HasSubcategories: cat.HasSubcategories,
		})

		if !cat.HasSubcategories {
			for _, p := range c.DirectProducts[cat.ID] {
				t.add(Node{
					Kind:       KindDirectProduct,
					Path:       catPath.Child(p.ID),
					Name:       p.Name,
					Image:      p.Image,
					Price:      p.Price,
					Stock:      p.Stock,
					HasOptions: p.HasOptions,
				})
			}
			continue
		}

		for _, brand := range c.Brands[cat.ID] {
			brandPath := catPath.Child(brand.ID)
			t.add(Node{
				Kind:  KindBrand,
				Path:  brandPath,
				Name:  brand.Name,
				Image: brand.Image,
			})

			for _, line := range c.ProductLines[brand.ID][cat.ID] {
				linePath := brandPath.Child(line.ID)
				t.add(Node{
					Kind:           KindProductLine,
					Path:           linePath,
					Name:           line.Name,
					Image:          line.Image,
					Price:          line.Price(),
					StartingPrice:  line.StartingPrice,
					Description:    line.Description,
					HasSubProducts: line.HasSubProducts,
					HasColors:      line.HasColors,
				})

				if line.HasSubProducts {
					for _, v := range c.ColorVariants[brand.ID][line.ID] {
						t.add(Node{
							Kind:  KindColorVariant,
							Path:  linePath.Child(v.ID),
							Name:  v.Name,
							Image: v.Image,
							Price: v.Price,
						})
					}
					continue
				}

				for _, s := range c.Swatches[line.ID] {
					t.add(Node{
						Kind:  KindSwatch,
						Path:  linePath.Child(s.ID),
						Name:  s.Name,
						Image: s.Image,
						Price: s.Price,
						Stock: s.Stock,
						Hex:   s.Hex,
					})
				}
			}
		}
	}

	return t
}
