package domain

type Category struct {
	ID               string `json:"id"`
	Name             string `json:"name"`
	Image            string `json:"image"`
	HasSubcategories bool   `json:"hasSubcategories"` // true: brands, false: direct products
}

type Brand struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Image string `json:"image"`
	Logo  string `json:"logo,omitempty"`
}

// ProductLine is a brand's product family inside a category. Lines with
// HasSubProducts list their ColorVariants in the subsection-products table;
// other lines are sellable leaves whose colors live in the Swatch table.
type ProductLine struct {
	ID             string  `json:"id"`
	Name           string  `json:"name"`
	Image          string  `json:"image"`
	BasePrice      float64 `json:"basePrice,omitempty"`
	StartingPrice  float64 `json:"startingPrice,omitempty"`
	Description    string  `json:"description,omitempty"`
	HasSubProducts bool    `json:"hasSubProducts,omitempty"`
	HasColors      bool    `json:"hasColors,omitempty"`
}

// Price returns the base price, or the starting price for lines that only
// advertise a "from" price.
func (p ProductLine) Price() float64 {
	if p.BasePrice != 0 {
		return p.BasePrice
	}
	return p.StartingPrice
}

type ColorVariant struct {
	ID    string  `json:"id"`
	Name  string  `json:"name"`
	Image string  `json:"image"`
	Price float64 `json:"price"`
}

type Swatch struct {
	ID    string  `json:"id"`
	Name  string  `json:"name"`
	Hex   string  `json:"hex"`
	Price float64 `json:"price"`
	Stock int     `json:"stock"`
	Image string  `json:"image,omitempty"`
}

type DirectProduct struct {
	ID         string  `json:"id"`
	Name       string  `json:"name"`
	Image      string  `json:"image"`
	Price      float64 `json:"price"`
	Stock      int     `json:"stock"`
	HasOptions bool    `json:"hasOptions"`
}

type BulkPricingTier struct {
	MinQty   int     `json:"minQty" mapstructure:"min_qty"`
	Discount float64 `json:"discount" mapstructure:"discount"` // fraction in [0, 1)
	Label    string  `json:"label" mapstructure:"label"`
}

// StockLocation is a branch that holds its own stock of every direct
// product. One location is the main yard.
type StockLocation struct {
	ID     string `json:"id" mapstructure:"id"`
	Name   string `json:"name" mapstructure:"name"`
	IsMain bool   `json:"isMain" mapstructure:"is_main"`
}

// Persisted collection layouts, one per Kind.
type (
	Categories     []Category
	Brands         map[string][]Brand                    // category -> brands
	ProductLines   map[string]map[string][]ProductLine   // brand -> category -> lines
	ColorVariants  map[string]map[string][]ColorVariant  // brand -> product line -> variants
	DirectProducts map[string][]DirectProduct            // category -> products
	Swatches       map[string][]Swatch                   // product line -> colors
	StockRecords   map[string]int                        // sku -> stock
)

func (c Categories) Find(id string) (Category, bool) {
	for _, cat := range c {
		if cat.ID == id {
			return cat, true
		}
	}
	return Category{}, false
}

func (c Categories) Clone() Categories {
	if c == nil {
		return nil
	}
	return append(Categories(nil), c...)
}

func (b Brands) Clone() Brands {
	return cloneMap(b)
}

func (p ProductLines) Clone() ProductLines {
	if p == nil {
		return nil
	}
	out := make(ProductLines, len(p))
	for brand, byCategory := range p {
		out[brand] = cloneMap(byCategory)
	}
	return out
}

func (c ColorVariants) Clone() ColorVariants {
	if c == nil {
		return nil
	}
	out := make(ColorVariants, len(c))
	for brand, byLine := range c {
		out[brand] = cloneMap(byLine)
	}
	return out
}

func (d DirectProducts) Clone() DirectProducts {
	return cloneMap(d)
}

func (s Swatches) Clone() Swatches {
	return cloneMap(s)
}

func cloneMap[M ~map[string][]V, V any](m M) M {
	if m == nil {
		return nil
	}
	out := make(M, len(m))
	for k, v := range m {
		out[k] = append([]V(nil), v...)
	}
	return out
}
