package domain

// Kind tags a catalog collection and the nodes stored in it.
type Kind string

func (k Kind) String() string {
	return string(k)
}

const (
	KindCategory      Kind = "categories"          // Root categories
	KindBrand         Kind = "brands"              // Brands per hierarchical category
	KindProductLine   Kind = "product-subsections" // Product lines per (brand, category)
	KindColorVariant  Kind = "subsection-products" // Color variants per (brand, product line)
	KindDirectProduct Kind = "direct-products"     // Flat products per category
	KindSwatch        Kind = "product-colors"      // Color table per product line
)

var Kinds = []Kind{
	KindCategory,
	KindBrand,
	KindProductLine,
	KindColorVariant,
	KindDirectProduct,
	KindSwatch,
}

// StockKey is the persisted key of the generated stock records.
const StockKey = "product-stocks"

func (k Kind) GetKindName() string {
	switch k {
	case KindCategory:
		return "Categories"
	case KindBrand:
		return "Brands"
	case KindProductLine:
		return "Product Lines"
	case KindColorVariant:
		return "Color Variants"
	case KindDirectProduct:
		return "Direct Products"
	case KindSwatch:
		return "Colors"
	default:
		return "Unknown"
	}
}

// Depth is the number of path segments that address a node of this kind.
func (k Kind) Depth() int {
	switch k {
	case KindCategory:
		return 1
	case KindBrand, KindDirectProduct:
		return 2
	case KindProductLine:
		return 3
	case KindColorVariant, KindSwatch:
		return 4
	default:
		return 0
	}
}

// ParseKind accepts the persisted key or a short alias.
func ParseKind(s string) (Kind, bool) {
	switch s {
	case "categories", "category":
		return KindCategory, true
	case "brands", "brand":
		return KindBrand, true
	case "product-subsections", "subsection", "product", "product-line":
		return KindProductLine, true
	case "subsection-products", "color-product", "color-variant":
		return KindColorVariant, true
	case "direct-products", "direct-product":
		return KindDirectProduct, true
	case "product-colors", "color", "swatch":
		return KindSwatch, true
	default:
		return "", false
	}
}
