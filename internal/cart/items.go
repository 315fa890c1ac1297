package cart

import "mbs/inventory/internal/domain"

// lineItemID suffixes base with the selected color option. No option is
// ever preselected, so every line carries "default".
func lineItemID(base string) string {
	return base + "-default"
}

// ColorOptionItem is a color variant of a product line with color
// options, e.g. Landmark in Weathered Wood.
func ColorOptionItem(line, variant domain.Node, unitPrice float64) Item {
	return Item{
		ID:    lineItemID(line.ID() + "-" + variant.ID()),
		Name:  line.Name + " " + variant.Name,
		Price: unitPrice,
		Image: variant.Image,
	}
}

// SwatchItem is a product bought in one of its listed colors. Swatches
// without their own image use the product's.
func SwatchItem(product, swatch domain.Node, unitPrice float64) Item {
	image := swatch.Image
	if image == "" {
		image = product.Image
	}
	return Item{
		ID:    lineItemID(product.ID() + "-" + swatch.ID()),
		Name:  product.Name + " - " + swatch.Name,
		Price: unitPrice,
		Image: image,
	}
}

// ProductLineItem is a product line sold as is, without color choices.
func ProductLineItem(line domain.Node, unitPrice float64) Item {
	return Item{
		ID:    lineItemID(line.ID()),
		Name:  line.Name,
		Price: unitPrice,
		Image: line.Image,
	}
}

func DirectItem(product domain.Node, unitPrice float64) Item {
	return Item{
		ID:    lineItemID(product.ID()),
		Name:  product.Name,
		Price: unitPrice,
		Image: product.Image,
	}
}
