package stock

import "mbs/inventory/internal/domain"

func DefaultLocations() []domain.StockLocation {
	return []domain.StockLocation{
		{ID: "youngstown", Name: "Youngstown, OH", IsMain: true},
		{ID: "akron", Name: "Akron, OH"},
		{ID: "columbus", Name: "Columbus, OH"},
		{ID: "cleveland", Name: "Cleveland, OH"},
		{ID: "pittsburgh", Name: "Pittsburgh, PA"},
	}
}

// LocationSKU is the stock record key of a product at one location.
func LocationSKU(productID, locationID string) string {
	return productID + "-" + locationID
}
