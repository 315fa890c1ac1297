package stock

import "unicode/utf16"

const (
	minGenerated   = 50
	generatedRange = 200
)

// Hash is the 32-bit rolling string hash h = h*31 + c over UTF-16 code
// units, wrapping on overflow.
func Hash(id string) int32 {
	var h int32
	for _, c := range utf16.Encode([]rune(id)) {
		h = h*31 + int32(c)
	}
	return h
}

// Generate derives the initial stock for a SKU. The result is in
// [50, 250) and depends only on the id.
func Generate(id string) int {
	h := int64(Hash(id))
	if h < 0 {
		h = -h
	}
	return int(h%generatedRange) + minGenerated
}
