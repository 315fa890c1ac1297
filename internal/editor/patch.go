package editor

import (
	"maps"
	"slices"
	"strconv"
	"strings"

	"mbs/inventory/internal/domain"
)

// Patch holds edited fields as entered, keyed by field name. Values are
// coerced to the field's type when applied.
type Patch map[string]string

const (
	FieldName          = "name"
	FieldImage         = "image"
	FieldLogo          = "logo"
	FieldPrice         = "price"
	FieldBasePrice     = "basePrice"
	FieldStartingPrice = "startingPrice"
	FieldStock         = "stock"
	FieldDescription   = "description"
	FieldHex           = "hex"
)

// Fields lists the patch fields each kind accepts.
var Fields = map[domain.Kind][]string{
	domain.KindCategory:      {FieldName, FieldImage},
	domain.KindBrand:         {FieldName, FieldImage, FieldLogo},
	domain.KindProductLine:   {FieldName, FieldImage, FieldPrice, FieldBasePrice, FieldStartingPrice, FieldDescription},
	domain.KindColorVariant:  {FieldName, FieldImage, FieldPrice},
	domain.KindDirectProduct: {FieldName, FieldImage, FieldPrice, FieldStock},
	domain.KindSwatch:        {FieldName, FieldImage, FieldPrice, FieldStock, FieldHex},
}

// applicable keeps only the fields kind accepts.
func (p Patch) applicable(kind domain.Kind) Patch {
	out := make(Patch)
	for _, f := range Fields[kind] {
		if v, ok := p[f]; ok {
			out[f] = v
		}
	}
	return out
}

func (p Patch) setString(field string, dst *string) {
	if v, ok := p[field]; ok {
		*dst = v
	}
}

func (p Patch) setFloat(field string, dst *float64) {
	if v, ok := p[field]; ok {
		*dst = parseFloat(v)
	}
}

func (p Patch) setInt(field string, dst *int) {
	if v, ok := p[field]; ok {
		*dst = parseInt(v)
	}
}

// parseFloat reads a decimal number, 0 when it is not one.
func parseFloat(s string) float64 {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0
	}
	return f
}

// parseInt reads a whole number, 0 when it is not one. Negative values
// are kept.
func parseInt(s string) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0
	}
	return n
}

func sortedKeys(p Patch) []string {
	return slices.Sorted(maps.Keys(p))
}
