package stock

import "fmt"

type BadgeColor string

const (
	BadgeRed    BadgeColor = "red"
	BadgeYellow BadgeColor = "yellow"
	BadgeGreen  BadgeColor = "green"
)

type Badge struct {
	Color BadgeColor `json:"color"`
	Text  string     `json:"text"`
}

func BadgeFor(stock int) Badge {
	return Badge{Color: badgeColor(stock), Text: badgeText(stock)}
}

func badgeColor(stock int) BadgeColor {
	switch {
	case stock == 0:
		return BadgeRed
	case stock > 100:
		return BadgeGreen
	case stock > 50:
		return BadgeYellow
	default:
		return BadgeRed
	}
}

func badgeText(stock int) string {
	switch {
	case stock <= 0:
		return "Out of Stock"
	case stock <= 15:
		return fmt.Sprintf("Only %d left", stock)
	default:
		return fmt.Sprintf("%d in stock", stock)
	}
}

// ClampQuantity bounds a requested quantity to [1, stock]. With nothing
// in stock the result is 0.
func ClampQuantity(requested, stock int) int {
	if requested < 1 {
		requested = 1
	}
	if requested > stock {
		requested = stock
	}
	if requested < 0 {
		return 0
	}
	return requested
}
