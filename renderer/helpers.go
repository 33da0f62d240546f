package renderer

import (
	"fmt"

	"github.com/Rhymond/go-money"
)

// Yen formats an integer yen amount with the currency symbol, e.g. "¥1,000".
func Yen(v int) string {
	return money.New(int64(v), money.JPY).Display()
}

// SignedYen is Yen with an explicit sign for profit and loss columns.
func SignedYen(v int) string {
	if v > 0 {
		return "+" + Yen(v)
	}
	return Yen(v)
}

// Percent formats a whole-number percentage.
func Percent(v int) string {
	return fmt.Sprintf("%d%%", v)
}
