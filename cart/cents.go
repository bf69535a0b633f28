package cart

import "fmt"

// Cents is a USD amount in integer cents. Totals stay exact because
// addition never leaves the integers.
type Cents int64

// String renders the amount as a plain decimal, e.g. Cents(99) -> "0.99".
func (c Cents) String() string {
	sign := ""
	if c < 0 {
		sign = "-"
		c = -c
	}
	return fmt.Sprintf("%s%d.%02d", sign, c/100, c%100)
}
