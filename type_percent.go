package pocket

import "fmt"

// Percent is a rate expressed in percent: 7 means 7%.
type Percent float64

// Ratio returns the rate as a ratio: 7% is 0.07.
func (p Percent) Ratio() float64 { return float64(p) / 100 }

func (p Percent) String() string {
	return fmt.Sprintf("%.2f%%", float64(p))
}
