package types

import (
	"fmt"
	"strconv"
)

// OfferingRecord is one row of the GMP table mapped to its named columns.
type OfferingRecord struct {
	Name            string
	PremiumText     string
	ClosingDateText string
}

type Alert struct {
	Name string
	Gain float64
}

// Message renders the alert the way it is delivered, e.g. "Acme IPO | Gain: 20%".
func (a Alert) Message() string {
	return fmt.Sprintf("%s | Gain: %s%%", a.Name, strconv.FormatFloat(a.Gain, 'f', -1, 64))
}
