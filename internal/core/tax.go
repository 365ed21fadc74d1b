package core

import (
	"strings"

	"github.com/shopspring/decimal"
)

// rateNotApplicable is the literal stored when a GST component does not apply.
const rateNotApplicable = "Not Applicable"

var oneHundred = decimal.NewFromInt(100)

// taxComponent returns the tax contributed by a single GST rate string
// ("9%", "Not Applicable", nil) applied to base. Challan rates are typed
// in by hand and partially optional, so anything unparseable contributes
// zero rather than failing the whole statement.
func taxComponent(rate *string, base decimal.Decimal) decimal.Decimal {
	if rate == nil {
		return decimal.Zero
	}
	s := strings.TrimSpace(*rate)
	if s == "" || s == rateNotApplicable {
		return decimal.Zero
	}
	pct, err := decimal.NewFromString(strings.TrimSpace(strings.TrimSuffix(s, "%")))
	if err != nil {
		return decimal.Zero
	}
	return base.Mul(pct).Div(oneHundred)
}

// TaxInclusiveAmount returns base plus the SGST, CGST, and IGST amounts
// computed independently on base. Each rate is optional. The result is
// exact; rounding happens only at the presentation boundary.
func TaxInclusiveAmount(base decimal.Decimal, sgst, cgst, igst *string) decimal.Decimal {
	return base.
		Add(taxComponent(sgst, base)).
		Add(taxComponent(cgst, base)).
		Add(taxComponent(igst, base))
}
