package core_test

import (
	"testing"

	"textile-ledger/internal/core"

	"github.com/shopspring/decimal"
)

func strPtr(s string) *string { return &s }

func TestTaxInclusiveAmount(t *testing.T) {
	tests := []struct {
		name             string
		base             int64
		sgst, cgst, igst *string
		want             string
	}{
		{
			name: "SGST and CGST at 9 percent",
			base: 1000,
			sgst: strPtr("9%"), cgst: strPtr("9%"),
			want: "1180",
		},
		{
			name: "Not Applicable contributes nothing",
			base: 1000,
			sgst: strPtr("Not Applicable"),
			want: "1000",
		},
		{
			name: "malformed rate is treated as zero",
			base: 1000,
			sgst: strPtr("bad%%"),
			want: "1000",
		},
		{
			name: "all rates absent",
			base: 1000,
			want: "1000",
		},
		{
			name: "IGST only",
			base: 2000,
			igst: strPtr("18%"),
			want: "2360",
		},
		{
			name: "fractional rate stays exact",
			base: 1000,
			sgst: strPtr("2.5%"), cgst: strPtr("2.5%"),
			want: "1050",
		},
		{
			name: "rate with surrounding whitespace",
			base: 1000,
			sgst: strPtr(" 9 %"),
			want: "1090",
		},
		{
			name: "empty rate string",
			base: 500,
			cgst: strPtr(""),
			want: "500",
		},
		{
			name: "zero base",
			base: 0,
			sgst: strPtr("9%"),
			want: "0",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := core.TaxInclusiveAmount(decimal.NewFromInt(tt.base), tt.sgst, tt.cgst, tt.igst)
			if !got.Equal(decimal.RequireFromString(tt.want)) {
				t.Errorf("TaxInclusiveAmount(%d) = %s, want %s", tt.base, got, tt.want)
			}
		})
	}
}
