package money

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestFormat(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"0", "$0.00"},
		{"4.5", "$4.50"},
		{"1234.5", "$1,234.50"},
		{"1000000", "$1,000,000.00"},
		{"-50", "-$50.00"},
		{"-1234.56", "-$1,234.56"},
	}
	for _, tc := range cases {
		d, err := decimal.NewFromString(tc.in)
		if err != nil {
			t.Fatalf("parse %q: %v", tc.in, err)
		}
		if got := Format(d); got != tc.want {
			t.Errorf("Format(%s) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestPlain(t *testing.T) {
	d := decimal.RequireFromString("-50")
	if got := Plain(d); got != "-50.00" {
		t.Errorf("Plain(-50) = %q, want -50.00", got)
	}
}
