package ledger

import "testing"

func TestMoneyString(t *testing.T) {
	testCases := []struct {
		in   Money
		want string
	}{
		{USD(0), "$0.00"},
		{USD(1), "$1.00"},
		{USD(100), "$100.00"},
		{USD(1234.56), "$1,234.56"},
		{USD(40).Neg(), "-$40.00"},
	}
	for _, tc := range testCases {
		if got := tc.in.String(); got != tc.want {
			t.Errorf("String() = %q, want %q", got, tc.want)
		}
	}
}

func TestMoneySignedString(t *testing.T) {
	if got := USD(100).SignedString(); got != "+$100.00" {
		t.Errorf("positive SignedString() = %q, want \"+$100.00\"", got)
	}
	if got := USD(40).Neg().SignedString(); got != "-$40.00" {
		t.Errorf("negative SignedString() = %q, want \"-$40.00\"", got)
	}
}

func TestParseMoney(t *testing.T) {
	m, err := ParseMoney("100.00", "USD")
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if !m.Equal(USD(100)) {
		t.Errorf("parsed %s, want $100.00", m)
	}

	if _, err := ParseMoney("a lot", "USD"); err == nil {
		t.Error("parsing a non-numeric amount did not fail")
	}
}

func TestMoneyHasSubunits(t *testing.T) {
	testCases := []struct {
		in   Money
		want bool
	}{
		{USD(10), false},
		{USD(0.01), false},
		{USD(0.005), true},
		{USD(1.999), true},
	}
	for _, tc := range testCases {
		if got := tc.in.HasSubunits(); got != tc.want {
			t.Errorf("HasSubunits(%s) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestMoneyArithmetic(t *testing.T) {
	// Decimal arithmetic must be exact: 0.1 + 0.2 is exactly 0.3.
	sum := USD(0.1).Add(USD(0.2))
	if !sum.Equal(USD(0.3)) {
		t.Errorf("0.1 + 0.2 = %s, want $0.30 exactly", sum)
	}
	if got := USD(1).Sub(USD(0.42)); !got.Equal(USD(0.58)) {
		t.Errorf("1 - 0.42 = %s, want $0.58", got)
	}
}
