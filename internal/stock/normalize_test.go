package stock_test

import (
	"testing"

	"gomarketsync_api/internal/stock"
)

func TestNormalizeQuantity(t *testing.T) {
	for _, tc := range []struct {
		in     string
		want   int
		parsed bool
	}{
		{">10", 100, true},
		{"1", 0, true},
		{"0", 0, true},
		{"2", 2, true},
		{"10", 10, true},
		{"", 0, false},
		{"нет", 0, false},
		{"-3", 0, false},
	} {
		got, parsed := stock.NormalizeQuantity(tc.in, 100)
		if got != tc.want || parsed != tc.parsed {
			t.Fatalf("NormalizeQuantity(%q) = (%d, %v), want (%d, %v)", tc.in, got, parsed, tc.want, tc.parsed)
		}
	}
}

func TestNormalizeQuantity_PlentyConfigurable(t *testing.T) {
	if got, _ := stock.NormalizeQuantity(">10", 50); got != 50 {
		t.Fatalf("want plenty 50, got %d", got)
	}
}
