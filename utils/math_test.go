package utils

import "testing"

func TestRoundMoney(t *testing.T) {
	cases := []struct {
		in   float64
		want float64
	}{
		{180, 180},
		{0.1 + 0.2, 0.3},
		{7.1 * 3, 21.3},
		{99.999, 100},
		{-5.004, -5},
	}
	for _, c := range cases {
		if got := RoundMoney(c.in); got != c.want {
			t.Errorf("RoundMoney(%v) = %v, want %v", c.in, got, c.want)
		}
	}
}
