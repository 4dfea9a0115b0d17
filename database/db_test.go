package database

import "testing"

func TestConnectRetries_FlooredAtOne(t *testing.T) {
	cases := []struct {
		value string
		want  int
	}{
		{"", 5},
		{"3", 3},
		{"0", 1},
		{"-2", 1},
		{"abc", 1},
	}
	for _, c := range cases {
		t.Setenv("DB_CONNECT_RETRIES", c.value)
		if got := connectRetries(); got != c.want {
			t.Errorf("DB_CONNECT_RETRIES=%q: got %d, want %d", c.value, got, c.want)
		}
	}
}
