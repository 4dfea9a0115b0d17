package utils

import (
	"regexp"
	"testing"
)

var invoicePattern = regexp.MustCompile(`^INV-\d{13,}-\d{3}$`)

func TestGenerateInvoice_Format(t *testing.T) {
	inv := GenerateInvoice()
	if !invoicePattern.MatchString(inv) {
		t.Fatalf("unexpected invoice format: %s", inv)
	}
}

func TestGenerateInvoice_ConcurrentSafe(t *testing.T) {
	done := make(chan string, 50)
	for i := 0; i < 50; i++ {
		go func() { done <- GenerateInvoice() }()
	}
	for i := 0; i < 50; i++ {
		if inv := <-done; !invoicePattern.MatchString(inv) {
			t.Fatalf("unexpected invoice format under concurrency: %s", inv)
		}
	}
}
