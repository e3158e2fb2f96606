// utils/random_test.go
package utils

import (
	"regexp"
	"testing"
	"time"
)

func TestGenerateInvoiceNumber(t *testing.T) {
	now := time.Date(2024, 1, 15, 10, 30, 0, 0, time.UTC)
	pattern := regexp.MustCompile(`^INV-20240115-[1-9][0-9]{3}$`)

	for i := 0; i < 50; i++ {
		got := GenerateInvoiceNumber(now)
		if !pattern.MatchString(got) {
			t.Fatalf("GenerateInvoiceNumber = %q, want match for %s", got, pattern)
		}
	}
}
