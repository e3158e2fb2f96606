// utils/random.go
package utils

import (
	"fmt"
	"math/rand"
	"time"
)

// GenerateInvoiceNumber produces INV-<YYYYMMDD>-<4 digit random>. Uniqueness
// is probabilistic: two invoices issued the same day can collide under high
// volume. The unique index on the column turns a collision into a failed
// insert rather than a duplicate number.
func GenerateInvoiceNumber(now time.Time) string {
	return fmt.Sprintf("INV-%s-%04d", now.Format("20060102"), 1000+rand.Intn(9000))
}
