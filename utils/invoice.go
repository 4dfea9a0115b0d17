package utils

import (
	"fmt"
	"math/rand"
	"sync"
	"time"
)

var invMu sync.Mutex
var invRand *rand.Rand

func init() {
	invRand = rand.New(rand.NewSource(time.Now().UnixNano()))
}

// GenerateInvoice returns an invoice identifier of the form
// INV-<unix millis>-<3 random digits>. Uniqueness is enforced by the
// transactions.invoice unique index; callers retry on a duplicate key.
func GenerateInvoice() string {
	invMu.Lock()
	defer invMu.Unlock()

	millis := time.Now().UnixMilli()
	randPart := invRand.Intn(1000)

	return fmt.Sprintf("INV-%d-%03d", millis, randPart)
}
