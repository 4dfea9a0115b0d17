package checkout

import (
	"testing"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/utils/tests"

	"digistore/apperr"
	"digistore/models"
)

func TestValidStatus(t *testing.T) {
	for _, s := range []string{models.TxPending, models.TxPaid, models.TxProcessed, models.TxCompleted, models.TxCancelled} {
		if !ValidStatus(s) {
			t.Fatalf("expected %q to be valid", s)
		}
	}
	if ValidStatus("shipped") {
		t.Fatal("expected unknown status to be invalid")
	}
}

func TestCanTransition_ForwardChain(t *testing.T) {
	cases := []struct{ from, to string }{
		{models.TxPending, models.TxPaid},
		{models.TxPending, models.TxProcessed},
		{models.TxPending, models.TxCompleted},
		{models.TxPaid, models.TxProcessed},
		{models.TxPaid, models.TxCompleted},
		{models.TxProcessed, models.TxCompleted},
	}
	for _, c := range cases {
		if err := CanTransition(c.from, c.to); err != nil {
			t.Fatalf("expected %s -> %s to be allowed, got %v", c.from, c.to, err)
		}
	}
}

func TestCanTransition_NoBackwardMoves(t *testing.T) {
	cases := []struct{ from, to string }{
		{models.TxPaid, models.TxPending},
		{models.TxProcessed, models.TxPaid},
		{models.TxCompleted, models.TxProcessed},
		{models.TxCancelled, models.TxPaid},
	}
	for _, c := range cases {
		if err := CanTransition(c.from, c.to); err == nil {
			t.Fatalf("expected %s -> %s to be denied", c.from, c.to)
		}
	}
}

func TestCanTransition_CancelFromAnyNonCompleted(t *testing.T) {
	for _, from := range []string{models.TxPending, models.TxPaid, models.TxProcessed} {
		if err := CanTransition(from, models.TxCancelled); err != nil {
			t.Fatalf("expected cancel from %s to be allowed, got %v", from, err)
		}
	}
}

func TestCanTransition_CancelCompletedDenied(t *testing.T) {
	err := CanTransition(models.TxCompleted, models.TxCancelled)
	if err == nil {
		t.Fatal("expected cancelling a completed transaction to be denied")
	}
	if apperr.StatusOf(err) != 400 {
		t.Fatalf("expected status 400, got %d", apperr.StatusOf(err))
	}
}

func TestSoldIncrementDue(t *testing.T) {
	cases := []struct {
		from, to string
		want     bool
	}{
		{models.TxPending, models.TxCompleted, true},
		{models.TxPaid, models.TxCompleted, true},
		{models.TxProcessed, models.TxCompleted, true},
		{models.TxCompleted, models.TxCompleted, false},
		{models.TxPending, models.TxPaid, false},
		{models.TxPending, models.TxCancelled, false},
	}
	for _, c := range cases {
		if got := soldIncrementDue(c.from, c.to); got != c.want {
			t.Errorf("soldIncrementDue(%s, %s) = %v, want %v", c.from, c.to, got, c.want)
		}
	}
}

func TestStatusWrite_GuardReadsStatusCapturedBeforeUpdate(t *testing.T) {
	// Updates with a map assigns the new values onto the loaded struct, so
	// the completion guard must read the status captured before the write.
	// A guard on trx.Status after Updates would never fire and sold counters
	// would never increment.
	db, err := gorm.Open(tests.DummyDialector{}, &gorm.Config{DryRun: true, SkipDefaultTransaction: true})
	if err != nil {
		t.Fatalf("gorm.Open: %v", err)
	}

	trx := models.Transaction{ID: 1, Status: models.TxPending}
	oldStatus := trx.Status

	if err := db.Model(&trx).Updates(map[string]interface{}{
		"status":      models.TxCompleted,
		"activity_at": time.Now(),
	}).Error; err != nil {
		t.Fatalf("Updates: %v", err)
	}

	if trx.Status != models.TxCompleted {
		t.Fatalf("expected Updates to assign the new status onto the struct, got %q", trx.Status)
	}
	if !soldIncrementDue(oldStatus, models.TxCompleted) {
		t.Fatal("first completion must add to the sold counters")
	}
	if soldIncrementDue(trx.Status, models.TxCompleted) {
		t.Fatal("deciding on the post-write status would re-add sold on every repeated completion")
	}
}

func TestCanTransition_SameStateIsNoOp(t *testing.T) {
	// Repeated completion calls must be accepted but must not re-run the
	// sold-counter side effect; SetStatus guards that on the old status.
	for _, s := range []string{models.TxPending, models.TxCompleted, models.TxCancelled} {
		if err := CanTransition(s, s); err != nil {
			t.Fatalf("expected %s -> %s no-op to be allowed, got %v", s, s, err)
		}
	}
}
