package checkout

import (
	"strings"
	"testing"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/utils/tests"

	"digistore/models"
)

func TestEffectiveUnitPrice_PercentDiscount(t *testing.T) {
	got := EffectiveUnitPrice(100, 10, models.DiscountPercent)
	if got != 90 {
		t.Fatalf("expected 90, got %v", got)
	}
}

func TestEffectiveUnitPrice_NominalDiscount(t *testing.T) {
	got := EffectiveUnitPrice(100, 25, models.DiscountNominal)
	if got != 75 {
		t.Fatalf("expected 75, got %v", got)
	}
}

func TestEffectiveUnitPrice_NoDiscount(t *testing.T) {
	got := EffectiveUnitPrice(49.5, 0, models.DiscountPercent)
	if got != 49.5 {
		t.Fatalf("expected unchanged price, got %v", got)
	}
}

func TestEffectiveUnitPrice_NominalLargerThanPrice(t *testing.T) {
	// Historical behavior: no clamp at zero.
	got := EffectiveUnitPrice(10, 15, models.DiscountNominal)
	if got != -5 {
		t.Fatalf("expected -5, got %v", got)
	}
}

func dryRunDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(tests.DummyDialector{}, &gorm.Config{DryRun: true, SkipDefaultTransaction: true})
	if err != nil {
		t.Fatalf("gorm.Open: %v", err)
	}
	return db
}

func TestCheckoutSetQuery_CarriesRowLock(t *testing.T) {
	// Checkout reads the checked lines through a FOR UPDATE clause; the
	// query builder must not drop it, or two concurrent checkouts could
	// both convert the same cart rows.
	db := dryRunDB(t)

	var rows []checkoutRow
	res := checkoutSetQuery(db.Clauses(clause.Locking{Strength: "UPDATE"}), 7).Scan(&rows)
	if res.Error != nil {
		t.Fatalf("scan: %v", res.Error)
	}

	sql := res.Statement.SQL.String()
	if !strings.Contains(sql, "FOR UPDATE") {
		t.Fatalf("expected locked cart select, got %q", sql)
	}
	if !strings.Contains(sql, "carts") {
		t.Fatalf("expected select over carts, got %q", sql)
	}
}

func TestLoadCheckoutSet_EmptyIsNotAnError(t *testing.T) {
	db := dryRunDB(t)

	lines, err := LoadCheckoutSet(db, 7)
	if err != nil {
		t.Fatalf("LoadCheckoutSet: %v", err)
	}
	if len(lines) != 0 {
		t.Fatalf("expected no lines, got %d", len(lines))
	}
}

func TestLineTotals_DiscountedQuantity(t *testing.T) {
	// One line: price 100, 10 percent discount, quantity 2 -> total 180.
	unit := EffectiveUnitPrice(100, 10, models.DiscountPercent)
	total := unit * 2
	if total != 180 {
		t.Fatalf("expected total 180, got %v", total)
	}
}
