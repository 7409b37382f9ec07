package services

import (
	"testing"

	"github.com/upgradehq/upgrade-backend/internal/errs"
)

func TestProductFilterDefaults(t *testing.T) {
	f := ProductFilter{}
	if err := f.ValidateAndNormalize(); err != nil {
		t.Fatalf("empty filter should normalize, got %v", err)
	}
	if f.Page != 1 || f.Limit != DefaultPageSize {
		t.Errorf("expected page=1 limit=%d, got page=%d limit=%d", DefaultPageSize, f.Page, f.Limit)
	}
	if f.Sort != "created_at" || f.Order != "desc" {
		t.Errorf("expected created_at/desc defaults, got %s/%s", f.Sort, f.Order)
	}
}

func TestProductFilterClampsLimit(t *testing.T) {
	f := ProductFilter{Limit: 5000}
	if err := f.ValidateAndNormalize(); err != nil {
		t.Fatal(err)
	}
	if f.Limit != MaxPageSize {
		t.Errorf("expected limit clamped to %d, got %d", MaxPageSize, f.Limit)
	}
}

func TestProductFilterRejectsUnknownSort(t *testing.T) {
	f := ProductFilter{Sort: "price; DROP TABLE products"}
	if err := f.ValidateAndNormalize(); !errs.IsValidation(err) {
		t.Errorf("expected validation error for unknown sort key, got %v", err)
	}
}

func TestProductFilterRejectsBadOrder(t *testing.T) {
	f := ProductFilter{Order: "sideways"}
	if err := f.ValidateAndNormalize(); !errs.IsValidation(err) {
		t.Errorf("expected validation error for bad order, got %v", err)
	}
}
