package service

import (
	"testing"

	"go.uber.org/zap/zaptest"

	"bookshop-app/internal/apperr"
	"bookshop-app/internal/models"
	"bookshop-app/internal/storage/memstore"
)

func TestSettingsCreatedFromDefaults(t *testing.T) {
	svc := NewSettingsService(memstore.New(), models.Setting{
		StoreName:         "Faith Community Baptist School Bookshop",
		Currency:          "GHS",
		LowStockThreshold: 10,
	}, zaptest.NewLogger(t))

	setting, err := svc.Get()
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if setting.StoreName != "Faith Community Baptist School Bookshop" {
		t.Errorf("store name = %q", setting.StoreName)
	}
	if setting.Currency != "GHS" || setting.LowStockThreshold != 10 {
		t.Errorf("defaults not applied: %+v", setting)
	}
}

func TestSettingsUpdate(t *testing.T) {
	svc := NewSettingsService(memstore.New(), models.Setting{}, zaptest.NewLogger(t))

	updated, err := svc.Update(UpdateSettingsInput{
		StoreName:         "Main Campus Bookshop",
		Currency:          "USD",
		LowStockThreshold: 5,
	})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if updated.Currency != "USD" || updated.LowStockThreshold != 5 {
		t.Errorf("update not applied: %+v", updated)
	}

	got, err := svc.Get()
	if err != nil {
		t.Fatalf("Get after update: %v", err)
	}
	if got.StoreName != "Main Campus Bookshop" {
		t.Errorf("update not persisted: %+v", got)
	}
}

func TestSettingsUpdateValidation(t *testing.T) {
	svc := NewSettingsService(memstore.New(), models.Setting{}, zaptest.NewLogger(t))

	cases := []struct {
		name string
		in   UpdateSettingsInput
	}{
		{"missing store name", UpdateSettingsInput{Currency: "GHS", LowStockThreshold: 10}},
		{"unknown currency", UpdateSettingsInput{StoreName: "Shop", Currency: "XYZ", LowStockThreshold: 10}},
		{"negative threshold", UpdateSettingsInput{StoreName: "Shop", Currency: "GHS", LowStockThreshold: -1}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := svc.Update(tc.in); apperr.KindOf(err) != apperr.KindValidation {
				t.Errorf("expected validation error, got %v", err)
			}
		})
	}
}
