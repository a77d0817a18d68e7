package resale

import (
	"encoding/json"
	"slices"
	"testing"

	"github.com/etnz/resale/date"
)

func TestAvailableYears(t *testing.T) {
	txs := []Transaction{
		{PurchaseDate: D("2022-12-30"), SaleDate: D("2024-01-02")},
		{PurchaseDate: D("2023-05-01")},
		{SaleDate: D("2024-08-01")},
		{},
	}
	if got, want := AvailableYears(txs), []int{2024, 2023, 2022}; !slices.Equal(got, want) {
		t.Errorf("AvailableYears() = %v, want %v", got, want)
	}
	if got := AvailableYears(nil); got == nil || len(got) != 0 {
		t.Errorf("AvailableYears(nil) = %#v, want an empty slice", got)
	}
}

func TestResolveScope(t *testing.T) {
	testCases := []struct {
		requested Scope
		available []int
		want      Scope
	}{
		{InYear(2024), []int{2024, 2023}, InYear(2024)},
		{InYear(2023), []int{2024, 2023}, InYear(2023)},
		{InYear(2019), []int{2024, 2023}, InYear(2024)},
		{InYear(2030), []int{2024, 2023}, InYear(2024)},
		{InYear(2019), nil, InYear(2019)},
		{AllTime, []int{2024}, AllTime},
		{AllTime, nil, AllTime},
	}
	for _, tc := range testCases {
		if got := ResolveScope(tc.requested, tc.available); got != tc.want {
			t.Errorf("ResolveScope(%v, %v) = %v, want %v", tc.requested, tc.available, got, tc.want)
		}
	}
}

func TestParseScope(t *testing.T) {
	today := D("2025-06-15")
	testCases := []struct {
		in   string
		want Scope
	}{
		{"", InYear(2025)},
		{"2023", InYear(2023)},
		{" 2023 ", InYear(2023)},
		{"all", AllTime},
		{"ALL", AllTime},
		{"twenty", InYear(2025)},
		{"-4", InYear(2025)},
		{"2023.5", InYear(2025)},
	}
	for _, tc := range testCases {
		if got := ParseScope(tc.in, today); got != tc.want {
			t.Errorf("ParseScope(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestScope(t *testing.T) {
	if InYear(2024).Contains(D("2023-12-31")) || !InYear(2024).Contains(D("2024-01-01")) {
		t.Error("InYear(2024).Contains() is wrong on the year boundary")
	}
	if !AllTime.Contains(D("1999-01-01")) {
		t.Error("AllTime.Contains() = false, want true")
	}
	if AllTime.Contains(date.Date{}) || InYear(0).Contains(date.Date{}) {
		t.Error("Contains() must be false for an absent date")
	}
	for s, want := range map[Scope]string{AllTime: `"all"`, InYear(2024): `2024`} {
		got, err := json.Marshal(s)
		if err != nil || string(got) != want {
			t.Errorf("Marshal(%v) = %s, %v, want %s", s, got, err, want)
		}
	}
}
