package resale

import (
	"encoding/json"
	"testing"

	"github.com/PaesslerAG/jsonpath"
	"github.com/etnz/resale/date"
	"github.com/shopspring/decimal"
)

// P is a helper for test to create an optional price from a const.
func P(v string) decimal.NullDecimal {
	return decimal.NewNullDecimal(decimal.RequireFromString(v))
}

// D is a helper for test to parse a date.
func D(s string) date.Date { return date.MustParse(s) }

// flag returns a pointer to b, for the vinted and ebay tags.
func flag(b bool) *bool { return &b }

// dec is a helper for test to create a decimal from a const.
func dec(v string) decimal.Decimal { return decimal.RequireFromString(v) }

// payload marshals v and decodes it back as generic JSON, ready for jsonpath.
func payload(t *testing.T, v any) any {
	t.Helper()
	b, err := json.Marshal(v)
	if err != nil {
		t.Fatalf("Marshal() unexpected error: %v", err)
	}
	var res any
	if err := json.Unmarshal(b, &res); err != nil {
		t.Fatalf("Unmarshal() unexpected error: %v", err)
	}
	return res
}

// get evaluates a jsonpath expression, failing the test on error.
func get(t *testing.T, path string, doc any) any {
	t.Helper()
	v, err := jsonpath.Get(path, doc)
	if err != nil {
		t.Fatalf("jsonpath.Get(%q) unexpected error: %v", path, err)
	}
	return v
}

// expectPaths asserts the values found at jsonpath expressions.
func expectPaths(t *testing.T, doc any, want map[string]any) {
	t.Helper()
	for path, w := range want {
		if got := get(t, path, doc); got != w {
			t.Errorf("%s = %v (%T), want %v (%T)", path, got, got, w, w)
		}
	}
}
