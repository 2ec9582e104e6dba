package service

import (
	"errors"
	"testing"
	"time"
)

func TestValidateDocument(t *testing.T) {
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	yesterday := now.AddDate(0, 0, -1)
	tomorrow := now.AddDate(0, 0, 1)
	twelve := 12
	zero := 0
	negative := -3

	cases := []struct {
		name           string
		docName        string
		description    string
		amount         float64
		hasWarranty    bool
		warrantyMonths *int
		timestamp      time.Time
		ok             bool
	}{
		{"valid minimal", "TV", "", 100, false, nil, yesterday, true},
		{"valid with warranty", "Laptop", "work machine", 3500, true, &twelve, yesterday, true},
		{"name too short", "T", "", 100, false, nil, yesterday, false},
		{"name too long", "abcdefghijklmnopqrstuvwxyzabcde", "", 100, false, nil, yesterday, false},
		{"name without letters", "12345", "", 100, false, nil, yesterday, false},
		{"description too long", "TV", string(make([]byte, 1025)), 100, false, nil, yesterday, false},
		{"zero amount", "TV", "", 0, false, nil, yesterday, false},
		{"negative amount", "TV", "", -5, false, nil, yesterday, false},
		{"future date", "TV", "", 100, false, nil, tomorrow, false},
		{"warranty without months", "TV", "", 100, true, nil, yesterday, false},
		{"warranty zero months", "TV", "", 100, true, &zero, yesterday, false},
		{"warranty negative months", "TV", "", 100, true, &negative, yesterday, false},
		{"months without warranty", "TV", "", 100, false, &twelve, yesterday, false},
		{"zero months without warranty ok", "TV", "", 100, false, &zero, yesterday, true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := validateDocument(tc.docName, tc.description, tc.amount, tc.hasWarranty, tc.warrantyMonths, tc.timestamp, now)
			if tc.ok && err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !tc.ok {
				if err == nil {
					t.Fatal("expected error")
				}
				if !errors.Is(err, ErrValidation) {
					t.Fatalf("expected ErrValidation, got %v", err)
				}
			}
		})
	}
}

func TestValidateCategoryName(t *testing.T) {
	cases := []struct {
		in string
		ok bool
	}{
		{"Groceries", true},
		{"Home and Garden", true},
		{"Food", true},
		{"Gas", false},        // too short
		{"Gas24", false},      // digits
		{"Caffè", false},      // non-ASCII letter
		{"Tools!", false},     // punctuation
		{"", false},
		{"abcdefghijklmnopqrstuvwxyzabcde", false}, // 31 chars
	}
	for _, tc := range cases {
		err := validateCategoryName(tc.in)
		if tc.ok && err != nil {
			t.Errorf("%q: unexpected error %v", tc.in, err)
		}
		if !tc.ok && err == nil {
			t.Errorf("%q: expected error", tc.in)
		}
	}
}

func TestParseTimestamp(t *testing.T) {
	cases := []struct {
		in string
		ok bool
	}{
		{"2024-03-15T10:30:00Z", true},
		{"2024-03-15", true},
		{"15/03/2024", false},
		{"not a date", false},
		{"", false},
	}
	for _, tc := range cases {
		_, err := parseTimestamp(tc.in)
		if tc.ok && err != nil {
			t.Errorf("%q: unexpected error %v", tc.in, err)
		}
		if !tc.ok && err == nil {
			t.Errorf("%q: expected error", tc.in)
		}
	}
}
