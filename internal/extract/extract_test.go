package extract

import (
	"testing"
	"time"
)

func TestAmount(t *testing.T) {
	cases := []struct {
		name string
		in   string
		out  float64
	}{
		{"keyword with currency", "SUMA PLN 123,45", 123.45},
		{"total keyword", "TOTAL 99.90", 99.90},
		{"garbled total", "T0TAL DUE $45.00", 45},
		{"garbled suma", "SUM4 12,30", 12.30},
		{"amount paid", "AMOUNT PAID 250.00", 250},
		{"garbled payable", "P4Y4BLE 17.50", 17.5},
		{"currency fallback", "some text PLN 42,00 more text", 42},
		{"spaces inside number", "TOTAL 1 234,56", 1234.56},
		{"trailing garbage", "TOTAL 123.45.", 123.45},
		{"rounding", "TOTAL 10.999", 11},
		{"no amount", "just some receipt text", 0},
		{"empty", "", 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Amount(tc.in); got != tc.out {
				t.Fatalf("Amount(%q) = %v, want %v", tc.in, got, tc.out)
			}
		})
	}
}

func TestCompany(t *testing.T) {
	cases := []struct {
		name string
		in   string
		out  string
	}{
		{
			"legal suffix preferred",
			"PARAGON FISKALNY\nsome line\nBiedronka Sp. z o.o.\nTOTAL 12.00",
			"Biedronka Sp. z o.o.",
		},
		{
			"garbled sp z oo normalized",
			"Media Expert Sp. z 0.0\nTOTAL 10",
			"Media Expert Sp. z o.o.",
		},
		{
			"excluded lines skipped",
			"PARAGON FISKALNY\nNIP 123-456-78-90\nDelikatesy Centrum\nTOTAL 5",
			"Delikatesy Centrum",
		},
		{
			"multi word line without suffix",
			"X\nDelikatesy Centrum\nTOTAL 5",
			"Delikatesy Centrum",
		},
		{
			"edge junk stripped",
			"||Orlen S.A.||",
			"Orlen S.A.",
		},
		{
			"first line fallback",
			"Zabka\n123",
			"Zabka",
		},
		{"empty", "", ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Company(tc.in); got != tc.out {
				t.Fatalf("Company(%q) = %q, want %q", tc.in, got, tc.out)
			}
		})
	}
}

func TestDate(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want *time.Time
	}{
		{
			"cue with iso date",
			"Date: 2024-03-15",
			datePtr(2024, 3, 15, 0, 0),
		},
		{
			"cue with datetime",
			"data zakupu: 2024-03-15 14:30",
			datePtr(2024, 3, 15, 14, 30),
		},
		{
			"day first",
			"15/03/2024",
			datePtr(2024, 3, 15, 0, 0),
		},
		{
			"day first with time",
			"15-03-2024 09:05",
			datePtr(2024, 3, 15, 9, 5),
		},
		{
			"cued line wins over earlier uncued",
			"2020-01-01\nInvoice date: 2024-03-15",
			datePtr(2024, 3, 15, 0, 0),
		},
		{
			"invalid month rejected",
			"2024-13-01",
			nil,
		},
		{"no date", "no dates here", nil},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := Date(tc.in)
			if tc.want == nil {
				if got != nil {
					t.Fatalf("Date(%q) = %v, want nil", tc.in, got)
				}
				return
			}
			if got == nil || !got.Equal(*tc.want) {
				t.Fatalf("Date(%q) = %v, want %v", tc.in, got, tc.want)
			}
		})
	}
}

func TestFromText(t *testing.T) {
	text := "Biedronka Sp. z o.o.\nData zakupu: 2024-05-02\nSUMA PLN 87,60"
	fields := FromText(text)

	if fields.Company != "Biedronka Sp. z o.o." {
		t.Errorf("Company = %q", fields.Company)
	}
	if fields.Amount != 87.60 {
		t.Errorf("Amount = %v", fields.Amount)
	}
	if fields.Date == nil || !fields.Date.Equal(*datePtr(2024, 5, 2, 0, 0)) {
		t.Errorf("Date = %v", fields.Date)
	}
}

func datePtr(y int, mo time.Month, d, h, mi int) *time.Time {
	t := time.Date(y, mo, d, h, mi, 0, 0, time.Local)
	return &t
}
