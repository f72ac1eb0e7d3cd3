// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package hijri_test

import (
	"errors"
	"testing"

	"cloudeng.io/hijri"
)

var (
	ramadan = hijri.Observance{Name: "Ramadan", Month: 9, Day: 1}
	fitr    = hijri.Observance{Name: "Eid al-Fitr", Month: 10, Day: 1}
	adha    = hijri.Observance{Name: "Eid al-Adha", Month: 12, Day: 10}
)

func occurrenceDates(occ []hijri.Occurrence) []string {
	var dates []string
	for _, o := range occ {
		dates = append(dates, o.Date.String())
	}
	return dates
}

func equalStrings(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestOccurrences(t *testing.T) {
	cal := hijri.UmmAlQura()
	occ, err := cal.Occurrences(pd("2023-01-01"), pd("2024-12-31"), adha, ramadan, fitr)
	if err != nil {
		t.Fatal(err)
	}
	if got, want := occurrenceDates(occ), []string{
		"2023-03-23", "2023-04-21", "2023-06-28",
		"2024-03-11", "2024-04-10", "2024-06-16",
	}; !equalStrings(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := occ[0].Name, "Ramadan"; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := occ[5].Year, 1445; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := occ[0].String(), "2023-03-23: Ramadan 1444-09-01"; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := adha.String(), "Eid al-Adha (M12-10)"; got != want {
		t.Errorf("got %v, want %v", got, want)
	}

	// The bounds are inclusive.
	occ, err = cal.Occurrences(pd("2023-03-23"), pd("2023-04-21"), ramadan, fitr)
	if err != nil {
		t.Fatal(err)
	}
	if got, want := len(occ), 2; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestOccurrencesOrder(t *testing.T) {
	cal := hijri.UmmAlQura()
	first := hijri.Observance{Name: "first", Month: 9, Day: 1}
	second := hijri.Observance{Name: "second", Month: 9, Day: 1}
	occ, err := cal.Occurrences(pd("2023-01-01"), pd("2023-12-31"), second, first)
	if err != nil {
		t.Fatal(err)
	}
	if got, want := len(occ), 2; got != want {
		t.Fatalf("got %v, want %v", got, want)
	}
	if got, want := occ[0].Name, "second"; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := occ[1].Name, "first"; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestOccurrencesConstrained(t *testing.T) {
	cal := hijri.UmmAlQura()
	last := hijri.Observance{Name: "last", Month: 9, Day: 30}
	occ, err := cal.Occurrences(pd("2023-01-01"), pd("2023-12-31"), last)
	if err != nil {
		t.Fatal(err)
	}
	if got, want := occurrenceDates(occ), []string{"2023-04-20"}; !equalStrings(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestOccurrencesEdgeCases(t *testing.T) {
	cal := hijri.UmmAlQura()
	occ, err := cal.Occurrences(pd("2024-01-01"), pd("2023-01-01"), ramadan)
	if err != nil || len(occ) != 0 {
		t.Errorf("unexpected result: %v: %v", occ, err)
	}
	occ, err = cal.Occurrences(pd("2023-01-01"), pd("2024-01-01"))
	if err != nil || len(occ) != 0 {
		t.Errorf("unexpected result: %v: %v", occ, err)
	}
	_, err = cal.Occurrences(pd("2030-01-01"), pd("2030-12-31"), ramadan)
	if !errors.Is(err, hijri.ErrOutOfRange) {
		t.Errorf("unexpected or missing error: %v", err)
	}

	// The astronomical engine is not limited to a range of years, Ramadan
	// starts twice in 2030.
	occ, err = hijri.FCNA().Occurrences(pd("2030-01-01"), pd("2030-12-31"), ramadan)
	if err != nil {
		t.Fatal(err)
	}
	if got, want := len(occ), 2; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
}
