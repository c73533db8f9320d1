package model

import (
	"errors"
	"strconv"
	"testing"
)

func rec(date string, close float64) string {
	c := strconv.FormatFloat(close, 'f', -1, 64)
	return date + "," + c + ",10.00,10.60,9.90,100000,1050000.00,4.76,2.94,0.30,1.20"
}

func TestAssemble_SortsByDate(t *testing.T) {
	series, err := Assemble([]string{
		rec("2024-01-04", 10.4),
		rec("2024-01-02", 10.2),
		rec("2024-01-03", 10.3),
	})
	if err != nil {
		t.Fatalf("Assemble: %v", err)
	}
	want := []string{"2024-01-02", "2024-01-03", "2024-01-04"}
	if len(series) != len(want) {
		t.Fatalf("len = %d, want %d", len(series), len(want))
	}
	for i, d := range want {
		if series[i].Date != d {
			t.Errorf("series[%d].Date = %q, want %q", i, series[i].Date, d)
		}
	}
}

func TestAssemble_DuplicateDateKeepsLast(t *testing.T) {
	series, err := Assemble([]string{
		rec("2024-01-02", 10.1),
		rec("2024-01-03", 10.3),
		rec("2024-01-02", 10.9), // re-sent bar supersedes the first
	})
	if err != nil {
		t.Fatalf("Assemble: %v", err)
	}
	if len(series) != 2 {
		t.Fatalf("len = %d, want 2", len(series))
	}
	if series[0].Date != "2024-01-02" || series[0].Close != 10.9 {
		t.Errorf("series[0] = %+v, want the re-sent 2024-01-02 bar with close 10.9", series[0])
	}
}

func TestAssemble_Empty(t *testing.T) {
	if _, err := Assemble(nil); !errors.Is(err, ErrEmptySeries) {
		t.Errorf("Assemble(nil) error = %v, want ErrEmptySeries", err)
	}
	if _, err := Assemble([]string{}); !errors.Is(err, ErrEmptySeries) {
		t.Errorf("Assemble([]) error = %v, want ErrEmptySeries", err)
	}
}

func TestAssemble_MalformedRejectsBatch(t *testing.T) {
	_, err := Assemble([]string{
		rec("2024-01-02", 10.1),
		"2024-01-03,not,enough,fields",
	})
	var malformed *MalformedRecordError
	if !errors.As(err, &malformed) {
		t.Fatalf("error = %v, want *MalformedRecordError", err)
	}
}

func TestSeriesColumns(t *testing.T) {
	series, err := Assemble([]string{
		rec("2024-01-02", 10.2),
		rec("2024-01-03", 10.3),
	})
	if err != nil {
		t.Fatalf("Assemble: %v", err)
	}
	closes := series.Closes()
	if len(closes) != 2 || closes[0] != 10.2 || closes[1] != 10.3 {
		t.Errorf("Closes() = %v", closes)
	}
	highs := series.Highs()
	if highs[0] != 10.60 {
		t.Errorf("Highs()[0] = %v, want 10.60", highs[0])
	}
	lows := series.Lows()
	if lows[1] != 9.90 {
		t.Errorf("Lows()[1] = %v, want 9.90", lows[1])
	}
}
