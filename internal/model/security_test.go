package model

import (
	"errors"
	"testing"
)

func mustNormalize(t *testing.T, input string) SecurityID {
	t.Helper()
	id, err := Normalize(input)
	if err != nil {
		t.Fatalf("Normalize(%q): unexpected error %v", input, err)
	}
	return id
}

func TestNormalize_EquivalentForms(t *testing.T) {
	cases := []struct {
		inputs []string
		want   SecurityID
	}{
		{
			inputs: []string{"600519", "600519.SH", "600519.sh", "SH600519", "sh600519", "1.600519"},
			want:   SecurityID{Market: MarketShanghai, Code: "600519"},
		},
		{
			inputs: []string{"000977", "000977.SZ", "000977.sz", "SZ000977", "0.000977"},
			want:   SecurityID{Market: MarketShenzhen, Code: "000977"},
		},
		{
			inputs: []string{"300750", "300750.SZ"},
			want:   SecurityID{Market: MarketShenzhen, Code: "300750"},
		},
	}
	for _, c := range cases {
		for _, input := range c.inputs {
			if got := mustNormalize(t, input); got != c.want {
				t.Errorf("Normalize(%q) = %+v, want %+v", input, got, c.want)
			}
		}
	}
}

func TestNormalize_HongKongPassthrough(t *testing.T) {
	id := mustNormalize(t, "01810")
	if id.Market != MarketHongKong {
		t.Errorf("market = %v, want HK", id.Market)
	}
	if id.String() != "01810" {
		t.Errorf("String() = %q, want %q (no market prefix)", id.String(), "01810")
	}
}

func TestNormalize_Idempotent(t *testing.T) {
	for _, input := range []string{"600519", "000977.SZ", "1.600519", "01810", "SZ300750"} {
		first := mustNormalize(t, input)
		second := mustNormalize(t, first.String())
		if first != second {
			t.Errorf("Normalize(%q) not idempotent: %+v then %+v", input, first, second)
		}
	}
}

func TestNormalize_TrimsWhitespace(t *testing.T) {
	got := mustNormalize(t, "  600519  ")
	want := SecurityID{Market: MarketShanghai, Code: "600519"}
	if got != want {
		t.Errorf("got %+v, want %+v", got, want)
	}
}

func TestNormalize_Invalid(t *testing.T) {
	for _, input := range []string{
		"", "   ", "AAPL", "2.600519", "600519.NYSE", "SH.600519",
		"600 519", "SHABCDEF", "ZZ600519", "60051x",
	} {
		_, err := Normalize(input)
		if err == nil {
			t.Errorf("Normalize(%q): expected error, got none", input)
			continue
		}
		var invalid *InvalidIdentifierError
		if !errors.As(err, &invalid) {
			t.Errorf("Normalize(%q): error %T, want *InvalidIdentifierError", input, err)
		}
	}
}

func TestExchangeSymbol(t *testing.T) {
	cases := []struct {
		id   SecurityID
		want string
	}{
		{SecurityID{Market: MarketShenzhen, Code: "300750"}, "SZ300750"},
		{SecurityID{Market: MarketShanghai, Code: "600519"}, "SH600519"},
		{SecurityID{Market: MarketHongKong, Code: "01810"}, "01810"},
	}
	for _, c := range cases {
		if got := c.id.ExchangeSymbol(); got != c.want {
			t.Errorf("%+v.ExchangeSymbol() = %q, want %q", c.id, got, c.want)
		}
	}
}

func TestSecidString(t *testing.T) {
	cases := []struct {
		id   SecurityID
		want string
	}{
		{SecurityID{Market: MarketShenzhen, Code: "000977"}, "0.000977"},
		{SecurityID{Market: MarketShanghai, Code: "600519"}, "1.600519"},
		{SecurityID{Market: MarketHongKong, Code: "01810"}, "01810"},
	}
	for _, c := range cases {
		if got := c.id.String(); got != c.want {
			t.Errorf("%+v.String() = %q, want %q", c.id, got, c.want)
		}
	}
}
