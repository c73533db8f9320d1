package render

import (
	"strings"
	"testing"

	"github.com/liekkasfc/real-time-stock-mcp-service/internal/model"
)

func TestNumber(t *testing.T) {
	cases := []struct {
		in   float64
		want string
	}{
		{0, "0.00"},
		{10.5, "10.50"},
		{1234.5, "1,234.50"},
		{1234567.891, "1,234,567.89"},
		{-9876.5, "-9,876.50"},
	}
	for _, c := range cases {
		if got := Number(c.in); got != c.want {
			t.Errorf("Number(%v) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestOptional(t *testing.T) {
	if got := Optional(nil); got != "N/A" {
		t.Errorf("Optional(nil) = %q, want N/A", got)
	}
	v := 12.5
	if got := Optional(&v); got != "12.50" {
		t.Errorf("Optional(12.5) = %q, want 12.50", got)
	}
	zero := 0.0
	if got := Optional(&zero); got != "0.00" {
		t.Errorf("Optional(0) = %q, want 0.00 (a zero reading is not N/A)", got)
	}
}

func TestLargeNumber(t *testing.T) {
	cases := []struct {
		in   float64
		want string
	}{
		{500, "500"},
		{12345, "1.23万"},
		{100000, "10.00万"},
		{250000000, "2.50亿"},
		{-150000000, "-1.50亿"},
	}
	for _, c := range cases {
		if got := LargeNumber(c.in); got != c.want {
			t.Errorf("LargeNumber(%v) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestKlineTable(t *testing.T) {
	series := model.BarSeries{
		{Date: "2024-01-02", Open: 10.20, Close: 10.50, High: 10.60, Low: 10.10,
			Volume: 100000, Amount: 1050000, AmplitudePct: 4.76, ChangePct: 2.94,
			ChangeAbs: 0.30, TurnoverPct: 1.20},
		{Date: "2024-01-03", Open: 10.50, Close: 10.30, High: 10.55, Low: 10.25,
			Volume: 80000, Amount: 830000, AmplitudePct: 2.86, ChangePct: -1.90,
			ChangeAbs: -0.20, TurnoverPct: 0.96},
		{Date: "2024-01-04", Open: 10.30, Close: 10.30, High: 10.40, Low: 10.20,
			Volume: 60000, Amount: 620000, AmplitudePct: 1.94, ChangePct: 0.00,
			ChangeAbs: 0.00, TurnoverPct: 0.72},
	}

	out := KlineTable("600519", series, model.FreqDaily)

	for _, want := range []string{
		"## 600519 K线数据",
		"| 日期 | K线状态 |",
		"上涨（阳线）",
		"下跌（阴线）",
		"平盘（十字星）",
		"+2.94%",  // positive change carries an explicit sign
		"-1.90%",
		"10.00万",  // volume in 万
		"105.00万", // amount in 万
		"显示 3 条K线数据",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("KlineTable output missing %q\n%s", want, out)
		}
	}
}

func TestIndicatorTable(t *testing.T) {
	ma := 10.52
	points := []model.IndicatorPoint{
		{Date: "2024-01-02"},
		{Date: "2024-01-03", MA5: &ma},
	}

	out := IndicatorTable("000977", points, model.FreqWeekly)

	if !strings.Contains(out, "## 000977 技术指标数据") {
		t.Errorf("missing title:\n%s", out)
	}
	lines := strings.Split(out, "\n")
	var rows []string
	for _, line := range lines {
		if strings.HasPrefix(line, "| 2024-") {
			rows = append(rows, line)
		}
	}
	if len(rows) != 2 {
		t.Fatalf("got %d data rows, want 2:\n%s", len(rows), out)
	}
	// Warm-up row renders every column as N/A; the defined MA5 shows up
	// in the second row.
	if strings.Count(rows[0], "N/A") != 13 {
		t.Errorf("warm-up row should have 13 N/A cells: %q", rows[0])
	}
	if !strings.Contains(rows[1], "10.52") {
		t.Errorf("defined MA5 missing from row: %q", rows[1])
	}
	if !strings.Contains(out, "频率: w") {
		t.Errorf("frequency note missing:\n%s", out)
	}
}
