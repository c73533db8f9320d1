// Package render turns bar and indicator series into Markdown tables
// for the tool/LLM presentation boundary. Undefined indicator values
// render as "N/A", never as zero.
package render

import (
	"fmt"
	"strings"

	"github.com/liekkasfc/real-time-stock-mcp-service/internal/model"
)

// table builds a Markdown table from a header and rows.
func table(columns []string, rows [][]string) string {
	var b strings.Builder
	b.WriteString("| " + strings.Join(columns, " | ") + " |\n")
	b.WriteString("| " + strings.Join(repeat("---", len(columns)), " | ") + " |")
	for _, row := range rows {
		b.WriteString("\n| " + strings.Join(row, " | ") + " |")
	}
	return b.String()
}

func repeat(s string, n int) []string {
	out := make([]string, n)
	for i := range out {
		out[i] = s
	}
	return out
}

// KlineTable renders a bar series as the kline Markdown table, including
// the per-bar candle status (bullish / bearish / doji).
func KlineTable(code string, series model.BarSeries, freq model.Frequency) string {
	columns := []string{"日期", "K线状态", "开盘", "收盘", "最高", "最低", "涨跌幅", "成交量", "成交额", "振幅", "涨跌额", "换手率"}
	rows := make([][]string, 0, len(series))
	for _, bar := range series {
		var status string
		switch {
		case bar.Close > bar.Open:
			status = "上涨（阳线）"
		case bar.Close < bar.Open:
			status = "下跌（阴线）"
		default:
			status = "平盘（十字星）"
		}
		sign := ""
		if bar.ChangePct > 0 {
			sign = "+"
		}
		rows = append(rows, []string{
			bar.Date,
			status,
			Number(bar.Open),
			Number(bar.Close),
			Number(bar.High),
			Number(bar.Low),
			fmt.Sprintf("%s%.2f%%", sign, bar.ChangePct),
			LargeNumber(float64(bar.Volume)),
			LargeNumber(bar.Amount),
			fmt.Sprintf("%.2f%%", bar.AmplitudePct),
			Number(bar.ChangeAbs),
			fmt.Sprintf("%.2f%%", bar.TurnoverPct),
		})
	}
	note := fmt.Sprintf("\n\n💡 显示 %d 条K线数据，频率: %s", len(series), freq)
	return fmt.Sprintf("## %s K线数据\n\n%s%s", code, table(columns, rows), note)
}

// IndicatorTable renders an indicator point series as a Markdown table.
func IndicatorTable(code string, points []model.IndicatorPoint, freq model.Frequency) string {
	columns := []string{"日期", "MA5", "MA10", "MA20", "MA60", "DIF", "DEA", "MACD柱", "RSI6", "RSI12", "RSI24", "KDJ_K", "KDJ_D", "KDJ_J"}
	rows := make([][]string, 0, len(points))
	for _, p := range points {
		rows = append(rows, []string{
			p.Date,
			Optional(p.MA5), Optional(p.MA10), Optional(p.MA20), Optional(p.MA60),
			Optional(p.MACDDif), Optional(p.MACDDea), Optional(p.MACDHist),
			Optional(p.RSI6), Optional(p.RSI12), Optional(p.RSI24),
			Optional(p.KDJK), Optional(p.KDJD), Optional(p.KDJJ),
		})
	}
	note := fmt.Sprintf("\n\n💡 显示 %d 条技术指标数据，频率: %s", len(points), freq)
	return fmt.Sprintf("## %s 技术指标数据\n\n%s%s", code, table(columns, rows), note)
}
