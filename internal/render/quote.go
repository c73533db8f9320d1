package render

import (
	"fmt"
	"strings"
	"time"

	"github.com/liekkasfc/real-time-stock-mcp-service/internal/markethours"
	"github.com/liekkasfc/real-time-stock-mcp-service/internal/xueqiu"
)

// QuoteList renders a spot quote as a Markdown key/value list. Null
// upstream fields render as "N/A".
func QuoteList(res *xueqiu.QuoteResult) string {
	q := res.Quote

	rows := []struct {
		label string
		value string
	}{
		{"股票名称", orNA(q.Name)},
		{"股票代码", orNA(q.Symbol)},
		{"当前价格", yuan(q.Current)},
		{"涨跌额", yuan(q.Chg)},
		{"涨跌幅", pct(q.Percent)},
		{"开盘价", yuan(q.Open)},
		{"最高价", yuan(q.High)},
		{"最低价", yuan(q.Low)},
		{"昨收价", yuan(q.LastClose)},
		{"均价", yuan(q.AvgPrice)},
		{"成交量", optionalInt(q.Volume)},
		{"成交额", largeYuan(q.Amount)},
		{"换手率", pct(q.TurnoverRate)},
		{"量比", Optional(q.VolumeRatio)},
		{"振幅", pct(q.Amplitude)},
		{"市值", largeYuan(q.MarketCapital)},
		{"流通市值", largeYuan(q.FloatMarketCapital)},
		{"市盈率(TTM)", Optional(q.PETTM)},
		{"市净率", Optional(q.PB)},
		{"每股收益", yuan(q.EPS)},
		{"每股净资产", Optional(q.NAVPS)},
		{"股息率", pct(q.DividendYield)},
		{"涨跌停价", limitBand(q.LimitUp, q.LimitDown)},
		{"52周最高", yuan(q.High52W)},
		{"52周最低", yuan(q.Low52W)},
		{"年内涨跌幅", pct(q.CurrentYearPercent)},
		{"交易状态", orNA(res.Market.Status)},
		{"更新时间", quoteTime(q.Timestamp)},
	}

	var b strings.Builder
	b.WriteString("**实时股票数据**\n")
	for _, row := range rows {
		b.WriteString(fmt.Sprintf("\n- **%s**: %s", row.label, row.value))
	}
	return b.String()
}

func orNA(s string) string {
	if s == "" {
		return "N/A"
	}
	return s
}

func yuan(v *float64) string {
	if v == nil {
		return "N/A"
	}
	return Number(*v) + "元"
}

func pct(v *float64) string {
	if v == nil {
		return "N/A"
	}
	return fmt.Sprintf("%.2f%%", *v)
}

func largeYuan(v *float64) string {
	if v == nil {
		return "N/A"
	}
	return LargeNumber(*v) + "元"
}

func optionalInt(v *int64) string {
	if v == nil {
		return "N/A"
	}
	return LargeNumber(float64(*v))
}

func limitBand(up, down *float64) string {
	return fmt.Sprintf("涨停 %s / 跌停 %s", yuan(up), yuan(down))
}

// quoteTime formats an epoch-millisecond timestamp in exchange time.
func quoteTime(ms *int64) string {
	if ms == nil {
		return "N/A"
	}
	return time.UnixMilli(*ms).In(markethours.CST).Format("2006-01-02 15:04:05")
}
