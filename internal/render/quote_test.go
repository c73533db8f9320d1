package render

import (
	"strings"
	"testing"

	"github.com/liekkasfc/real-time-stock-mcp-service/internal/xueqiu"
)

func fp(v float64) *float64 { return &v }

func TestQuoteList(t *testing.T) {
	vol := int64(18000000)
	ts := int64(1767147300000) // 2025-12-31 10:15:00 CST
	res := &xueqiu.QuoteResult{
		Quote: xueqiu.Quote{
			Symbol:       "SZ300750",
			Name:         "宁德时代",
			Current:      fp(231.50),
			Chg:          fp(5.20),
			Percent:      fp(2.30),
			Volume:       &vol,
			Amount:       fp(4150000000),
			TurnoverRate: fp(0.82),
			Timestamp:    &ts,
		},
		Market: xueqiu.MarketStatus{Status: "交易中"},
	}

	out := QuoteList(res)

	for _, want := range []string{
		"**实时股票数据**",
		"- **股票名称**: 宁德时代",
		"- **股票代码**: SZ300750",
		"- **当前价格**: 231.50元",
		"- **涨跌幅**: 2.30%",
		"- **成交量**: 1800.00万",
		"- **成交额**: 41.50亿元",
		"- **换手率**: 0.82%",
		"- **交易状态**: 交易中",
		"- **更新时间**: 2025-12-31 10:15:00",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("QuoteList missing %q:\n%s", want, out)
		}
	}
}

func TestQuoteList_NullsRenderNA(t *testing.T) {
	out := QuoteList(&xueqiu.QuoteResult{
		Quote: xueqiu.Quote{Symbol: "SH600519", Name: "贵州茅台"},
	})

	for _, want := range []string{
		"- **当前价格**: N/A",
		"- **市盈率(TTM)**: N/A",
		"- **更新时间**: N/A",
		"- **涨跌停价**: 涨停 N/A / 跌停 N/A",
		"- **交易状态**: N/A",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("QuoteList missing %q:\n%s", want, out)
		}
	}
}
