// Command kline is a one-shot query tool: fetch a window of bars for a
// security and print the kline or indicator table as Markdown.
//
//	kline -code 600519 -start 2024-01-01 -end 2024-01-31
//	kline -code 300750.SZ -frequency w -indicators
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/liekkasfc/real-time-stock-mcp-service/internal/eastmoney"
	"github.com/liekkasfc/real-time-stock-mcp-service/internal/kline"
	"github.com/liekkasfc/real-time-stock-mcp-service/internal/logger"
	"github.com/liekkasfc/real-time-stock-mcp-service/internal/metrics"
	"github.com/liekkasfc/real-time-stock-mcp-service/internal/model"
	"github.com/liekkasfc/real-time-stock-mcp-service/internal/render"
)

func main() {
	var (
		code       = flag.String("code", "", "security code (600519, 000001.SZ, 1.600519, 01810)")
		start      = flag.String("start", time.Now().AddDate(0, 0, -30).Format("2006-01-02"), "start date YYYY-MM-DD")
		end        = flag.String("end", time.Now().Format("2006-01-02"), "end date YYYY-MM-DD")
		frequency  = flag.String("frequency", "d", "bar frequency: d, w, m, 5, 15, 30, 60")
		indicators = flag.Bool("indicators", false, "print technical indicators instead of raw bars")
	)
	flag.Parse()

	if *code == "" {
		fmt.Fprintln(os.Stderr, "missing -code")
		flag.Usage()
		os.Exit(2)
	}

	log := logger.Init("kline-cli", slog.LevelWarn)
	svc := kline.New(eastmoney.New(eastmoney.DefaultConfig()), nil, nil, metrics.New(), log)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	freq := model.Frequency(*frequency)
	if *indicators {
		_, points, err := svc.GetTechnicalIndicators(ctx, *code, *start, *end, freq)
		if err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
		fmt.Println(render.IndicatorTable(*code, points, freq))
		return
	}

	_, series, err := svc.GetKline(ctx, *code, *start, *end, freq)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
	fmt.Println(render.KlineTable(*code, series, freq))
}
