package pairingbench

import (
	"fmt"
	"io"
	"math"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/montanaflynn/stats"
	"github.com/olekukonko/tablewriter"
)

// Summary 是一组样本的统计量，单位为纳秒。
type Summary struct {
	Curve  string
	Op     string
	N      int
	Mean   float64
	Median float64
	P95    float64
	P99    float64
	StdDev float64
	Rate   float64
}

// Summarize 计算每个结果的均值、中位数、分位数和标准差，Rate 是每秒完成的操作数。
func Summarize(results []Result) ([]Summary, error) {
	out := make([]Summary, 0, len(results))
	for _, res := range results {
		data := make(stats.Float64Data, len(res.Samples))
		for i, d := range res.Samples {
			data[i] = float64(d.Nanoseconds())
		}
		s := Summary{Curve: res.Curve, Op: res.Op, N: len(data)}
		var err error
		if s.Mean, err = data.Mean(); err != nil {
			return nil, err
		}
		if s.Median, err = data.Median(); err != nil {
			return nil, err
		}
		if s.P95, err = data.Percentile(95); err != nil {
			return nil, err
		}
		if s.P99, err = data.Percentile(99); err != nil {
			return nil, err
		}
		if s.StdDev, err = data.StandardDeviation(); err != nil {
			return nil, err
		}
		if res.Elapsed > 0 {
			s.Rate = float64(s.N) / res.Elapsed.Seconds()
		}
		out = append(out, s)
	}
	return out, nil
}

// WriteReport 把统计结果写成表格。
func WriteReport(w io.Writer, summaries []Summary) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Curve", "Op", "N", "Mean", "Median", "P95", "P99", "StdDev", "Ops/s"})
	table.SetAutoFormatHeaders(false)
	table.SetAlignment(tablewriter.ALIGN_RIGHT)
	for _, s := range summaries {
		table.Append([]string{
			s.Curve,
			s.Op,
			humanize.Comma(int64(s.N)),
			nanos(s.Mean),
			nanos(s.Median),
			nanos(s.P95),
			nanos(s.P99),
			nanos(s.StdDev),
			humanize.Commaf(math.Round(s.Rate)),
		})
	}
	table.Render()
}

// WriteCurves 列出曲线参数。
func WriteCurves(w io.Writer, targets []*Target) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Curve", "Shape", "Modulus", "Pairing", "k", "Field bits", "Order bits", "Operations"})
	table.SetAutoFormatHeaders(false)
	for _, t := range targets {
		info := t.Info
		table.Append([]string{
			info.Name,
			info.Shape,
			info.ModType,
			info.Pairing,
			fmt.Sprint(info.Embedding),
			fmt.Sprint(info.ModBits),
			fmt.Sprint(info.OrderBits),
			fmt.Sprint(t.Operations()),
		})
	}
	table.Render()
}

func nanos(v float64) string {
	return time.Duration(v).Round(time.Microsecond / 10).String()
}
