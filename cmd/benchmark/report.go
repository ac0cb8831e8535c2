package main

import (
	"fmt"
	"io"

	"github.com/dustin/go-humanize"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/olekukonko/tablewriter"
)

var header = []string{"scenario", "width", "avg", "min", "p75", "p99", "max", "calls/s", "order", "stable"}

type report interface {
	add(*result)
	render()
}

func newReport(format string, w io.Writer) (report, error) {
	switch format {
	case "pretty":
		tbl := table.NewWriter()
		tbl.SetTitle("🚦 Signals")
		tbl.SetOutputMirror(w)
		row := make(table.Row, len(header))
		for i, h := range header {
			row[i] = h
		}
		tbl.AppendHeader(row)
		return &prettyReport{tbl: tbl}, nil
	case "ascii":
		tbl := tablewriter.NewWriter(w)
		tbl.SetHeader(header)
		return &asciiReport{tbl: tbl}, nil
	default:
		return nil, fmt.Errorf("unknown format %q, want pretty or ascii", format)
	}
}

func cells(res *result) []string {
	return []string{
		res.scenario,
		humanize.Comma(int64(res.width)),
		fmt.Sprint(res.metrics.Time.Avg),
		fmt.Sprint(res.metrics.Time.Min),
		fmt.Sprint(res.metrics.Time.P75),
		fmt.Sprint(res.metrics.Time.P99),
		fmt.Sprint(res.metrics.Time.Max),
		humanize.Comma(int64(res.callsPerSec)),
		fmt.Sprintf("%016x", res.fingerprint),
		fmt.Sprint(res.stable),
	}
}

type prettyReport struct {
	tbl table.Writer
}

func (r *prettyReport) add(res *result) {
	cs := cells(res)
	row := make(table.Row, len(cs))
	for i, c := range cs {
		row[i] = c
	}
	r.tbl.AppendRow(row)
}

func (r *prettyReport) render() {
	r.tbl.Render()
}

type asciiReport struct {
	tbl *tablewriter.Table
}

func (r *asciiReport) add(res *result) {
	r.tbl.Append(cells(res))
}

func (r *asciiReport) render() {
	r.tbl.Render()
}
