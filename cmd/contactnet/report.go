package main

import (
	"fmt"
	"io"
	"strconv"

	"github.com/pterm/pterm"

	"github.com/katalvlaran/contactnet/network"
	"github.com/katalvlaran/contactnet/stats"
	"github.com/katalvlaran/contactnet/traverse"
)

// writeReport renders the summary, degree histogram and top values as tables.
// A non-negative reachFrom adds the size of that node's reachable set.
func writeReport(out io.Writer, nw *network.Network, top, reachFrom int) error {
	s := stats.Summarize(nw)

	summary := pterm.TableData{
		{"metric", "value"},
		{"nodes", strconv.Itoa(s.Nodes)},
		{"links", strconv.Itoa(s.Links)},
		{"mean degree", formatFloat(s.MeanDegree)},
		{"degree variance", formatFloat(s.DegreeVariance)},
		{"max degree", strconv.Itoa(s.MaxDegree)},
		{"isolated", strconv.Itoa(s.Isolated)},
		{"components", strconv.Itoa(s.Components)},
		{"largest component", strconv.Itoa(s.LargestComponent)},
		{"value mean", formatFloat(s.ValueMean)},
		{"value std dev", formatFloat(s.ValueStdDev)},
		{"value median", formatFloat(s.ValueMedian)},
	}
	if reachFrom >= 0 {
		reached, err := traverse.Reachable(nw, reachFrom)
		if err != nil {
			return fmt.Errorf("report: %w", err)
		}
		summary = append(summary, []string{"reachable from " + strconv.Itoa(reachFrom), strconv.Itoa(len(reached))})
	}
	if err := renderTable(out, summary); err != nil {
		return err
	}

	hist := pterm.TableData{{"degree", "nodes"}}
	for k, c := range stats.DegreeHistogram(nw) {
		if c == 0 {
			continue
		}
		hist = append(hist, []string{strconv.Itoa(k), strconv.Itoa(c)})
	}
	if err := renderTable(out, hist); err != nil {
		return err
	}

	sorted := nw.SortedValues()
	if top > len(sorted) {
		top = len(sorted)
	}
	if top == 0 {
		return nil
	}
	values := pterm.TableData{{"rank", "value"}}
	for i, v := range sorted[:top] {
		values = append(values, []string{strconv.Itoa(i + 1), formatFloat(v)})
	}
	return renderTable(out, values)
}

func renderTable(out io.Writer, data pterm.TableData) error {
	s, err := pterm.DefaultTable.WithHasHeader().WithData(data).Srender()
	if err != nil {
		return fmt.Errorf("report: %w", err)
	}
	_, err = fmt.Fprintln(out, s)
	return err
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', 4, 64)
}
