package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/dayanaadylkhanova/seller-forecast/internal/entity"
	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
)

func render(w io.Writer, o options, sellerID string, s entity.Summary) error {
	if o.Output == outputJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(s)
	}
	return writeSummaryTables(w, sellerID, s, o.Color)
}

// growthLabel formats the growth rate with a direction marker.
func growthLabel(rate int, useColors bool) string {
	red, green, yellow := fmt.Sprint, fmt.Sprint, fmt.Sprint
	if useColors {
		red = color.New(color.FgRed).SprintFunc()
		green = color.New(color.FgGreen).SprintFunc()
		yellow = color.New(color.FgYellow).SprintFunc()
	}
	switch {
	case rate > 0:
		return green(fmt.Sprintf("+%d%% ▲", rate))
	case rate < 0:
		return red(fmt.Sprintf("%d%% ▼", rate))
	default:
		return yellow("0%")
	}
}

func writeSummaryTables(w io.Writer, sellerID string, s entity.Summary, useColors bool) error {
	if sellerID != "" {
		if _, err := fmt.Fprintf(w, "Seller: %s\n", sellerID); err != nil {
			return err
		}
	}
	if _, err := fmt.Fprintf(w, "Timeframe: %s  Total: %.2f  Growth: %s  Success probability: %d%%\n",
		s.Timeframe, s.TotalForecast, growthLabel(s.GrowthRate, useColors), s.SuccessProbability); err != nil {
		return err
	}

	periods := make([][]string, 0, len(s.RevenueForecasts))
	for _, b := range s.RevenueForecasts {
		periods = append(periods, []string{b.Label, strconv.FormatFloat(b.Amount, 'f', 2, 64)})
	}
	if err := writeTable(w, []string{"Period", "Amount"}, periods); err != nil {
		return err
	}

	cats := make([][]string, 0, len(s.CategoryDistribution))
	for _, c := range s.CategoryDistribution {
		cats = append(cats, []string{c.Category, strconv.FormatFloat(c.Percentage, 'f', 1, 64) + "%"})
	}
	if err := writeTable(w, []string{"Category", "Share"}, cats); err != nil {
		return err
	}

	if len(s.ProductPerformance) > 0 {
		products := make([][]string, 0, len(s.ProductPerformance))
		for _, p := range s.ProductPerformance {
			products = append(products, []string{p.Product, strconv.Itoa(p.Score)})
		}
		if err := writeTable(w, []string{"Product", "Score"}, products); err != nil {
			return err
		}
	}

	if _, err := fmt.Fprintln(w, "Recommendations:"); err != nil {
		return err
	}
	for i, r := range s.Recommendations {
		if _, err := fmt.Fprintf(w, "  %d. %s\n", i+1, r); err != nil {
			return err
		}
	}
	return nil
}

func writeTable(w io.Writer, headers []string, rows [][]string) error {
	table := tablewriter.NewWriter(w)
	defer func() { _ = table.Close() }()

	table.Header(headers)
	table.Configure(func(cfg *tablewriter.Config) {
		cfg.Row.Alignment.Global = tw.AlignRight
	})
	if err := table.Bulk(rows); err != nil {
		return err
	}
	return table.Render()
}
