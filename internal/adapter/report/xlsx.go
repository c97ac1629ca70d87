// Package report renders forecast summaries as spreadsheets.
package report

import (
	"fmt"
	"io"

	"github.com/dayanaadylkhanova/seller-forecast/internal/entity"
	"github.com/xuri/excelize/v2"
)

const ContentTypeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

const (
	sheetSummary         = "Summary"
	sheetForecast        = "Forecast"
	sheetCategories      = "Categories"
	sheetProducts        = "Products"
	sheetRecommendations = "Recommendations"
)

// WriteSummaryXLSX writes a workbook with one sheet per summary section.
func WriteSummaryXLSX(w io.Writer, sellerID string, s entity.Summary) error {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	if err := f.SetSheetName("Sheet1", sheetSummary); err != nil {
		return err
	}
	for _, name := range []string{sheetForecast, sheetCategories, sheetProducts, sheetRecommendations} {
		if _, err := f.NewSheet(name); err != nil {
			return err
		}
	}

	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return err
	}

	summary := [][]any{
		{"Seller", sellerID},
		{"Timeframe", s.Timeframe.String()},
		{"Total forecast", s.TotalForecast},
		{"Growth rate (%)", s.GrowthRate},
		{"Success probability (%)", s.SuccessProbability},
	}
	if err := writeRows(f, sheetSummary, summary); err != nil {
		return err
	}

	forecast := [][]any{{"Period", "Amount"}}
	for _, b := range s.RevenueForecasts {
		forecast = append(forecast, []any{b.Label, b.Amount})
	}
	forecast = append(forecast, []any{"Total", s.TotalForecast})
	if err := writeRows(f, sheetForecast, forecast); err != nil {
		return err
	}
	if err := f.SetCellStyle(sheetForecast, "A1", "B1", bold); err != nil {
		return err
	}
	totalRow := fmt.Sprintf("A%d", len(forecast))
	if err := f.SetCellStyle(sheetForecast, totalRow, fmt.Sprintf("B%d", len(forecast)), bold); err != nil {
		return err
	}

	cats := [][]any{{"Category", "Share (%)"}}
	for _, c := range s.CategoryDistribution {
		cats = append(cats, []any{c.Category, c.Percentage})
	}
	if err := writeRows(f, sheetCategories, cats); err != nil {
		return err
	}

	products := [][]any{{"Product", "Score"}}
	for _, p := range s.ProductPerformance {
		products = append(products, []any{p.Product, p.Score})
	}
	if err := writeRows(f, sheetProducts, products); err != nil {
		return err
	}

	recs := make([][]any, 0, len(s.Recommendations))
	for _, r := range s.Recommendations {
		recs = append(recs, []any{r})
	}
	if err := writeRows(f, sheetRecommendations, recs); err != nil {
		return err
	}
	if err := f.SetColWidth(sheetRecommendations, "A", "A", 80); err != nil {
		return err
	}

	for _, name := range []string{sheetCategories, sheetProducts} {
		if err := f.SetCellStyle(name, "A1", "B1", bold); err != nil {
			return err
		}
	}

	_, err = f.WriteTo(w)
	return err
}

func writeRows(f *excelize.File, sheet string, rows [][]any) error {
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return err
		}
		r := row
		if err := f.SetSheetRow(sheet, cell, &r); err != nil {
			return fmt.Errorf("%s row %d: %w", sheet, i+1, err)
		}
	}
	return nil
}
