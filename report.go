package main

import (
	"bytes"
	"fmt"
	"log"
	"strings"

	"github.com/xuri/excelize/v2"

	"lg/metabolic-plan-api/plan"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

const (
	planSheet  = "Plan"
	mealsSheet = "Meals"
)

// reportFilename names the download after the client's last name.
func reportFilename(lastName string) string {
	name := strings.TrimSpace(lastName)
	if name == "" {
		name = "report"
	}
	// Keep the header value safe to quote.
	name = strings.Map(func(r rune) rune {
		if r == '"' || r == '\\' || r == '/' || r < 0x20 {
			return '_'
		}
		return r
	}, name)
	return "metabolic_plan_" + name + ".xlsx"
}

// buildReportWorkbook renders a plan into a two-sheet workbook: the numbers
// on "Plan" and the meal suggestions on "Meals".
func buildReportWorkbook(req planRequest, r plan.Result, meals plan.MealPlan) (*bytes.Buffer, error) {
	f := excelize.NewFile()
	defer func() {
		if err := f.Close(); err != nil {
			log.Printf("[buildReportWorkbook] close error: %v", err)
		}
	}()

	if err := f.SetSheetName("Sheet1", planSheet); err != nil {
		return nil, fmt.Errorf("rename sheet: %w", err)
	}
	labelStyle, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return nil, fmt.Errorf("label style: %w", err)
	}
	headingStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Size: 13, Color: "FFFFFF"},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"2F5597"}, Pattern: 1},
	})
	if err != nil {
		return nil, fmt.Errorf("heading style: %w", err)
	}

	rows := [][]any{
		{"Client"},
		{"Name", strings.TrimSpace(req.FirstName + " " + req.LastName)},
		{"Email", req.Email},
		{"Goal", req.Goal},
		{"Mode", string(r.Mode)},
		{},
		{"Energy"},
		{"BMR (kcal/day)", r.BMR},
		{"Activity factor", r.ActivityFactor},
		{"TDEE (kcal/day)", r.TDEE},
		{"Daily calories", r.Calories},
	}
	if r.Mode == plan.DateMode {
		rows = append(rows,
			[]any{"Lbs to lose", r.LbsToLose},
			[]any{"Weeks to goal", r.WeeksToGoal},
			[]any{"Weekly loss target (lb)", r.WeeklyLoss},
			[]any{"Daily deficit (kcal)", r.DailyDeficit},
		)
	} else if r.IntensityDelta != 0 {
		rows = append(rows, []any{"Intensity delta (kcal)", r.IntensityDelta})
	}
	rows = append(rows,
		[]any{},
		[]any{"Macros", "Grams", "Kcal"},
		[]any{"Protein", r.ProteinG, r.ProteinKcal},
		[]any{"Fat", r.FatG, r.FatKcal},
		[]any{"Carbs", r.CarbG, r.CarbKcal},
	)
	if r.PortionProtein > 0 {
		rows = append(rows,
			[]any{},
			[]any{"Portions per day"},
			[]any{"Protein (palms)", r.PortionProtein},
			[]any{"Carbs (cupped handfuls)", r.PortionCarbs},
			[]any{"Fats (thumbs)", r.PortionFats},
		)
	}

	headings := map[string]bool{"Client": true, "Energy": true, "Macros": true, "Portions per day": true}
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return nil, err
		}
		if len(row) == 0 {
			continue
		}
		if err := f.SetSheetRow(planSheet, cell, &row); err != nil {
			return nil, fmt.Errorf("write row %d: %w", i+1, err)
		}
		style := labelStyle
		if label, _ := row[0].(string); headings[label] {
			style = headingStyle
		}
		if err := f.SetCellStyle(planSheet, cell, cell, style); err != nil {
			return nil, fmt.Errorf("style row %d: %w", i+1, err)
		}
	}
	if err := f.SetColWidth(planSheet, "A", "A", 26); err != nil {
		return nil, err
	}
	if err := f.SetColWidth(planSheet, "B", "C", 14); err != nil {
		return nil, err
	}

	if err := writeMealsSheet(f, meals, labelStyle); err != nil {
		return nil, err
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("write workbook: %w", err)
	}
	return buf, nil
}

// writeMealsSheet adds the meal suggestion sheet.
func writeMealsSheet(f *excelize.File, meals plan.MealPlan, labelStyle int) error {
	if _, err := f.NewSheet(mealsSheet); err != nil {
		return fmt.Errorf("new sheet: %w", err)
	}

	rows := [][]any{
		{"Focus", meals.Label},
		{"Style", meals.Style},
		{"Per meal (kcal)", meals.PerMealKcal},
		{},
	}
	for _, m := range meals.Meals {
		rows = append(rows, []any{m.Name, m.Description})
	}

	for i, row := range rows {
		if len(row) == 0 {
			continue
		}
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(mealsSheet, cell, &row); err != nil {
			return fmt.Errorf("write meals row %d: %w", i+1, err)
		}
		if err := f.SetCellStyle(mealsSheet, cell, cell, labelStyle); err != nil {
			return fmt.Errorf("style meals row %d: %w", i+1, err)
		}
	}
	if err := f.SetColWidth(mealsSheet, "A", "A", 18); err != nil {
		return err
	}
	return f.SetColWidth(mealsSheet, "B", "B", 90)
}
