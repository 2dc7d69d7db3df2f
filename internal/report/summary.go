package report

import (
	"fmt"

	"qms-backend/internal/kpi"
	"qms-backend/internal/models"

	"github.com/xuri/excelize/v2"
)

const summarySheet = "Inspections"

// SummaryXLSX: Kayıt seti ve KPI sayaçlarından özet çalışma kitabı üretir.
// Satır başına bir kayıt, altında gösterge bloğu.
func SummaryXLSX(records []*models.InspectionRecord, snap kpi.Snapshot) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", summarySheet); err != nil {
		return nil, fmt.Errorf("sheet adlandırılamadı: %w", err)
	}

	headers := []string{"Product", "Vendor", "Inspector", "Batch ID", "Average Score", "Predicted", "Status", "Timestamp"}
	for i, h := range headers {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return nil, err
		}
		if err := f.SetCellValue(summarySheet, cell, h); err != nil {
			return nil, fmt.Errorf("başlık yazılamadı: %w", err)
		}
	}

	for rowIdx, r := range records {
		values := []interface{}{
			r.Product,
			r.Vendor,
			r.Inspector,
			r.BatchID,
			r.Average,
			string(r.Predicted),
			string(r.ManagerStatus),
			formatTimestamp(r.Timestamp),
		}
		for colIdx, v := range values {
			cell, err := excelize.CoordinatesToCellName(colIdx+1, rowIdx+2)
			if err != nil {
				return nil, err
			}
			if err := f.SetCellValue(summarySheet, cell, v); err != nil {
				return nil, fmt.Errorf("kayıt satırı yazılamadı: %w", err)
			}
		}
	}

	// KPI bloğu: kayıtların altında bir satır boşlukla
	kpiStart := len(records) + 3
	kpiRows := [][2]interface{}{
		{"Total Inspections", snap.TotalCount},
		{"Inspections Today", snap.TodayCount},
		{"Pass Rate (%)", snap.PassRate},
		{"Issues (avg < 7)", snap.IssueCount},
		{"Overall Average", snap.AverageScore},
	}
	for i, row := range kpiRows {
		labelCell, _ := excelize.CoordinatesToCellName(1, kpiStart+i)
		valueCell, _ := excelize.CoordinatesToCellName(2, kpiStart+i)
		if err := f.SetCellValue(summarySheet, labelCell, row[0]); err != nil {
			return nil, fmt.Errorf("KPI satırı yazılamadı: %w", err)
		}
		if err := f.SetCellValue(summarySheet, valueCell, row[1]); err != nil {
			return nil, fmt.Errorf("KPI satırı yazılamadı: %w", err)
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("çalışma kitabı yazılamadı: %w", err)
	}
	return buf.Bytes(), nil
}
