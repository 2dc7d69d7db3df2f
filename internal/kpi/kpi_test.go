package kpi

import (
	"testing"
	"time"

	"qms-backend/internal/models"
)

func rec(avg float64, status models.ManagerStatus, ts int64) *models.InspectionRecord {
	return &models.InspectionRecord{
		ID:            "ins_x",
		Average:       avg,
		ManagerStatus: status,
		Timestamp:     ts,
	}
}

func TestComputeEmptySet(t *testing.T) {
	snap := Compute(nil, time.Now())
	if snap.TotalCount != 0 || snap.PassRate != 0 || snap.AverageScore != 0 {
		t.Errorf("boş set için sıfır sayaçlar bekleniyordu: %+v", snap)
	}
}

func TestCompute(t *testing.T) {
	now := time.Date(2025, 6, 15, 14, 0, 0, 0, time.UTC)
	today := now.Add(-2 * time.Hour).UnixMilli()
	yesterday := now.Add(-26 * time.Hour).UnixMilli()

	records := []*models.InspectionRecord{
		rec(8.5, models.StatusAccepted, today),    // pass, bugün
		rec(8.2, models.StatusPending, yesterday), // yüksek puan ama onaysız
		rec(6.5, models.StatusAccepted, yesterday), // onaylı ama puan düşük
		rec(4.0, models.StatusRejected, today),    // sorunlu, bugün
	}

	snap := Compute(records, now)

	if snap.TotalCount != 4 {
		t.Errorf("total = %d, beklenen 4", snap.TotalCount)
	}
	if snap.TodayCount != 2 {
		t.Errorf("today = %d, beklenen 2", snap.TodayCount)
	}
	// Yalnızca ilk kayıt geçer: 1/4 = %25
	if snap.PassRate != 25 {
		t.Errorf("passRate = %d, beklenen 25", snap.PassRate)
	}
	// 6.5 ve 4.0 < 7
	if snap.IssueCount != 2 {
		t.Errorf("issueCount = %d, beklenen 2", snap.IssueCount)
	}
	// (8.5+8.2+6.5+4.0)/4 = 6.8
	if snap.AverageScore != 6.8 {
		t.Errorf("averageScore = %v, beklenen 6.8", snap.AverageScore)
	}
}

func TestComputePassRateRounding(t *testing.T) {
	now := time.Now()
	records := []*models.InspectionRecord{
		rec(9, models.StatusAccepted, now.UnixMilli()),
		rec(9, models.StatusPending, now.UnixMilli()),
		rec(9, models.StatusPending, now.UnixMilli()),
	}
	// 1/3 = %33.33 -> 33
	if snap := Compute(records, now); snap.PassRate != 33 {
		t.Errorf("passRate = %d, beklenen 33", snap.PassRate)
	}
}
