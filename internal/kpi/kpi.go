package kpi

import (
	"math"
	"time"

	"qms-backend/internal/models"
	"qms-backend/internal/scoring"
)

// Snapshot: Gösterge paneli sayaçları. Çekirdek KPI durumu tutmaz;
// snapshot her çağrıda kayıt setinden yeniden hesaplanır.
type Snapshot struct {
	TotalCount   int     `json:"total_count"`
	TodayCount   int     `json:"today_count"`   // bugün yapılan denetim sayısı
	PassRate     int     `json:"pass_rate"`     // yüzde: average >= 8 VE yönetici Accepted
	IssueCount   int     `json:"issue_count"`   // average < 7 olan kayıtlar
	AverageScore float64 `json:"average_score"` // tüm kayıtların ortalaması, 2 ondalık
}

// Compute: Kayıt setinden sayaçları türetir
func Compute(records []*models.InspectionRecord, now time.Time) Snapshot {
	snap := Snapshot{TotalCount: len(records)}
	if len(records) == 0 {
		return snap
	}

	ny, nm, nd := now.Date()
	var sum float64
	passCount := 0

	for _, r := range records {
		t := time.UnixMilli(r.Timestamp).In(now.Location())
		y, m, d := t.Date()
		if y == ny && m == nm && d == nd {
			snap.TodayCount++
		}

		sum += r.Average
		if r.Average < 7 {
			snap.IssueCount++
		}
		if r.Average >= 8 && r.ManagerStatus == models.StatusAccepted {
			passCount++
		}
	}

	snap.AverageScore = scoring.Round2(sum / float64(len(records)))
	snap.PassRate = int(math.Round(float64(passCount) / float64(len(records)) * 100))
	return snap
}
