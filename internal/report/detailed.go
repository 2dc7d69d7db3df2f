package report

import (
	"fmt"
	"html/template"
	"strings"
	"time"

	"qms-backend/internal/models"
	"qms-backend/internal/scoring"
)

// NoNotesFallback: Not girilmemiş kayıtlar için sabit metin
const NoNotesFallback = "No additional notes provided."

// detailedReportHTML: Kendi içinde bütün (inline stilli) rapor belgesi.
// Ana ortam bunu yazdırarak PDF'e çevirebilir; çekirdek yalnızca
// içerik üretir, dosya/yazdırma mekaniği dışarıdadır.
// html/template kullanıcı metinlerini otomatik kaçışlar; tablo
// görünümüyle rapor arasındaki eski kaçışlama tutarsızlığı burada kapanır.
const detailedReportHTML = `<!DOCTYPE html>
<html>
<head>
    <title>Inspection Report - {{.BatchID}}</title>
    <style>
        body { font-family: Arial, sans-serif; margin: 40px; color: #333; }
        .header { text-align: center; margin-bottom: 40px; border-bottom: 2px solid #1976d2; padding-bottom: 20px; }
        .logo { font-size: 24px; font-weight: bold; color: #1976d2; margin-bottom: 10px; }
        .summary { display: grid; grid-template-columns: 1fr 1fr; gap: 20px; margin-bottom: 30px; }
        .section { margin-bottom: 30px; }
        table { width: 100%; border-collapse: collapse; margin: 20px 0; }
        th, td { padding: 12px; text-align: left; border-bottom: 1px solid #ddd; }
        th { background-color: #f5f5f5; font-weight: bold; }
        .score { font-weight: bold; color: #1976d2; }
        .notes { background: #f9f9f9; padding: 20px; border-radius: 8px; }
    </style>
</head>
<body>
    <div class="header">
        <div class="logo">QMS Pro - Inspection Report</div>
        <h1>Detailed Quality Inspection Report</h1>
    </div>

    <div class="summary">
        <div>
            <h3>Product Information</h3>
            <p><strong>Product:</strong> {{.Product}}</p>
            <p><strong>Vendor:</strong> {{.Vendor}}</p>
            <p><strong>Batch ID:</strong> {{.BatchID}}</p>
        </div>
        <div>
            <h3>Inspection Details</h3>
            <p><strong>Inspector:</strong> {{.Inspector}}</p>
            <p><strong>Date:</strong> {{.Date}}</p>
            <p><strong>Overall Score:</strong> <span class="score">{{.Average}}/10</span></p>
        </div>
    </div>

    <div class="section">
        <h3>Quality Scores Breakdown</h3>
        <table>
            <thead>
                <tr>
                    <th>Criteria</th>
                    <th>Score</th>
                    <th>Rating</th>
                </tr>
            </thead>
            <tbody>
                {{range .Criteria}}<tr>
                    <td>{{.Name}}</td>
                    <td class="score">{{.Score}}/10</td>
                    <td>{{.Rating}}</td>
                </tr>
                {{end}}
            </tbody>
        </table>
    </div>

    <div class="section">
        <h3>Inspection Notes</h3>
        <div class="notes">
            <p>{{.Notes}}</p>
        </div>
    </div>

    <div class="section">
        <h3>Summary</h3>
        <p><strong>Predicted Status:</strong> {{.Predicted}}</p>
        <p><strong>Manager Decision:</strong> {{.ManagerStatus}}</p>
        <p><strong>Report Generated:</strong> {{.GeneratedAt}}</p>
    </div>
</body>
</html>
`

var detailedTmpl = template.Must(template.New("detailed").Parse(detailedReportHTML))

type criterionRow struct {
	Name   string
	Score  string
	Rating string
}

type detailedReportData struct {
	Product       string
	Vendor        string
	Inspector     string
	BatchID       string
	Date          string
	Average       string
	Criteria      []criterionRow
	Notes         string
	Predicted     models.PredictedStatus
	ManagerStatus models.ManagerStatus
	GeneratedAt   string
}

// DetailedReport: Tek kayıt için ayrıntılı HTML rapor belgesi üretir
func DetailedReport(rec *models.InspectionRecord) (string, error) {
	criteria := make([]criterionRow, 0, len(models.CriteriaOrder))
	for _, key := range models.CriteriaOrder {
		score := rec.Scores[key]
		criteria = append(criteria, criterionRow{
			Name:   models.CriteriaDisplayNames[key],
			Score:  formatScore(score),
			Rating: scoring.Rating(score),
		})
	}

	notes := rec.Notes
	if strings.TrimSpace(notes) == "" {
		notes = NoNotesFallback
	}

	data := detailedReportData{
		Product:       rec.Product,
		Vendor:        rec.Vendor,
		Inspector:     rec.Inspector,
		BatchID:       rec.BatchID,
		Date:          formatTimestamp(rec.Timestamp),
		Average:       formatScore(rec.Average),
		Criteria:      criteria,
		Notes:         notes,
		Predicted:     rec.Predicted,
		ManagerStatus: rec.ManagerStatus,
		GeneratedAt:   time.Now().Format("02.01.2006 15:04:05"),
	}

	var b strings.Builder
	if err := detailedTmpl.Execute(&b, data); err != nil {
		return "", fmt.Errorf("rapor şablonu çalıştırılamadı: %w", err)
	}
	return b.String(), nil
}

// formatScore: Puanı gereksiz sıfır olmadan yazar (8.5, 8, 8.17)
func formatScore(v float64) string {
	s := fmt.Sprintf("%.2f", v)
	s = strings.TrimRight(s, "0")
	s = strings.TrimRight(s, ".")
	return s
}
