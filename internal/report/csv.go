package report

import (
	"strconv"
	"strings"
	"time"

	"qms-backend/internal/models"
)

// CSVHeader: Toplu dışa aktarmanın sabit başlık satırı
const CSVHeader = "Product,Vendor,Inspector,Batch ID,Average Score,Status,Timestamp"

// CSVExport: Kayıt setini CSV metnine çevirir. Metin alanları her zaman
// çift tırnak içine alınır ve gömülü tırnaklar ikilenir (RFC 4180);
// sayısal alan tırnaksızdır. Satır sırası setin verilen sırasıdır.
func CSVExport(records []*models.InspectionRecord) string {
	var b strings.Builder
	b.WriteString(CSVHeader)
	b.WriteString("\n")

	for _, r := range records {
		row := []string{
			csvQuote(r.Product),
			csvQuote(r.Vendor),
			csvQuote(r.Inspector),
			csvQuote(r.BatchID),
			strconv.FormatFloat(r.Average, 'f', -1, 64),
			csvQuote(string(r.ManagerStatus)),
			csvQuote(formatTimestamp(r.Timestamp)),
		}
		b.WriteString(strings.Join(row, ","))
		b.WriteString("\n")
	}
	return b.String()
}

// csvQuote: Alanı tırnaklar, içteki tırnakları ikiler
func csvQuote(s string) string {
	return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
}

// formatTimestamp: Epoch milisaniyeyi okunur tarih-saate çevirir.
// Biçimin kendisi sözleşmenin parçası değildir, yapı önemlidir.
func formatTimestamp(ms int64) string {
	return time.UnixMilli(ms).Format("02.01.2006 15:04:05")
}
