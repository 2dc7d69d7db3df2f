package store

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"qms-backend/internal/models"
	"qms-backend/internal/scoring"

	"github.com/google/uuid"
)

// NewInspectionInput: Yeni denetim kaydı için operatör girdisi
type NewInspectionInput struct {
	Product   string                `json:"product"`
	Vendor    string                `json:"vendor"`
	Inspector string                `json:"inspector"`
	BatchID   string                `json:"batchId"`
	Scores    models.CriteriaScores `json:"scores"`
	Notes     string                `json:"notes"`
	Img       string                `json:"img"`
	Timestamp int64                 `json:"timestamp"` // 0 ise şimdiki zaman; geçmişe dönük kayıt için verilebilir
}

// NewInspection: Girdiden tam bir denetim kaydı kurar. Tüm türetilmiş
// alanlar (average, predicted) kalıcılıktan ÖNCE hesaplanır; kayıt asla
// yarım kurulmaz. Doğrulama ilk hatada durmaz, hatalı alanların tümünü
// tek ValidationError içinde toplar.
func NewInspection(input NewInspectionInput) (*models.InspectionRecord, error) {
	verr := &models.ValidationError{}

	if strings.TrimSpace(input.Product) == "" {
		verr.Add("product", "ürün adı zorunlu")
	}
	if strings.TrimSpace(input.Vendor) == "" {
		verr.Add("vendor", "tedarikçi zorunlu")
	}
	if strings.TrimSpace(input.Inspector) == "" {
		verr.Add("inspector", "denetçi zorunlu")
	}

	average, err := scoring.Average(input.Scores)
	if err != nil {
		var serr *models.ValidationError
		if errors.As(err, &serr) {
			verr.Fields = append(verr.Fields, serr.Fields...)
		} else {
			return nil, err
		}
	}

	if verr.HasErrors() {
		return nil, verr
	}

	ts := input.Timestamp
	if ts == 0 {
		ts = time.Now().UnixMilli()
	}

	batchID := input.BatchID
	if batchID == "" {
		batchID = generateBatchID(time.UnixMilli(ts).Year())
	}

	return &models.InspectionRecord{
		ID:            generateID(),
		Product:       input.Product,
		Vendor:        input.Vendor,
		Inspector:     input.Inspector,
		BatchID:       batchID,
		Scores:        input.Scores,
		Notes:         input.Notes,
		Img:           input.Img,
		Average:       average,
		Predicted:     scoring.Predict(average),
		ManagerStatus: models.StatusPending,
		Timestamp:     ts,
	}, nil
}

// generateID: Çakışmaya dayanıklı kayıt kimliği
func generateID() string {
	return "ins_" + strings.ReplaceAll(uuid.NewString(), "-", "")
}

// generateBatchID: BATCH-<yıl>-<4 karakterlik sonek>. Yalnızca çaba
// düzeyinde benzersizdir, küresel benzersizlik garantisi yoktur.
func generateBatchID(year int) string {
	suffix := strings.ToUpper(uuid.NewString()[:4])
	return fmt.Sprintf("BATCH-%d-%s", year, suffix)
}
