package models

import (
	"encoding/json"
	"fmt"
)

// ManagerStatus: Yönetici onay durumu
type ManagerStatus string

const (
	StatusPending  ManagerStatus = "Pending"
	StatusAccepted ManagerStatus = "Accepted"
	StatusRejected ManagerStatus = "Rejected"
)

// IsValid: Bilinen bir durum mu?
func (s ManagerStatus) IsValid() bool {
	switch s {
	case StatusPending, StatusAccepted, StatusRejected:
		return true
	}
	return false
}

// IsDecision: Yönetici kararı mı? (Pending bir karar değildir)
func (s ManagerStatus) IsDecision() bool {
	return s == StatusAccepted || s == StatusRejected
}

// PredictedStatus: Ortalama puandan otomatik türetilen sınıflandırma
type PredictedStatus string

const (
	PredictedAccepted PredictedStatus = "Accepted (Predicted)"
	PredictedRecheck  PredictedStatus = "Recheck (Predicted)"
	PredictedRejected PredictedStatus = "Rejected (Predicted)"
)

// Sabit altı kalite kriteri
const (
	CriteriaFabric    = "fabric"
	CriteriaStitching = "stitching"
	CriteriaFit       = "fit"
	CriteriaColor     = "color"
	CriteriaPackaging = "packaging"
	CriteriaLabels    = "labels"
)

// CriteriaOrder: Kriterlerin sabit gösterim sırası
var CriteriaOrder = []string{
	CriteriaFabric,
	CriteriaStitching,
	CriteriaFit,
	CriteriaColor,
	CriteriaPackaging,
	CriteriaLabels,
}

// CriteriaDisplayNames: Raporlarda kullanılan kriter adları
var CriteriaDisplayNames = map[string]string{
	CriteriaFabric:    "Fabric Quality",
	CriteriaStitching: "Stitching Quality",
	CriteriaFit:       "Fit & Size",
	CriteriaColor:     "Color & Finish",
	CriteriaPackaging: "Packaging",
	CriteriaLabels:    "Labels & Tags",
}

// CriteriaScores: Kriter adı -> 0-10 arası puan
type CriteriaScores map[string]float64

// InspectionRecord: Bir partinin tek kalite kontrol kaydı.
// average ve predicted türetilmiş alanlardır, scores'tan hesaplanır.
// Oluşturulduktan sonra yalnızca managerStatus değişebilir.
type InspectionRecord struct {
	ID            string          `json:"id"`
	Product       string          `json:"product"`
	Vendor        string          `json:"vendor"`
	Inspector     string          `json:"inspector"`
	BatchID       string          `json:"batchId"`
	Scores        CriteriaScores  `json:"scores"`
	Notes         string          `json:"notes"`
	Img           string          `json:"img,omitempty"` // opak görsel referansı (data URL vb.), yorumlanmaz
	Average       float64         `json:"average"`
	Predicted     PredictedStatus `json:"predicted"`
	ManagerStatus ManagerStatus   `json:"managerStatus"`
	Timestamp     int64           `json:"timestamp"` // epoch milisaniye
}

// FromPersisted: Kalıcı depodaki blob'dan kaydı geri yükler.
// Yapısal doğrulama yapar (zorunlu alanlar, tipler); average/predicted
// alanlarını YENİDEN HESAPLAMAZ, kayıt anındaki değere güvenir.
// Tutarlılık kontrolü için RecordStore.Reconcile kullanılır.
func FromPersisted(blob []byte) (*InspectionRecord, error) {
	var rec InspectionRecord
	if err := json.Unmarshal(blob, &rec); err != nil {
		return nil, &CorruptRecordError{Reason: "geçersiz JSON", Err: err}
	}

	if rec.ID == "" {
		return nil, &CorruptRecordError{Reason: "id alanı eksik"}
	}
	if rec.Product == "" || rec.Vendor == "" || rec.Inspector == "" {
		return nil, &CorruptRecordError{Reason: fmt.Sprintf("zorunlu alanlar eksik (id=%s)", rec.ID)}
	}
	if rec.BatchID == "" {
		return nil, &CorruptRecordError{Reason: fmt.Sprintf("batchId alanı eksik (id=%s)", rec.ID)}
	}
	if rec.Timestamp <= 0 {
		return nil, &CorruptRecordError{Reason: fmt.Sprintf("timestamp geçersiz (id=%s)", rec.ID)}
	}
	if !rec.ManagerStatus.IsValid() {
		return nil, &CorruptRecordError{Reason: fmt.Sprintf("bilinmeyen managerStatus: %q (id=%s)", rec.ManagerStatus, rec.ID)}
	}
	for _, key := range CriteriaOrder {
		if _, ok := rec.Scores[key]; !ok {
			return nil, &CorruptRecordError{Reason: fmt.Sprintf("scores.%s alanı eksik (id=%s)", key, rec.ID)}
		}
	}

	return &rec, nil
}

// ToBlob: Kaydı kalıcı depo için JSON blob'a çevirir
func (r *InspectionRecord) ToBlob() ([]byte, error) {
	b, err := json.Marshal(r)
	if err != nil {
		return nil, &PersistenceError{Op: "marshal", Err: err}
	}
	return b, nil
}
