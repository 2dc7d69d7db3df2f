package store

import (
	"time"

	"qms-backend/internal/models"
)

// SampleRecords: Depo boşken veya okunamadığında kullanılan örnek veri.
// İlk kurulumda arayüzün boş görünmemesi içindir; gerçek kayıt girildikçe
// setin parçası olarak kalıcılaşır.
func SampleRecords(now time.Time) []*models.InspectionRecord {
	inputs := []NewInspectionInput{
		{
			Product:   "Shirt - Classic Cotton",
			Vendor:    "Fresh Tailors",
			Inspector: "John Smith",
			BatchID:   "BATCH-2023-001",
			Scores: models.CriteriaScores{
				"fabric": 8.5, "stitching": 8, "fit": 7.5,
				"color": 9, "packaging": 8, "labels": 8,
			},
			Notes:     "Good quality with minor fit issues. Fabric quality is excellent.",
			Timestamp: now.Add(-48 * time.Hour).UnixMilli(),
		},
		{
			Product:   "Shirt - Premium Linen",
			Vendor:    "Green Apparel",
			Inspector: "Sarah Johnson",
			BatchID:   "BATCH-2023-002",
			Scores: models.CriteriaScores{
				"fabric": 9, "stitching": 8.5, "fit": 8,
				"color": 8.5, "packaging": 9, "labels": 8,
			},
			Notes:     "Excellent quality batch. Premium materials used throughout.",
			Timestamp: now.Add(-24 * time.Hour).UnixMilli(),
		},
	}

	records := make([]*models.InspectionRecord, 0, len(inputs))
	for _, in := range inputs {
		rec, err := NewInspection(in)
		if err != nil {
			continue // örnek girdiler sabittir, buraya düşmez
		}
		records = append(records, rec)
	}
	return records
}
