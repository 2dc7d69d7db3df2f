package scoring

import (
	"fmt"
	"math"

	"qms-backend/internal/models"
)

// Puan sınırları
const (
	MinScore = 0.0
	MaxScore = 10.0
)

// Round2: 2 ondalık basamağa yuvarlar. average alanı her zaman bu
// hassasiyetle saklanır, diller arası bit-uyumlu sonuç için tek noktadan.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// Average: Altı kriter puanının aritmetik ortalaması, 2 ondalığa
// yuvarlanmış. Eksik kriter, aralık dışı veya sonlu olmayan değer
// ValidationError döndürür.
func Average(scores models.CriteriaScores) (float64, error) {
	verr := &models.ValidationError{}

	for _, key := range models.CriteriaOrder {
		v, ok := scores[key]
		if !ok {
			verr.Add("scores."+key, "kriter puanı eksik")
			continue
		}
		if math.IsNaN(v) || math.IsInf(v, 0) {
			verr.Add("scores."+key, "puan sonlu bir sayı olmalı")
			continue
		}
		if v < MinScore || v > MaxScore {
			verr.Add("scores."+key, fmt.Sprintf("puan %g-%g aralığında olmalı", MinScore, MaxScore))
		}
	}

	// Kapalı küme: bilinmeyen kriter de hata
	for key := range scores {
		if _, ok := models.CriteriaDisplayNames[key]; !ok {
			verr.Add("scores."+key, "bilinmeyen kriter")
		}
	}

	if verr.HasErrors() {
		return 0, verr
	}

	var sum float64
	for _, key := range models.CriteriaOrder {
		sum += scores[key]
	}
	return Round2(sum / float64(len(models.CriteriaOrder))), nil
}

// Predict: Ortalamadan tahmini durumu türetir. Deterministik eşikler,
// her bandın alt sınırı dahildir. Girdi olarak kalıcı alandaki
// yuvarlanmış ortalama beklenir.
func Predict(average float64) models.PredictedStatus {
	if average >= 8 {
		return models.PredictedAccepted
	}
	if average >= 6 {
		return models.PredictedRecheck
	}
	return models.PredictedRejected
}

// Rating: Detaylı raporda kullanılan nitel bant
func Rating(score float64) string {
	switch {
	case score >= 9:
		return "Excellent"
	case score >= 8:
		return "Very Good"
	case score >= 7:
		return "Good"
	case score >= 6:
		return "Average"
	default:
		return "Needs Improvement"
	}
}
