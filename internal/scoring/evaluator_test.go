package scoring

import (
	"errors"
	"math"
	"testing"

	"qms-backend/internal/models"
)

func validScores() models.CriteriaScores {
	return models.CriteriaScores{
		"fabric": 8.5, "stitching": 8, "fit": 7.5,
		"color": 9, "packaging": 8, "labels": 8,
	}
}

func TestAverage(t *testing.T) {
	avg, err := Average(validScores())
	if err != nil {
		t.Fatalf("beklenmeyen hata: %v", err)
	}
	if avg != 8.17 {
		t.Errorf("avg = %v, beklenen 8.17", avg)
	}
}

func TestAverageAllEqual(t *testing.T) {
	scores := models.CriteriaScores{
		"fabric": 7, "stitching": 7, "fit": 7,
		"color": 7, "packaging": 7, "labels": 7,
	}
	avg, err := Average(scores)
	if err != nil {
		t.Fatalf("beklenmeyen hata: %v", err)
	}
	if avg != 7 {
		t.Errorf("avg = %v, beklenen 7", avg)
	}
}

func TestAverageMissingCriteria(t *testing.T) {
	scores := validScores()
	delete(scores, "fit")
	delete(scores, "labels")

	_, err := Average(scores)
	var verr *models.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("ValidationError bekleniyordu, geldi: %v", err)
	}
	if len(verr.Fields) != 2 {
		t.Errorf("2 alan hatası bekleniyordu, geldi: %d (%v)", len(verr.Fields), verr.Fields)
	}
}

func TestAverageOutOfRange(t *testing.T) {
	for _, bad := range []float64{-0.5, 10.5, math.NaN(), math.Inf(1)} {
		scores := validScores()
		scores["color"] = bad

		_, err := Average(scores)
		var verr *models.ValidationError
		if !errors.As(err, &verr) {
			t.Errorf("color=%v için ValidationError bekleniyordu, geldi: %v", bad, err)
		}
	}
}

func TestAverageUnknownCriteria(t *testing.T) {
	scores := validScores()
	scores["durability"] = 5

	_, err := Average(scores)
	var verr *models.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("ValidationError bekleniyordu, geldi: %v", err)
	}
}

func TestAverageCollectsAllFailures(t *testing.T) {
	scores := models.CriteriaScores{
		"fabric": -1, "stitching": 11, "fit": 5,
		"color": 5, "packaging": 5,
		// labels eksik
	}
	_, err := Average(scores)
	var verr *models.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("ValidationError bekleniyordu, geldi: %v", err)
	}
	if len(verr.Fields) != 3 {
		t.Errorf("3 alan hatası bekleniyordu, geldi: %d (%v)", len(verr.Fields), verr.Fields)
	}
}

func TestPredictBands(t *testing.T) {
	tests := []struct {
		average float64
		want    models.PredictedStatus
	}{
		{10, models.PredictedAccepted},
		{8.0, models.PredictedAccepted},
		{7.999, models.PredictedRecheck},
		{6.0, models.PredictedRecheck},
		{5.999, models.PredictedRejected},
		{0, models.PredictedRejected},
	}
	for _, tt := range tests {
		if got := Predict(tt.average); got != tt.want {
			t.Errorf("Predict(%v) = %q, beklenen %q", tt.average, got, tt.want)
		}
	}
}

func TestPredictMatchesRoundedAverage(t *testing.T) {
	// Türetilmiş alan tutarlılığı: yuvarlanmış ortalama hangi banttaysa
	// predicted o bant olmalı
	scores := validScores()
	avg, err := Average(scores)
	if err != nil {
		t.Fatalf("beklenmeyen hata: %v", err)
	}
	if avg != Round2(avg) {
		t.Errorf("Average yuvarlanmamış değer döndürdü: %v", avg)
	}
	if got := Predict(avg); got != models.PredictedAccepted {
		t.Errorf("Predict(%v) = %q, beklenen %q", avg, got, models.PredictedAccepted)
	}
}

func TestRating(t *testing.T) {
	tests := []struct {
		score float64
		want  string
	}{
		{9.5, "Excellent"},
		{9, "Excellent"},
		{8.5, "Very Good"},
		{8, "Very Good"},
		{7, "Good"},
		{6, "Average"},
		{5.9, "Needs Improvement"},
		{0, "Needs Improvement"},
	}
	for _, tt := range tests {
		if got := Rating(tt.score); got != tt.want {
			t.Errorf("Rating(%v) = %q, beklenen %q", tt.score, got, tt.want)
		}
	}
}
