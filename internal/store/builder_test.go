package store

import (
	"errors"
	"regexp"
	"strings"
	"testing"
	"time"

	"qms-backend/internal/models"
)

func TestNewInspectionCollectsAllFailures(t *testing.T) {
	in := NewInspectionInput{
		// product, vendor, inspector boş; scores eksik
		Scores: models.CriteriaScores{"fabric": 8},
	}

	_, err := NewInspection(in)
	var verr *models.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("ValidationError bekleniyordu, geldi: %v", err)
	}

	// 3 zorunlu alan + 5 eksik kriter
	if len(verr.Fields) != 8 {
		t.Errorf("8 alan hatası bekleniyordu, geldi: %d (%v)", len(verr.Fields), verr.Fields)
	}
}

func TestNewInspectionGeneratesBatchID(t *testing.T) {
	in := validInput()
	in.Timestamp = time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC).UnixMilli()

	rec, err := NewInspection(in)
	if err != nil {
		t.Fatal(err)
	}

	matched, _ := regexp.MatchString(`^BATCH-2024-[A-Z0-9]{4}$`, rec.BatchID)
	if !matched {
		t.Errorf("batchId biçimi yanlış: %q", rec.BatchID)
	}
}

func TestNewInspectionKeepsGivenBatchID(t *testing.T) {
	in := validInput()
	in.BatchID = "BATCH-2023-001"

	rec, err := NewInspection(in)
	if err != nil {
		t.Fatal(err)
	}
	if rec.BatchID != "BATCH-2023-001" {
		t.Errorf("verilen batchId korunmalı: %q", rec.BatchID)
	}
}

func TestNewInspectionDefaultTimestamp(t *testing.T) {
	before := time.Now().UnixMilli()
	rec, err := NewInspection(validInput())
	if err != nil {
		t.Fatal(err)
	}
	after := time.Now().UnixMilli()

	if rec.Timestamp < before || rec.Timestamp > after {
		t.Errorf("timestamp şimdiki zaman olmalı: %d", rec.Timestamp)
	}
}

func TestNewInspectionIDFormat(t *testing.T) {
	rec, err := NewInspection(validInput())
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(rec.ID, "ins_") {
		t.Errorf("id 'ins_' öneki taşımalı: %q", rec.ID)
	}
}

func TestIDUniquenessAcrossManyCreations(t *testing.T) {
	seen := make(map[string]bool, 10000)
	for i := 0; i < 10000; i++ {
		id := generateID()
		if seen[id] {
			t.Fatalf("%d. üretimde id çakışması: %s", i, id)
		}
		seen[id] = true
	}
}
