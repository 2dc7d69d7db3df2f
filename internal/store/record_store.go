package store

import (
	"errors"
	"fmt"
	"log"
	"sort"
	"time"

	"qms-backend/internal/models"
	"qms-backend/internal/scoring"
	"qms-backend/internal/storage"
	"qms-backend/internal/workflow"
)

// RecordStore: Denetim kayıtları üzerinde CRUD. Backend enjekte edilir,
// gizli global yoktur; sözleşme her işlemde "hepsini oku, değiştir,
// hepsini yaz"dır. Kısmi güncelleme yeteneği backend'de yoktur.
type RecordStore struct {
	backend  storage.Backend
	workflow *workflow.ApprovalWorkflow

	// Seed: Depo boş/okunamaz olduğunda dönülecek veri. nil ise boş set
	// dönülür. Varsayılan SampleRecords'tur.
	Seed func(now time.Time) []*models.InspectionRecord
}

func New(backend storage.Backend, wf *workflow.ApprovalWorkflow) *RecordStore {
	return &RecordStore{
		backend:  backend,
		workflow: wf,
		Seed:     SampleRecords,
	}
}

// List: Tüm kayıtlar, zaman damgasına göre yeniden eskiye sıralı.
// Sıralama sorgu katmanının kuralıdır, depolama sırası garantisi değildir.
func (s *RecordStore) List() []*models.InspectionRecord {
	records := s.loadAll()
	sort.SliceStable(records, func(i, j int) bool {
		return records[i].Timestamp > records[j].Timestamp
	})
	return records
}

// Create: Girdiden kayıt kurar, id benzersizliğini doğrular ve tam seti
// geri yazar. Yazma başarısız olursa kurulmuş kayıt HATAYLA BİRLİKTE
// döner; çağıran kullanıcının girdiği veriyi kaybetmeden uyarı verebilir.
func (s *RecordStore) Create(input NewInspectionInput) (*models.InspectionRecord, error) {
	rec, err := NewInspection(input)
	if err != nil {
		return nil, err
	}

	records := append(s.loadAll(), rec)
	if err := checkUniqueIDs(records); err != nil {
		return nil, err
	}

	if err := s.persist(records); err != nil {
		return rec, err
	}
	return rec, nil
}

// UpdateStatus: Kaydı bulur, geçiş kurallarını workflow'a bırakır ve tam
// seti geri yazar. Doğrulama/bulunamadı hataları seti değiştirmez.
func (s *RecordStore) UpdateStatus(id string, status models.ManagerStatus) (*models.InspectionRecord, error) {
	records := s.loadAll()

	idx := -1
	for i, r := range records {
		if r.ID == id {
			idx = i
			break
		}
	}
	if idx == -1 {
		return nil, &models.NotFoundError{ID: id}
	}

	if err := s.workflow.Transition(records[idx], status); err != nil {
		return nil, err
	}

	if err := checkUniqueIDs(records); err != nil {
		return nil, err
	}
	if err := s.persist(records); err != nil {
		return records[idx], err
	}
	return records[idx], nil
}

// FindByID: Tek kayıt; yoksa NotFoundError
func (s *RecordStore) FindByID(id string) (*models.InspectionRecord, error) {
	for _, r := range s.loadAll() {
		if r.ID == id {
			return r, nil
		}
	}
	return nil, &models.NotFoundError{ID: id}
}

// Drift: Saklanan türetilmiş alanlar ile yeniden hesaplanan değerler
// arasındaki sapma
type Drift struct {
	ID                string                 `json:"id"`
	ScoresValid       bool                   `json:"scores_valid"`
	StoredAverage     float64                `json:"stored_average"`
	ComputedAverage   float64                `json:"computed_average"`
	StoredPredicted   models.PredictedStatus `json:"stored_predicted"`
	ComputedPredicted models.PredictedStatus `json:"computed_predicted"`
}

// Reconcile: Kayıt setini taramadan geçirir ve türetilmiş alan sapmalarını
// raporlar. Kayıtları DEĞİŞTİRMEZ; geri yükleme sırasında saklanan
// değerlere güvenme politikasının denetim kapısıdır.
func (s *RecordStore) Reconcile() []Drift {
	var drifts []Drift
	for _, r := range s.loadAll() {
		avg, err := scoring.Average(r.Scores)
		if err != nil {
			drifts = append(drifts, Drift{
				ID:              r.ID,
				ScoresValid:     false,
				StoredAverage:   r.Average,
				StoredPredicted: r.Predicted,
			})
			continue
		}
		predicted := scoring.Predict(avg)
		if avg != r.Average || predicted != r.Predicted {
			drifts = append(drifts, Drift{
				ID:                r.ID,
				ScoresValid:       true,
				StoredAverage:     r.Average,
				ComputedAverage:   avg,
				StoredPredicted:   r.Predicted,
				ComputedPredicted: predicted,
			})
		}
	}
	return drifts
}

// loadAll: Backend'den tam seti okur. Okuma hatası seed/boş sete düşer;
// fail-open kasıtlıdır, kalıcılığı kritik bir kurulumda gözden
// geçirilmeli. Tekil bozuk blob atlanır ve loglanır.
func (s *RecordStore) loadAll() []*models.InspectionRecord {
	blobs, err := s.backend.ReadAll()
	if err != nil {
		log.Printf("[WARN] Depo okunamadı, seed verisine dönülüyor: %v", err)
		return s.seeded()
	}
	if len(blobs) == 0 {
		return s.seeded()
	}

	records := make([]*models.InspectionRecord, 0, len(blobs))
	for _, blob := range blobs {
		rec, err := models.FromPersisted(blob)
		if err != nil {
			log.Printf("[WARN] Bozuk kayıt atlandı: %v", err)
			continue
		}
		records = append(records, rec)
	}
	return records
}

// seeded: Seed verisini üretir ve best-effort geri yazar; örnek veri
// üretilince depoya da düşer ki sonraki okumalar aynı seti görsün
func (s *RecordStore) seeded() []*models.InspectionRecord {
	if s.Seed == nil {
		return nil
	}
	records := s.Seed(time.Now())
	if len(records) > 0 {
		if err := s.persist(records); err != nil {
			log.Printf("[WARN] Seed verisi yazılamadı: %v", err)
		}
	}
	return records
}

// persist: Tam seti backend'e yazar
func (s *RecordStore) persist(records []*models.InspectionRecord) error {
	blobs := make([][]byte, 0, len(records))
	for _, r := range records {
		b, err := r.ToBlob()
		if err != nil {
			return err
		}
		blobs = append(blobs, b)
	}

	if err := s.backend.WriteAll(blobs); err != nil {
		var perr *models.PersistenceError
		if errors.As(err, &perr) {
			return err
		}
		return &models.PersistenceError{Op: "writeAll", Err: err}
	}
	return nil
}

// checkUniqueIDs: Her yazmadan önce id benzersizliği yeniden doğrulanır.
// Tek yazarlı kullanımda ihlal beklenmez; bozulmuş backend'e karşı korumadır.
func checkUniqueIDs(records []*models.InspectionRecord) error {
	seen := make(map[string]bool, len(records))
	for _, r := range records {
		if seen[r.ID] {
			return &models.ConsistencyError{Reason: fmt.Sprintf("yinelenen kayıt id'si: %s", r.ID)}
		}
		seen[r.ID] = true
	}
	return nil
}
