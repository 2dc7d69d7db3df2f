package inspection

import (
	"errors"
	"log"
	"time"

	"qms-backend/internal/kpi"
	"qms-backend/internal/models"
	"qms-backend/internal/report"
	"qms-backend/internal/store"

	"github.com/gofiber/fiber/v2"
)

// -------------------------
// Request/Response Types
// -------------------------

type CreateInspectionRequest struct {
	Product   string                `json:"product"`
	Vendor    string                `json:"vendor"`
	Inspector string                `json:"inspector"`
	BatchID   string                `json:"batchId"`
	Scores    models.CriteriaScores `json:"scores"`
	Notes     string                `json:"notes"`
	Img       string                `json:"img"`
	Timestamp int64                 `json:"timestamp"` // opsiyonel, geçmişe dönük kayıt için
}

type UpdateStatusRequest struct {
	Status string `json:"status"` // "Accepted" | "Rejected"
}

type CreateInspectionResponse struct {
	Record    *models.InspectionRecord `json:"record"`
	Persisted bool                     `json:"persisted"`
	Warning   string                   `json:"warning,omitempty"`
}

type ReconcileResponse struct {
	DriftCount int           `json:"drift_count"`
	Drifts     []store.Drift `json:"drifts"`
}

// -------------------------
// Yardımcı Fonksiyonlar
// -------------------------

// refreshMetrics: KPI gauge'larını güncel setten tazeler
func refreshMetrics(s *store.RecordStore, m *kpi.Metrics) {
	if m == nil {
		return
	}
	m.Update(kpi.Compute(s.List(), time.Now()))
}

// mapCoreError: Çekirdek hata türlerini HTTP yanıtlarına çevirir
func mapCoreError(err error) error {
	var nferr *models.NotFoundError
	if errors.As(err, &nferr) {
		return fiber.NewError(fiber.StatusNotFound, "Denetim kaydı bulunamadı")
	}
	var cerr *models.ConsistencyError
	if errors.As(err, &cerr) {
		return fiber.NewError(fiber.StatusConflict, "Kayıt setinde tutarlılık hatası tespit edildi")
	}
	var perr *models.PersistenceError
	if errors.As(err, &perr) {
		return fiber.NewError(fiber.StatusServiceUnavailable, "Kayıt deposuna yazılamadı")
	}
	return err
}

// validationResponse: Tüm hatalı alanları tek yanıtta döndürür
func validationResponse(c *fiber.Ctx, verr *models.ValidationError) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
		"error":  "Doğrulama hatası",
		"fields": verr.Fields,
	})
}

// -------------------------
// Handlers
// -------------------------

// POST /api/inspections
func CreateInspectionHandler(s *store.RecordStore, metrics *kpi.Metrics) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body CreateInspectionRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Geçersiz istek gövdesi")
		}

		rec, err := s.Create(store.NewInspectionInput{
			Product:   body.Product,
			Vendor:    body.Vendor,
			Inspector: body.Inspector,
			BatchID:   body.BatchID,
			Scores:    body.Scores,
			Notes:     body.Notes,
			Img:       body.Img,
			Timestamp: body.Timestamp,
		})

		var verr *models.ValidationError
		if errors.As(err, &verr) {
			return validationResponse(c, verr)
		}

		var perr *models.PersistenceError
		if errors.As(err, &perr) {
			// Yazma başarısız ama kayıt kuruldu: kullanıcının girdiği veri
			// kaybolmasın diye kayıtla birlikte uyarı dönülür
			log.Printf("[WARN] Denetim kaydı kalıcılaştırılamadı: %v", err)
			return c.Status(fiber.StatusCreated).JSON(CreateInspectionResponse{
				Record:    rec,
				Persisted: false,
				Warning:   "Kayıt deposuna yazılamadı, veri kalıcı değil",
			})
		}
		if err != nil {
			return mapCoreError(err)
		}

		refreshMetrics(s, metrics)
		return c.Status(fiber.StatusCreated).JSON(CreateInspectionResponse{
			Record:    rec,
			Persisted: true,
		})
	}
}

// GET /api/inspections?limit=3
func ListInspectionsHandler(s *store.RecordStore, metrics *kpi.Metrics) fiber.Handler {
	return func(c *fiber.Ctx) error {
		records := s.List()

		limit := c.QueryInt("limit", 0)
		if limit > 0 && limit < len(records) {
			records = records[:limit]
		}

		refreshMetrics(s, metrics)
		return c.JSON(records)
	}
}

// GET /api/inspections/:id
func GetInspectionHandler(s *store.RecordStore) fiber.Handler {
	return func(c *fiber.Ctx) error {
		rec, err := s.FindByID(c.Params("id"))
		if err != nil {
			return mapCoreError(err)
		}
		return c.JSON(rec)
	}
}

// PUT /api/inspections/:id/status
// Yönetici kararı: approve/reject
func UpdateStatusHandler(s *store.RecordStore, metrics *kpi.Metrics) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body UpdateStatusRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Geçersiz istek gövdesi")
		}

		rec, err := s.UpdateStatus(c.Params("id"), models.ManagerStatus(body.Status))
		var verr *models.ValidationError
		if errors.As(err, &verr) {
			return validationResponse(c, verr)
		}
		if err != nil {
			return mapCoreError(err)
		}

		refreshMetrics(s, metrics)
		return c.JSON(rec)
	}
}

// GET /api/inspections/:id/report
// Yazdırılabilir HTML rapor; PDF'e çevirme ana ortamın işidir
func DetailedReportHandler(s *store.RecordStore) fiber.Handler {
	return func(c *fiber.Ctx) error {
		rec, err := s.FindByID(c.Params("id"))
		if err != nil {
			return mapCoreError(err)
		}

		html, err := report.DetailedReport(rec)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Rapor oluşturulamadı")
		}

		c.Set(fiber.HeaderContentType, "text/html; charset=utf-8")
		return c.SendString(html)
	}
}

// GET /api/inspections/export/csv
func ExportCSVHandler(s *store.RecordStore) fiber.Handler {
	return func(c *fiber.Ctx) error {
		csv := report.CSVExport(s.List())

		c.Set(fiber.HeaderContentType, "text/csv; charset=utf-8")
		c.Set(fiber.HeaderContentDisposition, `attachment; filename="all-inspections.csv"`)
		return c.SendString(csv)
	}
}

// GET /api/inspections/export/xlsx
func ExportXLSXHandler(s *store.RecordStore) fiber.Handler {
	return func(c *fiber.Ctx) error {
		records := s.List()
		snap := kpi.Compute(records, time.Now())

		data, err := report.SummaryXLSX(records, snap)
		if err != nil {
			log.Printf("[WARN] Özet raporu oluşturulamadı: %v", err)
			return fiber.NewError(fiber.StatusInternalServerError, "Özet raporu oluşturulamadı")
		}

		c.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		c.Set(fiber.HeaderContentDisposition, `attachment; filename="inspection-summary.xlsx"`)
		return c.Send(data)
	}
}

// GET /api/kpis
func KPIHandler(s *store.RecordStore, metrics *kpi.Metrics) fiber.Handler {
	return func(c *fiber.Ctx) error {
		snap := kpi.Compute(s.List(), time.Now())
		if metrics != nil {
			metrics.Update(snap)
		}
		return c.JSON(snap)
	}
}

// POST /api/inspections/reconcile
// Saklanan türetilmiş alanlarla yeniden hesaplananlar arasındaki
// sapmaları raporlar; kayıtları değiştirmez
func ReconcileHandler(s *store.RecordStore) fiber.Handler {
	return func(c *fiber.Ctx) error {
		drifts := s.Reconcile()
		if drifts == nil {
			drifts = []store.Drift{}
		}
		return c.JSON(ReconcileResponse{
			DriftCount: len(drifts),
			Drifts:     drifts,
		})
	}
}
