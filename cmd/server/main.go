package main

import (
	"log"
	"strings"
	"time"

	"qms-backend/internal/config"
	"qms-backend/internal/inspection"
	"qms-backend/internal/kpi"
	"qms-backend/internal/storage"
	"qms-backend/internal/store"
	"qms-backend/internal/workflow"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func main() {
	cfg := config.Load()

	backend, cleanup := openBackend(cfg)
	if cleanup != nil {
		defer cleanup()
	}

	wf := workflow.New()
	recordStore := store.New(backend, wf)

	registry := prometheus.NewRegistry()
	metrics := kpi.NewMetrics(registry)

	// Her durum geçişi KPI sayaçlarını tazeler
	wf.Subscribe(func(e workflow.StatusChanged) {
		log.Printf("Denetim %s: %s -> %s", e.ID, e.OldStatus, e.NewStatus)
		metrics.Update(kpi.Compute(recordStore.List(), time.Now()))
	})

	// Açılışta sayaçları doldur
	metrics.Update(kpi.Compute(recordStore.List(), time.Now()))

	app := fiber.New(fiber.Config{
		BodyLimit: 10 * 1024 * 1024, // görsel ekli kayıtlar için
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			if e, ok := err.(*fiber.Error); ok {
				return c.Status(e.Code).JSON(fiber.Map{
					"error": e.Message,
				})
			}
			log.Println("Unexpected error:", err)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "Beklenmeyen sunucu hatası",
			})
		},
	})

	// CORS origins'i virgülle ayrılmış string'den array'e çevir
	corsOrigins := strings.Split(cfg.CORSOrigins, ",")
	for i := range corsOrigins {
		corsOrigins[i] = strings.TrimSpace(corsOrigins[i])
	}
	app.Use(cors.New(cors.Config{
		AllowOrigins: strings.Join(corsOrigins, ","),
		AllowHeaders: "Origin, Content-Type, Accept",
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
	}))

	api := app.Group("/api")

	// Denetim kayıtları
	api.Post("/inspections", inspection.CreateInspectionHandler(recordStore, metrics))
	api.Get("/inspections", inspection.ListInspectionsHandler(recordStore, metrics))
	api.Get("/inspections/export/csv", inspection.ExportCSVHandler(recordStore))
	api.Get("/inspections/export/xlsx", inspection.ExportXLSXHandler(recordStore))
	api.Post("/inspections/reconcile", inspection.ReconcileHandler(recordStore))
	api.Get("/inspections/:id", inspection.GetInspectionHandler(recordStore))
	api.Put("/inspections/:id/status", inspection.UpdateStatusHandler(recordStore, metrics))
	api.Get("/inspections/:id/report", inspection.DetailedReportHandler(recordStore))

	// Gösterge paneli
	api.Get("/kpis", inspection.KPIHandler(recordStore, metrics))

	// Prometheus
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.HandlerFor(registry, promhttp.HandlerOpts{})))

	log.Println("Server çalışıyor port:", cfg.HTTPPort)
	if err := app.Listen(":" + cfg.HTTPPort); err != nil {
		log.Fatal(err)
	}
}

// openBackend: Yapılandırmaya göre kalıcılık backend'ini açar
func openBackend(cfg *config.Config) (storage.Backend, func()) {
	switch cfg.StorageDriver {
	case "memory":
		return storage.NewMemory(), nil

	case "postgres":
		backend, err := storage.NewPostgres(cfg.DatabaseDSN)
		if err != nil {
			log.Fatalf("[FATAL] Postgres backend açılamadı: %v", err)
		}
		return backend, nil

	case "badger":
		backend, err := storage.NewBadger(cfg.BadgerPath)
		if err != nil {
			log.Fatalf("[FATAL] Badger backend açılamadı: %v", err)
		}
		return backend, func() {
			if err := backend.Close(); err != nil {
				log.Printf("[WARN] Badger kapatılamadı: %v", err)
			}
		}

	default: // file
		return storage.NewFile(cfg.DataFile), nil
	}
}
