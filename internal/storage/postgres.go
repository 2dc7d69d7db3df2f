package storage

import (
	"encoding/json"
	"fmt"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// storedInspection: Postgres'te bir kayıt satırı. Kayıt içeriği jsonb
// blob olarak saklanır; sorgulama/sıralama store katmanının işidir,
// backend yalnızca read-all/write-all sözleşmesini sağlar.
type storedInspection struct {
	ID        uint   `gorm:"primaryKey"`
	RecordID  string `gorm:"size:64;uniqueIndex;not null"` // blob içindeki id alanı
	Data      string `gorm:"type:jsonb;not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (storedInspection) TableName() string { return "inspections" }

// PostgresBackend: Kayıt setini Postgres'te jsonb satırlar olarak tutar
type PostgresBackend struct {
	db *gorm.DB
}

func NewPostgres(dsn string) (*PostgresBackend, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("veritabanına bağlanılamadı: %w", err)
	}

	if err := db.AutoMigrate(&storedInspection{}); err != nil {
		return nil, fmt.Errorf("AutoMigrate hatası: %w", err)
	}

	return &PostgresBackend{db: db}, nil
}

func (p *PostgresBackend) ReadAll() ([][]byte, error) {
	var rows []storedInspection
	if err := p.db.Order("id ASC").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("kayıtlar okunamadı: %w", err)
	}

	blobs := make([][]byte, 0, len(rows))
	for _, row := range rows {
		blobs = append(blobs, []byte(row.Data))
	}
	return blobs, nil
}

func (p *PostgresBackend) WriteAll(blobs [][]byte) error {
	return p.db.Transaction(func(tx *gorm.DB) error {
		// Sözleşme tam set değişimi: önce hepsini sil, sonra yeniden yaz
		if err := tx.Exec("DELETE FROM inspections").Error; err != nil {
			return fmt.Errorf("eski kayıtlar silinemedi: %w", err)
		}

		for _, blob := range blobs {
			var idHolder struct {
				ID string `json:"id"`
			}
			if err := json.Unmarshal(blob, &idHolder); err != nil {
				return fmt.Errorf("kayıt id'si çözümlenemedi: %w", err)
			}

			row := storedInspection{
				RecordID: idHolder.ID,
				Data:     string(blob),
			}
			if err := tx.Create(&row).Error; err != nil {
				return fmt.Errorf("kayıt yazılamadı (id=%s): %w", idHolder.ID, err)
			}
		}
		return nil
	})
}
