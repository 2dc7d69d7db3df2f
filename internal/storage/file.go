package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// FileBackend: Kayıt setini tek bir JSON dosyasında tutar.
// Tarayıcıdaki localStorage'ın dosya sistemi karşılığı; tek yazarlı
// kullanım için yeterlidir.
type FileBackend struct {
	path string
}

func NewFile(path string) *FileBackend {
	return &FileBackend{path: path}
}

func (f *FileBackend) ReadAll() ([][]byte, error) {
	data, err := os.ReadFile(f.path)
	if os.IsNotExist(err) {
		// Dosya yoksa boş set; ilk açılışta store seed verisini yazar
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("veri dosyası okunamadı: %w", err)
	}

	var raws []json.RawMessage
	if err := json.Unmarshal(data, &raws); err != nil {
		return nil, fmt.Errorf("veri dosyası çözümlenemedi: %w", err)
	}

	blobs := make([][]byte, len(raws))
	for i, r := range raws {
		blobs[i] = []byte(r)
	}
	return blobs, nil
}

func (f *FileBackend) WriteAll(blobs [][]byte) error {
	raws := make([]json.RawMessage, len(blobs))
	for i, b := range blobs {
		raws[i] = json.RawMessage(b)
	}

	data, err := json.MarshalIndent(raws, "", "  ")
	if err != nil {
		return fmt.Errorf("veri serileştirilemedi: %w", err)
	}

	// Önce geçici dosyaya yaz, sonra yerine taşı; yarım yazma dosyayı bozmasın
	dir := filepath.Dir(f.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("veri klasörü oluşturulamadı: %w", err)
	}
	tmp, err := os.CreateTemp(dir, ".qms-*.tmp")
	if err != nil {
		return fmt.Errorf("geçici dosya oluşturulamadı: %w", err)
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("veri dosyası yazılamadı: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("veri dosyası kapatılamadı: %w", err)
	}
	if err := os.Rename(tmpName, f.path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("veri dosyası taşınamadı: %w", err)
	}
	return nil
}
