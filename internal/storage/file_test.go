package storage

import (
	"os"
	"path/filepath"
	"testing"
)

func TestFileBackendRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "inspections.json")
	fb := NewFile(path)

	blobs := [][]byte{
		[]byte(`{"id":"ins_1","product":"Shirt"}`),
		[]byte(`{"id":"ins_2","product":"Pants"}`),
	}
	if err := fb.WriteAll(blobs); err != nil {
		t.Fatalf("WriteAll hatası: %v", err)
	}

	got, err := fb.ReadAll()
	if err != nil {
		t.Fatalf("ReadAll hatası: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("2 blob bekleniyordu, geldi: %d", len(got))
	}
}

func TestFileBackendMissingFile(t *testing.T) {
	fb := NewFile(filepath.Join(t.TempDir(), "yok.json"))

	got, err := fb.ReadAll()
	if err != nil {
		t.Fatalf("eksik dosya hata döndürmemeli, geldi: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("boş set bekleniyordu, geldi: %d blob", len(got))
	}
}

func TestFileBackendCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bozuk.json")
	if err := os.WriteFile(path, []byte("{{{bozuk"), 0o644); err != nil {
		t.Fatal(err)
	}

	fb := NewFile(path)
	if _, err := fb.ReadAll(); err == nil {
		t.Error("bozuk dosya için hata bekleniyordu")
	}
}

func TestFileBackendOverwrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "inspections.json")
	fb := NewFile(path)

	if err := fb.WriteAll([][]byte{[]byte(`{"id":"ins_1"}`)}); err != nil {
		t.Fatal(err)
	}
	if err := fb.WriteAll([][]byte{[]byte(`{"id":"ins_2"}`), []byte(`{"id":"ins_3"}`)}); err != nil {
		t.Fatal(err)
	}

	got, err := fb.ReadAll()
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 2 {
		t.Errorf("yazma tam set değişimi olmalı: 2 blob bekleniyordu, geldi %d", len(got))
	}
}

func TestMemoryBackendIsolation(t *testing.T) {
	mb := NewMemory()
	src := [][]byte{[]byte(`{"id":"ins_1"}`)}
	if err := mb.WriteAll(src); err != nil {
		t.Fatal(err)
	}

	// Dışarıdaki slice'ı değiştirmek depoyu etkilememeli
	src[0][0] = 'X'

	got, err := mb.ReadAll()
	if err != nil {
		t.Fatal(err)
	}
	if string(got[0]) != `{"id":"ins_1"}` {
		t.Errorf("backend kopya saklamalı, geldi: %s", got[0])
	}
}
