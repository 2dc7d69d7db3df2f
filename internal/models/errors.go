package models

import (
	"fmt"
	"strings"
)

// FieldError: Tek bir alanın doğrulama hatası
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError: Oluşturma sırasındaki girdi hataları.
// İlk hatada durmaz, TÜM hatalı alanları biriktirir ki çağıran
// hepsini tek seferde raporlayabilsin.
type ValidationError struct {
	Fields []FieldError `json:"fields"`
}

func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return "doğrulama hatası"
	}
	parts := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		parts = append(parts, f.Field+": "+f.Message)
	}
	return "doğrulama hatası: " + strings.Join(parts, "; ")
}

// Add: Hatalı alan ekle
func (e *ValidationError) Add(field, message string) {
	e.Fields = append(e.Fields, FieldError{Field: field, Message: message})
}

// HasErrors: En az bir alan hatalı mı?
func (e *ValidationError) HasErrors() bool {
	return len(e.Fields) > 0
}

// CorruptRecordError: Kalıcı depodan gelen blob bozuk
type CorruptRecordError struct {
	Reason string
	Err    error
}

func (e *CorruptRecordError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("bozuk kayıt: %s: %v", e.Reason, e.Err)
	}
	return "bozuk kayıt: " + e.Reason
}

func (e *CorruptRecordError) Unwrap() error { return e.Err }

// NotFoundError: Bilinmeyen id ile işlem
type NotFoundError struct {
	ID string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("kayıt bulunamadı: %s", e.ID)
}

// ConsistencyError: Yazma sırasında tespit edilen benzersizlik ihlali.
// Tek yazarlı kullanımda oluşmamalı, bozulmuş depoya karşı korumadır.
type ConsistencyError struct {
	Reason string
}

func (e *ConsistencyError) Error() string {
	return "tutarlılık hatası: " + e.Reason
}

// PersistenceError: Depo yazma hatası. Çağırana yutulmadan iletilir,
// kalıcılığın gerçekleşmediği bilinmek zorundadır.
type PersistenceError struct {
	Op  string
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("depo hatası (%s): %v", e.Op, e.Err)
}

func (e *PersistenceError) Unwrap() error { return e.Err }
