package storage

// DataKey: Kayıt setinin saklandığı anahtar (badger ve dosya adı varsayılanı)
const DataKey = "qms_inspections_v2"

// Backend: Dış kalıcılık sözleşmesi. Kısmi yazma, sorgu dili veya
// transaction varsayılmaz; sözleşme "hepsini oku, hepsini yaz"dır.
// Çok istemcili kullanımda yazmaları serileştirmek backend'in işidir.
type Backend interface {
	// ReadAll: Tüm kayıt blob'larını döndürür
	ReadAll() ([][]byte, error)
	// WriteAll: Kayıt setinin tamamını yazar, öncekinin yerine geçer
	WriteAll(blobs [][]byte) error
}
