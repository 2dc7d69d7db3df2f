package storage

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/dgraph-io/badger/v4"
)

// BadgerBackend: Gömülü anahtar-değer deposu. Kayıt setinin tamamı tek
// anahtar altında JSON dizisi olarak durur; read-all/write-all
// sözleşmesiyle birebir örtüşür.
type BadgerBackend struct {
	db *badger.DB
}

func NewBadger(path string) (*BadgerBackend, error) {
	opts := badger.DefaultOptions(path)
	opts.Logger = nil // badger'ın kendi logları gereksiz gürültü
	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("badger açılamadı: %w", err)
	}
	return &BadgerBackend{db: db}, nil
}

func (b *BadgerBackend) ReadAll() ([][]byte, error) {
	var data []byte
	err := b.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(DataKey))
		if errors.Is(err, badger.ErrKeyNotFound) {
			return nil
		}
		if err != nil {
			return err
		}
		data, err = item.ValueCopy(nil)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("badger okunamadı: %w", err)
	}
	if data == nil {
		return nil, nil
	}

	var raws []json.RawMessage
	if err := json.Unmarshal(data, &raws); err != nil {
		return nil, fmt.Errorf("badger verisi çözümlenemedi: %w", err)
	}
	blobs := make([][]byte, len(raws))
	for i, r := range raws {
		blobs[i] = []byte(r)
	}
	return blobs, nil
}

func (b *BadgerBackend) WriteAll(blobs [][]byte) error {
	raws := make([]json.RawMessage, len(blobs))
	for i, bl := range blobs {
		raws[i] = json.RawMessage(bl)
	}
	data, err := json.Marshal(raws)
	if err != nil {
		return fmt.Errorf("veri serileştirilemedi: %w", err)
	}

	err = b.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(DataKey), data)
	})
	if err != nil {
		return fmt.Errorf("badger yazılamadı: %w", err)
	}
	return nil
}

// Close: Veritabanını kapatır
func (b *BadgerBackend) Close() error {
	return b.db.Close()
}
