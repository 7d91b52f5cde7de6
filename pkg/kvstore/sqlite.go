package kvstore

import (
	"errors"
	"fmt"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// kvRecord is the single table behind the sqlite driver.
type kvRecord struct {
	Key   string `gorm:"primaryKey;size:255"`
	Value string `gorm:"type:text"`
}

func (kvRecord) TableName() string { return "kv_records" }

// SQLiteDriver persists keys in an embedded sqlite database via gorm.
type SQLiteDriver struct {
	db *gorm.DB
}

// NewSQLiteDriver opens (or creates) the database at dsn and ensures the
// kv_records table exists.
func NewSQLiteDriver(dsn string) (*SQLiteDriver, error) {
	gormCfg := &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent), // pkg/logger speaks for us
	}

	db, err := gorm.Open(sqlite.Open(dsn), gormCfg)
	if err != nil {
		return nil, fmt.Errorf("kvstore/sqlite: open: %w", err)
	}
	if err := db.AutoMigrate(&kvRecord{}); err != nil {
		return nil, fmt.Errorf("kvstore/sqlite: migrate: %w", err)
	}
	return &SQLiteDriver{db: db}, nil
}

func (d *SQLiteDriver) Get(key string) ([]byte, error) {
	var rec kvRecord
	err := d.db.First(&rec, "key = ?", key).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("kvstore/sqlite: get %s: %w", key, err)
	}
	return []byte(rec.Value), nil
}

func (d *SQLiteDriver) Put(key string, value []byte) error {
	rec := kvRecord{Key: key, Value: string(value)}
	if err := d.db.Save(&rec).Error; err != nil {
		return fmt.Errorf("kvstore/sqlite: put %s: %w", key, err)
	}
	return nil
}

func (d *SQLiteDriver) Delete(key string) error {
	if err := d.db.Delete(&kvRecord{}, "key = ?", key).Error; err != nil {
		return fmt.Errorf("kvstore/sqlite: delete %s: %w", key, err)
	}
	return nil
}
