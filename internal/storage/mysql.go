package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/go-sql-driver/mysql"
	"gorm.io/datatypes"
	gormmysql "gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type kvEntry struct {
	Name      string         `gorm:"primaryKey;column:name;type:varchar(191)"`
	Value     datatypes.JSON `gorm:"column:value;type:json;not null"`
	UpdatedAt time.Time      `gorm:"column:updated_at;type:datetime(3);not null"`
}

func (kvEntry) TableName() string { return "kv_entries" }

const createKVTable = `
CREATE TABLE IF NOT EXISTS kv_entries (
  name VARCHAR(191) NOT NULL,
  value JSON NOT NULL,
  updated_at DATETIME(3) NOT NULL DEFAULT CURRENT_TIMESTAMP(3),
  PRIMARY KEY (name)
) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4;`

// MySQL keeps values in the kv_entries table. Only JSON values are accepted.
type MySQL struct{ db *gorm.DB }

func NewMySQL(db *gorm.DB) *MySQL { return &MySQL{db: db} }

// OpenMySQL validates dsn, connects and makes sure kv_entries exists.
func OpenMySQL(dsn string) (*MySQL, error) {
	if _, err := mysql.ParseDSN(dsn); err != nil {
		return nil, fmt.Errorf("invalid mysql dsn: %w", err)
	}
	db, err := gorm.Open(gormmysql.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("connect mysql: %w", err)
	}
	if err := EnsureSchema(db); err != nil {
		return nil, err
	}
	return NewMySQL(db), nil
}

func EnsureSchema(db *gorm.DB) error {
	if err := db.Exec(createKVTable).Error; err != nil {
		return fmt.Errorf("create kv_entries: %w", err)
	}
	return nil
}

func (m *MySQL) Get(ctx context.Context, key string) ([]byte, error) {
	var e kvEntry
	err := m.db.WithContext(ctx).First(&e, "name = ?", key).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return []byte(e.Value), nil
}

func (m *MySQL) Set(ctx context.Context, key string, value []byte) error {
	if !json.Valid(value) {
		return fmt.Errorf("storage: value for %q is not JSON", key)
	}
	e := kvEntry{Name: key, Value: datatypes.JSON(value), UpdatedAt: time.Now()}
	return m.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "name"}},
			DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
		}).
		Create(&e).Error
}

func (m *MySQL) Delete(ctx context.Context, key string) error {
	return m.db.WithContext(ctx).Delete(&kvEntry{}, "name = ?", key).Error
}

func (m *MySQL) String() string { return "mysql(kv_entries)" }
