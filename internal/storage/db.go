// Package storage persists parse runs so the dashboard can list and
// reload past uploads. The parser itself stays stateless; persistence is
// a caller-side concern.
package storage

import (
	"errors"
	"fmt"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// ErrRunNotFound is returned when the requested run id does not exist.
var ErrRunNotFound = errors.New("parse run not found")

type Database struct {
	db *gorm.DB
}

func NewDatabase(dbPath string) (*Database, error) {
	db, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	if err := db.AutoMigrate(&ParseRun{}, &StoredTransaction{}); err != nil {
		return nil, fmt.Errorf("failed to migrate schema: %w", err)
	}

	return &Database{db: db}, nil
}

// SaveRun stores a run and its transactions in one create.
func (d *Database) SaveRun(run *ParseRun) error {
	if err := d.db.Create(run).Error; err != nil {
		return fmt.Errorf("failed to save parse run: %w", err)
	}
	return nil
}

// ListRuns returns run headers, newest first, without transactions.
func (d *Database) ListRuns() ([]ParseRun, error) {
	var runs []ParseRun
	if err := d.db.Order("created_at desc").Find(&runs).Error; err != nil {
		return nil, fmt.Errorf("failed to list parse runs: %w", err)
	}
	return runs, nil
}

// GetRun loads one run with its transactions.
func (d *Database) GetRun(id string) (*ParseRun, error) {
	var run ParseRun
	err := d.db.Preload("Transactions").First(&run, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrRunNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load parse run %q: %w", id, err)
	}
	return &run, nil
}

// DeleteRun removes a run and its transactions.
func (d *Database) DeleteRun(id string) error {
	if err := d.db.Where("run_id = ?", id).Delete(&StoredTransaction{}).Error; err != nil {
		return fmt.Errorf("failed to delete run transactions: %w", err)
	}
	if err := d.db.Delete(&ParseRun{}, "id = ?", id).Error; err != nil {
		return fmt.Errorf("failed to delete parse run: %w", err)
	}
	return nil
}
