package cmd

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// CompiledUnit is one cached row: the last known content hash and the
// pretty-printed program summary for a file. The check command only
// records rows; it does not consult them, so every file is re-checked
// and its diagnostics re-printed on each invocation.
type CompiledUnit struct {
	Path        string `gorm:"primaryKey"`
	ContentHash string
	Summary     string
	RunID       string
	CheckedAt   time.Time
}

// CacheStore wraps a single sqlite-backed gorm handle. It is opt-in
// (--cache path) and lives entirely in cmd/noslc; the core checker
// never knows it exists.
type CacheStore struct {
	db *gorm.DB
}

// OpenCache opens (creating if necessary) a compiled-unit cache at path.
func OpenCache(path string) (*CacheStore, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{Logger: logger.Discard})
	if err != nil {
		return nil, fmt.Errorf("open cache: %w", err)
	}
	if err := db.AutoMigrate(&CompiledUnit{}); err != nil {
		return nil, fmt.Errorf("migrate cache: %w", err)
	}
	return &CacheStore{db: db}, nil
}

// Hash returns the content hash CacheStore uses to detect unchanged files.
func Hash(content string) string {
	sum := sha256.Sum256([]byte(content))
	return hex.EncodeToString(sum[:])
}

// Lookup returns the cached unit for path, if one is recorded and its
// content hash still matches.
func (c *CacheStore) Lookup(path, contentHash string) (*CompiledUnit, bool) {
	var unit CompiledUnit
	if err := c.db.First(&unit, "path = ?", path).Error; err != nil {
		return nil, false
	}
	if unit.ContentHash != contentHash {
		return nil, false
	}
	return &unit, true
}

// Record upserts the cache entry for path with a fresh run identifier.
func (c *CacheStore) Record(path, contentHash, summary string) error {
	unit := CompiledUnit{
		Path:        path,
		ContentHash: contentHash,
		Summary:     summary,
		RunID:       uuid.NewString(),
		CheckedAt:   time.Now(),
	}
	return c.db.Save(&unit).Error
}

// Stats reports human-readable cache age and row count for the cache-stats subcommand.
func (c *CacheStore) Stats() (rows int64, oldest, newest string, err error) {
	if err = c.db.Model(&CompiledUnit{}).Count(&rows).Error; err != nil {
		return 0, "", "", err
	}
	var first, last CompiledUnit
	if err := c.db.Order("checked_at asc").First(&first).Error; err == nil {
		oldest = humanize.Time(first.CheckedAt)
	}
	if err := c.db.Order("checked_at desc").First(&last).Error; err == nil {
		newest = humanize.Time(last.CheckedAt)
	}
	return rows, oldest, newest, nil
}
