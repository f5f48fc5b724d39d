package source

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"
)

// DefaultTable is the table read by the database driver unless configured otherwise.
const DefaultTable = "registry_files"

// File is one registry file stored in the database.
type File struct {
	Path      string `gorm:"primaryKey;size:512"`
	Content   []byte
	UpdatedAt time.Time
}

// TableName implements gorm's tabler.
func (File) TableName() string {
	return DefaultTable
}

// Table reads registry files from a database table keyed by path.
type Table struct {
	db    *gorm.DB
	table string
}

// NewTable creates a source reading from table. An empty table uses DefaultTable.
func NewTable(db *gorm.DB, table string) *Table {
	if table == "" {
		table = DefaultTable
	}
	return &Table{db: db, table: table}
}

// ReadFile returns the content column of the row for name.
func (s *Table) ReadFile(ctx context.Context, name string) ([]byte, error) {
	if !ValidName(name) {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, name)
	}

	var f File
	err := s.db.WithContext(ctx).
		Table(s.table).
		Select("content").
		Where("path = ?", name).
		Take(&f).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, name)
		}
		return nil, fmt.Errorf("failed to query %s for %s: %w", s.table, name, err)
	}
	return f.Content, nil
}
