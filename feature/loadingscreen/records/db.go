package records

import (
	"context"
	"fmt"
	"time"

	"loadscreen-export/core/reconcile"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// TableName is the records table.
const TableName = "loading_screen_records"

// Columns lists the columns the store relies on.
var Columns = []string{"seq", "item_id", "name", "image_link", "crc32", "size", "full_path", "created_at"}

// Row is one stored record.
type Row struct {
	Seq       uint      `gorm:"column:seq;primaryKey;autoIncrement"`
	ItemID    int       `gorm:"column:item_id;not null"`
	Name      string    `gorm:"column:name;size:255;not null"`
	ImageLink string    `gorm:"column:image_link;size:255"`
	Crc32     uint32    `gorm:"column:crc32;not null;uniqueIndex:idx_export_key"`
	Size      uint32    `gorm:"column:size;not null;uniqueIndex:idx_export_key"`
	FullPath  string    `gorm:"column:full_path;size:512;not null;uniqueIndex:idx_export_key"`
	CreatedAt time.Time `gorm:"column:created_at"`
}

// TableName implements gorm's Tabler.
func (Row) TableName() string {
	return TableName
}

func rowOf(r reconcile.Record) Row {
	return Row{
		ItemID:    r.ID,
		Name:      r.Name,
		ImageLink: r.ImageLink,
		Crc32:     r.Crc32,
		Size:      r.Size,
		FullPath:  r.FullPath,
	}
}

func (r Row) record() reconcile.Record {
	return reconcile.Record{
		ID:        r.ItemID,
		Name:      r.Name,
		ImageLink: r.ImageLink,
		Crc32:     r.Crc32,
		Size:      r.Size,
		FullPath:  r.FullPath,
	}
}

// DBStore keeps records in a SQL table.
type DBStore struct {
	db *gorm.DB
}

// NewDBStore migrates the records table and returns the store.
func NewDBStore(db *gorm.DB) (*DBStore, error) {
	if err := db.AutoMigrate(&Row{}); err != nil {
		return nil, fmt.Errorf("migrate %s: %w", TableName, err)
	}
	return &DBStore{db: db}, nil
}

// Location implements Store.
func (s *DBStore) Location() string {
	return s.db.Dialector.Name() + ":" + TableName
}

// Load implements Store.
func (s *DBStore) Load(ctx context.Context) ([]reconcile.Record, error) {
	var rows []Row
	if err := s.db.WithContext(ctx).Order("seq").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("load records: %w", err)
	}
	out := make([]reconcile.Record, len(rows))
	for i, r := range rows {
		out[i] = r.record()
	}
	return out, nil
}

// Save implements Store. Rows whose export key already exists are left alone.
func (s *DBStore) Save(ctx context.Context, records []reconcile.Record) error {
	if len(records) == 0 {
		return nil
	}
	rows := make([]Row, len(records))
	for i, r := range records {
		rows[i] = rowOf(r)
	}
	err := s.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		CreateInBatches(&rows, 200).Error
	if err != nil {
		return fmt.Errorf("save records: %w", err)
	}
	return nil
}
