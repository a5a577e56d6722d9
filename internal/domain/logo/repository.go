package logo

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"companyprofile/internal/asset"
)

type Repository struct {
	db    *gorm.DB
	table string
}

func NewRepository(db *gorm.DB, table string) *Repository {
	return &Repository{db: db, table: table}
}

// Migrate creates or updates the table of every kind.
func Migrate(db *gorm.DB, kinds ...Kind) error {
	for _, k := range kinds {
		if err := db.Table(k.Table).AutoMigrate(&Logo{}); err != nil {
			return err
		}
	}
	return nil
}

func (r *Repository) scoped(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).Table(r.table)
}

func (r *Repository) List(ctx context.Context) ([]*Logo, error) {
	logos := []*Logo{}
	err := r.scoped(ctx).Order("created_at DESC").Order("id DESC").Find(&logos).Error
	return logos, err
}

func (r *Repository) GetByID(ctx context.Context, id int64) (*Logo, error) {
	var l Logo
	err := r.scoped(ctx).Where("id = ?", id).First(&l).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, asset.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &l, nil
}

func (r *Repository) Create(ctx context.Context, l *Logo) error {
	return r.scoped(ctx).Create(l).Error
}

func (r *Repository) Update(ctx context.Context, l *Logo) error {
	return r.scoped(ctx).Save(l).Error
}

func (r *Repository) Delete(ctx context.Context, id int64) error {
	return r.scoped(ctx).Where("id = ?", id).Delete(&Logo{}).Error
}
