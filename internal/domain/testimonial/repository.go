package testimonial

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

func Migrate(db *gorm.DB, kinds ...Kind) error {
	for _, k := range kinds {
		if err := db.Table(k.Table).AutoMigrate(&Testimonial{}); err != nil {
			return err
		}
	}
	return nil
}

func (r *Repository) List(ctx context.Context) ([]*Testimonial, error) {
	out := []*Testimonial{}
	err := r.db.WithContext(ctx).Table(r.table).
		Order("created_at DESC").Order("id DESC").
		Find(&out).Error
	return out, err
}

func (r *Repository) GetByID(ctx context.Context, id int64) (*Testimonial, error) {
	var t Testimonial
	err := r.db.WithContext(ctx).Table(r.table).Where("id = ?", id).First(&t).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, asset.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *Repository) Create(ctx context.Context, t *Testimonial) error {
	return r.db.WithContext(ctx).Table(r.table).Create(t).Error
}

func (r *Repository) Update(ctx context.Context, t *Testimonial) error {
	return r.db.WithContext(ctx).Table(r.table).Save(t).Error
}

func (r *Repository) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Table(r.table).Where("id = ?", id).Delete(&Testimonial{}).Error
}
