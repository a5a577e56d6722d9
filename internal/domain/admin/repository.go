package admin

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"companyprofile/internal/database"
)

type Repository interface {
	List(ctx context.Context) ([]Admin, error)
	GetByID(ctx context.Context, id int64) (*Admin, error)
	GetByEmail(ctx context.Context, email string) (*Admin, error)
	EmailTakenByOther(ctx context.Context, email string, id int64) (bool, error)
	UpdateEmail(ctx context.Context, id int64, email string) (*Admin, error)
	UpdatePassword(ctx context.Context, id int64, hash string) error
	Create(ctx context.Context, a *Admin) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&Admin{})
}

func (r *repository) List(ctx context.Context) ([]Admin, error) {
	admins := []Admin{}
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&admins).Error; err != nil {
		return nil, err
	}
	return admins, nil
}

func (r *repository) GetByID(ctx context.Context, id int64) (*Admin, error) {
	var a Admin
	if err := r.db.WithContext(ctx).First(&a, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAdminNotFound
		}
		return nil, err
	}
	return &a, nil
}

func (r *repository) GetByEmail(ctx context.Context, email string) (*Admin, error) {
	var a Admin
	if err := r.db.WithContext(ctx).First(&a, "email = ?", email).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAdminNotFound
		}
		return nil, err
	}
	return &a, nil
}

func (r *repository) EmailTakenByOther(ctx context.Context, email string, id int64) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&Admin{}).
		Where("email = ? AND id <> ?", email, id).
		Count(&count).Error
	return count > 0, err
}

func (r *repository) UpdateEmail(ctx context.Context, id int64, email string) (*Admin, error) {
	res := r.db.WithContext(ctx).Model(&Admin{}).Where("id = ?", id).Update("email", email)
	if res.Error != nil {
		if database.IsUniqueViolation(res.Error) {
			return nil, ErrEmailInUse
		}
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, ErrAdminNotFound
	}
	return r.GetByID(ctx, id)
}

func (r *repository) UpdatePassword(ctx context.Context, id int64, hash string) error {
	res := r.db.WithContext(ctx).Model(&Admin{}).Where("id = ?", id).Update("password", hash)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrAdminNotFound
	}
	return nil
}

func (r *repository) Create(ctx context.Context, a *Admin) error {
	if err := r.db.WithContext(ctx).Create(a).Error; err != nil {
		if database.IsUniqueViolation(err) {
			return ErrEmailInUse
		}
		return err
	}
	return nil
}
