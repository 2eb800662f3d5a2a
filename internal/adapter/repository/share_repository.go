package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/endysusanto13/todo-backend/internal/domain/model"
	"github.com/endysusanto13/todo-backend/internal/domain/repository"
)

type ShareRepositoryImpl struct {
	db *gorm.DB
}

// NewShareRepository creates a gorm-backed share grant repository.
func NewShareRepository(db *gorm.DB) repository.ShareRepository {
	return &ShareRepositoryImpl{db: db}
}

func (r *ShareRepositoryImpl) Insert(ctx context.Context, grant *model.ListShare) (*model.ListShare, error) {
	if err := r.db.WithContext(ctx).Create(grant).Error; err != nil {
		return nil, err
	}
	return grant, nil
}

// FindByListID returns every grant for the list, revoked ones included.
// Callers filter on IsDeleted; access checks need live grants only while
// audit views want the full history.
func (r *ShareRepositoryImpl) FindByListID(ctx context.Context, listID int64) ([]model.ListShare, error) {
	var grants []model.ListShare
	if err := r.db.WithContext(ctx).Where("list_id = ?", listID).Order("id").Find(&grants).Error; err != nil {
		return nil, err
	}
	return grants, nil
}

func (r *ShareRepositoryImpl) FindBySharedByEmail(ctx context.Context, email string) ([]model.ListShare, error) {
	var grants []model.ListShare
	err := r.db.WithContext(ctx).
		Where("shared_by_email = ? AND is_deleted = ?", email, false).
		Order("id").
		Find(&grants).Error
	if err != nil {
		return nil, err
	}
	return grants, nil
}

func (r *ShareRepositoryImpl) FindBySharedWithEmail(ctx context.Context, email string) ([]model.ListShare, error) {
	var grants []model.ListShare
	err := r.db.WithContext(ctx).
		Where("shared_with_email = ? AND is_deleted = ?", email, false).
		Order("id").
		Find(&grants).Error
	if err != nil {
		return nil, err
	}
	return grants, nil
}

// Revoke soft-deletes the live grant matching the tuple and returns it.
// Returns (nil, nil) when no live grant matches; revoked rows are never
// restored, a later re-share inserts a fresh row.
func (r *ShareRepositoryImpl) Revoke(ctx context.Context, listID int64, byEmail, withEmail string) (*model.ListShare, error) {
	var grant model.ListShare
	err := r.db.WithContext(ctx).
		Where("list_id = ? AND shared_by_email = ? AND shared_with_email = ? AND is_deleted = ?",
			listID, byEmail, withEmail, false).
		First(&grant).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	if err := r.db.WithContext(ctx).Model(&grant).Update("is_deleted", true).Error; err != nil {
		return nil, err
	}
	grant.IsDeleted = true
	return &grant, nil
}
