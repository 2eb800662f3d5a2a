package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/endysusanto13/todo-backend/internal/domain/model"
	"github.com/endysusanto13/todo-backend/internal/domain/repository"
)

type ListRepositoryImpl struct {
	db *gorm.DB
}

// NewListRepository creates a gorm-backed list repository.
func NewListRepository(db *gorm.DB) repository.ListRepository {
	return &ListRepositoryImpl{db: db}
}

func (r *ListRepositoryImpl) Insert(ctx context.Context, list *model.List) (*model.List, error) {
	if err := r.db.WithContext(ctx).Create(list).Error; err != nil {
		return nil, err
	}
	return list, nil
}

// FindByID returns the list regardless of its deletion flag; callers decide
// how a soft-deleted row should read.
func (r *ListRepositoryImpl) FindByID(ctx context.Context, id int64) (*model.List, error) {
	var list model.List
	if err := r.db.WithContext(ctx).First(&list, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &list, nil
}

// FindByCreatorAndTitle matches non-deleted lists only, so a deleted title
// can be reused.
func (r *ListRepositoryImpl) FindByCreatorAndTitle(ctx context.Context, creatorID int64, title string) (*model.List, error) {
	var list model.List
	err := r.db.WithContext(ctx).
		Where("create_user_id = ? AND title = ? AND is_deleted = ?", creatorID, title, false).
		First(&list).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &list, nil
}

func (r *ListRepositoryImpl) ListByCreator(ctx context.Context, creatorID int64) ([]model.List, error) {
	var lists []model.List
	err := r.db.WithContext(ctx).
		Where("create_user_id = ? AND is_deleted = ?", creatorID, false).
		Order("id").
		Find(&lists).Error
	if err != nil {
		return nil, err
	}
	return lists, nil
}

func (r *ListRepositoryImpl) UpdateTitle(ctx context.Context, userID int64, title string, id int64) (*model.List, error) {
	err := r.db.WithContext(ctx).Model(&model.List{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{"title": title, "update_user_id": userID}).Error
	if err != nil {
		return nil, err
	}
	return r.FindByID(ctx, id)
}

// MarkShared flips is_shared to true. The flag is monotonic and never reset.
func (r *ListRepositoryImpl) MarkShared(ctx context.Context, id int64) (*model.List, error) {
	err := r.db.WithContext(ctx).Model(&model.List{}).
		Where("id = ?", id).
		Update("is_shared", true).Error
	if err != nil {
		return nil, err
	}
	return r.FindByID(ctx, id)
}

// SoftDelete flips is_deleted to true and records who did it. The row stays.
func (r *ListRepositoryImpl) SoftDelete(ctx context.Context, userID, id int64) (*model.List, error) {
	err := r.db.WithContext(ctx).Model(&model.List{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{"is_deleted": true, "update_user_id": userID}).Error
	if err != nil {
		return nil, err
	}
	return r.FindByID(ctx, id)
}
