package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/endysusanto13/todo-backend/internal/domain/model"
	"github.com/endysusanto13/todo-backend/internal/domain/repository"
)

type TaskRepositoryImpl struct {
	db *gorm.DB
}

// NewTaskRepository creates a gorm-backed task repository.
func NewTaskRepository(db *gorm.DB) repository.TaskRepository {
	return &TaskRepositoryImpl{db: db}
}

func (r *TaskRepositoryImpl) Insert(ctx context.Context, task *model.Task) (*model.Task, error) {
	if err := r.db.WithContext(ctx).Create(task).Error; err != nil {
		return nil, err
	}
	return task, nil
}

func (r *TaskRepositoryImpl) FindByID(ctx context.Context, id int64) (*model.Task, error) {
	var task model.Task
	if err := r.db.WithContext(ctx).First(&task, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &task, nil
}

// FindByListAndTitle matches non-deleted tasks only, so a deleted title can
// be reused within the list.
func (r *TaskRepositoryImpl) FindByListAndTitle(ctx context.Context, listID int64, title string) (*model.Task, error) {
	var task model.Task
	err := r.db.WithContext(ctx).
		Where("list_id = ? AND title = ? AND is_deleted = ?", listID, title, false).
		First(&task).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &task, nil
}

func (r *TaskRepositoryImpl) FindByListID(ctx context.Context, listID int64) ([]model.Task, error) {
	var tasks []model.Task
	err := r.db.WithContext(ctx).
		Where("list_id = ? AND is_deleted = ?", listID, false).
		Order("id").
		Find(&tasks).Error
	if err != nil {
		return nil, err
	}
	return tasks, nil
}

func (r *TaskRepositoryImpl) UpdateTitle(ctx context.Context, userID int64, title string, id int64) (*model.Task, error) {
	err := r.db.WithContext(ctx).Model(&model.Task{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{"title": title, "update_user_id": userID}).Error
	if err != nil {
		return nil, err
	}
	return r.FindByID(ctx, id)
}

func (r *TaskRepositoryImpl) SoftDelete(ctx context.Context, userID, id int64) (*model.Task, error) {
	err := r.db.WithContext(ctx).Model(&model.Task{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{"is_deleted": true, "update_user_id": userID}).Error
	if err != nil {
		return nil, err
	}
	return r.FindByID(ctx, id)
}
