package database

import (
	"gorm.io/gorm"

	"github.com/endysusanto13/todo-backend/internal/adapter/repository"
	domainRepo "github.com/endysusanto13/todo-backend/internal/domain/repository"
)

// Repositories holds all repository instances
type Repositories struct {
	User  domainRepo.UserRepository
	List  domainRepo.ListRepository
	Task  domainRepo.TaskRepository
	Share domainRepo.ShareRepository
}

// NewRepositories creates new repository instances with database connection
func NewRepositories(db *gorm.DB) *Repositories {
	return &Repositories{
		User:  repository.NewUserRepository(db),
		List:  repository.NewListRepository(db),
		Task:  repository.NewTaskRepository(db),
		Share: repository.NewShareRepository(db),
	}
}
