package repository

import (
	"context"
	"strings"

	"resqconnect/internal/common"
	"resqconnect/internal/domain/model"
	"resqconnect/internal/platform/storage"

	"github.com/rs/zerolog"
)

type UserRepository interface {
	List(ctx context.Context) []model.User
	FindByID(ctx context.Context, id string) (*model.User, error)
	FindByEmail(ctx context.Context, email string) (*model.User, error)
	Create(ctx context.Context, user *model.User) error
	Update(ctx context.Context, user *model.User) error
	Delete(ctx context.Context, id string) error
	ReplaceAll(ctx context.Context, users []model.User) error
}

type jsonUserRepository struct {
	users *storage.Collection[model.User]
}

func NewJSONUserRepository(backend storage.Backend, log zerolog.Logger) UserRepository {
	return &jsonUserRepository{
		users: storage.NewCollection[model.User](backend, "users", log),
	}
}

func (r *jsonUserRepository) List(ctx context.Context) []model.User {
	return r.users.Read()
}

func (r *jsonUserRepository) FindByID(ctx context.Context, id string) (*model.User, error) {
	user, ok := r.users.FindByID(id)
	if !ok {
		return nil, common.ErrNotFound
	}
	return &user, nil
}

func (r *jsonUserRepository) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	for _, user := range r.users.Read() {
		if strings.EqualFold(user.Email, email) {
			u := user
			return &u, nil
		}
	}
	return nil, common.ErrNotFound
}

func (r *jsonUserRepository) Create(ctx context.Context, user *model.User) error {
	users := r.users.Read()
	return r.users.Write(append(users, *user))
}

func (r *jsonUserRepository) Update(ctx context.Context, user *model.User) error {
	users := r.users.Read()
	index := -1
	for i := range users {
		if users[i].ID == user.ID {
			index = i
			break
		}
	}
	if index == -1 {
		return common.ErrNotFound
	}
	users[index] = *user
	return r.users.Write(users)
}

func (r *jsonUserRepository) Delete(ctx context.Context, id string) error {
	users := r.users.Read()
	filtered := make([]model.User, 0, len(users))
	for _, user := range users {
		if user.ID != id {
			filtered = append(filtered, user)
		}
	}
	if len(filtered) == len(users) {
		return common.ErrNotFound
	}
	return r.users.Write(filtered)
}

func (r *jsonUserRepository) ReplaceAll(ctx context.Context, users []model.User) error {
	return r.users.Write(users)
}
