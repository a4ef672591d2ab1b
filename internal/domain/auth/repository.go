package auth

import (
	"context"
	"errors"

	"github.com/ayuu-te/studio-look/internal/models"
	"github.com/ayuu-te/studio-look/internal/store"
)

// UserRepository defines user data access needed by auth
type UserRepository interface {
	Create(ctx context.Context, u models.User) error
	GetByEmail(ctx context.Context, email string) (models.User, bool, error)
	GetByID(ctx context.Context, id string) (models.User, bool, error)
}

type userRepository struct {
	st *store.Store
}

// NewUserRepository creates user repository backed by the entity store
func NewUserRepository(st *store.Store) UserRepository {
	return &userRepository{st: st}
}

func (r *userRepository) Create(ctx context.Context, u models.User) error {
	err := r.st.Write(ctx, func(tx *store.Tx) error {
		return tx.InsertUser(u)
	})
	if errors.Is(err, store.ErrDuplicateEmail) {
		return ErrEmailAlreadyExists
	}
	return err
}

func (r *userRepository) GetByEmail(ctx context.Context, email string) (models.User, bool, error) {
	var (
		u  models.User
		ok bool
	)
	err := r.st.Read(ctx, func(tx *store.Tx) error {
		u, ok = tx.UserByEmail(email)
		return nil
	})
	return u, ok, err
}

func (r *userRepository) GetByID(ctx context.Context, id string) (models.User, bool, error) {
	var (
		u  models.User
		ok bool
	)
	err := r.st.Read(ctx, func(tx *store.Tx) error {
		u, ok = tx.User(id)
		return nil
	})
	return u, ok, err
}
