package tabular

import (
	"context"
	"time"

	"github.com/jhoicas/stockflow-api/internal/domain"
	"github.com/jhoicas/stockflow-api/internal/domain/entity"
	"github.com/jhoicas/stockflow-api/internal/domain/repository"
)

var _ repository.UserRepository = (*UserRepo)(nil)

// UserRepo implementación de UserRepository sobre el almacén tabular.
type UserRepo struct {
	store Store
}

// NewUserRepository construye el adaptador de usuarios.
func NewUserRepository(store Store) *UserRepo {
	return &UserRepo{store: store}
}

// Create persiste un usuario nuevo.
func (r *UserRepo) Create(ctx context.Context, u *entity.User) error {
	if u.ID == "" {
		u.ID = NewID("USR")
	}
	now := time.Now()
	if u.CreatedAt.IsZero() {
		u.CreatedAt = now
	}
	u.UpdatedAt = now
	values := map[string]string{
		"id":            u.ID,
		"email":         u.Email,
		"password_hash": u.PasswordHash,
		"name":          u.Name,
		"role":          u.Role,
		"area":          u.Area,
		"status":        u.Status,
		"created_at":    formatTime(u.CreatedAt),
		"updated_at":    formatTime(u.UpdatedAt),
	}
	if err := r.store.Append(ctx, TableUsers, values); err != nil {
		return domain.NewStoreError("append", err)
	}
	return nil
}

// FindByEmail busca un usuario por email. Devuelve nil, nil si no existe.
func (r *UserRepo) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	table, err := r.store.ReadAll(ctx, TableUsers)
	if err != nil {
		return nil, domain.NewStoreError("read_all", err)
	}
	row := table.FindRow("email", email)
	if row == nil {
		return nil, nil
	}
	return userFromRow(*row), nil
}

// GetByID busca un usuario por id. Devuelve nil, nil si no existe.
func (r *UserRepo) GetByID(ctx context.Context, id string) (*entity.User, error) {
	table, err := r.store.ReadAll(ctx, TableUsers)
	if err != nil {
		return nil, domain.NewStoreError("read_all", err)
	}
	row := table.FindRow("id", id)
	if row == nil {
		return nil, nil
	}
	return userFromRow(*row), nil
}

func userFromRow(row Row) *entity.User {
	return &entity.User{
		ID:           row.Get("id"),
		Email:        row.Get("email"),
		PasswordHash: row.Get("password_hash"),
		Name:         row.Get("name"),
		Role:         row.Get("role"),
		Area:         row.Get("area"),
		Status:       row.Get("status"),
		CreatedAt:    parseTime(row.Get("created_at")),
		UpdatedAt:    parseTime(row.Get("updated_at")),
	}
}
