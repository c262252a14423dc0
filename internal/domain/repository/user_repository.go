package repository

import (
	"context"
	"time"

	"github.com/tu-usuario/inventario-ventas/internal/domain/entity"
)

// UserRepository define el puerto de persistencia para User (DIP).
type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	GetByID(ctx context.Context, id string) (*entity.User, error)
	GetByUsername(ctx context.Context, username string) (*entity.User, error)
	GetByEmail(ctx context.Context, email string) (*entity.User, error)
	Update(ctx context.Context, user *entity.User) error
	UpdateLastLogin(ctx context.Context, userID string, at time.Time) error
	List(ctx context.Context, includeInactive bool, limit, offset int) ([]*entity.User, error)
}
