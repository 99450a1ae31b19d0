package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	userrepo "github.com/yungbote/maturitypath-backend/internal/data/repos/user"
	types "github.com/yungbote/maturitypath-backend/internal/domain"
	"github.com/yungbote/maturitypath-backend/internal/pkg/dbctx"
	"github.com/yungbote/maturitypath-backend/internal/platform/logger"
)

var ErrUserNotFound = fmt.Errorf("user not found")

type UserService interface {
	GetMe(ctx context.Context, userID uuid.UUID) (*types.User, error)
	UpdateName(ctx context.Context, userID uuid.UUID, firstName, lastName string) (*types.User, error)
}

type userService struct {
	db    *gorm.DB
	log   *logger.Logger
	users userrepo.UserRepo
}

func NewUserService(db *gorm.DB, baseLog *logger.Logger, users userrepo.UserRepo) UserService {
	return &userService{
		db:    db,
		log:   baseLog.With("service", "UserService"),
		users: users,
	}
}

func (s *userService) GetMe(ctx context.Context, userID uuid.UUID) (*types.User, error) {
	rows, err := s.users.GetByIDs(dbctx.Context{Ctx: ctx}, []uuid.UUID{userID})
	if err != nil {
		return nil, fmt.Errorf("failed to load user: %w", err)
	}
	if len(rows) == 0 {
		return nil, ErrUserNotFound
	}
	return rows[0], nil
}

func (s *userService) UpdateName(ctx context.Context, userID uuid.UUID, firstName, lastName string) (*types.User, error) {
	firstName = strings.TrimSpace(firstName)
	lastName = strings.TrimSpace(lastName)
	if firstName == "" || lastName == "" {
		return nil, fmt.Errorf("first and last name are required")
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return s.users.UpdateName(dbctx.Context{Ctx: ctx, Tx: tx}, userID, firstName, lastName)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to update name: %w", err)
	}
	return s.GetMe(ctx, userID)
}
