package contracts

import (
	"carepulse-service/internal/app/models"
	"carepulse-service/internal/pkg/dto/requests"
	"context"
)

type UserUsecase interface {
	CreateOrGetUser(ctx context.Context, request *requests.CreateUser) (*models.User, error)
	GetUser(ctx context.Context, userID string) (*models.User, error)
}

type UserRepository interface {
	CreateUser(ctx context.Context, user *models.User) (*models.User, error)
	FindByID(ctx context.Context, userID string) (*models.User, error)
	FindByEmail(ctx context.Context, email string) (*models.User, error)
}
