package users

import (
	"carepulse-service/internal/app/contracts"
	"carepulse-service/internal/app/models"
	"carepulse-service/internal/pkg/constvars"
	"context"
)

type userRepository struct {
	Store contracts.DocumentStore
}

func NewUserRepository(store contracts.DocumentStore) contracts.UserRepository {
	return &userRepository{
		Store: store,
	}
}

func (r *userRepository) CreateUser(ctx context.Context, user *models.User) (*models.User, error) {
	user.SetCreatedAtUpdatedAt()
	userID, err := r.Store.CreateRecord(ctx, constvars.MongoCollectionUsers, user)
	if err != nil {
		return nil, err
	}
	user.ID = userID
	return user, nil
}

func (r *userRepository) FindByID(ctx context.Context, userID string) (*models.User, error) {
	var user models.User
	err := r.Store.GetRecord(ctx, constvars.MongoCollectionUsers, userID, &user)
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// FindByEmail returns nil without error when no user has that email.
func (r *userRepository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	var users []models.User
	query := contracts.Query{
		Filters: []contracts.Filter{{Field: "email", Value: email}},
		Limit:   1,
	}
	err := r.Store.QueryRecords(ctx, constvars.MongoCollectionUsers, query, &users)
	if err != nil {
		return nil, err
	}
	if len(users) == 0 {
		return nil, nil
	}
	return &users[0], nil
}
