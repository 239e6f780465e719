package users

import (
	"carepulse-service/internal/app/contracts"
	"carepulse-service/internal/app/models"
	"carepulse-service/internal/app/services/shared/documentstore"
	"carepulse-service/internal/pkg/constvars"
	"carepulse-service/internal/pkg/dto/requests"
	"carepulse-service/internal/pkg/exceptions"
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/cenkalti/backoff/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestUsecase(repo contracts.UserRepository) *userUsecase {
	uc := NewUserUsecase(repo, zap.NewNop()).(*userUsecase)
	uc.newBackOff = func() backoff.BackOff {
		return backoff.NewConstantBackOff(time.Millisecond)
	}
	return uc
}

func newUserStore() contracts.DocumentStore {
	return documentstore.NewMemoryStore(documentstore.WithUniqueField(constvars.MongoCollectionUsers, "email"))
}

func TestCreateOrGetUser_IsIdempotentPerEmail(t *testing.T) {
	ctx := context.Background()
	uc := newTestUsecase(NewUserRepository(newUserStore()))

	first, err := uc.CreateOrGetUser(ctx, &requests.CreateUser{Name: "Jane Roe", Email: "jane@example.com", Phone: "+15555550100"})
	require.NoError(t, err)

	second, err := uc.CreateOrGetUser(ctx, &requests.CreateUser{Name: "Jane R.", Email: "jane@example.com", Phone: "+15555550199"})
	require.NoError(t, err)

	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, "Jane Roe", second.Name)
}

func TestCreateOrGetUser_ConcurrentCallsConverge(t *testing.T) {
	ctx := context.Background()
	uc := newTestUsecase(NewUserRepository(newUserStore()))

	const callers = 8
	ids := make([]string, callers)
	var wg sync.WaitGroup
	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			user, err := uc.CreateOrGetUser(ctx, &requests.CreateUser{Name: "Jane Roe", Email: "jane@example.com", Phone: "+15555550100"})
			if assert.NoError(t, err) {
				ids[i] = user.ID
			}
		}(i)
	}
	wg.Wait()

	for _, id := range ids {
		assert.Equal(t, ids[0], id)
	}
}

func TestCreateOrGetUser_ValidationFailsBeforeWrite(t *testing.T) {
	repo := &stubUserRepository{}
	uc := newTestUsecase(repo)

	_, err := uc.CreateOrGetUser(context.Background(), &requests.CreateUser{Name: "Jane Roe"})

	var customErr *exceptions.CustomError
	require.True(t, errors.As(err, &customErr))
	assert.Equal(t, constvars.StatusBadRequest, customErr.StatusCode)
	assert.Len(t, customErr.Fields, 2)
	assert.Zero(t, repo.createCalls)
}

func TestCreateOrGetUser_RetriesUntilConflictingUserIsVisible(t *testing.T) {
	existing := &models.User{ID: "u1", Email: "jane@example.com"}
	repo := &stubUserRepository{
		createErr:        exceptions.NewStoreConflict(constvars.MongoCollectionUsers, errors.New("duplicate")),
		invisibleLookups: 2,
		byEmail:          existing,
	}
	uc := newTestUsecase(repo)

	user, err := uc.CreateOrGetUser(context.Background(), &requests.CreateUser{Name: "Jane Roe", Email: "jane@example.com", Phone: "+15555550100"})
	require.NoError(t, err)
	assert.Equal(t, "u1", user.ID)
	assert.Equal(t, 3, repo.lookupCalls)
}

func TestCreateOrGetUser_GivesUpWhenConflictingUserNeverAppears(t *testing.T) {
	repo := &stubUserRepository{
		createErr:        exceptions.NewStoreConflict(constvars.MongoCollectionUsers, errors.New("duplicate")),
		invisibleLookups: 100,
	}
	uc := newTestUsecase(repo)

	_, err := uc.CreateOrGetUser(context.Background(), &requests.CreateUser{Name: "Jane Roe", Email: "jane@example.com", Phone: "+15555550100"})

	var customErr *exceptions.CustomError
	require.True(t, errors.As(err, &customErr))
	assert.Equal(t, constvars.StatusNotFound, customErr.StatusCode)
	assert.Equal(t, defaultReconcileMaxTries, repo.lookupCalls)
}

func TestCreateOrGetUser_PropagatesOtherStoreErrors(t *testing.T) {
	repo := &stubUserRepository{
		createErr: exceptions.NewStoreTransient(constvars.MongoCollectionUsers, errors.New("connection reset")),
	}
	uc := newTestUsecase(repo)

	_, err := uc.CreateOrGetUser(context.Background(), &requests.CreateUser{Name: "Jane Roe", Email: "jane@example.com", Phone: "+15555550100"})
	assert.True(t, exceptions.IsTransient(err))
	assert.Zero(t, repo.lookupCalls)
}

func TestGetUser(t *testing.T) {
	ctx := context.Background()
	uc := newTestUsecase(NewUserRepository(newUserStore()))

	created, err := uc.CreateOrGetUser(ctx, &requests.CreateUser{Name: "Jane Roe", Email: "jane@example.com", Phone: "+15555550100"})
	require.NoError(t, err)

	user, err := uc.GetUser(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "jane@example.com", user.Email)

	_, err = uc.GetUser(ctx, "missing")
	assert.True(t, exceptions.IsNotFound(err))
}

type stubUserRepository struct {
	mu               sync.Mutex
	createErr        error
	byEmail          *models.User
	invisibleLookups int
	createCalls      int
	lookupCalls      int
}

func (r *stubUserRepository) CreateUser(ctx context.Context, user *models.User) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.createCalls++
	if r.createErr != nil {
		return nil, r.createErr
	}
	user.ID = "new"
	return user, nil
}

func (r *stubUserRepository) FindByID(ctx context.Context, userID string) (*models.User, error) {
	return nil, exceptions.NewStoreNotFound(constvars.MongoCollectionUsers, nil)
}

func (r *stubUserRepository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.lookupCalls++
	if r.lookupCalls <= r.invisibleLookups {
		return nil, nil
	}
	return r.byEmail, nil
}
