package tenant

import (
	"context"
	"testing"
	"time"

	"subspace-catalog/internal/catalog/model"
	"subspace-catalog/internal/pkg/util"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockRepository struct {
	mock.Mock
}

func (m *mockRepository) Create(ctx context.Context, t model.Tenant) (model.Tenant, error) {
	args := m.Called(ctx, t)
	if fn, ok := args.Get(0).(func(context.Context, model.Tenant) model.Tenant); ok {
		return fn(ctx, t), args.Error(1)
	}
	return args.Get(0).(model.Tenant), args.Error(1)
}

func (m *mockRepository) Read(ctx context.Context, t model.Tenant) (model.Tenant, error) {
	args := m.Called(ctx, t)
	return args.Get(0).(model.Tenant), args.Error(1)
}

func (m *mockRepository) List(ctx context.Context, page, pageSize int) ([]model.Tenant, error) {
	args := m.Called(ctx, page, pageSize)
	return args.Get(0).([]model.Tenant), args.Error(1)
}

func TestService_Create(t *testing.T) {
	repo := new(mockRepository)
	repo.On("Create", mock.Anything, mock.MatchedBy(func(t model.Tenant) bool {
		return util.HasPrefix(t.ID, util.PrefixTenant) &&
			t.Identifier == "acme" &&
			!t.CreatedAt.IsZero() &&
			t.CreatedAt.Equal(t.UpdatedAt)
	})).Return(func(_ context.Context, t model.Tenant) model.Tenant { return t }, nil)

	svc := NewService(repo, time.Minute)
	created, err := svc.Create(context.Background(), model.Tenant{Identifier: "acme", Name: "Acme Inc"})

	require.NoError(t, err)
	assert.Equal(t, "Acme Inc", created.Name)

	// lido do cache, sem nova consulta ao repositório
	found, err := svc.Read(context.Background(), model.Tenant{Identifier: "acme"})
	require.NoError(t, err)
	assert.Equal(t, created, found)
	repo.AssertNotCalled(t, "Read", mock.Anything, mock.Anything)
}

func TestService_Create_InvalidInput(t *testing.T) {
	svc := NewService(new(mockRepository), time.Minute)

	_, err := svc.Create(context.Background(), model.Tenant{Name: "Acme Inc"})

	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestService_Read_CachesRecord(t *testing.T) {
	repo := new(mockRepository)
	repo.On("Read", mock.Anything, model.Tenant{ID: "t_1"}).Return(sampleTenant(), nil).Once()

	svc := NewService(repo, time.Minute)
	for i := 0; i < 3; i++ {
		got, err := svc.Read(context.Background(), model.Tenant{ID: "t_1"})
		require.NoError(t, err)
		assert.Equal(t, sampleTenant(), got)
	}
	repo.AssertExpectations(t)
}

func TestService_Read_NotFound(t *testing.T) {
	repo := new(mockRepository)
	repo.On("Read", mock.Anything, model.Tenant{ID: "t_9"}).Return(model.Tenant{}, ErrNotFound)

	_, err := NewService(repo, time.Minute).Read(context.Background(), model.Tenant{ID: "t_9"})

	assert.ErrorIs(t, err, ErrNotFound)
}
