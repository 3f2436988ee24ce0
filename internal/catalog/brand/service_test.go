package brand

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

func (m *mockRepository) Create(ctx context.Context, b model.Brand) (model.Brand, error) {
	args := m.Called(ctx, b)
	if fn, ok := args.Get(0).(func(context.Context, model.Brand) model.Brand); ok {
		return fn(ctx, b), args.Error(1)
	}
	return args.Get(0).(model.Brand), args.Error(1)
}

func (m *mockRepository) Read(ctx context.Context, id string) (model.Brand, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(model.Brand), args.Error(1)
}

func (m *mockRepository) List(ctx context.Context, page, pageSize int) ([]model.Brand, error) {
	args := m.Called(ctx, page, pageSize)
	return args.Get(0).([]model.Brand), args.Error(1)
}

func TestService_Create(t *testing.T) {
	repo := new(mockRepository)
	repo.On("Create", mock.Anything, mock.MatchedBy(func(b model.Brand) bool {
		return util.HasPrefix(b.ID, util.PrefixBrand) &&
			b.Name == "Acme" &&
			b.Image == "https://cdn.example.com/acme.png" &&
			b.CreatedAt.Location() == time.UTC &&
			b.CreatedAt.Equal(b.UpdatedAt)
	})).Return(func(_ context.Context, b model.Brand) model.Brand { return b }, nil)

	svc := NewService(repo, time.Minute)
	created, err := svc.Create(context.Background(), model.Brand{
		Name:  "Acme",
		Image: "https://cdn.example.com/acme.png",
	})
	require.NoError(t, err)
	repo.AssertExpectations(t)

	// lido do cache, sem nova consulta ao repositório
	found, err := svc.Read(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, created, found)
	repo.AssertNotCalled(t, "Read", mock.Anything, mock.Anything)
}

func TestService_Create_InvalidInput(t *testing.T) {
	repo := new(mockRepository)

	_, err := NewService(repo, time.Minute).Create(context.Background(), model.Brand{Image: "https://cdn.example.com/x.png"})

	assert.ErrorIs(t, err, ErrInvalidInput)
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestService_Read_CachesRecord(t *testing.T) {
	repo := new(mockRepository)
	repo.On("Read", mock.Anything, "b_1").Return(sampleBrand(), nil).Once()

	svc := NewService(repo, time.Minute)
	for i := 0; i < 3; i++ {
		got, err := svc.Read(context.Background(), "b_1")
		require.NoError(t, err)
		assert.Equal(t, sampleBrand(), got)
	}
	repo.AssertExpectations(t)
}

func TestService_Read_NotFound(t *testing.T) {
	repo := new(mockRepository)
	repo.On("Read", mock.Anything, "b_9").Return(model.Brand{}, ErrNotFound)

	_, err := NewService(repo, time.Minute).Read(context.Background(), "b_9")

	assert.ErrorIs(t, err, ErrNotFound)
}

func TestService_List(t *testing.T) {
	repo := new(mockRepository)
	repo.On("List", mock.Anything, 2, 5).Return([]model.Brand{sampleBrand()}, nil)

	got, err := NewService(repo, time.Minute).List(context.Background(), 2, 5)

	require.NoError(t, err)
	assert.Equal(t, []model.Brand{sampleBrand()}, got)
}
