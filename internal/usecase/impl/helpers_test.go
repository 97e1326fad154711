package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"account/config"
	"account/internal/domain/repository"
	mockRepo "account/internal/mocks/repository"

	"github.com/stretchr/testify/mock"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig(userPageSize, profilePageSize int) *config.Config {
	return &config.Config{
		Admin: &config.AdminConfig{
			UserPageSize:    userPageSize,
			ProfilePageSize: profilePageSize,
		},
	}
}

// repoMocks is the set of repositories handed out by one mocked transaction.
type repoMocks struct {
	factory   *mockRepo.MockRepositoryFactory
	users     *mockRepo.MockUserRepository
	profiles  *mockRepo.MockProfileRepository
	addresses *mockRepo.MockAddressRepository
}

func newRepoMocks(t *testing.T) *repoMocks {
	m := &repoMocks{
		factory:   mockRepo.NewMockRepositoryFactory(t),
		users:     mockRepo.NewMockUserRepository(t),
		profiles:  mockRepo.NewMockProfileRepository(t),
		addresses: mockRepo.NewMockAddressRepository(t),
	}
	m.factory.EXPECT().NewUserRepository().Return(m.users).Maybe()
	m.factory.EXPECT().NewProfileRepository().Return(m.profiles).Maybe()
	m.factory.EXPECT().NewAddressRepository().Return(m.addresses).Maybe()

	return m
}

// expectExecute runs the transaction body against the mocks and returns its error.
func expectExecute(ctx context.Context, txManager *mockRepo.MockTransactionManager, repos *repoMocks) {
	txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(repos.factory)
		})
}
