package postgres

import (
	"io"
	"log/slog"
	"sync"
	"testing"

	domainerrors "account/internal/domain/errors"
	"account/internal/usecase"
	"account/internal/usecase/impl"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newAddressService wires the real address service to the fixture's database.
func (fx *repoFixture) newAddressService() usecase.AddressUsecase {
	return impl.NewAddressService(NewTransactionManager(fx.db), slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func (fx *repoFixture) defaultAddressID(t *testing.T, userID uuid.UUID) *uuid.UUID {
	t.Helper()
	stored, err := fx.profiles.FindByUserID(fx.ctx, userID)
	require.NoError(t, err)

	return stored.DefaultAddressID
}

func TestAddressService_SaveAddress_FirstSaveBecomesDefault(t *testing.T) {
	fx := newRepoFixture(t)
	user := fx.createUser(t, "first@example.com", "", "")
	fx.createProfile(t, user)
	service := fx.newAddressService()

	first := newAddress(user.ID, "1")
	require.NoError(t, service.SaveAddress(fx.ctx, first))
	require.NotEqual(t, uuid.Nil, first.ID)

	defaultID := fx.defaultAddressID(t, user.ID)
	require.NotNil(t, defaultID)
	assert.Equal(t, first.ID, *defaultID)
}

func TestAddressService_SaveAddress_LaterSavesKeepDefault(t *testing.T) {
	fx := newRepoFixture(t)
	user := fx.createUser(t, "keep@example.com", "", "")
	fx.createProfile(t, user)
	service := fx.newAddressService()

	first := newAddress(user.ID, "1")
	require.NoError(t, service.SaveAddress(fx.ctx, first))
	second := newAddress(user.ID, "2")
	require.NoError(t, service.SaveAddress(fx.ctx, second))

	// Re-saving a non-default address leaves the default alone.
	second.Street = "Second Street"
	require.NoError(t, service.SaveAddress(fx.ctx, second))

	defaultID := fx.defaultAddressID(t, user.ID)
	require.NotNil(t, defaultID)
	assert.Equal(t, first.ID, *defaultID)

	stored, err := fx.addresses.FindByID(fx.ctx, second.ID)
	require.NoError(t, err)
	assert.Equal(t, "Second Street", stored.Street)
}

func TestAddressService_DeleteDefault_ClearsReferenceAndNextSaveBecomesDefault(t *testing.T) {
	fx := newRepoFixture(t)
	user := fx.createUser(t, "cleared@example.com", "", "")
	fx.createProfile(t, user)
	service := fx.newAddressService()

	first := newAddress(user.ID, "1")
	require.NoError(t, service.SaveAddress(fx.ctx, first))
	second := newAddress(user.ID, "2")
	require.NoError(t, service.SaveAddress(fx.ctx, second))

	require.NoError(t, service.DeleteAddress(fx.ctx, user.ID, first.ID))

	// The profile survives with no default.
	assert.Nil(t, fx.defaultAddressID(t, user.ID))
	_, err := fx.addresses.FindByID(fx.ctx, second.ID)
	require.NoError(t, err)

	// Saving an existing address fills the empty default.
	require.NoError(t, service.SaveAddress(fx.ctx, second))
	defaultID := fx.defaultAddressID(t, user.ID)
	require.NotNil(t, defaultID)
	assert.Equal(t, second.ID, *defaultID)

	// A brand-new address does not displace it.
	third := newAddress(user.ID, "3")
	require.NoError(t, service.SaveAddress(fx.ctx, third))
	defaultID = fx.defaultAddressID(t, user.ID)
	require.NotNil(t, defaultID)
	assert.Equal(t, second.ID, *defaultID)
}

func TestAddressService_AddAddress_RejectsInvalidInputBeforeWriting(t *testing.T) {
	fx := newRepoFixture(t)
	user := fx.createUser(t, "invalid@example.com", "", "")
	fx.createProfile(t, user)
	service := fx.newAddressService()

	_, err := service.AddAddress(fx.ctx, user.ID, &usecase.AddressInput{House: "1", Street: "Main Street", Area: "Downtown", City: "Springfield"})

	var validationErr *domainerrors.ValidationError
	require.True(t, errors.As(err, &validationErr))
	assert.Equal(t, "postal_code", validationErr.Field)

	remaining, err := fx.addresses.FindByProfile(fx.ctx, user.ID)
	require.NoError(t, err)
	assert.Empty(t, remaining)
	assert.Nil(t, fx.defaultAddressID(t, user.ID))
}

func TestAddressService_SaveAddress_WithoutProfile(t *testing.T) {
	fx := newRepoFixture(t)
	service := fx.newAddressService()

	err := service.SaveAddress(fx.ctx, newAddress(uuid.New(), "1"))

	assert.True(t, errors.Is(err, domainerrors.ErrProfileNotFound))
}

// The test database holds a single connection, so SQLite runs the writers one
// transaction at a time. This checks the outcome of concurrent first saves through
// the service, not lock interleaving, which needs PostgreSQL.
func TestAddressService_ConcurrentFirstSaves_LeaveOneDefault(t *testing.T) {
	fx := newRepoFixture(t)
	user := fx.createUser(t, "race@example.com", "", "")
	fx.createProfile(t, user)
	service := fx.newAddressService()

	const writers = 8
	var (
		wg    sync.WaitGroup
		mu    sync.Mutex
		saved []uuid.UUID
	)
	for i := range writers {
		wg.Add(1)
		go func(house int) {
			defer wg.Done()
			address := newAddress(user.ID, string(rune('A'+house)))
			if !assert.NoError(t, service.SaveAddress(fx.ctx, address)) {
				return
			}

			mu.Lock()
			defer mu.Unlock()
			saved = append(saved, address.ID)
		}(i)
	}
	wg.Wait()

	require.Len(t, saved, writers)

	defaultID := fx.defaultAddressID(t, user.ID)
	require.NotNil(t, defaultID)
	assert.Contains(t, saved, *defaultID)

	stored, err := fx.addresses.FindByProfile(fx.ctx, user.ID)
	require.NoError(t, err)
	assert.Len(t, stored, writers)
	for _, address := range stored {
		assert.Equal(t, user.ID, address.ProfileID)
	}
}
