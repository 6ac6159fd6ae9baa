package accept_service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/cappadocia-tours/internal/domain"
	packagesRepo "github.com/m04kA/cappadocia-tours/internal/infra/storage/packages"
	serviceRepo "github.com/m04kA/cappadocia-tours/internal/infra/storage/service"
)

type fakePackages struct {
	pkg *domain.Package
}

func (f *fakePackages) GetByID(_ context.Context, id int64) (*domain.Package, error) {
	if f.pkg == nil || f.pkg.ID != id {
		return nil, packagesRepo.ErrPackageNotFound
	}
	cp := *f.pkg
	return &cp, nil
}

func (f *fakePackages) AppendAccepted(_ context.Context, id, serviceID int64) (*domain.Package, error) {
	if f.pkg == nil || f.pkg.ID != id {
		return nil, packagesRepo.ErrPackageNotFound
	}
	f.pkg.Accepted = append(f.pkg.Accepted, serviceID)
	cp := *f.pkg
	return &cp, nil
}

type fakeServices struct {
	capacity map[int64]int
	err      error
}

func (f *fakeServices) DecrementCapacity(_ context.Context, id int64) error {
	if f.err != nil {
		return f.err
	}
	c, ok := f.capacity[id]
	if !ok {
		return serviceRepo.ErrServiceNotFound
	}
	if c <= 0 {
		return serviceRepo.ErrNoCapacity
	}
	f.capacity[id] = c - 1
	return nil
}

// fakeTx выполняет fn без транзакции и считает вызовы
type fakeTx struct {
	calls int
}

func (f *fakeTx) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	f.calls++
	return fn(ctx)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func setup(policy Policy) (*UseCase, *fakePackages, *fakeServices, *fakeTx) {
	pkgs := &fakePackages{pkg: &domain.Package{ID: 1, Services: []int64{3, 4}, Accepted: []int64{}}}
	svcs := &fakeServices{capacity: map[int64]int{3: 2, 4: 0, 5: 1}}
	tx := &fakeTx{}
	return NewUseCase(pkgs, svcs, tx, policy, nopLogger{}), pkgs, svcs, tx
}

func TestUseCase_Execute_Permissive(t *testing.T) {
	uc, pkgs, svcs, tx := setup(PolicyPermissive)
	ctx := context.Background()

	resp, err := uc.Execute(ctx, &Request{PackageID: 1, ServiceID: 3})
	require.NoError(t, err)
	assert.Equal(t, []int64{3}, resp.Accepted)
	assert.Equal(t, 1, svcs.capacity[3])
	assert.Equal(t, 1, tx.calls)

	// Повтор и услуга вне запроса разрешены
	_, err = uc.Execute(ctx, &Request{PackageID: 1, ServiceID: 3})
	require.NoError(t, err)
	resp, err = uc.Execute(ctx, &Request{PackageID: 1, ServiceID: 5})
	require.NoError(t, err)
	assert.Equal(t, []int64{3, 3, 5}, resp.Accepted)
	assert.Equal(t, []int64{3, 3, 5}, pkgs.pkg.Accepted)
	assert.Equal(t, 0, svcs.capacity[3])
}

func TestUseCase_Execute_Strict(t *testing.T) {
	uc, pkgs, svcs, _ := setup(PolicyStrict)
	ctx := context.Background()

	_, err := uc.Execute(ctx, &Request{PackageID: 1, ServiceID: 5})
	assert.ErrorIs(t, err, ErrNotRequested)
	assert.Equal(t, 1, svcs.capacity[5])

	_, err = uc.Execute(ctx, &Request{PackageID: 1, ServiceID: 3})
	require.NoError(t, err)

	_, err = uc.Execute(ctx, &Request{PackageID: 1, ServiceID: 3})
	assert.ErrorIs(t, err, ErrAlreadyAccepted)
	assert.Equal(t, []int64{3}, pkgs.pkg.Accepted)
	assert.Equal(t, 1, svcs.capacity[3])
}

func TestUseCase_Execute_Errors(t *testing.T) {
	ctx := context.Background()

	t.Run("no capacity leaves accepted unchanged", func(t *testing.T) {
		uc, pkgs, _, _ := setup(PolicyStrict)
		_, err := uc.Execute(ctx, &Request{PackageID: 1, ServiceID: 4})
		assert.ErrorIs(t, err, ErrNoCapacity)
		assert.Empty(t, pkgs.pkg.Accepted)
	})

	t.Run("package not found", func(t *testing.T) {
		uc, _, _, _ := setup(PolicyPermissive)
		_, err := uc.Execute(ctx, &Request{PackageID: 9, ServiceID: 3})
		assert.ErrorIs(t, err, ErrPackageNotFound)
	})

	t.Run("service not found", func(t *testing.T) {
		uc, _, _, _ := setup(PolicyPermissive)
		_, err := uc.Execute(ctx, &Request{PackageID: 1, ServiceID: 99})
		assert.ErrorIs(t, err, ErrServiceNotFound)
	})

	t.Run("invalid input", func(t *testing.T) {
		uc, _, _, tx := setup(PolicyPermissive)
		_, err := uc.Execute(ctx, &Request{PackageID: 1, ServiceID: 0})
		assert.ErrorIs(t, err, ErrInvalidInput)
		assert.Zero(t, tx.calls)
	})

	t.Run("repository failure", func(t *testing.T) {
		uc, _, svcs, _ := setup(PolicyPermissive)
		svcs.err = errors.New("connection reset")
		_, err := uc.Execute(ctx, &Request{PackageID: 1, ServiceID: 3})
		assert.ErrorIs(t, err, ErrInternal)
	})
}

func TestNewUseCase_UnknownPolicyIsPermissive(t *testing.T) {
	uc := NewUseCase(nil, nil, nil, Policy("whatever"), nopLogger{})
	assert.Equal(t, PolicyPermissive, uc.policy)
}
