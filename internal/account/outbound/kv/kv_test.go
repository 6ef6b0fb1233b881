package kv

import (
	"context"
	"errors"
	"testing"

	"github.com/shandysiswandi/ayola/internal/account/entity"
	"github.com/shandysiswandi/ayola/internal/pkg/goerror"
	"github.com/shandysiswandi/ayola/internal/pkg/instrument"
	"github.com/shandysiswandi/ayola/internal/pkg/kvstore"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errDisk = errors.New("disk full")

// failingStore wraps a Store and fails every Set for one key.
type failingStore struct {
	kvstore.Store
	failKey string
}

func (f *failingStore) Set(ctx context.Context, key, value string) error {
	if key == f.failKey {
		return errDisk
	}
	return f.Store.Set(ctx, key, value)
}

func TestKV_CredentialRoundTrip(t *testing.T) {
	ctx := context.Background()
	repo := NewKV(kvstore.NewMemory(), instrument.NewNoop())

	_, err := repo.GetCredential(ctx)
	require.ErrorIs(t, err, goerror.ErrNotFound)

	want := entity.Credential{Name: "Ayu", Email: "ayu@example.com", Password: "Secret12!"}
	require.NoError(t, repo.SaveCredential(ctx, want))

	got, err := repo.GetCredential(ctx)
	require.NoError(t, err)
	assert.Equal(t, want, *got)

	require.NoError(t, repo.ClearCredential(ctx))
	_, err = repo.GetCredential(ctx)
	assert.ErrorIs(t, err, goerror.ErrNotFound)
}

func TestKV_SaveCredentialPartialWrite(t *testing.T) {
	ctx := context.Background()
	mem := kvstore.NewMemory()
	repo := NewKV(&failingStore{Store: mem, failKey: entity.KeyUserPassword}, instrument.NewNoop())

	err := repo.SaveCredential(ctx, entity.Credential{Name: "Ayu", Email: "ayu@example.com", Password: "Secret12!"})
	require.ErrorIs(t, err, errDisk)

	name, err := mem.Get(ctx, entity.KeyUserName)
	require.NoError(t, err)
	assert.Equal(t, "Ayu", name)

	email, err := mem.Get(ctx, entity.KeyUserEmail)
	require.NoError(t, err)
	assert.Equal(t, "ayu@example.com", email)

	_, err = mem.Get(ctx, entity.KeyUserPassword)
	assert.ErrorIs(t, err, goerror.ErrNotFound)
}

func TestKV_GetCredentialWithoutName(t *testing.T) {
	ctx := context.Background()
	mem := kvstore.NewMemory()
	require.NoError(t, mem.Set(ctx, entity.KeyUserEmail, "a@b.co"))
	require.NoError(t, mem.Set(ctx, entity.KeyUserPassword, "Secret12!"))

	got, err := NewKV(mem, instrument.NewNoop()).GetCredential(ctx)
	require.NoError(t, err)
	assert.Empty(t, got.Name)
	assert.Equal(t, "a@b.co", got.Email)
}
