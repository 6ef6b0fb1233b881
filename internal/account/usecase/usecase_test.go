package usecase

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/shandysiswandi/ayola/internal/account/entity"
	"github.com/shandysiswandi/ayola/internal/pkg/credential"
	"github.com/shandysiswandi/ayola/internal/pkg/goerror"
	"github.com/shandysiswandi/ayola/internal/pkg/instrument"
	"github.com/shandysiswandi/ayola/internal/pkg/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errStore = errors.New("store unavailable")

type fakeRepo struct {
	cred     *entity.Credential
	getErr   error
	saveErr  error
	clearErr error
	saved    []entity.Credential
}

func (f *fakeRepo) SaveCredential(_ context.Context, c entity.Credential) error {
	if f.saveErr != nil {
		return f.saveErr
	}
	f.saved = append(f.saved, c)
	f.cred = &c
	return nil
}

func (f *fakeRepo) GetCredential(context.Context) (*entity.Credential, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	if f.cred == nil {
		return nil, goerror.ErrNotFound
	}
	c := *f.cred
	return &c, nil
}

func (f *fakeRepo) ClearCredential(context.Context) error {
	if f.clearErr != nil {
		return f.clearErr
	}
	f.cred = nil
	return nil
}

func newUsecase(t *testing.T, repo repoKV) *Usecase {
	t.Helper()

	v, err := validator.NewV10Validator()
	require.NoError(t, err)

	return New(Dependency{RepoKV: repo, Validator: v, Instrument: instrument.NewNoop()})
}

func requireGoError(t *testing.T, err error) *goerror.Error {
	t.Helper()

	var gerr *goerror.Error
	require.ErrorAs(t, err, &gerr)
	return gerr
}

func TestUsecase_Register(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		repo := &fakeRepo{}
		uc := newUsecase(t, repo)

		err := uc.Register(ctx, RegisterInput{Name: "Ayu", Email: "ayu@example.com", Password: "Secret12!"})

		require.NoError(t, err)
		assert.Equal(t, []entity.Credential{{Name: "Ayu", Email: "ayu@example.com", Password: "Secret12!"}}, repo.saved)
	})

	t.Run("MissingFields", func(t *testing.T) {
		repo := &fakeRepo{}
		uc := newUsecase(t, repo)

		err := uc.Register(ctx, RegisterInput{Name: "", Email: "ayu@example.com", Password: ""})

		gerr := requireGoError(t, err)
		assert.Equal(t, goerror.TypeValidation, gerr.Type())
		var verr validator.V10ValidationError
		require.ErrorAs(t, err, &verr)
		assert.Contains(t, verr.Values(), "name")
		assert.Contains(t, verr.Values(), "password")
		assert.NotContains(t, verr.Values(), "email")
		assert.Empty(t, repo.saved)
	})

	t.Run("StoresShapeAsTyped", func(t *testing.T) {
		repo := &fakeRepo{}
		uc := newUsecase(t, repo)

		err := uc.Register(ctx, RegisterInput{Name: "Ayu", Email: "user@@example", Password: "ab"})

		require.NoError(t, err)
		assert.Equal(t, []entity.Credential{{Name: "Ayu", Email: "user@@example", Password: "ab"}}, repo.saved)
	})

	t.Run("StoreFailure", func(t *testing.T) {
		uc := newUsecase(t, &fakeRepo{saveErr: errStore})

		err := uc.Register(ctx, RegisterInput{Name: "Ayu", Email: "ayu@example.com", Password: "Secret12!"})

		gerr := requireGoError(t, err)
		assert.Equal(t, entity.MsgErrorRegister, gerr.Msg())
		assert.Equal(t, http.StatusInternalServerError, gerr.StatusCode())
		assert.ErrorIs(t, err, errStore)
	})
}

func TestUsecase_Login(t *testing.T) {
	ctx := context.Background()
	stored := &entity.Credential{Name: "Ayu", Email: "ayu@example.com", Password: "Secret12!"}

	tests := []struct {
		name    string
		repo    *fakeRepo
		in      LoginInput
		wantMsg string
		status  int
	}{
		{
			name:    "NoAccount",
			repo:    &fakeRepo{},
			in:      LoginInput{Email: "ayu@example.com", Password: "Secret12!"},
			wantMsg: entity.MsgInvalidCredentials,
			status:  http.StatusUnauthorized,
		},
		{
			name:    "WrongPassword",
			repo:    &fakeRepo{cred: stored},
			in:      LoginInput{Email: "ayu@example.com", Password: "secret12!"},
			wantMsg: entity.MsgInvalidCredentials,
			status:  http.StatusUnauthorized,
		},
		{
			name:    "EmailCaseDiffers",
			repo:    &fakeRepo{cred: stored},
			in:      LoginInput{Email: "Ayu@example.com", Password: "Secret12!"},
			wantMsg: entity.MsgInvalidCredentials,
			status:  http.StatusUnauthorized,
		},
		{
			name:    "EmailNotTrimmed",
			repo:    &fakeRepo{cred: stored},
			in:      LoginInput{Email: " ayu@example.com", Password: "Secret12!"},
			wantMsg: entity.MsgInvalidCredentials,
			status:  http.StatusUnauthorized,
		},
		{
			name:    "ReadFailure",
			repo:    &fakeRepo{getErr: errStore},
			in:      LoginInput{Email: "ayu@example.com", Password: "Secret12!"},
			wantMsg: entity.MsgErrorLogin,
			status:  http.StatusInternalServerError,
		},
		{
			name:    "EmptyPassword",
			repo:    &fakeRepo{cred: stored},
			in:      LoginInput{Email: "ayu@example.com"},
			wantMsg: "Validation error",
			status:  http.StatusUnprocessableEntity,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := newUsecase(t, tt.repo).Login(ctx, tt.in)

			assert.Nil(t, out)
			gerr := requireGoError(t, err)
			assert.Equal(t, tt.wantMsg, gerr.Msg())
			assert.Equal(t, tt.status, gerr.StatusCode())
		})
	}

	t.Run("Match", func(t *testing.T) {
		out, err := newUsecase(t, &fakeRepo{cred: stored}).Login(ctx, LoginInput{Email: "ayu@example.com", Password: "Secret12!"})

		require.NoError(t, err)
		assert.Equal(t, &LoginOutput{Name: "Ayu", Email: "ayu@example.com"}, out)
	})
}

func TestUsecase_RegisterThenLogin(t *testing.T) {
	ctx := context.Background()
	uc := newUsecase(t, &fakeRepo{})

	require.NoError(t, uc.Register(ctx, RegisterInput{Name: "Ayu", Email: "ayu@example.com", Password: "Secret12!"}))

	out, err := uc.Login(ctx, LoginInput{Email: "ayu@example.com", Password: "Secret12!"})
	require.NoError(t, err)
	assert.Equal(t, "Ayu", out.Name)
}

func TestUsecase_ValidateCredential(t *testing.T) {
	uc := newUsecase(t, &fakeRepo{})

	out, err := uc.ValidateCredential(context.Background(), ValidateInput{Email: "user@example.com", Password: "ab"})
	require.NoError(t, err)
	assert.Empty(t, out.EmailMessage)
	assert.Equal(t, credential.MsgPasswordLength, out.PasswordMessage)
	assert.False(t, out.Valid())

	out, err = uc.ValidateCredential(context.Background(), ValidateInput{Email: "user@example.com", Password: "Secret12!"})
	require.NoError(t, err)
	assert.True(t, out.Valid())
}

func TestUsecase_Profile(t *testing.T) {
	ctx := context.Background()

	out, err := newUsecase(t, &fakeRepo{cred: &entity.Credential{Name: "Ayu", Email: "ayu@example.com"}}).Profile(ctx)
	require.NoError(t, err)
	assert.Equal(t, &ProfileOutput{Name: "Ayu", Email: "ayu@example.com"}, out)

	_, err = newUsecase(t, &fakeRepo{}).Profile(ctx)
	assert.Equal(t, http.StatusNotFound, requireGoError(t, err).StatusCode())

	_, err = newUsecase(t, &fakeRepo{getErr: errStore}).Profile(ctx)
	assert.Equal(t, http.StatusInternalServerError, requireGoError(t, err).StatusCode())
}

func TestUsecase_Forget(t *testing.T) {
	ctx := context.Background()
	repo := &fakeRepo{cred: &entity.Credential{Email: "ayu@example.com"}}

	require.NoError(t, newUsecase(t, repo).Forget(ctx))
	assert.Nil(t, repo.cred)

	err := newUsecase(t, &fakeRepo{clearErr: errStore}).Forget(ctx)
	assert.ErrorIs(t, err, errStore)
}
