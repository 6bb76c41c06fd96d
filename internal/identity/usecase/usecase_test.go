package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/ardiansetya/goblast/internal/identity/entity"
	"github.com/ardiansetya/goblast/internal/pkg/goerror"
	"github.com/ardiansetya/goblast/internal/pkg/instrument"
	"github.com/ardiansetya/goblast/internal/pkg/jwt"
	"github.com/ardiansetya/goblast/internal/pkg/validator"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)

type fakeDB struct {
	users     map[string]*entity.User
	created   []entity.User
	getErr    error
	createErr error
}

func (f *fakeDB) GetUserByEmail(_ context.Context, email string) (*entity.User, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	if u, ok := f.users[email]; ok {
		return u, nil
	}
	return nil, goerror.ErrNotFound
}

func (f *fakeDB) CreateUser(_ context.Context, user entity.User) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.created = append(f.created, user)
	return nil
}

type fakeHash struct {
	verifyOK bool
}

func (f *fakeHash) Hash(plaintext string) ([]byte, error) {
	return []byte("hashed:" + plaintext), nil
}

func (f *fakeHash) Verify(_, _ string) bool {
	return f.verifyOK
}

type fakeUID struct{ next int64 }

func (f *fakeUID) Generate() int64 {
	f.next++
	return f.next
}

type fakeClock struct{}

func (fakeClock) Now() time.Time { return testNow }

type fakeJWT struct {
	token string
	err   error
}

func (f *fakeJWT) Generate(_ int64, _ string) (string, error) {
	return f.token, f.err
}

func (f *fakeJWT) Verify(_ string) (jwt.Claims, error) {
	return jwt.Claims{}, nil
}

func newUsecase(t *testing.T, db *fakeDB, h *fakeHash, j *fakeJWT) *Usecase {
	t.Helper()

	v10, err := validator.NewV10Validator()
	require.NoError(t, err)

	return New(Dependency{
		RepoDB:     db,
		Validator:  v10,
		Bcrypt:     h,
		UID:        &fakeUID{},
		Clock:      fakeClock{},
		JWT:        j,
		Instrument: instrument.NewNoop(),
	})
}
