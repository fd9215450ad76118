package services

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/energichain/server/internal/common"
	"github.com/energichain/server/internal/dbx"
	"github.com/energichain/server/internal/server/auth"
	"github.com/energichain/server/internal/server/config"
	"github.com/energichain/server/internal/server/models"
	"github.com/energichain/server/internal/server/repositories/repomanager"
	tradesrepo "github.com/energichain/server/internal/server/repositories/trades"
	usersrepo "github.com/energichain/server/internal/server/repositories/users"
)

// --- helpers ---

func testConfig() *config.Config {
	return &config.Config{
		SecretKey:             "k",
		TokenValidityDuration: 24 * time.Hour,
	}
}

type fakeUsersRepo struct {
	created   *models.User
	createErr error

	getOut *models.User
	getErr error
}

func (f *fakeUsersRepo) Create(ctx context.Context, u *models.User) (*models.User, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	u.ID = "u-1"
	u.CreatedAt = time.Now()
	f.created = u
	return u, nil
}

func (f *fakeUsersRepo) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	return f.getOut, nil
}

type fakeTradesRepo struct {
	created   *models.Trade
	createErr error

	listOut []*models.Trade
	listErr error
}

func (f *fakeTradesRepo) Create(ctx context.Context, tr *models.Trade) (*models.Trade, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	tr.ID = 1
	tr.CreatedAt = time.Now()
	f.created = tr
	return tr, nil
}

func (f *fakeTradesRepo) ListByOwner(ctx context.Context, ownerID string) ([]*models.Trade, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.listOut, nil
}

type fakeRepoManager struct {
	u *fakeUsersRepo
	t *fakeTradesRepo
}

func (m *fakeRepoManager) RunMigrations(context.Context, *sql.DB) error { return nil }
func (m *fakeRepoManager) Users(db dbx.DBTX) usersrepo.Repository      { return m.u }
func (m *fakeRepoManager) Trades(db dbx.DBTX) tradesrepo.Repository    { return m.t }

var _ repomanager.RepositoryManager = (*fakeRepoManager)(nil)

// --- SignUp ---

func TestSignUp_Success(t *testing.T) {
	repo := &fakeUsersRepo{}
	s := NewUserService(nil, &fakeRepoManager{u: repo}, testConfig())

	u, err := s.SignUp(context.Background(), "Al", "a@x.com", "p")
	if err != nil {
		t.Fatalf("SignUp error: %v", err)
	}
	if u.ID == "" {
		t.Fatalf("expected assigned id")
	}
	if repo.created.PasswordHash == "p" {
		t.Fatalf("password must be stored hashed, got the plain value")
	}
	if !auth.CheckPassword(repo.created.PasswordHash, "p") {
		t.Fatalf("stored hash does not verify against the original password")
	}
}

func TestSignUp_MissingFields(t *testing.T) {
	s := NewUserService(nil, &fakeRepoManager{u: &fakeUsersRepo{}}, testConfig())

	tests := []struct {
		name, userName, email, password string
	}{
		{"empty name", "", "a@x.com", "p"},
		{"empty email", "Al", "", "p"},
		{"empty password", "Al", "a@x.com", ""},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := s.SignUp(context.Background(), tc.userName, tc.email, tc.password)
			if !errors.Is(err, common.ErrorValidation) {
				t.Fatalf("expected common.ErrorValidation, got %v", err)
			}
		})
	}
}

func TestSignUp_DuplicateEmail(t *testing.T) {
	repo := &fakeUsersRepo{createErr: common.ErrorAlreadyExists}
	s := NewUserService(nil, &fakeRepoManager{u: repo}, testConfig())

	_, err := s.SignUp(context.Background(), "Al", "a@x.com", "p")
	if !errors.Is(err, common.ErrorAlreadyExists) {
		t.Fatalf("expected common.ErrorAlreadyExists, got %v", err)
	}
}

// --- Login ---

func loginFixture(t *testing.T) *models.User {
	t.Helper()
	hash, err := auth.HashPassword("p")
	if err != nil {
		t.Fatalf("HashPassword error: %v", err)
	}
	return &models.User{ID: "u-1", Name: "Al", Email: "a@x.com", PasswordHash: hash}
}

func TestLogin_Success_TokenResolvesToUser(t *testing.T) {
	repo := &fakeUsersRepo{getOut: loginFixture(t)}
	s := NewUserService(nil, &fakeRepoManager{u: repo}, testConfig())

	result, err := s.Login(context.Background(), "a@x.com", "p")
	if err != nil {
		t.Fatalf("Login error: %v", err)
	}
	if result.User.ID != "u-1" {
		t.Fatalf("unexpected user: %+v", result.User)
	}

	userID, err := auth.GetUserIDFromToken(result.Token, []byte("k"))
	if err != nil {
		t.Fatalf("token did not verify: %v", err)
	}
	if userID != "u-1" {
		t.Fatalf("token resolves to %q, want %q", userID, "u-1")
	}
}

func TestLogin_UnknownEmailAndWrongPassword_SameError(t *testing.T) {
	// Both failure modes must be indistinguishable.
	unknown := &fakeUsersRepo{getErr: common.ErrorNotFound}
	s := NewUserService(nil, &fakeRepoManager{u: unknown}, testConfig())
	_, errUnknown := s.Login(context.Background(), "nobody@x.com", "p")

	known := &fakeUsersRepo{getOut: loginFixture(t)}
	s = NewUserService(nil, &fakeRepoManager{u: known}, testConfig())
	_, errWrongPass := s.Login(context.Background(), "a@x.com", "wrong")

	if !errors.Is(errUnknown, common.ErrorInvalidCredentials) {
		t.Fatalf("unknown email: expected common.ErrorInvalidCredentials, got %v", errUnknown)
	}
	if !errors.Is(errWrongPass, common.ErrorInvalidCredentials) {
		t.Fatalf("wrong password: expected common.ErrorInvalidCredentials, got %v", errWrongPass)
	}
	if errUnknown.Error() != errWrongPass.Error() {
		t.Fatalf("errors must be identical: %q vs %q", errUnknown, errWrongPass)
	}
}

func TestLogin_MissingFields(t *testing.T) {
	s := NewUserService(nil, &fakeRepoManager{u: &fakeUsersRepo{}}, testConfig())

	_, err := s.Login(context.Background(), "", "p")
	if !errors.Is(err, common.ErrorValidation) {
		t.Fatalf("expected common.ErrorValidation, got %v", err)
	}
}

func TestLogin_RepoFailure_Internal(t *testing.T) {
	repo := &fakeUsersRepo{getErr: errors.New("db down")}
	s := NewUserService(nil, &fakeRepoManager{u: repo}, testConfig())

	_, err := s.Login(context.Background(), "a@x.com", "p")
	if !errors.Is(err, common.ErrorInternal) {
		t.Fatalf("expected common.ErrorInternal, got %v", err)
	}
}
