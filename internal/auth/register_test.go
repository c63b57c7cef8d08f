package auth

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/modos-studio/quotepilot-backend/internal/users"
	"github.com/modos-studio/quotepilot-backend/pkg/config"
	pkgmodels "github.com/modos-studio/quotepilot-backend/pkg/db/models"
	pkgerrors "github.com/modos-studio/quotepilot-backend/pkg/errors"
)

type stubTxRunner struct{}

func (s stubTxRunner) WithTx(ctx context.Context, fn func(tx *gorm.DB) error) error {
	return fn(nil)
}

type stubUserRepository struct {
	data      map[string]*pkgmodels.User
	created   *pkgmodels.User
	createErr error
}

func newStubUserRepository() *stubUserRepository {
	return &stubUserRepository{data: map[string]*pkgmodels.User{}}
}

func (s *stubUserRepository) FindByEmail(ctx context.Context, email string) (*pkgmodels.User, error) {
	if user, ok := s.data[email]; ok {
		return user, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (s *stubUserRepository) Create(ctx context.Context, dto users.CreateUserDTO) (*pkgmodels.User, error) {
	if s.createErr != nil {
		return nil, s.createErr
	}
	user := dto.ToModel()
	user.ID = uuid.New()
	s.data[dto.Email] = user
	s.created = user
	return user, nil
}

func newRegisterTestService(t *testing.T, repo *stubUserRepository) RegisterService {
	t.Helper()
	svc, err := NewRegisterService(RegisterServiceParams{
		TxRunner: stubTxRunner{},
		UserRepoFactory: func(tx *gorm.DB) registerUserRepository {
			return repo
		},
		PasswordConfig: config.PasswordConfig{},
	})
	if err != nil {
		t.Fatalf("new register service: %v", err)
	}
	return svc
}

func TestRegisterCreatesUser(t *testing.T) {
	repo := newStubUserRepository()
	svc := newRegisterTestService(t, repo)

	err := svc.Register(context.Background(), RegisterRequest{
		DisplayName: "Jamie Rivera",
		Email:       "New@Example.com",
		Password:    "Secret123!",
	})
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}

	if repo.created == nil {
		t.Fatal("expected user to be created")
	}
	if repo.created.Email != "new@example.com" {
		t.Fatalf("email not normalized: %q", repo.created.Email)
	}
	if repo.created.PasswordHash == "" || repo.created.PasswordHash == "Secret123!" {
		t.Fatal("password not hashed")
	}
	if !repo.created.IsActive {
		t.Fatal("new user should be active")
	}
}

func TestRegisterDuplicateEmail(t *testing.T) {
	repo := newStubUserRepository()
	repo.data["taken@example.com"] = &pkgmodels.User{ID: uuid.New(), Email: "taken@example.com"}
	svc := newRegisterTestService(t, repo)

	err := svc.Register(context.Background(), RegisterRequest{
		DisplayName: "Dup",
		Email:       "taken@example.com",
		Password:    "Secret123!",
	})
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeConflict {
		t.Fatalf("expected conflict error, got %v", err)
	}
	if repo.created != nil {
		t.Fatal("no user should be created on conflict")
	}
}

func TestRegisterEmptyEmail(t *testing.T) {
	svc := newRegisterTestService(t, newStubUserRepository())

	err := svc.Register(context.Background(), RegisterRequest{
		DisplayName: "NoEmail",
		Email:       "   ",
		Password:    "Secret123!",
	})
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeValidation {
		t.Fatalf("expected validation error, got %v", err)
	}
}
