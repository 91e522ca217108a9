package auth

import (
	"context"
	"testing"

	autherrors "github.com/VaibhavBaliyan/hirenest/internal/auth/errors"
	"github.com/VaibhavBaliyan/hirenest/internal/authz"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type fakeRepo struct {
	createFn      func(ctx context.Context, u *User) error
	findByIDFn    func(ctx context.Context, id string) (*User, error)
	findByEmailFn func(ctx context.Context, email string) (*User, error)
}

func (f *fakeRepo) Create(ctx context.Context, u *User) error { return f.createFn(ctx, u) }
func (f *fakeRepo) FindByID(ctx context.Context, id string) (*User, error) {
	return f.findByIDFn(ctx, id)
}
func (f *fakeRepo) FindByEmail(ctx context.Context, email string) (*User, error) {
	return f.findByEmailFn(ctx, email)
}

func TestService_Register(t *testing.T) {
	ctx := context.Background()
	t.Setenv("JWT_SECRET", "test-secret")

	noUser := func(ctx context.Context, email string) (*User, error) {
		return nil, gorm.ErrRecordNotFound
	}

	t.Run("Success Jobseeker", func(t *testing.T) {
		var saved User
		repo := &fakeRepo{
			findByEmailFn: noUser,
			createFn:      func(ctx context.Context, u *User) error { saved = *u; return nil },
		}

		resp, err := NewService(repo).Register(ctx, RegisterRequest{
			Name:     "Asha",
			Email:    "  Asha@Example.com ",
			Password: "password123",
			Role:     authz.RoleJobseeker,
			Phone:    "9876543210",
		})

		assert.NoError(t, err)
		assert.Equal(t, "asha@example.com", resp.Email)
		assert.Equal(t, authz.RoleJobseeker, resp.Role)
		assert.NotEmpty(t, resp.Token)
		assert.NotEqual(t, "password123", saved.Password)
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(saved.Password), []byte("password123")))
	})

	t.Run("Duplicate Email", func(t *testing.T) {
		repo := &fakeRepo{
			findByEmailFn: func(ctx context.Context, email string) (*User, error) {
				return &User{ID: uuid.New(), Email: email}, nil
			},
		}

		_, err := NewService(repo).Register(ctx, RegisterRequest{
			Name:     "Asha",
			Email:    "asha@example.com",
			Password: "password123",
			Role:     authz.RoleJobseeker,
		})
		assert.ErrorIs(t, err, autherrors.ErrEmailAlreadyRegistered)
	})

	t.Run("Race Loser Gets Same Conflict", func(t *testing.T) {
		repo := &fakeRepo{
			findByEmailFn: noUser,
			createFn: func(ctx context.Context, u *User) error {
				return errDuplicateEmail{}
			},
		}

		_, err := NewService(repo).Register(ctx, RegisterRequest{
			Name:     "Asha",
			Email:    "asha@example.com",
			Password: "password123",
			Role:     authz.RoleJobseeker,
		})
		assert.ErrorIs(t, err, autherrors.ErrEmailAlreadyRegistered)
	})
}

type errDuplicateEmail struct{}

func (errDuplicateEmail) Error() string {
	return `duplicate key value violates unique constraint "uq_users_email"`
}

func TestService_Login(t *testing.T) {
	ctx := context.Background()
	t.Setenv("JWT_SECRET", "test-secret")

	password := "password123"
	hashed, _ := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	user := &User{
		ID:       uuid.New(),
		Name:     "Asha",
		Email:    "asha@example.com",
		Password: string(hashed),
		Role:     authz.RoleJobseeker,
	}

	t.Run("Success", func(t *testing.T) {
		repo := &fakeRepo{
			findByEmailFn: func(ctx context.Context, email string) (*User, error) { return user, nil },
		}

		resp, err := NewService(repo).Login(ctx, user.Email, password)
		assert.NoError(t, err)
		assert.NotEmpty(t, resp.Token)
		assert.Equal(t, user.Email, resp.Email)
	})

	t.Run("Wrong Password", func(t *testing.T) {
		repo := &fakeRepo{
			findByEmailFn: func(ctx context.Context, email string) (*User, error) { return user, nil },
		}

		_, err := NewService(repo).Login(ctx, user.Email, "wrongpass")
		assert.ErrorIs(t, err, autherrors.ErrInvalidCredentials)
	})

	t.Run("Unknown Email Gets Same Error", func(t *testing.T) {
		repo := &fakeRepo{
			findByEmailFn: func(ctx context.Context, email string) (*User, error) {
				return nil, gorm.ErrRecordNotFound
			},
		}

		_, err := NewService(repo).Login(ctx, "nobody@example.com", password)
		assert.ErrorIs(t, err, autherrors.ErrInvalidCredentials)
	})
}

func TestService_GetMe(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	t.Run("Success Without Token", func(t *testing.T) {
		repo := &fakeRepo{
			findByIDFn: func(ctx context.Context, id string) (*User, error) {
				return &User{ID: userID, Name: "Asha", Email: "asha@example.com"}, nil
			},
		}

		resp, err := NewService(repo).GetMe(ctx, userID.String())
		assert.NoError(t, err)
		assert.Empty(t, resp.Token)
		assert.Equal(t, userID.String(), resp.ID)
	})

	t.Run("Invalid ID", func(t *testing.T) {
		_, err := NewService(&fakeRepo{}).GetMe(ctx, "not-a-uuid")
		assert.ErrorIs(t, err, autherrors.ErrInvalidUserID)
	})
}
