package user

import (
	"context"
	"testing"

	"TasteTrail-Backend/domain"
	"TasteTrail-Backend/entities"

	gojwt "github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type fakeUserRepo struct {
	users map[string]*entities.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[string]*entities.User{}}
}

func (f *fakeUserRepo) CreateUser(ctx context.Context, user *entities.User) error {
	for _, u := range f.users {
		if u.Email == user.Email {
			return gorm.ErrDuplicatedKey
		}
	}
	f.users[user.ID.String()] = user
	return nil
}

func (f *fakeUserRepo) FindByEmail(ctx context.Context, email string) (*entities.User, error) {
	for _, u := range f.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeUserRepo) FindByID(ctx context.Context, id string) (*entities.User, error) {
	u, ok := f.users[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return u, nil
}

type stubJWTService struct{}

func (stubJWTService) GenerateTokenUser(userID string, role string) string {
	return "token-" + userID
}

func (stubJWTService) ValidateTokenUser(token string) (*gojwt.Token, error) {
	return nil, nil
}

func (stubJWTService) GetUserIDByToken(token string) (string, string, error) {
	return "", "", nil
}

func TestRegisterAndLogin(t *testing.T) {
	repo := newFakeUserRepo()
	service := NewUserService(repo, stubJWTService{})
	ctx := context.Background()

	registered, err := service.Register(ctx, domain.RegisterRequest{
		Name:     "Alex",
		Email:    "alex@example.com",
		Password: "correct horse",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, registered.ID)

	// Password is stored hashed, never verbatim.
	stored := repo.users[registered.ID]
	assert.NotEqual(t, "correct horse", stored.Password)

	logged, err := service.Login(ctx, domain.LoginRequest{
		Email:    "alex@example.com",
		Password: "correct horse",
	})
	require.NoError(t, err)
	assert.Equal(t, "token-"+registered.ID, logged.Token)
	assert.Equal(t, "user", logged.Role)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	repo := newFakeUserRepo()
	service := NewUserService(repo, stubJWTService{})
	ctx := context.Background()

	_, err := service.Register(ctx, domain.RegisterRequest{
		Name: "Alex", Email: "alex@example.com", Password: "correct horse",
	})
	require.NoError(t, err)

	_, err = service.Register(ctx, domain.RegisterRequest{
		Name: "Other", Email: "alex@example.com", Password: "another pass",
	})
	assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists)
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	repo := newFakeUserRepo()
	service := NewUserService(repo, stubJWTService{})
	ctx := context.Background()

	_, err := service.Register(ctx, domain.RegisterRequest{
		Name: "Alex", Email: "alex@example.com", Password: "correct horse",
	})
	require.NoError(t, err)

	_, err = service.Login(ctx, domain.LoginRequest{Email: "alex@example.com", Password: "wrong"})
	assert.ErrorIs(t, err, domain.ErrCredentialsInvalid)

	_, err = service.Login(ctx, domain.LoginRequest{Email: "nobody@example.com", Password: "x"})
	assert.ErrorIs(t, err, domain.ErrCredentialsInvalid)
}

func TestMe(t *testing.T) {
	repo := newFakeUserRepo()
	service := NewUserService(repo, stubJWTService{})
	ctx := context.Background()

	registered, err := service.Register(ctx, domain.RegisterRequest{
		Name: "Alex", Email: "alex@example.com", Password: "correct horse",
	})
	require.NoError(t, err)

	me, err := service.Me(ctx, registered.ID)
	require.NoError(t, err)
	assert.Equal(t, "Alex", me.Name)
	assert.Equal(t, "user", me.Role)

	_, err = service.Me(ctx, "missing")
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}
