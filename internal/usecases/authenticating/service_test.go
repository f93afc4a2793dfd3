package authenticating

import (
	"errors"
	"testing"

	"github.com/agencydash/analytics-dashboard-api/infrastructure/repository/mocks"
	"github.com/agencydash/analytics-dashboard-api/internal/config"
	"github.com/agencydash/analytics-dashboard-api/internal/domain"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"
)

func testConfig() *config.Config {
	return &config.Config{
		Auth: config.Auth{Secret: "test_secret"},
	}
}

func hashFor(t *testing.T, password string) string {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	assert.NoError(t, err)
	return string(hash)
}

func TestLoginUser(t *testing.T) {
	tests := []struct {
		name     string
		email    string
		password string
		setup    func(repo *mocks.MockUserRepository)
		validate func(t *testing.T, token string, err error)
	}{
		{
			name:     "valid credentials return a token",
			email:    "Ana@Example.com",
			password: "Sup3rSecret",
			setup: func(repo *mocks.MockUserRepository) {
				repo.EXPECT().GetUserByEmail("ana@example.com").Return(&domain.User{
					ID:           1,
					Email:        "ana@example.com",
					Active:       true,
					RoleID:       1,
					PasswordHash: hashFor(t, "Sup3rSecret"),
				}, nil)
			},
			validate: func(t *testing.T, token string, err error) {
				assert.NoError(t, err)
				assert.NotEmpty(t, token)
			},
		},
		{
			name:     "wrong password is rejected",
			email:    "ana@example.com",
			password: "wrong",
			setup: func(repo *mocks.MockUserRepository) {
				repo.EXPECT().GetUserByEmail("ana@example.com").Return(&domain.User{
					ID:           1,
					Active:       true,
					PasswordHash: hashFor(t, "Sup3rSecret"),
				}, nil)
			},
			validate: func(t *testing.T, token string, err error) {
				assert.Empty(t, token)
				assert.ErrorIs(t, err, ErrInvalidCredentials)
				assert.True(t, IsCredentialsError(err))
			},
		},
		{
			name:     "inactive account is rejected",
			email:    "ana@example.com",
			password: "Sup3rSecret",
			setup: func(repo *mocks.MockUserRepository) {
				repo.EXPECT().GetUserByEmail("ana@example.com").Return(&domain.User{
					ID:           1,
					Active:       false,
					PasswordHash: hashFor(t, "Sup3rSecret"),
				}, nil)
			},
			validate: func(t *testing.T, token string, err error) {
				assert.ErrorIs(t, err, ErrUserDisabled)
			},
		},
		{
			name:     "unknown user",
			email:    "ghost@example.com",
			password: "whatever",
			setup: func(repo *mocks.MockUserRepository) {
				repo.EXPECT().GetUserByEmail("ghost@example.com").Return(nil, nil)
			},
			validate: func(t *testing.T, token string, err error) {
				assert.ErrorIs(t, err, ErrUserNotFound)
			},
		},
		{
			name: "missing credentials never reach the repository",
			validate: func(t *testing.T, token string, err error) {
				assert.ErrorIs(t, err, ErrMissingRequiredData)
			},
		},
		{
			name:     "repository failure surfaces as a database error",
			email:    "ana@example.com",
			password: "Sup3rSecret",
			setup: func(repo *mocks.MockUserRepository) {
				repo.EXPECT().GetUserByEmail("ana@example.com").Return(nil, errors.New("connection refused"))
			},
			validate: func(t *testing.T, token string, err error) {
				assert.Error(t, err)
				var authErr *AuthError
				assert.ErrorAs(t, err, &authErr)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := mocks.NewMockUserRepository(ctrl)
			if tt.setup != nil {
				tt.setup(repo)
			}

			service := NewService(repo, testConfig())
			token, err := service.LoginUser(tt.email, tt.password)
			tt.validate(t, token, err)
		})
	}
}

func TestLoginThenValidateTokenRoundTrip(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mocks.NewMockUserRepository(ctrl)
	repo.EXPECT().GetUserByEmail("ana@example.com").Return(&domain.User{
		ID:           42,
		Name:         "Ana",
		Email:        "ana@example.com",
		Active:       true,
		RoleID:       2,
		PasswordHash: hashFor(t, "Sup3rSecret"),
	}, nil)

	service := NewService(repo, testConfig())

	token, err := service.LoginUser("ana@example.com", "Sup3rSecret")
	assert.NoError(t, err)

	claims, err := service.ValidateToken(token)
	assert.NoError(t, err)
	assert.Equal(t, 42, claims.UserID)
	assert.Equal(t, "Ana", claims.UserName)
	assert.Equal(t, 2, claims.UserRoleID)
}

func TestValidateTokenRejectsGarbage(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service := NewService(mocks.NewMockUserRepository(ctrl), testConfig())

	claims, err := service.ValidateToken("not.a.token")
	assert.ErrorIs(t, err, ErrInvalidToken)
	assert.True(t, IsAuthorizationError(err))
	assert.Nil(t, claims)
}

func TestCreateUser(t *testing.T) {
	tests := []struct {
		name     string
		user     *domain.User
		setup    func(repo *mocks.MockUserRepository)
		validate func(t *testing.T, user *domain.User, err error)
	}{
		{
			name: "new user is created inactive with hashed password and default role",
			user: &domain.User{
				Name:         "Ana",
				Lastname:     "Silva",
				Email:        "Ana@Example.com ",
				PasswordHash: "Sup3rSecret",
			},
			setup: func(repo *mocks.MockUserRepository) {
				repo.EXPECT().GetUserByEmail("ana@example.com").Return(nil, nil)
				repo.EXPECT().CreateUser(gomock.Any()).DoAndReturn(func(u *domain.User) (*domain.User, error) {
					assert.Equal(t, "ana@example.com", u.Email)
					assert.False(t, u.Active)
					assert.Equal(t, 3, u.RoleID)
					assert.NotEqual(t, "Sup3rSecret", u.PasswordHash)
					assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte("Sup3rSecret")))
					u.ID = 7
					return u, nil
				})
			},
			validate: func(t *testing.T, user *domain.User, err error) {
				assert.NoError(t, err)
				assert.Equal(t, 7, user.ID)
			},
		},
		{
			name: "duplicate email is rejected",
			user: &domain.User{
				Name:         "Ana",
				Lastname:     "Silva",
				Email:        "ana@example.com",
				PasswordHash: "Sup3rSecret",
			},
			setup: func(repo *mocks.MockUserRepository) {
				repo.EXPECT().GetUserByEmail("ana@example.com").Return(&domain.User{ID: 1}, nil)
			},
			validate: func(t *testing.T, user *domain.User, err error) {
				assert.Nil(t, user)
				assert.ErrorIs(t, err, ErrUserAlreadyExists)
			},
		},
		{
			name: "missing fields are rejected",
			user: &domain.User{Email: "ana@example.com"},
			validate: func(t *testing.T, user *domain.User, err error) {
				assert.ErrorIs(t, err, ErrMissingRequiredData)
			},
		},
		{
			name: "weak password is rejected",
			user: &domain.User{
				Name:         "Ana",
				Lastname:     "Silva",
				Email:        "ana@example.com",
				PasswordHash: "short",
			},
			setup: func(repo *mocks.MockUserRepository) {
				repo.EXPECT().GetUserByEmail("ana@example.com").Return(nil, nil)
			},
			validate: func(t *testing.T, user *domain.User, err error) {
				assert.ErrorIs(t, err, ErrWeakPassword)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := mocks.NewMockUserRepository(ctrl)
			if tt.setup != nil {
				tt.setup(repo)
			}

			service := NewService(repo, testConfig())
			user, err := service.CreateUser(tt.user)
			tt.validate(t, user, err)
		})
	}
}

func TestChangePassword(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mocks.NewMockUserRepository(ctrl)
	service := NewService(repo, testConfig())

	stored := &domain.User{
		ID:           1,
		PasswordHash: hashFor(t, "OldPassw0rd"),
	}

	repo.EXPECT().GetUserByID(1).Return(stored, nil)
	repo.EXPECT().UpdateUser(gomock.Any()).DoAndReturn(func(u *domain.User) error {
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte("NewPassw0rd")))
		return nil
	})

	assert.NoError(t, service.ChangePassword(1, "OldPassw0rd", "NewPassw0rd"))
}

func TestChangePasswordWrongCurrent(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mocks.NewMockUserRepository(ctrl)
	repo.EXPECT().GetUserByID(1).Return(&domain.User{
		ID:           1,
		PasswordHash: hashFor(t, "OldPassw0rd"),
	}, nil)

	service := NewService(repo, testConfig())

	err := service.ChangePassword(1, "guess", "NewPassw0rd")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}
