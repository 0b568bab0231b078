package user_test

import (
	"context"
	"errors"
	"testing"
	"time"

	appuser "github.com/okozak/contacts-api/application/user"
	"github.com/okozak/contacts-api/cmd/config"
	"github.com/okozak/contacts-api/constant"
	redismocks "github.com/okozak/contacts-api/mocks/repository/redis"
	usermocks "github.com/okozak/contacts-api/mocks/repository/user"
	"github.com/okozak/contacts-api/model"
	cerr "github.com/okozak/contacts-api/utils/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func testConfig() *config.Config {
	return &config.Config{
		Auth: config.AuthConfig{
			JWTSecret:      "test-secret",
			JWTExpiration:  time.Hour,
			SessionExpTime: time.Hour,
		},
	}
}

func TestUserApp_Register(t *testing.T) {
	type fields struct {
		userRepo  *usermocks.UserRepository
		redisRepo *redismocks.RedisRepository
	}
	tests := []struct {
		name     string
		req      *model.RegisterRequest
		mockCall func(f fields)
		want     *model.RegisterResponse
		wantErr  error
	}{
		{
			name: "success: register new user",
			req: &model.RegisterRequest{
				Username: "spiderman",
				Email:    "spider@man.com",
				Password: "password123",
			},
			mockCall: func(f fields) {
				f.userRepo.
					On("Get", mock.Anything, &model.UserFilter{Email: "spider@man.com"}).
					Return(nil, nil).
					Once()

				f.userRepo.
					On("Create", mock.Anything, mock.MatchedBy(func(ent *model.UserEntity) bool {
						return ent.Username == "spiderman" &&
							ent.Email == "spider@man.com" &&
							ent.PasswordHash != "" &&
							ent.PasswordHash != "password123"
					})).
					Return(&model.UserEntity{
						ID:           1,
						Username:     "spiderman",
						Email:        "spider@man.com",
						PasswordHash: "hashed_password",
						CreatedAt:    time.Now(),
					}, nil).
					Once()
			},
			want: &model.RegisterResponse{
				Username: "spiderman",
				Email:    "spider@man.com",
			},
		},
		{
			name: "error: email already exists",
			req: &model.RegisterRequest{
				Username: "spiderman",
				Email:    "existing@man.com",
				Password: "password123",
			},
			mockCall: func(f fields) {
				f.userRepo.
					On("Get", mock.Anything, &model.UserFilter{Email: "existing@man.com"}).
					Return(&model.UserEntity{ID: 1, Email: "existing@man.com"}, nil).
					Once()
			},
			wantErr: cerr.SetCustomError(constant.ErrCredentialExists),
		},
		{
			name: "error: repository Get returns error",
			req: &model.RegisterRequest{
				Username: "spiderman",
				Email:    "spider@man.com",
				Password: "password123",
			},
			mockCall: func(f fields) {
				f.userRepo.
					On("Get", mock.Anything, &model.UserFilter{Email: "spider@man.com"}).
					Return(nil, errors.New("db error")).
					Once()
			},
			wantErr: cerr.SetCustomError(constant.ErrInternal),
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			f := fields{
				userRepo:  usermocks.NewUserRepository(t),
				redisRepo: redismocks.NewRedisRepository(t),
			}
			tt.mockCall(f)
			app := appuser.NewUserApp(testConfig(), f.userRepo, f.redisRepo)

			got, err := app.Register(context.Background(), tt.req)
			if tt.wantErr != nil {
				assert.Equal(t, tt.wantErr, err)
				assert.Nil(t, got)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestUserApp_Login(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.MinCost)
	require.NoError(t, err)

	t.Run("success: token issued and session stored", func(t *testing.T) {
		userRepo := usermocks.NewUserRepository(t)
		redisRepo := redismocks.NewRedisRepository(t)
		userRepo.
			On("Get", mock.Anything, &model.UserFilter{Email: "spider@man.com"}).
			Return(&model.UserEntity{
				ID:           1,
				Username:     "spiderman",
				Email:        "spider@man.com",
				PasswordHash: string(hash),
			}, nil).
			Once()
		redisRepo.
			On("SetSession", mock.Anything, mock.AnythingOfType("string"), uint64(1), time.Hour).
			Return(nil).
			Once()

		app := appuser.NewUserApp(testConfig(), userRepo, redisRepo)
		got, err := app.Login(context.Background(), &model.LoginRequest{
			Email:    "spider@man.com",
			Password: "password123",
		})
		require.NoError(t, err)
		assert.Equal(t, "spiderman", got.Username)
		assert.NotEmpty(t, got.Token)
	})

	t.Run("error: wrong password", func(t *testing.T) {
		userRepo := usermocks.NewUserRepository(t)
		redisRepo := redismocks.NewRedisRepository(t)
		userRepo.
			On("Get", mock.Anything, &model.UserFilter{Email: "spider@man.com"}).
			Return(&model.UserEntity{ID: 1, PasswordHash: string(hash)}, nil).
			Once()

		app := appuser.NewUserApp(testConfig(), userRepo, redisRepo)
		_, err := app.Login(context.Background(), &model.LoginRequest{
			Email:    "spider@man.com",
			Password: "wrong",
		})
		assert.Equal(t, cerr.SetCustomError(constant.ErrInvalidPassword), err)
	})

	t.Run("error: unknown email", func(t *testing.T) {
		userRepo := usermocks.NewUserRepository(t)
		redisRepo := redismocks.NewRedisRepository(t)
		userRepo.
			On("Get", mock.Anything, &model.UserFilter{Email: "nobody@man.com"}).
			Return(nil, nil).
			Once()

		app := appuser.NewUserApp(testConfig(), userRepo, redisRepo)
		_, err := app.Login(context.Background(), &model.LoginRequest{
			Email:    "nobody@man.com",
			Password: "password123",
		})
		assert.Equal(t, cerr.SetCustomError(constant.ErrNotFound), err)
	})
}

func TestUserApp_ValidateToken(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.MinCost)
	require.NoError(t, err)

	login := func(t *testing.T, userRepo *usermocks.UserRepository, redisRepo *redismocks.RedisRepository) (appuser.UserApp, string, string) {
		var jti string
		userRepo.
			On("Get", mock.Anything, &model.UserFilter{Email: "spider@man.com"}).
			Return(&model.UserEntity{ID: 1, Username: "spiderman", Email: "spider@man.com", PasswordHash: string(hash)}, nil).
			Once()
		redisRepo.
			On("SetSession", mock.Anything, mock.AnythingOfType("string"), uint64(1), time.Hour).
			Run(func(args mock.Arguments) {
				jti = args.String(1)
			}).
			Return(nil).
			Once()

		app := appuser.NewUserApp(testConfig(), userRepo, redisRepo)
		res, err := app.Login(context.Background(), &model.LoginRequest{
			Email:    "spider@man.com",
			Password: "password123",
		})
		require.NoError(t, err)
		return app, res.Token, jti
	}

	t.Run("success: live session validates", func(t *testing.T) {
		userRepo := usermocks.NewUserRepository(t)
		redisRepo := redismocks.NewRedisRepository(t)
		app, token, jti := login(t, userRepo, redisRepo)

		redisRepo.
			On("GetSession", mock.Anything, jti).
			Return(uint64(1), nil).
			Once()

		userID, err := app.ValidateToken(context.Background(), token)
		assert.NoError(t, err)
		assert.Equal(t, uint64(1), userID)
	})

	t.Run("error: expired session", func(t *testing.T) {
		userRepo := usermocks.NewUserRepository(t)
		redisRepo := redismocks.NewRedisRepository(t)
		app, token, jti := login(t, userRepo, redisRepo)

		redisRepo.
			On("GetSession", mock.Anything, jti).
			Return(uint64(0), errors.New("redis: nil")).
			Once()

		_, err := app.ValidateToken(context.Background(), token)
		assert.Error(t, err)
	})

	t.Run("error: garbage token", func(t *testing.T) {
		userRepo := usermocks.NewUserRepository(t)
		redisRepo := redismocks.NewRedisRepository(t)
		app := appuser.NewUserApp(testConfig(), userRepo, redisRepo)

		_, err := app.ValidateToken(context.Background(), "not-a-token")
		assert.Error(t, err)
	})
}
