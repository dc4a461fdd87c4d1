package user_test

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	appuser "github.com/divyaalluri1312/FriendFleet/application/user"
	"github.com/divyaalluri1312/FriendFleet/cmd/config"
	"github.com/divyaalluri1312/FriendFleet/constant"
	redismocks "github.com/divyaalluri1312/FriendFleet/mocks/repository/redis"
	usermocks "github.com/divyaalluri1312/FriendFleet/mocks/repository/user"
	"github.com/divyaalluri1312/FriendFleet/model"
	cerr "github.com/divyaalluri1312/FriendFleet/utils/errors"
	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"golang.org/x/crypto/bcrypt"
)

func testConfig() *config.Config {
	return &config.Config{
		Auth: config.AuthConfig{
			JWTSecret:      "test-secret-key-for-jwt-signing",
			JWTExpiration:  time.Hour,
			SessionExpTime: time.Hour,
		},
		Upload: config.UploadConfig{
			URLPrefix: "/uploads",
		},
	}
}

func TestUserApp_Register(t *testing.T) {
	userID := primitive.NewObjectID()

	type fields struct {
		config    *config.Config
		userRepo  *usermocks.UserRepository
		redisRepo *redismocks.RedisRepository
	}
	type args struct {
		ctx context.Context
		req *model.RegisterRequest
	}
	tests := []struct {
		name     string
		fields   fields
		args     args
		mockCall func(f fields)
		want     *model.AuthResponse
		wantErr  bool
		errCode  constant.ErrorType
	}{
		{
			name: "success: register new user",
			fields: fields{
				config:    testConfig(),
				userRepo:  usermocks.NewUserRepository(t),
				redisRepo: redismocks.NewRedisRepository(t),
			},
			args: args{
				ctx: context.Background(),
				req: &model.RegisterRequest{
					Name:     "Test User",
					Phone:    "9876543210",
					Password: "password123",
					Age:      25,
					Gender:   "female",
				},
			},
			mockCall: func(f fields) {
				// Check phone doesn't exist
				f.userRepo.
					On("Get", mock.Anything, &model.UserFilter{Phone: "9876543210"}).
					Return(nil, nil).
					Once()

				// Create user
				f.userRepo.
					On("Create", mock.Anything, mock.MatchedBy(func(ent *model.UserEntity) bool {
						return ent.Name == "Test User" &&
							ent.Phone == "9876543210" &&
							ent.Age == 25 &&
							ent.Gender == "female" &&
							ent.PasswordHash != "" &&
							ent.ProfileImage == "https://api.dicebear.com/7.x/initials/svg?seed=Test User"
					})).
					Return(&model.UserEntity{
						ID:           userID,
						Name:         "Test User",
						Phone:        "9876543210",
						PasswordHash: "hashed_password",
						ProfileImage: "https://api.dicebear.com/7.x/initials/svg?seed=Test User",
						CreatedAt:    time.Now(),
					}, nil).
					Once()

				f.redisRepo.
					On("SetSession", mock.Anything, mock.AnythingOfType("string"), userID.Hex(), time.Hour).
					Return(nil).
					Once()
			},
			want: &model.AuthResponse{
				User: model.UserSummary{
					ID:           userID.Hex(),
					Name:         "Test User",
					Phone:        "9876543210",
					ProfileImage: "https://api.dicebear.com/7.x/initials/svg?seed=Test User",
				},
			},
			wantErr: false,
		},
		{
			name: "error: phone already exists",
			fields: fields{
				config:    testConfig(),
				userRepo:  usermocks.NewUserRepository(t),
				redisRepo: redismocks.NewRedisRepository(t),
			},
			args: args{
				ctx: context.Background(),
				req: &model.RegisterRequest{
					Name:     "Test User",
					Phone:    "9876543210",
					Password: "password123",
				},
			},
			mockCall: func(f fields) {
				f.userRepo.
					On("Get", mock.Anything, &model.UserFilter{Phone: "9876543210"}).
					Return(&model.UserEntity{
						ID:    userID,
						Phone: "9876543210",
					}, nil).
					Once()
			},
			want:    nil,
			wantErr: true,
			errCode: constant.ErrUserExists,
		},
		{
			name: "error: duplicate key race on create",
			fields: fields{
				config:    testConfig(),
				userRepo:  usermocks.NewUserRepository(t),
				redisRepo: redismocks.NewRedisRepository(t),
			},
			args: args{
				ctx: context.Background(),
				req: &model.RegisterRequest{
					Name:     "Test User",
					Phone:    "9876543210",
					Password: "password123",
				},
			},
			mockCall: func(f fields) {
				f.userRepo.
					On("Get", mock.Anything, &model.UserFilter{Phone: "9876543210"}).
					Return(nil, nil).
					Once()

				f.userRepo.
					On("Create", mock.Anything, mock.AnythingOfType("*model.UserEntity")).
					Return(nil, mongo.WriteException{WriteErrors: []mongo.WriteError{{Code: 11000}}}).
					Once()
			},
			want:    nil,
			wantErr: true,
			errCode: constant.ErrUserExists,
		},
		{
			name: "error: repository Get returns error",
			fields: fields{
				config:    testConfig(),
				userRepo:  usermocks.NewUserRepository(t),
				redisRepo: redismocks.NewRedisRepository(t),
			},
			args: args{
				ctx: context.Background(),
				req: &model.RegisterRequest{
					Name:     "Test User",
					Phone:    "9876543210",
					Password: "password123",
				},
			},
			mockCall: func(f fields) {
				f.userRepo.
					On("Get", mock.Anything, &model.UserFilter{Phone: "9876543210"}).
					Return(nil, errors.New("db error")).
					Once()
			},
			want:    nil,
			wantErr: true,
			errCode: constant.ErrInternal,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			if tt.mockCall != nil {
				ttFields := tt.fields
				tt.mockCall(ttFields)
			}
			app := appuser.NewUserApp(tt.fields.config, tt.fields.userRepo, tt.fields.redisRepo)

			got, err := app.Register(tt.args.ctx, tt.args.req)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Register() error = %v, wantErr %v", err, tt.wantErr)
			}

			if tt.wantErr {
				var ce cerr.CustomError
				if !errors.As(err, &ce) {
					t.Fatalf("error type = %T, want CustomError", err)
				}
				if ce.ErrorCode() != constant.ErrorTypeCode[tt.errCode] {
					t.Fatalf("error code = %s, want %s", ce.ErrorCode(), constant.ErrorTypeCode[tt.errCode])
				}
				return
			}

			if got.User != tt.want.User {
				t.Fatalf("Register() user = %+v, want %+v", got.User, tt.want.User)
			}
			if got.Token == "" {
				t.Fatal("Register() token should not be empty")
			}
		})
	}
}

func TestUserApp_Login(t *testing.T) {
	userID := primitive.NewObjectID()

	type fields struct {
		config    *config.Config
		userRepo  *usermocks.UserRepository
		redisRepo *redismocks.RedisRepository
	}
	type args struct {
		ctx context.Context
		req *model.LoginRequest
	}
	tests := []struct {
		name     string
		fields   fields
		args     args
		mockCall func(f fields)
		want     *model.AuthResponse
		wantErr  bool
		errCode  constant.ErrorType
	}{
		{
			name: "success: login with correct credentials",
			fields: fields{
				config:    testConfig(),
				userRepo:  usermocks.NewUserRepository(t),
				redisRepo: redismocks.NewRedisRepository(t),
			},
			args: args{
				ctx: context.Background(),
				req: &model.LoginRequest{
					Phone:    "9876543210",
					Password: "password123",
				},
			},
			mockCall: func(f fields) {
				hashedPassword, _ := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
				f.userRepo.
					On("Get", mock.Anything, &model.UserFilter{Phone: "9876543210"}).
					Return(&model.UserEntity{
						ID:           userID,
						Name:         "Test User",
						Phone:        "9876543210",
						PasswordHash: string(hashedPassword),
					}, nil).
					Once()

				f.redisRepo.
					On("SetSession", mock.Anything, mock.AnythingOfType("string"), userID.Hex(), time.Hour).
					Return(nil).
					Once()
			},
			want: &model.AuthResponse{
				User: model.UserSummary{
					ID:    userID.Hex(),
					Name:  "Test User",
					Phone: "9876543210",
				},
			},
			wantErr: false,
		},
		{
			name: "error: user not found",
			fields: fields{
				config:    testConfig(),
				userRepo:  usermocks.NewUserRepository(t),
				redisRepo: redismocks.NewRedisRepository(t),
			},
			args: args{
				ctx: context.Background(),
				req: &model.LoginRequest{
					Phone:    "0000000000",
					Password: "password123",
				},
			},
			mockCall: func(f fields) {
				f.userRepo.
					On("Get", mock.Anything, &model.UserFilter{Phone: "0000000000"}).
					Return(nil, nil).
					Once()
			},
			want:    nil,
			wantErr: true,
			errCode: constant.ErrNotFound,
		},
		{
			name: "error: invalid password",
			fields: fields{
				config:    testConfig(),
				userRepo:  usermocks.NewUserRepository(t),
				redisRepo: redismocks.NewRedisRepository(t),
			},
			args: args{
				ctx: context.Background(),
				req: &model.LoginRequest{
					Phone:    "9876543210",
					Password: "wrongpassword",
				},
			},
			mockCall: func(f fields) {
				hashedPassword, _ := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
				f.userRepo.
					On("Get", mock.Anything, &model.UserFilter{Phone: "9876543210"}).
					Return(&model.UserEntity{
						ID:           userID,
						Name:         "Test User",
						Phone:        "9876543210",
						PasswordHash: string(hashedPassword),
					}, nil).
					Once()
			},
			want:    nil,
			wantErr: true,
			errCode: constant.ErrInvalidPassword,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			if tt.mockCall != nil {
				ttFields := tt.fields
				tt.mockCall(ttFields)
			}
			app := appuser.NewUserApp(tt.fields.config, tt.fields.userRepo, tt.fields.redisRepo)

			got, err := app.Login(tt.args.ctx, tt.args.req)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Login() error = %v, wantErr %v", err, tt.wantErr)
			}

			if tt.wantErr {
				var ce cerr.CustomError
				if !errors.As(err, &ce) {
					t.Fatalf("error type = %T, want CustomError", err)
				}
				if ce.ErrorCode() != constant.ErrorTypeCode[tt.errCode] {
					t.Fatalf("error code = %s, want %s", ce.ErrorCode(), constant.ErrorTypeCode[tt.errCode])
				}
				return
			}

			if got.User.ID != tt.want.User.ID || got.User.Name != tt.want.User.Name {
				t.Fatalf("Login() = %+v, want %+v", got.User, tt.want.User)
			}
			if got.Token == "" {
				t.Fatal("Login() token should not be empty")
			}
		})
	}
}

// TestUserApp_RegisterLoginRoundTrip covers the full credential loop: a
// token issued by login is accepted by ValidateToken and resolves to the
// same user.
func TestUserApp_RegisterLoginRoundTrip(t *testing.T) {
	userID := primitive.NewObjectID()
	userRepo := usermocks.NewUserRepository(t)
	redisRepo := redismocks.NewRedisRepository(t)

	hashedPassword, _ := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
	userRepo.
		On("Get", mock.Anything, &model.UserFilter{Phone: "9876543210"}).
		Return(&model.UserEntity{
			ID:           userID,
			Name:         "Test User",
			Phone:        "9876543210",
			PasswordHash: string(hashedPassword),
		}, nil).
		Once()

	var jti string
	redisRepo.
		On("SetSession", mock.Anything, mock.AnythingOfType("string"), userID.Hex(), time.Hour).
		Run(func(args mock.Arguments) {
			jti = args.String(1)
		}).
		Return(nil).
		Once()

	app := appuser.NewUserApp(testConfig(), userRepo, redisRepo)

	loginResp, err := app.Login(context.Background(), &model.LoginRequest{
		Phone:    "9876543210",
		Password: "password123",
	})
	if err != nil {
		t.Fatalf("Login() error = %v", err)
	}

	redisRepo.
		On("GetSession", mock.Anything, jti).
		Return(userID.Hex(), nil).
		Once()

	got, err := app.ValidateToken(context.Background(), loginResp.Token)
	if err != nil {
		t.Fatalf("ValidateToken() error = %v", err)
	}
	if got != userID.Hex() {
		t.Fatalf("ValidateToken() = %s, want %s", got, userID.Hex())
	}
}

func TestUserApp_ValidateToken(t *testing.T) {
	userID := primitive.NewObjectID()

	login := func(t *testing.T, userRepo *usermocks.UserRepository, redisRepo *redismocks.RedisRepository) string {
		hashedPassword, _ := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
		userRepo.On("Get", mock.Anything, mock.Anything).Return(&model.UserEntity{
			ID:           userID,
			PasswordHash: string(hashedPassword),
		}, nil).Once()
		redisRepo.On("SetSession", mock.Anything, mock.AnythingOfType("string"), userID.Hex(), time.Hour).Return(nil).Once()

		app := appuser.NewUserApp(testConfig(), userRepo, redisRepo)
		loginResp, err := app.Login(context.Background(), &model.LoginRequest{Phone: "9876543210", Password: "password123"})
		if err != nil {
			t.Fatalf("Login() error = %v", err)
		}
		return loginResp.Token
	}

	t.Run("error: invalid token format", func(t *testing.T) {
		app := appuser.NewUserApp(testConfig(), usermocks.NewUserRepository(t), redismocks.NewRedisRepository(t))
		if _, err := app.ValidateToken(context.Background(), "invalid.token.string"); err == nil {
			t.Fatal("ValidateToken() expected error for malformed token")
		}
	})

	t.Run("error: wrong signing secret", func(t *testing.T) {
		userRepo := usermocks.NewUserRepository(t)
		redisRepo := redismocks.NewRedisRepository(t)
		token := login(t, userRepo, redisRepo)

		cfg := testConfig()
		cfg.Auth.JWTSecret = "a-different-secret"
		app := appuser.NewUserApp(cfg, userRepo, redisRepo)
		if _, err := app.ValidateToken(context.Background(), token); err == nil {
			t.Fatal("ValidateToken() expected error for wrong signature")
		}
	})

	t.Run("error: session not found in redis", func(t *testing.T) {
		userRepo := usermocks.NewUserRepository(t)
		redisRepo := redismocks.NewRedisRepository(t)
		token := login(t, userRepo, redisRepo)

		redisRepo.
			On("GetSession", mock.Anything, mock.AnythingOfType("string")).
			Return("", errors.New("session not found")).
			Once()

		app := appuser.NewUserApp(testConfig(), userRepo, redisRepo)
		if _, err := app.ValidateToken(context.Background(), token); err == nil {
			t.Fatal("ValidateToken() expected error for missing session")
		}
	})

	t.Run("error: session user mismatch", func(t *testing.T) {
		userRepo := usermocks.NewUserRepository(t)
		redisRepo := redismocks.NewRedisRepository(t)
		token := login(t, userRepo, redisRepo)

		redisRepo.
			On("GetSession", mock.Anything, mock.AnythingOfType("string")).
			Return(primitive.NewObjectID().Hex(), nil).
			Once()

		app := appuser.NewUserApp(testConfig(), userRepo, redisRepo)
		if _, err := app.ValidateToken(context.Background(), token); err == nil {
			t.Fatal("ValidateToken() expected error for session mismatch")
		}
	})
}

func TestUserApp_GetProfile(t *testing.T) {
	userID := primitive.NewObjectID()

	t.Run("success: profile found", func(t *testing.T) {
		userRepo := usermocks.NewUserRepository(t)
		userRepo.
			On("Get", mock.Anything, &model.UserFilter{ID: userID}).
			Return(&model.UserEntity{ID: userID, Name: "Test User", Phone: "9876543210"}, nil).
			Once()

		app := appuser.NewUserApp(testConfig(), userRepo, redismocks.NewRedisRepository(t))
		got, err := app.GetProfile(context.Background(), userID.Hex())
		if err != nil {
			t.Fatalf("GetProfile() error = %v", err)
		}
		if got.ID != userID || got.Name != "Test User" {
			t.Fatalf("GetProfile() = %+v", got)
		}
	})

	t.Run("error: user missing", func(t *testing.T) {
		userRepo := usermocks.NewUserRepository(t)
		userRepo.
			On("Get", mock.Anything, &model.UserFilter{ID: userID}).
			Return(nil, nil).
			Once()

		app := appuser.NewUserApp(testConfig(), userRepo, redismocks.NewRedisRepository(t))
		_, err := app.GetProfile(context.Background(), userID.Hex())

		var ce cerr.CustomError
		if !errors.As(err, &ce) || ce.ErrorCode() != constant.ErrorTypeCode[constant.ErrUserNotFound] {
			t.Fatalf("GetProfile() error = %v, want user not found", err)
		}
	})
}

func TestUserApp_UpdateProfile(t *testing.T) {
	userID := primitive.NewObjectID()
	newName := "Renamed User"

	t.Run("success: partial update", func(t *testing.T) {
		userRepo := usermocks.NewUserRepository(t)
		userRepo.
			On("Update", mock.Anything, userID, mock.MatchedBy(func(u *model.UserUpdate) bool {
				return u.Name != nil && *u.Name == newName && u.Phone == nil && u.Age == nil
			})).
			Return(&model.UserEntity{ID: userID, Name: newName}, nil).
			Once()

		app := appuser.NewUserApp(testConfig(), userRepo, redismocks.NewRedisRepository(t))
		got, err := app.UpdateProfile(context.Background(), userID.Hex(), &model.UpdateProfileRequest{Name: &newName})
		if err != nil {
			t.Fatalf("UpdateProfile() error = %v", err)
		}
		if got.Name != newName {
			t.Fatalf("UpdateProfile() name = %s, want %s", got.Name, newName)
		}
	})

	t.Run("error: user missing", func(t *testing.T) {
		userRepo := usermocks.NewUserRepository(t)
		userRepo.
			On("Update", mock.Anything, userID, mock.AnythingOfType("*model.UserUpdate")).
			Return(nil, nil).
			Once()

		app := appuser.NewUserApp(testConfig(), userRepo, redismocks.NewRedisRepository(t))
		_, err := app.UpdateProfile(context.Background(), userID.Hex(), &model.UpdateProfileRequest{Name: &newName})

		var ce cerr.CustomError
		if !errors.As(err, &ce) || ce.ErrorCode() != constant.ErrorTypeCode[constant.ErrUserNotFound] {
			t.Fatalf("UpdateProfile() error = %v, want user not found", err)
		}
	})
}

func TestUserApp_SaveProfileImage(t *testing.T) {
	userID := primitive.NewObjectID()

	t.Run("success: stores file and updates reference", func(t *testing.T) {
		cfg := testConfig()
		cfg.Upload.Dir = t.TempDir()

		var storedURL string
		userRepo := usermocks.NewUserRepository(t)
		userRepo.
			On("Update", mock.Anything, userID, mock.MatchedBy(func(u *model.UserUpdate) bool {
				if u.ProfileImage == nil {
					return false
				}
				storedURL = *u.ProfileImage
				return strings.HasPrefix(*u.ProfileImage, "/uploads/") &&
					strings.HasSuffix(*u.ProfileImage, "-avatar.png")
			})).
			Return(&model.UserEntity{ID: userID}, nil).
			Once()

		app := appuser.NewUserApp(cfg, userRepo, redismocks.NewRedisRepository(t))
		res, err := app.SaveProfileImage(context.Background(), userID.Hex(), "avatar.png", bytes.NewReader([]byte("png-bytes")))
		if err != nil {
			t.Fatalf("SaveProfileImage() error = %v", err)
		}
		if res.ImageURL != storedURL {
			t.Fatalf("SaveProfileImage() url = %s, want %s", res.ImageURL, storedURL)
		}

		// File must exist on disk under the upload dir
		name := strings.TrimPrefix(res.ImageURL, "/uploads/")
		data, err := os.ReadFile(filepath.Join(cfg.Upload.Dir, name))
		if err != nil {
			t.Fatalf("stored file missing: %v", err)
		}
		if string(data) != "png-bytes" {
			t.Fatalf("stored file content = %q", data)
		}
	})

	t.Run("error: user missing", func(t *testing.T) {
		cfg := testConfig()
		cfg.Upload.Dir = t.TempDir()

		userRepo := usermocks.NewUserRepository(t)
		userRepo.
			On("Update", mock.Anything, userID, mock.AnythingOfType("*model.UserUpdate")).
			Return(nil, nil).
			Once()

		app := appuser.NewUserApp(cfg, userRepo, redismocks.NewRedisRepository(t))
		_, err := app.SaveProfileImage(context.Background(), userID.Hex(), "avatar.png", bytes.NewReader([]byte("png-bytes")))

		var ce cerr.CustomError
		if !errors.As(err, &ce) || ce.ErrorCode() != constant.ErrorTypeCode[constant.ErrUserNotFound] {
			t.Fatalf("SaveProfileImage() error = %v, want user not found", err)
		}
	})
}
