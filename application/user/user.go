package user

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/divyaalluri1312/FriendFleet/cmd/config"
	"github.com/divyaalluri1312/FriendFleet/constant"
	"github.com/divyaalluri1312/FriendFleet/model"
	redisrepo "github.com/divyaalluri1312/FriendFleet/repository/redis"
	userrepo "github.com/divyaalluri1312/FriendFleet/repository/user"
	"github.com/divyaalluri1312/FriendFleet/utils/errors"
	"github.com/divyaalluri1312/FriendFleet/utils/logger"
	"github.com/divyaalluri1312/FriendFleet/utils/metrics"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

type UserApp interface {
	Register(ctx context.Context, req *model.RegisterRequest) (*model.AuthResponse, error)
	Login(ctx context.Context, req *model.LoginRequest) (*model.AuthResponse, error)
	ValidateToken(ctx context.Context, tokenString string) (string, error)
	GetProfile(ctx context.Context, userID string) (*model.UserEntity, error)
	UpdateProfile(ctx context.Context, userID string, req *model.UpdateProfileRequest) (*model.UserEntity, error)
	SaveProfileImage(ctx context.Context, userID string, filename string, file io.Reader) (*model.UploadImageResponse, error)
}

type UserAppImpl struct {
	config    *config.Config
	userRepo  userrepo.UserRepository
	redisRepo redisrepo.Repository
}

func NewUserApp(config *config.Config, userRepo userrepo.UserRepository, redisRepo redisrepo.Repository) UserApp {
	return &UserAppImpl{
		config:    config,
		userRepo:  userRepo,
		redisRepo: redisRepo,
	}
}

func (s *UserAppImpl) Register(ctx context.Context, req *model.RegisterRequest) (*model.AuthResponse, error) {
	// Check if user exists by phone
	existingUser, err := s.userRepo.Get(ctx, &model.UserFilter{Phone: req.Phone})
	if err != nil {
		logger.Error("[Register] err userRepo.Get phone", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	if existingUser != nil {
		return nil, errors.SetCustomError(constant.ErrUserExists)
	}

	// Hash password
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		logger.Error("[Register] err bcrypt.GenerateFromPassword", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	// Create user entity with a deterministic initials avatar
	userEntity := &model.UserEntity{
		Name:         req.Name,
		Phone:        req.Phone,
		PasswordHash: string(hashedPassword),
		Age:          req.Age,
		Gender:       req.Gender,
		ProfileImage: fmt.Sprintf("https://api.dicebear.com/7.x/initials/svg?seed=%s", req.Name),
	}

	// Save to database; the unique phone index backstops the existence
	// check under concurrent registrations
	userEntity, err = s.userRepo.Create(ctx, userEntity)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, errors.SetCustomError(constant.ErrUserExists)
		}
		logger.Error("[Register] err userRepo.Create", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	token, err := s.issueSession(ctx, userEntity.ID)
	if err != nil {
		logger.Error("[Register] err issueSession", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	metrics.UsersRegisteredTotal.Inc()

	return &model.AuthResponse{
		Token: token,
		User:  summarize(userEntity),
	}, nil
}

func (s *UserAppImpl) Login(ctx context.Context, req *model.LoginRequest) (*model.AuthResponse, error) {
	user, err := s.userRepo.Get(ctx, &model.UserFilter{Phone: req.Phone})
	if err != nil {
		logger.Error("[Login] err userRepo.Get", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	if user == nil {
		return nil, errors.SetCustomError(constant.ErrNotFound)
	}

	// Verify password
	err = bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password))
	if err != nil {
		return nil, errors.SetCustomError(constant.ErrInvalidPassword)
	}

	token, err := s.issueSession(ctx, user.ID)
	if err != nil {
		logger.Error("[Login] err issueSession", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	return &model.AuthResponse{
		Token: token,
		User:  summarize(user),
	}, nil
}

func (s *UserAppImpl) ValidateToken(ctx context.Context, tokenString string) (string, error) {
	// Parse token
	token, err := jwt.ParseWithClaims(tokenString, &jwt.RegisteredClaims{}, func(token *jwt.Token) (interface{}, error) {
		return []byte(s.config.Auth.JWTSecret), nil
	})
	if err != nil {
		return "", fmt.Errorf("invalid token: %w", err)
	}

	// Extract claims
	claims, ok := token.Claims.(*jwt.RegisteredClaims)
	if !ok || !token.Valid {
		return "", fmt.Errorf("invalid claims")
	}

	// Subject carries the user's hex object id
	userID := claims.Subject
	if _, err := primitive.ObjectIDFromHex(userID); err != nil {
		return "", fmt.Errorf("invalid user id in token")
	}

	// Extract JTI (Token ID)
	jti := claims.ID
	if jti == "" {
		return "", fmt.Errorf("token missing jti")
	}

	// Check Redis session key
	redisUserID, err := s.redisRepo.GetSession(ctx, jti)
	if err != nil {
		return "", fmt.Errorf("invalid or expired session")
	}

	// Compare Redis userID with claims.Subject
	if redisUserID != userID {
		return "", fmt.Errorf("token does not match user session")
	}

	return userID, nil
}

func (s *UserAppImpl) GetProfile(ctx context.Context, userID string) (*model.UserEntity, error) {
	oid, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return nil, errors.SetCustomError(constant.ErrUnauthorize)
	}

	user, err := s.userRepo.Get(ctx, &model.UserFilter{ID: oid})
	if err != nil {
		logger.Error("[GetProfile] err userRepo.Get", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if user == nil {
		return nil, errors.SetCustomError(constant.ErrUserNotFound)
	}
	return user, nil
}

func (s *UserAppImpl) UpdateProfile(ctx context.Context, userID string, req *model.UpdateProfileRequest) (*model.UserEntity, error) {
	oid, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return nil, errors.SetCustomError(constant.ErrUnauthorize)
	}

	update := &model.UserUpdate{
		Name:         req.Name,
		Phone:        req.Phone,
		ProfileImage: req.ProfileImage,
		Age:          req.Age,
		Gender:       req.Gender,
	}

	user, err := s.userRepo.Update(ctx, oid, update)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, errors.SetCustomError(constant.ErrUserExists)
		}
		logger.Error("[UpdateProfile] err userRepo.Update", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if user == nil {
		return nil, errors.SetCustomError(constant.ErrUserNotFound)
	}
	return user, nil
}

// SaveProfileImage stores the uploaded file under the configured uploads
// directory and points the user's profileImage at its public path.
func (s *UserAppImpl) SaveProfileImage(ctx context.Context, userID string, filename string, file io.Reader) (*model.UploadImageResponse, error) {
	oid, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return nil, errors.SetCustomError(constant.ErrUnauthorize)
	}

	if err := os.MkdirAll(s.config.Upload.Dir, 0o755); err != nil {
		logger.Error("[SaveProfileImage] err MkdirAll", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	base := filepath.Base(filename)
	if base == "." || base == "/" || base == "" {
		base = uuid.NewString()
	}
	storedName := fmt.Sprintf("%d-%s", time.Now().UnixMilli(), base)

	dst, err := os.Create(filepath.Join(s.config.Upload.Dir, storedName))
	if err != nil {
		logger.Error("[SaveProfileImage] err os.Create", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, file); err != nil {
		logger.Error("[SaveProfileImage] err io.Copy", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	imageURL := s.config.Upload.URLPrefix + "/" + storedName
	user, err := s.userRepo.Update(ctx, oid, &model.UserUpdate{ProfileImage: &imageURL})
	if err != nil {
		logger.Error("[SaveProfileImage] err userRepo.Update", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if user == nil {
		return nil, errors.SetCustomError(constant.ErrUserNotFound)
	}

	return &model.UploadImageResponse{ImageURL: imageURL}, nil
}

// issueSession creates a JWT for the user and records its jti in Redis.
func (s *UserAppImpl) issueSession(ctx context.Context, userID primitive.ObjectID) (string, error) {
	token, jti, err := s.generateJWT(userID)
	if err != nil {
		return "", err
	}

	if err := s.redisRepo.SetSession(ctx, jti, userID.Hex(), s.config.Auth.SessionExpTime); err != nil {
		return "", err
	}
	return token, nil
}

// generateJWT creates a JWT token for the user
func (s *UserAppImpl) generateJWT(userID primitive.ObjectID) (string, string, error) {
	newUUID, _ := uuid.NewRandom()
	claims := jwt.RegisteredClaims{
		Subject:   userID.Hex(),
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(s.config.Auth.JWTExpiration)),
		IssuedAt:  jwt.NewNumericDate(time.Now()),
		ID:        newUUID.String(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(s.config.Auth.JWTSecret))
	if err != nil {
		return "", "", fmt.Errorf("failed to sign token: %w", err)
	}

	return tokenString, claims.ID, nil
}

func summarize(u *model.UserEntity) model.UserSummary {
	return model.UserSummary{
		ID:           u.ID.Hex(),
		Name:         u.Name,
		Phone:        u.Phone,
		ProfileImage: u.ProfileImage,
	}
}
