package services

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"hotel-frontdesk/models"

	jwt "github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const minPasswordLength = 6

// Identity is the authenticated staff member carried on a request.
type Identity struct {
	UserID    uint      `json:"userId"`
	Username  string    `json:"username"`
	TokenID   string    `json:"-"`
	ExpiresAt time.Time `json:"expiresAt"`
}

type Claims struct {
	Username string `json:"username"`
	jwt.RegisteredClaims
}

type AuthService struct {
	DB     *gorm.DB
	Log    *zap.Logger
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

func NewAuthService(db *gorm.DB, log *zap.Logger, secret string, ttl time.Duration) *AuthService {
	return &AuthService{
		DB:     db,
		Log:    log.Named("auth"),
		secret: []byte(secret),
		ttl:    ttl,
		now:    time.Now,
	}
}

// Register creates a staff account with a bcrypt hashed password.
func (s *AuthService) Register(ctx context.Context, username, password string) (*models.User, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return nil, fmt.Errorf("%w: username is required", ErrInvalidInput)
	}
	if len(password) < minPasswordLength {
		return nil, fmt.Errorf("%w: password must be at least %d characters", ErrInvalidInput, minPasswordLength)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := models.User{Username: username, Password: string(hash)}
	if err := s.DB.WithContext(ctx).Create(&user).Error; err != nil {
		if isDuplicateKeyError(err) {
			return nil, fmt.Errorf("user %q: %w", username, ErrDuplicateUsername)
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	s.Log.Info("staff user registered", zap.Uint("user_id", user.ID), zap.String("username", username))
	return &user, nil
}

// Login checks the credentials and issues a signed token.
func (s *AuthService) Login(ctx context.Context, username, password string) (string, *Identity, error) {
	var user models.User
	if err := s.DB.WithContext(ctx).Where("username = ?", strings.TrimSpace(username)).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", nil, ErrInvalidCredentials
		}
		return "", nil, fmt.Errorf("failed to load user: %w", err)
	}

	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)) != nil {
		return "", nil, ErrInvalidCredentials
	}

	return s.IssueToken(user)
}

// IssueToken signs an HS256 token for user with a fresh token id.
func (s *AuthService) IssueToken(user models.User) (string, *Identity, error) {
	now := s.now()
	id := &Identity{
		UserID:    user.ID,
		Username:  user.Username,
		TokenID:   uuid.NewString(),
		ExpiresAt: now.Add(s.ttl),
	}

	claims := Claims{
		Username: user.Username,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        id.TokenID,
			Subject:   strconv.FormatUint(uint64(user.ID), 10),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(id.ExpiresAt),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", nil, fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, id, nil
}

// Authenticate validates a token and rejects revoked ones.
func (s *AuthService) Authenticate(ctx context.Context, token string) (*Identity, error) {
	claims := &Claims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		return s.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil || !parsed.Valid {
		return nil, fmt.Errorf("%w: %v", ErrUnauthorized, err)
	}

	uid, err := strconv.ParseUint(claims.Subject, 10, 64)
	if err != nil || claims.ID == "" {
		return nil, fmt.Errorf("%w: malformed claims", ErrUnauthorized)
	}

	var revoked int64
	if err := s.DB.WithContext(ctx).Model(&models.RevokedToken{}).Where("jti = ?", claims.ID).Count(&revoked).Error; err != nil {
		return nil, fmt.Errorf("failed to check token revocation: %w", err)
	}
	if revoked > 0 {
		return nil, fmt.Errorf("%w: token revoked", ErrUnauthorized)
	}

	id := &Identity{
		UserID:   uint(uid),
		Username: claims.Username,
		TokenID:  claims.ID,
	}
	if claims.ExpiresAt != nil {
		id.ExpiresAt = claims.ExpiresAt.Time
	}
	return id, nil
}

// Logout revokes the identity's token until its natural expiry.
func (s *AuthService) Logout(ctx context.Context, id Identity) error {
	rt := models.RevokedToken{JTI: id.TokenID, ExpiresAt: id.ExpiresAt}
	if err := s.DB.WithContext(ctx).Create(&rt).Error; err != nil {
		if isDuplicateKeyError(err) {
			return nil
		}
		return fmt.Errorf("failed to revoke token: %w", err)
	}

	s.Log.Info("staff user logged out", zap.Uint("user_id", id.UserID))
	return nil
}
