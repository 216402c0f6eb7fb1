package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/fitfusion/backend/internal/models"
	"github.com/fitfusion/backend/internal/types"
)

// TokenLifetime is the validity window for both access and refresh tokens,
// matching the 30-day cookie max-age.
const TokenLifetime = 30 * 24 * time.Hour

var (
	// ErrPasswordMismatch is returned when password and password2 differ.
	ErrPasswordMismatch = errors.New("passwords do not match")
	// ErrUserExists is returned when the username or email is taken.
	ErrUserExists = errors.New("user already exists")
	// ErrInvalidCredentials is returned on a failed login.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrInvalidToken is returned for unparseable or expired tokens.
	ErrInvalidToken = errors.New("invalid token")
)

// ProfilesCreated reports which profile records registration produced.
type ProfilesCreated struct {
	BasicProfile    bool `json:"basic_profile"`
	PhysicalProfile bool `json:"physical_profile"`
	FitnessProfile  bool `json:"fitness_profile"`
	DietaryProfile  bool `json:"dietary_profile"`
}

// AuthService issues and validates credentials and creates accounts.
type AuthService struct {
	db        *gorm.DB
	jwtSecret string
}

// NewAuthService creates a new AuthService instance
func NewAuthService(db *gorm.DB, jwtSecret string) *AuthService {
	return &AuthService{
		db:        db,
		jwtSecret: jwtSecret,
	}
}

// Register creates an account plus whichever of the three profile records
// the request carries fields for. Each profile is created independently; a
// partial set is tolerated and reported in ProfilesCreated.
func (s *AuthService) Register(ctx context.Context, req *types.RegisterRequest) (*models.User, *ProfilesCreated, error) {
	if req.Password != req.Password2 {
		return nil, nil, ErrPasswordMismatch
	}

	var existing models.User
	err := s.db.WithContext(ctx).
		Where("username = ? OR email = ?", req.Username, req.Email).
		First(&existing).Error
	if err == nil {
		return nil, nil, ErrUserExists
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil, err
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := models.User{
		Username:     req.Username,
		Email:        req.Email,
		PasswordHash: string(hashedPassword),
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Age:          req.Age,
		Occupation:   req.Occupation,
		AboutMe:      req.AboutMe,
	}
	if err := s.db.WithContext(ctx).Create(&user).Error; err != nil {
		return nil, nil, err
	}

	created := &ProfilesCreated{BasicProfile: true}

	if req.Height != nil || req.Weight != nil || req.Gender != nil {
		profile := models.PhysicalProfile{
			UserID: user.ID,
			Height: intOrZero(req.Height),
			Weight: intOrZero(req.Weight),
			Gender: stringOrEmpty(req.Gender),
		}
		if err := s.db.WithContext(ctx).Create(&profile).Error; err != nil {
			return nil, nil, fmt.Errorf("failed to create physical profile: %w", err)
		}
		user.PhysicalProfile = &profile
		created.PhysicalProfile = true
	}

	if req.FitnessLevel != nil || req.WorkoutFrequency != nil || req.WorkoutDuration != nil ||
		req.WorkoutIntensity != nil || req.WorkoutType != nil || req.WorkoutGoal != nil || req.HealthGoal != nil {
		profile := models.FitnessProfile{
			UserID:           user.ID,
			FitnessLevel:     models.FitnessLevelBeginner,
			WorkoutFrequency: intOrZero(req.WorkoutFrequency),
			WorkoutDuration:  intOrZero(req.WorkoutDuration),
			WorkoutIntensity: intOrZero(req.WorkoutIntensity),
			WorkoutType:      stringOrEmpty(req.WorkoutType),
			WorkoutGoal:      stringOrEmpty(req.WorkoutGoal),
			HealthGoal:       stringOrEmpty(req.HealthGoal),
		}
		if req.FitnessLevel != nil {
			profile.FitnessLevel = *req.FitnessLevel
		}
		if err := s.db.WithContext(ctx).Create(&profile).Error; err != nil {
			return nil, nil, fmt.Errorf("failed to create fitness profile: %w", err)
		}
		user.FitnessProfile = &profile
		created.FitnessProfile = true
	}

	if req.DietPreference != nil || req.DietGoal != nil {
		profile := models.DietaryProfile{
			UserID:         user.ID,
			DietPreference: stringOrEmpty(req.DietPreference),
			DietGoal:       stringOrEmpty(req.DietGoal),
		}
		if err := s.db.WithContext(ctx).Create(&profile).Error; err != nil {
			return nil, nil, fmt.Errorf("failed to create dietary profile: %w", err)
		}
		user.DietaryProfile = &profile
		created.DietaryProfile = true
	}

	return &user, created, nil
}

// Login exchanges credentials for an access/refresh token pair.
func (s *AuthService) Login(ctx context.Context, username, password string) (*models.User, *types.TokenPair, error) {
	var user models.User
	if err := s.db.WithContext(ctx).Where("username = ?", username).First(&user).Error; err != nil {
		return nil, nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, nil, ErrInvalidCredentials
	}

	pair, err := s.generateTokenPair(&user)
	if err != nil {
		return nil, nil, err
	}
	return &user, pair, nil
}

// Refresh validates a refresh token and issues a fresh access token.
func (s *AuthService) Refresh(refreshToken string) (string, error) {
	claims, err := s.parseToken(refreshToken, "refresh")
	if err != nil {
		return "", err
	}
	return s.signToken(claims, "access")
}

// ValidateToken verifies an access token and extracts its claims.
func (s *AuthService) ValidateToken(tokenString string) (*types.TokenClaims, error) {
	return s.parseToken(tokenString, "access")
}

func (s *AuthService) generateTokenPair(user *models.User) (*types.TokenPair, error) {
	claims := &types.TokenClaims{
		UserID:   user.ID,
		Username: user.Username,
		IsAdmin:  user.IsAdmin,
	}

	access, err := s.signToken(claims, "access")
	if err != nil {
		return nil, err
	}
	refresh, err := s.signToken(claims, "refresh")
	if err != nil {
		return nil, err
	}
	return &types.TokenPair{Access: access, Refresh: refresh}, nil
}

func (s *AuthService) signToken(claims *types.TokenClaims, tokenType string) (string, error) {
	mapClaims := jwt.MapClaims{
		"user_id":    claims.UserID.String(),
		"username":   claims.Username,
		"is_admin":   claims.IsAdmin,
		"token_type": tokenType,
		"exp":        time.Now().Add(TokenLifetime).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, mapClaims)
	return token.SignedString([]byte(s.jwtSecret))
}

func (s *AuthService) parseToken(tokenString, wantType string) (*types.TokenClaims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(s.jwtSecret), nil
	})
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, ErrInvalidToken
	}

	if tokenType, _ := claims["token_type"].(string); tokenType != wantType {
		return nil, ErrInvalidToken
	}

	userIDStr, ok := claims["user_id"].(string)
	if !ok {
		return nil, ErrInvalidToken
	}
	userID, err := uuid.Parse(userIDStr)
	if err != nil {
		return nil, ErrInvalidToken
	}

	username, _ := claims["username"].(string)
	isAdmin, _ := claims["is_admin"].(bool)

	return &types.TokenClaims{
		UserID:   userID,
		Username: username,
		IsAdmin:  isAdmin,
	}, nil
}

func intOrZero(v *int) int {
	if v != nil {
		return *v
	}
	return 0
}

func stringOrEmpty(v *string) string {
	if v != nil {
		return *v
	}
	return ""
}
