package services

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/planhub/planhub/internal/email"
	"github.com/planhub/planhub/internal/logging"
	"github.com/planhub/planhub/internal/models"
	"github.com/planhub/planhub/internal/repositories"
	"github.com/planhub/planhub/internal/utils"
)

type UserService struct {
	userRepo    *repositories.UserRepository
	sessionRepo *repositories.SessionRepository
	redisRepo   *repositories.RedisRepository
	mailer      email.Mailer
}

func NewUserService(
	userRepo *repositories.UserRepository,
	sessionRepo *repositories.SessionRepository,
	redisRepo *repositories.RedisRepository,
	mailer email.Mailer,
) *UserService {
	return &UserService{
		userRepo:    userRepo,
		sessionRepo: sessionRepo,
		redisRepo:   redisRepo,
		mailer:      mailer,
	}
}

func (s *UserService) Register(user *models.User) (string, string, error) {
	user.Prepare()

	// 1. Check if it already exists
	existing, _ := s.userRepo.FindUserByEmail(user.Email)
	if existing != nil {
		return "", "", errors.New("user already exists")
	}

	// 2. Hash password before saving
	hashedPassword, err := utils.Hash(user.Password)
	if err != nil {
		return "", "", err
	}
	user.PasswordHash = string(hashedPassword)
	user.Password = ""

	// 3. Policy: first user becomes admin
	userCount, err := s.userRepo.CountUsers()
	if err != nil {
		return "", "", err
	}
	if userCount == 0 {
		user.Role = "admin"
	} else if user.Role == "" {
		user.Role = "user"
	}

	// 4. Save user in DB
	if err := s.userRepo.Create(user); err != nil {
		return "", "", err
	}

	// 5. Welcome email (best effort)
	if body, err := email.RenderTemplate(email.WelcomeTemplate, map[string]string{
		"Name":  user.Name,
		"Email": user.Email,
	}); err == nil {
		if err := s.mailer.Send(user.Email, body); err != nil {
			logging.C("users").Warnf("failed to send welcome email to %s: %v", user.Email, err)
		}
	}

	return s.issueTokens(user)
}

func (s *UserService) Login(emailAddr, password string) (string, string, error) {
	user, err := s.userRepo.FindUserByEmail(emailAddr)
	if err != nil || user == nil {
		return "", "", errors.New("user not found")
	}

	if err := utils.VerifyPassword(user.PasswordHash, password); err != nil {
		return "", "", errors.New("invalid password")
	}

	if err := s.userRepo.UpdateLastLogin(user.ID); err != nil {
		logging.C("users").Warnf("failed to update last login for %s: %v", user.ID, err)
	}

	// Opportunistic cleanup of expired refresh sessions.
	if err := s.sessionRepo.DeleteExpired(); err != nil {
		logging.C("users").Warnf("failed to prune expired sessions: %v", err)
	}

	return s.issueTokens(user)
}

func (s *UserService) issueTokens(user *models.User) (string, string, error) {
	accessToken, refreshToken, jti, err := utils.GenerateTokens(user.ID)
	if err != nil {
		return "", "", err
	}

	session := &models.Session{
		UserID:       user.ID,
		RefreshToken: refreshToken,
		ExpiresAt:    time.Now().Add(utils.RefreshTokenTTL),
	}

	if err := s.sessionRepo.Create(session); err != nil {
		return "", "", err
	}

	if err := s.redisRepo.StoreSession(context.Background(), jti, user.ID.String()); err != nil {
		logging.C("users").Warnf("failed to store session jti in redis: %v", err)
	}

	return accessToken, refreshToken, nil
}

func (s *UserService) Refresh(refreshToken string) (string, error) {
	// 1. Validate refresh token in database
	session, err := s.sessionRepo.FindByToken(refreshToken)
	if err != nil || session == nil {
		return "", errors.New("refresh token not found")
	}

	if session.IsRevoked {
		return "", errors.New("refresh token revoked")
	}

	if time.Now().After(session.ExpiresAt) {
		return "", errors.New("refresh token expired")
	}

	// 2. Validate refresh token signature
	claims, err := utils.VerifyJWT(refreshToken, utils.RefreshSecret())
	if err != nil {
		return "", errors.New("invalid refresh token")
	}

	blacklisted, err := s.redisRepo.IsBlacklisted(context.Background(), claims.ID)
	if err == nil && blacklisted {
		return "", errors.New("refresh token revoked")
	}

	userID, err := uuid.Parse(claims.Subject)
	if err != nil {
		return "", errors.New("invalid refresh token")
	}

	// 3. Generate new access token pair; the refresh token stays valid
	accessToken, _, _, err := utils.GenerateTokens(userID)
	if err != nil {
		return "", errors.New("could not generate new access token")
	}

	return accessToken, nil
}

func (s *UserService) Logout(refreshToken string) error {
	if err := s.sessionRepo.Revoke(refreshToken); err != nil {
		return err
	}

	if claims, err := utils.VerifyJWT(refreshToken, utils.RefreshSecret()); err == nil {
		ctx := context.Background()
		if err := s.redisRepo.Blacklist(ctx, claims.ID); err != nil {
			logging.C("users").Warnf("failed to blacklist jti: %v", err)
		}
		if err := s.redisRepo.DeleteSession(ctx, claims.ID); err != nil {
			logging.C("users").Warnf("failed to delete session jti: %v", err)
		}
	}

	return nil
}

// GetUser retrieves a user by ID with sensitive fields cleared.
func (s *UserService) GetUser(userID uuid.UUID) (*models.User, error) {
	user, err := s.userRepo.FindUserByID(userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, errors.New("user not found")
	}
	user.PasswordHash = ""
	return user, nil
}
