package userapp

import (
	"context"
	"errors"
	"time"

	"github.com/gofrs/uuid"
	"golang.org/x/crypto/bcrypt"

	"minisocial/internal/config"
	sessionEntity "minisocial/internal/core/session"
	userEntity "minisocial/internal/core/user"
	sessionPort "minisocial/internal/ports/session"
	userPort "minisocial/internal/ports/user"

	"go.uber.org/zap"
)

// UserService handles registration, login/logout and profile reads.
type UserService struct {
	UserRepository userPort.UserRepository
	Sessions       sessionPort.SessionStore
	secret         []byte
	sessionTTL     time.Duration
}

func NewUserService(repo userPort.UserRepository, sessions sessionPort.SessionStore, secret []byte) *UserService {
	return &UserService{
		UserRepository: repo,
		Sessions:       sessions,
		secret:         secret,
		sessionTTL:     config.SessionTTL(),
	}
}

// RegisterUser validates the form, hashes the password and creates the user.
// Registration does not log the user in; they go through LoginUser next.
func (s *UserService) RegisterUser(ctx context.Context, username, email, password, confirmPassword string) (*userPort.UserDTO, error) {
	if username == "" || email == "" || password == "" {
		return nil, userPort.ErrMissingField
	}
	if password != confirmPassword {
		return nil, userPort.ErrPasswordMismatch
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	id, err := uuid.NewV4()
	if err != nil {
		return nil, err
	}

	u, err := s.UserRepository.Create(ctx, &userEntity.User{
		ID:       id,
		Username: username,
		Email:    email,
		Password: string(hashed),
	})
	if err != nil {
		if !errors.Is(err, userPort.ErrDuplicate) {
			config.Logger.Error("creating user", zap.String("username", username), zap.Error(err))
		}
		return nil, err
	}

	config.Logger.Info("user registered", zap.String("userID", u.ID.String()), zap.String("username", u.Username))
	return toUserDTO(u), nil
}

// LoginUser verifies the credentials and establishes a session. The returned
// token is the value of the session cookie; the session itself lives in the
// store so logout can invalidate it server-side.
func (s *UserService) LoginUser(ctx context.Context, username, password string) (*userPort.LoginResponse, error) {
	u, err := s.UserRepository.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, userPort.ErrNotFound) {
			// same error as a wrong password, so the response does not
			// reveal whether the username exists
			return nil, userPort.ErrInvalidCredentials
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(password)); err != nil {
		return nil, userPort.ErrInvalidCredentials
	}

	sessionID, err := uuid.NewV4()
	if err != nil {
		return nil, err
	}

	sess := &sessionEntity.Session{
		ID:       sessionID.String(),
		UserID:   u.ID.String(),
		Username: u.Username,
	}
	if err := s.Sessions.Save(ctx, sess, s.sessionTTL); err != nil {
		return nil, err
	}

	token, err := sessionEntity.NewToken(sess, s.secret, s.sessionTTL)
	if err != nil {
		return nil, err
	}

	config.Logger.Info("user logged in", zap.String("userID", sess.UserID), zap.String("username", sess.Username))
	return &userPort.LoginResponse{
		Token:     token,
		ExpiresAt: time.Now().Add(s.sessionTTL).Unix(),
	}, nil
}

// Logout removes the session from the store unconditionally.
func (s *UserService) Logout(ctx context.Context, sessionID string) error {
	return s.Sessions.Delete(ctx, sessionID)
}

// GetProfile returns the user's public profile.
func (s *UserService) GetProfile(ctx context.Context, userID string) (*userPort.UserDTO, error) {
	u, err := s.UserRepository.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	return toUserDTO(u), nil
}

func toUserDTO(u *userEntity.User) *userPort.UserDTO {
	return &userPort.UserDTO{
		ID:        u.ID.String(),
		Username:  u.Username,
		Email:     u.Email,
		Bio:       u.Bio,
		CreatedAt: u.CreatedAt,
	}
}
