package auth

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/TeluguDelicacies/WebsiteWithAdmin-sub000/internal/shared/apperr"
)

// ErrSessionExpired covers both the absolute TTL and the idle window.
var ErrSessionExpired = errors.New("session expired")

type Service struct {
	db          *gorm.DB
	log         *slog.Logger
	ttl         time.Duration
	idleTimeout time.Duration
}

func NewService(db *gorm.DB, log *slog.Logger, ttl, idleTimeout time.Duration) *Service {
	return &Service{db: db, log: log, ttl: ttl, idleTimeout: idleTimeout}
}

// SignIn verifies credentials and opens a session. The error is the same for
// an unknown email and a wrong password.
func (s *Service) SignIn(ctx context.Context, email, password string) (Session, User, error) {
	var u User
	err := s.db.WithContext(ctx).First(&u, "email = ?", email).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return Session{}, User{}, apperr.UnauthorizedErr("Invalid email or password.")
	}
	if err != nil {
		return Session{}, User{}, apperr.Remote(err)
	}
	if bcrypt.CompareHashAndPassword(u.PasswordHash, []byte(password)) != nil {
		return Session{}, User{}, apperr.UnauthorizedErr("Invalid email or password.")
	}

	now := time.Now()
	sess := Session{
		ID:         uuid.NewString(),
		UserID:     u.ID,
		ExpiresAt:  now.Add(s.ttl),
		CreatedAt:  now,
		LastSeenAt: now,
	}
	if err := s.db.WithContext(ctx).Create(&sess).Error; err != nil {
		return Session{}, User{}, apperr.Remote(err)
	}
	s.log.Info("operator signed in", "user_id", u.ID)
	return sess, u, nil
}

// Resolve loads a session and enforces both expiry and the inactivity
// window, touching last_seen_at on success.
func (s *Service) Resolve(ctx context.Context, sessionID string) (Session, User, error) {
	var sess Session
	err := s.db.WithContext(ctx).First(&sess, "id = ?", sessionID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return Session{}, User{}, ErrSessionExpired
	}
	if err != nil {
		return Session{}, User{}, err
	}

	now := time.Now()
	if now.After(sess.ExpiresAt) || now.Sub(sess.LastSeenAt) > s.idleTimeout {
		_ = s.db.WithContext(ctx).Delete(&Session{}, "id = ?", sessionID).Error
		return Session{}, User{}, ErrSessionExpired
	}

	var u User
	if err := s.db.WithContext(ctx).First(&u, "id = ?", sess.UserID).Error; err != nil {
		return Session{}, User{}, err
	}

	// Best effort: a missed touch only shortens the idle window, it never
	// locks a valid session out.
	sess.LastSeenAt = now
	if err := s.db.WithContext(ctx).Model(&Session{}).
		Where("id = ?", sessionID).
		Update("last_seen_at", now).Error; err != nil {
		s.log.Warn("session touch failed", "err", err)
	}

	return sess, u, nil
}

// SignOut removes the session; a missing row is not an error.
func (s *Service) SignOut(ctx context.Context, sessionID string) error {
	if err := s.db.WithContext(ctx).Delete(&Session{}, "id = ?", sessionID).Error; err != nil {
		return apperr.Remote(err)
	}
	return nil
}
