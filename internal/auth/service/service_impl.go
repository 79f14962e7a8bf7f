package service

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/nexcubelabs/nexcube/internal/auth/domain"
	"github.com/nexcubelabs/nexcube/internal/auth/password"
	"github.com/nexcubelabs/nexcube/internal/clock"
	"github.com/nexcubelabs/nexcube/internal/config"
	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const sessionKeyPrefix = "session:"

type Service struct {
	db         *gorm.DB
	log        *zap.Logger
	redis      *redis.Client
	clock      clock.Clock
	sessionTTL time.Duration
}

type ServiceParam struct {
	fx.In

	DB     *gorm.DB
	Log    *zap.Logger
	Redis  *redis.Client
	Clock  clock.Clock
	Config config.Config
}

func NewService(p ServiceParam) domain.Provider {
	ttl := p.Config.Auth.SessionTTL
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &Service{
		db:         p.DB,
		log:        p.Log.Named("auth.service"),
		redis:      p.Redis,
		clock:      p.Clock,
		sessionTTL: ttl,
	}
}

// Login implements domain.Provider.
func (s *Service) Login(ctx context.Context, email, pass string) (*domain.Session, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || pass == "" {
		return nil, domain.ErrInvalidCredentials
	}

	var user domain.User
	err := s.db.WithContext(ctx).Where("email = ? AND active = ?", email, true).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, err
	}

	if !password.Verify(pass, user.PasswordHash) {
		s.log.Warn("login rejected", zap.String("email", email))
		return nil, domain.ErrInvalidCredentials
	}

	session := &domain.Session{
		Token:     uuid.NewString(),
		UserID:    user.ID.String(),
		Email:     user.Email,
		Name:      user.Name,
		Role:      user.Role,
		ExpiresAt: s.clock.Now(ctx).Add(s.sessionTTL),
	}

	payload, err := json.Marshal(session)
	if err != nil {
		return nil, err
	}
	if err := s.redis.Set(ctx, sessionKeyPrefix+session.Token, payload, s.sessionTTL).Err(); err != nil {
		return nil, err
	}

	s.log.Info("login", zap.String("user_id", session.UserID))
	return session, nil
}

// Logout implements domain.Provider.
func (s *Service) Logout(ctx context.Context, token string) error {
	token = strings.TrimSpace(token)
	if token == "" {
		return domain.ErrUnauthorized
	}
	return s.redis.Del(ctx, sessionKeyPrefix+token).Err()
}

// Validate implements domain.Provider.
func (s *Service) Validate(ctx context.Context, token string) (*domain.Session, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return nil, domain.ErrUnauthorized
	}

	payload, err := s.redis.Get(ctx, sessionKeyPrefix+token).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, domain.ErrUnauthorized
		}
		return nil, err
	}

	var session domain.Session
	if err := json.Unmarshal(payload, &session); err != nil {
		return nil, domain.ErrUnauthorized
	}
	if s.clock.Now(ctx).After(session.ExpiresAt) {
		_ = s.redis.Del(ctx, sessionKeyPrefix+token).Err()
		return nil, domain.ErrUnauthorized
	}
	return &session, nil
}
