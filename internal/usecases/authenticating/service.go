package authenticating

import (
	"fmt"
	"slices"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/jonboulle/clockwork"
	"github.com/pkg/errors"

	"github.com/vfg2006/econ-pulse-api/internal/config"
	"github.com/vfg2006/econ-pulse-api/internal/domain"
	"github.com/vfg2006/econ-pulse-api/pkg/apiErrors"
	"github.com/vfg2006/econ-pulse-api/pkg/utils"
)

const issuer = "econ-pulse-api"

var knownRoles = []string{domain.RoleAdmin}

type Authenticator interface {
	IssueToken(subject, role string, ttl time.Duration) (string, error)
	ValidateToken(tokenString string) (*domain.Claims, error)
}

type Service struct {
	secret     []byte
	defaultTTL time.Duration
	clock      clockwork.Clock
}

func NewService(cfg *config.Config, clock clockwork.Clock) Authenticator {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}

	return &Service{
		secret:     []byte(cfg.Auth.Secret),
		defaultTTL: cfg.Auth.TokenTTL,
		clock:      clock,
	}
}

// IssueToken signs an HS256 token for subject. A zero ttl uses the
// configured default.
func (s *Service) IssueToken(subject, role string, ttl time.Duration) (string, error) {
	if len(s.secret) == 0 {
		return "", NewAuthError(ErrNotConfigured, apiErrors.ErrNotConfigured, "AUTH_SECRET is empty")
	}
	if subject == "" {
		return "", NewAuthError(ErrMissingSubject, apiErrors.ErrMissingRequiredData, "")
	}
	if !slices.Contains(knownRoles, role) {
		return "", NewAuthError(ErrUnsupportedRole, apiErrors.ErrInvalidRequest, role)
	}
	if ttl <= 0 {
		ttl = s.defaultTTL
	}

	id, err := utils.GenerateID()
	if err != nil {
		return "", errors.Wrap(err, "auth: generating token id")
	}

	now := s.clock.Now()
	claims := domain.Claims{
		Role: role,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        id,
			Issuer:    issuer,
			Subject:   subject,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", errors.Wrap(err, "auth: signing token")
	}
	return signed, nil
}

// ValidateToken verifies signature, issuer and expiry. Expired tokens
// return an error matching jwt.ErrTokenExpired.
func (s *Service) ValidateToken(tokenString string) (*domain.Claims, error) {
	if len(s.secret) == 0 {
		return nil, ErrNotConfigured
	}

	token, err := jwt.ParseWithClaims(tokenString, &domain.Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secret, nil
	},
		jwt.WithIssuer(issuer),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.clock.Now),
	)
	if err != nil {
		return nil, err
	}

	if claims, ok := token.Claims.(*domain.Claims); ok && token.Valid {
		return claims, nil
	}
	return nil, ErrInvalidToken
}
