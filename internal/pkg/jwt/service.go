package jwt

import (
	"errors"
	"strings"
	"time"

	jwtlib "github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const TokenTypeAccess = "access"

const (
	RoleJobSeeker = "job_seeker"
	RoleCompany   = "company"
	RoleOMIL      = "omil"
	RoleAdmin     = "admin"
)

var (
	ErrTokenExpired = errors.New("token expired")
	ErrTokenInvalid = errors.New("token invalid")
)

// Claims identify the caller. CompanyID is only set for company members.
type Claims struct {
	UserID    uuid.UUID  `json:"user_id"`
	Role      string     `json:"role"`
	CompanyID *uuid.UUID `json:"company_id,omitempty"`
	TokenType string     `json:"token_type"`

	jwtlib.RegisteredClaims
}

type Service interface {
	GenerateAccessToken(userID uuid.UUID, role string, companyID *uuid.UUID) (string, error)
	ValidateToken(tokenString string) (Claims, error)
}

type HMACService struct {
	accessSecret    []byte
	accessExpiresIn time.Duration

	now func() time.Time
}

func NewHMACService(accessSecret string, accessExpiresIn time.Duration) *HMACService {
	return &HMACService{
		accessSecret:    []byte(accessSecret),
		accessExpiresIn: accessExpiresIn,
		now:             time.Now,
	}
}

func ValidRole(role string) bool {
	switch role {
	case RoleJobSeeker, RoleCompany, RoleOMIL, RoleAdmin:
		return true
	}
	return false
}

// GenerateAccessToken signs a token for local tooling and tests; production
// tokens are issued by the identity service with the same secret.
func (s *HMACService) GenerateAccessToken(userID uuid.UUID, role string, companyID *uuid.UUID) (string, error) {
	if userID == uuid.Nil || !ValidRole(role) {
		return "", ErrTokenInvalid
	}
	if len(s.accessSecret) == 0 || s.accessExpiresIn <= 0 {
		return "", ErrTokenInvalid
	}

	now := s.now().UTC()
	c := Claims{
		UserID:    userID,
		Role:      role,
		CompanyID: companyID,
		TokenType: TokenTypeAccess,
		RegisteredClaims: jwtlib.RegisteredClaims{
			IssuedAt:  jwtlib.NewNumericDate(now),
			ExpiresAt: jwtlib.NewNumericDate(now.Add(s.accessExpiresIn)),
			Subject:   userID.String(),
		},
	}

	t := jwtlib.NewWithClaims(jwtlib.SigningMethodHS256, c)
	return t.SignedString(s.accessSecret)
}

func (s *HMACService) ValidateToken(tokenString string) (Claims, error) {
	tokenString = strings.TrimSpace(tokenString)
	if tokenString == "" || len(s.accessSecret) == 0 {
		return Claims{}, ErrTokenInvalid
	}

	p := jwtlib.NewParser(
		jwtlib.WithValidMethods([]string{jwtlib.SigningMethodHS256.Alg()}),
		jwtlib.WithTimeFunc(s.now),
		jwtlib.WithExpirationRequired(),
	)

	var c Claims
	tok, err := p.ParseWithClaims(tokenString, &c, func(token *jwtlib.Token) (any, error) {
		return s.accessSecret, nil
	})
	if err != nil {
		if errors.Is(err, jwtlib.ErrTokenExpired) {
			return Claims{}, ErrTokenExpired
		}
		return Claims{}, ErrTokenInvalid
	}
	if tok == nil || !tok.Valid {
		return Claims{}, ErrTokenInvalid
	}

	if c.TokenType != TokenTypeAccess || c.UserID == uuid.Nil || !ValidRole(c.Role) {
		return Claims{}, ErrTokenInvalid
	}
	if c.Role == RoleCompany && (c.CompanyID == nil || *c.CompanyID == uuid.Nil) {
		return Claims{}, ErrTokenInvalid
	}

	return c, nil
}
