package services

import (
	"crypto/subtle"
	"fmt"
	"strings"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/golang-jwt/jwt/v4"
	"golang.org/x/crypto/bcrypt"

	"recordstore-api/internal/utils"
)

type TokenMode string

const (
	// TokenModeStatic hands out one fixed token to every successful login.
	TokenModeStatic TokenMode = "static"
	// TokenModeJWT signs an HS256 token per login.
	TokenModeJWT TokenMode = "jwt"
)

// bcrypt only looks at the first 72 bytes and stops at a NUL, so such
// passwords could match the configured one without being equal to it.
const maxPasswordBytes = 72

var (
	ErrInvalidToken       = errors.New("invalid token")
	ErrUnknownTokenMode   = errors.New("unknown token mode")
	ErrMissingJWTSecret   = errors.New("jwt secret is required in jwt token mode")
	ErrUnhashablePassword = errors.New("configured password must be at most 72 bytes without NUL bytes")
)

type AuthConfig struct {
	Username      string
	Password      string
	StaticToken   string
	Mode          TokenMode
	JWTSecret     string
	JWTExpiration time.Duration
	// HashCost is the bcrypt cost for the stored credential; zero means bcrypt.DefaultCost.
	HashCost int
}

// AuthService checks logins against a single configured credential pair.
type AuthService struct {
	username      string
	passwordHash  []byte
	staticToken   string
	mode          TokenMode
	jwtSecret     string
	jwtExpiration time.Duration
}

func NewAuthService(cfg AuthConfig) (*AuthService, error) {
	switch cfg.Mode {
	case TokenModeStatic:
	case TokenModeJWT:
		if cfg.JWTSecret == "" {
			return nil, ErrMissingJWTSecret
		}
	default:
		return nil, errors.Wrapf(ErrUnknownTokenMode, "%q", cfg.Mode)
	}

	if !hashablePassword(cfg.Password) {
		return nil, ErrUnhashablePassword
	}

	cost := cfg.HashCost
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(cfg.Password), cost)
	if err != nil {
		utils.LogError("AuthService", "Failed to hash configured password", err)
		return nil, errors.Wrap(err, "hashing configured password")
	}

	utils.LogSuccess("AuthService", fmt.Sprintf("Auth service initialized (mode: %s, user: %s)", cfg.Mode, cfg.Username))
	return &AuthService{
		username:      cfg.Username,
		passwordHash:  hash,
		staticToken:   cfg.StaticToken,
		mode:          cfg.Mode,
		jwtSecret:     cfg.JWTSecret,
		jwtExpiration: cfg.JWTExpiration,
	}, nil
}

// Login reports whether the pair matches and, if so, the token to return.
// A non-nil error means token issuing failed, not that the credentials were wrong.
func (s *AuthService) Login(username, password string) (string, bool, error) {
	utils.LogDebug("AuthService", fmt.Sprintf("Checking credentials for: %s", username))

	if username != s.username {
		utils.LogWarning("AuthService", fmt.Sprintf("Unknown username: %s", username))
		return "", false, nil
	}
	if !hashablePassword(password) {
		utils.LogWarning("AuthService", fmt.Sprintf("Rejected unhashable password for: %s", username))
		return "", false, nil
	}
	if err := bcrypt.CompareHashAndPassword(s.passwordHash, []byte(password)); err != nil {
		utils.LogWarning("AuthService", fmt.Sprintf("Wrong password for: %s", username))
		return "", false, nil
	}

	token, err := s.GenerateToken(username)
	if err != nil {
		return "", false, err
	}
	utils.LogSuccess("AuthService", fmt.Sprintf("Login succeeded: %s", username))
	return token, true, nil
}

func hashablePassword(password string) bool {
	return len(password) <= maxPasswordBytes && !strings.ContainsRune(password, 0)
}

type Claims struct {
	Username string `json:"username"`
	jwt.RegisteredClaims
}

func (s *AuthService) GenerateToken(username string) (string, error) {
	if s.mode == TokenModeStatic {
		return s.staticToken, nil
	}

	utils.LogDebug("AuthService", fmt.Sprintf("Signing JWT for: %s", username))

	now := time.Now()
	claims := &Claims{
		Username: username,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   username,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.jwtExpiration)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	signedToken, err := token.SignedString([]byte(s.jwtSecret))
	if err != nil {
		utils.LogError("AuthService", "Failed to sign token", err)
		return "", errors.Wrap(err, "signing token")
	}
	return signedToken, nil
}

func (s *AuthService) ValidateToken(tokenString string) (*Claims, error) {
	if s.mode == TokenModeStatic {
		if tokenString == "" || subtle.ConstantTimeCompare([]byte(tokenString), []byte(s.staticToken)) != 1 {
			return nil, ErrInvalidToken
		}
		return &Claims{Username: s.username}, nil
	}

	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.Newf("unexpected signing method %v", token.Header["alg"])
		}
		return []byte(s.jwtSecret), nil
	})
	if err != nil {
		utils.LogWarning("AuthService", fmt.Sprintf("Token rejected: %v", err))
		return nil, errors.Mark(err, ErrInvalidToken)
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}
	return claims, nil
}
