package jwt

import (
	"errors"
	"fmt"
	"time"

	"healthy-eats-backend/domain"

	"github.com/golang-jwt/jwt/v4"
)

const tokenLifetime = 120 * time.Minute

type (
	JWTService interface {
		GenerateToken(subject string, role string) (string, error)
		ValidateToken(token string) (*jwt.Token, error)
		GetSubjectByToken(token string) (string, string, error)
	}

	jwtClaim struct {
		Role string `json:"role"`
		jwt.RegisteredClaims
	}

	jwtService struct {
		secretKey string
		issuer    string
		now       func() time.Time
	}
)

func NewJWTService(secretKey string) JWTService {
	return &jwtService{
		secretKey: secretKey,
		issuer:    "HEALTHY-EATS",
		now:       time.Now,
	}
}

func (j *jwtService) GenerateToken(subject string, role string) (string, error) {
	if j.secretKey == "" {
		return "", domain.ErrAdminNotConfigured
	}
	now := j.now()
	claims := jwtClaim{
		role,
		jwt.RegisteredClaims{
			Subject:   subject,
			ExpiresAt: jwt.NewNumericDate(now.Add(tokenLifetime)),
			Issuer:    j.issuer,
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(j.secretKey))
}

func (j *jwtService) parseToken(t_ *jwt.Token) (any, error) {
	if _, ok := t_.Method.(*jwt.SigningMethodHMAC); !ok {
		return nil, fmt.Errorf("unexpected signing method %v", t_.Header["alg"])
	}
	return []byte(j.secretKey), nil
}

func (j *jwtService) ValidateToken(token string) (*jwt.Token, error) {
	return jwt.ParseWithClaims(token, &jwtClaim{}, j.parseToken)
}

func (j *jwtService) GetSubjectByToken(token string) (string, string, error) {
	t_Token, err := j.ValidateToken(token)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return "", "", domain.ErrTokenExpired
		}
		return "", "", domain.ErrTokenInvalid
	}
	if !t_Token.Valid {
		return "", "", domain.ErrTokenInvalid
	}

	claims := t_Token.Claims.(*jwtClaim)
	if claims.Issuer != j.issuer {
		return "", "", domain.ErrTokenInvalid
	}
	return claims.Subject, claims.Role, nil
}
