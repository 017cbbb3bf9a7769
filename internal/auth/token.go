package auth

import (
	"errors"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// TokenType discriminates access from refresh tokens.
type TokenType string

const (
	TokenAccess  TokenType = "access"
	TokenRefresh TokenType = "refresh"
)

// Default token lifetimes.
const (
	DefaultAccessTTL  = 6 * time.Hour
	DefaultRefreshTTL = 7 * 24 * time.Hour
)

// Keys is the signing material of an Issuer.
type Keys struct {
	Issuer        string
	AccessSecret  []byte
	RefreshSecret []byte
	AccessTTL     time.Duration
	RefreshTTL    time.Duration
}

// Claims is the JWT payload: the snapshot plus the token type and registered claims.
type Claims struct {
	Snapshot
	Type TokenType `json:"type"`
	jwt.RegisteredClaims
}

// Token is one signed token.
type Token struct {
	Value     string
	ExpiresAt time.Time
	TTL       time.Duration
}

// TokenPair is what a login, refresh or branch switch hands out.
type TokenPair struct {
	Access  Token
	Refresh Token
}

// Issuer signs and verifies capability tokens. It is safe for concurrent use.
type Issuer struct {
	keys Keys
	now  func() time.Time
}

// IssuerOption configures an Issuer.
type IssuerOption func(*Issuer)

// WithClock replaces time.Now.
func WithClock(now func() time.Time) IssuerOption {
	return func(i *Issuer) {
		i.now = now
	}
}

// NewIssuer copies keys into a new Issuer. Both secrets must be set and differ.
func NewIssuer(keys Keys, opts ...IssuerOption) (*Issuer, error) {
	if len(keys.AccessSecret) == 0 || len(keys.RefreshSecret) == 0 {
		return nil, ErrSecretMissing
	}

	if string(keys.AccessSecret) == string(keys.RefreshSecret) {
		return nil, ErrSecretsNotDistinct
	}

	keys.AccessSecret = append([]byte(nil), keys.AccessSecret...)
	keys.RefreshSecret = append([]byte(nil), keys.RefreshSecret...)

	if keys.AccessTTL <= 0 {
		keys.AccessTTL = DefaultAccessTTL
	}

	if keys.RefreshTTL <= 0 {
		keys.RefreshTTL = DefaultRefreshTTL
	}

	i := &Issuer{keys: keys, now: time.Now}
	for _, opt := range opts {
		opt(i)
	}

	return i, nil
}

// IssuePair signs s as an access and as a refresh token.
func (i *Issuer) IssuePair(s Snapshot) (TokenPair, error) {
	access, err := i.sign(s, TokenAccess)
	if err != nil {
		return TokenPair{}, err
	}

	refresh, err := i.sign(s, TokenRefresh)
	if err != nil {
		return TokenPair{}, err
	}

	return TokenPair{Access: access, Refresh: refresh}, nil
}

// Verify checks signature, type and expiry of raw and returns its snapshot.
func (i *Issuer) Verify(raw string, typ TokenType) (*Snapshot, error) {
	secret, _ := i.secret(typ)
	if secret == nil || raw == "" {
		return nil, ErrInvalidToken
	}

	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithIssuedAt(),
		jwt.WithTimeFunc(i.now),
	}

	if i.keys.Issuer != "" {
		opts = append(opts, jwt.WithIssuer(i.keys.Issuer))
	}

	claims := &Claims{}

	token, err := jwt.ParseWithClaims(raw, claims, func(*jwt.Token) (any, error) {
		return secret, nil
	}, opts...)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrTokenExpired
		}

		return nil, ErrInvalidToken
	}

	if !token.Valid || claims.Type != typ {
		return nil, ErrInvalidToken
	}

	s := claims.Snapshot

	return &s, nil
}

func (i *Issuer) sign(s Snapshot, typ TokenType) (Token, error) {
	secret, ttl := i.secret(typ)
	now := i.now()
	expires := now.Add(ttl)

	claims := Claims{
		Snapshot: s,
		Type:     typ,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Issuer:    i.keys.Issuer,
			Subject:   string(s.UserType) + ":" + strconv.FormatInt(s.ID, 10),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expires),
		},
	}

	value, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(secret)
	if err != nil {
		return Token{}, err //nolint:wrapcheck
	}

	return Token{Value: value, ExpiresAt: expires, TTL: ttl}, nil
}

func (i *Issuer) secret(typ TokenType) ([]byte, time.Duration) {
	switch typ {
	case TokenAccess:
		return i.keys.AccessSecret, i.keys.AccessTTL
	case TokenRefresh:
		return i.keys.RefreshSecret, i.keys.RefreshTTL
	default:
		return nil, 0
	}
}
