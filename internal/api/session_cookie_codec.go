package api

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const (
	sessionCookieVersion   = "v1"
	sessionCookieAADPrefix = "nutritrack.cookie."
	sessionCookieKeyLabel  = "nutritrack.session-cookie.v1"
)

var (
	errInvalidToken       = errors.New("invalid token")
	errTokenExpired       = errors.New("token expired")
	errMissingSessionKey  = errors.New("session key is required")
	errMissingPurpose     = errors.New("cookie purpose is required")
	errCodecUninitialized = errors.New("session cookie codec is not initialized")
)

type authClaims struct {
	SessionKey string `json:"sid"`
	Purpose    string `json:"purpose"`
	jwt.RegisteredClaims
}

// sessionCookieCodec turns a session key into a cookie value and back.
// The value is an HS256 token naming the session and purpose, sealed with
// AES-GCM using the purpose as associated data.
type sessionCookieCodec struct {
	signingKey []byte
	aead       cipher.AEAD
}

func newSessionCookieCodec(secretKey []byte) (*sessionCookieCodec, error) {
	if len(secretKey) == 0 {
		return nil, errors.New("session cookie secret key is required")
	}

	material := append([]byte(sessionCookieKeyLabel), secretKey...)
	sealingKey := sha256.Sum256(material)
	block, err := aes.NewCipher(sealingKey[:])
	if err != nil {
		return nil, fmt.Errorf("init session cookie cipher: %w", err)
	}
	aead, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("init session cookie aead: %w", err)
	}

	return &sessionCookieCodec{
		signingKey: append([]byte(nil), secretKey...),
		aead:       aead,
	}, nil
}

// issue returns the cookie value granting purpose to the session until now+ttl.
func (codec *sessionCookieCodec) issue(purpose string, sessionKey string, ttl time.Duration, now time.Time) (string, error) {
	sessionKey = strings.TrimSpace(sessionKey)
	if sessionKey == "" {
		return "", errMissingSessionKey
	}
	token, err := codec.signToken(purpose, sessionKey, ttl, now)
	if err != nil {
		return "", err
	}
	return codec.seal(purpose, []byte(token))
}

// verify returns the session key a cookie value was issued to.
func (codec *sessionCookieCodec) verify(purpose string, rawValue string, now time.Time) (string, error) {
	tokenValue, err := codec.open(purpose, rawValue)
	if err != nil {
		return "", errInvalidToken
	}

	claims := &authClaims{}
	parser := jwt.NewParser(
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(func() time.Time { return now }),
		jwt.WithExpirationRequired(),
	)
	_, err = parser.ParseWithClaims(string(tokenValue), claims, func(*jwt.Token) (interface{}, error) {
		return codec.signingKey, nil
	})
	switch {
	case errors.Is(err, jwt.ErrTokenExpired):
		return "", errTokenExpired
	case err != nil:
		return "", errInvalidToken
	}
	if claims.Purpose != purpose || strings.TrimSpace(claims.SessionKey) == "" {
		return "", errInvalidToken
	}
	return claims.SessionKey, nil
}

func (codec *sessionCookieCodec) signToken(purpose string, sessionKey string, ttl time.Duration, now time.Time) (string, error) {
	claims := authClaims{
		SessionKey: sessionKey,
		Purpose:    purpose,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(codec.signingKey)
}

func (codec *sessionCookieCodec) seal(purpose string, plaintext []byte) (string, error) {
	aad, err := codec.associatedData(purpose)
	if err != nil {
		return "", err
	}

	nonce := make([]byte, codec.aead.NonceSize())
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return "", fmt.Errorf("generate session cookie nonce: %w", err)
	}
	payload := codec.aead.Seal(nonce, nonce, plaintext, aad)
	return sessionCookieVersion + "." + base64.RawURLEncoding.EncodeToString(payload), nil
}

func (codec *sessionCookieCodec) open(purpose string, rawValue string) ([]byte, error) {
	aad, err := codec.associatedData(purpose)
	if err != nil {
		return nil, err
	}

	version, encoded, found := strings.Cut(strings.TrimSpace(rawValue), ".")
	if !found || version != sessionCookieVersion || encoded == "" {
		return nil, errInvalidToken
	}
	payload, err := base64.RawURLEncoding.DecodeString(encoded)
	if err != nil || len(payload) <= codec.aead.NonceSize() {
		return nil, errInvalidToken
	}

	nonceSize := codec.aead.NonceSize()
	plaintext, err := codec.aead.Open(nil, payload[:nonceSize], payload[nonceSize:], aad)
	if err != nil {
		return nil, errInvalidToken
	}
	return plaintext, nil
}

func (codec *sessionCookieCodec) associatedData(purpose string) ([]byte, error) {
	if codec == nil || codec.aead == nil {
		return nil, errCodecUninitialized
	}
	purpose = strings.TrimSpace(purpose)
	if purpose == "" {
		return nil, errMissingPurpose
	}
	return []byte(sessionCookieAADPrefix + purpose), nil
}
