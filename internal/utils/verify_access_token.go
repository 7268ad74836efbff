package utils

import (
	"crypto/sha256"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/square/go-jose/v3"
	"golang.org/x/crypto/hkdf"
)

var (
	ErrTokenExpired     = errors.New("token expired")
	ErrTokenNotYetValid = errors.New("token not valid yet")
)

// AccessTokenUtil decodes the encrypted session cookie issued by the
// frontend (a dir/A256GCM JWE keyed by an HKDF of the shared secret).
type AccessTokenUtil struct {
	encryptionKey []byte
	now           func() time.Time
}

func NewAccessTokenUtil(secret string) (*AccessTokenUtil, error) {
	key, err := getDerivedEncryptionKey([]byte(secret), "")
	if err != nil {
		return nil, err
	}
	return &AccessTokenUtil{encryptionKey: key, now: time.Now}, nil
}

func (b *AccessTokenUtil) DecodeToken(token string) (map[string]interface{}, error) {
	payload, err := decodeToken(token, b.encryptionKey)
	if err != nil {
		return nil, err
	}

	if err := validateClaims(payload, b.now()); err != nil {
		return nil, err
	}

	return payload, nil
}

// EncodeToken is the inverse of DecodeToken, used by tests and tooling.
func (b *AccessTokenUtil) EncodeToken(claims map[string]interface{}) (string, error) {
	encrypter, err := jose.NewEncrypter(jose.A256GCM, jose.Recipient{Algorithm: jose.DIRECT, Key: b.encryptionKey}, nil)
	if err != nil {
		return "", err
	}

	payload, err := json.Marshal(claims)
	if err != nil {
		return "", err
	}

	object, err := encrypter.Encrypt(payload)
	if err != nil {
		return "", err
	}

	return object.CompactSerialize()
}

func getDerivedEncryptionKey(keyMaterial []byte, salt string) ([]byte, error) {
	info := []byte("NextAuth.js Generated Encryption Key")
	if salt != "" {
		info = []byte(fmt.Sprintf("NextAuth.js Generated Encryption Key (%s)", salt))
	}
	h := hkdf.New(sha256.New, keyMaterial, []byte(salt), info)
	key := make([]byte, 32)
	if _, err := io.ReadFull(h, key); err != nil {
		return nil, err
	}
	return key, nil
}

func decodeToken(tokenStr string, encryptionKey []byte) (map[string]interface{}, error) {
	jweObject, err := jose.ParseEncrypted(tokenStr)
	if err != nil {
		return nil, err
	}
	decrypted, err := jweObject.Decrypt(encryptionKey)
	if err != nil {
		return nil, err
	}
	var payload map[string]interface{}
	if err := json.Unmarshal(decrypted, &payload); err != nil {
		return nil, err
	}
	return payload, nil
}

func validateClaims(payload map[string]interface{}, now time.Time) error {
	if exp, ok := payload["exp"].(float64); ok && now.Unix() > int64(exp) {
		return ErrTokenExpired
	}

	if iat, ok := payload["iat"].(float64); ok && now.Unix() < int64(iat) {
		return ErrTokenNotYetValid
	}

	return nil
}
