package session

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/Dhayanand17/AQI/internal/shared/config"
)

const cookieName string = "session"

var (
	ErrValueTooLong = errors.New("cookie value too long")
	ErrInvalidValue = errors.New("invalid cookie value")
)

// Manager encrypts sessions into a tamper-proof cookie and decodes them back.
type Manager struct {
	secret []byte
}

func NewManager(cfg *config.Config) (*Manager, error) {
	key, err := cfg.SecretKeyBytes()
	if err != nil {
		return nil, err
	}
	return &Manager{secret: key}, nil
}

// FromRequest decodes the session cookie. A missing, expired or tampered
// cookie yields a fresh anonymous session; first view and broken cookie are
// indistinguishable on purpose.
func (m *Manager) FromRequest(r *http.Request) *Session {
	cookie, err := r.Cookie(cookieName)
	if err != nil {
		return New()
	}

	sess, err := decrypt(cookie.Value, m.secret, cookieName)
	if err != nil {
		return New()
	}
	return sess
}

// Save writes the session back to the browser.
func (m *Manager) Save(w http.ResponseWriter, s *Session) error {
	encryptedValue, err := encrypt(s, m.secret, cookieName)
	if err != nil {
		return err
	}

	// Browsers reject cookies above 4096 bytes.
	if len(encryptedValue) > 4096 {
		return ErrValueTooLong
	}

	http.SetCookie(w, &http.Cookie{
		Name:     cookieName,
		Value:    encryptedValue,
		HttpOnly: true,
		// Send cookie to all routes in the app
		Path:   "/",
		Secure: true,
	})
	return nil
}

// Clear expires the session cookie, returning the browser to the anonymous
// defaults on its next request.
func (m *Manager) Clear(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     cookieName,
		Value:    "",
		HttpOnly: true,
		Path:     "/",
		Secure:   true,
		MaxAge:   -1,
	})
}

// encrypt seals the JSON-serialized session with AES-GCM. The cookie name is
// baked into the plaintext so a value cannot be replayed under a different
// cookie name.
func encrypt(s *Session, secret []byte, cookieName string) (string, error) {
	block, err := aes.NewCipher(secret)
	if err != nil {
		return "", err
	}

	aesGCM, err := cipher.NewGCM(block)
	if err != nil {
		return "", err
	}

	// Create a unique nonce containing 12 random bytes.
	nonce := make([]byte, aesGCM.NonceSize())
	_, err = io.ReadFull(rand.Reader, nonce)
	if err != nil {
		return "", err
	}

	payload, err := json.Marshal(s)
	if err != nil {
		return "", err
	}

	// Plaintext is "{cookie name}:{json}"; ":" is invalid in cookie names so
	// it cannot appear on the left of the separator.
	plaintext := fmt.Sprintf("%s:%s", cookieName, payload)

	// Seal appends the ciphertext to the nonce, so the stored value is
	// "{nonce}{encrypted plaintext}".
	encryptedValue := aesGCM.Seal(nonce, nonce, []byte(plaintext), nil)

	return base64.URLEncoding.EncodeToString(encryptedValue), nil
}

// decrypt validates and extracts the session from a cookie value. It checks
// both the AEAD tag and the expected cookie name.
func decrypt(encryptedSession string, secret []byte, expectedCookieName string) (*Session, error) {
	value, err := base64.URLEncoding.DecodeString(encryptedSession)
	if err != nil {
		return nil, ErrInvalidValue
	}

	block, err := aes.NewCipher(secret)
	if err != nil {
		return nil, err
	}

	aesGCM, err := cipher.NewGCM(block)
	if err != nil {
		return nil, err
	}

	nonceSize := aesGCM.NonceSize()
	if len(value) < nonceSize {
		return nil, ErrInvalidValue
	}

	nonce := value[:nonceSize]
	ciphertext := value[nonceSize:]

	plaintext, err := aesGCM.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		return nil, ErrInvalidValue
	}

	actualName, payload, ok := strings.Cut(string(plaintext), ":")
	if !ok {
		return nil, ErrInvalidValue
	}

	if actualName != expectedCookieName {
		return nil, ErrInvalidValue
	}

	sess := &Session{}
	if err := json.Unmarshal([]byte(payload), sess); err != nil {
		return nil, ErrInvalidValue
	}
	return sess, nil
}
