package adminauth

import (
	"errors"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

// Gate checks the admin password. A gate built without any password is
// closed: Check always fails and Enabled reports false.
type Gate struct {
	hash []byte
}

// NewGate prefers a bcrypt hash; a plain password is hashed once here.
func NewGate(passwordHash, password string) (*Gate, error) {
	if h := strings.TrimSpace(passwordHash); h != "" {
		if _, err := bcrypt.Cost([]byte(h)); err != nil {
			return nil, errors.New("admin password hash is not a bcrypt hash")
		}
		return &Gate{hash: []byte(h)}, nil
	}
	if strings.TrimSpace(password) == "" {
		return &Gate{}, nil
	}
	h, err := HashPassword(password)
	if err != nil {
		return nil, err
	}
	return &Gate{hash: []byte(h)}, nil
}

// HashPassword returns the bcrypt hash Check accepts for the trimmed password.
func HashPassword(password string) (string, error) {
	pw := strings.TrimSpace(password)
	if pw == "" {
		return "", errors.New("empty password")
	}
	h, err := bcrypt.GenerateFromPassword([]byte(pw), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(h), nil
}

func (g *Gate) Enabled() bool { return len(g.hash) > 0 }

// Check compares the trimmed input against the configured password.
func (g *Gate) Check(password string) bool {
	if !g.Enabled() {
		return false
	}
	pw := strings.TrimSpace(password)
	if pw == "" {
		return false
	}
	return bcrypt.CompareHashAndPassword(g.hash, []byte(pw)) == nil
}
