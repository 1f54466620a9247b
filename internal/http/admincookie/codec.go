package admincookie

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
)

var ErrInvalid = errors.New("invalid admin cookie")

// Codec issues the cookie that marks a browser as logged in to the admin.
type Codec struct {
	Secret     []byte
	CookieName string
	Secure     bool
	TTL        time.Duration

	now func() time.Time
}

func New(secret []byte, name string, secure bool, ttl time.Duration) *Codec {
	if ttl <= 0 {
		ttl = 12 * time.Hour
	}
	return &Codec{Secret: secret, CookieName: name, Secure: secure, TTL: ttl, now: time.Now}
}

// value format: expiresUnix.base64(hmac(expiresUnix))
func (c *Codec) Encode(expires time.Time) string {
	exp := strconv.FormatInt(expires.Unix(), 10)
	return exp + "." + sign(c.Secret, exp)
}

func (c *Codec) Decode(v string) (time.Time, error) {
	parts := strings.Split(v, ".")
	if len(parts) != 2 || parts[0] == "" {
		return time.Time{}, ErrInvalid
	}
	if !verify(c.Secret, parts[0], parts[1]) {
		return time.Time{}, ErrInvalid
	}
	sec, err := strconv.ParseInt(parts[0], 10, 64)
	if err != nil {
		return time.Time{}, ErrInvalid
	}
	exp := time.Unix(sec, 0)
	if !c.now().Before(exp) {
		return time.Time{}, ErrInvalid
	}
	return exp, nil
}

func (c *Codec) Valid(ctx *gin.Context) bool {
	v, err := ctx.Cookie(c.CookieName)
	if err != nil || v == "" {
		return false
	}
	if _, err := c.Decode(v); err != nil {
		c.Clear(ctx)
		return false
	}
	return true
}

func (c *Codec) Issue(ctx *gin.Context) {
	val := c.Encode(c.now().Add(c.TTL))
	ctx.SetSameSite(http.SameSiteStrictMode)
	ctx.SetCookie(c.CookieName, val, int(c.TTL.Seconds()), "/", "", c.Secure, true)
}

func (c *Codec) Clear(ctx *gin.Context) {
	ctx.SetSameSite(http.SameSiteStrictMode)
	ctx.SetCookie(c.CookieName, "", -1, "/", "", c.Secure, true)
}

func sign(secret []byte, payload string) string {
	mac := hmac.New(sha256.New, secret)
	mac.Write([]byte(payload))
	return base64.RawURLEncoding.EncodeToString(mac.Sum(nil))
}

func verify(secret []byte, payload, sig string) bool {
	return hmac.Equal([]byte(sign(secret, payload)), []byte(sig))
}
