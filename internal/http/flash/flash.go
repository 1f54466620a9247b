package flash

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"tokokue.com/admin/pkg/view"
)

var ErrInvalid = errors.New("invalid flash cookie")

// maxAge only needs to outlive the redirect that reads the message.
const maxAge = 2 * time.Minute

// Codec signs one-shot status messages carried across a redirect.
type Codec struct {
	Secret     []byte
	CookieName string
	Secure     bool
}

func NewCodec(secret []byte, cookieName string, secure bool) *Codec {
	return &Codec{Secret: secret, CookieName: cookieName, Secure: secure}
}

// value format: base64(json).base64(hmac)
func (c *Codec) Encode(f view.Flash) (string, error) {
	b, err := json.Marshal(f)
	if err != nil {
		return "", err
	}
	payload := base64.RawURLEncoding.EncodeToString(b)
	return payload + "." + c.sign(payload), nil
}

func (c *Codec) Decode(v string) (*view.Flash, error) {
	payload, sig, ok := strings.Cut(v, ".")
	if !ok || !hmac.Equal([]byte(c.sign(payload)), []byte(sig)) {
		return nil, ErrInvalid
	}
	raw, err := base64.RawURLEncoding.DecodeString(payload)
	if err != nil {
		return nil, ErrInvalid
	}
	var f view.Flash
	if err := json.Unmarshal(raw, &f); err != nil {
		return nil, ErrInvalid
	}
	if strings.TrimSpace(f.Message) == "" || !f.Kind.Valid() {
		return nil, ErrInvalid
	}
	return &f, nil
}

// Set stores f for the next request. Encoding errors drop the message.
func (c *Codec) Set(ctx *gin.Context, f view.Flash) {
	val, err := c.Encode(f)
	if err != nil {
		return
	}
	ctx.SetSameSite(http.SameSiteLaxMode)
	ctx.SetCookie(c.CookieName, val, int(maxAge.Seconds()), "/", "", c.Secure, true)
}

// Take reads and clears the pending message. A bad cookie is cleared too.
func (c *Codec) Take(ctx *gin.Context) *view.Flash {
	v, err := ctx.Cookie(c.CookieName)
	if err != nil || v == "" {
		return nil
	}
	ctx.SetSameSite(http.SameSiteLaxMode)
	ctx.SetCookie(c.CookieName, "", -1, "/", "", c.Secure, true)

	f, err := c.Decode(v)
	if err != nil {
		return nil
	}
	return f
}

func (c *Codec) sign(payload string) string {
	mac := hmac.New(sha256.New, c.Secret)
	mac.Write([]byte(payload))
	return base64.RawURLEncoding.EncodeToString(mac.Sum(nil))
}
