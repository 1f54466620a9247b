package remotesync

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"tokokue.com/admin/internal/modules/site"
	"tokokue.com/admin/internal/storage"
)

var errNoEndpoint = errors.New("remote endpoint not configured")

type Config struct {
	SaveURL string // POST target for the payload
	DataURL string // GET snapshot, same shape
	Timeout time.Duration
}

// Client pushes and pulls the site payload. A failed push is mirrored into
// the local store under storage.KeySiteData.
type Client struct {
	cfg    Config
	http   *http.Client
	mirror storage.Store
	log    *slog.Logger
	now    func() time.Time
}

func New(cfg Config, mirror storage.Store, logger *slog.Logger) *Client {
	if cfg.Timeout <= 0 {
		cfg.Timeout = 15 * time.Second
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Client{
		cfg:    cfg,
		http:   &http.Client{Timeout: cfg.Timeout},
		mirror: mirror,
		log:    logger,
		now:    time.Now,
	}
}

// Save posts p and reports whether the server accepted it. Any failure,
// transport or status, writes the same bytes to the local mirror instead.
func (c *Client) Save(ctx context.Context, p site.Payload) bool {
	body, err := json.Marshal(p)
	if err != nil {
		c.log.ErrorContext(ctx, "payload_encode_failed", slog.Any("err", err))
		return false
	}

	err = c.post(ctx, body)
	if err == nil {
		return true
	}

	c.log.WarnContext(ctx, "remote_save_failed", slog.String("fallback", "local"), slog.Any("err", err))
	if err := c.mirror.Set(ctx, storage.KeySiteData, body); err != nil {
		c.log.ErrorContext(ctx, "local_mirror_failed", slog.Any("err", err))
	}
	return false
}

func (c *Client) post(ctx context.Context, body []byte) error {
	if c.cfg.SaveURL == "" {
		return errNoEndpoint
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.SaveURL, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Cache-Control", "no-store")

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("server returned %d", resp.StatusCode)
	}
	return nil
}

// Fetch reads the server's current snapshot. The t query parameter only
// defeats caches.
func (c *Client) Fetch(ctx context.Context) (site.Payload, error) {
	if c.cfg.DataURL == "" {
		return site.Payload{}, errNoEndpoint
	}
	u, err := url.Parse(c.cfg.DataURL)
	if err != nil {
		return site.Payload{}, fmt.Errorf("parse data url: %w", err)
	}
	q := u.Query()
	q.Set("t", strconv.FormatInt(c.now().UnixMilli(), 10))
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return site.Payload{}, err
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Cache-Control", "no-store")

	resp, err := c.http.Do(req)
	if err != nil {
		return site.Payload{}, fmt.Errorf("fetch snapshot: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return site.Payload{}, fmt.Errorf("fetch snapshot: status %d", resp.StatusCode)
	}

	var p site.Payload
	if err := json.NewDecoder(resp.Body).Decode(&p); err != nil {
		return site.Payload{}, fmt.Errorf("decode snapshot: %w", err)
	}
	return p, nil
}

// ReadMirror returns the payload mirrored by the last failed Save, if any.
func (c *Client) ReadMirror(ctx context.Context) (site.Payload, bool) {
	p := storage.GetJSON[*site.Payload](ctx, c.mirror, storage.KeySiteData, nil)
	if p == nil {
		return site.Payload{}, false
	}
	return *p, true
}
