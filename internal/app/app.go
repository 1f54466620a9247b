package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/gin-gonic/gin"

	"tokokue.com/admin/internal/config"
	apphttp "tokokue.com/admin/internal/http"
	"tokokue.com/admin/internal/http/admincookie"
	"tokokue.com/admin/internal/http/flash"
	"tokokue.com/admin/internal/modules/adminauth"
	"tokokue.com/admin/internal/modules/catalog"
	"tokokue.com/admin/internal/modules/site"
	"tokokue.com/admin/internal/preview"
	"tokokue.com/admin/internal/remotesync"
	"tokokue.com/admin/internal/storage"
)

const (
	sessionCookie = "storeadmin_session"
	flashCookie   = "storeadmin_flash"
)

// App holds the wired services shared by the CLI commands.
type App struct {
	Config  config.Config
	Logger  *slog.Logger
	Driver  string
	Store   storage.Store
	Catalog *catalog.Repo
	Site    *site.Service
	Remote  *remotesync.Client
}

func NewLogger(w io.Writer, level slog.Level) *slog.Logger {
	return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level}))
}

func Build(ctx context.Context, cfg config.Config, logger *slog.Logger) (*App, error) {
	res, err := storage.FromConfig(ctx, storage.Config{
		Driver:   cfg.Store.Driver,
		LocalDir: cfg.Store.LocalDir,
		MySQLDSN: cfg.Store.MySQLDSN,
		S3: storage.S3Config{
			Region:   cfg.Store.S3Region,
			Bucket:   cfg.Store.S3Bucket,
			Prefix:   cfg.Store.S3Prefix,
			Endpoint: cfg.Store.S3Endpoint,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}

	remote := remotesync.New(remotesync.Config{
		SaveURL: cfg.Remote.SaveURL,
		DataURL: cfg.Remote.DataURL,
		Timeout: cfg.Remote.Timeout,
	}, res.Store, logger)
	repo := catalog.NewRepo(res.Store)

	return &App{
		Config:  cfg,
		Logger:  logger,
		Driver:  res.Driver,
		Store:   res.Store,
		Catalog: repo,
		Site:    site.NewService(res.Store, repo, remote, logger),
		Remote:  remote,
	}, nil
}

// Router builds the HTTP handler. A missing admin password is not an error:
// the admin then answers 403 until one is configured.
func (a *App) Router() (*gin.Engine, error) {
	gate, err := adminauth.NewGate(a.Config.Admin.PasswordHash, a.Config.Admin.Password)
	if err != nil {
		return nil, err
	}
	if !gate.Enabled() {
		a.Logger.Warn("admin_disabled", slog.String("reason", "no admin password configured"))
	}
	if a.Config.Admin.SecretGenerated {
		a.Logger.Warn("cookie_secret_generated", slog.String("effect", "logins end on restart"))
	}

	secret := []byte(a.Config.Admin.CookieSecret)
	return apphttp.NewRouter(apphttp.Deps{
		Logger:      a.Logger,
		Catalog:     a.Catalog,
		Site:        a.Site,
		Gate:        gate,
		Session:     admincookie.New(secret, sessionCookie, a.Config.Admin.CookieSecure, a.Config.Admin.SessionTTL),
		Flash:       flash.NewCodec(secret, flashCookie, a.Config.Admin.CookieSecure),
		Preview:     preview.NewRenderer(),
		UploadLimit: a.Config.UploadLimit,
	}), nil
}
