package site

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	"tokokue.com/admin/internal/modules/catalog"
	"tokokue.com/admin/internal/storage"
)

// Remote is the server the full payload is synced with.
type Remote interface {
	Save(ctx context.Context, p Payload) bool
	Fetch(ctx context.Context) (Payload, error)
	ReadMirror(ctx context.Context) (Payload, bool)
}

type Service struct {
	store   storage.Store
	catalog *catalog.Repo
	remote  Remote
	log     *slog.Logger
}

func NewService(store storage.Store, repo *catalog.Repo, remote Remote, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{store: store, catalog: repo, remote: remote, log: logger}
}

func (s *Service) Settings(ctx context.Context) Settings {
	return storage.GetJSON(ctx, s.store, storage.KeySettings, Settings{})
}

func (s *Service) SaveSettings(ctx context.Context, in Settings) error {
	in = trimSettings(in)
	if err := storage.SetJSON(ctx, s.store, storage.KeySettings, in); err != nil {
		return fmt.Errorf("save settings: %w", err)
	}
	return nil
}

func (s *Service) BuildPayload(ctx context.Context) (Payload, error) {
	slides, err := s.catalog.Slides(ctx)
	if err != nil {
		return Payload{}, err
	}
	products, err := s.catalog.Products(ctx)
	if err != nil {
		return Payload{}, err
	}
	return NewPayload(s.Settings(ctx), slides, products), nil
}

// Apply overwrites the settings with the payload's, and each collection the
// payload carries an array for.
func (s *Service) Apply(ctx context.Context, p Payload) error {
	if err := s.SaveSettings(ctx, p.Settings()); err != nil {
		return err
	}
	if p.Products != nil {
		if err := s.catalog.ReplaceProducts(ctx, p.Products); err != nil {
			return err
		}
	}
	if p.Slides != nil {
		if err := s.catalog.ReplaceSlides(ctx, p.Slides); err != nil {
			return err
		}
	}
	return nil
}

// SaveAll pushes the current payload to the remote. The remote mirrors it
// locally when the push fails.
func (s *Service) SaveAll(ctx context.Context) (SaveResult, error) {
	p, err := s.BuildPayload(ctx)
	if err != nil {
		return SaveResult{}, err
	}
	if s.remote.Save(ctx, p) {
		s.log.InfoContext(ctx, "payload_saved", slog.String("target", "remote"))
		return SaveResult{Remote: true, Message: MsgSavedRemote}, nil
	}
	s.log.InfoContext(ctx, "payload_saved", slog.String("target", "local"))
	return SaveResult{Remote: false, Message: MsgSavedLocal}, nil
}

// Bootstrap loads the remote snapshot, falling back to the local mirror.
// With neither, a saved settings draft is kept; without one, settings start
// blank apart from the legacy title/tag keys. Stored products and slides are
// left as they are.
func (s *Service) Bootstrap(ctx context.Context) (Source, error) {
	p, err := s.remote.Fetch(ctx)
	if err == nil {
		return SourceRemote, s.Apply(ctx, p)
	}
	s.log.WarnContext(ctx, "remote_fetch_failed", slog.Any("err", err))

	if local, ok := s.remote.ReadMirror(ctx); ok {
		return SourceMirror, s.Apply(ctx, local)
	}

	if s.hasDraft(ctx) {
		return SourceNone, nil
	}
	blank := Settings{
		Title:   storage.GetString(ctx, s.store, storage.KeyLegacyTitle),
		Tagline: storage.GetString(ctx, s.store, storage.KeyLegacyTag),
	}
	return SourceNone, s.SaveSettings(ctx, blank)
}

// hasDraft reports whether readable settings were saved before.
func (s *Service) hasDraft(ctx context.Context) bool {
	b, err := s.store.Get(ctx, storage.KeySettings)
	return err == nil && json.Valid(b)
}

func trimSettings(in Settings) Settings {
	in.Title = strings.TrimSpace(in.Title)
	in.Tagline = strings.TrimSpace(in.Tagline)
	in.HeroHeadline = strings.TrimSpace(in.HeroHeadline)
	in.HeroSub = strings.TrimSpace(in.HeroSub)
	in.ContactPhone = strings.TrimSpace(in.ContactPhone)
	in.ContactEmail = strings.TrimSpace(in.ContactEmail)
	in.About = strings.TrimSpace(in.About)
	return in
}
