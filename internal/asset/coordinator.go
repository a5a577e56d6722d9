// Package asset sequences the image lifecycle of asset-bearing records:
// upload then persist on create, upload, persist and retire the old file on
// update, and fetch then remove file and row concurrently on delete.
package asset

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"companyprofile/internal/media"
	"companyprofile/internal/pkg/metrics"
)

// Record is a row with one remote image.
type Record interface {
	GetID() int64
	GetImage() string
	SetImage(url string)
}

// Repository is the per-table persistence the coordinator needs. GetByID
// returns ErrNotFound when the row does not exist.
type Repository[T Record] interface {
	GetByID(ctx context.Context, id int64) (T, error)
	Create(ctx context.Context, rec T) error
	Update(ctx context.Context, rec T) error
	Delete(ctx context.Context, id int64) error
}

// Config names a resource's uploads.
type Config struct {
	Resource string // metrics/log label
	Prefix   string // file name prefix, e.g. "security-mitra-logo"
	Folder   string // remote folder, e.g. "/security-mitra-logos"
}

type Coordinator[T Record] struct {
	repo    Repository[T]
	store   media.Store
	cfg     Config
	metrics *metrics.Metrics
	now     func() time.Time
}

func NewCoordinator[T Record](repo Repository[T], store media.Store, cfg Config, m *metrics.Metrics) *Coordinator[T] {
	return &Coordinator[T]{
		repo:    repo,
		store:   store,
		cfg:     cfg,
		metrics: m,
		now:     time.Now,
	}
}

// Create uploads file and inserts rec pointing at the returned URL.
func (c *Coordinator[T]) Create(ctx context.Context, file *File, rec T) (Result[T], error) {
	if file == nil || len(file.Data) == 0 {
		return Result[T]{}, ErrFileRequired
	}

	uploaded, err := c.upload(ctx, file)
	if err != nil {
		return Result[T]{}, err
	}
	rec.SetImage(uploaded.URL)

	if err := c.repo.Create(ctx, rec); err != nil {
		c.discard(ctx, uploaded, "create")
		return Result[T]{}, fmt.Errorf("create %s: %w", c.cfg.Resource, err)
	}
	return Result[T]{Record: rec}, nil
}

// Update loads the row, applies merge, and when file is set replaces the
// image. The previous remote file is deleted only after the row is stored.
func (c *Coordinator[T]) Update(ctx context.Context, id int64, file *File, merge func(T)) (Result[T], error) {
	rec, err := c.repo.GetByID(ctx, id)
	if err != nil {
		return Result[T]{}, err
	}
	oldURL := rec.GetImage()

	var uploaded *media.UploadResult
	if file != nil {
		uploaded, err = c.upload(ctx, file)
		if err != nil {
			return Result[T]{}, err
		}
	}

	if merge != nil {
		merge(rec)
	}
	if uploaded != nil {
		rec.SetImage(uploaded.URL)
	}

	if err := c.repo.Update(ctx, rec); err != nil {
		if uploaded != nil {
			c.discard(ctx, uploaded, "update")
		}
		return Result[T]{}, fmt.Errorf("update %s %d: %w", c.cfg.Resource, id, err)
	}

	res := Result[T]{Record: rec}
	if uploaded != nil && oldURL != "" && oldURL != uploaded.URL {
		res.Cleanup = c.cleanup(ctx, oldURL, "update")
	}
	return res, nil
}

// Delete removes the remote file and the row concurrently. A failed remote
// delete is reported in Result.Cleanup; a failed row delete is an error.
func (c *Coordinator[T]) Delete(ctx context.Context, id int64) (Result[T], error) {
	rec, err := c.repo.GetByID(ctx, id)
	if err != nil {
		return Result[T]{}, err
	}

	var (
		g       errgroup.Group
		cleanup Cleanup
	)
	if url := rec.GetImage(); url != "" {
		g.Go(func() error {
			cleanup = c.cleanup(ctx, url, "delete")
			return nil
		})
	}
	g.Go(func() error {
		return c.repo.Delete(ctx, id)
	})
	if err := g.Wait(); err != nil {
		return Result[T]{}, fmt.Errorf("delete %s %d: %w", c.cfg.Resource, id, err)
	}

	return Result[T]{Record: rec, Cleanup: cleanup}, nil
}

// UploadName is "{prefix}-{unix millis}-{original name}".
func (c *Coordinator[T]) UploadName(original string) string {
	return fmt.Sprintf("%s-%d-%s", c.cfg.Prefix, c.now().UnixMilli(), filepath.Base(original))
}

func (c *Coordinator[T]) upload(ctx context.Context, file *File) (*media.UploadResult, error) {
	res, err := c.store.Upload(ctx, media.UploadInput{
		FileName:    c.UploadName(file.Name),
		Folder:      c.cfg.Folder,
		ContentType: file.ContentType,
		Data:        file.Data,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUpload, err)
	}
	return res, nil
}

func (c *Coordinator[T]) cleanup(ctx context.Context, url, op string) Cleanup {
	out := Cleanup{URL: url}

	fileID, err := c.store.FileID(ctx, url)
	if errors.Is(err, media.ErrNoFileID) || errors.Is(err, media.ErrFileNotFound) {
		out.Status = CleanupSkipped
		return out
	}
	if err == nil {
		out.FileID = fileID
		err = c.store.Delete(ctx, fileID)
		// already gone, nothing orphaned
		if errors.Is(err, media.ErrFileNotFound) {
			out.Status = CleanupSkipped
			return out
		}
	}
	if err != nil {
		out.Status = CleanupFailed
		out.Err = err
		c.metrics.CleanupFailed(c.cfg.Resource, op)
		log.Warn().Err(err).
			Str("resource", c.cfg.Resource).
			Str("op", op).
			Str("url", url).
			Msg("Failed to delete old image")
		return out
	}

	out.Status = CleanupSucceeded
	return out
}

// discard drops a file uploaded for a write that did not persist.
func (c *Coordinator[T]) discard(ctx context.Context, uploaded *media.UploadResult, op string) {
	id := uploaded.FileID
	if id == "" {
		var err error
		if id, err = c.store.FileID(ctx, uploaded.URL); err != nil {
			return
		}
	}
	if err := c.store.Delete(ctx, id); err != nil {
		c.metrics.CleanupFailed(c.cfg.Resource, op)
		log.Warn().Err(err).Str("resource", c.cfg.Resource).Str("url", uploaded.URL).Msg("Failed to discard unpersisted image")
	}
}
