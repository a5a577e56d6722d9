package media

import (
	"context"
	"fmt"

	"companyprofile/internal/config"
)

// New creates the Store selected by cfg.Driver.
func New(ctx context.Context, cfg config.MediaConfig) (Store, error) {
	switch cfg.Driver {
	case "", config.MediaDriverImageKit:
		return NewImageKit(ImageKitConfig{
			PrivateKey:  cfg.ImageKit.PrivateKey,
			URLEndpoint: cfg.ImageKit.URLEndpoint,
			UploadURL:   cfg.ImageKit.UploadURL,
			APIURL:      cfg.ImageKit.APIURL,
		}, nil)

	case config.MediaDriverS3:
		return NewS3(ctx, S3Config{
			Endpoint:      cfg.S3.Endpoint,
			Region:        cfg.S3.Region,
			Bucket:        cfg.S3.Bucket,
			AccessKey:     cfg.S3.AccessKey,
			SecretKey:     cfg.S3.SecretKey,
			PathStyle:     cfg.S3.PathStyle,
			PublicBaseURL: cfg.S3.PublicBaseURL,
		})

	case config.MediaDriverMemory:
		return NewMemory(""), nil

	default:
		return nil, fmt.Errorf("unsupported media driver: %s", cfg.Driver)
	}
}
