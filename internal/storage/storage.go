package storage

import (
	"context"
	"fmt"
	"io"

	"github.com/fadilmartias/placement-portal/internal/config"
)

// FileStorage keeps uploaded résumés. Saving an existing name overwrites it.
type FileStorage interface {
	Save(ctx context.Context, name string, r io.Reader) error
	Driver() string
}

func New(ctx context.Context, cfg *config.StorageConfig) (FileStorage, error) {
	switch cfg.Driver {
	case config.StorageLocal, "":
		return NewLocalStorage(cfg.UploadDir)
	case config.StorageS3:
		return NewS3Storage(ctx, cfg)
	default:
		return nil, fmt.Errorf("unsupported STORAGE_DRIVER %q", cfg.Driver)
	}
}
