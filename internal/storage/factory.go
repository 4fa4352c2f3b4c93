package storage

import (
	"path/filepath"
	"strings"
)

// Config selects and configures a storage backend.
type Config struct {
	Source    string // file, s3
	FilePath  string // local file path when Source is "file"
	ObjectKey string // object key when Source is "s3"
	S3        S3Config
}

// NewStorage creates an ObjectStorage and the key of the name-list
// object based on the configuration. An unknown source falls back to
// local file storage.
func NewStorage(cfg *Config) (ObjectStorage, string, error) {
	if strings.ToLower(cfg.Source) == "s3" {
		s, err := NewS3Storage(&cfg.S3)
		if err != nil {
			return nil, "", err
		}
		return s, cfg.ObjectKey, nil
	}

	return NewLocalStorage(filepath.Dir(cfg.FilePath)), filepath.Base(cfg.FilePath), nil
}
