package storage

import (
	"context"
	"errors"
	"fmt"
)

type Config struct {
	Driver   string // local | mysql | s3 | memory
	LocalDir string
	MySQLDSN string
	S3       S3Config
}

type FactoryResult struct {
	Driver string
	Store  Store
}

func FromConfig(ctx context.Context, cfg Config) (FactoryResult, error) {
	driver := cfg.Driver
	if driver == "" {
		driver = "local"
	}

	switch driver {
	case "local":
		dir := cfg.LocalDir
		if dir == "" {
			dir = "./storage/data"
		}
		return FactoryResult{Driver: "local", Store: NewLocal(dir)}, nil

	case "memory":
		return FactoryResult{Driver: "memory", Store: NewMemory()}, nil

	case "mysql":
		if cfg.MySQLDSN == "" {
			return FactoryResult{}, errors.New("mysql store needs store.mysql_dsn")
		}
		s, err := OpenMySQL(cfg.MySQLDSN)
		if err != nil {
			return FactoryResult{}, err
		}
		return FactoryResult{Driver: "mysql", Store: s}, nil

	case "s3":
		if cfg.S3.Region == "" || cfg.S3.Bucket == "" {
			return FactoryResult{}, errors.New("s3 store needs store.s3_region and store.s3_bucket")
		}
		s, err := NewS3(ctx, cfg.S3)
		if err != nil {
			return FactoryResult{}, err
		}
		return FactoryResult{Driver: "s3", Store: s}, nil

	default:
		return FactoryResult{}, fmt.Errorf("unknown store driver: %s", driver)
	}
}
