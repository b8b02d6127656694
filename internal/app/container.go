package app

import (
	"context"
	"fmt"
	"time"

	"job-portal/internal/config"
	"job-portal/internal/database"
	dbpostgres "job-portal/internal/database/postgres"
	"job-portal/internal/infrastructure/session"
)

type Container struct {
	Config   config.Config
	DB       database.DB
	Sessions *session.RedisStore
}

func NewContainer(cfg config.Config) (*Container, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	db, err := dbpostgres.Connect(ctx, cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("connect postgres: %w", err)
	}

	if err := database.EnsureSchema(ctx, db); err != nil {
		_ = db.Close()
		return nil, err
	}

	sessions, err := session.NewRedisStore(ctx, cfg.Redis)
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	return &Container{Config: cfg, DB: db, Sessions: sessions}, nil
}

func (c *Container) Close() error {
	if c == nil {
		return nil
	}
	var firstErr error
	if c.Sessions != nil {
		if err := c.Sessions.Close(); err != nil {
			firstErr = err
		}
	}
	if c.DB != nil {
		if err := c.DB.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}
