package app

import (
	"context"
	"database/sql"

	"mernify-backend/internal/config"
	"mernify-backend/internal/identity"
	"mernify-backend/internal/logger"
	"mernify-backend/internal/redis"

	_ "github.com/lib/pq"
)

type Infra struct {
	DB    *sql.DB
	Users *identity.PostgresStore
	Redis *redis.Client
}

func setupInfra(ctx context.Context, cfg config.Config) (*Infra, error) {
	sqlDB, err := sql.Open("postgres", cfg.DatabaseDSN)
	if err != nil {
		return nil, err
	}

	if err := sqlDB.PingContext(ctx); err != nil {
		return nil, err
	}

	users := identity.NewPostgresStore(sqlDB)
	if err := users.Migrate(ctx); err != nil {
		return nil, err
	}

	logger.Info("database ready")

	redisClient, err := redis.New(cfg.RedisAddr, cfg.RedisPassword)
	if err != nil {
		return nil, err
	}

	logger.Info("redis ready")

	return &Infra{
		DB:    sqlDB,
		Users: users,
		Redis: redisClient,
	}, nil
}
