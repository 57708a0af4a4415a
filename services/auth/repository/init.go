package repository

import (
	"github.com/jmoiron/sqlx"

	"github.com/ziswafid/ziswaf-manager/internal/pkg/database"
	"github.com/ziswafid/ziswaf-manager/internal/pkg/models"
)

// UserRepo implements auth.UserRepo over Postgres and Redis
type UserRepo struct {
	cfg         *models.Config
	db          *sqlx.DB
	redisClient *database.RedisClient
}

// NewUserRepo creates a new user repository instance
func NewUserRepo(cfg *models.Config, db *sqlx.DB, redisClient *database.RedisClient) *UserRepo {
	return &UserRepo{
		cfg:         cfg,
		db:          db,
		redisClient: redisClient,
	}
}
