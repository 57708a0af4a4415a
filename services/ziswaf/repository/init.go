package repository

import (
	"github.com/jmoiron/sqlx"

	"github.com/ziswafid/ziswaf-manager/internal/pkg/models"
)

// ZiswafRepo handles donation-domain data operations
type ZiswafRepo struct {
	cfg *models.Config
	db  *sqlx.DB
}

// NewZiswafRepo creates a new donation-domain repository instance
func NewZiswafRepo(cfg *models.Config, db *sqlx.DB) *ZiswafRepo {
	return &ZiswafRepo{
		cfg: cfg,
		db:  db,
	}
}
