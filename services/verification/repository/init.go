package repository

import (
	"github.com/jmoiron/sqlx"

	"github.com/vericore/kyc/internal/pkg/database"
	"github.com/vericore/kyc/internal/pkg/models"
)

// VerificationRepo implements the session and OTP repositories on top of
// PostgreSQL (durable sessions) and Redis (TTL'd OTP codes).
type VerificationRepo struct {
	cfg         *models.Config
	db          *sqlx.DB
	redisClient *database.RedisClient
}

// NewVerificationRepo creates a new verification repository instance
func NewVerificationRepo(cfg *models.Config, db *sqlx.DB, redisClient *database.RedisClient) *VerificationRepo {
	return &VerificationRepo{
		cfg:         cfg,
		db:          db,
		redisClient: redisClient,
	}
}
