package team

import (
	"context"

	teamdomain "credo-app-go/internal/domain/team"
	"gorm.io/gorm"
)

type PostgresRepository struct {
	db *gorm.DB
}

func NewPostgres(db *gorm.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) List(ctx context.Context) ([]teamdomain.Member, error) {
	var members []teamdomain.Member
	if err := r.db.WithContext(ctx).
		Order("id asc").
		Find(&members).Error; err != nil {
		return nil, err
	}
	return members, nil
}

func (r *PostgresRepository) Create(ctx context.Context, member *teamdomain.Member) error {
	return r.db.WithContext(ctx).Create(member).Error
}

func (r *PostgresRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&teamdomain.Member{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
