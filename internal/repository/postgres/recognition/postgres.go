package recognition

import (
	"context"

	recognitiondomain "credo-app-go/internal/domain/recognition"
	"gorm.io/gorm"
)

type PostgresRepository struct {
	db *gorm.DB
}

func NewPostgres(db *gorm.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) List(ctx context.Context) ([]recognitiondomain.Recognition, error) {
	var recs []recognitiondomain.Recognition
	if err := r.db.WithContext(ctx).
		Order("created_at desc").
		Find(&recs).Error; err != nil {
		return nil, err
	}
	return recs, nil
}

func (r *PostgresRepository) Create(ctx context.Context, rec *recognitiondomain.Recognition) error {
	return r.db.WithContext(ctx).Create(rec).Error
}

func (r *PostgresRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&recognitiondomain.Recognition{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
