package database

import (
	"context"
	"time"

	"gorm.io/gorm"
	"toolkitaccess.app/internal/ports"
	"toolkitaccess.app/pkg/errors"
)

// AccessRequestModel represents the database model for access requests
type AccessRequestModel struct {
	ID        uint   `gorm:"primaryKey"`
	Name      string `gorm:"not null"`
	Username  string `gorm:"index;not null"`
	Role      string `gorm:"not null"`
	Page      string `gorm:"not null"`
	CreatedAt time.Time
}

func (AccessRequestModel) TableName() string {
	return "access_requests"
}

// AccessRequestRepositoryAdapter implements the RequestLog port using GORM
type AccessRequestRepositoryAdapter struct {
	db *gorm.DB
}

// NewAccessRequestRepositoryAdapter creates a new access request repository adapter
func NewAccessRequestRepositoryAdapter(db *gorm.DB) *AccessRequestRepositoryAdapter {
	return &AccessRequestRepositoryAdapter{db: db}
}

// Append inserts one access request row
func (r *AccessRequestRepositoryAdapter) Append(ctx context.Context, data ports.AccessRequestData) error {
	model := &AccessRequestModel{
		Name:     data.Name,
		Username: data.Username,
		Role:     data.Role,
		Page:     data.Page,
	}

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return errors.NewDatabaseError("failed to save access request", err)
	}
	return nil
}

// List returns every access request in insertion order
func (r *AccessRequestRepositoryAdapter) List(ctx context.Context) ([]ports.AccessRequestData, error) {
	var models []AccessRequestModel
	if err := r.db.WithContext(ctx).Order("id asc").Find(&models).Error; err != nil {
		return nil, errors.NewDatabaseError("failed to list access requests", err)
	}

	out := make([]ports.AccessRequestData, 0, len(models))
	for _, m := range models {
		out = append(out, ports.AccessRequestData{
			Name:     m.Name,
			Username: m.Username,
			Role:     m.Role,
			Page:     m.Page,
		})
	}
	return out, nil
}

// Ping checks the database connection
func (r *AccessRequestRepositoryAdapter) Ping(ctx context.Context) error {
	sqlDB, err := r.db.DB()
	if err != nil {
		return errors.NewDatabaseError("failed to get sql handle", err)
	}
	if err := sqlDB.PingContext(ctx); err != nil {
		return errors.NewDatabaseError("database ping failed", err)
	}
	return nil
}

// Close closes the underlying connection pool
func (r *AccessRequestRepositoryAdapter) Close() error {
	return CloseDB(r.db)
}
