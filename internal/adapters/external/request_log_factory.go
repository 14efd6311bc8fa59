package external

import (
	"fmt"

	"toolkitaccess.app/internal/adapters/database"
	"toolkitaccess.app/internal/config"
	"toolkitaccess.app/internal/ports"
	"toolkitaccess.app/pkg/errors"
)

type RequestLogFactory struct{}

func NewRequestLogFactory() *RequestLogFactory {
	return &RequestLogFactory{}
}

func (f *RequestLogFactory) CreateRequestLog(cfg *config.StoreConfig) (ports.RequestLog, error) {
	if cfg == nil {
		return nil, errors.NewConfigurationError("store config cannot be nil", nil)
	}

	switch cfg.Type {
	case config.StoreTypeMemory:
		return NewMemoryRequestLogAdapter(), nil
	case config.StoreTypeRedis:
		log, err := NewRedisRequestLogAdapter(&cfg.Redis)
		if err != nil {
			return nil, err
		}
		return log, nil
	case config.StoreTypeSQL:
		db, err := database.InitDB(cfg.SQL)
		if err != nil {
			return nil, err
		}
		return database.NewAccessRequestRepositoryAdapter(db), nil
	default:
		return nil, errors.NewConfigurationError(
			fmt.Sprintf("unsupported store type: %s", cfg.Type.String()), nil)
	}
}
