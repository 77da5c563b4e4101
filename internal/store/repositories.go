package store

import (
	"context"

	"github.com/Daafh07/HeartbeatSenseDB/internal/config"
	"github.com/Daafh07/HeartbeatSenseDB/internal/logger"
)

// Repositories aggregates every repository backed by the shared database
// connection. It is the single persistence entry point handed to the
// service layer.
type Repositories struct {
	UserRepository        UserRepository
	DeviceRepository      DeviceRepository
	MeasurementRepository MeasurementRepository
	ActivityRepository    ActivityRepository

	db *DB
}

// NewRepositories connects to PostgreSQL, applies pending migrations, and
// constructs all repositories over the shared connection.
func NewRepositories(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Repositories, error) {
	db, err := NewConnectPostgres(ctx, cfg.DB, log)
	if err != nil {
		log.Err(err).Msg("connection to database failed")
		return nil, err
	}

	if err := db.Migrate(); err != nil {
		log.Err(err).Msg("database migration failed")
		return nil, err
	}

	return &Repositories{
		UserRepository:        NewUserRepository(db, log),
		DeviceRepository:      NewDeviceRepository(db, log),
		MeasurementRepository: NewMeasurementRepository(db, log),
		ActivityRepository:    NewActivityRepository(db, log),
		db:                    db,
	}, nil
}

// Ping verifies that the underlying database connection is alive.
func (r *Repositories) Ping(ctx context.Context) error {
	return r.db.PingContext(ctx)
}

// Close releases the underlying database connection.
func (r *Repositories) Close() error {
	return r.db.Close()
}
