package db

import (
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/quizcourse/quizcourse/internal/config"
	"github.com/quizcourse/quizcourse/internal/repository/dao"
)

const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

var (
	ErrDatabaseMissing = errors.New("database does not exist")
	ErrAccessDenied    = errors.New("database refused the credentials")
)

// Open connects to the local store and migrates its tables. SQLite is the
// on-device default; postgres is accepted for shared development setups.
func Open(conf *config.StorageConfig) (*gorm.DB, error) {
	var dialector gorm.Dialector
	switch conf.Driver {
	case DriverSQLite, "":
		dialector = sqlite.Open(conf.DSN)
	case DriverPostgres:
		dialector = postgres.Open(conf.DSN)
	default:
		return nil, fmt.Errorf("unsupported storage driver %q", conf.Driver)
	}

	gormDB, err := gorm.Open(dialector, &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
	})
	if err != nil {
		return nil, fmt.Errorf("gorm.Open -> %w", classify(err))
	}

	if err = dao.InitTables(gormDB); err != nil {
		return nil, fmt.Errorf("dao.InitTables -> %w", err)
	}

	return gormDB, nil
}

func Close(gormDB *gorm.DB) error {
	sqlDB, err := gormDB.DB()
	if err != nil {
		return err
	}

	return sqlDB.Close()
}

// classify maps postgres connection failures onto package sentinels.
func classify(err error) error {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return err
	}

	switch pgErr.Code {
	case pgerrcode.InvalidCatalogName:
		return fmt.Errorf("%w: %s", ErrDatabaseMissing, pgErr.Message)
	case pgerrcode.InvalidPassword, pgerrcode.InvalidAuthorizationSpecification:
		return fmt.Errorf("%w: %s", ErrAccessDenied, pgErr.Message)
	}

	return err
}
