package database

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/jackc/pgx/v5/tracelog"
	_ "github.com/mattn/go-sqlite3"
	"github.com/sirupsen/logrus"
	_ "modernc.org/sqlite"

	"github.com/eslsoft/luci/internal/infrastructure/config"
	"github.com/eslsoft/luci/internal/infrastructure/database/migrate"
)

// Client bundles the ent SQL driver with the underlying pool.
type Client struct {
	dialect.Driver
	DB *sql.DB
}

// Ping checks connectivity.
func (c *Client) Ping(ctx context.Context) error {
	return c.DB.PingContext(ctx)
}

// NewClient opens the configured database and returns an ent driver over it.
func NewClient(cfg *config.Config, logger *logrus.Logger) (*Client, func(), error) {
	driver, err := cfg.DatabaseDriver()
	if err != nil {
		return nil, nil, fmt.Errorf("determine database driver: %w", err)
	}

	dsn, err := cfg.DatabaseURL()
	if err != nil {
		return nil, nil, fmt.Errorf("determine database dsn: %w", err)
	}

	var client *Client
	switch driver {
	case "postgres":
		client, err = openPostgres(cfg, logger, dsn)
	case "sqlite3", "sqlite":
		client, err = openSQLite(cfg, logger, driver, dsn)
	default:
		err = fmt.Errorf("unsupported database driver %q", driver)
	}
	if err != nil {
		return nil, nil, err
	}

	return client, func() {
		if cerr := client.Close(); cerr != nil {
			logger.WithError(cerr).Warn("close database")
		}
	}, nil
}

func openPostgres(cfg *config.Config, logger *logrus.Logger, dsn string) (*Client, error) {
	connCfg, err := pgx.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("parse postgres config: %w", err)
	}
	if cfg.Database.LogSQL {
		connCfg.Tracer = &tracelog.TraceLog{
			Logger:   pgxLogger(logger),
			LogLevel: tracelog.LogLevelTrace,
		}
	}

	rawDB := stdlib.OpenDB(*connCfg)
	rawDB.SetMaxOpenConns(10)

	if err := ping(rawDB); err != nil {
		rawDB.Close()
		return nil, fmt.Errorf("ping postgres: %w", err)
	}

	return &Client{Driver: entsql.OpenDB(dialect.Postgres, rawDB), DB: rawDB}, nil
}

// openSQLite serves both the cgo (sqlite3) and pure Go (sqlite) drivers. A
// single connection serializes writers.
func openSQLite(cfg *config.Config, logger *logrus.Logger, driver, dsn string) (*Client, error) {
	rawDB, err := sql.Open(driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}
	rawDB.SetMaxOpenConns(1)
	rawDB.SetMaxIdleConns(1)

	if err := ping(rawDB); err != nil {
		rawDB.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if _, err := rawDB.ExecContext(ctx, "PRAGMA foreign_keys = ON;"); err != nil {
		rawDB.Close()
		return nil, fmt.Errorf("enable sqlite foreign keys: %w", err)
	}

	var drv dialect.Driver = entsql.OpenDB(dialect.SQLite, rawDB)
	if cfg.Database.LogSQL {
		drv = dialect.DebugWithContext(drv, func(ctx context.Context, args ...any) {
			logger.WithContext(ctx).Debug(args...)
		})
	}
	return &Client{Driver: drv, DB: rawDB}, nil
}

func ping(db *sql.DB) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return db.PingContext(ctx)
}

func pgxLogger(logger *logrus.Logger) tracelog.Logger {
	return tracelog.LoggerFunc(func(ctx context.Context, lvl tracelog.LogLevel, msg string, data map[string]any) {
		entry := logger.WithContext(ctx).WithFields(logrus.Fields(data))
		switch lvl {
		case tracelog.LogLevelError:
			entry.Error(msg)
		case tracelog.LogLevelWarn:
			entry.Warn(msg)
		case tracelog.LogLevelInfo:
			entry.Info(msg)
		default:
			entry.Debug(msg)
		}
	})
}

// Migrate creates or upgrades the schema.
func Migrate(ctx context.Context, drv dialect.Driver) error {
	if err := migrate.Create(ctx, drv); err != nil {
		return fmt.Errorf("migrate schema: %w", err)
	}
	return nil
}
