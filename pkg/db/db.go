package db

import (
	"errors"
	"fmt"
	"os"

	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
	_ "modernc.org/sqlite"

	"liyu1981.xyz/glucose-tracker/pkg/common"
	"liyu1981.xyz/glucose-tracker/pkg/models"
)

// DB is the store handle. It is created once by the application root with Open
// and released with Close; nothing in the tree keeps a global copy.
type DB struct {
	Conn    *gorm.DB
	Changes *ChangeFeed
}

func Open(dialector gorm.Dialector) (*DB, error) {
	logger := common.GetLoggerWith(common.LoggerNameStore)

	conn, err := gorm.Open(dialector, &gorm.Config{
		Logger: gormLogger(),
	})
	if err != nil {
		return nil, fmt.Errorf("connect to database: %w", err)
	}

	logger.Info("Connected to database", zap.String("dialector", dialector.Name()))

	if dialector.Name() == "sqlite" {
		sqlDB, err := conn.DB()
		if err != nil {
			return nil, fmt.Errorf("get sqlite handle: %w", err)
		}
		// one writer at a time, the store serializes conflicting writes
		sqlDB.SetMaxOpenConns(1)
	}

	instance := &DB{Conn: conn, Changes: NewChangeFeed()}

	if err := instance.ensureSchema(); err != nil {
		_ = instance.Close()
		return nil, err
	}

	logger.Info("Database migration completed", zap.Int("schema_version", models.SchemaVersion))

	if dialector.Name() == "sqlite" {
		if err := conn.Exec("PRAGMA foreign_keys = ON").Error; err != nil {
			_ = instance.Close()
			return nil, fmt.Errorf("enable sqlite foreign key support: %w", err)
		}
		if err := conn.Exec("PRAGMA journal_mode = WAL").Error; err != nil {
			_ = instance.Close()
			return nil, fmt.Errorf("set sqlite journal mode: %w", err)
		}
	}

	if err := instance.registerChangeCallbacks(); err != nil {
		_ = instance.Close()
		return nil, err
	}

	return instance, nil
}

func (d *DB) Close() error {
	if d == nil || d.Conn == nil {
		return nil
	}
	d.Changes.Close()
	sqlDB, err := d.Conn.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// ensureSchema applies the destructive-recreate policy: a store written by a
// different schema version loses all rows.
func (d *DB) ensureSchema() error {
	logger := common.GetLoggerWith(common.LoggerNameStore)
	migrator := d.Conn.Migrator()

	stored := 0
	if migrator.HasTable(&models.SchemaInfo{}) {
		var info models.SchemaInfo
		err := d.Conn.First(&info).Error
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("read schema version: %w", err)
		}
		stored = info.Version
	}

	if stored != models.SchemaVersion && d.hasAnyDomainTable() {
		logger.Warn("Schema version changed, recreating all tables",
			zap.Int("stored_version", stored),
			zap.Int("schema_version", models.SchemaVersion))

		tables := append(models.All(), &models.SchemaInfo{})
		// children first so foreign keys never block the drop
		for i := len(tables) - 1; i >= 0; i-- {
			if err := migrator.DropTable(tables[i]); err != nil {
				return fmt.Errorf("drop table: %w", err)
			}
		}
	}

	if err := d.Conn.AutoMigrate(append(models.All(), &models.SchemaInfo{})...); err != nil {
		return fmt.Errorf("migrate database: %w", err)
	}

	return d.Conn.Save(&models.SchemaInfo{ID: 1, Version: models.SchemaVersion}).Error
}

func (d *DB) hasAnyDomainTable() bool {
	for _, m := range models.All() {
		if d.Conn.Migrator().HasTable(m) {
			return true
		}
	}
	return d.Conn.Migrator().HasTable(&models.SchemaInfo{})
}

func gormLogger() logger.Interface {
	if common.IsDevelopment() {
		return logger.Default.LogMode(logger.Info)
	}
	return logger.Default.LogMode(logger.Silent)
}

// UseSqliteDialector opens a file store through the cgo sqlite3 driver.
func UseSqliteDialector() gorm.Dialector {
	return sqlite.Open(fmt.Sprintf("file:%s?_foreign_keys=1", dbPath()))
}

// UsePureSqliteDialector opens the same file store through modernc.org/sqlite,
// for builds with CGO_ENABLED=0.
func UsePureSqliteDialector() gorm.Dialector {
	return &sqlite.Dialector{
		DriverName: "sqlite",
		DSN:        fmt.Sprintf("file:%s?_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)", dbPath()),
	}
}

// UseMemorySqliteDialector returns an isolated in-memory store. Every name
// gets its own database, so tests do not see each other's rows.
func UseMemorySqliteDialector(name string) gorm.Dialector {
	return sqlite.Open(fmt.Sprintf("file:%s?mode=memory&cache=shared&_foreign_keys=1", name))
}

func UsePostgresDialector(dsn string) gorm.Dialector {
	return postgres.Open(dsn)
}

// UseDialector maps a configured store type to its dialector.
func UseDialector(dbType string, dsn string) (gorm.Dialector, error) {
	switch dbType {
	case "file":
		return UseSqliteDialector(), nil
	case "pure":
		return UsePureSqliteDialector(), nil
	case "memory":
		return UseMemorySqliteDialector("tracker"), nil
	case "postgres":
		if dsn == "" {
			return nil, fmt.Errorf("%s is required for postgres", common.EnvKeyHealthDbDSN)
		}
		return UsePostgresDialector(dsn), nil
	default:
		return nil, fmt.Errorf("unknown %s: %q", common.EnvKeyHealthDBType, dbType)
	}
}

func dbPath() string {
	if path, found := os.LookupEnv(common.EnvKeyHealthDbPath); found && path != "" {
		return path
	}
	return "glucose_tracker.db"
}
