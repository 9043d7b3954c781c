package migrator

import (
	"database/sql"
	"errors"
	"fmt"
	"io/fs"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	_ "github.com/lib/pq"
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
}

// Up применяет все миграции из fsys (корень каталога) к базе dsn.
// Открывает собственное соединение: migrate закрывает его при Close.
func Up(dsn string, fsys fs.FS, log Logger) error {
	driver, err := openPostgres(dsn)
	if err != nil {
		return err
	}
	return UpWithDriver(driver, "postgres", fsys, log)
}

// UpWithDriver применяет миграции через готовый драйвер migrate.
// Драйвер закрывается по завершении.
func UpWithDriver(driver database.Driver, driverName string, fsys fs.FS, log Logger) error {
	m, err := newMigrate(driver, driverName, fsys)
	if err != nil {
		return err
	}
	defer m.Close()

	version, dirty, err := m.Version()
	if err != nil && !errors.Is(err, migrate.ErrNilVersion) {
		return fmt.Errorf("failed to get migration version: %w", err)
	}

	// Предыдущий запуск упал посреди миграции - откатываем флаг dirty
	if dirty {
		log.Warn("Found dirty database state at version %d, forcing version", version)
		if err := m.Force(int(version)); err != nil {
			return fmt.Errorf("failed to force version: %w", err)
		}
	}

	if err := m.Up(); err != nil {
		if errors.Is(err, migrate.ErrNoChange) {
			log.Info("Migrations: schema is up to date (version=%d)", version)
			return nil
		}
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	newVersion, _, _ := m.Version()
	log.Info("Migrations applied: version %d -> %d", version, newVersion)
	return nil
}

func openPostgres(dsn string) (database.Driver, error) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database for migrations: %w", err)
	}

	driver, err := postgres.WithInstance(db, &postgres.Config{})
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create migrate driver: %w", err)
	}
	return driver, nil
}

func newMigrate(driver database.Driver, driverName string, fsys fs.FS) (*migrate.Migrate, error) {
	src, err := iofs.New(fsys, ".")
	if err != nil {
		driver.Close()
		return nil, fmt.Errorf("failed to open migrations source: %w", err)
	}

	m, err := migrate.NewWithInstance("iofs", src, driverName, driver)
	if err != nil {
		src.Close()
		driver.Close()
		return nil, fmt.Errorf("failed to create migrate instance: %w", err)
	}

	return m, nil
}
