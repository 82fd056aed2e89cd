package helper

//nolint:revive
import (
	"errors"
	"fmt"
	"net"
	"palmera/config"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/rs/zerolog/log"
)

const migrationSource = "file://migrations/postgres"

func getDBName(config *config.Config, baseName string) string {
	if config.DB.Postgres.Prefix != "" {
		return config.DB.Postgres.Prefix + baseName
	}

	return baseName
}

func getConnection(config *config.Config) (*migrate.Migrate, error) {
	connectionString := fmt.Sprintf("postgres://%s:%s@%s/%s?sslmode=%s&x-migrations-table=%s",
		config.DB.Postgres.Write.Username,
		config.DB.Postgres.Write.Password,
		net.JoinHostPort(config.DB.Postgres.Write.Host, config.DB.Postgres.Write.Port),
		getDBName(config, config.DB.Postgres.Write.Name),
		config.DB.Postgres.Write.SSLMode,
		config.DB.Postgres.MigrationTable,
	)

	mig, err := migrate.New(migrationSource, connectionString)
	if err != nil {
		return nil, fmt.Errorf("error creating migrate instance: %w", err)
	}

	return mig, nil
}

// Runner applies the named migration action against the write database.
// The schema carries the btree_gist exclusion constraint that backs
// conflict detection, so bookings must not be served before Up has run.
func Runner(config *config.Config, action string) error {
	mig, err := getConnection(config)
	if err != nil {
		return fmt.Errorf("error creating migrate instance: %w", err)
	}

	defer mig.Close()

	var runErr error

	switch action {
	case "up":
		runErr = mig.Up()
	case "step-up":
		runErr = mig.Steps(1)
	case "down":
		runErr = mig.Steps(-1)
	case "drop":
		runErr = mig.Down()
	default:
		return fmt.Errorf("unknown migration action: %s", action)
	}

	if errors.Is(runErr, migrate.ErrNoChange) {
		log.Info().Str("action", action).Msg("Database schema already up to date")

		return nil
	}

	if runErr != nil {
		return fmt.Errorf("error running migration action %s: %w", action, runErr)
	}

	log.Info().Str("action", action).Msg("Database migration action completed")

	return nil
}

func Up(config *config.Config) error {
	return Runner(config, "up")
}

func StepUp(config *config.Config) error {
	return Runner(config, "step-up")
}

func Down(config *config.Config) error {
	return Runner(config, "down")
}

func Drop(config *config.Config) error {
	return Runner(config, "drop")
}
