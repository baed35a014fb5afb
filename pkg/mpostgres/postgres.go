package mpostgres

import (
	"database/sql"
	"errors"
	"net/url"
	"path/filepath"

	"github.com/bxcodec/dbresolver/v2"
	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/kartevonmorgen/openfairdb/pkg/mlog"

	// Postgres driver for database/sql.
	_ "github.com/jackc/pgx/v5/stdlib"

	// File system migration source. We need to import it to be able to use it as source in migrate.NewWithDatabaseInstance.
	_ "github.com/golang-migrate/migrate/v4/source/file"
)

// PostgresConnection is a hub which deal with postgres connections.
//
// The primary connection is the single writer; replicas serve the shared
// read-only pool. Writes are serialized on the primary by dbresolver.
type PostgresConnection struct {
	ConnectionStringPrimary string
	ConnectionStringReplica string
	PrimaryDBName           string
	ReplicaDBName           string
	MigrationsPath          string
	MaxOpenConnections      int
	ConnectionDB            *dbresolver.DB
	Connected               bool
	Logger                  mlog.Logger
}

// Connect keeps a singleton connection with postgres.
func (pc *PostgresConnection) Connect() error {
	pc.Logger.Info("Connecting to primary and replica databases...")

	dbPrimary, err := sql.Open("pgx", pc.ConnectionStringPrimary)
	if err != nil {
		pc.Logger.Errorf("failed to open connect to primary database: %v", err)

		return err
	}

	// The primary is the exclusive writer.
	dbPrimary.SetMaxOpenConns(1)

	dbReadOnlyReplica, err := sql.Open("pgx", pc.ConnectionStringReplica)
	if err != nil {
		pc.Logger.Errorf("failed to open connect to replica database: %v", err)

		return err
	}

	if pc.MaxOpenConnections > 0 {
		dbReadOnlyReplica.SetMaxOpenConns(pc.MaxOpenConnections)
	}

	connectionDB := dbresolver.New(
		dbresolver.WithPrimaryDBs(dbPrimary),
		dbresolver.WithReplicaDBs(dbReadOnlyReplica),
		dbresolver.WithLoadBalancer(dbresolver.RoundRobinLB))

	migrationsPath, err := filepath.Abs(pc.MigrationsPath)
	if err != nil {
		pc.Logger.Errorf("failed to get migrations filepath: %v", err)

		return err
	}

	primaryURL, err := url.Parse(filepath.ToSlash(migrationsPath))
	if err != nil {
		pc.Logger.Errorf("failed to parse migrations url: %v", err)

		return err
	}

	primaryURL.Scheme = "file"

	primaryDriver, err := postgres.WithInstance(dbPrimary, &postgres.Config{
		MultiStatementEnabled: true,
		DatabaseName:          pc.PrimaryDBName,
		SchemaName:            "public",
	})
	if err != nil {
		pc.Logger.Errorf("failed to open migration driver: %v", err)

		return err
	}

	m, err := migrate.NewWithDatabaseInstance(primaryURL.String(), pc.PrimaryDBName, primaryDriver)
	if err != nil {
		pc.Logger.Errorf("failed to get migrations: %v", err)

		return err
	}

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return err
	}

	if err := connectionDB.Ping(); err != nil {
		pc.Logger.Errorf("PostgresConnection.Ping %v", err)

		return err
	}

	pc.Connected = true
	pc.ConnectionDB = &connectionDB

	pc.Logger.Info("Connected to postgres ✅ ")

	return nil
}

// GetDB returns a pointer to the postgres connection, initializing it if necessary.
func (pc *PostgresConnection) GetDB() (dbresolver.DB, error) {
	if pc.ConnectionDB == nil {
		if err := pc.Connect(); err != nil {
			pc.Logger.Errorf("ERRCONECT %s", err)

			return nil, err
		}
	}

	return *pc.ConnectionDB, nil
}
