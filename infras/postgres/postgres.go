package postgres

//nolint:revive
import (
	"fmt"
	"lotus/config"
	"net"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/rs/zerolog/log"
)

const (
	postgresMaxIdleConnection = 10
	postgresMaxOpenConnection = 10
)

type Connection struct {
	Read  *sqlx.DB
	Write *sqlx.DB
}

func New(config *config.Config) *Connection {
	return &Connection{
		Read:  createConnection("read", config, readParams(config)),
		Write: createConnection("write", config, writeParams(config)),
	}
}

type connParams struct {
	username string
	password string
	host     string
	port     string
	name     string
	sslMode  string
}

func readParams(config *config.Config) connParams {
	read := config.DB.Postgres.Read

	return connParams{
		username: read.Username,
		password: read.Password,
		host:     read.Host,
		port:     read.Port,
		name:     prefixed(config, read.Name),
		sslMode:  read.SSLMode,
	}
}

func writeParams(config *config.Config) connParams {
	write := config.DB.Postgres.Write

	return connParams{
		username: write.Username,
		password: write.Password,
		host:     write.Host,
		port:     write.Port,
		name:     prefixed(config, write.Name),
		sslMode:  write.SSLMode,
	}
}

func prefixed(config *config.Config, baseName string) string {
	if config.DB.Postgres.Prefix != "" {
		return config.DB.Postgres.Prefix + baseName
	}

	return baseName
}

func createConnection(name string, config *config.Config, params connParams) *sqlx.DB {
	descriptor := fmt.Sprintf(
		"postgres://%s:%s@%s/%s?sslmode=%s",
		params.username,
		params.password,
		net.JoinHostPort(params.host, params.port),
		params.name,
		params.sslMode,
	)

	maxRetry := config.DB.Postgres.MaxRetry
	waitTime := config.DB.Postgres.RetryWaitTime

	for retry := range maxRetry {
		sqlDB, err := sqlx.Connect("postgres", descriptor)
		if err == nil {
			log.
				Info().
				Str("name", name).
				Str("host", params.host).
				Str("port", params.port).
				Str("dbName", params.name).
				Msg("Connected to database")
			sqlDB.SetMaxIdleConns(postgresMaxIdleConnection)
			sqlDB.SetMaxOpenConns(postgresMaxOpenConnection)

			return sqlDB
		}

		log.
			Error().
			Err(err).
			Str("name", name).
			Str("host", params.host).
			Str("port", params.port).
			Str("dbName", params.name).
			Int("attempt", retry+1).
			Msg("Failed connecting to database, retrying")

		time.Sleep(time.Duration(waitTime) * time.Second)
	}

	return nil
}
