package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/go-sql-driver/mysql"

	"github.com/MKhiriev/go-pass-vault/internal/config"
	"github.com/MKhiriev/go-pass-vault/internal/logger"
)

// MySQL server and client error numbers the classifier recognises.
// See https://dev.mysql.com/doc/mysql-errors/8.0/en/
const (
	mysqlDuplicateEntry    = 1062
	mysqlConnectionError   = 2002
	mysqlConnHostError     = 2003
	mysqlServerGone        = 2006
	mysqlServerLost        = 2013
	mysqlTooManyConnection = 1040
)

func NewConnectMySQL(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	dsn, err := mysqlDSN(cfg.DSN)
	if err != nil {
		log.Err(err).Str("func", "NewConnectMySQL").Msg("invalid mysql dsn")
		return nil, fmt.Errorf("invalid mysql dsn: %w", err)
	}

	conn, err := sql.Open("mysql", dsn)
	if err != nil {
		log.Err(err).Str("func", "NewConnectMySQL").Msg("error occurred during database connection")
		return nil, fmt.Errorf("error occurred during database connection: %w", err)
	}

	conn.SetMaxOpenConns(4)

	if err = pingDB(ctx, conn, "NewConnectMySQL", log); err != nil {
		_ = conn.Close()
		return nil, err
	}

	return newDB(conn, config.DriverMySQL, log), nil
}

// mysqlDSN forces the connection options the repositories rely on:
// DATETIME columns scan into time.Time, and UPDATE reports matched rather
// than changed rows so that rewriting an identical value is not a miss.
func mysqlDSN(dsn string) (string, error) {
	c, err := mysql.ParseDSN(dsn)
	if err != nil {
		return "", err
	}
	c.ParseTime = true
	c.ClientFoundRows = true
	return c.FormatDSN(), nil
}

// MySQLErrorClassifier implements [ErrorClassificator] for MySQL and MariaDB.
type MySQLErrorClassifier struct{}

func NewMySQLErrorClassifier() *MySQLErrorClassifier {
	return &MySQLErrorClassifier{}
}

// Classify implements [ErrorClassificator].
func (c *MySQLErrorClassifier) Classify(err error) ErrorClassification {
	if err == nil {
		return Unclassified
	}

	if errors.Is(err, mysql.ErrInvalidConn) {
		return Unavailable
	}

	var myErr *mysql.MySQLError
	if !errors.As(err, &myErr) {
		return Unclassified
	}

	switch myErr.Number {
	case mysqlDuplicateEntry:
		return Conflict
	case mysqlConnectionError, mysqlConnHostError, mysqlServerGone, mysqlServerLost, mysqlTooManyConnection:
		return Unavailable
	}

	return Unclassified
}
