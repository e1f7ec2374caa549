package config

import (
	"fmt"
	"net/url"
	"os"

	"github.com/jackc/pgx/v5/pgxpool"
)

type Database struct {
	Username string
	Password string
	Host     string
	Port     string
	DBName   string
	SSLMode  string
}

func requireEnv(name string) (string, error) {
	value, ok := os.LookupEnv(name)
	if !ok {
		return "", fmt.Errorf("no %s env variable set", name)
	}
	return value, nil
}

func NewDatabase() (*Database, error) {
	var (
		db  Database
		err error
	)
	for _, field := range []struct {
		env string
		dst *string
	}{
		{"POSTGRES_USER", &db.Username},
		{"POSTGRES_PASSWORD", &db.Password},
		{"POSTGRES_HOST", &db.Host},
		{"POSTGRES_PORT", &db.Port},
		{"POSTGRES_DB", &db.DBName},
		{"POSTGRES_SSLMODE", &db.SSLMode},
	} {
		if *field.dst, err = requireEnv(field.env); err != nil {
			return nil, err
		}
	}
	return &db, nil
}

func (c Database) URL() string {
	return fmt.Sprintf(
		"postgresql://%s:%s@%s:%s/%s?sslmode=%s",
		c.Username,
		url.QueryEscape(c.Password),
		c.Host,
		c.Port,
		c.DBName,
		c.SSLMode,
	)
}

func DatabaseURL() (string, error) {
	if dbURL, ok := os.LookupEnv("DATABASE_URL"); ok {
		return dbURL, nil
	}
	cfg, err := NewDatabase()
	if err != nil {
		return "", fmt.Errorf("no DATABASE_URL set; %w", err)
	}
	return cfg.URL(), nil
}

func NewPgxpoolConfig() (*pgxpool.Config, error) {
	dbURL, err := DatabaseURL()
	if err != nil {
		return nil, err
	}
	return pgxpool.ParseConfig(dbURL)
}
