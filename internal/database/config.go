package database

import (
	"fmt"
)

// Config selects the backing store. The pizzeria runs on Postgres in
// production and on a local SQLite file everywhere else, so only the
// fields for the chosen driver matter.
type Config struct {
	Driver string

	// Postgres
	Host     string
	Port     string
	User     string
	Password string
	Name     string
	SSLMode  string

	// SQLite file path
	Path string
}

// String masks the password so configs can be logged at startup.
func (c *Config) String() string {
	return fmt.Sprintf("database.Config{Driver: %s, Host: %s, Port: %s, User: %s, Password: [REDACTED], Name: %s, SSLMode: %s, Path: %s}",
		c.Driver, c.Host, c.Port, c.User, c.Name, c.SSLMode, c.Path)
}

// DSN builds the connection string for the configured driver. An empty
// driver means SQLite, matching the config package default.
func (c *Config) DSN() string {
	switch c.Driver {
	case "postgres", "postgresql":
		return fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=%s",
			c.Host, c.User, c.Password, c.Name, c.Port, c.SSLMode)
	case "sqlite", "":
		return c.Path
	default:
		return ""
	}
}
