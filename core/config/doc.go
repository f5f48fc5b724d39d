// Package config provides configuration management for the registry server.
//
// It utilizes Viper for loading configuration from environment variables and an
// optional .env file. Defaults come from the `default` struct tags of each section,
// so a bare start serves ./registry.json and ./public/r on port 8080.
//
// # Configuration Structure
//
//   - Server: bind host, port, address reuse, shutdown timeout
//   - Registry: route layouts (shadcn, public) and directory browsing
//   - Source: driver (fs, s3, database) and its root, key prefix or table
//   - Storage: S3/MinIO credentials and bucket for the s3 driver
//   - Database: MySQL/SQLite connection for the database driver
//   - Log: logging level and format
//
// Keys map to environment variables by upper-casing and replacing dots with
// underscores, e.g. REGISTRY_LAYOUTS=shadcn,public or SOURCE_ROOT=/srv/registry.
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    return err
//	}
//	fmt.Println(cfg.Server.Port)
package config
