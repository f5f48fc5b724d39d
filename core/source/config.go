package source

// Config selects where registry files are read from.
type Config struct {
	// Driver is the backend (fs, s3, database).
	Driver string `mapstructure:"driver" default:"fs"`
	// Root is the registry base directory for the fs driver.
	Root string `mapstructure:"root" default:"."`
	// Prefix is prepended to object keys for the s3 driver.
	Prefix string `mapstructure:"prefix" default:""`
	// Table holds registry files for the database driver.
	Table string `mapstructure:"table" default:"registry_files"`
}

const (
	DriverFS       = "fs"
	DriverS3       = "s3"
	DriverDatabase = "database"
)
