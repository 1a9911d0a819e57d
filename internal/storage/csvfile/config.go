package csvfile

import "os"

// Config holds file store location and behavior settings
type Config struct {
	// Path is the location of the account table CSV file
	Path string

	// FileMode is applied to new table files
	FileMode os.FileMode

	// CreateIfMissing writes a header-only table on first use
	// instead of failing Load when the file does not exist yet
	CreateIfMissing bool
}

// DefaultConfig returns sensible defaults for the file store
func DefaultConfig() Config {
	return Config{
		Path:            "data/bank_system.csv",
		FileMode:        0644,
		CreateIfMissing: false,
	}
}
