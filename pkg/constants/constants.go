// Package constants provides shared constants used throughout the lotfix codebase.
// This includes file names, permissions, and formatting values that should be
// consistent across the application.
package constants

// File constants define the inventory data file defaults
const (
	// DefaultDataFile is the inventory file the tool operates on when no
	// path is given on the command line or in configuration
	DefaultDataFile = "mock-data.json"

	// JSONIndent is the indentation unit used when writing the inventory
	// file, keeping it diff-friendly for version control
	JSONIndent = "  "
)

// File permission constants define standard Unix file permissions
const (
	// DirPermissions is the default permission for created directories (rwxr-xr-x)
	DirPermissions = 0755

	// FilePermissions is the default permission for created files (rw-r--r--)
	FilePermissions = 0644
)

// ID range constants document the numbering convention for the two collections
const (
	// NewCarIDStart is the first identifier assigned when renumbering new cars
	NewCarIDStart = 1

	// UsedCarIDRangeStart and UsedCarIDRangeEnd describe the conventional
	// identifier range for used cars. The range is reported in summaries but
	// never enforced or verified.
	UsedCarIDRangeStart = 101
	UsedCarIDRangeEnd   = 200
)
