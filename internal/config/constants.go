package config

const (
	// DefaultDataDir holds the database snapshot and version marker.
	DefaultDataDir = "./data"

	// DefaultPageSize is the tutorial list page size when none is requested.
	DefaultPageSize = 10

	// DefaultExportDir receives markdown exports from the CLI.
	DefaultExportDir = "./exports"
)
