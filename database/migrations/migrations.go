// Package migrations contains the schema migration files. Each file
// registers itself via init(), so importing this package (blank import in
// cmd/hoodies) is enough to make every migration known to the runner.
package migrations
