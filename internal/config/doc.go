// Package config loads liftoff's TOML configuration.
//
// # Configuration Discovery
//
// The Load function follows this resolution order:
//
//  1. If a path is explicitly provided, use it
//  2. Otherwise, use ~/.config/liftoff/config.toml (default)
//  3. If the config file doesn't exist, fall back to Default()
//  4. If the file exists but fields are blank, use the per-field defaults
//
// # Default Values
//
//   - Config file: ~/.config/liftoff/config.toml
//   - Endpoint:    https://api.spacexdata.com/v3/launches
//   - Log file:    ~/.local/state/liftoff/liftoff.log
//   - Log level:   info
//   - Log format:  text
//
// # TOML Format
//
//	endpoint   = "https://api.spacexdata.com/v3/launches"
//	log_file   = "~/.local/state/liftoff/liftoff.log"   # "-" logs to stderr
//	log_level  = "info"                                 # debug|info|warn|error
//	log_format = "text"                                 # text|json
//
// # Validation
//
// After defaults are applied the struct is checked with go-playground
// validator: the endpoint must be an absolute URL and the log level and
// format must be one of the listed values. Failures are reported as
// "validate config: <Field> failed <tag> check".
//
// # Error Handling
//
// Load returns errors for path expansion failures, read errors other than
// os.ErrNotExist, TOML parse errors and validation failures. A missing file
// is not an error.
package config
