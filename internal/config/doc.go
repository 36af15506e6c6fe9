// Package config loads quill's TOML configuration.
//
// # Resolution
//
// Load uses the path it is given, or ~/.config/quill/config.toml. A missing
// file yields Default(); fields left blank in an existing file also take
// their defaults. Paths starting with ~ are expanded and made absolute.
//
// # Fields
//
//	data_dir = "~/.local/share/quill"   # where notes live
//	backend = "sqlite"                  # sqlite or markdown
//	log_file = "~/.local/share/quill/quill.log"
//	log_level = "info"                  # debug, info, warn, error
//	dp_per_column = 8                   # columns to dp for the layout breakpoint
//	poll_seconds = 5                    # list refresh interval, 0 disables
//	locale = ""                         # overrides $LANG for labels
//
// After parsing, the struct is validated and every failing field is reported
// by its TOML key.
package config
