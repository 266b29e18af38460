// Package file keeps AppSettings in a TOML file, by default
// ~/.hie/config.toml.
package file
