// Package config loads the application configuration.
//
// # Overview
//
// Settings live in ~/.config/qrapp/config.toml. All of them have defaults, so
// the file is optional; a missing file yields a fully usable Config. Only a
// file that exists but fails to parse is treated as a startup error.
//
// # Fields
//
//	export_dir    directory PNG exports are written to (default ~/Pictures/qrapp)
//	png_size      exported PNG edge length in pixels (default 512)
//	default_level starting EC level: default, l, m, q, or h
//
// Paths support ~ expansion and are resolved to absolute form. Unrecognized
// level values fall back to the encoder's default policy rather than failing
// startup.
package config
