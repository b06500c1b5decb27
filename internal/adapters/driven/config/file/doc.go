// Package file provides TOML-backed configuration adapters.
// Export option presets live in a config file inside the bindery
// config directory; the engine itself never reads configuration.
package file
