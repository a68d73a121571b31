// Package config loads the hawktui TOML configuration
package config
