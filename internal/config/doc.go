// Package config defines the application configuration structure and
// provides functionality to load it from the environment.
package config
