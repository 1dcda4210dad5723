// Package config loads the settings of a scaffold run from a Laravel
// project: an optional scaffold.yaml with the generator keys, and the
// database connection from the project's .env file. Process environment
// variables take precedence over the .env file.
package config
