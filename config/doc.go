// Package config loads configuration structs from YAML files, .env
// files, and prefixed environment variables. Precedence, highest first:
// process environment, .env file, YAML file.
//
//	var cfg client.Config
//	err := config.Load("newman", &cfg, config.WithFile("config.yml"))
//
// Environment variables are bound under an upper-cased prefix derived
// from the name: NEWMAN_TIMEOUT, NEWMAN_DEFAULT_CONTENT_TYPE.
package config
