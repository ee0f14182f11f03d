// Package config loads runtime configuration for the userdesk client.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file (see parseJson) selected via flags: -c or -config.
//  3. Environment variables (see parseEnv).
//  4. Command-line flags (see parseFlags), which override earlier values.
//
// Supported flags
//
//	-a string   base URL of the users API
//	-k string   API key sent as x-api-key
//	-d string   path of the local SQLite database
//	-t int      request timeout (seconds)
//	-l string   log level: debug, info, warn, error
//
// Environment
//
//	USERDESK_API_BASE   base URL of the users API
//	USERDESK_API_KEY    API key
//
// # JSON schema
//
// Durations may be given as strings like "15s" or as integer nanoseconds:
//
//	{
//	  "api_base_url": "https://reqres.in/api",
//	  "api_key": "reqres-free-v1",
//	  "database_path": "userdesk.db",
//	  "request_timeout": "15s",
//	  "log_level": "info",
//	  "log_format": "text"
//	}
package config
