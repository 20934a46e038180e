// Package config loads runtime configuration for the CPP Hub CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file (see parseJson) selected via flags: -c or -config.
//  3. Environment variables (see parseEnv): CPPHUB_API_BASE_URL,
//     CPPHUB_REQUEST_TIMEOUT, CPPHUB_DATABASE_PATH.
//  4. Command-line flags (see parseFlags), which override earlier values.
//
// Supported flags
//
//	-b string   base URL of the backend auth API
//	-t int      request timeout (seconds)
//	-d string   path to the local state database
//
// # JSON schema
//
// The JSON loader uses timex.Duration for the timeout, so values can be
// either strings like "15s" or integer nanoseconds:
//
//	{
//	  "api_base_url": "https://backend.cpp-hub.com/api",
//	  "request_timeout": "15s",
//	  "database_path": "cpphub.db"
//	}
package config
