package config

const (
	defaultServerPort = 8080
	defaultRateBurst  = 20

	defaultDatabaseMaxOpenConns = 10
	defaultDatabaseMaxIdleConns = 5

	defaultRetryMaxAttempts = 5
	defaultRetryMultiplier  = 2.0

	defaultCircuitBreakerMaxFailures = 5
	defaultCircuitBreakerHalfOpen    = 1
)

// defaults returns the default configuration values.
// These are loaded first and can be overridden by base.yaml, profile YAML, and env vars.
func defaults() map[string]any {
	return map[string]any{
		"server.host":            "0.0.0.0",
		"server.port":            defaultServerPort,
		"server.read_timeout":    "5s",
		"server.write_timeout":   "10s",
		"server.idle_timeout":    "120s",
		"server.request_timeout": "8s",

		"server.rate_limit.requests_per_second": 0,
		"server.rate_limit.burst_size":          defaultRateBurst,

		"log.level":  "info",
		"log.format": "json",

		"database.driver":                          "sqlite3",
		"database.dsn":                             "file:todo.db?_foreign_keys=on",
		"database.max_open_conns":                  defaultDatabaseMaxOpenConns,
		"database.max_idle_conns":                  defaultDatabaseMaxIdleConns,
		"database.conn_max_lifetime":               "30m",
		"database.auto_migrate":                    true,
		"database.connect_retry.max_attempts":      defaultRetryMaxAttempts,
		"database.connect_retry.initial_interval":  "200ms",
		"database.connect_retry.max_interval":      "5s",
		"database.connect_retry.multiplier":        defaultRetryMultiplier,
		"database.circuit_breaker.max_failures":    defaultCircuitBreakerMaxFailures,
		"database.circuit_breaker.timeout":         "30s",
		"database.circuit_breaker.half_open_limit": defaultCircuitBreakerHalfOpen,

		"telemetry.enabled":      false,
		"telemetry.exporter":     "stdout",
		"telemetry.endpoint":     "",
		"telemetry.service_name": "todo-lists-api",
	}
}
