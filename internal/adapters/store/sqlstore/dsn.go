package sqlstore

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/go-sql-driver/mysql"

	"github.com/jsamuelsen11/todo-lists-api/internal/platform/config"
)

// normalizeDSN adjusts a configured DSN so that timestamps round-trip as UTC
// time.Time values and, for SQLite, foreign keys are enforced.
func normalizeDSN(driver, dsn string) (string, error) {
	switch driver {
	case config.DriverMySQL:
		cfg, err := mysql.ParseDSN(dsn)
		if err != nil {
			return "", fmt.Errorf("parsing mysql dsn: %w", err)
		}
		cfg.ParseTime = true
		cfg.Loc = time.UTC
		return cfg.FormatDSN(), nil
	case config.DriverSQLite:
		return sqliteDSN(dsn), nil
	default:
		return "", fmt.Errorf("unsupported database driver %q", driver)
	}
}

// sqliteDSN enables foreign key enforcement unless the DSN already sets it.
func sqliteDSN(dsn string) string {
	base, rawQuery, _ := strings.Cut(dsn, "?")
	q, err := url.ParseQuery(rawQuery)
	if err != nil {
		return dsn
	}
	if q.Has("_foreign_keys") || q.Has("_fk") {
		return dsn
	}
	q.Set("_foreign_keys", "on")
	return base + "?" + q.Encode()
}
