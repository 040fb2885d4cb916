package plan

import (
	"log/slog"
	"time"

	"github.com/SiedahmedM/Saif-sub000/internal/sqlite"
)

const timestampFormat = "2006-01-02T15:04:05.000Z"

// baseRepository carries the shared database handle and logger for the
// SQLite-backed repositories.
type baseRepository struct {
	db     *sqlite.Database
	logger *slog.Logger
}

func newBaseRepository(db *sqlite.Database, logger *slog.Logger) baseRepository {
	return baseRepository{db: db, logger: logger}
}

// repository bundles the collaborator repositories behind one handle.
type repository struct {
	catalog  *sqliteCatalogRepository
	sessions *sqliteSessionRepository
	sets     *sqliteSetRepository
	prefs    *sqlitePreferenceRepository
}

func newRepository(db *sqlite.Database, logger *slog.Logger) *repository {
	base := newBaseRepository(db, logger)
	return &repository{
		catalog:  &sqliteCatalogRepository{baseRepository: base},
		sessions: &sqliteSessionRepository{baseRepository: base},
		sets:     &sqliteSetRepository{baseRepository: base},
		prefs:    &sqlitePreferenceRepository{baseRepository: base},
	}
}

func formatTimestamp(t time.Time) string {
	return t.UTC().Format(timestampFormat)
}

func parseTimestamp(s string) (time.Time, error) {
	return time.Parse(timestampFormat, s)
}
