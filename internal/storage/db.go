// ABOUTME: Database connection and lifecycle management for the tracker store.
// ABOUTME: Uses modernc.org/sqlite (pure Go) by default, pgx for the postgres backend.
package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/adrg/xdg"
	"github.com/charmbracelet/log"
	_ "github.com/jackc/pgx/v5/stdlib"
	_ "modernc.org/sqlite"
)

type dialect int

const (
	dialectSQLite dialect = iota
	dialectPostgres
)

func (d dialect) String() string {
	if d == dialectPostgres {
		return "postgres"
	}
	return "sqlite"
}

// sqlitePragmas are applied to every pooled connection through the DSN.
var sqlitePragmas = []string{
	"foreign_keys(ON)",
	"journal_mode(WAL)",
	"busy_timeout(5000)",
	"synchronous(NORMAL)",
}

// DB wraps the process-wide database handle. It is opened once and shared
// by every operation; callers receive it explicitly.
type DB struct {
	db      *sql.DB
	dbPath  string
	dialect dialect
}

// Open opens or creates a SQLite database at the given path.
func Open(dbPath string) (*DB, error) {
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0750); err != nil {
		return nil, fmt.Errorf("create data directory: %w", err)
	}

	dsn := dbPath + "?_pragma=" + strings.Join(sqlitePragmas, "&_pragma=")
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	if err := os.Chmod(dbPath, 0600); err != nil && !os.IsNotExist(err) {
		_ = db.Close()
		return nil, fmt.Errorf("set database permissions: %w", err)
	}

	return newDB(db, dbPath, dialectSQLite)
}

// OpenInMemory opens a private in-memory SQLite database. Used by tests.
func OpenInMemory() (*DB, error) {
	db, err := sql.Open("sqlite", ":memory:?_pragma=foreign_keys(ON)")
	if err != nil {
		return nil, fmt.Errorf("open in-memory database: %w", err)
	}
	return newDB(db, ":memory:", dialectSQLite)
}

// OpenPostgres connects to a PostgreSQL database using a pgx DSN.
func OpenPostgres(dsn string) (*DB, error) {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}
	return newDB(db, dsn, dialectPostgres)
}

func newDB(db *sql.DB, path string, dialect dialect) (*DB, error) {
	// One logical actor: a single connection keeps :memory: databases
	// coherent and serializes every statement.
	db.SetMaxOpenConns(1)

	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	d := &DB{db: db, dbPath: path, dialect: dialect}
	if err := d.initSchema(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("initialize schema: %w", err)
	}

	log.Debug("store opened", "backend", dialect, "path", d.displayPath())
	return d, nil
}

// DataDir returns the default data directory under XDG_DATA_HOME.
func DataDir() string {
	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		dataHome = xdg.DataHome
	}
	return filepath.Join(dataHome, "ftracker")
}

// DefaultDBPath returns the default database path under XDG_DATA_HOME.
func DefaultDBPath() string {
	return filepath.Join(DataDir(), "ftracker.db")
}

// Close closes the database connection.
func (d *DB) Close() error {
	if d.db != nil {
		return d.db.Close()
	}
	return nil
}

// displayPath hides postgres credentials from log output.
func (d *DB) displayPath() string {
	if d.dialect == dialectPostgres {
		return "postgres"
	}
	return d.dbPath
}

// rebind rewrites ? placeholders into $n for postgres.
func (d *DB) rebind(query string) string {
	if d.dialect != dialectPostgres {
		return query
	}
	var b strings.Builder
	n := 0
	for _, r := range query {
		if r == '?' {
			n++
			b.WriteByte('$')
			b.WriteString(strconv.Itoa(n))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// contains returns a case-sensitive substring predicate on col with one placeholder.
// An empty needle matches every non-null value.
func (d *DB) contains(col string) string {
	if d.dialect == dialectPostgres {
		return "strpos(" + col + ", ?) > 0"
	}
	return "instr(" + col + ", ?) > 0"
}

func (d *DB) exec(query string, args ...any) (sql.Result, error) {
	query = d.rebind(query)
	log.Debug("exec", "query", compact(query), "args", args)
	return d.db.Exec(query, args...)
}

func (d *DB) query(query string, args ...any) (*sql.Rows, error) {
	query = d.rebind(query)
	log.Debug("query", "query", compact(query), "args", args)
	return d.db.Query(query, args...)
}

// compact collapses whitespace so multi-line SQL logs on one line.
func compact(query string) string {
	return strings.Join(strings.Fields(query), " ")
}
