package refstore

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/antzucaro/matchr"

	// registers the "sqlite" database/sql driver
	_ "modernc.org/sqlite"

	"github.com/KirkDiggler/rpg-compendium/internal/errors"
)

// SQLiteConfig contains configuration for the SQLite reference store.
type SQLiteConfig struct {
	Path string
}

// Validate validates the SQLiteConfig.
func (cfg *SQLiteConfig) Validate() error {
	if cfg == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	if strings.TrimSpace(cfg.Path) == "" {
		return errors.InvalidArgument("database path is required")
	}
	return nil
}

type sqliteStore struct {
	db *sql.DB

	mu      sync.Mutex
	columns map[Table]map[string]bool
}

// NewSQLite opens the reference database read-only.
func NewSQLite(ctx context.Context, cfg *SQLiteConfig) (Store, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	path := filepath.Clean(cfg.Path)
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return nil, errors.NotFoundf("reference database %s not found", path).WithMeta("path", path)
		}
		return nil, errors.Wrapf(err, "failed to stat reference database %s", path)
	}

	dsn := "file:" + path + "?mode=ro&_pragma=query_only(1)"
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open reference database %s", path)
	}
	db.SetMaxOpenConns(1)

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, errors.WrapWithCode(err, errors.CodeUnavailable, "failed to ping reference database")
	}

	slog.DebugContext(ctx, "opened reference database", "path", path)

	return &sqliteStore{
		db:      db,
		columns: make(map[Table]map[string]bool),
	}, nil
}

func (s *sqliteStore) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

func (s *sqliteStore) Get(ctx context.Context, input GetInput) (*GetOutput, error) {
	if strings.TrimSpace(input.ID) == "" {
		return nil, errors.InvalidArgument("record ID cannot be empty")
	}
	if _, err := ParseTable(string(input.Table)); err != nil {
		return nil, err
	}

	selectList, err := s.selectList(ctx, input.Table)
	if err != nil {
		return nil, err
	}

	query := fmt.Sprintf("SELECT %s FROM %s WHERE _id = ?", selectList, input.Table)
	rows, err := s.db.QueryContext(ctx, query, input.ID)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to query %s", input.Table)
	}

	records, err := scanRecords(input.Table, rows)
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, errors.NotFoundf("%s %s not found", input.Table, input.ID)
	}

	return &GetOutput{Record: records[0]}, nil
}

func (s *sqliteStore) List(ctx context.Context, input ListInput) (*ListOutput, error) {
	if _, err := ParseTable(string(input.Table)); err != nil {
		return nil, err
	}
	if input.Source != SourceAll && input.Table != TableNPC {
		return nil, errors.InvalidArgument("source filter only applies to creatures")
	}
	if input.Limit < 0 {
		return nil, errors.InvalidArgument("limit cannot be negative")
	}

	limit := input.Limit
	if limit == 0 {
		limit = DefaultListLimit
	}
	limit = min(limit, MaxListLimit)

	selectList, err := s.selectList(ctx, input.Table)
	if err != nil {
		return nil, err
	}

	var (
		where []string
		args  []any
	)

	if len(input.Levels) > 0 {
		where = append(where, "COALESCE(json_extract(system, '$.level.value'), json_extract(system, '$.details.level.value')) IN ("+placeholders(len(input.Levels))+")")
		for _, level := range input.Levels {
			args = append(args, level)
		}
	}

	if len(input.Traits) > 0 {
		where = append(where, orClause(len(input.Traits),
			"EXISTS (SELECT 1 FROM json_each(system, '$.traits.value') WHERE value = ?)"))
		for _, trait := range input.Traits {
			args = append(args, strings.ToLower(trait))
		}
	}

	if len(input.Traditions) > 0 {
		where = append(where, orClause(len(input.Traditions),
			"EXISTS (SELECT 1 FROM json_each(system, '$.traits.traditions') WHERE value = ?) OR "+
				"EXISTS (SELECT 1 FROM json_each(system, '$.traditions.value') WHERE value = ?)"))
		for _, tradition := range input.Traditions {
			args = append(args, strings.ToLower(tradition), strings.ToLower(tradition))
		}
	}

	if patterns := input.Source.patterns(); len(patterns) > 0 {
		where = append(where, orClause(len(patterns),
			"json_extract(system, '$.details.publication.title') LIKE ?"))
		for _, p := range patterns {
			args = append(args, p)
		}
	}

	query := fmt.Sprintf("SELECT %s FROM %s", selectList, input.Table)
	if len(where) > 0 {
		query += " WHERE " + strings.Join(where, " AND ")
	}
	query += " ORDER BY name LIMIT ?"
	args = append(args, limit)

	slog.DebugContext(ctx, "listing reference records",
		"table", input.Table,
		"filters", len(where),
		"limit", limit)

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to list %s", input.Table)
	}

	records, err := scanRecords(input.Table, rows)
	if err != nil {
		return nil, err
	}

	return &ListOutput{Records: records}, nil
}

func (s *sqliteStore) Search(ctx context.Context, input SearchInput) (*SearchOutput, error) {
	query := strings.TrimSpace(input.Query)
	if query == "" {
		return nil, errors.InvalidArgument("search query cannot be empty")
	}
	if input.Limit < 0 {
		return nil, errors.InvalidArgument("limit cannot be negative")
	}

	searchTables := input.Tables
	if len(searchTables) == 0 {
		searchTables = SearchTables
	}

	browse := query == "*"
	var records []*Record
	for _, table := range searchTables {
		if _, err := ParseTable(string(table)); err != nil {
			return nil, err
		}

		found, err := s.searchTable(ctx, table, query, browse)
		if err != nil {
			if errors.IsNotFound(err) {
				slog.WarnContext(ctx, "skipping missing reference table", "table", table)
				continue
			}
			return nil, err
		}
		records = append(records, found...)
	}

	if browse {
		sort.SliceStable(records, func(i, j int) bool {
			return records[i].Name < records[j].Name
		})
	} else {
		rankBySimilarity(records, query)
	}

	if input.Limit > 0 && len(records) > input.Limit {
		records = records[:input.Limit]
	}

	return &SearchOutput{Records: records}, nil
}

func (s *sqliteStore) searchTable(ctx context.Context, table Table, query string, browse bool) ([]*Record, error) {
	cols, err := s.tableColumns(ctx, table)
	if err != nil {
		return nil, err
	}
	selectList, err := s.selectList(ctx, table)
	if err != nil {
		return nil, err
	}

	var (
		sqlQuery string
		args     []any
	)
	if browse {
		sqlQuery = fmt.Sprintf("SELECT %s FROM %s ORDER BY name LIMIT ?", selectList, table)
		args = []any{browsePerTableLimit}
	} else {
		term := "%" + query + "%"
		match := "name LIKE ?"
		args = []any{term}
		if cols["description_fr"] {
			match += " OR description_fr LIKE ?"
			args = append(args, term)
		}
		sqlQuery = fmt.Sprintf("SELECT %s FROM %s WHERE (%s) ORDER BY name LIMIT ?", selectList, table, match)
		args = append(args, searchPerTableLimit)
	}

	rows, err := s.db.QueryContext(ctx, sqlQuery, args...)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to search %s", table)
	}
	return scanRecords(table, rows)
}

// rankBySimilarity orders records by Jaro-Winkler similarity of their name
// to query, best first, then by name.
func rankBySimilarity(records []*Record, query string) {
	q := strings.ToLower(query)
	scores := make(map[*Record]float64, len(records))
	for _, r := range records {
		scores[r] = matchr.JaroWinkler(q, strings.ToLower(r.Name), false)
	}
	sort.SliceStable(records, func(i, j int) bool {
		si, sj := scores[records[i]], scores[records[j]]
		if si != sj {
			return si > sj
		}
		return records[i].Name < records[j].Name
	})
}

// tableColumns returns the column set of table, cached after the first
// lookup. Tables differ in which translated columns they carry.
func (s *sqliteStore) tableColumns(ctx context.Context, table Table) (map[string]bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if cols, ok := s.columns[table]; ok {
		return cols, nil
	}

	rows, err := s.db.QueryContext(ctx, "SELECT name FROM pragma_table_info(?)", string(table))
	if err != nil {
		return nil, errors.Wrapf(err, "failed to inspect table %s", table)
	}
	defer func() { _ = rows.Close() }()

	cols := make(map[string]bool)
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, errors.Wrapf(err, "failed to inspect table %s", table)
		}
		cols[name] = true
	}
	if err := rows.Err(); err != nil {
		return nil, errors.Wrapf(err, "failed to inspect table %s", table)
	}

	if len(cols) == 0 {
		return nil, errors.NotFoundf("table %s not present in reference database", table)
	}
	for _, required := range []string{"_id", "name", "system"} {
		if !cols[required] {
			return nil, errors.Internal(fmt.Sprintf("table %s is missing column %s", table, required))
		}
	}

	s.columns[table] = cols
	return cols, nil
}

func (s *sqliteStore) selectList(ctx context.Context, table Table) (string, error) {
	cols, err := s.tableColumns(ctx, table)
	if err != nil {
		return "", err
	}

	list := []string{"_id", "name", "system"}
	for _, optional := range []string{"description", "description_fr", "publicnotes_fr"} {
		if cols[optional] {
			list = append(list, optional)
		} else {
			list = append(list, "NULL AS "+optional)
		}
	}
	return strings.Join(list, ", "), nil
}

func scanRecords(table Table, rows *sql.Rows) ([]*Record, error) {
	defer func() { _ = rows.Close() }()

	var records []*Record
	for rows.Next() {
		var (
			id                                                      string
			name, system, description, descriptionFR, publicNotesFR sql.NullString
		)
		if err := rows.Scan(&id, &name, &system, &description, &descriptionFR, &publicNotesFR); err != nil {
			return nil, errors.Wrapf(err, "failed to scan %s record", table)
		}

		records = append(records, NewRecord(table, id, name.String, []byte(system.String),
			description.String, descriptionFR.String, publicNotesFR.String))
	}
	if err := rows.Err(); err != nil {
		return nil, errors.Wrapf(err, "failed to read %s records", table)
	}

	return records, nil
}

func placeholders(n int) string {
	return strings.TrimSuffix(strings.Repeat("?, ", n), ", ")
}

func orClause(n int, clause string) string {
	parts := make([]string, n)
	for i := range parts {
		parts[i] = "(" + clause + ")"
	}
	return "(" + strings.Join(parts, " OR ") + ")"
}
