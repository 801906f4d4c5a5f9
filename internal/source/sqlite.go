package source

import (
	"context"
	"database/sql"
	"fmt"
	"path/filepath"
	"regexp"
	"strings"

	_ "modernc.org/sqlite"
)

// validIdent restricts warehouse identifiers to the shapes survey warehouses
// actually use (SNAKE_CASE, dotted schemas). User-supplied text never reaches
// the SQL string in any other position; values go through bound parameters.
var validIdent = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_.]*$`)

// SQLiteOptions controls warehouse materialization.
type SQLiteOptions struct {
	Table   string
	MaxRows int
}

// ReadSQLite materializes one warehouse table into a Table. Columns come back
// under their stored names (typically the SNAKE_CASE convention), which the
// schema layer resolves like any other raw header.
func ReadSQLite(ctx context.Context, path string, opt SQLiteOptions) (*Table, error) {
	if opt.Table == "" {
		return nil, fmt.Errorf("warehouse table name is required")
	}
	if !validIdent.MatchString(opt.Table) {
		return nil, fmt.Errorf("invalid table name %q", opt.Table)
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	defer db.Close()

	q := fmt.Sprintf(`SELECT * FROM "%s"`, strings.ReplaceAll(opt.Table, `"`, ``))
	var rows *sql.Rows
	if opt.MaxRows > 0 {
		rows, err = db.QueryContext(ctx, q+" LIMIT ?", opt.MaxRows)
	} else {
		rows, err = db.QueryContext(ctx, q)
	}
	if err != nil {
		return nil, fmt.Errorf("query %s: %w", opt.Table, err)
	}
	defer rows.Close()

	cols, err := rows.Columns()
	if err != nil {
		return nil, fmt.Errorf("columns: %w", err)
	}
	tbl := &Table{Name: filepath.Base(path) + ":" + opt.Table, Columns: cols}

	vals := make([]sql.NullString, len(cols))
	scan := make([]any, len(cols))
	for i := range vals {
		scan[i] = &vals[i]
	}
	for rows.Next() {
		if err := rows.Scan(scan...); err != nil {
			return nil, fmt.Errorf("scan row %d: %w", len(tbl.Rows)+1, err)
		}
		row := make([]string, len(cols))
		for i, v := range vals {
			if v.Valid {
				row[i] = v.String
			}
		}
		tbl.Rows = append(tbl.Rows, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate rows: %w", err)
	}
	return tbl, nil
}
