package writer

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	sq "github.com/Masterminds/squirrel"
	"github.com/go-openapi/inflect"

	"github.com/Rana718/fakegraph/internal/seeder"
)

// SQLWriter renders records as INSERT statements wrapped in a transaction.
// Each row receives a generated id; singular nested creates are inserted
// before their parent and referenced through <field>_id, list nested creates
// after it with <parent>_id.
type SQLWriter struct {
	w       *bufio.Writer
	dialect string
	newID   func() string
}

func NewSQLWriter(w io.Writer, dialect string, newID func() string) *SQLWriter {
	return &SQLWriter{w: bufio.NewWriter(w), dialect: dialect, newID: newID}
}

func (s *SQLWriter) Begin() error {
	query := "BEGIN;\n"
	if s.dialect == DialectMySQL {
		query = "START TRANSACTION;\n"
	}
	_, err := s.w.WriteString(query)
	return err
}

func (s *SQLWriter) WriteRecord(typeName string, index int, rec seeder.Record) error {
	if _, err := fmt.Fprintf(s.w, "\n-- %s\n", Label(typeName, index)); err != nil {
		return err
	}
	_, stmts, err := s.insertRows(rec, "", "")
	if err != nil {
		return fmt.Errorf("failed to build insert for %s: %w", Label(typeName, index), err)
	}
	for _, stmt := range stmts {
		if _, err := s.w.WriteString(stmt + ";\n"); err != nil {
			return err
		}
	}
	return nil
}

func (s *SQLWriter) End() error {
	if _, err := s.w.WriteString("\nCOMMIT;\n"); err != nil {
		return err
	}
	return s.w.Flush()
}

// insertRows returns the id assigned to rec and the statements creating it
// and its nested records, in dependency order. parentColumn/parentID link a
// row created through a list relation back to its parent.
func (s *SQLWriter) insertRows(rec seeder.Record, parentColumn, parentID string) (string, []string, error) {
	id := s.newID()
	columns := []string{s.quoteIdent("id")}
	values := []any{sq.Expr(s.formatValue(id))}
	if parentColumn != "" {
		columns = append(columns, s.quoteIdent(parentColumn))
		values = append(values, sq.Expr(s.formatValue(parentID)))
	}

	var before, after []string
	var lists [][]seeder.Record

	for _, f := range rec.Fields {
		nested, ok := f.Value.(seeder.NestedCreate)
		if !ok {
			columns = append(columns, s.quoteIdent(ColumnName(f.Name)))
			values = append(values, sq.Expr(s.formatValue(f.Value)))
			continue
		}
		if nested.List {
			lists = append(lists, nested.Records)
			continue
		}
		for _, child := range nested.Records {
			childID, stmts, err := s.insertRows(child, "", "")
			if err != nil {
				return "", nil, err
			}
			before = append(before, stmts...)
			columns = append(columns, s.quoteIdent(ColumnName(f.Name)+"_id"))
			values = append(values, sq.Expr(s.formatValue(childID)))
		}
	}

	for _, records := range lists {
		for _, child := range records {
			_, stmts, err := s.insertRows(child, ColumnName(rec.Type)+"_id", id)
			if err != nil {
				return "", nil, err
			}
			after = append(after, stmts...)
		}
	}

	query, _, err := sq.Insert(s.quoteIdent(TableName(rec.Type))).
		Columns(columns...).
		Values(values...).
		ToSql()
	if err != nil {
		return "", nil, err
	}

	stmts := append(before, query)
	stmts = append(stmts, after...)
	return id, stmts, nil
}

// TableName maps a type to its table: Post -> posts, BlogPost -> blog_posts.
func TableName(typeName string) string {
	return inflect.Underscore(inflect.Pluralize(typeName))
}

// ColumnName maps a field to its column: createdAt -> created_at.
func ColumnName(fieldName string) string {
	return inflect.Underscore(fieldName)
}

func (s *SQLWriter) quoteIdent(name string) string {
	if s.dialect == DialectMySQL {
		return "`" + strings.ReplaceAll(name, "`", "``") + "`"
	}
	return `"` + strings.ReplaceAll(name, `"`, `""`) + `"`
}

// formatValue formats a value as an SQL literal
func (s *SQLWriter) formatValue(val any) string {
	switch v := val.(type) {
	case nil:
		return "NULL"
	case string:
		return s.quoteString(v)
	case seeder.EnumValue:
		return s.quoteString(string(v))
	case int:
		return strconv.Itoa(v)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case bool:
		if s.dialect == DialectPostgres {
			if v {
				return "TRUE"
			}
			return "FALSE"
		}
		if v {
			return "1"
		}
		return "0"
	case seeder.ScalarList:
		data, err := json.Marshal(v)
		if err != nil {
			return s.quoteString(fmt.Sprintf("%v", v))
		}
		return s.quoteString(string(data))
	default:
		return s.quoteString(fmt.Sprintf("%v", v))
	}
}

func (s *SQLWriter) quoteString(v string) string {
	escaped := strings.ReplaceAll(v, "'", "''")
	if s.dialect == DialectMySQL {
		escaped = strings.ReplaceAll(escaped, "\\", "\\\\")
	}
	return "'" + escaped + "'"
}
