package querybuilder

import (
	"fmt"
	"strconv"
	"strings"
)

// Cond is a WHERE fragment written with ? placeholders; builders rewrite
// them to positional $n arguments when the statement is assembled.
type Cond struct {
	sql  string
	args []any
}

func Eq(column string, value any) Cond {
	return Cond{sql: column + " = ?", args: []any{value}}
}

// LowerEq compares case-insensitively via lower() on both sides.
func LowerEq(column string, value string) Cond {
	return Cond{sql: "lower(" + column + ") = lower(?)", args: []any{value}}
}

func In(column string, values []any) Cond {
	if len(values) == 0 {
		return Cond{sql: "1=0"}
	}
	marks := strings.TrimSuffix(strings.Repeat("?, ", len(values)), ", ")
	return Cond{sql: column + " IN (" + marks + ")", args: values}
}

func IsNull(column string) Cond {
	return Cond{sql: column + " IS NULL"}
}

func Expr(expr string, args ...any) Cond {
	return Cond{sql: expr, args: args}
}

type SelectBuilder struct {
	columns []string
	table   string
	where   []Cond
	orderBy []string
	limit   int
}

func Select(columns ...string) *SelectBuilder {
	return &SelectBuilder{columns: append([]string(nil), columns...)}
}

func (b *SelectBuilder) From(table string) *SelectBuilder {
	b.table = table
	return b
}

func (b *SelectBuilder) Where(conds ...Cond) *SelectBuilder {
	b.where = append(b.where, conds...)
	return b
}

func (b *SelectBuilder) OrderBy(parts ...string) *SelectBuilder {
	b.orderBy = append(b.orderBy, parts...)
	return b
}

func (b *SelectBuilder) Limit(limit int) *SelectBuilder {
	b.limit = limit
	return b
}

func (b *SelectBuilder) ToSQL() (string, []any, error) {
	if len(b.columns) == 0 {
		return "", nil, fmt.Errorf("select columns are required")
	}
	if strings.TrimSpace(b.table) == "" {
		return "", nil, fmt.Errorf("select table is required")
	}

	var buf strings.Builder
	args := make([]any, 0, len(b.where))
	argIndex := 1

	buf.WriteString("SELECT ")
	buf.WriteString(strings.Join(b.columns, ", "))
	buf.WriteString(" FROM ")
	buf.WriteString(b.table)
	writeWhere(&buf, b.where, &args, &argIndex)
	if len(b.orderBy) > 0 {
		buf.WriteString(" ORDER BY ")
		buf.WriteString(strings.Join(b.orderBy, ", "))
	}
	if b.limit > 0 {
		buf.WriteString(" LIMIT ")
		buf.WriteString(strconv.Itoa(b.limit))
	}

	return buf.String(), args, nil
}

type InsertBuilder struct {
	table   string
	columns []string
	values  []any
	suffix  Cond
}

func InsertInto(table string) *InsertBuilder {
	return &InsertBuilder{table: table}
}

func (b *InsertBuilder) Columns(columns ...string) *InsertBuilder {
	b.columns = append([]string(nil), columns...)
	return b
}

func (b *InsertBuilder) Values(values ...any) *InsertBuilder {
	b.values = append([]any(nil), values...)
	return b
}

// Suffix appends raw trailing SQL such as an ON CONFLICT ... RETURNING
// clause; ? placeholders inside it are rewritten like condition arguments.
func (b *InsertBuilder) Suffix(sql string, args ...any) *InsertBuilder {
	b.suffix = Cond{sql: strings.TrimSpace(sql), args: args}
	return b
}

func (b *InsertBuilder) ToSQL() (string, []any, error) {
	if strings.TrimSpace(b.table) == "" {
		return "", nil, fmt.Errorf("insert table is required")
	}
	if len(b.columns) == 0 {
		return "", nil, fmt.Errorf("insert columns are required")
	}
	if len(b.values) != len(b.columns) {
		return "", nil, fmt.Errorf("insert has %d values, expected %d", len(b.values), len(b.columns))
	}

	var buf strings.Builder
	args := make([]any, 0, len(b.values)+len(b.suffix.args))
	argIndex := 1

	buf.WriteString("INSERT INTO ")
	buf.WriteString(b.table)
	buf.WriteString(" (")
	buf.WriteString(strings.Join(b.columns, ", "))
	buf.WriteString(") VALUES (")
	for i, value := range b.values {
		if i > 0 {
			buf.WriteString(", ")
		}
		buf.WriteString(placeholder(argIndex))
		args = append(args, value)
		argIndex++
	}
	buf.WriteString(")")

	if b.suffix.sql != "" {
		buf.WriteString(" ")
		buf.WriteString(rewrite(b.suffix, &args, &argIndex))
	}

	return buf.String(), args, nil
}

type UpdateBuilder struct {
	table   string
	columns []string
	values  []any
	where   []Cond
	suffix  Cond
}

func Update(table string) *UpdateBuilder {
	return &UpdateBuilder{table: table}
}

func (b *UpdateBuilder) Set(column string, value any) *UpdateBuilder {
	b.columns = append(b.columns, column)
	b.values = append(b.values, value)
	return b
}

func (b *UpdateBuilder) Where(conds ...Cond) *UpdateBuilder {
	b.where = append(b.where, conds...)
	return b
}

func (b *UpdateBuilder) Suffix(sql string, args ...any) *UpdateBuilder {
	b.suffix = Cond{sql: strings.TrimSpace(sql), args: args}
	return b
}

func (b *UpdateBuilder) ToSQL() (string, []any, error) {
	if strings.TrimSpace(b.table) == "" {
		return "", nil, fmt.Errorf("update table is required")
	}
	if len(b.columns) == 0 {
		return "", nil, fmt.Errorf("update sets are required")
	}

	var buf strings.Builder
	args := make([]any, 0, len(b.values)+len(b.where))
	argIndex := 1

	buf.WriteString("UPDATE ")
	buf.WriteString(b.table)
	buf.WriteString(" SET ")
	for i, column := range b.columns {
		if i > 0 {
			buf.WriteString(", ")
		}
		buf.WriteString(column)
		buf.WriteString(" = ")
		buf.WriteString(placeholder(argIndex))
		args = append(args, b.values[i])
		argIndex++
	}
	writeWhere(&buf, b.where, &args, &argIndex)
	if b.suffix.sql != "" {
		buf.WriteString(" ")
		buf.WriteString(rewrite(b.suffix, &args, &argIndex))
	}

	return buf.String(), args, nil
}

func writeWhere(buf *strings.Builder, conds []Cond, args *[]any, argIndex *int) {
	if len(conds) == 0 {
		return
	}
	buf.WriteString(" WHERE ")
	for i, cond := range conds {
		if i > 0 {
			buf.WriteString(" AND ")
		}
		buf.WriteString(rewrite(cond, args, argIndex))
	}
}

func rewrite(cond Cond, args *[]any, argIndex *int) string {
	if len(cond.args) == 0 {
		return cond.sql
	}

	var out strings.Builder
	next := 0
	for i := 0; i < len(cond.sql); i++ {
		if cond.sql[i] != '?' || next >= len(cond.args) {
			out.WriteByte(cond.sql[i])
			continue
		}
		out.WriteString(placeholder(*argIndex))
		*args = append(*args, cond.args[next])
		*argIndex = *argIndex + 1
		next++
	}
	return out.String()
}

func placeholder(i int) string {
	return "$" + strconv.Itoa(i)
}
