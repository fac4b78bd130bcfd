// Package backup streams the luci tables to and from newline-delimited JSON.
package backup

import (
	"bufio"
	"context"
	"crypto/sha256"
	"database/sql"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
	"github.com/samber/lo"
	"github.com/sirupsen/logrus"

	"github.com/eslsoft/luci/internal/infrastructure/database/migrate"
)

const (
	defaultBatchSize = 500
	formatVersion    = 2

	kindHeader = "header"
	kindRow    = "row"
)

var (
	ErrNoTables      = errors.New("backup: no tables selected")
	ErrMissingHeader = errors.New("backup: missing header record")
)

// ProgressReporter receives per-table export progress.
type ProgressReporter interface {
	StartTable(table string, total int)
	Increment(table string, delta int)
	FinishTable(table string)
}

type noopProgress struct{}

func (noopProgress) StartTable(string, int) {}
func (noopProgress) Increment(string, int)  {}
func (noopProgress) FinishTable(string)     {}

// Service exports and imports every table of the luci schema. Tables are
// always processed in foreign key order so an import never references a row
// that is not yet written.
type Service struct {
	drv       dialect.Driver
	batchSize int
	tables    []*schema.Table
	index     map[string]*schema.Table
	digest    string
	logger    *logrus.Logger
}

type Option func(*Service)

func WithBatchSize(size int) Option {
	return func(s *Service) {
		if size > 0 {
			s.batchSize = size
		}
	}
}

func WithLogger(logger *logrus.Logger) Option {
	return func(s *Service) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// NewService binds a backup service to an open ent driver.
func NewService(drv dialect.Driver, opts ...Option) (*Service, error) {
	if drv == nil {
		return nil, errors.New("backup: driver is required")
	}
	switch drv.Dialect() {
	case dialect.SQLite, dialect.Postgres:
	default:
		return nil, fmt.Errorf("backup: unsupported dialect %q", drv.Dialect())
	}
	tables, err := schema.CopyTables(migrate.Tables)
	if err != nil {
		return nil, fmt.Errorf("copy schema tables: %w", err)
	}
	s := &Service{
		drv:       drv,
		batchSize: defaultBatchSize,
		tables:    tables,
		index:     lo.KeyBy(tables, func(t *schema.Table) string { return t.Name }),
		digest:    schemaDigest(tables),
		logger:    logrus.StandardLogger(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// TableNames lists the exportable tables in dependency order.
func (s *Service) TableNames() []string {
	return lo.Map(s.tables, func(t *schema.Table, _ int) string { return t.Name })
}

type ExportOption func(*exportConfig)

type exportConfig struct {
	tables   []string
	reporter ProgressReporter
}

// WithTables restricts export to the named tables.
func WithTables(tables []string) ExportOption {
	return func(cfg *exportConfig) { cfg.tables = append(cfg.tables, tables...) }
}

func WithProgressReporter(reporter ProgressReporter) ExportOption {
	return func(cfg *exportConfig) { cfg.reporter = reporter }
}

type ImportOption func(*importConfig)

type importConfig struct {
	tables []string
}

// WithImportTables restricts import to the named tables.
func WithImportTables(tables []string) ImportOption {
	return func(cfg *importConfig) { cfg.tables = append(cfg.tables, tables...) }
}

type header struct {
	Kind         string         `json:"kind"`
	Version      int            `json:"version"`
	ExportedAt   time.Time      `json:"exported_at"`
	SchemaDigest string         `json:"schema_digest"`
	Tables       []string       `json:"tables"`
	Rows         map[string]int `json:"rows"`
}

type row struct {
	Kind  string          `json:"kind"`
	Table string          `json:"table,omitempty"`
	Data  json.RawMessage `json:"data,omitempty"`
}

// Export writes a header followed by one record per row.
func (s *Service) Export(ctx context.Context, w io.Writer, opts ...ExportOption) error {
	var cfg exportConfig
	for _, opt := range opts {
		opt(&cfg)
	}
	tables, err := s.selectTables(cfg.tables)
	if err != nil {
		return err
	}
	reporter := cfg.reporter
	if reporter == nil {
		reporter = noopProgress{}
	}

	counts := make(map[string]int, len(tables))
	for _, t := range tables {
		n, err := s.count(ctx, t)
		if err != nil {
			return fmt.Errorf("count %s: %w", t.Name, err)
		}
		counts[t.Name] = n
	}

	bw := bufio.NewWriter(w)
	enc := json.NewEncoder(bw)
	if err := enc.Encode(header{
		Kind:         kindHeader,
		Version:      formatVersion,
		ExportedAt:   time.Now().UTC(),
		SchemaDigest: s.digest,
		Tables:       lo.Map(tables, func(t *schema.Table, _ int) string { return t.Name }),
		Rows:         counts,
	}); err != nil {
		return fmt.Errorf("write header: %w", err)
	}

	for _, t := range tables {
		reporter.StartTable(t.Name, counts[t.Name])
		if err := s.exportTable(ctx, t, enc, reporter); err != nil {
			return err
		}
		reporter.FinishTable(t.Name)
	}
	return bw.Flush()
}

func (s *Service) exportTable(ctx context.Context, t *schema.Table, enc *json.Encoder, reporter ProgressReporter) error {
	columns := lo.Map(t.Columns, func(c *schema.Column, _ int) string { return c.Name })
	order := lo.Map(t.PrimaryKey, func(c *schema.Column, _ int) string { return c.Name })
	for offset := 0; ; offset += s.batchSize {
		st := entsql.Table(t.Name)
		sel := entsql.Dialect(s.drv.Dialect()).Select(st.Columns(columns...)...).From(st).
			OrderBy(order...).Limit(s.batchSize).Offset(offset)
		query, args := sel.Query()

		var rows entsql.Rows
		if err := s.drv.Query(ctx, query, args, &rows); err != nil {
			return fmt.Errorf("query %s: %w", t.Name, err)
		}
		n, err := s.encodeRows(t, &rows, enc, reporter)
		rows.Close()
		if err != nil {
			return err
		}
		if n < s.batchSize {
			return nil
		}
	}
}

func (s *Service) encodeRows(t *schema.Table, rows *entsql.Rows, enc *json.Encoder, reporter ProgressReporter) (int, error) {
	n := 0
	for rows.Next() {
		values := make([]any, len(t.Columns))
		dest := lo.Map(values, func(_ any, i int) any { return &values[i] })
		if err := rows.Scan(dest...); err != nil {
			return n, fmt.Errorf("scan %s: %w", t.Name, err)
		}
		data := make(map[string]any, len(t.Columns))
		for i, col := range t.Columns {
			v, err := exportValue(col, values[i])
			if err != nil {
				return n, fmt.Errorf("convert %s.%s: %w", t.Name, col.Name, err)
			}
			data[col.Name] = v
		}
		raw, err := json.Marshal(data)
		if err != nil {
			return n, err
		}
		if err := enc.Encode(row{Kind: kindRow, Table: t.Name, Data: raw}); err != nil {
			return n, fmt.Errorf("write %s row: %w", t.Name, err)
		}
		reporter.Increment(t.Name, 1)
		n++
	}
	if err := rows.Err(); err != nil {
		return n, fmt.Errorf("iterate %s: %w", t.Name, err)
	}
	return n, nil
}

// Import upserts every row of the selected tables in one transaction.
// Existing rows with the same primary key are overwritten.
func (s *Service) Import(ctx context.Context, r io.Reader, opts ...ImportOption) error {
	var cfg importConfig
	for _, opt := range opts {
		opt(&cfg)
	}
	tables, err := s.selectTables(cfg.tables)
	if err != nil {
		return err
	}
	wanted := lo.KeyBy(tables, func(t *schema.Table) string { return t.Name })

	tx, err := s.drv.Tx(ctx)
	if err != nil {
		return fmt.Errorf("begin import: %w", err)
	}
	committed := false
	defer func() {
		if !committed {
			_ = tx.Rollback()
		}
	}()

	sequences := make(map[string]int64)
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	seenHeader := false
	for line := 1; scanner.Scan(); line++ {
		raw := scanner.Bytes()
		if len(strings.TrimSpace(string(raw))) == 0 {
			continue
		}
		var rec row
		if err := json.Unmarshal(raw, &rec); err != nil {
			return fmt.Errorf("backup: line %d: %w", line, err)
		}
		switch rec.Kind {
		case kindHeader:
			var h header
			if err := json.Unmarshal(raw, &h); err != nil {
				return fmt.Errorf("backup: header: %w", err)
			}
			if h.Version != formatVersion {
				return fmt.Errorf("backup: unsupported format version %d", h.Version)
			}
			if h.SchemaDigest != s.digest {
				s.logger.WithFields(logrus.Fields{"backup": h.SchemaDigest, "current": s.digest}).
					Warn("backup schema differs from current schema")
			}
			seenHeader = true
		case kindRow:
			if !seenHeader {
				return ErrMissingHeader
			}
			t, ok := wanted[rec.Table]
			if !ok {
				continue
			}
			if err := s.importRow(ctx, tx, t, rec.Data, sequences); err != nil {
				return fmt.Errorf("backup: line %d: %w", line, err)
			}
		default:
			return fmt.Errorf("backup: line %d: unknown record kind %q", line, rec.Kind)
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("read backup: %w", err)
	}
	if !seenHeader {
		return ErrMissingHeader
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit import: %w", err)
	}
	committed = true
	return s.syncSequences(ctx, sequences)
}

func (s *Service) importRow(ctx context.Context, tx dialect.Tx, t *schema.Table, data json.RawMessage, sequences map[string]int64) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("decode %s row: %w", t.Name, err)
	}

	var (
		columns []string
		values  []any
	)
	for _, col := range t.Columns {
		v, ok := raw[col.Name]
		if !ok {
			continue
		}
		converted, err := importValue(col, v)
		if err != nil {
			return fmt.Errorf("convert %s.%s: %w", t.Name, col.Name, err)
		}
		if converted == nil && !col.Nullable {
			if col.Default == nil {
				return fmt.Errorf("missing value for %s.%s", t.Name, col.Name)
			}
			converted = col.Default
		}
		columns = append(columns, col.Name)
		values = append(values, converted)
		if col.Increment {
			if id, ok := converted.(int64); ok && id > sequences[t.Name] {
				sequences[t.Name] = id
			}
		}
	}
	if len(columns) == 0 {
		return nil
	}

	pk := lo.Map(t.PrimaryKey, func(c *schema.Column, _ int) string { return c.Name })
	resolve := entsql.ResolveWithNewValues()
	if len(lo.Without(columns, pk...)) == 0 {
		resolve = entsql.DoNothing()
	}
	query, args := entsql.Dialect(s.drv.Dialect()).Insert(t.Name).
		Columns(columns...).
		Values(values...).
		OnConflict(entsql.ConflictColumns(pk...), resolve).
		Query()
	var res sql.Result
	if err := tx.Exec(ctx, query, args, &res); err != nil {
		return fmt.Errorf("insert into %s: %w", t.Name, err)
	}
	return nil
}

// syncSequences moves postgres identity sequences past the imported ids.
func (s *Service) syncSequences(ctx context.Context, sequences map[string]int64) error {
	if s.drv.Dialect() != dialect.Postgres {
		return nil
	}
	for table, maxID := range sequences {
		query := fmt.Sprintf(
			"SELECT setval(pg_get_serial_sequence('%[1]s', 'id'), GREATEST(%[2]d, (SELECT COALESCE(MAX(id), 0) FROM %[1]q)))",
			table, maxID,
		)
		var rows entsql.Rows
		if err := s.drv.Query(ctx, query, []any{}, &rows); err != nil {
			return fmt.Errorf("sync sequence for %s: %w", table, err)
		}
		rows.Close()
	}
	return nil
}

func (s *Service) count(ctx context.Context, t *schema.Table) (int, error) {
	query, args := entsql.Dialect(s.drv.Dialect()).
		Select(entsql.Count("*")).From(entsql.Table(t.Name)).
		Query()
	var rows entsql.Rows
	if err := s.drv.Query(ctx, query, args, &rows); err != nil {
		return 0, err
	}
	defer rows.Close()
	n, err := entsql.ScanInt(&rows)
	if err != nil {
		return 0, err
	}
	return n, nil
}

func (s *Service) selectTables(requested []string) ([]*schema.Table, error) {
	if len(requested) == 0 {
		return s.tables, nil
	}
	set := make(map[string]struct{}, len(requested))
	for _, name := range requested {
		name = strings.ToLower(strings.TrimSpace(name))
		if name == "" {
			continue
		}
		if _, ok := s.index[name]; !ok {
			return nil, fmt.Errorf("backup: unknown table %q", name)
		}
		set[name] = struct{}{}
	}
	if len(set) == 0 {
		return nil, ErrNoTables
	}
	return lo.Filter(s.tables, func(t *schema.Table, _ int) bool {
		_, ok := set[t.Name]
		return ok
	}), nil
}

// exportValue maps a scanned driver value to its JSON form. Bytes are base64,
// times are RFC 3339 in UTC.
func exportValue(col *schema.Column, v any) (any, error) {
	if v == nil {
		return nil, nil
	}
	switch col.Type {
	case field.TypeBytes:
		switch b := v.(type) {
		case []byte:
			return base64.StdEncoding.EncodeToString(b), nil
		case string:
			return base64.StdEncoding.EncodeToString([]byte(b)), nil
		}
	case field.TypeTime:
		switch tv := v.(type) {
		case time.Time:
			return tv.UTC().Format(time.RFC3339Nano), nil
		case string:
			parsed, err := parseTime(tv)
			if err != nil {
				return nil, err
			}
			return parsed.Format(time.RFC3339Nano), nil
		case []byte:
			parsed, err := parseTime(string(tv))
			if err != nil {
				return nil, err
			}
			return parsed.Format(time.RFC3339Nano), nil
		}
	case field.TypeBool:
		switch b := v.(type) {
		case bool:
			return b, nil
		case int64:
			return b != 0, nil
		}
	case field.TypeInt, field.TypeInt64:
		if i, ok := v.(int64); ok {
			return i, nil
		}
	case field.TypeFloat64:
		switch f := v.(type) {
		case float64:
			return f, nil
		case int64:
			return float64(f), nil
		}
	case field.TypeString:
		switch s := v.(type) {
		case string:
			return s, nil
		case []byte:
			return string(s), nil
		}
	}
	return nil, fmt.Errorf("unexpected %T for %s column", v, col.Type)
}

// importValue is the inverse of exportValue.
func importValue(col *schema.Column, raw json.RawMessage) (any, error) {
	if string(raw) == "null" {
		return nil, nil
	}
	switch col.Type {
	case field.TypeBytes:
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return nil, err
		}
		return base64.StdEncoding.DecodeString(s)
	case field.TypeTime:
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return nil, err
		}
		return parseTime(s)
	case field.TypeBool:
		var b bool
		err := json.Unmarshal(raw, &b)
		return b, err
	case field.TypeInt, field.TypeInt64:
		return strconv.ParseInt(string(raw), 10, 64)
	case field.TypeFloat64:
		return strconv.ParseFloat(string(raw), 64)
	default:
		var s string
		err := json.Unmarshal(raw, &s)
		return s, err
	}
}

var timeLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02 15:04:05.999999999-07:00",
	"2006-01-02 15:04:05.999999999",
	"2006-01-02T15:04:05.999999999",
}

func parseTime(s string) (time.Time, error) {
	for _, layout := range timeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized time %q", s)
}

// schemaDigest fingerprints table and column definitions.
func schemaDigest(tables []*schema.Table) string {
	h := sha256.New()
	for _, t := range tables {
		fmt.Fprintf(h, "%s(", t.Name)
		for _, c := range t.Columns {
			fmt.Fprintf(h, "%s:%s:%t:%t,", c.Name, c.Type, c.Nullable, c.Unique)
		}
		for _, idx := range t.Indexes {
			fmt.Fprintf(h, "%s:%t,", idx.Name, idx.Unique)
		}
		h.Write([]byte(")"))
	}
	return fmt.Sprintf("%x", h.Sum(nil))
}
