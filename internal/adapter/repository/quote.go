package repository

import (
	"context"
	"fmt"
	"strings"
	"time"

	entsql "entgo.io/ent/dialect/sql"
	"github.com/samber/lo"

	"github.com/eslsoft/luci/internal/entity"
	"github.com/eslsoft/luci/internal/infrastructure/database/migrate"
	"github.com/eslsoft/luci/internal/repository"
	"github.com/eslsoft/luci/pkg/textcodec"
)

const quoteDateLayout = "2006-01-02"

var quoteColumns = []string{"id", "reference", "quote", "author", "created_at"}

type quoteRepository struct{ *Store }

func NewQuoteRepository(s *Store) repository.QuoteRepository { return &quoteRepository{Store: s} }

func (r *quoteRepository) GetOrCreate(ctx context.Context, quote *entity.Quote) (*entity.Quote, error) {
	encoded := textcodec.Encode(quote.Text)
	ins := r.builder().Insert(migrate.QuotesTable.Name).
		Columns("reference", "quote", "author", "created_at").
		Values(quote.Reference, encoded, quote.Author, r.now()).
		OnConflict(entsql.ConflictColumns("reference", "quote"), entsql.DoNothing())
	if _, err := r.exec(ctx, ins); err != nil {
		return nil, fmt.Errorf("insert quote: %w", err)
	}

	t := r.builder().Table(migrate.QuotesTable.Name)
	sel := r.builder().Select(t.Columns(quoteColumns...)...).From(t).
		Where(entsql.And(entsql.EQ(t.C("reference"), quote.Reference), entsql.EQ(t.C("quote"), encoded)))
	quotes, err := r.scan(ctx, sel)
	if err != nil {
		return nil, err
	}
	if len(quotes) == 0 {
		return nil, fmt.Errorf("quote for %q vanished after insert", quote.Reference)
	}
	return quotes[0], nil
}

func (r *quoteRepository) List(ctx context.Context, query *repository.ListQuoteQuery) ([]*entity.Quote, error) {
	var p listQuotesParams
	if err := bind(query, &p, listQuotesSchema); err != nil {
		return nil, err
	}
	var day time.Time
	if p.Date != "" {
		parsed, err := time.Parse(quoteDateLayout, p.Date)
		if err != nil {
			return nil, fmt.Errorf("%w: date must be YYYY-MM-DD: %q", entity.ErrValidation, p.Date)
		}
		day = parsed
	}

	t := r.builder().Table(migrate.QuotesTable.Name)
	preds := []*entsql.Predicate{entsql.EQ(t.C("reference"), query.Reference)}
	if p.Author != "" {
		preds = append(preds, entsql.EQ(t.C("author"), p.Author))
	}
	sel := r.builder().Select(t.Columns(quoteColumns...)...).From(t).Where(entsql.And(preds...))
	orderBy(sel, listQuotesSchema.Order, p.OrderParams)

	quotes, err := r.scan(ctx, sel)
	if err != nil {
		return nil, err
	}
	needle := strings.ToLower(p.QuoteContainsFold)
	return lo.Filter(quotes, func(q *entity.Quote, _ int) bool {
		if !day.IsZero() && q.CreatedAt.UTC().Format(quoteDateLayout) != day.Format(quoteDateLayout) {
			return false
		}
		return needle == "" || strings.Contains(strings.ToLower(q.Text), needle)
	}), nil
}

// ScanTexts streams every decoded quote in id order. fn must not use the store.
func (r *quoteRepository) ScanTexts(ctx context.Context, fn func(text string) error) error {
	t := r.builder().Table(migrate.QuotesTable.Name)
	sel := r.builder().Select(t.C("id"), t.C("quote")).From(t)
	entsql.OrderByField("id").ToFunc()(sel)
	return r.query(ctx, sel, func(scan scanFunc) error {
		var (
			id  int64
			raw []byte
		)
		if err := scan(&id, &raw); err != nil {
			return fmt.Errorf("scan quote text: %w", err)
		}
		text, err := decodeText(migrate.QuotesTable.Name, id, raw)
		if err != nil {
			return err
		}
		return fn(text)
	})
}

func (r *quoteRepository) scan(ctx context.Context, sel *entsql.Selector) ([]*entity.Quote, error) {
	var quotes []*entity.Quote
	err := r.query(ctx, sel, func(scan scanFunc) error {
		var (
			q   entity.Quote
			raw []byte
		)
		if err := scan(&q.ID, &q.Reference, &raw, &q.Author, &q.CreatedAt); err != nil {
			return fmt.Errorf("scan quote: %w", err)
		}
		text, err := decodeText(migrate.QuotesTable.Name, q.ID, raw)
		if err != nil {
			return err
		}
		q.Text = text
		quotes = append(quotes, &q)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("query quotes: %w", err)
	}
	return quotes, nil
}
