package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	entsql "entgo.io/ent/dialect/sql"
	"github.com/samber/lo"

	"github.com/eslsoft/luci/internal/entity"
	"github.com/eslsoft/luci/internal/infrastructure/database/migrate"
	"github.com/eslsoft/luci/internal/repository"
)

var wordColumns = []string{"id", "token", "language", "pos_tag", "lemma", "entity", "polarity", "length", "created_at"}

type wordRepository struct{ *Store }

func NewWordRepository(s *Store) repository.WordRepository { return &wordRepository{Store: s} }

func (r *wordRepository) CreateIfAbsent(ctx context.Context, word *entity.Word) (bool, error) {
	word.Derive()
	ins := r.builder().Insert(migrate.WordsTable.Name).
		Columns("token", "language", "pos_tag", "lemma", "entity", "polarity", "length", "created_at").
		Values(word.Token, languageValue(word.Language), word.PosTag, word.Lemma, word.Entity, word.Polarity, word.Length, r.now()).
		OnConflict(entsql.ConflictColumns("token"), entsql.DoNothing())
	affected, err := r.exec(ctx, ins)
	if err != nil {
		if errors.Is(err, entity.ErrConstraintViolation) {
			return false, nil
		}
		return false, fmt.Errorf("insert word %q: %w", word.Token, err)
	}
	return affected > 0, nil
}

func (r *wordRepository) GetByToken(ctx context.Context, token string) (*entity.Word, error) {
	t := r.builder().Table(migrate.WordsTable.Name)
	sel := r.builder().Select(t.Columns(wordColumns...)...).From(t).Where(entsql.EQ(t.C("token"), token))
	words, err := r.scan(ctx, sel)
	if err != nil {
		return nil, err
	}
	if len(words) == 0 {
		return nil, entity.ErrWordNotFound
	}
	if err := r.attachMeanings(ctx, words); err != nil {
		return nil, err
	}
	return words[0], nil
}

func (r *wordRepository) Update(ctx context.Context, word *entity.Word) (*entity.Word, error) {
	word.Derive()
	upd := r.builder().Update(migrate.WordsTable.Name).
		Set("token", word.Token).
		Set("length", word.Length).
		Where(entsql.EQ("id", word.ID))
	if lang := languageValue(word.Language); lang != nil {
		upd.Set("language", *lang)
	} else {
		upd.SetNull("language")
	}
	setNullable(upd, "pos_tag", word.PosTag)
	setNullable(upd, "lemma", word.Lemma)
	setNullable(upd, "entity", word.Entity)
	setNullable(upd, "polarity", word.Polarity)
	affected, err := r.exec(ctx, upd)
	if err != nil {
		return nil, fmt.Errorf("update word: %w", err)
	}
	if affected == 0 {
		return nil, entity.ErrWordNotFound
	}
	out := *word
	return &out, nil
}

func (r *wordRepository) List(ctx context.Context, query *repository.ListWordQuery) ([]*entity.Word, int64, error) {
	var p listWordsParams
	if err := bind(query, &p, listWordsSchema); err != nil {
		return nil, 0, err
	}

	t := r.builder().Table(migrate.WordsTable.Name)
	var preds []*entsql.Predicate
	if p.TokenContainsFold != "" {
		preds = append(preds, entsql.ContainsFold(t.C("token"), p.TokenContainsFold))
	}
	if p.TokenPrefix != "" {
		preds = append(preds, entsql.HasPrefix(t.C("token"), p.TokenPrefix))
	}
	if p.TokenSuffix != "" {
		preds = append(preds, entsql.HasSuffix(t.C("token"), p.TokenSuffix))
	}
	if p.Length != nil {
		preds = append(preds, entsql.EQ(t.C("length"), *p.Length))
	}
	if p.LengthGTE != nil {
		preds = append(preds, entsql.GTE(t.C("length"), *p.LengthGTE))
	}
	if p.LengthLTE != nil {
		preds = append(preds, entsql.LTE(t.C("length"), *p.LengthLTE))
	}
	if p.Language != "" {
		preds = append(preds, entsql.EQ(t.C("language"), entity.NormalizeLanguage(entity.Language(p.Language)).Code()))
	}
	if p.PosTag != "" {
		preds = append(preds, entsql.EQ(t.C("pos_tag"), p.PosTag))
	}

	sel := r.builder().Select(t.Columns(wordColumns...)...).From(t)
	if len(preds) > 0 {
		sel.Where(entsql.And(preds...))
	}
	orderBy(sel, listWordsSchema.Order, p.OrderParams)
	if query.PageSize > 0 {
		sel.Limit(int(query.PageSize))
		if query.PageNo > 1 {
			sel.Offset(int(query.Offset()))
		}
	}

	words, err := r.scan(ctx, sel)
	if err != nil {
		return nil, 0, err
	}
	if err := r.attachMeanings(ctx, words); err != nil {
		return nil, 0, err
	}
	total, err := r.count(ctx, r.builder().Table(migrate.WordsTable.Name), preds)
	if err != nil {
		return nil, 0, fmt.Errorf("count words: %w", err)
	}
	return words, total, nil
}

func (r *wordRepository) AddMeaning(ctx context.Context, meaning *entity.Meaning) (*entity.Meaning, error) {
	ins := r.builder().Insert(migrate.MeaningsTable.Name).
		Columns("meaning", "context", "word_id").
		Values(meaning.Meaning, meaning.Context, meaning.WordID)
	id, err := r.insert(ctx, ins)
	if err != nil {
		return nil, fmt.Errorf("insert meaning: %w", err)
	}
	out := *meaning
	out.ID = id
	return &out, nil
}

func (r *wordRepository) attachMeanings(ctx context.Context, words []*entity.Word) error {
	if len(words) == 0 {
		return nil
	}
	byID := lo.KeyBy(words, func(w *entity.Word) int64 { return w.ID })
	t := r.builder().Table(migrate.MeaningsTable.Name)
	sel := r.builder().Select(t.Columns("id", "meaning", "context", "word_id")...).From(t).
		Where(entsql.In(t.C("word_id"), lo.ToAnySlice(lo.Keys(byID))...))
	entsql.OrderByField("id").ToFunc()(sel)
	err := r.query(ctx, sel, func(scan scanFunc) error {
		var m entity.Meaning
		if err := scan(&m.ID, &m.Meaning, &m.Context, &m.WordID); err != nil {
			return fmt.Errorf("scan meaning: %w", err)
		}
		if w, ok := byID[m.WordID]; ok {
			w.Meanings = append(w.Meanings, m)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("list meanings: %w", err)
	}
	return nil
}

func (r *wordRepository) scan(ctx context.Context, sel *entsql.Selector) ([]*entity.Word, error) {
	var words []*entity.Word
	err := r.query(ctx, sel, func(scan scanFunc) error {
		var (
			w                            entity.Word
			language, posTag, lemma, tag sql.NullString
			polarity                     sql.NullFloat64
		)
		if err := scan(&w.ID, &w.Token, &language, &posTag, &lemma, &tag, &polarity, &w.Length, &w.CreatedAt); err != nil {
			return fmt.Errorf("scan word: %w", err)
		}
		w.Language = entity.Language(language.String)
		w.PosTag = nullStringPtr(posTag)
		w.Lemma = nullStringPtr(lemma)
		w.Entity = nullStringPtr(tag)
		w.Polarity = nullFloatPtr(polarity)
		words = append(words, &w)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("query words: %w", err)
	}
	return words, nil
}

func languageValue(lang entity.Language) *string {
	code := entity.NormalizeLanguage(lang).Code()
	if code == "" {
		return nil
	}
	return &code
}
