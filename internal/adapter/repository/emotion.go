package repository

import (
	"context"
	"fmt"

	entsql "entgo.io/ent/dialect/sql"

	"github.com/eslsoft/luci/internal/entity"
	"github.com/eslsoft/luci/internal/infrastructure/database/migrate"
	"github.com/eslsoft/luci/internal/repository"
)

var emotionColumns = []string{"id", "reference", "pleasantness", "attention", "sensitivity", "aptitude", "created_at", "updated_at"}

type emotionRepository struct{ *Store }

func NewEmotionRepository(s *Store) repository.EmotionRepository { return &emotionRepository{Store: s} }

func (r *emotionRepository) GetOrCreate(ctx context.Context, reference string) (*entity.Emotion, error) {
	now := r.now()
	ins := r.builder().Insert(migrate.EmotionsTable.Name).
		Columns("reference", "pleasantness", "attention", "sensitivity", "aptitude", "created_at", "updated_at").
		Values(reference, 0.0, 0.0, 0.0, 0.0, now, now).
		OnConflict(entsql.ConflictColumns("reference"), entsql.DoNothing())
	if _, err := r.exec(ctx, ins); err != nil {
		return nil, fmt.Errorf("insert emotion: %w", err)
	}

	t := r.builder().Table(migrate.EmotionsTable.Name)
	sel := r.lock(r.builder().Select(t.Columns(emotionColumns...)...).From(t).Where(entsql.EQ(t.C("reference"), reference)))
	emotions, err := r.scan(ctx, sel)
	if err != nil {
		return nil, err
	}
	if len(emotions) == 0 {
		return nil, entity.ErrEmotionNotFound
	}
	return emotions[0], nil
}

func (r *emotionRepository) GetByID(ctx context.Context, id int64) (*entity.Emotion, error) {
	t := r.builder().Table(migrate.EmotionsTable.Name)
	sel := r.lock(r.builder().Select(t.Columns(emotionColumns...)...).From(t).Where(entsql.EQ(t.C("id"), id)))
	emotions, err := r.scan(ctx, sel)
	if err != nil {
		return nil, err
	}
	if len(emotions) == 0 {
		return nil, entity.ErrEmotionNotFound
	}
	return emotions[0], nil
}

func (r *emotionRepository) ListByReference(ctx context.Context, reference string) ([]*entity.Emotion, error) {
	t := r.builder().Table(migrate.EmotionsTable.Name)
	sel := r.builder().Select(t.Columns(emotionColumns...)...).From(t).
		Where(entsql.EQ(t.C("reference"), reference))
	entsql.OrderByField("id").ToFunc()(sel)
	return r.scan(ctx, sel)
}

func (r *emotionRepository) UpdateVector(ctx context.Context, emotion *entity.Emotion) (*entity.Emotion, error) {
	// Rows restored from older backups may hold unbounded values.
	vec := emotion.EmotionVector.Clamp()
	now := r.now()
	upd := r.builder().Update(migrate.EmotionsTable.Name).
		Set("pleasantness", vec.Pleasantness).
		Set("attention", vec.Attention).
		Set("sensitivity", vec.Sensitivity).
		Set("aptitude", vec.Aptitude).
		Set("updated_at", now).
		Where(entsql.EQ("id", emotion.ID))
	affected, err := r.exec(ctx, upd)
	if err != nil {
		return nil, fmt.Errorf("update emotion: %w", err)
	}
	if affected == 0 {
		return nil, entity.ErrEmotionNotFound
	}
	out := *emotion
	out.EmotionVector = vec
	out.UpdatedAt = now
	return &out, nil
}

func (r *emotionRepository) scan(ctx context.Context, sel *entsql.Selector) ([]*entity.Emotion, error) {
	var emotions []*entity.Emotion
	err := r.query(ctx, sel, func(scan scanFunc) error {
		e := new(entity.Emotion)
		if err := scan(&e.ID, &e.Reference, &e.Pleasantness, &e.Attention, &e.Sensitivity, &e.Aptitude, &e.CreatedAt, &e.UpdatedAt); err != nil {
			return fmt.Errorf("scan emotion: %w", err)
		}
		emotions = append(emotions, e)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("query emotions: %w", err)
	}
	return emotions, nil
}
