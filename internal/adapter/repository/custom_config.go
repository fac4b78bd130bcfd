package repository

import (
	"context"
	"database/sql"
	"fmt"

	entsql "entgo.io/ent/dialect/sql"

	"github.com/eslsoft/luci/internal/entity"
	"github.com/eslsoft/luci/internal/infrastructure/database/migrate"
	"github.com/eslsoft/luci/internal/repository"
)

var customConfigColumns = []string{
	"id", "reference", "server_name", "main_channel",
	"allow_auto_send_messages", "filter_offensive_messages", "allow_learning_from_chat",
}

type customConfigRepository struct{ *Store }

func NewCustomConfigRepository(s *Store) repository.CustomConfigRepository {
	return &customConfigRepository{Store: s}
}

func (r *customConfigRepository) Get(ctx context.Context, reference string) (*entity.CustomConfig, error) {
	return r.get(ctx, reference, false)
}

func (r *customConfigRepository) GetOrCreate(ctx context.Context, reference string) (*entity.CustomConfig, error) {
	defaults := entity.NewCustomConfig(reference)
	ins := r.builder().Insert(migrate.CustomConfigsTable.Name).
		Columns("reference", "allow_auto_send_messages", "filter_offensive_messages", "allow_learning_from_chat").
		Values(reference, defaults.AllowAutoSendMessages, defaults.FilterOffensiveMessages, defaults.AllowLearningFromChat).
		OnConflict(entsql.ConflictColumns("reference"), entsql.DoNothing())
	if _, err := r.exec(ctx, ins); err != nil {
		return nil, fmt.Errorf("insert custom config: %w", err)
	}
	return r.get(ctx, reference, true)
}

func (r *customConfigRepository) Update(ctx context.Context, config *entity.CustomConfig) (*entity.CustomConfig, error) {
	upd := r.builder().Update(migrate.CustomConfigsTable.Name).
		Set("allow_auto_send_messages", config.AllowAutoSendMessages).
		Set("filter_offensive_messages", config.FilterOffensiveMessages).
		Set("allow_learning_from_chat", config.AllowLearningFromChat).
		Where(entsql.EQ("id", config.ID))
	setNullable(upd, "server_name", config.ServerName)
	setNullable(upd, "main_channel", config.MainChannel)
	affected, err := r.exec(ctx, upd)
	if err != nil {
		return nil, fmt.Errorf("update custom config: %w", err)
	}
	if affected == 0 {
		return nil, entity.ErrCustomConfigNotFound
	}
	out := *config
	return &out, nil
}

func (r *customConfigRepository) get(ctx context.Context, reference string, lock bool) (*entity.CustomConfig, error) {
	t := r.builder().Table(migrate.CustomConfigsTable.Name)
	sel := r.builder().Select(t.Columns(customConfigColumns...)...).From(t).Where(entsql.EQ(t.C("reference"), reference))
	if lock {
		sel = r.lock(sel)
	}
	var config *entity.CustomConfig
	err := r.query(ctx, sel, func(scan scanFunc) error {
		var (
			c                       entity.CustomConfig
			serverName, mainChannel sql.NullString
		)
		if err := scan(&c.ID, &c.Reference, &serverName, &mainChannel,
			&c.AllowAutoSendMessages, &c.FilterOffensiveMessages, &c.AllowLearningFromChat); err != nil {
			return fmt.Errorf("scan custom config: %w", err)
		}
		c.ServerName = nullStringPtr(serverName)
		c.MainChannel = nullStringPtr(mainChannel)
		config = &c
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("get custom config: %w", err)
	}
	if config == nil {
		return nil, entity.ErrCustomConfigNotFound
	}
	return config, nil
}

func setNullable[T any](upd *entsql.UpdateBuilder, column string, v *T) {
	if v == nil {
		upd.SetNull(column)
		return
	}
	upd.Set(column, *v)
}

func nullStringPtr(ns sql.NullString) *string {
	if !ns.Valid {
		return nil
	}
	s := ns.String
	return &s
}

func nullFloatPtr(nf sql.NullFloat64) *float64 {
	if !nf.Valid {
		return nil
	}
	f := nf.Float64
	return &f
}
