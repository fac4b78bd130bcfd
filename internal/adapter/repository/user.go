package repository

import (
	"context"
	"database/sql"
	"fmt"

	entsql "entgo.io/ent/dialect/sql"

	"github.com/eslsoft/luci/internal/entity"
	"github.com/eslsoft/luci/internal/infrastructure/database/migrate"
	"github.com/eslsoft/luci/internal/repository"
	"github.com/eslsoft/luci/pkg/reference"
)

var userColumns = []string{"id", "reference", "name", "friendshipness", "emotion_id", "created_at", "updated_at"}

type userRepository struct{ *Store }

func NewUserRepository(s *Store) repository.UserRepository { return &userRepository{Store: s} }

func (r *userRepository) GetOrCreate(ctx context.Context, ref string) (*entity.User, bool, error) {
	now := r.now()
	ins := r.builder().Insert(migrate.UsersTable.Name).
		Columns("reference", "name", "friendshipness", "created_at", "updated_at").
		Values(ref, "", 0.0, now, now).
		OnConflict(entsql.ConflictColumns("reference"), entsql.DoNothing())
	affected, err := r.exec(ctx, ins)
	if err != nil {
		return nil, false, fmt.Errorf("insert user: %w", err)
	}

	t := r.builder().Table(migrate.UsersTable.Name)
	sel := r.lock(r.builder().Select(t.Columns(userColumns...)...).From(t).Where(entsql.EQ(t.C("reference"), ref)))
	var user *entity.User
	err = r.query(ctx, sel, func(scan scanFunc) error {
		u, err := scanUser(scan)
		user = u
		return err
	})
	if err != nil {
		return nil, false, fmt.Errorf("get user: %w", err)
	}
	if user == nil {
		return nil, false, entity.ErrUserNotFound
	}
	return user, affected > 0, nil
}

func (r *userRepository) Update(ctx context.Context, user *entity.User) (*entity.User, error) {
	now := r.now()
	upd := r.builder().Update(migrate.UsersTable.Name).
		Set("name", user.Name).
		Set("friendshipness", user.Friendshipness).
		Set("updated_at", now).
		Where(entsql.EQ("id", user.ID))
	if user.EmotionID != nil {
		upd.Set("emotion_id", *user.EmotionID)
	} else {
		upd.SetNull("emotion_id")
	}
	affected, err := r.exec(ctx, upd)
	if err != nil {
		return nil, fmt.Errorf("update user: %w", err)
	}
	if affected == 0 {
		return nil, entity.ErrUserNotFound
	}
	out := *user
	out.UpdatedAt = now
	return &out, nil
}

func (r *userRepository) List(ctx context.Context, query *repository.ListUserQuery) ([]*entity.User, error) {
	var p listUsersParams
	if err := bind(query, &p, listUsersSchema); err != nil {
		return nil, err
	}

	b := r.builder()
	u := b.Table(migrate.UsersTable.Name).As("u")
	e := b.Table(migrate.EmotionsTable.Name).As("e")
	sel := b.Select(u.Columns(userColumns...)...).
		AppendSelect(e.Columns(emotionColumns...)...).
		From(u).
		LeftJoin(e).On(u.C("emotion_id"), e.C("id"))

	var preds []*entsql.Predicate
	if p.Reference != "" {
		preds = append(preds, entsql.EQ(u.C("reference"), p.Reference))
	}
	if p.Name != "" {
		preds = append(preds, entsql.EQ(u.C("name"), p.Name))
	}
	if p.FriendshipnessGTE != nil {
		preds = append(preds, entsql.GTE(u.C("friendshipness"), *p.FriendshipnessGTE))
	}
	if p.FriendshipnessLTE != nil {
		preds = append(preds, entsql.LTE(u.C("friendshipness"), *p.FriendshipnessLTE))
	}
	if len(preds) > 0 {
		sel.Where(entsql.And(preds...))
	}
	orderBy(sel, listUsersSchema.Order, p.OrderParams)

	var users []*entity.User
	err := r.query(ctx, sel, func(scan scanFunc) error {
		var (
			row userRow
			emo nullableEmotion
		)
		if err := scan(append(row.scanDest(), emo.scanDest()...)...); err != nil {
			return fmt.Errorf("scan user: %w", err)
		}
		row.finish()
		row.Emotion = emo.toEntity()
		users = append(users, row.User)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}

	filter := reference.Filter{ServerID: p.ServerID, UserID: p.UserID}
	users, err = reference.Apply(filter, users, func(u *entity.User) string { return u.Reference })
	if err != nil {
		return nil, fmt.Errorf("%w: %v", entity.ErrInvalidReference, err)
	}
	return users, nil
}

// userRow scans a users row with its nullable emotion link.
type userRow struct {
	*entity.User
	emotionID sql.NullInt64
}

func (u *userRow) scanDest() []any {
	if u.User == nil {
		u.User = new(entity.User)
	}
	return []any{&u.ID, &u.Reference, &u.Name, &u.Friendshipness, &u.emotionID, &u.CreatedAt, &u.UpdatedAt}
}

func (u *userRow) finish() {
	if u.emotionID.Valid {
		id := u.emotionID.Int64
		u.EmotionID = &id
	}
}

func scanUser(scan scanFunc) (*entity.User, error) {
	var row userRow
	if err := scan(row.scanDest()...); err != nil {
		return nil, fmt.Errorf("scan user: %w", err)
	}
	row.finish()
	return row.User, nil
}

// nullableEmotion scans the emotion side of a LEFT JOIN.
type nullableEmotion struct {
	id                                             sql.NullInt64
	reference                                      sql.NullString
	pleasantness, attention, sensitivity, aptitude sql.NullFloat64
	createdAt, updatedAt                           sql.NullTime
}

func (n *nullableEmotion) scanDest() []any {
	return []any{&n.id, &n.reference, &n.pleasantness, &n.attention, &n.sensitivity, &n.aptitude, &n.createdAt, &n.updatedAt}
}

func (n *nullableEmotion) toEntity() *entity.Emotion {
	if !n.id.Valid {
		return nil
	}
	return &entity.Emotion{
		ID:        n.id.Int64,
		Reference: n.reference.String,
		EmotionVector: entity.EmotionVector{
			Pleasantness: n.pleasantness.Float64,
			Attention:    n.attention.Float64,
			Sensitivity:  n.sensitivity.Float64,
			Aptitude:     n.aptitude.Float64,
		},
		CreatedAt: n.createdAt.Time,
		UpdatedAt: n.updatedAt.Time,
	}
}
