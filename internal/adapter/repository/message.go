package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	entsql "entgo.io/ent/dialect/sql"
	"github.com/samber/lo"

	"github.com/eslsoft/luci/internal/entity"
	"github.com/eslsoft/luci/internal/infrastructure/database/migrate"
	"github.com/eslsoft/luci/internal/repository"
	"github.com/eslsoft/luci/pkg/textcodec"
)

var messageColumns = []string{"id", "reference", "global_intention", "specific_intention", "text", "created_at", "user_id"}

type messageRepository struct{ *Store }

func NewMessageRepository(s *Store) repository.MessageRepository {
	return &messageRepository{Store: s}
}

func (r *messageRepository) Create(ctx context.Context, message *entity.Message) (*entity.Message, error) {
	now := r.now()
	ins := r.builder().Insert(migrate.MessagesTable.Name).
		Columns("reference", "global_intention", "specific_intention", "text", "created_at", "user_id").
		Values(message.Reference, message.GlobalIntention, message.SpecificIntention, textcodec.Encode(message.Text), now, message.UserID)
	id, err := r.insert(ctx, ins)
	if err != nil {
		return nil, fmt.Errorf("insert message: %w", err)
	}
	out := *message
	out.ID = id
	out.CreatedAt = now
	return &out, nil
}

func (r *messageRepository) GetByID(ctx context.Context, id int64) (*entity.Message, error) {
	sel, m, _ := r.selectMessages()
	sel.Where(entsql.EQ(m.C("id"), id))
	messages, err := r.scan(ctx, sel)
	if err != nil {
		return nil, err
	}
	if len(messages) == 0 {
		return nil, entity.ErrMessageNotFound
	}
	return messages[0], nil
}

func (r *messageRepository) List(ctx context.Context, query *repository.ListMessageQuery) ([]*entity.Message, error) {
	var p listMessagesParams
	if err := bind(query, &p, listMessagesSchema); err != nil {
		return nil, err
	}

	sel, m, u := r.selectMessages()
	var preds []*entsql.Predicate
	if p.Reference != "" {
		preds = append(preds, entsql.EQ(m.C("reference"), p.Reference))
	}
	if p.GlobalIntention != "" {
		preds = append(preds, entsql.EQ(m.C("global_intention"), p.GlobalIntention))
	}
	if p.SpecificIntention != "" {
		preds = append(preds, entsql.EQ(m.C("specific_intention"), p.SpecificIntention))
	}
	if p.Author != "" {
		preds = append(preds, entsql.EQ(u.C("name"), p.Author))
	}
	if len(preds) > 0 {
		sel.Where(entsql.And(preds...))
	}
	orderBy(sel, listMessagesSchema.Order, p.OrderParams)

	messages, err := r.scan(ctx, sel)
	if err != nil {
		return nil, err
	}
	match := newTextMatcher(p)
	messages = lo.Filter(messages, func(msg *entity.Message, _ int) bool { return match(msg.Text) })
	if len(messages) == 0 {
		return messages, nil
	}

	responses, err := r.ListResponses(ctx, lo.Map(messages, func(msg *entity.Message, _ int) int64 { return msg.ID })...)
	if err != nil {
		return nil, err
	}
	for _, msg := range messages {
		msg.PossibleResponses = responses[msg.ID]
	}
	return messages, nil
}

func (r *messageRepository) FindByTextFold(ctx context.Context, needle string) ([]*entity.Message, error) {
	sel, m, _ := r.selectMessages()
	entsql.OrderByField(m.C("id")).ToFunc()(sel)
	messages, err := r.scan(ctx, sel)
	if err != nil {
		return nil, err
	}
	needle = strings.ToLower(needle)
	return lo.Filter(messages, func(msg *entity.Message, _ int) bool {
		return strings.Contains(strings.ToLower(msg.Text), needle)
	}), nil
}

func (r *messageRepository) AddResponse(ctx context.Context, messageID, responseID int64) error {
	ins := r.builder().Insert(migrate.MessageResponsesTable.Name).
		Columns("message_id", "response_id").
		Values(messageID, responseID).
		OnConflict(entsql.ConflictColumns("message_id", "response_id"), entsql.DoNothing())
	if _, err := r.exec(ctx, ins); err != nil {
		return fmt.Errorf("add response %d -> %d: %w", messageID, responseID, err)
	}
	return nil
}

// ListResponses returns the possible responses of each message, keyed by
// message id. Command-like responses are left out.
func (r *messageRepository) ListResponses(ctx context.Context, messageIDs ...int64) (map[int64][]*entity.Message, error) {
	out := make(map[int64][]*entity.Message, len(messageIDs))
	if len(messageIDs) == 0 {
		return out, nil
	}

	b := r.builder()
	mr := b.Table(migrate.MessageResponsesTable.Name).As("mr")
	m := b.Table(migrate.MessagesTable.Name).As("m")
	u := b.Table(migrate.UsersTable.Name).As("u")
	sel := b.Select(mr.C("message_id")).
		AppendSelect(m.Columns(messageColumns...)...).
		AppendSelect(u.C("name")).
		From(mr).
		Join(m).On(mr.C("response_id"), m.C("id")).
		LeftJoin(u).On(m.C("user_id"), u.C("id")).
		Where(entsql.In(mr.C("message_id"), lo.ToAnySlice(lo.Uniq(messageIDs))...))
	entsql.OrderByField(m.C("id")).ToFunc()(sel)

	err := r.query(ctx, sel, func(scan scanFunc) error {
		var (
			parent int64
			row    messageRow
		)
		if err := scan(append([]any{&parent}, row.scanDest()...)...); err != nil {
			return fmt.Errorf("scan response: %w", err)
		}
		msg, err := row.decode()
		if err != nil {
			return err
		}
		if entity.IsCommandLike(msg.Text) {
			return nil
		}
		out[parent] = append(out[parent], msg)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("list responses: %w", err)
	}
	return out, nil
}

// ScanTexts streams every decoded message text in id order. fn must not use
// the store: SQLite deployments hold their only connection for the scan.
func (r *messageRepository) ScanTexts(ctx context.Context, fn func(text string) error) error {
	t := r.builder().Table(migrate.MessagesTable.Name)
	sel := r.builder().Select(t.C("id"), t.C("text")).From(t)
	entsql.OrderByField(t.C("id")).ToFunc()(sel)
	return r.query(ctx, sel, func(scan scanFunc) error {
		var (
			id  int64
			raw []byte
		)
		if err := scan(&id, &raw); err != nil {
			return fmt.Errorf("scan message text: %w", err)
		}
		text, err := decodeText(migrate.MessagesTable.Name, id, raw)
		if err != nil {
			return err
		}
		return fn(text)
	})
}

func (r *messageRepository) selectMessages() (*entsql.Selector, *entsql.SelectTable, *entsql.SelectTable) {
	b := r.builder()
	// Join aliases bare tables itself, so alias before qualifying columns.
	m := b.Table(migrate.MessagesTable.Name).As("m")
	u := b.Table(migrate.UsersTable.Name).As("u")
	sel := b.Select(m.Columns(messageColumns...)...).
		AppendSelect(u.C("name")).
		From(m).
		LeftJoin(u).On(m.C("user_id"), u.C("id"))
	return sel, m, u
}

func (r *messageRepository) scan(ctx context.Context, sel *entsql.Selector) ([]*entity.Message, error) {
	var messages []*entity.Message
	err := r.query(ctx, sel, func(scan scanFunc) error {
		var row messageRow
		if err := scan(row.scanDest()...); err != nil {
			return fmt.Errorf("scan message: %w", err)
		}
		msg, err := row.decode()
		if err != nil {
			return err
		}
		messages = append(messages, msg)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("query messages: %w", err)
	}
	return messages, nil
}

type messageRow struct {
	msg    entity.Message
	raw    []byte
	userID sql.NullInt64
	author sql.NullString
}

func (m *messageRow) scanDest() []any {
	return []any{&m.msg.ID, &m.msg.Reference, &m.msg.GlobalIntention, &m.msg.SpecificIntention, &m.raw, &m.msg.CreatedAt, &m.userID, &m.author}
}

func (m *messageRow) decode() (*entity.Message, error) {
	text, err := decodeText(migrate.MessagesTable.Name, m.msg.ID, m.raw)
	if err != nil {
		return nil, err
	}
	msg := m.msg
	msg.Text = text
	msg.Author = m.author.String
	if m.userID.Valid {
		id := m.userID.Int64
		msg.UserID = &id
	}
	return &msg, nil
}

// newTextMatcher builds the text predicates that cannot run against the
// encoded column. Negated needles match case-insensitively.
func newTextMatcher(p listMessagesParams) func(text string) bool {
	notPrefixes := foldAll(p.TextNotPrefixes)
	notContains := foldAll(p.TextNotContains)
	containsFold := strings.ToLower(p.TextContainsFold)
	return func(text string) bool {
		folded := strings.ToLower(text)
		switch {
		case p.TextContains != "" && !strings.Contains(text, p.TextContains):
			return false
		case containsFold != "" && !strings.Contains(folded, containsFold):
			return false
		case p.TextPrefix != "" && !strings.HasPrefix(text, p.TextPrefix):
			return false
		}
		for _, prefix := range notPrefixes {
			if strings.HasPrefix(folded, prefix) {
				return false
			}
		}
		for _, needle := range notContains {
			if strings.Contains(folded, needle) {
				return false
			}
		}
		return true
	}
}

func foldAll(in []string) []string {
	out := make([]string, 0, len(in))
	for _, item := range in {
		if item = strings.ToLower(item); item != "" {
			out = append(out, item)
		}
	}
	return lo.Uniq(out)
}
