package backup

import (
	"bytes"
	"context"
	"database/sql"
	"errors"
	"fmt"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"

	"github.com/eslsoft/luci/internal/adapter/repository"
	"github.com/eslsoft/luci/internal/entity"
	"github.com/eslsoft/luci/internal/infrastructure/database/migrate"
	query "github.com/eslsoft/luci/internal/repository"
	"github.com/eslsoft/luci/pkg/reference"
)

func openDB(t *testing.T, name string) dialect.Driver {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?_pragma=foreign_keys(1)", filepath.Join(t.TempDir(), name))
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		t.Fatalf("open %s: %v", name, err)
	}
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { db.Close() })
	drv := entsql.OpenDB(dialect.SQLite, db)
	if err := migrate.Create(context.Background(), drv); err != nil {
		t.Fatalf("migrate %s: %v", name, err)
	}
	return drv
}

func seed(t *testing.T, drv dialect.Driver) {
	t.Helper()
	ctx := context.Background()
	store := repository.NewStore(drv)
	ref := reference.Encode("guild", "1001")

	users := repository.NewUserRepository(store)
	emotions := repository.NewEmotionRepository(store)
	messages := repository.NewMessageRepository(store)

	err := store.WithTx(ctx, func(ctx context.Context) error {
		user, _, err := users.GetOrCreate(ctx, ref)
		if err != nil {
			return err
		}
		emo, err := emotions.GetOrCreate(ctx, ref)
		if err != nil {
			return err
		}
		emo.EmotionVector = entity.EmotionVector{Pleasantness: 1.25, Aptitude: -9.99}
		if _, err := emotions.UpdateVector(ctx, emo); err != nil {
			return err
		}
		user.Name = "Ann"
		user.Friendshipness = 2.5
		user.EmotionID = &emo.ID
		if _, err := users.Update(ctx, user); err != nil {
			return err
		}
		first, err := messages.Create(ctx, &entity.Message{Reference: ref, Text: "olá, mundo", UserID: &user.ID})
		if err != nil {
			return err
		}
		second, err := messages.Create(ctx, &entity.Message{Reference: ref, Text: "bom dia"})
		if err != nil {
			return err
		}
		return messages.AddResponse(ctx, first.ID, second.ID)
	})
	if err != nil {
		t.Fatalf("seed users: %v", err)
	}

	if _, err := repository.NewQuoteRepository(store).GetOrCreate(ctx, &entity.Quote{Reference: ref, Text: "ça va", Author: "Luci"}); err != nil {
		t.Fatalf("seed quote: %v", err)
	}
	configs := repository.NewCustomConfigRepository(store)
	cfg, err := configs.GetOrCreate(ctx, ref)
	if err != nil {
		t.Fatalf("seed config: %v", err)
	}
	cfg.AllowAutoSendMessages = false
	if _, err := configs.Update(ctx, cfg); err != nil {
		t.Fatalf("update config: %v", err)
	}

	words := repository.NewWordRepository(store)
	if _, err := words.CreateIfAbsent(ctx, entity.NewWord("mundo")); err != nil {
		t.Fatalf("seed word: %v", err)
	}
	w, err := words.GetByToken(ctx, "mundo")
	if err != nil {
		t.Fatalf("get word: %v", err)
	}
	if _, err := words.AddMeaning(ctx, &entity.Meaning{WordID: w.ID, Meaning: "world"}); err != nil {
		t.Fatalf("seed meaning: %v", err)
	}
}

type snapshot struct {
	Users    []*entity.User
	Emotions []*entity.Emotion
	Messages []*entity.Message
	Quotes   []*entity.Quote
	Config   *entity.CustomConfig
	Words    []*entity.Word
}

func takeSnapshot(t *testing.T, drv dialect.Driver) snapshot {
	t.Helper()
	ctx := context.Background()
	store := repository.NewStore(drv)
	ref := reference.Encode("guild", "1001")

	var (
		snap snapshot
		err  error
	)
	if snap.Users, err = repository.NewUserRepository(store).List(ctx, &query.ListUserQuery{}); err != nil {
		t.Fatalf("list users: %v", err)
	}
	if snap.Emotions, err = repository.NewEmotionRepository(store).ListByReference(ctx, ref); err != nil {
		t.Fatalf("list emotions: %v", err)
	}
	if snap.Messages, err = repository.NewMessageRepository(store).List(ctx, &query.ListMessageQuery{}); err != nil {
		t.Fatalf("list messages: %v", err)
	}
	if snap.Quotes, err = repository.NewQuoteRepository(store).List(ctx, &query.ListQuoteQuery{Reference: ref}); err != nil {
		t.Fatalf("list quotes: %v", err)
	}
	if snap.Config, err = repository.NewCustomConfigRepository(store).Get(ctx, ref); err != nil && !errors.Is(err, entity.ErrNotFound) {
		t.Fatalf("get config: %v", err)
	}
	if snap.Words, _, err = repository.NewWordRepository(store).List(ctx, &query.ListWordQuery{}); err != nil {
		t.Fatalf("list words: %v", err)
	}
	for _, u := range snap.Users {
		u.CreatedAt, u.UpdatedAt = u.CreatedAt.UTC(), u.UpdatedAt.UTC()
		if u.Emotion != nil {
			u.Emotion.CreatedAt, u.Emotion.UpdatedAt = u.Emotion.CreatedAt.UTC(), u.Emotion.UpdatedAt.UTC()
		}
	}
	for _, e := range snap.Emotions {
		e.CreatedAt, e.UpdatedAt = e.CreatedAt.UTC(), e.UpdatedAt.UTC()
	}
	for _, m := range snap.Messages {
		m.CreatedAt = m.CreatedAt.UTC()
		for _, r := range m.PossibleResponses {
			r.CreatedAt = r.CreatedAt.UTC()
		}
	}
	for _, q := range snap.Quotes {
		q.CreatedAt = q.CreatedAt.UTC()
	}
	for _, w := range snap.Words {
		w.CreatedAt = w.CreatedAt.UTC()
	}
	return snap
}

func TestServiceExportImportRoundTrip(t *testing.T) {
	ctx := context.Background()
	src := openDB(t, "src.db")
	seed(t, src)
	want := takeSnapshot(t, src)

	exporter, err := NewService(src)
	if err != nil {
		t.Fatalf("new exporter: %v", err)
	}
	var buf bytes.Buffer
	if err := exporter.Export(ctx, &buf); err != nil {
		t.Fatalf("export: %v", err)
	}

	dst := openDB(t, "dst.db")
	importer, err := NewService(dst)
	if err != nil {
		t.Fatalf("new importer: %v", err)
	}
	for i := 0; i < 2; i++ {
		if err := importer.Import(ctx, bytes.NewReader(buf.Bytes())); err != nil {
			t.Fatalf("import %d: %v", i, err)
		}
	}

	got := takeSnapshot(t, dst)
	if !reflect.DeepEqual(want, got) {
		t.Fatalf("snapshot mismatch after import:\nwant %#v\ngot  %#v", want, got)
	}
	if len(got.Messages) != 2 || len(got.Messages[0].PossibleResponses) != 1 {
		t.Fatalf("response graph not restored: %#v", got.Messages)
	}
	if got.Messages[0].Text != "olá, mundo" {
		t.Fatalf("message text not restored: %q", got.Messages[0].Text)
	}
}

func TestServiceExportTablesFilter(t *testing.T) {
	ctx := context.Background()
	src := openDB(t, "src.db")
	seed(t, src)

	exporter, err := NewService(src)
	if err != nil {
		t.Fatalf("new exporter: %v", err)
	}
	var buf bytes.Buffer
	if err := exporter.Export(ctx, &buf, WithTables([]string{"Words", "meanings"})); err != nil {
		t.Fatalf("filtered export: %v", err)
	}
	if strings.Contains(buf.String(), `"table":"users"`) {
		t.Fatalf("users must not be exported")
	}

	dst := openDB(t, "dst.db")
	importer, err := NewService(dst)
	if err != nil {
		t.Fatalf("new importer: %v", err)
	}
	if err := importer.Import(ctx, bytes.NewReader(buf.Bytes())); err != nil {
		t.Fatalf("filtered import: %v", err)
	}
	got := takeSnapshot(t, dst)
	if len(got.Users) != 0 || len(got.Words) != 1 || len(got.Words[0].Meanings) != 1 {
		t.Fatalf("unexpected content after filtered import: %#v", got)
	}
}

func TestServiceRejectsBadInput(t *testing.T) {
	ctx := context.Background()
	svc, err := NewService(openDB(t, "db.db"))
	if err != nil {
		t.Fatalf("new service: %v", err)
	}

	if err := svc.Export(ctx, &bytes.Buffer{}, WithTables([]string{"learned_words"})); err == nil {
		t.Fatalf("expected unknown table error")
	}
	if err := svc.Export(ctx, &bytes.Buffer{}, WithTables([]string{" "})); !errors.Is(err, ErrNoTables) {
		t.Fatalf("expected ErrNoTables, got %v", err)
	}
	if err := svc.Import(ctx, strings.NewReader(`{"kind":"row","table":"words","data":{}}`+"\n")); !errors.Is(err, ErrMissingHeader) {
		t.Fatalf("expected ErrMissingHeader, got %v", err)
	}
	if err := svc.Import(ctx, strings.NewReader(`{"kind":"header","version":1}`+"\n")); err == nil {
		t.Fatalf("expected version error")
	}
	if err := svc.Import(ctx, strings.NewReader("")); !errors.Is(err, ErrMissingHeader) {
		t.Fatalf("expected ErrMissingHeader for empty input, got %v", err)
	}
}

func TestServiceTableOrderFollowsForeignKeys(t *testing.T) {
	svc, err := NewService(openDB(t, "db.db"))
	if err != nil {
		t.Fatalf("new service: %v", err)
	}
	names := svc.TableNames()
	pos := make(map[string]int, len(names))
	for i, n := range names {
		pos[n] = i
	}
	pairs := [][2]string{{"emotions", "users"}, {"users", "messages"}, {"messages", "message_responses"}, {"words", "meanings"}}
	for _, p := range pairs {
		if pos[p[0]] > pos[p[1]] {
			t.Fatalf("%s must precede %s in %v", p[0], p[1], names)
		}
	}
}
