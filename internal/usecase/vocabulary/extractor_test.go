package vocabulary

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/eslsoft/luci/internal/entity"
	"github.com/eslsoft/luci/internal/repository"
)

type fakeSource struct {
	texts []string
	err   error
}

func (s fakeSource) ScanTexts(ctx context.Context, fn func(string) error) error {
	for _, text := range s.texts {
		if err := fn(text); err != nil {
			return err
		}
	}
	return s.err
}

type fakeWordRepo struct {
	mu        sync.RWMutex
	words     map[string]*entity.Word
	conflicts map[string]bool
}

func newFakeWordRepo() *fakeWordRepo {
	return &fakeWordRepo{words: make(map[string]*entity.Word), conflicts: make(map[string]bool)}
}

func (r *fakeWordRepo) CreateIfAbsent(ctx context.Context, word *entity.Word) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.conflicts[word.Token] {
		delete(r.conflicts, word.Token)
		r.words[word.Token] = word
		return false, fmt.Errorf("%w: token %q", entity.ErrConstraintViolation, word.Token)
	}
	if _, ok := r.words[word.Token]; ok {
		return false, nil
	}
	copy := *word
	copy.ID = int64(len(r.words) + 1)
	r.words[word.Token] = &copy
	return true, nil
}

func (r *fakeWordRepo) GetByToken(ctx context.Context, token string) (*entity.Word, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	w, ok := r.words[token]
	if !ok {
		return nil, entity.ErrWordNotFound
	}
	copy := *w
	return &copy, nil
}

func (r *fakeWordRepo) Update(ctx context.Context, word *entity.Word) (*entity.Word, error) {
	return nil, errors.New("not implemented")
}

func (r *fakeWordRepo) List(ctx context.Context, query *repository.ListWordQuery) ([]*entity.Word, int64, error) {
	return nil, 0, errors.New("not implemented")
}

func (r *fakeWordRepo) AddMeaning(ctx context.Context, meaning *entity.Meaning) (*entity.Meaning, error) {
	return nil, errors.New("not implemented")
}

func TestExtractor_RunIsIdempotent(t *testing.T) {
	repo := newFakeWordRepo()
	messages := fakeSource{texts: []string{"Hello, world!", "I a ok", ";;skip", "http://x"}}
	quotes := fakeSource{texts: []string{"hello again"}}
	ex := NewExtractor(repo, nil, messages, quotes)

	report, err := ex.Run(context.Background())
	if err != nil {
		t.Fatalf("first run: %v", err)
	}
	// ";;skip" keeps one ';' after the single leading strip and is discarded
	if report.Texts != 5 || report.Unique != 4 || report.Created != 4 {
		t.Fatalf("unexpected first report: %+v", report)
	}

	pos := "UH"
	repo.words["hello"].PosTag = &pos

	report, err = ex.Run(context.Background())
	if err != nil {
		t.Fatalf("second run: %v", err)
	}
	if report.Created != 0 || report.Unique != 4 {
		t.Fatalf("unexpected second report: %+v", report)
	}
	if len(repo.words) != 4 {
		t.Fatalf("expected 4 words, got %d", len(repo.words))
	}
	if got := repo.words["hello"].PosTag; got == nil || *got != "UH" {
		t.Fatalf("existing word tags were modified")
	}
	for _, token := range []string{"hello", "world", "ok", "again"} {
		w, err := repo.GetByToken(context.Background(), token)
		if err != nil {
			t.Fatalf("missing %q: %v", token, err)
		}
		if w.Length != len([]rune(token)) {
			t.Fatalf("length of %q = %d", token, w.Length)
		}
	}
}

func TestExtractor_AbsorbsConstraintViolations(t *testing.T) {
	repo := newFakeWordRepo()
	repo.conflicts["world"] = true
	ex := NewExtractor(repo, nil, fakeSource{texts: []string{"hello world"}})

	report, err := ex.Run(context.Background())
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if report.Created != 1 {
		t.Fatalf("expected one created word, got %+v", report)
	}
	if _, err := repo.GetByToken(context.Background(), "world"); err != nil {
		t.Fatalf("conflicting token should exist: %v", err)
	}
}

func TestExtractor_AbortsOnDecodeError(t *testing.T) {
	repo := newFakeWordRepo()
	bad := fakeSource{err: fmt.Errorf("%w: messages 3", entity.ErrDecode)}
	ex := NewExtractor(repo, nil, fakeSource{texts: []string{"hello"}}, bad)

	if _, err := ex.Run(context.Background()); !errors.Is(err, entity.ErrDecode) {
		t.Fatalf("expected decode error, got %v", err)
	}
	if len(repo.words) != 0 {
		t.Fatalf("no word should be written on an aborted run")
	}
}
