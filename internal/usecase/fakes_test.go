package usecase

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/eslsoft/luci/internal/entity"
	"github.com/eslsoft/luci/internal/repository"
)

// fakeTx serializes transactions the way a single-connection store does.
type fakeTx struct {
	mu sync.Mutex
}

type fakeTxKey struct{}

func (f *fakeTx) WithTx(ctx context.Context, fn func(ctx context.Context) error) error {
	if ctx.Value(fakeTxKey{}) != nil {
		return fn(ctx)
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	return fn(context.WithValue(ctx, fakeTxKey{}, true))
}

type fakeEmotionRepo struct {
	mu    sync.RWMutex
	seq   int64
	items map[int64]*entity.Emotion
}

func newFakeEmotionRepo() *fakeEmotionRepo {
	return &fakeEmotionRepo{items: make(map[int64]*entity.Emotion)}
}

func (r *fakeEmotionRepo) GetOrCreate(ctx context.Context, reference string) (*entity.Emotion, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, e := range r.items {
		if e.Reference == reference {
			copy := *e
			return &copy, nil
		}
	}
	r.seq++
	e := &entity.Emotion{ID: r.seq, Reference: reference}
	r.items[e.ID] = e
	copy := *e
	return &copy, nil
}

func (r *fakeEmotionRepo) GetByID(ctx context.Context, id int64) (*entity.Emotion, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	e, ok := r.items[id]
	if !ok {
		return nil, entity.ErrEmotionNotFound
	}
	copy := *e
	return &copy, nil
}

func (r *fakeEmotionRepo) ListByReference(ctx context.Context, reference string) ([]*entity.Emotion, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []*entity.Emotion
	for _, e := range r.items {
		if e.Reference == reference {
			copy := *e
			out = append(out, &copy)
		}
	}
	return out, nil
}

func (r *fakeEmotionRepo) UpdateVector(ctx context.Context, emotion *entity.Emotion) (*entity.Emotion, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.items[emotion.ID]; !ok {
		return nil, entity.ErrEmotionNotFound
	}
	copy := *emotion
	r.items[emotion.ID] = &copy
	out := copy
	return &out, nil
}

func (r *fakeEmotionRepo) count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.items)
}

type fakeUserRepo struct {
	mu    sync.RWMutex
	seq   int64
	items map[string]*entity.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{items: make(map[string]*entity.User)}
}

func (r *fakeUserRepo) GetOrCreate(ctx context.Context, reference string) (*entity.User, bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if u, ok := r.items[reference]; ok {
		copy := *u
		return &copy, false, nil
	}
	r.seq++
	u := &entity.User{ID: r.seq, Reference: reference}
	r.items[reference] = u
	copy := *u
	return &copy, true, nil
}

func (r *fakeUserRepo) Update(ctx context.Context, user *entity.User) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.items[user.Reference]; !ok {
		return nil, entity.ErrUserNotFound
	}
	copy := *user
	copy.Emotion = nil
	r.items[user.Reference] = &copy
	out := copy
	return &out, nil
}

func (r *fakeUserRepo) List(ctx context.Context, query *repository.ListUserQuery) ([]*entity.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*entity.User, 0, len(r.items))
	for _, u := range r.items {
		copy := *u
		out = append(out, &copy)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *fakeUserRepo) get(reference string) *entity.User {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.items[reference]
}

func (r *fakeUserRepo) count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.items)
}

type fakeMessageRepo struct {
	mu        sync.RWMutex
	seq       int64
	items     map[int64]*entity.Message
	edges     map[int64]map[int64]struct{}
	createErr error
}

func newFakeMessageRepo() *fakeMessageRepo {
	return &fakeMessageRepo{items: make(map[int64]*entity.Message), edges: make(map[int64]map[int64]struct{})}
}

func (r *fakeMessageRepo) ScanTexts(ctx context.Context, fn func(string) error) error {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, m := range r.items {
		if err := fn(m.Text); err != nil {
			return err
		}
	}
	return nil
}

func (r *fakeMessageRepo) Create(ctx context.Context, message *entity.Message) (*entity.Message, error) {
	if r.createErr != nil {
		return nil, r.createErr
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.seq++
	copy := *message
	copy.ID = r.seq
	r.items[copy.ID] = &copy
	out := copy
	return &out, nil
}

func (r *fakeMessageRepo) GetByID(ctx context.Context, id int64) (*entity.Message, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	m, ok := r.items[id]
	if !ok {
		return nil, entity.ErrMessageNotFound
	}
	copy := *m
	return &copy, nil
}

func (r *fakeMessageRepo) List(ctx context.Context, query *repository.ListMessageQuery) ([]*entity.Message, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*entity.Message, 0, len(r.items))
	for _, m := range r.items {
		copy := *m
		out = append(out, &copy)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *fakeMessageRepo) FindByTextFold(ctx context.Context, needle string) ([]*entity.Message, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []*entity.Message
	for _, m := range r.items {
		if strings.Contains(strings.ToLower(m.Text), strings.ToLower(needle)) {
			copy := *m
			out = append(out, &copy)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *fakeMessageRepo) AddResponse(ctx context.Context, messageID, responseID int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.edges[messageID] == nil {
		r.edges[messageID] = make(map[int64]struct{})
	}
	r.edges[messageID][responseID] = struct{}{}
	return nil
}

func (r *fakeMessageRepo) ListResponses(ctx context.Context, messageIDs ...int64) (map[int64][]*entity.Message, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make(map[int64][]*entity.Message)
	for _, id := range messageIDs {
		for responseID := range r.edges[id] {
			m := r.items[responseID]
			if m == nil || entity.IsCommandLike(m.Text) {
				continue
			}
			copy := *m
			out[id] = append(out[id], &copy)
		}
	}
	return out, nil
}

func (r *fakeMessageRepo) edgeCount() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	n := 0
	for _, set := range r.edges {
		n += len(set)
	}
	return n
}

type fakeQuoteRepo struct {
	mu    sync.RWMutex
	items []*entity.Quote
}

func (r *fakeQuoteRepo) ScanTexts(ctx context.Context, fn func(string) error) error {
	return nil
}

func (r *fakeQuoteRepo) GetOrCreate(ctx context.Context, quote *entity.Quote) (*entity.Quote, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, q := range r.items {
		if q.Reference == quote.Reference && q.Text == quote.Text {
			copy := *q
			return &copy, nil
		}
	}
	copy := *quote
	copy.ID = int64(len(r.items) + 1)
	r.items = append(r.items, &copy)
	out := copy
	return &out, nil
}

func (r *fakeQuoteRepo) List(ctx context.Context, query *repository.ListQuoteQuery) ([]*entity.Quote, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []*entity.Quote
	for _, q := range r.items {
		if q.Reference == query.Reference {
			copy := *q
			out = append(out, &copy)
		}
	}
	return out, nil
}

type fakeCustomConfigRepo struct {
	mu    sync.RWMutex
	items map[string]*entity.CustomConfig
}

func newFakeCustomConfigRepo() *fakeCustomConfigRepo {
	return &fakeCustomConfigRepo{items: make(map[string]*entity.CustomConfig)}
}

func (r *fakeCustomConfigRepo) Get(ctx context.Context, reference string) (*entity.CustomConfig, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	c, ok := r.items[reference]
	if !ok {
		return nil, entity.ErrCustomConfigNotFound
	}
	copy := *c
	return &copy, nil
}

func (r *fakeCustomConfigRepo) GetOrCreate(ctx context.Context, reference string) (*entity.CustomConfig, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	c, ok := r.items[reference]
	if !ok {
		c = entity.NewCustomConfig(reference)
		c.ID = int64(len(r.items) + 1)
		r.items[reference] = c
	}
	copy := *c
	return &copy, nil
}

func (r *fakeCustomConfigRepo) Update(ctx context.Context, config *entity.CustomConfig) (*entity.CustomConfig, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.items[config.Reference]; !ok {
		return nil, entity.ErrCustomConfigNotFound
	}
	copy := *config
	r.items[config.Reference] = &copy
	out := copy
	return &out, nil
}

type fakeWordRepo struct {
	mu        sync.RWMutex
	words     map[string]*entity.Word
	lastQuery *repository.ListWordQuery
}

func newFakeWordRepo(tokens ...string) *fakeWordRepo {
	r := &fakeWordRepo{words: make(map[string]*entity.Word)}
	for i, token := range tokens {
		w := entity.NewWord(token)
		w.ID = int64(i + 1)
		r.words[token] = w
	}
	return r
}

func (r *fakeWordRepo) CreateIfAbsent(ctx context.Context, word *entity.Word) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
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
	r.mu.Lock()
	defer r.mu.Unlock()
	copy := *word
	copy.Derive()
	r.words[word.Token] = &copy
	out := copy
	return &out, nil
}

func (r *fakeWordRepo) List(ctx context.Context, query *repository.ListWordQuery) ([]*entity.Word, int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	q := *query
	r.lastQuery = &q
	out := make([]*entity.Word, 0, len(r.words))
	for _, w := range r.words {
		copy := *w
		out = append(out, &copy)
	}
	return out, int64(len(out)), nil
}

func (r *fakeWordRepo) AddMeaning(ctx context.Context, meaning *entity.Meaning) (*entity.Meaning, error) {
	copy := *meaning
	copy.ID = 1
	return &copy, nil
}

type recordingNotifier struct {
	mu         sync.Mutex
	references []string
}

func (n *recordingNotifier) NotifyMessage(ctx context.Context, reference string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	if ctx.Value(fakeTxKey{}) != nil {
		panic("notifier called inside a transaction")
	}
	n.references = append(n.references, reference)
}

func (n *recordingNotifier) calls() []string {
	n.mu.Lock()
	defer n.mu.Unlock()
	return append([]string(nil), n.references...)
}
