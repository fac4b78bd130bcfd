package usecase

import (
	"context"
	"errors"
	"math"
	"sync"
	"testing"

	"github.com/eslsoft/luci/internal/entity"
	"github.com/eslsoft/luci/pkg/reference"
)

type userFixture struct {
	users    *fakeUserRepo
	emotions *fakeEmotionRepo
	messages *fakeMessageRepo
	notifier *recordingNotifier
	uc       UserUsecase
}

func newUserFixture() *userFixture {
	f := &userFixture{
		users:    newFakeUserRepo(),
		emotions: newFakeEmotionRepo(),
		messages: newFakeMessageRepo(),
		notifier: &recordingNotifier{},
	}
	f.uc = NewUserUsecase(f.users, f.emotions, f.messages, &fakeTx{}, f.notifier, nil)
	return f
}

func interaction(ref string) *entity.UserUpdate {
	return &entity.UserUpdate{
		Reference:      ref,
		Name:           "Ann",
		Friendshipness: 1.5,
		Emotion:        entity.EmotionDelta{}.With(entity.DimensionPleasantness, 0.5),
		Message:        &entity.MessageInput{GlobalIntention: "greeting", SpecificIntention: "hello", Text: "hi luci"},
	}
}

func TestUpdateUser_AccumulatesAcrossCalls(t *testing.T) {
	f := newUserFixture()
	ref := reference.Encode("server1", "42")

	for i := 0; i < 2; i++ {
		if _, err := f.uc.Update(context.Background(), interaction(ref)); err != nil {
			t.Fatalf("update %d: %v", i, err)
		}
	}

	user := f.users.get(ref)
	if user.Friendshipness != 3.0 {
		t.Fatalf("expected friendshipness 3.0, got %v", user.Friendshipness)
	}
	if user.Name != "Ann" {
		t.Fatalf("expected name Ann, got %q", user.Name)
	}
	emo, err := f.emotions.GetByID(context.Background(), *user.EmotionID)
	if err != nil {
		t.Fatalf("emotion: %v", err)
	}
	if math.Abs(emo.Pleasantness-1.0) > 1e-9 {
		t.Fatalf("expected pleasantness 1.0, got %v", emo.Pleasantness)
	}
	if f.users.count() != 1 || f.emotions.count() != 1 {
		t.Fatalf("expected one user and one emotion, got %d/%d", f.users.count(), f.emotions.count())
	}
	if len(f.messages.items) != 2 {
		t.Fatalf("expected two stored messages, got %d", len(f.messages.items))
	}
	for _, m := range f.messages.items {
		if m.UserID == nil || *m.UserID != user.ID || m.Reference != ref {
			t.Fatalf("message not linked to user: %+v", m)
		}
	}
	if calls := f.notifier.calls(); len(calls) != 2 || calls[0] != ref {
		t.Fatalf("expected two notifications for %q, got %v", ref, calls)
	}
}

func TestUpdateUser_ConcurrentNewReference(t *testing.T) {
	f := newUserFixture()
	ref := reference.Encode("server1", "7")

	var wg sync.WaitGroup
	errs := make(chan error, 16)
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := f.uc.Update(context.Background(), interaction(ref)); err != nil {
				errs <- err
			}
		}()
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		t.Fatalf("update: %v", err)
	}

	if f.users.count() != 1 || f.emotions.count() != 1 {
		t.Fatalf("expected one user and one emotion, got %d/%d", f.users.count(), f.emotions.count())
	}
	if got := f.users.get(ref).Friendshipness; got != 24 {
		t.Fatalf("expected no lost updates (24), got %v", got)
	}
}

func TestUpdateUser_ClampsEmotion(t *testing.T) {
	f := newUserFixture()
	ref := reference.Encode("s", "1")
	in := interaction(ref)
	in.Emotion = entity.EmotionDelta{}.With(entity.DimensionAptitude, -50)

	user, err := f.uc.Update(context.Background(), in)
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if user.Emotion == nil || user.Emotion.Aptitude != -entity.EmotionBound {
		t.Fatalf("expected clamped aptitude, got %+v", user.Emotion)
	}
}

func TestUpdateUser_ValidationFailsBeforeWrites(t *testing.T) {
	f := newUserFixture()
	cases := []*entity.UserUpdate{
		{Reference: "", Name: "Ann", Message: &entity.MessageInput{Text: "x"}},
		{Reference: "r", Name: " ", Message: &entity.MessageInput{Text: "x"}},
		{Reference: "r", Name: "Ann"},
		{Reference: "r", Name: "Ann", Message: &entity.MessageInput{Text: "  "}},
	}
	for i, in := range cases {
		if _, err := f.uc.Update(context.Background(), in); !errors.Is(err, entity.ErrValidation) {
			t.Fatalf("case %d: expected validation error, got %v", i, err)
		}
	}
	if f.users.count() != 0 || len(f.notifier.calls()) != 0 {
		t.Fatalf("no write or notification expected")
	}
}

func TestUpdateUser_NoNotificationWhenWriteFails(t *testing.T) {
	f := newUserFixture()
	f.messages.createErr = errors.New("disk full")

	if _, err := f.uc.Update(context.Background(), interaction("r")); err == nil {
		t.Fatalf("expected error")
	}
	if len(f.notifier.calls()) != 0 {
		t.Fatalf("notifier must not fire for a failed write")
	}
}
