package usecase

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/eslsoft/luci/internal/entity"
	"github.com/eslsoft/luci/internal/repository"
)

// UserUsecase lists users and records user interactions.
type UserUsecase interface {
	List(ctx context.Context, query *repository.ListUserQuery) ([]*entity.User, error)
	// Update applies one interaction: it materializes the user with its
	// emotion, renames it, accumulates friendshipness and emotion, and stores
	// the message. The notifier fires only after the transaction commits.
	Update(ctx context.Context, update *entity.UserUpdate) (*entity.User, error)
}

type userUsecase struct {
	users    repository.UserRepository
	emotions repository.EmotionRepository
	messages repository.MessageRepository
	tx       repository.TxManager
	notifier MessageNotifier
	logger   *logrus.Logger
}

func NewUserUsecase(
	users repository.UserRepository,
	emotions repository.EmotionRepository,
	messages repository.MessageRepository,
	tx repository.TxManager,
	notifier MessageNotifier,
	logger *logrus.Logger,
) UserUsecase {
	if notifier == nil {
		notifier = NoopNotifier{}
	}
	return &userUsecase{users: users, emotions: emotions, messages: messages, tx: tx, notifier: notifier, logger: logger}
}

func (u *userUsecase) List(ctx context.Context, query *repository.ListUserQuery) ([]*entity.User, error) {
	return u.users.List(ctx, query)
}

func (u *userUsecase) Update(ctx context.Context, update *entity.UserUpdate) (*entity.User, error) {
	if update == nil {
		return nil, entity.ErrReferenceRequired
	}
	if err := update.Validate(); err != nil {
		return nil, err
	}

	var out *entity.User
	err := u.tx.WithTx(ctx, func(ctx context.Context) error {
		user, created, err := u.users.GetOrCreate(ctx, update.Reference)
		if err != nil {
			return err
		}

		var emotion *entity.Emotion
		if user.EmotionID == nil {
			emotion, err = u.emotions.GetOrCreate(ctx, update.Reference)
		} else {
			emotion, err = u.emotions.GetByID(ctx, *user.EmotionID)
		}
		if err != nil {
			return err
		}
		if emotion, err = applyEmotion(ctx, u.emotions, emotion, update.Emotion); err != nil {
			return err
		}

		user.Name = update.Name
		user.Friendshipness += update.Friendshipness
		user.EmotionID = &emotion.ID
		if user, err = u.users.Update(ctx, user); err != nil {
			return err
		}
		user.Emotion = emotion

		if _, err := u.messages.Create(ctx, &entity.Message{
			Reference:         update.Reference,
			GlobalIntention:   update.Message.GlobalIntention,
			SpecificIntention: update.Message.SpecificIntention,
			Text:              update.Message.Text,
			UserID:            &user.ID,
			Author:            user.Name,
		}); err != nil {
			return err
		}

		if created && u.logger != nil {
			u.logger.WithContext(ctx).WithField("reference", update.Reference).Info("user materialized")
		}
		out = user
		return nil
	})
	if err != nil {
		return nil, err
	}

	u.notifier.NotifyMessage(ctx, out.Reference)
	return out, nil
}
