package connectrpc

import (
	"context"
	"math"
	"testing"

	"connectrpc.com/connect"
	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	luciv1 "github.com/eslsoft/luci/api/luci/v1"
	"github.com/eslsoft/luci/internal/entity"
	"github.com/eslsoft/luci/internal/repository"
)

type fakeWordUsecase struct {
	query *repository.ListWordQuery
	total int64
	tags  entity.WordTags
}

func (f *fakeWordUsecase) List(_ context.Context, query *repository.ListWordQuery) ([]*entity.Word, int64, error) {
	f.query = query
	return []*entity.Word{{ID: 1, Token: "olá", Length: 3, Meanings: []entity.Meaning{{ID: 2, Meaning: "hello"}}}}, f.total, nil
}

func (f *fakeWordUsecase) UpdateTags(_ context.Context, token string, tags entity.WordTags) (*entity.Word, error) {
	if token != "mundo" {
		return nil, entity.ErrWordNotFound
	}
	f.tags = tags
	w := entity.NewWord(token)
	tags.Apply(w)
	return w, nil
}

func (f *fakeWordUsecase) AddMeaning(context.Context, string, string, string) (*entity.Word, error) {
	return nil, entity.ErrMeaningRequired
}

func TestConvertPagination(t *testing.T) {
	tests := []struct {
		in       *luciv1.ListWordsRequest
		no, size int32
	}{
		{&luciv1.ListWordsRequest{}, 1, 20},
		{&luciv1.ListWordsRequest{PageNo: 3, PageSize: 50}, 3, 50},
		{&luciv1.ListWordsRequest{PageNo: -1, PageSize: 5000}, 1, _maxPageSize},
		{nil, 1, 20},
	}
	for _, tt := range tests {
		got := convertPagination(tt.in)
		assert.Equal(t, tt.no, got.PageNo)
		assert.Equal(t, tt.size, got.PageSize)
	}
}

func TestWordServiceListWords(t *testing.T) {
	uc := &fakeWordUsecase{total: 41}
	svc := NewWordServiceServer(uc)

	resp, err := svc.ListWords(context.Background(), connect.NewRequest(&luciv1.ListWordsRequest{
		Filter:   `token.startsWith("o")`,
		OrderBy:  "length desc",
		PageNo:   2,
		PageSize: 10,
	}))
	require.NoError(t, err)
	assert.Equal(t, `token.startsWith("o")`, uc.query.Filter)
	assert.Equal(t, "length desc", uc.query.OrderBy)
	assert.Equal(t, int32(41), resp.Msg.Pagination.Total)
	assert.Equal(t, int32(2), resp.Msg.Pagination.PageNo)
	require.Len(t, resp.Msg.Words, 1)
	assert.Equal(t, int32(3), resp.Msg.Words[0].Length)
	assert.Equal(t, "hello", resp.Msg.Words[0].Meanings[0].Meaning)

	uc.total = math.MaxInt32 + 1
	_, err = svc.ListWords(context.Background(), connect.NewRequest(&luciv1.ListWordsRequest{}))
	assert.Equal(t, connect.CodeInternal, connect.CodeOf(err))
}

func TestWordServiceUpdateWord(t *testing.T) {
	uc := &fakeWordUsecase{}
	svc := NewWordServiceServer(uc)

	resp, err := svc.UpdateWord(context.Background(), connect.NewRequest(&luciv1.UpdateWordRequest{
		Token:    "mundo",
		Language: lo.ToPtr("PT"),
		PosTag:   lo.ToPtr("NOUN"),
	}))
	require.NoError(t, err)
	assert.Equal(t, "pt", resp.Msg.Language)
	assert.Equal(t, "NOUN", *resp.Msg.PosTag)
	assert.Nil(t, uc.tags.Lemma)

	_, err = svc.UpdateWord(context.Background(), connect.NewRequest(&luciv1.UpdateWordRequest{Token: "nada"}))
	assert.Equal(t, connect.CodeNotFound, connect.CodeOf(err))

	_, err = svc.AddMeaning(context.Background(), connect.NewRequest(&luciv1.AddMeaningRequest{Token: "mundo"}))
	assert.Equal(t, connect.CodeInvalidArgument, connect.CodeOf(err))
}
