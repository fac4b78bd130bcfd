package repository

import "context"

// Pagination holds pagination parameters for listing entities.
type Pagination struct {
	PageNo   int32
	PageSize int32
}

func (p *Pagination) Offset() int32 { return (p.PageNo - 1) * p.PageSize }

type FilterOrder struct {
	Filter  string
	OrderBy string
}

func (fo *FilterOrder) GetFilter() string { return fo.Filter }

func (fo *FilterOrder) GetOrderBy() string { return fo.OrderBy }

// TxManager runs fn inside a transaction carried by the context. Repositories
// called with that context join the transaction; nested calls reuse it.
type TxManager interface {
	WithTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// TextSource streams every stored text of a corpus in decoded form.
type TextSource interface {
	ScanTexts(ctx context.Context, fn func(text string) error) error
}
