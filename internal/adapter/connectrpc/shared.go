package connectrpc

import (
	"github.com/eslsoft/luci/internal/repository"
)

const _maxPageSize = 1000

type pageRequest interface {
	GetPageNo() int32
	GetPageSize() int32
}

func convertPagination(p pageRequest) repository.Pagination {
	pageNo := p.GetPageNo()
	if pageNo <= 0 {
		pageNo = 1
	}
	pageSize := p.GetPageSize()
	if pageSize <= 0 {
		pageSize = 20
	}
	if pageSize > _maxPageSize {
		pageSize = _maxPageSize
	}

	return repository.Pagination{PageNo: pageNo, PageSize: pageSize}
}

type filterOrderRequest interface {
	GetFilter() string
	GetOrderBy() string
}

func convertFilterOrder(r filterOrderRequest) repository.FilterOrder {
	return repository.FilterOrder{Filter: r.GetFilter(), OrderBy: r.GetOrderBy()}
}
