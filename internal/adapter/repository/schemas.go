package repository

import (
	"fmt"

	entsql "entgo.io/ent/dialect/sql"

	"github.com/eslsoft/luci/internal/entity"
	"github.com/eslsoft/luci/pkg/filterexpr"
)

type listUsersParams struct {
	Reference         string
	Name              string
	FriendshipnessGTE *float64
	FriendshipnessLTE *float64
	ServerID          string
	UserID            string
	filterexpr.OrderParams
}

var listUsersSchema = filterexpr.ResourceSchema{
	Filter: map[string]filterexpr.FilterField{
		"reference": {
			Kind: filterexpr.KindString,
			Ops:  map[filterexpr.Op]string{filterexpr.OpEQ: "Reference"},
		},
		"name": {
			Kind: filterexpr.KindString,
			Ops:  map[filterexpr.Op]string{filterexpr.OpEQ: "Name"},
		},
		"friendshipness": {
			Kind: filterexpr.KindNumber,
			Ops: map[filterexpr.Op]string{
				filterexpr.OpGTE: "FriendshipnessGTE",
				filterexpr.OpLTE: "FriendshipnessLTE",
			},
		},
		"server_id": {
			Kind: filterexpr.KindString,
			Ops:  map[filterexpr.Op]string{filterexpr.OpEQ: "ServerID"},
		},
		"user_id": {
			Kind: filterexpr.KindString,
			Ops:  map[filterexpr.Op]string{filterexpr.OpEQ: "UserID"},
		},
	},
	Order: filterexpr.OrderSchema{
		DefaultPrimary: "id",
		FallbackKey:    "id",
		Fields: map[string]filterexpr.OrderField{
			"id":             {Expr: "id"},
			"name":           {Expr: "name"},
			"friendshipness": {Expr: "friendshipness"},
			"created_at":     {Expr: "created_at"},
			"updated_at":     {Expr: "updated_at"},
		},
	},
}

type listMessagesParams struct {
	Reference         string
	GlobalIntention   string
	SpecificIntention string
	Author            string
	TextContains      string
	TextContainsFold  string
	TextPrefix        string
	TextNotPrefixes   []string
	TextNotContains   []string
	filterexpr.OrderParams
}

var listMessagesSchema = filterexpr.ResourceSchema{
	Filter: map[string]filterexpr.FilterField{
		"reference": {
			Kind: filterexpr.KindString,
			Ops:  map[filterexpr.Op]string{filterexpr.OpEQ: "Reference"},
		},
		"global_intention": {
			Kind: filterexpr.KindString,
			Ops:  map[filterexpr.Op]string{filterexpr.OpEQ: "GlobalIntention"},
		},
		"specific_intention": {
			Kind: filterexpr.KindString,
			Ops:  map[filterexpr.Op]string{filterexpr.OpEQ: "SpecificIntention"},
		},
		"author": {
			Kind: filterexpr.KindString,
			Ops:  map[filterexpr.Op]string{filterexpr.OpEQ: "Author"},
		},
		"text": {
			Kind: filterexpr.KindString,
			Ops: map[filterexpr.Op]string{
				filterexpr.OpContains:     "TextContains",
				filterexpr.OpContainsFold: "TextContainsFold",
				filterexpr.OpSW:           "TextPrefix",
				filterexpr.OpNotSW:        "TextNotPrefixes",
				filterexpr.OpNotContains:  "TextNotContains",
			},
		},
	},
	Order: filterexpr.OrderSchema{
		DefaultPrimary: "id",
		FallbackKey:    "id",
		Fields: map[string]filterexpr.OrderField{
			"id":         {Expr: "id"},
			"created_at": {Expr: "created_at"},
		},
	},
}

type listQuotesParams struct {
	Author            string
	Date              string
	QuoteContainsFold string
	filterexpr.OrderParams
}

var listQuotesSchema = filterexpr.ResourceSchema{
	Filter: map[string]filterexpr.FilterField{
		"author": {
			Kind: filterexpr.KindString,
			Ops:  map[filterexpr.Op]string{filterexpr.OpEQ: "Author"},
		},
		"date": {
			Kind: filterexpr.KindString,
			Ops:  map[filterexpr.Op]string{filterexpr.OpEQ: "Date"},
		},
		"quote": {
			Kind: filterexpr.KindString,
			Ops:  map[filterexpr.Op]string{filterexpr.OpContainsFold: "QuoteContainsFold"},
		},
	},
	Order: filterexpr.OrderSchema{
		DefaultPrimary: "id",
		FallbackKey:    "id",
		Fields: map[string]filterexpr.OrderField{
			"id":         {Expr: "id"},
			"author":     {Expr: "author"},
			"created_at": {Expr: "created_at"},
		},
	},
}

type listWordsParams struct {
	TokenContainsFold string
	TokenPrefix       string
	TokenSuffix       string
	Length            *int64
	LengthGTE         *int64
	LengthLTE         *int64
	Language          string
	PosTag            string
	filterexpr.OrderParams
}

var listWordsSchema = filterexpr.ResourceSchema{
	Filter: map[string]filterexpr.FilterField{
		"token": {
			Kind: filterexpr.KindString,
			Ops: map[filterexpr.Op]string{
				filterexpr.OpContainsFold: "TokenContainsFold",
				filterexpr.OpSW:           "TokenPrefix",
				filterexpr.OpEW:           "TokenSuffix",
			},
		},
		"length": {
			Kind: filterexpr.KindNumber,
			Ops: map[filterexpr.Op]string{
				filterexpr.OpEQ:  "Length",
				filterexpr.OpGTE: "LengthGTE",
				filterexpr.OpLTE: "LengthLTE",
			},
		},
		"language": {
			Kind: filterexpr.KindString,
			Ops:  map[filterexpr.Op]string{filterexpr.OpEQ: "Language"},
		},
		"pos_tag": {
			Kind: filterexpr.KindString,
			Ops:  map[filterexpr.Op]string{filterexpr.OpEQ: "PosTag"},
		},
	},
	Order: filterexpr.OrderSchema{
		DefaultPrimary: "token",
		FallbackKey:    "id",
		Fields: map[string]filterexpr.OrderField{
			"id":         {Expr: "id"},
			"token":      {Expr: "token"},
			"length":     {Expr: "length"},
			"created_at": {Expr: "created_at"},
		},
	},
}

// bind parses the filter and order_by of msg into params. Parse failures are
// reported as validation errors.
func bind[M filterexpr.Msg, P any](msg M, params *P, schema filterexpr.ResourceSchema) error {
	if err := filterexpr.Bind(msg, params, schema); err != nil {
		return fmt.Errorf("%w: %v", entity.ErrValidation, err)
	}
	return nil
}

// orderBy applies the bound ordering to sel.
func orderBy(sel *entsql.Selector, schema filterexpr.OrderSchema, ord filterexpr.OrderParams) {
	keys := []string{ord.PrimaryKey}
	desc := []bool{ord.PrimaryDesc}
	if ord.SecondaryKey != "" && ord.SecondaryKey != ord.PrimaryKey {
		keys = append(keys, ord.SecondaryKey)
		desc = append(desc, ord.SecondaryDesc)
	}
	for i, key := range keys {
		if key == "" {
			continue
		}
		var opts []entsql.OrderTermOption
		if desc[i] {
			opts = append(opts, entsql.OrderDesc())
		}
		entsql.OrderByField(schema.Column(key), opts...).ToFunc()(sel)
	}
}
