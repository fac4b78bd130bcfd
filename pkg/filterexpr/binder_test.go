package filterexpr

import (
	"fmt"
	"reflect"
	"strings"
	"testing"
	"time"
)

type listItemsParams struct {
	OrderParams
	State        *string
	PriceMin     *float64
	PriceMax     *float64
	NamePrefix   *string
	NameSuffix   *string
	NameContains *string
	NameFold     *string
	Tags         []string
	NotPrefixes  []string
	NotContains  []string
	CreatedAfter *time.Time
	Length       *int
}

type query struct {
	filter  string
	orderBy string
}

func (q query) GetFilter() string  { return q.filter }
func (q query) GetOrderBy() string { return q.orderBy }

var itemsSchema = ResourceSchema{
	Filter: map[string]FilterField{
		"state": {
			Kind: KindString,
			Ops:  map[Op]string{OpEQ: "State"},
		},
		"price": {
			Kind: KindNumber,
			Ops: map[Op]string{
				OpGTE: "PriceMin",
				OpLTE: "PriceMax",
			},
		},
		"name": {
			Kind: KindString,
			Ops: map[Op]string{
				OpSW:           "NamePrefix",
				OpEW:           "NameSuffix",
				OpContains:     "NameContains",
				OpContainsFold: "NameFold",
				OpNotSW:        "NotPrefixes",
				OpNotContains:  "NotContains",
			},
		},
		"tag": {
			Kind: KindString,
			Ops:  map[Op]string{OpIN: "Tags"},
		},
		"length": {
			Kind: KindNumber,
			Ops:  map[Op]string{OpEQ: "Length"},
		},
		"create_time": {
			Kind: KindTimestamp,
			Ops:  map[Op]string{OpGTE: "CreatedAfter"},
		},
	},
	Order: OrderSchema{
		DefaultPrimary:     "created_at",
		DefaultPrimaryDesc: true,
		FallbackKey:        "id",
		Fields: map[string]OrderField{
			"created_at": {Expr: "created_at"},
			"name":       {Expr: "display_name"},
			"id":         {Expr: "id"},
		},
	},
}

func TestBind_Conjunction(t *testing.T) {
	var params listItemsParams
	timestamp := "2025-01-01T00:00:00Z"
	filter := fmt.Sprintf("state == 'ACTIVE' && price <= 1000 && name.startsWith('A') && create_time >= timestamp('%s')", timestamp)

	if err := Bind(query{filter: filter}, &params, itemsSchema); err != nil {
		t.Fatalf("Bind returned error: %v", err)
	}

	if params.State == nil || *params.State != "ACTIVE" {
		t.Fatalf("expected State to be 'ACTIVE', got %v", params.State)
	}
	if params.PriceMax == nil || *params.PriceMax != 1000 {
		t.Fatalf("expected PriceMax to be 1000, got %v", params.PriceMax)
	}
	if params.PriceMin != nil {
		t.Fatalf("expected PriceMin to be nil, got %v", params.PriceMin)
	}
	if params.NamePrefix == nil || *params.NamePrefix != "A" {
		t.Fatalf("expected NamePrefix to be 'A', got %v", params.NamePrefix)
	}
	want, _ := time.Parse(time.RFC3339, timestamp)
	if params.CreatedAfter == nil || !params.CreatedAfter.Equal(want) {
		t.Fatalf("expected CreatedAfter %v, got %v", want, params.CreatedAfter)
	}
	if params.PrimaryKey != "created_at" || !params.PrimaryDesc || params.SecondaryKey != "id" {
		t.Fatalf("unexpected default order: %+v", params.OrderParams)
	}
}

func TestBind_StringFunctions(t *testing.T) {
	var params listItemsParams
	filter := "name.endsWith('z') && name.contains('mid') && name.containsFold('MiX')"
	if err := Bind(query{filter: filter}, &params, itemsSchema); err != nil {
		t.Fatalf("Bind returned error: %v", err)
	}
	if params.NameSuffix == nil || *params.NameSuffix != "z" {
		t.Fatalf("expected NameSuffix 'z', got %v", params.NameSuffix)
	}
	if params.NameContains == nil || *params.NameContains != "mid" {
		t.Fatalf("expected NameContains 'mid', got %v", params.NameContains)
	}
	if params.NameFold == nil || *params.NameFold != "MiX" {
		t.Fatalf("expected NameFold 'MiX', got %v", params.NameFold)
	}
}

func TestBind_NegatedPredicatesAccumulate(t *testing.T) {
	var params listItemsParams
	filter := "!name.startsWith('!') && !name.startsWith('http') && !name.contains(';;')"
	if err := Bind(query{filter: filter}, &params, itemsSchema); err != nil {
		t.Fatalf("Bind returned error: %v", err)
	}
	if !reflect.DeepEqual(params.NotPrefixes, []string{"!", "http"}) {
		t.Fatalf("unexpected NotPrefixes %v", params.NotPrefixes)
	}
	if !reflect.DeepEqual(params.NotContains, []string{";;"}) {
		t.Fatalf("unexpected NotContains %v", params.NotContains)
	}
}

func TestBind_InList(t *testing.T) {
	var params listItemsParams
	if err := Bind(query{filter: "tag in ['a', 'b']"}, &params, itemsSchema); err != nil {
		t.Fatalf("Bind returned error: %v", err)
	}
	if !reflect.DeepEqual(params.Tags, []string{"a", "b"}) {
		t.Fatalf("unexpected Tags %v", params.Tags)
	}
}

func TestBind_IntegerField(t *testing.T) {
	var params listItemsParams
	if err := Bind(query{filter: "length == 4"}, &params, itemsSchema); err != nil {
		t.Fatalf("Bind returned error: %v", err)
	}
	if params.Length == nil || *params.Length != 4 {
		t.Fatalf("expected Length 4, got %v", params.Length)
	}

	params = listItemsParams{}
	if err := Bind(query{filter: "length == 4.5"}, &params, itemsSchema); err == nil {
		t.Fatalf("expected error for fractional integer literal")
	}
}

func TestBind_CustomSetter(t *testing.T) {
	type withDate struct {
		Day time.Time
	}
	schema := ResourceSchema{
		Filter: map[string]FilterField{
			"date": {
				Kind: KindString,
				Ops:  map[Op]string{OpEQ: "Day"},
				Setter: func(field reflect.Value, v any) error {
					day, err := time.Parse(time.DateOnly, v.(string))
					if err != nil {
						return err
					}
					field.Set(reflect.ValueOf(day))
					return nil
				},
			},
		},
	}

	var params withDate
	if err := Bind(query{filter: "date == '2024-03-05'"}, &params, schema); err != nil {
		t.Fatalf("Bind returned error: %v", err)
	}
	if params.Day.Format(time.DateOnly) != "2024-03-05" {
		t.Fatalf("unexpected day %v", params.Day)
	}

	if err := Bind(query{filter: "date == 'yesterday'"}, &params, schema); err == nil {
		t.Fatalf("expected setter error")
	}
}

func TestBind_Rejections(t *testing.T) {
	cases := map[string]string{
		"or":             "state == 'A' || state == 'B'",
		"unknown field":  "color == 'red'",
		"wrong operator": "state >= 'A'",
		"not on eq":      "!(state == 'A')",
		"not endsWith":   "!name.endsWith('x')",
		"type mismatch":  "price == 'cheap'",
		"empty in list":  "tag in []",
	}
	for name, filter := range cases {
		t.Run(name, func(t *testing.T) {
			var params listItemsParams
			if err := Bind(query{filter: filter}, &params, itemsSchema); err == nil {
				t.Fatalf("expected error for %q", filter)
			}
		})
	}
}

func TestBind_OrderBy(t *testing.T) {
	var params listItemsParams
	if err := Bind(query{orderBy: "name desc, created_at"}, &params, itemsSchema); err != nil {
		t.Fatalf("Bind returned error: %v", err)
	}
	want := OrderParams{PrimaryKey: "name", PrimaryDesc: true, SecondaryKey: "created_at"}
	if params.OrderParams != want {
		t.Fatalf("unexpected order %+v", params.OrderParams)
	}
	if col := itemsSchema.Order.Column(params.PrimaryKey); col != "display_name" {
		t.Fatalf("unexpected column %q", col)
	}
}

func TestBind_OrderByFallbackCollision(t *testing.T) {
	var params listItemsParams
	if err := Bind(query{orderBy: "id desc"}, &params, itemsSchema); err != nil {
		t.Fatalf("Bind returned error: %v", err)
	}
	if params.PrimaryKey != "id" || params.SecondaryKey != "created_at" {
		t.Fatalf("unexpected order %+v", params.OrderParams)
	}
}

func TestBind_OrderByErrors(t *testing.T) {
	for _, raw := range []string{"unknown", "name sideways", "name, name", "name, id, created_at"} {
		var params listItemsParams
		err := Bind(query{orderBy: raw}, &params, itemsSchema)
		if err == nil || !strings.HasPrefix(err.Error(), "order_by:") {
			t.Fatalf("expected order_by error for %q, got %v", raw, err)
		}
	}
}
