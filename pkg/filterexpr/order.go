package filterexpr

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
)

// OrderParams is embedded in params structs that accept an order_by clause.
type OrderParams struct {
	PrimaryKey    string
	PrimaryDesc   bool
	SecondaryKey  string
	SecondaryDesc bool
}

// ParseOrderBy parses "key [asc|desc], key2 [asc|desc]" against the schema, falling back to
// schema defaults for missing keys.
func ParseOrderBy(raw string, schema OrderSchema) (OrderParams, error) { //nolint:gocognit,gocyclo // parsing DSL entails validation branches for readability
	if schema.DefaultPrimary == "" {
		return OrderParams{}, errors.New("order schema default primary key required")
	}
	if schema.FallbackKey == "" {
		return OrderParams{}, errors.New("order schema fallback key required")
	}
	if _, ok := schema.Fields[schema.DefaultPrimary]; !ok {
		return OrderParams{}, fmt.Errorf("order key %q missing from schema fields", schema.DefaultPrimary)
	}
	if _, ok := schema.Fields[schema.FallbackKey]; !ok {
		return OrderParams{}, fmt.Errorf("fallback order key %q missing from schema fields", schema.FallbackKey)
	}

	ord := OrderParams{
		PrimaryKey:    schema.DefaultPrimary,
		PrimaryDesc:   schema.DefaultPrimaryDesc,
		SecondaryKey:  schema.FallbackKey,
		SecondaryDesc: schema.FallbackDesc,
	}

	raw = strings.TrimSpace(raw)
	if raw == "" {
		return ord, nil
	}

	seen := make(map[string]struct{}, 2)
	idx := 0
	for _, seg := range strings.Split(raw, ",") {
		parts := strings.Fields(seg)
		if len(parts) == 0 {
			continue
		}
		key := parts[0]
		if _, ok := schema.Fields[key]; !ok {
			return OrderParams{}, fmt.Errorf("field %q cannot be used for ordering", key)
		}

		desc, err := parseDirection(key, parts[1:])
		if err != nil {
			return OrderParams{}, err
		}

		if _, dup := seen[key]; dup {
			return OrderParams{}, fmt.Errorf("duplicate order key %q", key)
		}
		seen[key] = struct{}{}

		switch idx {
		case 0:
			ord.PrimaryKey, ord.PrimaryDesc = key, desc
			ord.SecondaryKey, ord.SecondaryDesc = schema.FallbackKey, schema.FallbackDesc
		case 1:
			ord.SecondaryKey, ord.SecondaryDesc = key, desc
		default:
			return OrderParams{}, errors.New("order_by supports at most two keys")
		}
		idx++
	}

	if ord.SecondaryKey == ord.PrimaryKey {
		// the fallback collides with the chosen primary; the default primary keeps ordering stable
		ord.SecondaryKey, ord.SecondaryDesc = schema.DefaultPrimary, schema.DefaultPrimaryDesc
		if ord.SecondaryKey == ord.PrimaryKey {
			ord.SecondaryKey = ""
		}
	}

	return ord, nil
}

func parseDirection(key string, rest []string) (bool, error) {
	switch len(rest) {
	case 0:
		return false, nil
	case 1:
		switch strings.ToLower(rest[0]) {
		case "asc":
			return false, nil
		case "desc":
			return true, nil
		default:
			return false, fmt.Errorf("invalid direction %q for field %q", rest[0], key)
		}
	default:
		return false, fmt.Errorf("invalid order segment for field %q", key)
	}
}

func setOrderParams(binding any, ord OrderParams) error {
	target, err := structTarget(binding)
	if err != nil {
		return err
	}
	field := target.FieldByName("OrderParams")
	if !field.IsValid() {
		return fmt.Errorf("params struct %s does not embed OrderParams", target.Type())
	}
	if !field.CanSet() || field.Type() != reflect.TypeOf(ord) {
		return fmt.Errorf("cannot set OrderParams on params struct %s", target.Type())
	}
	field.Set(reflect.ValueOf(ord))
	return nil
}
