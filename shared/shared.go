package shared

import (
	"context"
	"encoding/json"
	"fmt"
	"hash/fnv"
	"math"
	"palmera/shared/cache"
	"palmera/shared/constant"
	"palmera/shared/dto"
	"palmera/shared/timezone"
	"reflect"
	"strings"

	"github.com/rs/zerolog/log"
)

func CalculateTotalPage(total, limit int) (res int) {
	if total == 0 || limit <= 0 {
		res = 1
	} else {
		res = int(math.Ceil(float64(total) / float64(limit)))
	}

	return res
}

// TransformFields converts the non-zero fields of a struct into a map of
// updated columns keyed by db tag, stamping modified_at/modified_by.
func TransformFields(data interface{}, username string) map[string]any {
	val := reflect.ValueOf(data)
	typ := reflect.TypeOf(data)

	updatedFields := make(map[string]any)

	for index := range val.NumField() {
		field := val.Field(index)
		if field.IsZero() {
			continue
		}

		fieldName := typ.Field(index).Tag.Get("db")
		if fieldName == "" {
			continue
		}

		updatedFields[fieldName] = field.Interface()
	}

	updatedFields[constant.FieldModifiedAt] = timezone.Now()
	updatedFields[constant.FieldModifiedBy] = username

	return updatedFields
}

func FilterByID(id, fieldID, table string) dto.FilterGroup {
	return dto.FilterGroup{
		Operator: dto.FilterGroupOperatorAnd,
		Filters: []any{
			dto.Filter{
				Field:    fieldID,
				Value:    id,
				Operator: dto.FilterOperatorEq,
				Table:    table,
			},
		},
	}
}

func BuildCacheKey(parts ...string) string {
	return strings.Join(parts, ":")
}

// BuildCacheKeyWithQuery derives a stable key from the pagination params
// and filter so distinct listings cache independently.
func BuildCacheKeyWithQuery(prefix string, params dto.QueryParams, filter dto.FilterGroup) string {
	where, args := filter.GetWhereClause()

	payload, err := json.Marshal(struct {
		Params dto.QueryParams `json:"params"`
		Where  string          `json:"where"`
		Args   map[string]any  `json:"args"`
	}{params, where, args})
	if err != nil {
		log.Error().Err(err).Msg("failed to marshal cache key payload")

		return prefix
	}

	hasher := fnv.New64a()
	_, _ = hasher.Write(payload)

	return fmt.Sprintf("%s:%x", prefix, hasher.Sum64())
}

// InvalidateCaches clears every key under the given prefix; failures are
// logged and swallowed since stale cache entries expire on their own.
func InvalidateCaches(ctx context.Context, c cache.RedisCache, prefix string) {
	if err := c.Clear(ctx, prefix+constant.Asterix); err != nil {
		log.Error().Err(err).Str("prefix", prefix).Msg("failed to invalidate caches")
	}
}

// ConvertStringToBool maps "true"/"false" query values onto a *bool,
// returning nil for anything else so the filter is skipped.
func ConvertStringToBool(value string) *bool {
	switch strings.ToLower(value) {
	case "true":
		b := true

		return &b
	case "false":
		b := false

		return &b
	}

	return nil
}
