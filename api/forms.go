package api

import (
	"log"
	"math"
	"regexp"
	"sort"
	"strconv"
	"strings"
	"time"

	"rewardsadmin/db"
	"rewardsadmin/models"
	"rewardsadmin/utils"
)

// --- Response Envelopes ---

// ListResponse is the body of the brand and voucher list endpoints.
type ListResponse[T any] struct {
	Message string `json:"message"`
	Data    []T    `json:"data"`
}

// RecordResponse is the body returned after creating a record.
type RecordResponse[T any] struct {
	Message string `json:"message"`
	Data    T      `json:"data"`
}

// --- List Policy ---

// listPolicy states how a list endpoint reports a store that cannot be read.
type listPolicy struct {
	// maskReadErrors turns read failures into an empty, successful list so the page still renders.
	maskReadErrors bool
}

var (
	brandsListPolicy   = listPolicy{maskReadErrors: false}
	vouchersListPolicy = listPolicy{maskReadErrors: false}
	couponsListPolicy  = listPolicy{maskReadErrors: true}
)

// readList decodes the whole store, applying the endpoint's masking policy.
// The returned slice is never nil on success, so it always encodes as [].
func readList[T any](store *db.Store, policy listPolicy) ([]T, error) {
	items := []T{}
	if err := store.List(&items); err != nil {
		if policy.maskReadErrors {
			log.Printf("WARN: Masking read failure of %s store, returning an empty list: %v", store.Name(), err)
			return []T{}, nil
		}
		return nil, err
	}
	return items, nil
}

// --- Record Helpers ---

// newRecordHeader assigns a fresh id and creation timestamps.
func newRecordHeader() models.RecordHeader {
	now := time.Now().UTC()
	return models.RecordHeader{
		ID:        utils.GenerateDashlessUUID(),
		CreatedAt: now,
		UpdatedAt: now,
		Version:   0,
	}
}

// --- Form Parsing ---

// parseFloatOrZero parses a numeric form value. Missing, malformed or non-finite input yields 0.
func parseFloatOrZero(value string) float64 {
	f, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}
	return f
}

// parseIntOrZero parses an integer form value, truncating decimals. Anything unparsable or
// outside the int32 range yields 0.
func parseIntOrZero(value string) int {
	value = strings.TrimSpace(value)
	if n, err := strconv.ParseInt(value, 10, 32); err == nil {
		return int(n)
	}
	f := math.Trunc(parseFloatOrZero(value))
	if f > math.MaxInt32 || f < math.MinInt32 {
		return 0
	}
	return int(f)
}

type indexedValue struct {
	index int
	key   string
	value string
}

// indexedFormArray rebuilds the array sent as name[0], name[1], ... form keys.
// Values are placed by their index first and only then are blank entries dropped,
// so a gap (name[0], name[2]) never shifts a value into the wrong slot.
func indexedFormArray(form map[string][]string, name string) []string {
	pattern := regexp.MustCompile(`^` + regexp.QuoteMeta(name) + `\[(\d+)\]$`)

	var entries []indexedValue
	for key, values := range form {
		m := pattern.FindStringSubmatch(key)
		if m == nil || len(values) == 0 {
			continue
		}
		index, err := strconv.Atoi(m[1])
		if err != nil {
			continue
		}
		entries = append(entries, indexedValue{index: index, key: key, value: values[0]})
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].index != entries[j].index {
			return entries[i].index < entries[j].index
		}
		return entries[i].key < entries[j].key // "terms[1]" vs "terms[01]"
	})

	result := make([]string, 0, len(entries))
	for _, e := range entries {
		if strings.TrimSpace(e.value) == "" {
			continue
		}
		result = append(result, e.value)
	}
	return result
}
