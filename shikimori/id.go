package shikimori

import (
	"encoding/json"
	"fmt"
	"strconv"
)

// ID is a Shikimori entity identifier. The API is inconsistent about its wire
// form and returns either a JSON number or a numeric string depending on the
// field, so decoding accepts both. It always marshals back as a number.
type ID int64

func (id ID) Int64() int64 {
	return int64(id)
}

func (id ID) String() string {
	return strconv.FormatInt(int64(id), 10)
}

func (id *ID) UnmarshalJSON(data []byte) error {
	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	switch v := raw.(type) {
	case string:
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return fmt.Errorf("id %q is not numeric: %w", v, err)
		}
		*id = ID(n)
		return nil
	case float64:
		*id = ID(int64(v))
		return nil
	default:
		return fmt.Errorf("id must be a number or a numeric string, got %T", raw)
	}
}
