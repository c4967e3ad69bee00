package types

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"
)

// OptionalInt decodes a JSON number, a numeric string, "" or null. Form
// driven clients send numbers as strings and empty inputs as "".
type OptionalInt struct {
	Value int
	Set   bool
}

func (o *OptionalInt) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)

	if bytes.Equal(data, []byte("null")) {
		*o = OptionalInt{}
		return nil
	}

	raw := string(data)

	if strings.HasPrefix(raw, `"`) {
		unquoted, err := strconv.Unquote(raw)
		if err != nil {
			return fmt.Errorf("invalid integer %s", raw)
		}
		raw = strings.TrimSpace(unquoted)
		if raw == "" {
			*o = OptionalInt{}
			return nil
		}
	}

	n, err := strconv.Atoi(raw)
	if err != nil {
		return fmt.Errorf("invalid integer %s", data)
	}

	*o = OptionalInt{Value: n, Set: true}
	return nil
}

func (o OptionalInt) MarshalJSON() ([]byte, error) {
	if !o.Set {
		return []byte("null"), nil
	}
	return []byte(strconv.Itoa(o.Value)), nil
}

// Ptr returns nil when the value was absent.
func (o OptionalInt) Ptr() *int {
	if !o.Set {
		return nil
	}
	v := o.Value
	return &v
}

// Uint returns 0 for absent or negative values.
func (o OptionalInt) Uint() uint {
	if !o.Set || o.Value < 0 {
		return 0
	}
	return uint(o.Value)
}
