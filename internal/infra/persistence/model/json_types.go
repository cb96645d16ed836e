package model

import (
	"database/sql/driver"
	"encoding/json"

	"github.com/pkg/errors"
)

// StringList stores a []string as a JSONB column.
type StringList []string

// Value implements driver.Valuer.
func (l StringList) Value() (driver.Value, error) {
	if l == nil {
		return "[]", nil
	}

	data, err := json.Marshal([]string(l))
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal string list")
	}

	return string(data), nil
}

// Scan implements sql.Scanner.
func (l *StringList) Scan(src any) error {
	if src == nil {
		*l = nil

		return nil
	}

	var data []byte
	switch v := src.(type) {
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		return errors.Errorf("unsupported source type %T for string list", src)
	}

	return errors.Wrap(json.Unmarshal(data, (*[]string)(l)), "failed to unmarshal string list")
}

// IntMap stores a map[string]int as a JSONB column.
type IntMap map[string]int

// Value implements driver.Valuer.
func (m IntMap) Value() (driver.Value, error) {
	if m == nil {
		return "{}", nil
	}

	data, err := json.Marshal(map[string]int(m))
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal int map")
	}

	return string(data), nil
}

// Scan implements sql.Scanner.
func (m *IntMap) Scan(src any) error {
	if src == nil {
		*m = nil

		return nil
	}

	var data []byte
	switch v := src.(type) {
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		return errors.Errorf("unsupported source type %T for int map", src)
	}

	return errors.Wrap(json.Unmarshal(data, (*map[string]int)(m)), "failed to unmarshal int map")
}
