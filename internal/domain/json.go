package domain

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// JSONObject произвольный JSON-объект, хранится в БД как JSONB
type JSONObject map[string]interface{}

func (j JSONObject) Value() (driver.Value, error) {
	if j == nil {
		return []byte("{}"), nil
	}
	return json.Marshal(j)
}

func (j *JSONObject) Scan(src interface{}) error {
	return scanJSON(src, j)
}

// StringList список строк, хранится в БД как JSONB-массив
type StringList []string

func (l StringList) Value() (driver.Value, error) {
	if l == nil {
		return []byte("[]"), nil
	}
	return json.Marshal(l)
}

func (l *StringList) Scan(src interface{}) error {
	return scanJSON(src, l)
}

func scanJSON(src interface{}, dest interface{}) error {
	switch v := src.(type) {
	case nil:
		return nil
	case []byte:
		return json.Unmarshal(v, dest)
	case string:
		return json.Unmarshal([]byte(v), dest)
	default:
		return fmt.Errorf("unsupported jsonb source type %T", src)
	}
}
