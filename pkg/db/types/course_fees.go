package dbtypes

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// CourseFee pairs a course name with its annual fee, persisted inside a JSONB
// column so the fee list stays free-form per college.
type CourseFee struct {
	Course string `json:"course"`
	Fee    string `json:"fee"`
}

// CourseFeeList is the JSONB collection of per-course fees.
type CourseFeeList []CourseFee

// Value marshals the list into JSON for Postgres.
func (l CourseFeeList) Value() (driver.Value, error) {
	if l == nil {
		return "[]", nil
	}
	buf, err := json.Marshal(l)
	if err != nil {
		return nil, err
	}
	return buf, nil
}

// Scan decodes JSONB into the list.
func (l *CourseFeeList) Scan(value interface{}) error {
	if value == nil {
		*l = nil
		return nil
	}

	var raw []byte
	switch v := value.(type) {
	case string:
		raw = []byte(v)
	case []byte:
		raw = v
	default:
		return fmt.Errorf("course fees: unsupported scan type %T", value)
	}

	result := make(CourseFeeList, 0)
	if err := json.Unmarshal(raw, &result); err != nil {
		return err
	}
	*l = result
	return nil
}
