package request

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"
)

// FormNumber is a float64 that also accepts JSON strings.
//
// The dashboard submits money fields from text inputs, so "150000", "" and
// 150000 must all decode. Empty and non-numeric strings decode to zero, which
// matches how the forms treat a cleared field.
type FormNumber float64

func (n *FormNumber) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*n = 0
		return nil
	}

	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		s = strings.TrimSpace(s)
		if s == "" {
			*n = 0
			return nil
		}
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			*n = 0
			return nil
		}
		*n = FormNumber(f)
		return nil
	}

	var f float64
	if err := json.Unmarshal(data, &f); err != nil {
		return err
	}
	*n = FormNumber(f)
	return nil
}

func (n FormNumber) Float64() float64 {
	return float64(n)
}
