package domain

import (
	"bytes"
	"strconv"
	"strings"

	"github.com/guregu/null/v6"
)

// FlexFloat decodes a JSON number, a numeric string, "null" or null. Anything
// that is not a finite number decodes as unavailable instead of failing the
// whole payload.
type FlexFloat struct {
	null.Float
}

func (f *FlexFloat) UnmarshalJSON(data []byte) error {
	f.Float = null.Float{}

	raw := bytes.TrimSpace(data)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return nil
	}

	text := string(raw)
	if raw[0] == '"' {
		unquoted, err := strconv.Unquote(text)
		if err != nil {
			return nil
		}
		text = strings.TrimSpace(unquoted)
	}

	if text == "" || strings.EqualFold(text, "null") || text == MissingValue {
		return nil
	}

	text = strings.ReplaceAll(text, ",", "")
	value, err := strconv.ParseFloat(text, 64)
	if err != nil || !isFinite(value) {
		return nil
	}

	f.Float = null.FloatFrom(value)
	return nil
}

// FlexString decodes a JSON string or number into its text form.
type FlexString string

func (s *FlexString) UnmarshalJSON(data []byte) error {
	raw := bytes.TrimSpace(data)
	switch {
	case len(raw) == 0 || bytes.Equal(raw, []byte("null")):
		*s = ""
	case raw[0] == '"':
		unquoted, err := strconv.Unquote(string(raw))
		if err != nil {
			return err
		}
		*s = FlexString(unquoted)
	default:
		*s = FlexString(raw)
	}
	return nil
}

func (s FlexString) String() string {
	return string(s)
}

func isFinite(v float64) bool {
	return v-v == 0
}
