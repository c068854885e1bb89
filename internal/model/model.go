package model

import (
	"bytes"
	"encoding/json"
	"math"
	"strconv"
	"strings"
	"unicode"
)

// TimestampLayout is the human-readable capture time stored in each record.
const TimestampLayout = "1/2/2006, 3:04:05 PM"

// Hours is a jar total in hours. NaN and infinities encode as JSON null and
// null decodes back to NaN.
type Hours float64

func (h Hours) MarshalJSON() ([]byte, error) {
	f := float64(h)
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return []byte("null"), nil
	}

	return json.Marshal(f)
}

func (h *Hours) UnmarshalJSON(data []byte) error {
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		*h = Hours(math.NaN())

		return nil
	}

	var f float64
	if err := json.Unmarshal(data, &f); err != nil {
		return err
	}

	*h = Hours(f)

	return nil
}

// RecordValue is the minutes of a history record as it was entered.
// Transfers store a number, edits store the raw text from the prompt.
type RecordValue struct {
	raw     string
	numeric bool
}

// NumberValue returns a numeric record value for a whole number of minutes
// of any magnitude, written out in full.
func NumberValue(minutes float64) RecordValue {
	return RecordValue{raw: strconv.FormatFloat(minutes, 'f', -1, 64), numeric: true}
}

// TextValue returns a record value holding raw user input.
func TextValue(s string) RecordValue {
	return RecordValue{raw: s}
}

func (v RecordValue) String() string {
	return v.raw
}

// IsNumber reports whether the value encodes as a JSON number.
func (v RecordValue) IsNumber() bool {
	return v.numeric
}

// Minutes parses the value with ParseLeadingInt.
func (v RecordValue) Minutes() float64 {
	return ParseLeadingInt(v.raw)
}

func (v RecordValue) MarshalJSON() ([]byte, error) {
	if v.numeric {
		return []byte(v.raw), nil
	}

	return json.Marshal(v.raw)
}

func (v *RecordValue) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)

	switch {
	case len(data) > 0 && data[0] == '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}

		*v = TextValue(s)
	case bytes.Equal(data, []byte("null")):
		*v = TextValue("null")
	default:
		f, err := strconv.ParseFloat(string(data), 64)
		if err != nil {
			return err
		}

		*v = RecordValue{raw: strconv.FormatFloat(f, 'f', -1, 64), numeric: true}
	}

	return nil
}

// ParseLeadingInt reads a base-10 integer from the start of s. Leading
// whitespace and one sign are accepted, anything after the digits is
// ignored. It returns NaN when no digit is found.
func ParseLeadingInt(s string) float64 {
	s = strings.TrimLeftFunc(s, unicode.IsSpace)

	sign := 1.0

	if s != "" && (s[0] == '+' || s[0] == '-') {
		if s[0] == '-' {
			sign = -1
		}

		s = s[1:]
	}

	end := 0
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}

	if end == 0 {
		return math.NaN()
	}

	f, err := strconv.ParseFloat(s[:end], 64)
	if err != nil {
		return math.NaN()
	}

	return sign * f
}

// TransferRecord is one entry in the transfer history.
type TransferRecord struct {
	Value RecordValue `json:"value"`
	Date  string      `json:"date"`
}

// Snapshot is the full persisted state of the widget.
type Snapshot struct {
	Jar1Hours Hours            `json:"jar1Hours"`
	Jar2Hours Hours            `json:"jar2Hours"`
	History   []TransferRecord `json:"history"`
}

// Clone returns a copy whose history does not alias s.
func (s Snapshot) Clone() Snapshot {
	history := make([]TransferRecord, len(s.History))
	copy(history, s.History)

	s.History = history

	return s
}
