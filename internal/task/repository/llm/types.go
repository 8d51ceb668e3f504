package llm

import (
	"encoding/json"
	"strconv"
	"strings"
)

// parsedTask is one element of the JSON array the model returns.
type parsedTask struct {
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Impact      flexString `json:"impact"`
	Deadline    flexString `json:"deadline"`
	Effort      flexString `json:"effort"`
	Blocked     flexString `json:"blocked"`
	Tags        flexTags   `json:"tags"`
}

// flexString accepts a JSON string, number, bool or null.
type flexString string

func (f *flexString) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*f = flexString(s)
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(data, &n); err == nil {
		*f = flexString(n.String())
		return nil
	}

	var b bool
	if err := json.Unmarshal(data, &b); err == nil {
		*f = flexString(strconv.FormatBool(b))
		return nil
	}

	// null and anything else read as empty
	*f = ""
	return nil
}

// flexTags accepts a JSON array of strings or a single comma-separated string.
type flexTags []string

func (f *flexTags) UnmarshalJSON(data []byte) error {
	var list []string
	if err := json.Unmarshal(data, &list); err == nil {
		*f = list
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*f = strings.Split(s, ",")
		return nil
	}

	*f = nil
	return nil
}
