package api

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"
)

// ConnectivityError is returned when no usable answer came back from the API:
// transport failures, timeouts and bodies that are not JSON.
type ConnectivityError struct {
	Op  string
	Err error
}

func (e *ConnectivityError) Error() string {
	return fmt.Sprintf("%s: connectivity: %v", e.Op, e.Err)
}

func (e *ConnectivityError) Unwrap() error {
	return e.Err
}

// BusinessError is returned when the API answered but did not report success.
type BusinessError struct {
	Op      string
	Status  int
	Err     string
	Message string
	Details map[string][]string
}

func (e *BusinessError) Error() string {
	return fmt.Sprintf("%s: status %d: %s", e.Op, e.Status, e.Text("request rejected"))
}

// Text returns the server supplied error, then message, then fallback.
func (e *BusinessError) Text(fallback string) string {
	if e == nil {
		return fallback
	}
	if strings.TrimSpace(e.Err) != "" {
		return e.Err
	}
	if strings.TrimSpace(e.Message) != "" {
		return e.Message
	}
	return fallback
}

// DetailLines flattens the field level details, ordered by field name.
func (e *BusinessError) DetailLines() []string {
	if e == nil || len(e.Details) == 0 {
		return nil
	}

	fields := make([]string, 0, len(e.Details))
	for field := range e.Details {
		fields = append(fields, field)
	}
	sort.Strings(fields)

	lines := make([]string, 0, len(fields))
	for _, field := range fields {
		lines = append(lines, e.Details[field]...)
	}
	return lines
}

func newBusinessError(op string, status int, body map[string]any) *BusinessError {
	return &BusinessError{
		Op:      op,
		Status:  status,
		Err:     valueAsString(body["error"]),
		Message: valueAsString(body["message"]),
		Details: flattenDetails(body["details"]),
	}
}

// flattenDetails turns {"field": ["a", "b"]} into a map of string lists.
// Nested values are flattened one level, scalars become a single entry.
func flattenDetails(v any) map[string][]string {
	raw, ok := v.(map[string]any)
	if !ok || len(raw) == 0 {
		return nil
	}

	details := make(map[string][]string, len(raw))
	for field, value := range raw {
		switch typed := value.(type) {
		case []any:
			for _, item := range typed {
				if s := valueAsString(item); s != "" {
					details[field] = append(details[field], s)
				}
			}
		default:
			if s := valueAsString(typed); s != "" {
				details[field] = append(details[field], s)
			}
		}
	}
	return details
}

func valueAsString(v any) string {
	if v == nil {
		return ""
	}

	switch typed := v.(type) {
	case string:
		return typed
	case fmt.Stringer:
		return typed.String()
	case float64, bool:
		return fmt.Sprintf("%v", typed)
	default:
		bytes, err := json.Marshal(v)
		if err != nil {
			return fmt.Sprintf("%v", v)
		}
		return string(bytes)
	}
}
