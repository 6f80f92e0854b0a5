package service

import (
	"strings"

	"devconnect/internal/models"
)

// field pairs an input field name with its submitted value.
type field struct {
	name  string
	value string
}

// requireFields returns a validation error naming every blank field, or nil
// when all are present. A field of only whitespace counts as blank.
func requireFields(fields ...field) error {
	var missing []string
	for _, f := range fields {
		if strings.TrimSpace(f.value) == "" {
			missing = append(missing, f.name+" is required")
		}
	}
	if len(missing) > 0 {
		return models.NewValidationError(strings.Join(missing, ", "))
	}
	return nil
}

// splitSkills parses a comma-separated skills string into an ordered list
// of trimmed entries. Empty segments are dropped.
func splitSkills(skills string) models.StringList {
	parts := strings.Split(skills, ",")
	out := make(models.StringList, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
