package postgres

import "gorm.io/datatypes"

// normalizeChangeColumns converts plain string slices in a column change set
// into their JSONB representation so GORM serializes them with the right
// driver value.
func normalizeChangeColumns(changes map[string]any) map[string]any {
	for column, value := range changes {
		if v, ok := value.([]string); ok {
			changes[column] = datatypes.JSONSlice[string](v)
		}
	}

	return changes
}
