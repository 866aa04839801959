//go:build unit || e2e

package testutil

// Field overrides (or deletes, when value is nil) one key in a request map.
func Field(key string, value any) func(m map[string]any) {
	return func(m map[string]any) {
		if value == nil {
			delete(m, key)
		} else {
			m[key] = value
		}
	}
}
