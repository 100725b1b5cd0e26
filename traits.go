package userpilot

import "reflect"

const (
	createdAtKey    = "createdAt"
	createdAtTarget = "created_at"
)

// sanitizeUserTraits prepares identify traits for Userpilot.
func sanitizeUserTraits(traits map[string]any) map[string]any {
	return sanitizeTraits(traits)
}

// sanitizeGroupTraits prepares group traits for the Userpilot company object.
func sanitizeGroupTraits(traits map[string]any) map[string]any {
	return sanitizeTraits(traits)
}

// sanitizeTraits drops nil values and renames createdAt to created_at.
// A nil map stays nil; the input is never modified.
func sanitizeTraits(traits map[string]any) map[string]any {
	if traits == nil {
		return nil
	}

	mapped := make(map[string]any, len(traits))
	for key, value := range traits {
		if isNil(value) {
			continue
		}
		if key == createdAtKey {
			key = createdAtTarget
		}
		mapped[key] = value
	}
	return mapped
}

func isNil(value any) bool {
	if value == nil {
		return true
	}
	switch v := reflect.ValueOf(value); v.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Interface, reflect.Func, reflect.Chan:
		return v.IsNil()
	}
	return false
}
