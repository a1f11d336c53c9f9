package config

import (
	"reflect"
	"strings"
)

// GetSettingsExample uses reflection to generate example settings.
// It stays in sync when new fields are added to Settings.
func GetSettingsExample() map[string]any {
	t := reflect.TypeOf(Settings{})
	example := make(map[string]any)

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		jsonTag := field.Tag.Get("json")
		if jsonTag == "" {
			continue
		}
		jsonName := strings.Split(jsonTag, ",")[0]
		example[jsonName] = generateExampleValue(field.Type, jsonName)
	}

	return example
}

// generateExampleValue creates example values based on type and field name
func generateExampleValue(t reflect.Type, fieldName string) any {
	if t.Kind() == reflect.Ptr {
		switch t.Elem().Kind() {
		case reflect.Bool:
			return fieldName == "debug"
		case reflect.Int:
			switch fieldName {
			case "max_log_files":
				return 1000
			case "command_timeout_secs":
				return 30
			default:
				return 10
			}
		}
	}

	switch t.Kind() {
	case reflect.String:
		switch fieldName {
		case "known_hosts_file":
			return "~/.ssh/known_hosts"
		case "repo_path":
			return "~/code/skills"
		case "user_skills_dir":
			return "~/.claude/skills"
		default:
			return "example"
		}
	case reflect.Slice:
		if fieldName == "excluded_dirs" {
			return []string{"dist", "vendor"}
		}
		return []string{"example1", "example2"}
	}

	return nil
}
