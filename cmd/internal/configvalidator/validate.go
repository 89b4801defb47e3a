package configvalidator

import (
	"errors"
	"fmt"
	"reflect"
)

// ErrUnknownField returns when an unknown field appears in the config.
var ErrUnknownField = errors.New("unknown field")

// CheckForUnknownFields validates the config map against the config struct.
// Struct fields are matched by `mapstructure` tag or by name if the tag is
// missing. Nested sections MUST be described by nested structs.
func CheckForUnknownFields(configMap map[string]any, config any) error {
	return checkForUnknownFields(configMap, reflect.TypeOf(config), "")
}

func checkForUnknownFields(configMap map[string]any, t reflect.Type, currentPath string) error {
	expectedFields := getFieldsFromStruct(t)

	for key, val := range configMap {
		fullPath := key
		if currentPath != "" {
			fullPath = currentPath + "." + key
		}

		field, exists := expectedFields[key]
		if !exists {
			return fmt.Errorf("%w: %s", ErrUnknownField, fullPath)
		}

		if val == nil {
			// empty section or value
			continue
		}

		nestedMap, isMap := val.(map[string]any)
		isStruct := field.Type.Kind() == reflect.Struct

		if isMap != isStruct {
			return fmt.Errorf("%w: %s", ErrUnknownField, fullPath)
		}

		if isMap {
			if err := checkForUnknownFields(nestedMap, field.Type, fullPath); err != nil {
				return err
			}
		}
	}

	return nil
}

func getFieldsFromStruct(t reflect.Type) map[string]reflect.StructField {
	fields := make(map[string]reflect.StructField)
	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		if tag := field.Tag.Get("mapstructure"); tag != "" {
			fields[tag] = field
		} else {
			fields[field.Name] = field
		}
	}
	return fields
}
