package env

import (
	"fmt"
	"log/slog"
	"os"
	"reflect"
)

// OverrideStruct sets the string fields of the struct pointed to by v from the
// environment variables named by their 'env' tags.
// Unset or empty variables leave the field unchanged.
func OverrideStruct(v any) error {
	val := reflect.ValueOf(v)

	if val.Kind() != reflect.Ptr || val.IsNil() {
		return fmt.Errorf("OverrideStruct expects a non-nil pointer to a struct, got %T", v)
	}

	val = val.Elem()
	if val.Kind() != reflect.Struct {
		return fmt.Errorf("OverrideStruct expects a pointer to a struct, got %T (%s)", v, val.Kind())
	}

	typ := val.Type()

	for i := range typ.NumField() {
		field := typ.Field(i)
		envVarName := field.Tag.Get("env")
		if envVarName == "" || !field.IsExported() {
			continue
		}

		fieldValue := val.Field(i)
		if fieldValue.Kind() != reflect.String {
			return fmt.Errorf("unsupported field type %s for field %s (env var: %s)", fieldValue.Kind(), field.Name, envVarName)
		}

		envVarValue, ok := os.LookupEnv(envVarName)
		if !ok || envVarValue == "" {
			slog.Debug("Environment variable not set for field", "env", envVarName, "field", field.Name)
			continue
		}

		fieldValue.SetString(envVarValue)
	}
	return nil
}

// Env returns the value of the environment variable named by the key.
// If the variable is not present in the environment, it returns the provided fallback value.
func Env(key, fallback string) string {
	if val, ok := os.LookupEnv(key); ok {
		return val
	}
	return fallback
}
