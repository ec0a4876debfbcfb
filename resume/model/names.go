package model

import (
	"reflect"
	"strings"
)

// jsonFieldName reports the JSON key for a struct field so validation errors
// read like the request payload rather than Go identifiers.
func jsonFieldName(fld reflect.StructField) string {
	name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
	switch name {
	case "-":
		return ""
	case "":
		return fld.Name
	default:
		return name
	}
}
