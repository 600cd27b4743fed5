package riot

import (
	"fmt"
	"reflect"
	"sort"
	"strings"
)

// DefaultSeparator is the indentation unit used by String().
const DefaultSeparator = "    "

// Render produces a human-readable representation of a decoded payload.
// Struct fields appear in declaration order, one per line, so the output is
// deterministic for a given value. sep is the indentation unit.
func Render(v any, sep string) string {
	return renderValue(reflect.ValueOf(v), 0, sep)
}

func renderValue(v reflect.Value, level int, sep string) string {
	switch v.Kind() {
	case reflect.Invalid:
		return "<nil>"
	case reflect.Pointer, reflect.Interface:
		if v.IsNil() {
			return "<nil>"
		}
		return renderValue(v.Elem(), level, sep)
	case reflect.Struct:
		return renderStruct(v, level, sep)
	case reflect.Slice, reflect.Array:
		return renderList(v, level, sep)
	case reflect.Map:
		return renderMap(v, level, sep)
	case reflect.String:
		return v.String()
	default:
		return fmt.Sprintf("%v", v.Interface())
	}
}

func renderStruct(v reflect.Value, level int, sep string) string {
	t := v.Type()
	fields := make([]string, 0, t.NumField())
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if !f.IsExported() {
			continue
		}
		fields = append(fields, fmt.Sprintf("%s = %s", fieldLabel(f), renderValue(v.Field(i), level+1, sep)))
	}
	if len(fields) == 0 {
		return t.Name() + "()"
	}

	indent := strings.Repeat(sep, level+1)
	return fmt.Sprintf("%s(\n%s%s\n%s)", t.Name(), indent, strings.Join(fields, ",\n"+indent), strings.Repeat(sep, level))
}

func renderList(v reflect.Value, level int, sep string) string {
	if v.Len() == 0 {
		return "[]"
	}
	elems := make([]string, 0, v.Len())
	for i := 0; i < v.Len(); i++ {
		elems = append(elems, renderValue(v.Index(i), level+1, sep))
	}

	indent := strings.Repeat(sep, level+2)
	return fmt.Sprintf("[\n%s%s\n%s]", indent, strings.Join(elems, ",\n"+indent), strings.Repeat(sep, level+1))
}

func renderMap(v reflect.Value, level int, sep string) string {
	if v.Len() == 0 {
		return "{}"
	}
	keys := v.MapKeys()
	sort.Slice(keys, func(i, j int) bool {
		return fmt.Sprintf("%v", keys[i].Interface()) < fmt.Sprintf("%v", keys[j].Interface())
	})

	entries := make([]string, 0, len(keys))
	for _, k := range keys {
		entries = append(entries, fmt.Sprintf("%v: %s", k.Interface(), renderValue(v.MapIndex(k), level+1, sep)))
	}

	indent := strings.Repeat(sep, level+2)
	return fmt.Sprintf("{\n%s%s\n%s}", indent, strings.Join(entries, ",\n"+indent), strings.Repeat(sep, level+1))
}

// fieldLabel prefers the wire name from the json tag so rendered output lines
// up with the API documentation.
func fieldLabel(f reflect.StructField) string {
	tag := f.Tag.Get("json")
	if tag == "" || tag == "-" {
		return f.Name
	}
	if idx := strings.Index(tag, ","); idx >= 0 {
		tag = tag[:idx]
	}
	if tag == "" {
		return f.Name
	}
	return tag
}
