package schema

import (
	"encoding/json"
	"reflect"
	"strings"
	"time"

	"employee-api/lib/utils/helpers"

	"github.com/go-openapi/spec"
)

// Describer produces the named schema components used by one endpoint.
type Describer interface {
	GetComponents(path, method string) map[string]spec.Schema
}

// Endpoint describes one routed operation. Path uses swagger templating, e.g. /employees/{id}.
type Endpoint struct {
	Path     string
	Method   string
	Summary  string
	Tags     []string
	Request  any
	Response any
	Status   int
}

func (e Endpoint) matches(path, method string) bool {
	return e.Path == path && strings.EqualFold(e.Method, method)
}

// AutoSchema reflects request and response types into components keyed by
// type name. Property keys are the canonical snake_case field names.
type AutoSchema struct {
	endpoints []Endpoint
}

func NewAutoSchema(endpoints ...Endpoint) *AutoSchema {
	return &AutoSchema{endpoints: endpoints}
}

func (a *AutoSchema) Endpoints() []Endpoint {
	return a.endpoints
}

func (a *AutoSchema) GetComponents(path, method string) map[string]spec.Schema {
	components := map[string]spec.Schema{}
	for _, endpoint := range a.endpoints {
		if !endpoint.matches(path, method) {
			continue
		}
		for _, body := range []any{endpoint.Request, endpoint.Response} {
			name, component, ok := Reflect(body)
			if ok {
				components[name] = component
			}
		}
	}
	return components
}

var (
	rawMessageType = reflect.TypeOf(json.RawMessage{})
	timeType       = reflect.TypeOf(time.Time{})
)

// Reflect returns the component name and schema of a struct value. Slices
// are described by their element type.
func Reflect(value any) (string, spec.Schema, bool) {
	if value == nil {
		return "", spec.Schema{}, false
	}
	t := reflect.TypeOf(value)
	for t.Kind() == reflect.Pointer || t.Kind() == reflect.Slice {
		t = t.Elem()
	}
	if t.Kind() != reflect.Struct || t.Name() == "" {
		return "", spec.Schema{}, false
	}
	return t.Name(), *structSchema(t), true
}

func isList(value any) bool {
	t := reflect.TypeOf(value)
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	return t.Kind() == reflect.Slice
}

func structSchema(t reflect.Type) *spec.Schema {
	result := &spec.Schema{}
	result.Typed("object", "")
	result.Properties = spec.SchemaProperties{}
	addFields(result, t)
	return result
}

func addFields(result *spec.Schema, t reflect.Type) {
	for idx := 0; idx < t.NumField(); idx++ {
		field := t.Field(idx)
		tag := field.Tag.Get("json")
		if tag == "-" {
			continue
		}
		name := strings.Split(tag, ",")[0]
		if field.Anonymous && name == "" {
			embedded := field.Type
			if embedded.Kind() == reflect.Pointer {
				embedded = embedded.Elem()
			}
			if embedded.Kind() == reflect.Struct {
				addFields(result, embedded)
				continue
			}
		}
		if !field.IsExported() {
			continue
		}
		if name == "" {
			name = field.Name
		}
		key := helpers.ToSnakeCase(name)

		property := typeSchema(field.Type)
		applyTags(property, field.Tag)
		result.Properties[key] = *property
		if field.Tag.Get("validate") == "required" {
			result.Required = append(result.Required, key)
		}
	}
}

func typeSchema(t reflect.Type) *spec.Schema {
	if t == rawMessageType {
		return &spec.Schema{}
	}
	if t == timeType {
		return spec.DateTimeProperty()
	}
	switch t.Kind() {
	case reflect.Pointer:
		return typeSchema(t.Elem())
	case reflect.String:
		return spec.StringProperty()
	case reflect.Bool:
		return spec.BoolProperty()
	case reflect.Int8, reflect.Int16, reflect.Int32, reflect.Uint8, reflect.Uint16:
		return spec.Int32Property()
	case reflect.Int, reflect.Int64, reflect.Uint, reflect.Uint32, reflect.Uint64:
		return spec.Int64Property()
	case reflect.Float32:
		return spec.Float32Property()
	case reflect.Float64:
		return spec.Float64Property()
	case reflect.Slice, reflect.Array:
		return spec.ArrayProperty(typeSchema(t.Elem()))
	case reflect.Map:
		return spec.MapProperty(typeSchema(t.Elem()))
	case reflect.Struct:
		return structSchema(t)
	}
	return &spec.Schema{}
}

func applyTags(property *spec.Schema, tag reflect.StructTag) {
	if format := tag.Get("format"); format != "" {
		property.Format = format
	}
	if enums := tag.Get("enums"); enums != "" {
		values := []any{}
		for _, item := range strings.Split(enums, ",") {
			values = append(values, item)
		}
		property.WithEnum(values...)
	}
	if value := tag.Get("default"); value != "" {
		property.WithDefault(value)
	}
	if description := tag.Get("description"); description != "" {
		property.WithDescription(description)
	}
	if tag.Get("readonly") == "true" {
		property.ReadOnly = true
	}
}
