package schema

import (
	"employee-api/lib/utils/helpers"

	"github.com/go-openapi/spec"
)

type camelCase struct {
	base Describer
}

// CamelCase wraps base so every property key and required entry of its
// components is rewritten to camelCase. Types, formats and enums are kept.
func CamelCase(base Describer) Describer {
	return camelCase{base: base}
}

func (c camelCase) GetComponents(path, method string) map[string]spec.Schema {
	components := c.base.GetComponents(path, method)
	result := make(map[string]spec.Schema, len(components))
	for name, component := range components {
		component = camelize(component)
		// top level components always carry both lists, possibly empty
		if component.Properties == nil {
			component.Properties = spec.SchemaProperties{}
		}
		if component.Required == nil {
			component.Required = []string{}
		}
		result[name] = component
	}
	return result
}

func camelize(component spec.Schema) spec.Schema {
	if component.Properties != nil {
		properties := make(spec.SchemaProperties, len(component.Properties))
		for key, property := range component.Properties {
			properties[helpers.ToCamelCase(key)] = camelize(property)
		}
		component.Properties = properties
	}
	if component.Required != nil {
		required := make([]string, 0, len(component.Required))
		for _, key := range component.Required {
			required = append(required, helpers.ToCamelCase(key))
		}
		component.Required = required
	}
	if component.Items != nil && component.Items.Schema != nil {
		items := camelize(*component.Items.Schema)
		component.Items = &spec.SchemaOrArray{Schema: &items}
	}
	if component.AdditionalProperties != nil && component.AdditionalProperties.Schema != nil {
		additional := camelize(*component.AdditionalProperties.Schema)
		component.AdditionalProperties = &spec.SchemaOrBool{
			Allows: component.AdditionalProperties.Allows,
			Schema: &additional,
		}
	}
	return component
}
