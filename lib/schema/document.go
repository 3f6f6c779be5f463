package schema

import (
	"net/http"
	"regexp"
	"strings"

	"github.com/go-openapi/spec"
)

var pathParamRe = regexp.MustCompile(`\{([^}]+)\}`)

type Info struct {
	Title       string
	Description string
	Version     string
	BasePath    string
}

// Document builds a swagger 2.0 document for endpoints, taking body
// definitions from describer.
func Document(describer Describer, info Info, endpoints []Endpoint) *spec.Swagger {
	doc := &spec.Swagger{
		SwaggerProps: spec.SwaggerProps{
			Swagger:  "2.0",
			BasePath: info.BasePath,
			Consumes: []string{"application/json"},
			Produces: []string{"application/json"},
			Info: &spec.Info{
				InfoProps: spec.InfoProps{
					Title:       info.Title,
					Description: info.Description,
					Version:     info.Version,
				},
			},
			Paths:       &spec.Paths{Paths: map[string]spec.PathItem{}},
			Definitions: spec.Definitions{},
		},
	}
	for _, endpoint := range endpoints {
		for name, component := range describer.GetComponents(endpoint.Path, endpoint.Method) {
			doc.Definitions[name] = component
		}
		item := doc.Paths.Paths[endpoint.Path]
		setOperation(&item, endpoint.Method, operation(endpoint))
		doc.Paths.Paths[endpoint.Path] = item
	}
	return doc
}

func operation(endpoint Endpoint) *spec.Operation {
	op := spec.NewOperation(operationID(endpoint)).
		WithSummary(endpoint.Summary).
		WithTags(endpoint.Tags...)
	for _, match := range pathParamRe.FindAllStringSubmatch(endpoint.Path, -1) {
		op.AddParam(spec.PathParam(match[1]).Typed("string", "uuid"))
	}
	if name, _, ok := Reflect(endpoint.Request); ok {
		op.AddParam(spec.BodyParam("data", spec.RefSchema("#/definitions/"+name)).AsRequired())
	}

	status := endpoint.Status
	if status == 0 {
		status = http.StatusOK
	}
	response := spec.NewResponse().WithDescription(http.StatusText(status))
	if name, _, ok := Reflect(endpoint.Response); ok {
		ref := spec.RefSchema("#/definitions/" + name)
		if isList(endpoint.Response) {
			ref = spec.ArrayProperty(ref)
		}
		response.WithSchema(ref)
	}
	op.RespondsWith(status, response)
	if pathParamRe.MatchString(endpoint.Path) {
		op.RespondsWith(http.StatusNotFound, spec.NewResponse().WithDescription(http.StatusText(http.StatusNotFound)))
	}
	if endpoint.Request != nil {
		op.RespondsWith(http.StatusBadRequest, spec.NewResponse().WithDescription(http.StatusText(http.StatusBadRequest)))
	}
	return op
}

func setOperation(item *spec.PathItem, method string, op *spec.Operation) {
	switch strings.ToUpper(method) {
	case http.MethodGet:
		item.Get = op
	case http.MethodPost:
		item.Post = op
	case http.MethodPut:
		item.Put = op
	case http.MethodPatch:
		item.Patch = op
	case http.MethodDelete:
		item.Delete = op
	}
}

func operationID(endpoint Endpoint) string {
	parts := []string{strings.ToLower(endpoint.Method)}
	for _, segment := range strings.Split(endpoint.Path, "/") {
		segment = strings.Trim(segment, "{}")
		if segment != "" {
			parts = append(parts, segment)
		}
	}
	return strings.Join(parts, "_")
}
