package swaggerkit

import (
	"encoding/json"
	"net/http"
	"sort"
	"strings"
	"sync"

	"kudoswall/internal/core/version"
)

// Operation documents one route relative to the /api/v1 server url
type Operation struct {
	Method  string
	Path    string
	Tag     string
	Summary string
	// Body is an example request payload, nil for body-less routes
	Body any
	// Params lists path parameter names, e.g. {"id"}
	Params []string
}

// SpecMutator tweaks the assembled spec before it is served
type SpecMutator func(map[string]any)

var (
	mu       sync.RWMutex
	ops      []Operation
	secured  = map[string]bool{}
	mutators []SpecMutator
)

// Document registers operations; modules call this from MountRoutes
func Document(o ...Operation) {
	mu.Lock()
	ops = append(ops, o...)
	mu.Unlock()
}

// MarkSecured flags path+method as requiring a bearer token
func MarkSecured(path, method string) {
	mu.Lock()
	secured[strings.ToLower(method)+" "+path] = true
	mu.Unlock()
}

// Register adds a spec mutator
func Register(m SpecMutator) {
	if m == nil {
		return
	}
	mu.Lock()
	mutators = append(mutators, m)
	mu.Unlock()
}

// Reset clears every registration; tests only
func Reset() {
	mu.Lock()
	ops, secured, mutators = nil, map[string]bool{}, nil
	mu.Unlock()
}

// Spec assembles the OpenAPI 3.0 document from the registered operations
func Spec() map[string]any {
	mu.RLock()
	defer mu.RUnlock()

	paths := map[string]any{}
	for _, o := range ops {
		node, _ := paths[o.Path].(map[string]any)
		if node == nil {
			node = map[string]any{}
			paths[o.Path] = node
		}
		method := strings.ToLower(o.Method)
		op := map[string]any{
			"summary":   o.Summary,
			"tags":      []any{o.Tag},
			"responses": defaultResponses(),
		}
		if o.Body != nil {
			op["requestBody"] = map[string]any{
				"required": true,
				"content": map[string]any{
					"application/json": map[string]any{"example": o.Body},
				},
			}
		}
		if len(o.Params) > 0 {
			params := make([]any, 0, len(o.Params))
			for _, p := range o.Params {
				params = append(params, map[string]any{
					"name": p, "in": "path", "required": true,
					"schema": map[string]any{"type": "string"},
				})
			}
			op["parameters"] = params
		}
		if secured[method+" "+o.Path] {
			op["security"] = []any{map[string]any{"bearerAuth": []any{}}}
		}
		node[method] = op
	}

	spec := map[string]any{
		"openapi": "3.0.3",
		"info": map[string]any{
			"title":   "Kudos Wall API",
			"version": version.Info().Version,
		},
		"servers": []any{map[string]any{"url": "/api/v1"}},
		"paths":   paths,
		"tags":    tagList(),
		"components": map[string]any{
			"securitySchemes": map[string]any{
				"bearerAuth": map[string]any{"type": "http", "scheme": "bearer"},
			},
			"schemas": map[string]any{"ErrorResponse": errorSchema()},
		},
	}
	for _, m := range mutators {
		m(spec)
	}
	return spec
}

func tagList() []any {
	seen := map[string]bool{}
	var names []string
	for _, o := range ops {
		if o.Tag != "" && !seen[o.Tag] {
			seen[o.Tag] = true
			names = append(names, o.Tag)
		}
	}
	sort.Strings(names)
	out := make([]any, 0, len(names))
	for _, n := range names {
		out = append(out, map[string]any{"name": n})
	}
	return out
}

func errorSchema() map[string]any {
	return map[string]any{
		"type": "object",
		"properties": map[string]any{
			"status_code": map[string]any{"type": "integer"},
			"status":      map[string]any{"type": "string"},
			"code":        map[string]any{"type": "integer"},
			"error":       map[string]any{"type": "string"},
			"field":       map[string]any{"type": "string"},
			"request_id":  map[string]any{"type": "string"},
		},
		"required": []any{"status_code", "status"},
	}
}

func defaultResponses() map[string]any {
	ref := func(desc string) map[string]any {
		return map[string]any{
			"description": desc,
			"content": map[string]any{
				"application/json": map[string]any{
					"schema": map[string]any{"$ref": "#/components/schemas/ErrorResponse"},
				},
			},
		}
	}
	return map[string]any{
		"200": map[string]any{"description": "OK"},
		"400": ref("Bad Request"),
		"500": ref("Internal Server Error"),
	}
}

func serveDocJSON() http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		w.Header().Set("Cache-Control", "no-store")
		_ = json.NewEncoder(w).Encode(Spec())
	}
}
