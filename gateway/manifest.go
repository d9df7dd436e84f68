package gateway

import (
	"fmt"
	"io"

	"github.com/aws/aws-cdk-go/awscdk/v2/awslambda"
	"gopkg.in/yaml.v3"
)

// Manifest is the declarative twin of the fluent API: a tree of
// path → configuration descriptors, typically loaded from YAML:
//
//	routes:
//	  - path: /pets
//	    cors:
//	      allow_origins: ["https://app.example"]
//	      allow_methods: ["GET", "POST"]
//	    methods:
//	      - verb: GET
//	        kind: lambda
//	        function: list-pets
//	      - verb: POST
//	        kind: http
//	        url: https://upstream.example/pets
//	  - path: /status
//	    methods:
//	      - verb: GET
//	        kind: mock
//
// Lambda routes reference function definitions by name; the caller supplies
// the actual definitions to Apply, since code assets cannot live in YAML.
type Manifest struct {
	Routes []RouteSpec `yaml:"routes"`
}

// RouteSpec configures one path.
type RouteSpec struct {
	Path    string       `yaml:"path"`
	CORS    *CORSOptions `yaml:"cors,omitempty"`
	Methods []MethodSpec `yaml:"methods"`
}

// MethodSpec configures one (verb, integration) pair on a route.
type MethodSpec struct {
	Verb string `yaml:"verb"`
	Kind string `yaml:"kind"`

	// URL is required for kind "http".
	URL string `yaml:"url,omitempty"`

	// Function names a definition passed to Apply; required for kind "lambda".
	Function string `yaml:"function,omitempty"`

	HTTPOptions   *HTTPProxyOptions `yaml:"-"`
	MethodOptions *MethodOptions    `yaml:"-"`
}

// LoadManifest decodes and validates a YAML manifest.
func LoadManifest(r io.Reader) (*Manifest, error) {
	var m Manifest
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&m); err != nil {
		return nil, newBadManifest(fmt.Sprintf("decode: %v", err))
	}
	if err := m.validate(); err != nil {
		return nil, err
	}
	return &m, nil
}

func (m *Manifest) validate() error {
	if len(m.Routes) == 0 {
		return newBadManifest("manifest has no routes")
	}
	for _, route := range m.Routes {
		if route.Path == "" {
			return newBadManifest("route is missing a path")
		}
		if len(route.Methods) == 0 {
			return newBadManifest(fmt.Sprintf("route %q has no methods", route.Path))
		}
		for _, method := range route.Methods {
			if method.Verb == "" {
				return newBadManifest(fmt.Sprintf("route %q has a method without a verb", route.Path))
			}
			switch method.Kind {
			case "mock":
			case "http":
				if method.URL == "" {
					return newBadManifest(fmt.Sprintf("route %q %s: http method requires a url", route.Path, method.Verb))
				}
			case "lambda":
				if method.Function == "" {
					return newBadManifest(fmt.Sprintf("route %q %s: lambda method requires a function name", route.Path, method.Verb))
				}
			default:
				return newBadManifest(fmt.Sprintf("route %q %s: unknown kind %q", route.Path, method.Verb, method.Kind))
			}
		}
	}
	return nil
}

// Apply resolves every route and attaches its methods. functions maps the
// names referenced by lambda methods to their definitions; a missing name
// fails before any platform mutation for that route's remaining methods, so
// manifests should be validated in tests before being used in a pass.
func (m *Manifest) Apply(reg *Registry, functions map[string]*awslambda.FunctionProps) error {
	if err := m.validate(); err != nil {
		return err
	}
	for _, route := range m.Routes {
		for _, method := range route.Methods {
			if method.Kind == "lambda" {
				if _, ok := functions[method.Function]; !ok {
					return newBadManifest(fmt.Sprintf("route %q %s: no definition supplied for function %q", route.Path, method.Verb, method.Function))
				}
			}
		}
	}

	for _, route := range m.Routes {
		h, err := reg.Resolve(route.Path)
		if err != nil {
			return err
		}
		if route.CORS != nil {
			h.AddCORS(*route.CORS)
		}
		for _, method := range route.Methods {
			switch method.Kind {
			case "mock":
				h.RespondMock(method.Verb)
			case "http":
				h.ProxyHTTP(method.Verb, method.URL, method.HTTPOptions, method.MethodOptions)
			case "lambda":
				h.ProxyLambda(method.Verb, functions[method.Function])
			}
		}
	}
	return nil
}
