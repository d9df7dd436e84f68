package gateway

import "github.com/aws/aws-cdk-go/awscdk/v2/awslambda"

// Node is the minimal surface the registry needs from one resource-tree
// node. The CDK-backed implementation lives in cdk.go; unit tests supply an
// in-memory fake so path resolution is exercised without a jsii runtime.
type Node interface {
	// AddChild creates and returns the child node for a single path segment.
	AddChild(pathPart string) Node

	// AddMethod attaches an integration to this node for the HTTP verb.
	// Duplicate (node, verb) pairs are a platform validation error and are
	// not guarded here.
	AddMethod(verb string, integ Integration, opts *MethodOptions)

	// AddPreflight instructs the platform to generate its automatic OPTIONS
	// preflight for this node.
	AddPreflight(opts CORSOptions)

	// Path returns the node's absolute slash path within the gateway tree.
	Path() string
}

// Platform abstracts the gateway-owning construct. It is the only seam
// between the registry and the infrastructure library.
type Platform interface {
	// Root returns the node for the gateway's root path "/".
	Root() Node

	// URLForPath returns the externally reachable URL for an absolute path.
	URLForPath(path string) string

	// BaseURL returns the gateway's base URL.
	BaseURL() string

	// NewFunction provisions a brand-new compute function. Every call
	// creates a new function; this is never a lookup.
	NewFunction(id string, props *awslambda.FunctionProps) Handler
}

// Handler is a reference to a compute function created by the platform.
type Handler interface {
	Name() string
	Arn() string
}

// IntegrationKind selects the backend behavior bound to a (node, verb) pair.
type IntegrationKind string

const (
	IntegrationMock   IntegrationKind = "mock"
	IntegrationLambda IntegrationKind = "lambda"
	IntegrationHTTP   IntegrationKind = "http"
)

// Integration carries everything a platform needs to materialize one
// method integration. Exactly one of Handler/URL is set depending on Kind.
type Integration struct {
	Kind IntegrationKind

	// Handler is the created function for IntegrationLambda.
	Handler Handler
	// Lambda holds merged proxy options for IntegrationLambda.
	Lambda *LambdaProxyOptions

	// URL is the upstream endpoint for IntegrationHTTP.
	URL string
	// HTTP holds merged proxy options for IntegrationHTTP.
	HTTP *HTTPProxyOptions
}
