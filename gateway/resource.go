package gateway

import (
	"strings"

	"github.com/aws/aws-cdk-go/awscdk/v2/awslambda"

	"github.com/theory-cloud/gatetheory/pkg/naming"
)

// Resource wraps exactly one resource-tree node. Configuration methods
// return the handle itself so callers can chain; Build pivots back to the
// owning registry to move to a sibling path:
//
//	reg.Resolve("/pets").RespondMock("GET").Build().Resolve("/status")
//
// Idempotency is not enforced: attaching the same verb twice is a platform
// validation error and aborts the configuration pass.
type Resource struct {
	reg  *Registry
	node Node

	// handlers maps HTTP verb to the function created for it. A repeated
	// ProxyLambda on the same verb replaces only that verb's entry.
	handlers map[string]Handler
	// latest is the most recently created function, exposed through
	// HandlerName and HandlerArn.
	latest Handler
}

func newResource(reg *Registry, node Node) *Resource {
	return &Resource{reg: reg, node: node, handlers: make(map[string]Handler)}
}

// Build returns the owning registry.
func (h *Resource) Build() *Registry {
	return h.reg
}

// Path returns the node's absolute path within the gateway tree.
func (h *Resource) Path() string {
	return h.node.Path()
}

// RespondMock attaches a canned integration for verb that returns a fixed
// 200 with an empty body. The request template synthesizes the response
// directly; nothing is forwarded upstream.
func (h *Resource) RespondMock(verb string) *Resource {
	verb = strings.ToUpper(verb)
	h.node.AddMethod(verb, Integration{Kind: IntegrationMock}, nil)
	h.reg.log.Debug("gateway.mock_attached", map[string]any{"path": h.Path(), "verb": verb})
	return h
}

// ProxyLambda creates a brand-new function from props — every call creates
// one, this is never a lookup — and attaches it as the verb's integration.
// The created function is retained per verb; HandlerFor reads it back and
// HandlerName/HandlerArn reflect the most recent creation.
func (h *Resource) ProxyLambda(verb string, props *awslambda.FunctionProps, opts ...*LambdaProxyOptions) *Resource {
	verb = strings.ToUpper(verb)

	var o *LambdaProxyOptions
	if len(opts) > 0 {
		o = opts[0]
	}
	merged := o.withDefaults()

	fn := h.reg.platform.NewFunction(h.functionID(verb), props)
	h.handlers[verb] = fn
	h.latest = fn

	h.node.AddMethod(verb, Integration{Kind: IntegrationLambda, Handler: fn, Lambda: &merged}, nil)
	h.reg.log.Debug("gateway.lambda_attached", map[string]any{"path": h.Path(), "verb": verb, "function": fn.Name()})
	return h
}

// ProxyHTTP attaches a proxy integration to the external endpoint at url.
// Defaults: no authorization on the method; integration in proxy mode with
// WHEN_NO_MATCH passthrough. Caller-supplied options are merged field by
// field over those defaults.
func (h *Resource) ProxyHTTP(verb, url string, integ *HTTPProxyOptions, method *MethodOptions) *Resource {
	verb = strings.ToUpper(verb)
	mergedInteg := integ.withDefaults(verb)
	mergedMethod := method.withDefaults()
	h.node.AddMethod(verb, Integration{Kind: IntegrationHTTP, URL: url, HTTP: &mergedInteg}, &mergedMethod)
	h.reg.log.Debug("gateway.http_proxy_attached", map[string]any{"path": h.Path(), "verb": verb, "url": url})
	return h
}

// AddCORS instructs the node to generate the platform's automatic OPTIONS
// preflight, advertising the configured origins, methods, and headers.
func (h *Resource) AddCORS(opts CORSOptions) *Resource {
	h.node.AddPreflight(opts.withDefaults())
	h.reg.log.Debug("gateway.cors_attached", map[string]any{"path": h.Path()})
	return h
}

// HandlerName returns the platform-assigned name of the most recently
// created function, or "" when ProxyLambda was never called.
func (h *Resource) HandlerName() string {
	if h.latest == nil {
		return ""
	}
	return h.latest.Name()
}

// HandlerArn returns the ARN of the most recently created function, or ""
// when ProxyLambda was never called.
func (h *Resource) HandlerArn() string {
	if h.latest == nil {
		return ""
	}
	return h.latest.Arn()
}

// HandlerFor returns the function created for verb, if any.
func (h *Resource) HandlerFor(verb string) (Handler, bool) {
	fn, ok := h.handlers[strings.ToUpper(verb)]
	return fn, ok
}

func (h *Resource) functionID(verb string) string {
	return naming.ConstructID(h.Path()) + naming.TitleVerb(verb) + "Handler"
}
