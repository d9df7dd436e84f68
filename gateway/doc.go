// Package gateway provides a fluent builder for an API Gateway REST API
// resource tree: paths, HTTP methods, and their integrations.
//
// A Registry owns the gateway and a path cache; resolving a path lazily
// materializes any missing intermediate resources. The returned Resource
// handle chains configuration calls and pivots back to the registry:
//
//	reg := gateway.New(stack, "petstore")
//	pets, err := reg.Resolve("/pets")
//	if err != nil { ... }
//	status, err := pets.AddCORS(gateway.CORSOptions{}).
//		ProxyLambda("GET", listProps).
//		Build().
//		Resolve("/status")
//
// The heavy lifting — template synthesis, IAM wiring, deployment — is
// delegated entirely to the construct library. This package only decides
// which resources, methods, and integrations exist.
package gateway
