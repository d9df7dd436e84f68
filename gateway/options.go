package gateway

import "github.com/aws/jsii-runtime-go"

// Authorization policies accepted by MethodOptions.AuthorizationType.
const (
	AuthorizationNone    = "NONE"
	AuthorizationIAM     = "AWS_IAM"
	AuthorizationCustom  = "CUSTOM"
	AuthorizationCognito = "COGNITO_USER_POOLS"
)

// Passthrough behaviors accepted by HTTPProxyOptions.PassthroughBehavior.
const (
	PassthroughWhenNoMatch     = "WHEN_NO_MATCH"
	PassthroughWhenNoTemplates = "WHEN_NO_TEMPLATES"
	PassthroughNever           = "NEVER"
)

// MethodOptions is the method-level contract attached alongside an
// integration. Zero values keep the documented defaults.
type MethodOptions struct {
	// AuthorizationType defaults to AuthorizationNone.
	AuthorizationType string
	// APIKeyRequired defaults to the platform default (false).
	APIKeyRequired *bool
	// OperationName is optional and has no default.
	OperationName string
}

// withDefaults merges o over the method defaults. Caller-set fields win;
// zero values keep the default. Precedence is field by field, never
// struct-wide.
func (o *MethodOptions) withDefaults() MethodOptions {
	merged := MethodOptions{AuthorizationType: AuthorizationNone}
	if o == nil {
		return merged
	}
	if o.AuthorizationType != "" {
		merged.AuthorizationType = o.AuthorizationType
	}
	if o.APIKeyRequired != nil {
		merged.APIKeyRequired = o.APIKeyRequired
	}
	if o.OperationName != "" {
		merged.OperationName = o.OperationName
	}
	return merged
}

// HTTPProxyOptions configures an external-HTTP integration. Zero values
// keep the documented defaults.
type HTTPProxyOptions struct {
	// Proxy defaults to true (full request/response passthrough).
	Proxy *bool
	// HTTPMethod defaults to the verb the integration is attached with.
	// Callers can override it, but should keep the two consistent.
	HTTPMethod string
	// PassthroughBehavior defaults to PassthroughWhenNoMatch.
	PassthroughBehavior string
	// RequestParameters maps integration request parameters to method
	// request values. No default.
	RequestParameters map[string]string
}

// withDefaults merges o over the HTTP-proxy defaults for verb. Caller-set
// fields win; zero values keep the default.
func (o *HTTPProxyOptions) withDefaults(verb string) HTTPProxyOptions {
	merged := HTTPProxyOptions{
		Proxy:               jsii.Bool(true),
		HTTPMethod:          verb,
		PassthroughBehavior: PassthroughWhenNoMatch,
	}
	if o == nil {
		return merged
	}
	if o.Proxy != nil {
		merged.Proxy = o.Proxy
	}
	if o.HTTPMethod != "" {
		merged.HTTPMethod = o.HTTPMethod
	}
	if o.PassthroughBehavior != "" {
		merged.PassthroughBehavior = o.PassthroughBehavior
	}
	if o.RequestParameters != nil {
		merged.RequestParameters = o.RequestParameters
	}
	return merged
}

// LambdaProxyOptions configures a compute-proxy integration. Zero values
// keep the documented defaults.
type LambdaProxyOptions struct {
	// Proxy defaults to true (full request/response passthrough delegated
	// to the function).
	Proxy *bool
	// AllowTestInvoke defaults to the platform default (true).
	AllowTestInvoke *bool
}

func (o *LambdaProxyOptions) withDefaults() LambdaProxyOptions {
	merged := LambdaProxyOptions{Proxy: jsii.Bool(true)}
	if o == nil {
		return merged
	}
	if o.Proxy != nil {
		merged.Proxy = o.Proxy
	}
	if o.AllowTestInvoke != nil {
		merged.AllowTestInvoke = o.AllowTestInvoke
	}
	return merged
}

// CORSOptions parameterizes the platform's automatic preflight generation.
type CORSOptions struct {
	// AllowOrigins defaults to the wildcard origin.
	AllowOrigins []string `yaml:"allow_origins,omitempty"`
	// AllowMethods defaults to all standard verbs.
	AllowMethods []string `yaml:"allow_methods,omitempty"`
	// AllowHeaders is optional; nil keeps the platform's default header set.
	AllowHeaders []string `yaml:"allow_headers,omitempty"`
	// AllowCredentials defaults to false.
	AllowCredentials bool `yaml:"allow_credentials,omitempty"`
	// MaxAgeSeconds bounds the preflight cache; 0 keeps the platform default.
	MaxAgeSeconds int `yaml:"max_age_seconds,omitempty"`
}

func (o CORSOptions) withDefaults() CORSOptions {
	if len(o.AllowOrigins) == 0 {
		o.AllowOrigins = []string{"*"}
	}
	if len(o.AllowMethods) == 0 {
		o.AllowMethods = []string{"GET", "POST", "PUT", "DELETE", "OPTIONS", "PATCH", "HEAD"}
	}
	return o
}
