package gateway

import (
	"strings"

	"github.com/aws/aws-cdk-go/awscdk/v2"
	"github.com/aws/aws-cdk-go/awscdk/v2/awsapigateway"
	"github.com/aws/aws-cdk-go/awscdk/v2/awslambda"
	"github.com/aws/constructs-go/constructs/v10"
	"github.com/aws/jsii-runtime-go"
)

// cdkPlatform implements Platform over an API Gateway REST API.
type cdkPlatform struct {
	api awsapigateway.RestApi
}

func newCDKPlatform(scope constructs.Construct, name string) *cdkPlatform {
	api := awsapigateway.NewRestApi(scope, jsii.String(name), &awsapigateway.RestApiProps{
		RestApiName: jsii.String(name),
	})
	return &cdkPlatform{api: api}
}

// RestAPI exposes the underlying construct for callers that need stage,
// domain, or deployment wiring beyond this package's surface.
func (r *Registry) RestAPI() awsapigateway.RestApi {
	if p, ok := r.platform.(*cdkPlatform); ok {
		return p.api
	}
	return nil
}

func (p *cdkPlatform) Root() Node {
	return &cdkNode{res: p.api.Root()}
}

func (p *cdkPlatform) URLForPath(path string) string {
	return strv(p.api.UrlForPath(jsii.String(path)))
}

func (p *cdkPlatform) BaseURL() string {
	return strv(p.api.Url())
}

func (p *cdkPlatform) NewFunction(id string, props *awslambda.FunctionProps) Handler {
	fn := awslambda.NewFunction(p.api, jsii.String(id), props)
	return &cdkHandler{fn: fn}
}

// cdkHandler wraps a created function reference.
type cdkHandler struct {
	fn awslambda.Function
}

func (h *cdkHandler) Name() string { return strv(h.fn.FunctionName()) }
func (h *cdkHandler) Arn() string  { return strv(h.fn.FunctionArn()) }

// cdkNode implements Node over one REST API resource.
type cdkNode struct {
	res awsapigateway.IResource
}

func (n *cdkNode) Path() string {
	return strv(n.res.Path())
}

func (n *cdkNode) AddChild(pathPart string) Node {
	return &cdkNode{res: n.res.AddResource(jsii.String(pathPart), nil)}
}

func (n *cdkNode) AddMethod(verb string, integ Integration, opts *MethodOptions) {
	n.res.AddMethod(jsii.String(verb), cdkIntegration(integ), cdkMethodOptions(integ.Kind, opts))
}

func (n *cdkNode) AddPreflight(opts CORSOptions) {
	n.res.AddCorsPreflight(cdkCORSOptions(opts))
}

func cdkIntegration(integ Integration) awsapigateway.Integration {
	switch integ.Kind {
	case IntegrationMock:
		// The template synthesizes the response; the request is never
		// forwarded to a backend.
		return awsapigateway.NewMockIntegration(&awsapigateway.IntegrationOptions{
			PassthroughBehavior: awsapigateway.PassthroughBehavior_NEVER,
			RequestTemplates: &map[string]*string{
				"application/json": jsii.String(`{"statusCode": 200}`),
			},
			IntegrationResponses: &[]*awsapigateway.IntegrationResponse{
				{StatusCode: jsii.String("200")},
			},
		})
	case IntegrationLambda:
		handler := integ.Handler.(*cdkHandler)
		return awsapigateway.NewLambdaIntegration(handler.fn, &awsapigateway.LambdaIntegrationOptions{
			Proxy:           integ.Lambda.Proxy,
			AllowTestInvoke: integ.Lambda.AllowTestInvoke,
		})
	case IntegrationHTTP:
		return awsapigateway.NewHttpIntegration(jsii.String(integ.URL), &awsapigateway.HttpIntegrationProps{
			Proxy:      integ.HTTP.Proxy,
			HttpMethod: jsii.String(integ.HTTP.HTTPMethod),
			Options: &awsapigateway.IntegrationOptions{
				PassthroughBehavior: cdkPassthrough(integ.HTTP.PassthroughBehavior),
				RequestParameters:   strmap(integ.HTTP.RequestParameters),
			},
		})
	}
	return nil
}

func cdkMethodOptions(kind IntegrationKind, opts *MethodOptions) *awsapigateway.MethodOptions {
	if kind == IntegrationMock {
		// Method-level contract for the canned response: 200, empty model,
		// no required response parameters.
		return &awsapigateway.MethodOptions{
			MethodResponses: &[]*awsapigateway.MethodResponse{
				{
					StatusCode: jsii.String("200"),
					ResponseModels: &map[string]awsapigateway.IModel{
						"application/json": awsapigateway.Model_EMPTY_MODEL(),
					},
				},
			},
		}
	}
	if opts == nil {
		return nil
	}
	out := &awsapigateway.MethodOptions{
		AuthorizationType: cdkAuthorization(opts.AuthorizationType),
		ApiKeyRequired:    opts.APIKeyRequired,
	}
	if opts.OperationName != "" {
		out.OperationName = jsii.String(opts.OperationName)
	}
	return out
}

func cdkCORSOptions(opts CORSOptions) *awsapigateway.CorsOptions {
	out := &awsapigateway.CorsOptions{
		AllowOrigins: strslice(opts.AllowOrigins),
		AllowMethods: strslice(opts.AllowMethods),
	}
	if opts.AllowHeaders != nil {
		out.AllowHeaders = strslice(opts.AllowHeaders)
	}
	if opts.AllowCredentials {
		out.AllowCredentials = jsii.Bool(true)
	}
	if opts.MaxAgeSeconds > 0 {
		out.MaxAge = awscdk.Duration_Seconds(jsii.Number(float64(opts.MaxAgeSeconds)))
	}
	return out
}

func cdkAuthorization(authType string) awsapigateway.AuthorizationType {
	switch strings.ToUpper(authType) {
	case AuthorizationIAM:
		return awsapigateway.AuthorizationType_IAM
	case AuthorizationCustom:
		return awsapigateway.AuthorizationType_CUSTOM
	case AuthorizationCognito:
		return awsapigateway.AuthorizationType_COGNITO
	default:
		return awsapigateway.AuthorizationType_NONE
	}
}

func cdkPassthrough(behavior string) awsapigateway.PassthroughBehavior {
	switch strings.ToUpper(behavior) {
	case PassthroughNever:
		return awsapigateway.PassthroughBehavior_NEVER
	case PassthroughWhenNoTemplates:
		return awsapigateway.PassthroughBehavior_WHEN_NO_TEMPLATES
	default:
		return awsapigateway.PassthroughBehavior_WHEN_NO_MATCH
	}
}

func strv(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func strslice(values []string) *[]*string {
	out := make([]*string, 0, len(values))
	for _, v := range values {
		out = append(out, jsii.String(v))
	}
	return &out
}

func strmap(values map[string]string) *map[string]*string {
	if values == nil {
		return nil
	}
	out := make(map[string]*string, len(values))
	for k, v := range values {
		out[k] = jsii.String(v)
	}
	return &out
}
