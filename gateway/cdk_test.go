package gateway

import (
	"testing"

	"github.com/aws/aws-cdk-go/awscdk/v2/awsapigateway"
	"github.com/aws/jsii-runtime-go"
)

func TestCDKAuthorizationMapping(t *testing.T) {
	t.Parallel()

	cases := map[string]awsapigateway.AuthorizationType{
		AuthorizationNone:    awsapigateway.AuthorizationType_NONE,
		AuthorizationIAM:     awsapigateway.AuthorizationType_IAM,
		AuthorizationCustom:  awsapigateway.AuthorizationType_CUSTOM,
		AuthorizationCognito: awsapigateway.AuthorizationType_COGNITO,
		"":                   awsapigateway.AuthorizationType_NONE,
		"bogus":              awsapigateway.AuthorizationType_NONE,
	}
	for in, want := range cases {
		if got := cdkAuthorization(in); got != want {
			t.Fatalf("cdkAuthorization(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestCDKPassthroughMapping(t *testing.T) {
	t.Parallel()

	cases := map[string]awsapigateway.PassthroughBehavior{
		PassthroughNever:           awsapigateway.PassthroughBehavior_NEVER,
		PassthroughWhenNoTemplates: awsapigateway.PassthroughBehavior_WHEN_NO_TEMPLATES,
		PassthroughWhenNoMatch:     awsapigateway.PassthroughBehavior_WHEN_NO_MATCH,
		"":                         awsapigateway.PassthroughBehavior_WHEN_NO_MATCH,
	}
	for in, want := range cases {
		if got := cdkPassthrough(in); got != want {
			t.Fatalf("cdkPassthrough(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestCDKCORSOptions_OmittedHeadersStayNil(t *testing.T) {
	t.Parallel()

	out := cdkCORSOptions(CORSOptions{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{"GET"},
	})
	if out.AllowHeaders != nil {
		t.Fatal("omitted headers must stay nil so the platform default applies")
	}
	if out.AllowCredentials != nil {
		t.Fatal("credentials default must stay unset")
	}
	if len(*out.AllowOrigins) != 1 || *(*out.AllowOrigins)[0] != "*" {
		t.Fatalf("unexpected origins: %v", *out.AllowOrigins)
	}
}

func TestPointerHelpers(t *testing.T) {
	t.Parallel()

	if strv(nil) != "" {
		t.Fatal("nil string pointer must read as empty")
	}
	if strv(jsii.String("x")) != "x" {
		t.Fatal("expected pointer dereference")
	}
	if strmap(nil) != nil {
		t.Fatal("nil map must stay nil")
	}
	m := strmap(map[string]string{"a": "b"})
	if *(*m)["a"] != "b" {
		t.Fatalf("unexpected map conversion: %v", *m)
	}
	s := strslice([]string{"a", "b"})
	if len(*s) != 2 || *(*s)[1] != "b" {
		t.Fatalf("unexpected slice conversion: %v", *s)
	}
}
