package gateway

import (
	"fmt"
	"strings"

	"github.com/aws/aws-cdk-go/awscdk/v2/awslambda"
)

// fakePlatform is an in-memory Platform so registry and handle behavior can
// be exercised without a jsii runtime.
type fakePlatform struct {
	root      *fakeNode
	functions []*fakeHandler
}

func newFakePlatform() *fakePlatform {
	p := &fakePlatform{}
	p.root = &fakeNode{platform: p, path: "/"}
	return p
}

func (p *fakePlatform) Root() Node { return p.root }

func (p *fakePlatform) BaseURL() string {
	return "https://fake.execute-api.test/prod/"
}

func (p *fakePlatform) URLForPath(path string) string {
	return "https://fake.execute-api.test/prod" + path
}

func (p *fakePlatform) NewFunction(id string, _ *awslambda.FunctionProps) Handler {
	fn := &fakeHandler{
		name: fmt.Sprintf("%s-%d", id, len(p.functions)),
		arn:  fmt.Sprintf("arn:aws:lambda:test:000000000000:function:%s-%d", id, len(p.functions)),
	}
	p.functions = append(p.functions, fn)
	return fn
}

type fakeHandler struct {
	name string
	arn  string
}

func (h *fakeHandler) Name() string { return h.name }
func (h *fakeHandler) Arn() string  { return h.arn }

type methodCall struct {
	verb        string
	integration Integration
	options     *MethodOptions
}

type fakeNode struct {
	platform  *fakePlatform
	path      string
	children  map[string]*fakeNode
	methods   []methodCall
	preflight []CORSOptions
}

func (n *fakeNode) Path() string { return n.path }

func (n *fakeNode) AddChild(pathPart string) Node {
	if n.children == nil {
		n.children = make(map[string]*fakeNode)
	}
	childPath := n.path + "/" + pathPart
	if n.path == "/" {
		childPath = "/" + pathPart
	}
	child := &fakeNode{platform: n.platform, path: childPath}
	n.children[pathPart] = child
	return child
}

func (n *fakeNode) AddMethod(verb string, integ Integration, opts *MethodOptions) {
	n.methods = append(n.methods, methodCall{verb: verb, integration: integ, options: opts})
}

func (n *fakeNode) AddPreflight(opts CORSOptions) {
	n.preflight = append(n.preflight, opts)
}

// nodeAt walks the fake tree by path for assertions.
func (p *fakePlatform) nodeAt(path string) *fakeNode {
	if path == "/" {
		return p.root
	}
	current := p.root
	for _, segment := range strings.Split(strings.Trim(path, "/"), "/") {
		current = current.children[segment]
		if current == nil {
			return nil
		}
	}
	return current
}
