package gateway

import (
	"regexp"
	"strings"

	"github.com/aws/constructs-go/constructs/v10"

	"github.com/theory-cloud/gatetheory/pkg/observability"
)

// Registry owns one gateway instance and a path → handle cache. Paths are
// slash-delimited; "/" is the root. Resolution grows the cache and never
// shrinks it. The registry is built up sequentially by one configuration
// pass; it is not safe for concurrent use and does not need to be.
type Registry struct {
	platform Platform
	handles  map[string]*Resource
	log      observability.StructuredLogger
}

// Option configures a Registry at construction.
type Option func(*Registry)

// WithLogger routes resolution and attachment events to log.
func WithLogger(log observability.StructuredLogger) Option {
	return func(r *Registry) {
		if log != nil {
			r.log = log
		}
	}
}

// New constructs a Registry over a new REST API named name within scope.
func New(scope constructs.Construct, name string, opts ...Option) *Registry {
	return NewWithPlatform(newCDKPlatform(scope, name), opts...)
}

// NewWithPlatform builds a Registry over any Platform implementation. Tests
// use it with an in-memory platform.
func NewWithPlatform(p Platform, opts ...Option) *Registry {
	r := &Registry{
		platform: p,
		handles:  make(map[string]*Resource),
		log:      observability.NewNoOpLogger(),
	}
	for _, opt := range opts {
		opt(r)
	}
	r.Root()
	return r
}

// CreatorFunc materializes the resource tree for a normalized path. It must
// register a handle for path (and for any intermediate ancestors it
// creates) via Register before returning.
type CreatorFunc func(r *Registry, path string) (*Resource, error)

// Resolve returns the handle for path, creating it when absent. The root
// path always rebinds to a fresh handle; any other cached path returns the
// cached handle. On a miss the creator strategy (default: the segment
// walker) materializes the node chain. After a successful call, path and
// every ancestor prefix encountered are present in the cache.
func (r *Registry) Resolve(path string, creator ...CreatorFunc) (*Resource, error) {
	key, segments, err := normalizePath(path)
	if err != nil {
		return nil, err
	}
	if key == "/" {
		return r.Root(), nil
	}
	if h, ok := r.handles[key]; ok {
		return h, nil
	}

	var create CreatorFunc
	if len(creator) > 0 {
		create = creator[0]
	}
	if create == nil {
		if _, err := r.walkCreate(key, segments); err != nil {
			return nil, err
		}
	} else {
		if _, err := create(r, key); err != nil {
			return nil, err
		}
	}

	h, ok := r.handles[key]
	if !ok {
		return nil, &Error{Code: codeBadCreator, Path: key, Message: "creator strategy did not register a handle for the path"}
	}
	r.log.Debug("gateway.path_resolved", map[string]any{"path": key})
	return h, nil
}

// walkCreate is the default creator strategy: walk the non-empty segments
// left to right from the root, creating and caching any missing
// intermediate node before descending into it.
func (r *Registry) walkCreate(key string, segments []string) (*Resource, error) {
	parent, ok := r.handles["/"]
	if !ok {
		parent = r.Root()
	}

	var sub strings.Builder
	var current *Resource
	for _, segment := range segments {
		sub.WriteByte('/')
		sub.WriteString(segment)
		subPath := sub.String()

		h, ok := r.handles[subPath]
		if !ok {
			h = newResource(r, parent.node.AddChild(segment))
			r.handles[subPath] = h
			r.log.Debug("gateway.resource_created", map[string]any{"path": subPath})
		}
		parent, current = h, h
	}
	if current == nil {
		// normalizePath guarantees at least one segment for non-root keys.
		return nil, newEmptyPath(key)
	}
	return current, nil
}

// Register inserts a handle into the path cache under the normalized form
// of path. Creator strategies use it to satisfy the Resolve contract for
// the paths they materialize.
func (r *Registry) Register(path string, res *Resource) error {
	key, _, err := normalizePath(path)
	if err != nil {
		return err
	}
	r.handles[key] = res
	return nil
}

// NewResource wraps node in a handle owned by this registry. Intended for
// custom creator strategies.
func (r *Registry) NewResource(node Node) *Resource {
	return newResource(r, node)
}

// Platform exposes the underlying platform for custom creator strategies.
func (r *Registry) Platform() Platform {
	return r.platform
}

// URL returns the externally reachable URL for a previously resolved path.
// It is lookup-only and never triggers creation; an unresolved path fails
// with a not-found error (see IsNotFound).
func (r *Registry) URL(path string) (string, error) {
	key, _, err := normalizePath(path)
	if err != nil {
		return "", newNotFound(path)
	}
	h, ok := r.handles[key]
	if !ok {
		return "", newNotFound(path)
	}
	return r.platform.URLForPath(h.node.Path()), nil
}

// RootURL returns the base URL of the entire gateway.
func (r *Registry) RootURL() string {
	return r.platform.BaseURL()
}

// Root rebinds "/" to a fresh handle wrapping the platform's root node and
// returns it. Repeated calls return distinct handles over the same
// underlying node; a caller holding an old root handle still operates on
// the same node.
func (r *Registry) Root() *Resource {
	h := newResource(r, r.platform.Root())
	r.handles["/"] = h
	return h
}

// segmentPattern matches one path part: letters, digits, hyphen,
// underscore, period, or a brace parameter such as {id} or {proxy+}.
var segmentPattern = regexp.MustCompile(`^(\{[A-Za-z0-9._-]+\+?\}|[A-Za-z0-9._-]+)$`)

// normalizePath canonicalizes path to "/"-joined non-empty segments. A path
// with no usable segments other than the literal root fails fast with an
// empty-path error rather than yielding an indeterminate handle.
func normalizePath(path string) (string, []string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "", nil, newEmptyPath(path)
	}

	var segments []string
	for _, part := range strings.Split(trimmed, "/") {
		if part == "" {
			continue
		}
		if !segmentPattern.MatchString(part) {
			return "", nil, newInvalidSegment(path, part)
		}
		segments = append(segments, part)
	}
	if len(segments) == 0 {
		if trimmed == "/" {
			return "/", nil, nil
		}
		return "", nil, newEmptyPath(path)
	}
	return "/" + strings.Join(segments, "/"), segments, nil
}
