package routes

// Element is a reference to a renderable construction. The builder produces
// Element values; the emit package renders them into source text. Keeping
// this as a tagged union (rather than pre-rendered strings) lets the
// serializer be tested independently of the tree transformation.
type Element interface {
	element()
}

// StaticRef renders an eagerly imported component.
type StaticRef struct {
	// Ident is the generated component identifier.
	Ident string
}

// LazyRef renders a lazily imported component.
type LazyRef struct {
	// Ident is the generated binding identifier.
	Ident string
}

// Suspense wraps an element in a suspense boundary.
type Suspense struct {
	// Inner is the wrapped element.
	Inner Element

	// FallbackIdent names the loading component used as the fallback.
	// Empty means the built-in placeholder.
	FallbackIdent string
}

func (StaticRef) element() {}
func (LazyRef) element()   {}
func (Suspense) element()  {}

// RouteNode is one route record in the generated configuration. It exists
// only for the duration of a single generation pass.
type RouteNode struct {
	// Path is the URL segment, ":param" for dynamic segments, "*" for the
	// catch-all, or "" for an index route.
	Path string

	// Element is the renderable for this route. Nil for directory routes
	// without a layout file.
	Element Element

	// Children are the nested routes, ordered: index first, catch-all last.
	Children []*RouteNode
}

// ImportKind distinguishes eager from deferred bindings.
type ImportKind int

const (
	// ImportStatic is an eager import, part of the initial bundle.
	ImportStatic ImportKind = iota

	// ImportLazy is a deferred import, loaded on first navigation.
	ImportLazy
)

// ImportBinding maps one page file to its generated identifier. RelPath is
// the uniqueness key: each file is imported at most once per pass.
type ImportBinding struct {
	// RelPath is the file's path relative to the pages root.
	RelPath string

	// Ident is the generated identifier.
	Ident string

	// Kind selects eager or deferred loading.
	Kind ImportKind
}

// Result is the output of one build pass.
type Result struct {
	// Routes is the ordered top-level route list.
	Routes []*RouteNode

	// Imports are the bindings in registration order.
	Imports []ImportBinding

	// Warnings are non-fatal convention problems (e.g. two layout files
	// in one directory).
	Warnings []string
}
