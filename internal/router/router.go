// Package router evaluates navigation intents against a declared route tree
// and the current session. A route is protected when it or any ancestor sets
// RequiresAuth; protected routes resolve to a login redirect while signed
// out. Every call re-reads session state, decisions are never cached.
package router

import (
	"strings"

	"go.uber.org/zap"
)

// AuthState is the read-only session view the guard consults.
type AuthState interface {
	IsAuthenticated() bool
}

// Route is one node of the route tree. Path is a relative segment pattern
// ("" for an index child, ":id" for a parameter). RequiresAuth is inherited
// by all descendants. A node with Redirect set forwards every match to that
// target instead of rendering.
type Route struct {
	Path         string
	Name         string
	RequiresAuth bool
	Redirect     string
	Children     []*Route
}

// Decision is the outcome of resolving one navigation intent. When Allowed
// is false the intent is replaced by RedirectTo; the original destination is
// discarded and not replayed after login, matching the original design.
type Decision struct {
	Allowed    bool
	RouteName  string
	Params     map[string]string
	RedirectTo string
}

// Router resolves paths against a route forest. Unmatched paths redirect to
// DefaultPath rather than erroring.
type Router struct {
	routes      []*Route
	session     AuthState
	loginPath   string
	defaultPath string
	log         *zap.Logger
}

// New builds a Router over the given forest.
func New(session AuthState, routes []*Route, loginPath, defaultPath string, log *zap.Logger) *Router {
	if log == nil {
		log = zap.NewNop()
	}
	return &Router{
		routes:      routes,
		session:     session,
		loginPath:   loginPath,
		defaultPath: defaultPath,
		log:         log,
	}
}

// AppRoutes is the route tree of the timesheet application: "/" forwards to
// the login view, "/dashboard" and everything below it requires a session.
func AppRoutes() []*Route {
	return []*Route{
		{Path: "", Name: "root", Redirect: "/login"},
		{Path: "login", Name: "login"},
		{
			Path:         "dashboard",
			Name:         "dashboard",
			RequiresAuth: true,
			Children: []*Route{
				{Path: "", Name: "home"},
				{Path: "employee", Name: "employee"},
			},
		},
	}
}

// AppRouter wires AppRoutes with the application's login and fallback
// targets.
func AppRouter(session AuthState, log *zap.Logger) *Router {
	return New(session, AppRoutes(), "/login", "/dashboard", log)
}

// match holds a successful pattern match: the node chain from root to leaf
// and the extracted path parameters.
type match struct {
	chain  []*Route
	params map[string]string
}

func splitPath(p string) []string {
	p = strings.Trim(p, "/")
	if p == "" {
		return nil
	}
	return strings.Split(p, "/")
}

// matchNode matches segs against n and its subtree. Pattern segments either
// equal the literal segment or bind a ":param".
func matchNode(n *Route, segs []string, params map[string]string) *match {
	pat := splitPath(n.Path)
	if len(pat) > len(segs) {
		return nil
	}
	bound := params
	for i, ps := range pat {
		if strings.HasPrefix(ps, ":") {
			// Copy before binding so sibling branches never see our params.
			bound = copyMap(bound)
			bound[ps[1:]] = segs[i]
			continue
		}
		if ps != segs[i] {
			return nil
		}
	}
	rest := segs[len(pat):]
	if len(rest) == 0 {
		// Prefer an index child ("" path) when one exists.
		for _, c := range n.Children {
			if c.Path == "" {
				return &match{chain: []*Route{n, c}, params: bound}
			}
		}
		return &match{chain: []*Route{n}, params: bound}
	}
	for _, c := range n.Children {
		if c.Path == "" {
			continue
		}
		if m := matchNode(c, rest, bound); m != nil {
			m.chain = append([]*Route{n}, m.chain...)
			return m
		}
	}
	return nil
}

func copyMap(m map[string]string) map[string]string {
	out := make(map[string]string, len(m)+1)
	for k, v := range m {
		out[k] = v
	}
	return out
}

// Match resolves a path to a route chain without consulting the session.
func (r *Router) Match(path string) (chain []*Route, params map[string]string, ok bool) {
	segs := splitPath(path)
	for _, root := range r.routes {
		// The bare root route ("") only matches the empty path.
		if root.Path == "" && len(root.Children) == 0 {
			if len(segs) == 0 {
				return []*Route{root}, nil, true
			}
			continue
		}
		if m := matchNode(root, segs, nil); m != nil {
			return m.chain, m.params, true
		}
	}
	return nil, nil, false
}

// Resolve evaluates one navigation intent and returns the guard's decision.
func (r *Router) Resolve(path string) Decision {
	chain, params, ok := r.Match(path)
	if !ok {
		r.log.Debug("unmatched route", zap.String("path", path), zap.String("redirect", r.defaultPath))
		return Decision{RedirectTo: r.defaultPath}
	}

	leaf := chain[len(chain)-1]
	if leaf.Redirect != "" {
		return Decision{RedirectTo: leaf.Redirect}
	}

	if requiresAuth(chain) && !r.session.IsAuthenticated() {
		r.log.Debug("navigation blocked", zap.String("path", path), zap.String("route", leaf.Name))
		return Decision{RedirectTo: r.loginPath}
	}
	return Decision{Allowed: true, RouteName: leaf.Name, Params: params}
}

// requiresAuth ORs the flag along the matched chain, root to leaf.
func requiresAuth(chain []*Route) bool {
	for _, n := range chain {
		if n.RequiresAuth {
			return true
		}
	}
	return false
}
