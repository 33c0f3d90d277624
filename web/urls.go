// ABOUTME: Named-route URL builder shared by the router and the handlers.
// ABOUTME: Turns a route name plus path params into a relative path or an absolute request URL.
package web

import (
	"fmt"
	"net/http"
	"net/url"
	"sort"
	"strings"
)

// Route names. The router registers each pattern under its name so that
// handlers never hardcode paths.
const (
	routeIndex       = "index"
	routePlay        = "play"
	routeServeSample = "serve_sample"
	routeHealth      = "health"
	routeStatic      = "static"
)

// defaultRoutes maps route names to chi patterns.
var defaultRoutes = map[string]string{
	routeIndex:       "/",
	routePlay:        "/play",
	routeServeSample: "/sample/{sample_id}",
	routeHealth:      "/health",
	routeStatic:      "/static",
}

// Params holds path parameter values keyed by placeholder name.
type Params map[string]string

// URLBuilder resolves route names into URLs.
type URLBuilder struct {
	routes map[string]string
}

// NewURLBuilder creates a builder over the given name -> pattern table.
func NewURLBuilder(routes map[string]string) *URLBuilder {
	copied := make(map[string]string, len(routes))
	for name, pattern := range routes {
		copied[name] = pattern
	}
	return &URLBuilder{routes: copied}
}

// Pattern returns the chi pattern registered under name. It panics on an
// unknown name since routes are wired at startup.
func (b *URLBuilder) Pattern(name string) string {
	p, ok := b.routes[name]
	if !ok {
		panic(fmt.Sprintf("web: unknown route %q", name))
	}
	return p
}

// Path substitutes params into the named route's pattern and returns the
// escaped path. Every placeholder must be supplied and every param used.
func (b *URLBuilder) Path(name string, params Params) (string, error) {
	pattern, ok := b.routes[name]
	if !ok {
		return "", fmt.Errorf("unknown route %q", name)
	}

	used := make(map[string]bool, len(params))
	var sb strings.Builder
	rest := pattern
	for {
		open := strings.IndexByte(rest, '{')
		if open < 0 {
			sb.WriteString(rest)
			break
		}
		end := strings.IndexByte(rest[open:], '}')
		if end < 0 {
			return "", fmt.Errorf("route %q: unterminated placeholder", name)
		}
		end += open

		key := rest[open+1 : end]
		// chi allows {name:regexp}; only the name matters here.
		if i := strings.IndexByte(key, ':'); i >= 0 {
			key = key[:i]
		}
		val, ok := params[key]
		if !ok {
			return "", fmt.Errorf("route %q: missing param %q", name, key)
		}
		used[key] = true

		sb.WriteString(rest[:open])
		sb.WriteString(url.PathEscape(val))
		rest = rest[end+1:]
	}

	if len(used) != len(params) {
		var extra []string
		for k := range params {
			if !used[k] {
				extra = append(extra, k)
			}
		}
		sort.Strings(extra)
		return "", fmt.Errorf("route %q: unexpected params %v", name, extra)
	}
	return sb.String(), nil
}

// URLFor returns the absolute URL of the named route as seen by the client
// that sent r.
func (b *URLBuilder) URLFor(r *http.Request, name string, params Params) (*url.URL, error) {
	p, err := b.Path(name, params)
	if err != nil {
		return nil, err
	}
	return &url.URL{
		Scheme: requestScheme(r),
		Host:   r.Host,
		Path:   p,
	}, nil
}

func requestScheme(r *http.Request) string {
	if proto := r.Header.Get("X-Forwarded-Proto"); proto != "" {
		proto, _, _ = strings.Cut(proto, ",")
		proto = strings.ToLower(strings.TrimSpace(proto))
		if proto == "http" || proto == "https" {
			return proto
		}
	}
	if r.TLS != nil {
		return "https"
	}
	return "http"
}
