package htmltree

import (
	"fmt"
	"net/url"
	"strings"
)

// urlAttrs lists, per tag, the attributes holding a link or media URL.
var urlAttrs = map[string][]string{
	"a":      {"href"},
	"img":    {"src"},
	"video":  {"src", "poster"},
	"audio":  {"src"},
	"source": {"src"},
}

// ParseBaseURL parses s and requires it to be absolute.
func ParseBaseURL(s string) (*url.URL, error) {
	u, err := url.Parse(strings.TrimSpace(s))
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %v", ErrInvalidBaseURL, s, err)
	}
	if !u.IsAbs() {
		return nil, fmt.Errorf("%w: %q has no scheme", ErrInvalidBaseURL, s)
	}
	return u, nil
}

// ResolveURLs rewrites relative link and media URLs below nodes against base,
// in place. Fragment-only references, protocol-relative and absolute URLs are
// left unchanged. A nil base is a no-op.
func ResolveURLs(nodes []Node, base *url.URL) {
	if base == nil {
		return
	}
	for _, n := range nodes {
		el, ok := n.(*Element)
		if !ok {
			continue
		}
		for _, key := range urlAttrs[el.Tag] {
			v, ok := el.Attrs[key]
			if !ok {
				continue
			}
			if ref, ok := relativeURL(v); ok {
				el.Attrs[key] = base.ResolveReference(ref).String()
			}
		}
		ResolveURLs(el.Children, base)
	}
}

// relativeURL parses s and reports whether it should be resolved.
func relativeURL(s string) (*url.URL, bool) {
	s = strings.TrimSpace(s)
	if s == "" || strings.HasPrefix(s, "#") {
		return nil, false
	}
	u, err := url.Parse(s)
	if err != nil || u.IsAbs() || u.Host != "" {
		return nil, false
	}
	return u, true
}
