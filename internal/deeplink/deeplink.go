// Package deeplink routes Userpilot navigation URLs of the form
// scheme://host/... to named destinations.
package deeplink

import (
	"errors"
	"fmt"
	"regexp"
	"sync"
)

// ErrInvalidLink is returned for URLs that are not scheme://host/... links.
var ErrInvalidLink = errors.New("invalid deep link format")

// ErrNoRoute is returned when a well-formed link has no registered route.
var ErrNoRoute = errors.New("no route for deep link")

var linkPattern = regexp.MustCompile(`^([^:]+)://([^/]+)/?.*$`)

// Link is a parsed deep link.
type Link struct {
	Scheme string
	Host   string
	Raw    string
}

// Parse splits url into its scheme and host.
func Parse(url string) (Link, error) {
	match := linkPattern.FindStringSubmatch(url)
	if match == nil {
		return Link{}, fmt.Errorf("%w: %q", ErrInvalidLink, url)
	}
	return Link{Scheme: match[1], Host: match[2], Raw: url}, nil
}

// Router maps links to route names by scheme and host.
type Router struct {
	mu     sync.RWMutex
	routes map[string]map[string]string
}

// NewRouter creates an empty Router.
func NewRouter() *Router {
	return &Router{routes: make(map[string]map[string]string)}
}

// Handle registers route for links with the given scheme and host.
func (r *Router) Handle(scheme, host, route string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.routes[scheme] == nil {
		r.routes[scheme] = make(map[string]string)
	}
	r.routes[scheme][host] = route
}

// Resolve parses url and returns the route registered for it.
func (r *Router) Resolve(url string) (string, error) {
	link, err := Parse(url)
	if err != nil {
		return "", err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	hosts, ok := r.routes[link.Scheme]
	if !ok {
		return "", fmt.Errorf("%w: unknown scheme %q", ErrInvalidLink, link.Scheme)
	}
	route, ok := hosts[link.Host]
	if !ok {
		return "", fmt.Errorf("%w: %s://%s", ErrNoRoute, link.Scheme, link.Host)
	}
	return route, nil
}
