package routing

import (
	"fmt"
	"net/http"
	"strings"
)

// MethodFilter is a set of HTTP methods.
type MethodFilter uint16

const (
	MethodGet MethodFilter = 1 << iota
	MethodPost
	MethodPut
	MethodDelete
	MethodPatch
	MethodHead
	MethodOptions
	MethodTrace
	MethodConnect

	MethodAny = MethodGet | MethodPost | MethodPut | MethodDelete | MethodPatch | MethodHead | MethodOptions | MethodTrace | MethodConnect
)

var methodBits = []struct {
	filter MethodFilter
	method string
}{
	{MethodGet, http.MethodGet},
	{MethodPost, http.MethodPost},
	{MethodPut, http.MethodPut},
	{MethodDelete, http.MethodDelete},
	{MethodPatch, http.MethodPatch},
	{MethodHead, http.MethodHead},
	{MethodOptions, http.MethodOptions},
	{MethodTrace, http.MethodTrace},
	{MethodConnect, http.MethodConnect},
}

// FilterFor returns the filter bit for method, or zero for an extension
// method.
func FilterFor(method string) MethodFilter {
	for _, b := range methodBits {
		if b.method == method {
			return b.filter
		}
	}
	return 0
}

// Matches reports whether method is in the set.
func (f MethodFilter) Matches(method string) bool {
	bit := FilterFor(method)
	return bit != 0 && f&bit != 0
}

// Methods lists the methods in the set in canonical order.
func (f MethodFilter) Methods() []string {
	methods := make([]string, 0, len(methodBits))
	for _, b := range methodBits {
		if f&b.filter != 0 {
			methods = append(methods, b.method)
		}
	}
	return methods
}

func (f MethodFilter) String() string {
	if f == 0 {
		return "NONE"
	}
	return strings.Join(f.Methods(), "|")
}

// ParseMethodFilter parses a list of methods separated by "|" or ",".
// "*" and "ANY" select every method.
func ParseMethodFilter(s string) (MethodFilter, error) {
	var f MethodFilter
	for _, part := range strings.FieldsFunc(s, func(r rune) bool { return r == '|' || r == ',' }) {
		name := strings.ToUpper(strings.TrimSpace(part))
		if name == "" {
			continue
		}
		if name == "*" || name == "ANY" {
			f |= MethodAny
			continue
		}
		bit := FilterFor(name)
		if bit == 0 {
			return 0, fmt.Errorf("unknown http method %q", part)
		}
		f |= bit
	}
	if f == 0 {
		return 0, fmt.Errorf("empty method filter %q", s)
	}
	return f, nil
}
