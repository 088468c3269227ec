package sidebar

import "strings"

// DefaultRegistry returns the providers with a dedicated navigation section.
func DefaultRegistry() Registry {
	return Registry{
		{ID: "awscc", PathPrefix: "/providers/awscc/", DisplayName: "AWSCC"},
		{ID: "aws", PathPrefix: "/providers/aws/", DisplayName: "AWS"},
	}
}

// DetectContext classifies path against the registry. The first provider
// whose prefix occurs anywhere in path wins; no match yields the top-level
// context.
func DetectContext(path string, registry Registry) PageContext {
	for _, p := range registry {
		if strings.Contains(path, p.PathPrefix) {
			return PageContext{
				IsProvider:  true,
				ProviderID:  p.ID,
				PathPrefix:  p.PathPrefix,
				DisplayName: p.DisplayName,
			}
		}
	}
	return PageContext{}
}

// Lookup returns the provider with the given id.
func (r Registry) Lookup(id string) (Provider, bool) {
	for _, p := range r {
		if p.ID == id {
			return p, true
		}
	}
	return Provider{}, false
}
