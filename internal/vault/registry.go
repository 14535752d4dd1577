// Package vault resolves vault token addresses to human-friendly labels.
package vault

// Registry maps vault token addresses to display labels. The mapping is
// configuration data, injected at construction; unknown addresses fall
// back to a shortened form of the address itself.
type Registry struct {
	names map[string]string
}

// NewRegistry creates a registry from an address → label mapping.
// Lookups are case-sensitive on the address as provided.
func NewRegistry(names map[string]string) *Registry {
	if names == nil {
		names = map[string]string{}
	}
	return &Registry{names: names}
}

// Resolve returns the label for a vault address, or a shortened form of
// the address when no label is configured. Always returns a non-empty
// string for non-empty input.
func (r *Registry) Resolve(address string) string {
	if name, ok := r.names[address]; ok {
		return name
	}
	return Shorten(address)
}

// Shorten abbreviates an address-like identifier to "first6...last4".
// Identifiers too short to abbreviate are returned unchanged.
func Shorten(address string) string {
	if len(address) <= 10 {
		return address
	}
	return address[:6] + "..." + address[len(address)-4:]
}
