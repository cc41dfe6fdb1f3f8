// Package fontfile locates a CJK-capable font for the overlay renderer.
// Discovery is a pluggable capability so the composer never depends on a
// concrete platform search list.
package fontfile

// Resolver locates a usable font file, reporting false when none of its
// candidates exist.
type Resolver interface {
	Name() string
	Resolve() (string, bool)
}

// resolvers are tried in registration order, Windows before Linux.
var resolvers []Resolver

// Register appends a resolver to the discovery order.
func Register(r Resolver) {
	resolvers = append(resolvers, r)
}

// Resolve returns the first font any registered resolver can find. An empty
// result is not an error: ffmpeg renders with its default font.
func Resolve() (string, bool) {
	for _, r := range resolvers {
		if path, ok := r.Resolve(); ok {
			return path, true
		}
	}
	return "", false
}
