package sheet

import (
	"fmt"

	"github.com/rs/zerolog"
)

// providerRegistry maps ad-hoc provider references to generated type keys
// and back. Entries are added lazily the first time a provider is used and
// never removed: the table is bounded by the number of distinct providers,
// not by stack churn. The counter is scoped to one store instance so keys
// never collide across stores or test runs.
type providerRegistry struct {
	byProvider map[Provider]string
	byKey      map[string]Provider
	names      map[string]Provider // display name -> first provider seen with it
	counter    int
	log        zerolog.Logger
}

func newProviderRegistry(log zerolog.Logger) *providerRegistry {
	return &providerRegistry{
		byProvider: make(map[Provider]string),
		byKey:      make(map[string]Provider),
		names:      make(map[string]Provider),
		log:        log,
	}
}

// keyFor returns the type key for the given provider, allocating and
// registering one on first sight.
func (r *providerRegistry) keyFor(p Provider) string {
	if key, ok := r.byProvider[p]; ok {
		return key
	}

	key := fmt.Sprintf("adhoc_%d", r.counter)
	r.counter++
	r.byProvider[p] = key
	r.byKey[key] = p

	// A fresh reference reusing an earlier provider's display name is the
	// signature of a caller re-creating providers every render, which
	// defeats same-type detection and leaks registry entries. Advisory
	// only; behavior is unchanged.
	name := fmt.Sprintf("%T", p)
	if prev, seen := r.names[name]; seen && prev != p {
		r.log.Warn().
			Str("provider", name).
			Str("key", key).
			Msg("distinct sheet providers share a display name; register providers once instead of per render")
	} else if !seen {
		r.names[name] = p
	}

	return key
}

// providerFor returns the provider registered under the given type key.
func (r *providerRegistry) providerFor(key string) (Provider, bool) {
	p, ok := r.byKey[key]
	return p, ok
}
