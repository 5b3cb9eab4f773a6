package metadata

import "sync"

// ProxyRef is a handle to a cached remote export. Live returns the export
// while it is still reachable from outside the cache, or nil once it has
// been reclaimed.
type ProxyRef interface {
	Live() any
}

// ProxyFactory creates a remote export for a record. It returns the export
// itself together with a ProxyRef under which the cache retains it. Creation
// may perform a remote-registration side effect; a failure propagates to the
// caller and nothing is cached.
type ProxyFactory func() (export any, ref ProxyRef, err error)

// proxyCache is the guarded single-initialization cell holding the remote
// export of a record. A seeded export is held strongly; a created one only
// through its ProxyRef.
type proxyCache struct {
	mu     sync.Mutex
	strong any
	ref    ProxyRef
}

// CachedProxy returns the remote export cached for this record. Concurrent
// first accesses are serialized per record so exactly one export is created.
// If the cached reference is no longer live, a new export is created.
func (i *Info) CachedProxy(create ProxyFactory) (any, error) {
	i.proxy.mu.Lock()
	defer i.proxy.mu.Unlock()

	if i.proxy.strong != nil {
		return i.proxy.strong, nil
	}
	if i.proxy.ref != nil {
		if export := i.proxy.ref.Live(); export != nil {
			return export, nil
		}
	}

	export, ref, err := create()
	if err != nil {
		return nil, err
	}
	i.proxy.ref = ref

	return export, nil
}
