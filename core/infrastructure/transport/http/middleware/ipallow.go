package middleware

import (
	"encoding/json"
	"fmt"
	"net"
	"net/http"
	"net/netip"

	"github.com/Kalysbe/quik-api/core/infrastructure/logging"
)

// defaultNetworks covers the private ranges plus loopback. The gateway
// is an internal tool; anything outside the local network is refused
// regardless of authentication.
var defaultNetworks = []string{
	"127.0.0.0/8",
	"10.0.0.0/8",
	"172.16.0.0/12",
	"192.168.0.0/16",
	"::1/128",
}

// IPFilter rejects requests whose client address falls outside the
// allowed networks.
type IPFilter struct {
	networks []netip.Prefix
	log      logging.Logger
}

// NewIPFilter builds a filter from CIDR strings; an empty list selects
// the default local-network set.
func NewIPFilter(cidrs []string) (*IPFilter, error) {
	if len(cidrs) == 0 {
		cidrs = defaultNetworks
	}

	networks := make([]netip.Prefix, 0, len(cidrs))
	for _, c := range cidrs {
		p, err := netip.ParsePrefix(c)
		if err != nil {
			return nil, fmt.Errorf("invalid allowed network %q: %w", c, err)
		}
		networks = append(networks, p)
	}

	return &IPFilter{networks: networks, log: logging.New("ip-filter")}, nil
}

// Allowed reports whether the address belongs to an allowed network.
// IPv4-mapped IPv6 addresses are unmapped first so they match IPv4
// prefixes.
func (f *IPFilter) Allowed(addr netip.Addr) bool {
	addr = addr.Unmap()
	for _, n := range f.networks {
		if n.Contains(addr) {
			return true
		}
	}
	return false
}

// Handler is the middleware. It runs after RealIP, so RemoteAddr already
// reflects X-Forwarded-For when a trusted proxy set it.
func (f *IPFilter) Handler(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		addr, ok := clientAddr(r.RemoteAddr)
		if !ok || !f.Allowed(addr) {
			f.log.Warnf("Rejected request from %s to %s %s", r.RemoteAddr, r.Method, r.URL.Path)
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusForbidden)
			json.NewEncoder(w).Encode(map[string]any{
				"success": false,
				"error":   "Доступ разрешен только из локальной сети",
			})
			return
		}
		next.ServeHTTP(w, r)
	})
}

func clientAddr(remoteAddr string) (netip.Addr, bool) {
	host := remoteAddr
	if h, _, err := net.SplitHostPort(remoteAddr); err == nil {
		host = h
	}
	addr, err := netip.ParseAddr(host)
	if err != nil {
		return netip.Addr{}, false
	}
	return addr, true
}
