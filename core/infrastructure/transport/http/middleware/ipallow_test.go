package middleware

import (
	"net/http"
	"net/http/httptest"
	"net/netip"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIPFilterDefaults(t *testing.T) {
	f, err := NewIPFilter(nil)
	require.NoError(t, err)

	tests := []struct {
		addr    string
		allowed bool
	}{
		{"127.0.0.1", true},
		{"10.1.2.3", true},
		{"172.16.0.1", true},
		{"172.32.0.1", false},
		{"192.168.100.200", true},
		{"::1", true},
		{"8.8.8.8", false},
		{"::ffff:192.168.1.5", true},
	}

	for _, tt := range tests {
		addr := netip.MustParseAddr(tt.addr)
		assert.Equal(t, tt.allowed, f.Allowed(addr), "addr %s", tt.addr)
	}
}

func TestIPFilterCustomNetworks(t *testing.T) {
	f, err := NewIPFilter([]string{"100.64.0.0/10"})
	require.NoError(t, err)

	assert.True(t, f.Allowed(netip.MustParseAddr("100.64.1.1")))
	assert.False(t, f.Allowed(netip.MustParseAddr("192.168.1.1")))
}

func TestIPFilterRejectsInvalidCIDR(t *testing.T) {
	_, err := NewIPFilter([]string{"not-a-network"})
	require.Error(t, err)
}

func TestIPFilterHandler(t *testing.T) {
	f, err := NewIPFilter(nil)
	require.NoError(t, err)

	var reached bool
	h := f.Handler(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		reached = true
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodGet, "/api/firms", nil)
	req.RemoteAddr = "192.168.1.10:54321"
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.True(t, reached)
	assert.Equal(t, http.StatusOK, rec.Code)

	reached = false
	req = httptest.NewRequest(http.MethodGet, "/api/firms", nil)
	req.RemoteAddr = "203.0.113.7:54321"
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.False(t, reached)
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Contains(t, rec.Body.String(), "локальной сети")
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
}
