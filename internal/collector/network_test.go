package collector

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	psnet "github.com/shirou/gopsutil/v4/net"
)

func TestSelectPrimaryInterface(t *testing.T) {
	ifaces := psnet.InterfaceStatList{
		{Name: "lo", Flags: []string{"up", "loopback"}, Addrs: []psnet.InterfaceAddr{{Addr: "127.0.0.1/8"}}},
		{Name: "eth0", HardwareAddr: "aa:bb:cc:dd:ee:ff", Flags: []string{"up", "broadcast"}, Addrs: []psnet.InterfaceAddr{
			{Addr: "fe80::1/64"},
			{Addr: "192.168.1.10/24"},
		}},
		{Name: "eth1", Flags: []string{"up"}, Addrs: []psnet.InterfaceAddr{{Addr: "10.0.0.5/8"}}},
	}

	primary, ok := selectPrimaryInterface(ifaces)
	if !ok {
		t.Fatal("expected a primary interface")
	}
	if primary.name != "eth0" {
		t.Errorf("primary interface %q, want eth0", primary.name)
	}
	if primary.addr != "192.168.1.10" {
		t.Errorf("primary address %q, want 192.168.1.10", primary.addr)
	}
	if primary.mac != "aa:bb:cc:dd:ee:ff" {
		t.Errorf("primary mac %q, want aa:bb:cc:dd:ee:ff", primary.mac)
	}
}

func TestSelectPrimaryInterfaceSkipsDown(t *testing.T) {
	ifaces := psnet.InterfaceStatList{
		{Name: "eth0", Flags: []string{"broadcast"}, Addrs: []psnet.InterfaceAddr{{Addr: "192.168.1.10/24"}}},
		{Name: "wlan0", Flags: []string{"up"}, Addrs: []psnet.InterfaceAddr{{Addr: "172.16.0.2/16"}}},
	}

	primary, ok := selectPrimaryInterface(ifaces)
	if !ok {
		t.Fatal("expected a primary interface")
	}
	if primary.name != "wlan0" {
		t.Errorf("primary interface %q, want wlan0 (eth0 is down)", primary.name)
	}
}

func TestSelectPrimaryInterfaceNoneEligible(t *testing.T) {
	ifaces := psnet.InterfaceStatList{
		{Name: "lo0", Flags: []string{"up", "loopback"}, Addrs: []psnet.InterfaceAddr{{Addr: "127.0.0.1/8"}}},
		{Name: "eth0", Flags: []string{"up"}, Addrs: []psnet.InterfaceAddr{{Addr: "fe80::1/64"}}},
		{Name: "tun0", Flags: []string{"up"}, Addrs: []psnet.InterfaceAddr{{Addr: "127.0.0.53/32"}}},
	}

	if _, ok := selectPrimaryInterface(ifaces); ok {
		t.Error("no interface should qualify")
	}
}

func TestParseIPv4(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"192.168.1.10/24", "192.168.1.10"},
		{"10.0.0.1", "10.0.0.1"},
		{"fe80::1/64", ""},
		{"::1", ""},
		{"not-an-ip", ""},
		{"", ""},
	}

	for _, tt := range tests {
		if got := parseIPv4(tt.in); got != tt.want {
			t.Errorf("parseIPv4(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestPublicIPPattern(t *testing.T) {
	valid := []string{"1.2.3.4", "203.0.113.7", "255.255.255.255"}
	for _, v := range valid {
		if !publicIPPattern.MatchString(v) {
			t.Errorf("%q should match", v)
		}
	}

	invalid := []string{"", "1.2.3", "1.2.3.4.5", "a.b.c.d", "1.2.3.4\nextra", "<html>1.2.3.4</html>"}
	for _, v := range invalid {
		if publicIPPattern.MatchString(v) {
			t.Errorf("%q should not match", v)
		}
	}
}

func TestPublicIP(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("203.0.113.7\n"))
	}))
	defer srv.Close()

	c := NewWithConfig(Config{PublicIPServices: []string{srv.URL}})

	ip, ok := c.publicIP(context.Background())
	if !ok {
		t.Fatal("expected a public ip")
	}
	if ip != "203.0.113.7" {
		t.Errorf("public ip %q, want 203.0.113.7", ip)
	}
}

func TestPublicIPFallsThroughServices(t *testing.T) {
	bad := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer bad.Close()
	good := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("198.51.100.2"))
	}))
	defer good.Close()

	c := NewWithConfig(Config{PublicIPServices: []string{bad.URL, good.URL}})

	ip, ok := c.publicIP(context.Background())
	if !ok {
		t.Fatal("expected fallback to the second service")
	}
	if ip != "198.51.100.2" {
		t.Errorf("public ip %q, want 198.51.100.2", ip)
	}
}

func TestPublicIPRejectsNonAddressBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("<html>blocked</html>"))
	}))
	defer srv.Close()

	c := NewWithConfig(Config{PublicIPServices: []string{srv.URL}})

	if _, ok := c.publicIP(context.Background()); ok {
		t.Error("non-address response body should be rejected")
	}
}

func TestThroughputMbps(t *testing.T) {
	tests := []struct {
		name   string
		start  uint64
		end    uint64
		window float64
		want   float64
	}{
		// 3_750_000 bytes over 3s is 10 Mbps.
		{"steady transfer", 0, 3_750_000, 3, 10.0},
		{"rounds to two decimals", 0, 1234, 3, 0.0},
		{"small transfer", 0, 375_000, 3, 1.0},
		// A zero result is later reported as a null field, so "no traffic"
		// and "measurement unavailable" are indistinguishable to consumers.
		{"no traffic reports zero", 1000, 1000, 3, 0},
		{"counter reset reports zero", 2000, 1000, 3, 0},
		{"zero window reports zero", 0, 1000, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := throughputMbps(tt.start, tt.end, tt.window); got != tt.want {
				t.Errorf("throughputMbps(%d, %d, %v) = %v, want %v", tt.start, tt.end, tt.window, got, tt.want)
			}
		})
	}
}
