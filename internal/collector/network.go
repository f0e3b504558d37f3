package collector

import (
	"context"
	"fmt"
	"io"
	"net"
	"net/http"
	"os"
	"regexp"
	"strings"
	"time"

	psnet "github.com/shirou/gopsutil/v4/net"

	"github.com/atlas-infra/devinfo/internal/models"
	"github.com/atlas-infra/devinfo/internal/utils"
)

// publicIPPattern accepts a strict dotted-quad IPv4 response from an IP-echo
// service and nothing else.
var publicIPPattern = regexp.MustCompile(`^\d{1,3}\.\d{1,3}\.\d{1,3}\.\d{1,3}$`)

// collectNetwork reports interface identity, cumulative traffic counters,
// and live throughput/latency measurements. Only the hostname lookup and the
// interface discovery are category-fatal; everything after degrades to nil
// fields. The throughput measurement blocks for the configured window.
func (c *Collector) collectNetwork(ctx context.Context) (*models.NetworkInfo, error) {
	hostname, err := os.Hostname()
	if err != nil {
		return nil, fmt.Errorf("failed to get network info: %w", err)
	}

	ifaces, err := psnet.InterfacesWithContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get network info: %w", err)
	}

	info := &models.NetworkInfo{Hostname: hostname}

	if primary, ok := selectPrimaryInterface(ifaces); ok {
		info.LocalIP = primary.addr
		info.InterfaceName = primary.name
		if primary.mac != "" {
			mac := primary.mac
			info.MACAddress = &mac
		}
		if speed, ok := c.plat.LinkSpeedMbps(primary.name); ok {
			info.InterfaceSpeed = &speed
		}
	}

	if ip, ok := c.publicIP(ctx); ok {
		info.PublicIP = &ip
	} else {
		utils.LogDebug("public ip discovery failed", nil)
	}

	if counters, err := psnet.IOCountersWithContext(ctx, false); err == nil && len(counters) > 0 {
		info.TotalBytesSent = counters[0].BytesSent
		info.TotalBytesRecv = counters[0].BytesRecv
	} else {
		utils.LogWarn("network io counters unavailable", nil)
	}

	if download, upload, ok := c.measureThroughput(ctx); ok {
		// Nil rather than zero when no measurable traffic occurred.
		if download > 0 {
			info.DownloadSpeed = &download
		}
		if upload > 0 {
			info.UploadSpeed = &upload
		}
	}

	if rtt, ok := c.plat.PingRTT(c.cfg.PingTarget); ok {
		info.Ping = &rtt
	} else {
		utils.LogDebug("ping probe failed", map[string]string{"target": c.cfg.PingTarget})
	}

	return info, nil
}

type primaryInterface struct {
	name string
	addr string
	mac  string
}

// selectPrimaryInterface picks the first interface that is administratively
// up and carries a non-loopback IPv4 address. First match wins; there is no
// "best interface" ranking.
func selectPrimaryInterface(ifaces psnet.InterfaceStatList) (primaryInterface, bool) {
	for _, iface := range ifaces {
		lower := strings.ToLower(iface.Name)
		if strings.HasPrefix(lower, "lo") {
			continue
		}
		if !interfaceIsUp(iface.Flags) {
			continue
		}

		for _, addr := range iface.Addrs {
			ip := parseIPv4(addr.Addr)
			if ip == "" || strings.HasPrefix(ip, "127.") {
				continue
			}
			return primaryInterface{
				name: iface.Name,
				addr: ip,
				mac:  iface.HardwareAddr,
			}, true
		}
	}
	return primaryInterface{}, false
}

func interfaceIsUp(flags []string) bool {
	for _, f := range flags {
		if strings.EqualFold(f, "up") {
			return true
		}
	}
	return false
}

// parseIPv4 extracts the IPv4 address out of an interface address, which may
// carry a CIDR suffix. Non-IPv4 addresses return "".
func parseIPv4(addr string) string {
	if i := strings.IndexByte(addr, '/'); i >= 0 {
		addr = addr[:i]
	}
	ip := net.ParseIP(addr)
	if ip == nil || ip.To4() == nil {
		return ""
	}
	return ip.To4().String()
}

// publicIP queries the configured IP-echo services in order and accepts the
// first strict dotted-quad response.
func (c *Collector) publicIP(ctx context.Context) (string, bool) {
	client := &http.Client{Timeout: c.cfg.PublicIPTimeout}

	for _, service := range c.cfg.PublicIPServices {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, service, nil)
		if err != nil {
			continue
		}
		resp, err := client.Do(req)
		if err != nil {
			continue
		}
		body, err := io.ReadAll(io.LimitReader(resp.Body, 256))
		_ = resp.Body.Close()
		if err != nil || resp.StatusCode != http.StatusOK {
			continue
		}
		ip := strings.TrimSpace(string(body))
		if publicIPPattern.MatchString(ip) {
			return ip, true
		}
	}
	return "", false
}

// measureThroughput samples the system-wide byte counters across the
// configured window and converts the deltas to Mbps.
func (c *Collector) measureThroughput(ctx context.Context) (download, upload float64, ok bool) {
	start, err := psnet.IOCountersWithContext(ctx, false)
	if err != nil || len(start) == 0 {
		return 0, 0, false
	}

	select {
	case <-ctx.Done():
		return 0, 0, false
	case <-time.After(c.cfg.ThroughputWindow):
	}

	end, err := psnet.IOCountersWithContext(ctx, false)
	if err != nil || len(end) == 0 {
		return 0, 0, false
	}

	window := c.cfg.ThroughputWindow.Seconds()
	download = throughputMbps(start[0].BytesRecv, end[0].BytesRecv, window)
	upload = throughputMbps(start[0].BytesSent, end[0].BytesSent, window)
	return download, upload, true
}

// throughputMbps converts a byte-counter delta over a sampling window to
// megabits per second, rounded to two decimals.
func throughputMbps(startBytes, endBytes uint64, windowSeconds float64) float64 {
	if endBytes <= startBytes || windowSeconds <= 0 {
		return 0
	}
	delta := float64(endBytes - startBytes)
	return round2(delta * 8 / (windowSeconds * 1_000_000))
}
