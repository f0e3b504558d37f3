// Package sender wraps a device information snapshot in a report envelope
// and delivers it to the configured server.
package sender

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/atlas-infra/devinfo/internal/config"
	"github.com/atlas-infra/devinfo/internal/models"
	"github.com/atlas-infra/devinfo/internal/utils"
)

// Report is the delivery envelope for one snapshot.
type Report struct {
	ID       string           `json:"id"`
	Hostname string           `json:"hostname"`
	Snapshot *models.Snapshot `json:"snapshot"`
	Logs     []string         `json:"logs,omitempty"`
}

// NewReport wraps a snapshot in an envelope with a fresh report ID. The
// hostname is taken from the snapshot's platform category when present.
func NewReport(snapshot *models.Snapshot, logs []string) Report {
	hostname := ""
	if snapshot != nil && snapshot.Platform != nil {
		hostname = snapshot.Platform.Hostname
	}
	return Report{
		ID:       utils.GenerateRandomID(),
		Hostname: hostname,
		Snapshot: snapshot,
		Logs:     logs,
	}
}

// Send posts the report to the server as JSON.
func Send(cfg *config.Config, report Report) error {
	jsonData, err := json.Marshal(report)
	if err != nil {
		utils.LogError("failed to marshal report", map[string]string{"error": err.Error()})
		return fmt.Errorf("failed to marshal report: %w", err)
	}

	req, err := http.NewRequest(http.MethodPost, cfg.ServerURL, bytes.NewBuffer(jsonData))
	if err != nil {
		utils.LogError("failed to create request", map[string]string{"error": err.Error()})
		return fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	if cfg.AgentToken != "" {
		req.Header.Set("Authorization", "Bearer "+cfg.AgentToken)
	}
	req.Header.Set("User-Agent", "devinfo-agent/1.0")

	utils.LogInfo("sending report", map[string]string{"url": cfg.ServerURL, "report_id": report.ID})

	client := &http.Client{}
	resp, err := client.Do(req)
	if err != nil {
		utils.LogError("failed to send report", map[string]string{"error": err.Error()})
		return fmt.Errorf("failed to send report: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		utils.LogError("server returned non-OK status", map[string]string{"status": resp.Status})
		return fmt.Errorf("server returned status %d", resp.StatusCode)
	}

	utils.LogInfo("report sent successfully", map[string]string{"report_id": report.ID})
	return nil
}
