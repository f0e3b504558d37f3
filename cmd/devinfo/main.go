// Package main implements the devinfo agent: it collects one device
// information snapshot, validates it, and reports it to the configured
// server.
package main

import (
	"context"
	"os"

	"github.com/atlas-infra/devinfo/internal/collector"
	"github.com/atlas-infra/devinfo/internal/config"
	"github.com/atlas-infra/devinfo/internal/models"
	"github.com/atlas-infra/devinfo/internal/sender"
	"github.com/atlas-infra/devinfo/internal/utils"
)

func main() {
	utils.InitDefaultLogger()
	utils.LogInfo("starting devinfo agent", map[string]string{"schema_version": models.SchemaVersion})

	cfg := config.Load()
	utils.LogInfo("configuration loaded", map[string]string{"server_url": cfg.ServerURL})

	col := collector.NewWithConfig(collector.Config{
		ThroughputWindow: cfg.ThroughputWindow,
		PingTarget:       cfg.PingTarget,
	})

	snapshot, err := col.Collect(context.Background(), nil)
	if err != nil {
		utils.LogError("collection failed", map[string]string{"error": err.Error()})
		os.Exit(1)
	}

	if err := snapshot.Validate(); err != nil {
		utils.LogError("snapshot validation failed", map[string]string{"error": err.Error()})
		os.Exit(1)
	}
	utils.LogInfo("collection completed", map[string]string{"categories": "5"})

	report := sender.NewReport(snapshot, utils.GetLogs())
	if err := sender.Send(cfg, report); err != nil {
		utils.LogError("failed to send report", map[string]string{"error": err.Error()})
		os.Exit(1)
	}

	utils.LogInfo("report delivered", map[string]string{"report_id": report.ID})
}
