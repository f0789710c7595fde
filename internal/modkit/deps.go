// Package modkit wires API modules to shared dependencies
package modkit

import (
	"kudoswall/internal/modkit/repokit"
	"kudoswall/internal/platform/config"
	"kudoswall/internal/platform/logger"
)

// Deps are the shared dependencies handed to every module
// CH is nil unless clickhouse is configured
type Deps struct {
	Log logger.Logger
	Cfg config.Conf
	PG  repokit.TxRunner
	CH  repokit.Clickhouse
}
