package ledger_fx

import (
	"context"
	"errors"

	"go.uber.org/fx"
	"go.uber.org/zap"

	"shootbook/internal/config"
	"shootbook/internal/services"
)

var Module = fx.Provide(provideLedger)

func provideLedger(cfg *config.Config, logger *zap.Logger) services.LedgerWriter {
	ledger, err := services.NewSheetsLedger(context.Background(),
		cfg.Google.CredentialsJSON, cfg.Google.SpreadsheetID, cfg.Google.SheetRange)
	switch {
	case err == nil:
		return ledger
	case errors.Is(err, services.ErrLedgerDisabled):
		logger.Warn("spreadsheet ledger disabled")
	default:
		logger.Error("spreadsheet ledger init failed", zap.Error(err))
	}
	return services.NewDisabledLedger()
}
