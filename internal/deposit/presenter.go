package deposit

import (
	"github.com/goodnatureofminers/walletflow/internal/model"
	"go.uber.org/zap"
)

// LogPresenter renders presenter signals through a zap logger. It stands in
// for the UI layer in headless runs.
type LogPresenter struct {
	logger *zap.Logger
}

// NewLogPresenter constructs a LogPresenter.
func NewLogPresenter(logger *zap.Logger) *LogPresenter {
	return &LogPresenter{logger: logger.Named("presenter")}
}

// ShowConfirmation logs the confirmation surface request.
func (p *LogPresenter) ShowConfirmation(tx model.BuiltTransaction) {
	txID, err := tx.TxID()
	if err != nil {
		txID = ""
	}
	p.logger.Info("deposit confirmed",
		zap.String("txid", txID),
		zap.String("recipient", tx.Recipient),
		zap.String("amount", model.FormatAmount(tx.Amount)),
		zap.String("fee", model.FormatAmount(tx.Fee)),
	)
}

// ShowDialog logs a blocking informational dialog request.
func (p *LogPresenter) ShowDialog(title, message string) {
	p.logger.Warn("dialog requested", zap.String("title", title), zap.String("message", message))
}

// ShowFormError logs a form-level error.
func (p *LogPresenter) ShowFormError(message string) {
	p.logger.Warn("form error", zap.String("message", message))
}

// PublishFieldErrors logs the active validation messages, if any.
func (p *LogPresenter) PublishFieldErrors(messages []string) {
	if len(messages) == 0 {
		return
	}
	p.logger.Debug("validation errors", zap.Strings("messages", messages))
}
