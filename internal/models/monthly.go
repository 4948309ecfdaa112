package models

import (
	"errors"
	"sync"
	"time"

	"github.com/duobudget/backend/internal/types"
	"gorm.io/gorm"
)

// keyLastProcessedMonth is the system_state key holding the last month
// the monthly processing ran for, as "YYYY-MM".
const keyLastProcessedMonth = "last_processed_month"

// retentionMonths is how far back ledger entries are kept. Entries
// before the first day of the month this many months before the
// current one are pruned.
const retentionMonths = 13

// ErrAlreadyProcessed reports that the monthly processing already ran
// for this month. It is a signal, not a failure.
var ErrAlreadyProcessed = errors.New("this month has already been processed")

// MonthlySummary reports what a monthly processing run changed.
type MonthlySummary struct {
	Month      types.Month `json:"month"`
	RolledOver int         `json:"rolledOver"`
	Reset      int         `json:"reset"`
	Pruned     int         `json:"pruned"`
}

var processMu sync.Mutex

// ProcessMonth performs the month close for the month now falls into:
// active envelopes with rollover keep their balance on top of a fresh
// allocation, the others are reset to their allocation, and ledger
// entries past the retention window are pruned.
//
// All of it commits in one database transaction together with the
// watermark, so a crash mid-run leaves no half-processed month. The
// mutex serializes concurrent calls within the process, the watermark
// check inside the transaction makes the run idempotent across
// processes.
func ProcessMonth(now time.Time) (MonthlySummary, error) {
	processMu.Lock()
	defer processMu.Unlock()

	month := types.MonthOf(now)
	cutoff := month.AddDate(0, -retentionMonths).Start()

	summary := MonthlySummary{Month: month}
	err := DB.Transaction(func(tx *gorm.DB) error {
		watermark, err := systemStateValue(tx, keyLastProcessedMonth)
		if err != nil && !errors.Is(err, ErrResourceNotFound) {
			return err
		}

		if watermark == month.String() {
			return ErrAlreadyProcessed
		}

		rolledOver := tx.Model(&Envelope{}).
			Where("is_deleted = ? AND rollover = ?", false, true).
			Update("balance", gorm.Expr("balance + allocation"))
		if rolledOver.Error != nil {
			return rolledOver.Error
		}

		reset := tx.Model(&Envelope{}).
			Where("is_deleted = ? AND rollover = ?", false, false).
			Update("balance", gorm.Expr("allocation"))
		if reset.Error != nil {
			return reset.Error
		}

		pruned := tx.Where("timestamp < ?", cutoff).Delete(&Transaction{})
		if pruned.Error != nil {
			return pruned.Error
		}

		err = setSystemState(tx, keyLastProcessedMonth, month.String())
		if err != nil {
			return err
		}

		summary.RolledOver = int(rolledOver.RowsAffected)
		summary.Reset = int(reset.RowsAffected)
		summary.Pruned = int(pruned.RowsAffected)

		return nil
	})
	if err != nil {
		return MonthlySummary{}, err
	}

	return summary, nil
}
