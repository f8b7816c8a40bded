package output

import (
	"encoding/csv"
	"encoding/json"
	"strconv"
	"strings"

	"github.com/nvquang/vnpit/internal/domain"
)

// ToJSON marshals any result record for machine consumption.
func ToJSON(v any) ([]byte, error) {
	return json.MarshalIndent(v, "", "  ")
}

// MortgageCSV renders the full amortization schedule as CSV, one row per
// month, amounts in plain whole dong for spreadsheet import.
func MortgageCSV(sched domain.MortgageSchedule) (string, error) {
	var sb strings.Builder
	w := csv.NewWriter(&sb)

	if err := w.Write([]string{"month", "phase", "payment", "principal", "interest", "remaining_balance"}); err != nil {
		return "", err
	}
	for _, row := range sched.Rows {
		record := []string{
			strconv.Itoa(row.Month),
			string(row.Phase),
			row.Payment.StringFixed(0),
			row.Principal.StringFixed(0),
			row.Interest.StringFixed(0),
			row.RemainingBalance.StringFixed(0),
		}
		if err := w.Write(record); err != nil {
			return "", err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return "", err
	}
	return sb.String(), nil
}
