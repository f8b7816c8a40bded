package compare

import (
	"encoding/csv"
	"strconv"
	"strings"
)

// CSVFormatter renders a comparison set as CSV.
type CSVFormatter struct{}

// Format generates CSV output, one row per treatment.
func (cf *CSVFormatter) Format(set *ComparisonSet) (string, error) {
	var sb strings.Builder
	w := csv.NewWriter(&sb)

	header := []string{
		"treatment",
		"winner",
		"monthly_gross",
		"monthly_tax",
		"monthly_net",
		"annual_net",
		"effective_rate",
		"net_diff_from_best",
		"note",
	}
	if err := w.Write(header); err != nil {
		return "", err
	}

	for _, o := range set.Options {
		record := []string{
			string(o.Treatment),
			strconv.FormatBool(o.Treatment == set.Winner),
			o.MonthlyGross.StringFixed(0),
			o.MonthlyTax.StringFixed(0),
			o.MonthlyNet.StringFixed(0),
			o.AnnualNet.StringFixed(0),
			o.EffectiveRate.StringFixed(4),
			o.NetDiffFromBest.StringFixed(0),
			o.Note,
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
