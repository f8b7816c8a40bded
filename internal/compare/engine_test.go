package compare

import (
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nvquang/vnpit/internal/breakeven"
	"github.com/nvquang/vnpit/internal/domain"
	"github.com/nvquang/vnpit/internal/rules"
)

func testInput(gross int64) TreatmentInput {
	return TreatmentInput{
		MonthlyGross: domain.VND(gross),
		Region:       domain.RegionI,
		Sector:       domain.SectorServices,
	}
}

func TestCompareTreatments(t *testing.T) {
	engine := NewEngine(rules.Default())

	t.Run("evaluates all three options", func(t *testing.T) {
		set := engine.CompareTreatments(testInput(30_000_000))
		require.Len(t, set.Options, 3)

		treatments := map[Treatment]bool{}
		for _, o := range set.Options {
			treatments[o.Treatment] = true
		}
		assert.True(t, treatments[TreatmentEmployee])
		assert.True(t, treatments[TreatmentFreelancer])
		assert.True(t, treatments[TreatmentBusiness])
	})

	t.Run("winner has a zero delta, others non-positive", func(t *testing.T) {
		set := engine.CompareTreatments(testInput(30_000_000))
		for _, o := range set.Options {
			if o.Treatment == set.Winner {
				assert.True(t, o.NetDiffFromBest.IsZero())
			} else {
				assert.True(t, o.NetDiffFromBest.LessThanOrEqual(domain.VND(0)))
			}
		}
	})

	t.Run("business wins at moderate income with no dependents", func(t *testing.T) {
		// 30M/month: employee pays 10.5% insurance plus PIT, freelancer 10%
		// flat, the services household pays 7% of revenue.
		set := engine.CompareTreatments(testInput(30_000_000))
		assert.Equal(t, TreatmentBusiness, set.Winner)
	})

	t.Run("employee insurance counts as a cost", func(t *testing.T) {
		res := engine.Employee(testInput(30_000_000))
		assert.True(t, res.MonthlyTax.Equal(domain.VND(702_500+3_150_000)),
			"out of pocket = %s", res.MonthlyTax)
		assert.True(t, res.MonthlyNet.Equal(domain.VND(26_147_500)))
	})

	t.Run("freelancer below the floor keeps everything", func(t *testing.T) {
		res := engine.Freelancer(testInput(1_500_000))
		assert.True(t, res.MonthlyTax.IsZero())
		assert.NotEmpty(t, res.Note)
	})
}

func TestBreakEvenEmployeeFreelancer(t *testing.T) {
	t.Run("no crossing under the statutory rates", func(t *testing.T) {
		// The 10% flat withholding always beats the employee's 10.5%
		// insurance floor, so the curves never cross and the solver says so.
		engine := NewEngine(rules.Default())
		_, err := engine.BreakEvenEmployeeFreelancer(context.Background(), testInput(0),
			domain.VND(3_000_000), domain.VND(200_000_000))
		require.Error(t, err)

		var solverErr *breakeven.Error
		require.ErrorAs(t, err, &solverErr)
	})

	t.Run("finds the crossing when one exists", func(t *testing.T) {
		// At a 30% withholding rate the employee starts ahead and loses the
		// lead once the progressive schedule plus capped insurance overtake
		// the flat rate.
		rs := rules.Default()
		rs.Flat.WithholdingRate = decimal.NewFromFloat(0.30)
		engine := NewEngine(rs)

		res, err := engine.BreakEvenEmployeeFreelancer(context.Background(), testInput(0),
			domain.VND(3_000_000), domain.VND(800_000_000))
		require.NoError(t, err)

		gap := res.NetA.Sub(res.NetB).Abs()
		assert.True(t, gap.LessThan(domain.VND(20_000)),
			"crossing gross %s leaves a net gap of %s", res.Gross, gap)
	})
}

func TestFormatters(t *testing.T) {
	engine := NewEngine(rules.Default())
	set := engine.CompareTreatments(testInput(30_000_000))

	t.Run("table", func(t *testing.T) {
		tf := &TableFormatter{}
		text := tf.Format(set)
		assert.Contains(t, text, string(TreatmentEmployee))
		assert.Contains(t, text, string(set.Winner))
	})

	t.Run("csv", func(t *testing.T) {
		cf := &CSVFormatter{}
		text, err := cf.Format(set)
		require.NoError(t, err)
		lines := strings.Split(strings.TrimSpace(text), "\n")
		assert.Len(t, lines, 4) // header plus three options
	})

	t.Run("json roundtrip", func(t *testing.T) {
		jf := &JSONFormatter{}
		text, err := jf.Format(set)
		require.NoError(t, err)

		var decoded ComparisonSet
		require.NoError(t, json.Unmarshal([]byte(text), &decoded))
		assert.Equal(t, set.Winner, decoded.Winner)
		assert.Len(t, decoded.Options, 3)
	})
}
