package calculation

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fincalc/fincalc/internal/domain"
)

func TestSolveExtraPaymentMeetsTarget(t *testing.T) {
	in := testLoan()
	target := 240 // 20 years on a 30-year note

	extra, err := SolveExtraPayment(in, target)
	require.NoError(t, err)
	require.True(t, extra.IsPositive())

	// The solved amount retires the loan within the target.
	plan := &domain.ExtraPaymentPlan{MonthlyAmount: extra, MonthlyStart: 1}
	rows, err := BuildSchedule(in, plan)
	require.NoError(t, err)
	assert.LessOrEqual(t, len(rows), target)

	// A cent less does not.
	cent := decimal.NewFromFloat(0.01)
	rows, err = BuildSchedule(in, &domain.ExtraPaymentPlan{
		MonthlyAmount: extra.Sub(cent).Sub(cent),
		MonthlyStart:  1,
	})
	require.NoError(t, err)
	assert.Greater(t, len(rows), target, "the solved extra should be close to minimal")
}

func TestSolveExtraPaymentAlreadyMet(t *testing.T) {
	in := testLoan()
	extra, err := SolveExtraPayment(in, 360)
	require.NoError(t, err)
	assert.True(t, extra.IsZero(), "scheduled term already meets the target")

	extra, err = SolveExtraPayment(in, 500)
	require.NoError(t, err)
	assert.True(t, extra.IsZero())
}

func TestSolveExtraPaymentOneMonth(t *testing.T) {
	in := testLoan()
	extra, err := SolveExtraPayment(in, 1)
	require.NoError(t, err)

	rows, err := BuildSchedule(in, &domain.ExtraPaymentPlan{MonthlyAmount: extra, MonthlyStart: 1})
	require.NoError(t, err)
	assert.Equal(t, 1, len(rows))
}

func TestSolveExtraPaymentInvalidTarget(t *testing.T) {
	_, err := SolveExtraPayment(testLoan(), 0)
	assert.Error(t, err)
}
