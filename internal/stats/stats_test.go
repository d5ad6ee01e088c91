package stats

import (
	"testing"
	"time"

	"github.com/krapaoshare/krapao-go/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTotalBalance(t *testing.T) {
	tests := []struct {
		name     string
		accounts []model.Account
		want     float64
	}{
		{
			name:     "empty",
			accounts: nil,
			want:     0,
		},
		{
			name: "mixed signs",
			accounts: []model.Account{
				{CurrentBalance: 100},
				{CurrentBalance: -30},
			},
			want: 70,
		},
		{
			name: "single account",
			accounts: []model.Account{
				{CurrentBalance: 1234.56},
			},
			want: 1234.56,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, TotalBalance(tt.accounts), 0.0001)
		})
	}
}

func TestTotalIncomeAndExpense(t *testing.T) {
	transactions := []model.Transaction{
		{Type: model.TransactionIncome, Amount: 500},
		{Type: model.TransactionExpense, Amount: 200},
		{Type: model.TransactionExpense, Amount: 50},
	}

	assert.InDelta(t, 500.0, TotalIncome(transactions), 0.0001)
	assert.InDelta(t, 250.0, TotalExpense(transactions), 0.0001)
}

func TestTotalIncome_IgnoresTransfers(t *testing.T) {
	transactions := []model.Transaction{
		{Type: model.TransactionIncome, Amount: 100},
		{Type: model.TransactionTransfer, Amount: 999},
	}

	assert.InDelta(t, 100.0, TotalIncome(transactions), 0.0001)
	assert.InDelta(t, 0.0, TotalExpense(transactions), 0.0001)
}

func TestRecentTransactions(t *testing.T) {
	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	t1 := model.Transaction{ID: "t1", CreatedAt: base}
	t2 := model.Transaction{ID: "t2", CreatedAt: base.Add(time.Hour)}
	t3 := model.Transaction{ID: "t3", CreatedAt: base.Add(2 * time.Hour)}
	t4 := model.Transaction{ID: "t4", CreatedAt: base.Add(3 * time.Hour)}

	got := RecentTransactions([]model.Transaction{t1, t2, t3, t4}, 2)

	require.Len(t, got, 2)
	assert.Equal(t, "t4", got[0].ID)
	assert.Equal(t, "t3", got[1].ID)
}

func TestRecentTransactions_StableOnTies(t *testing.T) {
	ts := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	a := model.Transaction{ID: "a", CreatedAt: ts}
	b := model.Transaction{ID: "b", CreatedAt: ts}
	c := model.Transaction{ID: "c", CreatedAt: ts.Add(time.Minute)}

	got := RecentTransactions([]model.Transaction{a, b, c}, 3)

	require.Len(t, got, 3)
	assert.Equal(t, "c", got[0].ID)
	assert.Equal(t, "a", got[1].ID, "ties keep original relative order")
	assert.Equal(t, "b", got[2].ID)
}

func TestRecentTransactions_Bounds(t *testing.T) {
	txns := []model.Transaction{{ID: "only"}}

	assert.Len(t, RecentTransactions(txns, 5), 1)
	assert.Empty(t, RecentTransactions(txns, 0))
	assert.Empty(t, RecentTransactions(txns, -1))
}

func TestRecentTransactions_DoesNotMutateInput(t *testing.T) {
	base := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	txns := []model.Transaction{
		{ID: "old", CreatedAt: base},
		{ID: "new", CreatedAt: base.Add(time.Hour)},
	}

	RecentTransactions(txns, 2)

	assert.Equal(t, "old", txns[0].ID)
	assert.Equal(t, "new", txns[1].ID)
}

func TestByDay(t *testing.T) {
	day := time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)
	transactions := []model.Transaction{
		{ID: "same-day", TransactionDate: time.Date(2025, 6, 15, 23, 59, 0, 0, time.UTC)},
		{ID: "next-day", TransactionDate: time.Date(2025, 6, 16, 0, 1, 0, 0, time.UTC)},
		{ID: "prev-day", TransactionDate: time.Date(2025, 6, 14, 12, 0, 0, 0, time.UTC)},
	}

	got := ByDay(transactions, day)

	require.Len(t, got, 1)
	assert.Equal(t, "same-day", got[0].ID)
}

func TestLast7Days(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	transactions := []model.Transaction{
		{ID: "today", TransactionDate: now},
		{ID: "six-days-ago", TransactionDate: now.AddDate(0, 0, -6)},
		{ID: "eight-days-ago", TransactionDate: now.AddDate(0, 0, -8)},
		{ID: "tomorrow", TransactionDate: now.AddDate(0, 0, 1)},
	}

	got := Last7Days(transactions, now)

	require.Len(t, got, 2)
	assert.Equal(t, "today", got[0].ID)
	assert.Equal(t, "six-days-ago", got[1].ID)
}

func TestByMonth(t *testing.T) {
	transactions := []model.Transaction{
		{ID: "june", TransactionDate: time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)},
		{ID: "june-later", TransactionDate: time.Date(2025, 6, 30, 23, 0, 0, 0, time.UTC)},
		{ID: "july", TransactionDate: time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC)},
		{ID: "june-last-year", TransactionDate: time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC)},
	}

	got := ByMonth(transactions, 2025, time.June)

	require.Len(t, got, 2)
	assert.Equal(t, "june", got[0].ID)
	assert.Equal(t, "june-later", got[1].ID)
}

func TestSummarize(t *testing.T) {
	accounts := []model.Account{
		{CurrentBalance: 100},
		{CurrentBalance: 250},
	}
	transactions := []model.Transaction{
		{Type: model.TransactionIncome, Amount: 500},
		{Type: model.TransactionExpense, Amount: 200},
	}

	summary := Summarize(accounts, transactions)

	assert.InDelta(t, 350.0, summary.TotalBalance, 0.0001)
	assert.InDelta(t, 500.0, summary.TotalIncome, 0.0001)
	assert.InDelta(t, 200.0, summary.TotalExpense, 0.0001)
	assert.InDelta(t, 300.0, summary.NetFlow, 0.0001)
	assert.Equal(t, 2, summary.Accounts)
	assert.Equal(t, 2, summary.Transactions)
}
