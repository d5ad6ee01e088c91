// Package stats computes derived aggregates over account and
// transaction collections. Every function is pure and recomputed on
// read; nothing here caches or stores state.
package stats

import (
	"sort"
	"time"

	"github.com/krapaoshare/krapao-go/internal/model"
)

// TotalBalance sums CurrentBalance over all held accounts. It is
// always derived, never stored independently.
func TotalBalance(accounts []model.Account) float64 {
	var total float64
	for _, a := range accounts {
		total += a.CurrentBalance
	}
	return total
}

// TotalIncome sums the amounts of income transactions.
func TotalIncome(transactions []model.Transaction) float64 {
	return totalByType(transactions, model.TransactionIncome)
}

// TotalExpense sums the amounts of expense transactions.
func TotalExpense(transactions []model.Transaction) float64 {
	return totalByType(transactions, model.TransactionExpense)
}

func totalByType(transactions []model.Transaction, typ model.TransactionType) float64 {
	var total float64
	for _, t := range transactions {
		if t.Type == typ {
			total += t.Amount
		}
	}
	return total
}

// RecentTransactions returns the n transactions with the greatest
// CreatedAt, most recent first. The sort is stable: ties keep their
// original relative order. The input slice is not mutated.
func RecentTransactions(transactions []model.Transaction, n int) []model.Transaction {
	if n <= 0 {
		return []model.Transaction{}
	}

	sorted := make([]model.Transaction, len(transactions))
	copy(sorted, transactions)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].CreatedAt.After(sorted[j].CreatedAt)
	})

	if n > len(sorted) {
		n = len(sorted)
	}
	return sorted[:n]
}

// ByDay returns the transactions whose TransactionDate falls on the
// given calendar day, in the day's location.
func ByDay(transactions []model.Transaction, day time.Time) []model.Transaction {
	y, m, d := day.Date()
	var out []model.Transaction
	for _, t := range transactions {
		ty, tm, td := t.TransactionDate.In(day.Location()).Date()
		if ty == y && tm == m && td == d {
			out = append(out, t)
		}
	}
	return out
}

// Last7Days returns the transactions whose TransactionDate falls within
// the trailing 7-day window ending at now (inclusive).
func Last7Days(transactions []model.Transaction, now time.Time) []model.Transaction {
	start := now.AddDate(0, 0, -7)
	var out []model.Transaction
	for _, t := range transactions {
		if t.TransactionDate.After(start) && !t.TransactionDate.After(now) {
			out = append(out, t)
		}
	}
	return out
}

// ByMonth returns the transactions whose TransactionDate falls in the
// given calendar month and year.
func ByMonth(transactions []model.Transaction, year int, month time.Month) []model.Transaction {
	var out []model.Transaction
	for _, t := range transactions {
		if t.TransactionDate.Year() == year && t.TransactionDate.Month() == month {
			out = append(out, t)
		}
	}
	return out
}

// Summary bundles the dashboard figures derived from one account and
// one transaction collection.
type Summary struct {
	TotalBalance float64
	TotalIncome  float64
	TotalExpense float64
	NetFlow      float64
	Accounts     int
	Transactions int
}

// Summarize computes the dashboard summary in one pass over both
// collections.
func Summarize(accounts []model.Account, transactions []model.Transaction) Summary {
	income := TotalIncome(transactions)
	expense := TotalExpense(transactions)

	return Summary{
		TotalBalance: TotalBalance(accounts),
		TotalIncome:  income,
		TotalExpense: expense,
		NetFlow:      income - expense,
		Accounts:     len(accounts),
		Transactions: len(transactions),
	}
}
