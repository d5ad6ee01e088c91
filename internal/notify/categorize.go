package notify

import (
	"strings"

	"github.com/krapaoshare/krapao-go/internal/model"
)

// Title keyword sets for category inference, checked in order. Matching
// is a case-insensitive substring test.
var categoryKeywords = []struct {
	category model.NotificationCategory
	keywords []string
}{
	{model.CategoryTransaction, []string{"transaction", "deposit", "withdraw", "transfer", "payment"}},
	{model.CategoryBill, []string{"bill", "invoice", "due"}},
	{model.CategoryGoal, []string{"goal", "target", "milestone", "saving"}},
}

// Categorize resolves a notification's category: the explicit category
// in the attached data payload wins, then title keyword matching, then
// "system" as the default.
//
// The title heuristic exists for compatibility with servers that do not
// classify notifications; it is fragile by nature and loses to the
// structured field whenever one is present.
func Categorize(n model.Notification) model.NotificationCategory {
	if n.Data.Category != "" {
		return n.Data.Category
	}

	title := strings.ToLower(n.Title)
	for _, set := range categoryKeywords {
		for _, keyword := range set.keywords {
			if strings.Contains(title, keyword) {
				return set.category
			}
		}
	}

	return model.CategorySystem
}
