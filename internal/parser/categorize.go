package parser

import (
	"encoding/json"
	"fmt"
	"strings"

	"spendlens/internal/models"

	"go.uber.org/zap"
)

// OtherCategory is the terminal category when no keyword matches.
const OtherCategory = "Other"

// ValidateKeywords checks that raw is a JSON array of strings.
func ValidateKeywords(raw string) error {
	var entries []string
	if err := json.Unmarshal([]byte(raw), &entries); err != nil {
		return fmt.Errorf("keyword list is not a JSON string array: %w", err)
	}
	return nil
}

// categorize assigns a category by case-insensitive keyword containment
// against the merchant name and the full email text. Configured categories
// are checked in stored order, then the built-in defaults. Never fails.
func categorize(merchant, text string, categories []models.Category, logger *zap.Logger) string {
	lowerMerchant := strings.ToLower(merchant)
	lowerText := strings.ToLower(text)

	matches := func(keyword string) bool {
		keyword = strings.ToLower(keyword)
		return keyword != "" &&
			(strings.Contains(lowerMerchant, keyword) || strings.Contains(lowerText, keyword))
	}

	for i := range categories {
		c := &categories[i]
		if !c.Active() {
			continue
		}

		var keywords []string
		if err := json.Unmarshal([]byte(c.Keywords), &keywords); err != nil {
			logger.Warn("Skipping category with malformed keywords",
				zap.String("category", c.Name),
				zap.Error(err),
			)
			continue
		}

		for _, keyword := range keywords {
			if matches(keyword) {
				return c.Name
			}
		}
	}

	for _, c := range defaultCategories {
		// The catch-all bucket matches by falling through, not by keyword.
		if c.Name == OtherCategory {
			continue
		}
		for _, keyword := range c.Keywords {
			if matches(keyword) {
				return c.Name
			}
		}
	}

	return OtherCategory
}
