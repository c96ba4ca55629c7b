package importers

import (
	"strconv"
	"strings"

	"github.com/vaultport/vaultport/internal/entities"
)

// brandRule maps a leading-digit range to a card brand label. Rules are
// evaluated in order; the first match wins. No Luhn or length
// validation is performed here, the server owns real validation.
type brandRule struct {
	brand  string
	digits int // how many leading digits the range covers
	lo, hi int
}

var brandRules = []brandRule{
	{brand: "Amex", digits: 2, lo: 34, hi: 34},
	{brand: "Amex", digits: 2, lo: 37, hi: 37},
	{brand: "JCB", digits: 4, lo: 3528, hi: 3589},
	{brand: "Diners Club", digits: 3, lo: 300, hi: 305},
	{brand: "Diners Club", digits: 2, lo: 36, hi: 36},
	{brand: "Diners Club", digits: 2, lo: 38, hi: 38},
	{brand: "Visa", digits: 1, lo: 4, hi: 4},
	{brand: "Mastercard", digits: 4, lo: 2221, hi: 2720},
	{brand: "Mastercard", digits: 2, lo: 51, hi: 55},
	{brand: "Discover", digits: 4, lo: 6011, hi: 6011},
	{brand: "Discover", digits: 3, lo: 644, hi: 649},
	{brand: "Discover", digits: 2, lo: 65, hi: 65},
}

// cardBrand infers a brand label purely from the leading digits of the
// card number. Returns "" when no rule matches.
func cardBrand(number string) string {
	number = strings.TrimSpace(strings.ReplaceAll(number, " ", ""))
	for _, rule := range brandRules {
		if len(number) < rule.digits {
			continue
		}
		prefix, err := strconv.Atoi(number[:rule.digits])
		if err != nil {
			continue
		}
		if prefix >= rule.lo && prefix <= rule.hi {
			return rule.brand
		}
	}
	return ""
}

// setCardExpiry parses "MM/YY" or "M/YYYY"-shaped strings (optional
// internal whitespace) and writes the card's expiry fields on success.
// A failed parse leaves prior field state untouched and returns false.
func setCardExpiry(card *entities.Card, expiry string) bool {
	parts := strings.Split(strings.ReplaceAll(expiry, " ", ""), "/")
	if len(parts) != 2 {
		return false
	}

	month := strings.TrimPrefix(parts[0], "0")
	if m, err := strconv.Atoi(month); err != nil || m < 1 || m > 12 {
		return false
	}

	year := parts[1]
	switch len(year) {
	case 2:
		year = "20" + year
	case 4:
		// already a full year
	default:
		return false
	}
	if _, err := strconv.Atoi(year); err != nil {
		return false
	}

	card.ExpMonth = month
	card.ExpYear = year
	return true
}
