package core

import (
	"errors"
	"time"
)

// Spending categories a card can be optimized for.
const (
	CategoryGrocery   = "grocery"
	CategoryDining    = "dining"
	CategoryTravel    = "travel"
	CategoryShopping  = "shopping"
	CategoryUtilities = "utilities"
)

// Reward types a card can carry.
const (
	RewardCashback = "cashback"
	RewardPoints   = "points"
)

type (
	// Card is an immutable credit-card record from the static catalog.
	Card struct {
		ID           string   `json:"id"`
		Name         string   `json:"name"`
		Bank         string   `json:"bank"`
		CashbackRate string   `json:"cashback_rate"`
		AnnualFee    string   `json:"annual_fee"` // currency-formatted, e.g. "₹1,000"
		Features     []string `json:"features"`
		BestFor      []string `json:"best_for"`
		RewardType   string   `json:"reward_type"`
	}

	// SpendingProfile is a monthly spend breakdown in whole rupees.
	SpendingProfile struct {
		Grocery   int `json:"grocery"`
		Dining    int `json:"dining"`
		Travel    int `json:"travel"`
		Shopping  int `json:"shopping"`
		Utilities int `json:"utilities"`
	}

	// Recommendation pairs a card with its fit against a spending profile.
	Recommendation struct {
		Card             Card   `json:"card"`
		MatchScore       int    `json:"match_score"`
		EstimatedSavings int    `json:"estimated_savings"`
		Reason           string `json:"reason"`
	}

	// SaleEvent is an immutable sale-prediction record.
	SaleEvent struct {
		ID               string   `json:"id"`
		Platform         string   `json:"platform"`
		EventName        string   `json:"event_name"`
		StartDate        string   `json:"start_date"`
		EndDate          string   `json:"end_date"`
		ExpectedDiscount string   `json:"expected_discount"`
		Categories       []string `json:"categories"`
		Confidence       string   `json:"confidence"`
	}

	// Fund is the running savings counter for one user.
	Fund struct {
		TotalSaved   float64 `json:"total_saved"`
		Transactions int     `json:"transactions"`
		LastUpdated  string  `json:"last_updated"`
	}

	// Deposit is a single recorded addition to a fund.
	Deposit struct {
		ID          int64     `json:"id"`
		User        string    `json:"user"`
		Amount      float64   `json:"amount"`
		DepositedAt time.Time `json:"deposited_at"`
	}
)

var (
	ErrNegativeSpend = errors.New("spend amounts must be non-negative")
	ErrInvalidAmount = errors.New("invalid amount")
	ErrInvalidFee    = errors.New("invalid fee")
	ErrEmptyUser     = errors.New("empty user")
)

func (p SpendingProfile) Validate() error {
	if p.Grocery < 0 || p.Dining < 0 || p.Travel < 0 || p.Shopping < 0 || p.Utilities < 0 {
		return ErrNegativeSpend
	}
	return nil
}

// Total returns the combined monthly spend across all categories.
func (p SpendingProfile) Total() int {
	return p.Grocery + p.Dining + p.Travel + p.Shopping + p.Utilities
}

// OptimizedFor reports whether the card targets the given spending category.
func (c Card) OptimizedFor(category string) bool {
	for _, b := range c.BestFor {
		if b == category {
			return true
		}
	}
	return false
}

// ZeroFund returns an empty fund record stamped with the current time,
// used when a user has never deposited anything.
func ZeroFund(now time.Time) Fund {
	return Fund{TotalSaved: 0, Transactions: 0, LastUpdated: now.UTC().Format(time.RFC3339)}
}

func (d Deposit) Validate() error {
	if d.User == "" {
		return ErrEmptyUser
	}
	if d.Amount <= 0 {
		return ErrInvalidAmount
	}
	return nil
}
