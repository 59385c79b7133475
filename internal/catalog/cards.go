// Package catalog holds the static card and sale-event tables.
//
// Both tables are fixed at process start and never mutated; record IDs are
// assigned once when the process loads the package.
package catalog

import (
	"github.com/google/uuid"

	"baniya/internal/core"
)

var cards = withCardIDs([]core.Card{
	{Name: "HDFC Millennia", Bank: "HDFC", CashbackRate: "5% on shopping", AnnualFee: "₹1,000", Features: []string{"Amazon Prime", "Swiggy vouchers"}, BestFor: []string{core.CategoryShopping, core.CategoryDining}, RewardType: core.RewardCashback},
	{Name: "SBI SimplyCLICK", Bank: "SBI", CashbackRate: "10x rewards online", AnnualFee: "₹499", Features: []string{"Movie vouchers", "Dining discounts"}, BestFor: []string{core.CategoryShopping, core.CategoryUtilities}, RewardType: core.RewardPoints},
	{Name: "ICICI Amazon Pay", Bank: "ICICI", CashbackRate: "5% on Amazon", AnnualFee: "₹500", Features: []string{"Prime benefits", "Fuel surcharge"}, BestFor: []string{core.CategoryShopping}, RewardType: core.RewardCashback},
	{Name: "Axis Flipkart", Bank: "Axis", CashbackRate: "4% Flipkart", AnnualFee: "₹500", Features: []string{"Priority delivery", "Extra discounts"}, BestFor: []string{core.CategoryShopping}, RewardType: core.RewardCashback},
	{Name: "IndusInd Iconia", Bank: "IndusInd", CashbackRate: "2 reward pts/₹100", AnnualFee: "₹3,000", Features: []string{"Lounge access", "Complimentary insurance"}, BestFor: []string{core.CategoryTravel, core.CategoryDining}, RewardType: core.RewardPoints},
	{Name: "Yes First Exclusive", Bank: "Yes Bank", CashbackRate: "6 pts/₹200", AnnualFee: "₹2,499", Features: []string{"Airport lounge", "Golf access"}, BestFor: []string{core.CategoryTravel}, RewardType: core.RewardPoints},
	{Name: "HSBC Cashback", Bank: "HSBC", CashbackRate: "1.5% on all", AnnualFee: "₹750", Features: []string{"Global acceptance", "Fuel waiver"}, BestFor: []string{core.CategoryGrocery, core.CategoryUtilities}, RewardType: core.RewardCashback},
	{Name: "Standard Chartered DigiSmart", Bank: "SC", CashbackRate: "5% on digital", AnnualFee: "₹499", Features: []string{"Streaming benefits", "UPI cashback"}, BestFor: []string{core.CategoryShopping, core.CategoryUtilities}, RewardType: core.RewardCashback},
	{Name: "Axis Vistara Infinite", Bank: "Axis", CashbackRate: "6 CV Points/₹200", AnnualFee: "₹10,000", Features: []string{"Free tickets", "Priority boarding"}, BestFor: []string{core.CategoryTravel}, RewardType: core.RewardPoints},
	{Name: "HDFC Regalia", Bank: "HDFC", CashbackRate: "4 pts/₹150", AnnualFee: "₹2,500", Features: []string{"Lounge access", "Golf sessions"}, BestFor: []string{core.CategoryTravel, core.CategoryDining}, RewardType: core.RewardPoints},
	{Name: "SBI Card ELITE", Bank: "SBI", CashbackRate: "5X rewards", AnnualFee: "₹4,999", Features: []string{"Complimentary stays", "Golf rounds"}, BestFor: []string{core.CategoryTravel}, RewardType: core.RewardPoints},
	{Name: "ICICI Coral", Bank: "ICICI", CashbackRate: "2 pts/₹100", AnnualFee: "₹500", Features: []string{"Dining offers", "Movie discounts"}, BestFor: []string{core.CategoryDining, core.CategoryShopping}, RewardType: core.RewardPoints},
	{Name: "Kotak Royale Signature", Bank: "Kotak", CashbackRate: "3.3% value back", AnnualFee: "₹1,999", Features: []string{"Airport lounge", "Golf access"}, BestFor: []string{core.CategoryTravel, core.CategoryDining}, RewardType: core.RewardPoints},
	{Name: "RBL Shoprite", Bank: "RBL", CashbackRate: "10% on 3 brands", AnnualFee: "₹750", Features: []string{"Brand vouchers", "Fuel surcharge"}, BestFor: []string{core.CategoryShopping}, RewardType: core.RewardCashback},
	{Name: "BOB Easy", Bank: "BOB", CashbackRate: "5% on dining", AnnualFee: "₹499", Features: []string{"Movie offers", "Fuel benefits"}, BestFor: []string{core.CategoryDining, core.CategoryUtilities}, RewardType: core.RewardCashback},
	{Name: "AU LIT", Bank: "AU Bank", CashbackRate: "5% unlimited", AnnualFee: "₹200", Features: []string{"No restrictions", "Low fee"}, BestFor: []string{core.CategoryShopping, core.CategoryGrocery}, RewardType: core.RewardCashback},
	{Name: "Federal Celesta", Bank: "Federal", CashbackRate: "10X on dining", AnnualFee: "₹499", Features: []string{"Fuel waiver", "Dining discounts"}, BestFor: []string{core.CategoryDining}, RewardType: core.RewardPoints},
	{Name: "American Express Platinum Travel", Bank: "AMEX", CashbackRate: "5 points/₹50", AnnualFee: "₹3,500", Features: []string{"Airport transfers", "Taj vouchers"}, BestFor: []string{core.CategoryTravel}, RewardType: core.RewardPoints},
	{Name: "Citi Cashback", Bank: "Citi", CashbackRate: "5% on all", AnnualFee: "₹500", Features: []string{"Unlimited cashback", "Utility bill pay"}, BestFor: []string{core.CategoryGrocery, core.CategoryUtilities}, RewardType: core.RewardCashback},
	{Name: "OneCard Metal Edition", Bank: "OneCard", CashbackRate: "5% cashback", AnnualFee: "₹0", Features: []string{"No forex markup", "Instant approval"}, BestFor: []string{core.CategoryShopping, core.CategoryTravel}, RewardType: core.RewardCashback},
})

func withCardIDs(cs []core.Card) []core.Card {
	for i := range cs {
		cs[i].ID = uuid.NewString()
	}
	return cs
}

// Cards returns the full card table in catalog order. Callers must not
// modify the returned slice.
func Cards() []core.Card {
	return cards
}
