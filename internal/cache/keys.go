package cache

// Collection keys. Structured tuples rather than joined strings so sub-keyed
// resources (a referral's order list) cannot collide with top-level ones.
var (
	KeyProducts      = Key{"products"}
	KeyCategories    = Key{"categories"}
	KeySubCategories = Key{"subcategories"}
	KeyCombos        = Key{"combos"}
	KeyOffers        = Key{"offers"}
	KeyOrders        = Key{"orders"}
	KeyCoupons       = Key{"coupons"}
	KeyReferrals     = Key{"referrals"}
	KeyReviews       = Key{"reviews"}
	KeyReturns       = Key{"returns"}
	KeyReplacements  = Key{"replacements"}
)

// KeyReferralOrders is the per-referral order sub-collection.
func KeyReferralOrders(referralID string) Key {
	return Key{"referrals", referralID, "orders"}
}
