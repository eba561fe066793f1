package models

import "github.com/shopspring/decimal"

// Commission weights across the four tiers, in percent. The retailer share
// takes whatever rounding leaves so the parts always sum to the total.
var (
	PlatformWeight    = decimal.NewFromInt(25)
	MidTierWeight     = decimal.NewFromInt(5)
	DistributorWeight = decimal.NewFromInt(20)
	RetailerWeight    = decimal.NewFromInt(50)
)

var hundred = decimal.NewFromInt(100)

// Split is a display-only breakdown of a row's commission. Settlement math
// is the upstream's business.
type Split struct {
	Platform    decimal.Decimal `json:"platform"`
	MidTier     decimal.Decimal `json:"mid_tier"`
	Distributor decimal.Decimal `json:"distributor"`
	Retailer    decimal.Decimal `json:"retailer"`
}

func share(total, weight decimal.Decimal) decimal.Decimal {
	return total.Mul(weight).Div(hundred).Round(2)
}

// SplitCommission rounds the first three shares to two places and assigns
// the remainder to the retailer.
func SplitCommission(total decimal.Decimal) Split {
	platform := share(total, PlatformWeight)
	midTier := share(total, MidTierWeight)
	distributor := share(total, DistributorWeight)
	return Split{
		Platform:    platform,
		MidTier:     midTier,
		Distributor: distributor,
		Retailer:    total.Sub(platform).Sub(midTier).Sub(distributor),
	}
}

// Sum adds the four shares back up.
func (s Split) Sum() decimal.Decimal {
	return s.Platform.Add(s.MidTier).Add(s.Distributor).Add(s.Retailer)
}
