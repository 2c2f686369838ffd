package model

// ListingType classifies a listing by market.
type ListingType string

const (
	TypeSpot      ListingType = "spot"
	TypePerp      ListingType = "perp"
	TypeAlpha     ListingType = "alpha"
	TypePreMarket ListingType = "pre-market"
)

// Types lists the known listing types in display order.
var Types = []ListingType{TypeSpot, TypePerp, TypePreMarket, TypeAlpha}

// Known reports whether t is one of the four listing types.
func (t ListingType) Known() bool {
	switch t {
	case TypeSpot, TypePerp, TypeAlpha, TypePreMarket:
		return true
	}
	return false
}

// Label returns the display label. Unknown types render as "Spot".
func (t ListingType) Label() string {
	switch t {
	case TypePerp:
		return "Perp"
	case TypeAlpha:
		return "Alpha"
	case TypePreMarket:
		return "Pre-Market"
	default:
		return "Spot"
	}
}

// Class returns the styling suffix for the type ("spot", "perp", "alpha", "premarket").
func (t ListingType) Class() string {
	switch t {
	case TypePerp:
		return "perp"
	case TypeAlpha:
		return "alpha"
	case TypePreMarket:
		return "premarket"
	default:
		return "spot"
	}
}

// Listing is one exchange listing announcement. Empty optional fields are
// treated as absent.
type Listing struct {
	Date         string      `json:"date" csv:"date"` // "YYYY-MM-DD"
	Exchange     string      `json:"exchange,omitempty" csv:"exchange"`
	Type         ListingType `json:"type,omitempty" csv:"type"`
	Token        string      `json:"token,omitempty" csv:"token"`
	TokenDisplay string      `json:"token_display,omitempty" csv:"token_display"`
	Time         string      `json:"time,omitempty" csv:"time"`
	Pairs        string      `json:"pairs,omitempty" csv:"pairs"`
	Notes        string      `json:"notes,omitempty" csv:"notes"`
}

// ResolvedType returns the listing type, defaulting to spot when absent.
func (l Listing) ResolvedType() ListingType {
	if l.Type == "" {
		return TypeSpot
	}
	return l.Type
}

// ExchangeOr returns the exchange name, or placeholder when absent.
func (l Listing) ExchangeOr(placeholder string) string {
	if l.Exchange == "" {
		return placeholder
	}
	return l.Exchange
}

// DisplayToken prefers the display name, then the token code, then placeholder.
func (l Listing) DisplayToken(placeholder string) string {
	if l.TokenDisplay != "" {
		return l.TokenDisplay
	}
	if l.Token != "" {
		return l.Token
	}
	return placeholder
}

// Title formats the "{exchange}-{type}-{token}" line used in day cells and
// modal headers.
func (l Listing) Title(exchangePlaceholder, tokenPlaceholder string) string {
	return l.ExchangeOr(exchangePlaceholder) + "-" + l.ResolvedType().Label() + "-" + l.DisplayToken(tokenPlaceholder)
}
