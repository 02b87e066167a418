package models

import "time"

// RecordHeader carries the bookkeeping fields every persisted record shares.
type RecordHeader struct {
	ID        string    `json:"id"`        // Unique ID (UUID, dashless), immutable
	CreatedAt time.Time `json:"createdAt"` // UTC, set once
	UpdatedAt time.Time `json:"updatedAt"` // UTC, refreshed on every mutation
	Version   int       `json:"_v"`        // Incremented on every update, used for optimistic checks
}

// Brand is a merchant whose vouchers and coupons are offered on the platform.
type Brand struct {
	RecordHeader
	Name             string  `json:"name"`
	Description      string  `json:"description"`
	WebsiteURL       string  `json:"website_url"`
	BusinessCategory string  `json:"business_category"`
	Image            *string `json:"image"` // Relative upload path, null when no image was sent
}

// Voucher is a redeemable offer tied to a brand.
type Voucher struct {
	RecordHeader
	Brand        string   `json:"brand"` // Brand reference (id or display name, as sent by the form)
	Title        string   `json:"title"`
	Description  string   `json:"description"`
	Discount     float64  `json:"discount"`
	Coins        int      `json:"coins"`
	Price        float64  `json:"price"`
	WebsiteLink  string   `json:"websiteLink"`
	ValidUpTo    string   `json:"validUpTo"`
	Terms        []string `json:"terms"`
	HowToAvail   []string `json:"howToAvail"`
	Logo1        *string  `json:"logo1"`
	Logo2        *string  `json:"logo2"`
	ProductImage *string  `json:"productImage"`
	BanarImage   *string  `json:"banarImage"`
}

// Coupon is a code users can unlock with coins. Name is the display name the dashboard renames.
type Coupon struct {
	RecordHeader
	Name          string  `json:"name"`
	Code          string  `json:"code"`
	Brand         string  `json:"brand"`
	Discount      float64 `json:"discount"`
	CoinsToRedeem int     `json:"coins_to_redeem"`
	ValidUpTo     string  `json:"validUpTo"`
	Status        string  `json:"status"`
}

// CouponNameField is the JSON field renamed by coupon updates.
const CouponNameField = "name"
