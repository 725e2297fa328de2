package backend

import "github.com/shopspring/decimal"

// User is the identity returned at login.
type User struct {
	ID       ID     `json:"id" validate:"required"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Role     string `json:"role"`
}

// LoginResult carries the access token and user profile.
type LoginResult struct {
	Token string `json:"token" validate:"required"`
	User  User   `json:"user"`
}

// NewsItem is one news article.
type NewsItem struct {
	ID         ID        `json:"id" validate:"required"`
	Title      string    `json:"title" validate:"required"`
	Slug       string    `json:"slug"`
	Summary    string    `json:"summary"`
	Content    string    `json:"content"`
	Category   string    `json:"category"`
	Author     string    `json:"author"`
	CoverImage string    `json:"cover_image"`
	Likes      int       `json:"likes"`
	LikedByMe  bool      `json:"liked_by_me"`
	CreatedAt  Timestamp `json:"created_at"`
}

// Event is one drafted tournament or community event.
type Event struct {
	ID          ID        `json:"id" validate:"required"`
	Name        string    `json:"name" validate:"required"`
	Description string    `json:"description"`
	Game        string    `json:"game"`
	Category    string    `json:"category"`
	Location    string    `json:"location"`
	Status      string    `json:"status"`
	Organizer   string    `json:"organizer"`
	StartDate   Timestamp `json:"start_date"`
}

// Coupon is a discount code managed by admins.
type Coupon struct {
	ID                 ID              `json:"id" validate:"required"`
	Code               string          `json:"code" validate:"required"`
	DiscountPercentage decimal.Decimal `json:"discount_percentage"`
	UsageLimit         int             `json:"usage_limit"`
	TimesUsed          int             `json:"times_used"`
	IsActive           bool            `json:"is_active"`
	ValidFrom          Timestamp       `json:"valid_from"`
	ValidUntil         Timestamp       `json:"valid_until"`
}

// CouponQuote is the result of validating a coupon against a cart.
type CouponQuote struct {
	Code               string          `json:"code" validate:"required"`
	DiscountPercentage decimal.Decimal `json:"discount_percentage"`
}

// QuotedLine is a server-priced cart line returned with a coupon quote.
type QuotedLine struct {
	VariantID ID              `json:"variant_id" validate:"required"`
	LineTotal decimal.Decimal `json:"line_total"`
}

// ProductVariant is one purchasable option of a product.
type ProductVariant struct {
	ID    ID               `json:"id" validate:"required"`
	Name  string           `json:"name"`
	Price *decimal.Decimal `json:"price"`
	Stock int              `json:"stock"`
}

// Product is a shop catalog entry.
type Product struct {
	ID          ID               `json:"id" validate:"required"`
	Name        string           `json:"name" validate:"required"`
	Description string           `json:"description"`
	Category    string           `json:"category"`
	ImageURL    string           `json:"image_url"`
	Price       decimal.Decimal  `json:"price"`
	Variants    []ProductVariant `json:"variants" validate:"dive"`
}

// TeamMember is one roster entry.
type TeamMember struct {
	ID       ID     `json:"id" validate:"required"`
	Username string `json:"username" validate:"required"`
	Role     string `json:"role"`
}

// Team is a team profile with its roster.
type Team struct {
	ID      ID           `json:"id" validate:"required"`
	Name    string       `json:"name" validate:"required"`
	Tag     string       `json:"tag"`
	Game    string       `json:"game"`
	OwnerID ID           `json:"owner_id"`
	Members []TeamMember `json:"members" validate:"dive"`
}

// CheckoutItem is one purchased line.
type CheckoutItem struct {
	VariantID  string `json:"variant_id"`
	ProductID  string `json:"product_id"`
	Quantity   int    `json:"quantity"`
	CouponCode string `json:"coupon_code,omitempty"`
}

// CheckoutRequest is the buy-now payload.
type CheckoutRequest struct {
	Items      []CheckoutItem `json:"items"`
	FirstName  string         `json:"first_name"`
	LastName   string         `json:"last_name"`
	Email      string         `json:"email"`
	Phone      string         `json:"phone"`
	Address    string         `json:"address"`
	City       string         `json:"city"`
	State      string         `json:"state"`
	PostalCode string         `json:"postal_code"`
}

// CouponEdit is the editable coupon field set.
type CouponEdit struct {
	CouponID           string          `json:"coupon_id"`
	Code               string          `json:"code"`
	DiscountPercentage decimal.Decimal `json:"discount_percentage"`
	UsageLimit         int             `json:"usage_limit"`
	IsActive           bool            `json:"is_active"`
	ValidUntil         string          `json:"valid_until,omitempty"`
}

// NewsLookup selects an article by id or slug.
type NewsLookup struct {
	NewsID string `json:"news_id,omitempty"`
	Slug   string `json:"slug,omitempty"`
}
