package domain

import "time"

// MenuCategory is the closed set of menu sections. The same values are
// stored in the content store and used for public filtering.
type MenuCategory string

const (
	MenuCategoryCoffee    MenuCategory = "coffee"
	MenuCategoryNonCoffee MenuCategory = "non-coffee"
	MenuCategoryPastry    MenuCategory = "pastry"
)

func (c MenuCategory) Valid() bool {
	switch c {
	case MenuCategoryCoffee, MenuCategoryNonCoffee, MenuCategoryPastry:
		return true
	}
	return false
}

type GalleryCategory string

const (
	GalleryCategoryEvents     GalleryCategory = "events"
	GalleryCategoryOperations GalleryCategory = "operations"
)

func (c GalleryCategory) Valid() bool {
	return c == GalleryCategoryEvents || c == GalleryCategoryOperations
}

type PackageCategory string

const (
	PackageCategoryCoffeeCart  PackageCategory = "coffee cart"
	PackageCategoryPastryCart  PackageCategory = "pastry cart"
	PackageCategoryCombination PackageCategory = "combination"
)

func (c PackageCategory) Valid() bool {
	switch c {
	case PackageCategoryCoffeeCart, PackageCategoryPastryCart, PackageCategoryCombination:
		return true
	}
	return false
}

type InquiryStatus string

const (
	InquiryStatusNew      InquiryStatus = "new"
	InquiryStatusRead     InquiryStatus = "read"
	InquiryStatusArchived InquiryStatus = "archived"
)

func (s InquiryStatus) Valid() bool {
	switch s {
	case InquiryStatusNew, InquiryStatusRead, InquiryStatusArchived:
		return true
	}
	return false
}

type UserRole string

const (
	UserRoleAdmin    UserRole = "admin"
	UserRoleCustomer UserRole = "customer"
)

// Inspiration is the weekly quote card content. The share page and the
// card renderer both resolve it by ID, regardless of IsActive.
type Inspiration struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Quote     string    `json:"quote"`
	Reference string    `json:"reference"`
	Image     string    `json:"image"`
	IsActive  bool      `json:"isActive"`
	CreatedAt time.Time `json:"createdAt"`
}

// DisplayTitle falls back to the fixed weekly label when no title is set.
func (i Inspiration) DisplayTitle() string {
	if i.Title == "" {
		return DefaultInspirationTitle
	}
	return i.Title
}

type Banner struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Image       string    `json:"image"`
	LinkURL     string    `json:"linkUrl"`
	Order       int       `json:"order"`
	IsActive    bool      `json:"isActive"`
	CreatedAt   time.Time `json:"createdAt"`
}

type MenuItem struct {
	ID          string       `json:"id"`
	Name        string       `json:"name"`
	Description string       `json:"description"`
	Price       float64      `json:"price"`
	Category    MenuCategory `json:"category"`
	Image       string       `json:"image"`
	IsAvailable bool         `json:"isAvailable"`
	CreatedAt   time.Time    `json:"createdAt"`
}

type GalleryItem struct {
	ID          string          `json:"id"`
	Title       string          `json:"title"`
	Description string          `json:"description"`
	Image       string          `json:"image"`
	Category    GalleryCategory `json:"category"`
	CreatedAt   time.Time       `json:"createdAt"`
}

type Package struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       *float64        `json:"price"`
	Category    PackageCategory `json:"category"`
	Image       string          `json:"image"`
	Inclusions  []string        `json:"inclusions"`
	IsActive    bool            `json:"isActive"`
	CreatedAt   time.Time       `json:"createdAt"`
}

type Inquiry struct {
	ID        string        `json:"id"`
	Name      string        `json:"name"`
	Email     string        `json:"email"`
	Phone     string        `json:"phone"`
	EventDate string        `json:"eventDate"`
	Message   string        `json:"message"`
	Status    InquiryStatus `json:"status"`
	CreatedAt time.Time     `json:"createdAt"`
}

type User struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Role         UserRole  `json:"role"`
	FirstName    string    `json:"firstName"`
	LastName     string    `json:"lastName"`
	CreatedAt    time.Time `json:"createdAt"`
}

// PageMetadata feeds the share page's document head. Images is ordered:
// the rendered card URL comes first, the raw photo second when present.
type PageMetadata struct {
	Title       string         `json:"title"`
	Description string         `json:"description"`
	Images      []MetadataImage `json:"images"`
}

type MetadataImage struct {
	URL    string `json:"url"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
	Alt    string `json:"alt"`
}

// Event is published on the admin signal channel.
type Event struct {
	Type      string    `json:"type"`
	Body      any       `json:"body"`
	Timestamp time.Time `json:"timestamp"`
}
