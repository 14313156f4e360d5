package models

import "time"

// Paginated is the page envelope returned by the paged list endpoints.
type Paginated[T any] struct {
	Items      []T `json:"items"`
	TotalItems int `json:"totalItems"`
	PageNumber int `json:"pageNumber"`
	PageSize   int `json:"pageSize"`
	TotalPages int `json:"totalPages"`
}

// Category is a product category within a tenant.
type Category struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	IsActive    bool   `json:"isActive"`
	CreatedAt   string `json:"createdAt,omitempty"`
	UpdatedAt   string `json:"updatedAt,omitempty"`
}

// CategoryRequest creates or updates a category.
type CategoryRequest struct {
	ID          string `json:"id,omitempty"`
	Name        string `json:"name"`
	Description string `json:"description"`
	IsActive    bool   `json:"isActive"`
}

// Product is a sellable item within a tenant.
type Product struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Description  string `json:"description,omitempty"`
	SKU          string `json:"sku,omitempty"`
	Barcode      string `json:"barcode,omitempty"`
	CategoryID   string `json:"categoryId,omitempty"`
	CategoryName string `json:"categoryName,omitempty"`
	OrganizerID  string `json:"organizerId,omitempty"`
	IsActive     bool   `json:"isActive"`
	CreatedAt    string `json:"createdAt,omitempty"`
	UpdatedAt    string `json:"updatedAt,omitempty"`
}

// ProductRequest creates or updates a product.
type ProductRequest struct {
	ID          string `json:"id,omitempty"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	SKU         string `json:"sku,omitempty"`
	Barcode     string `json:"barcode,omitempty"`
	CategoryID  string `json:"categoryId,omitempty"`
	IsActive    bool   `json:"isActive"`
}

// Organizer is a tenant of the platform.
type Organizer struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	TaxID     string `json:"taxId,omitempty"`
	IsActive  bool   `json:"isActive"`
	CreatedAt string `json:"createdAt,omitempty"`
	UpdatedAt string `json:"updatedAt,omitempty"`
}

// OrganizerRequest creates or updates an organizer.
type OrganizerRequest struct {
	ID       string `json:"id,omitempty"`
	Name     string `json:"name"`
	TaxID    string `json:"taxId,omitempty"`
	IsActive bool   `json:"isActive"`
}

// PriceListScope controls which sales channel a price list applies to.
type PriceListScope string

const (
	PriceListScopeAll    PriceListScope = "all"
	PriceListScopeOnline PriceListScope = "online"
	PriceListScopeOnSite PriceListScope = "onsite"
)

// PriceListStatus is the lifecycle state of a price list.
type PriceListStatus string

const (
	PriceListStatusDraft    PriceListStatus = "draft"
	PriceListStatusActive   PriceListStatus = "active"
	PriceListStatusArchived PriceListStatus = "archived"
)

// PriceListItem assigns a price to one product within a price list.
type PriceListItem struct {
	ProductID   string  `json:"productId"`
	ProductName string  `json:"productName,omitempty"`
	Price       float64 `json:"price"`
}

// PriceList is a named set of product prices for a tenant.
type PriceList struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description,omitempty"`
	Scope       PriceListScope  `json:"scope"`
	Status      PriceListStatus `json:"status"`
	OrganizerID string          `json:"organizerId"`
	ValidFrom   *time.Time      `json:"validFrom,omitempty"`
	ValidUntil  *time.Time      `json:"validUntil,omitempty"`
	Priority    int             `json:"priority"`
	Items       []PriceListItem `json:"items,omitempty"`
}

// PriceListRequest creates or updates a price list.
type PriceListRequest struct {
	ID          string          `json:"id,omitempty"`
	Name        string          `json:"name"`
	Description string          `json:"description,omitempty"`
	Scope       PriceListScope  `json:"scope"`
	Status      PriceListStatus `json:"status"`
	ValidFrom   *time.Time      `json:"validFrom,omitempty"`
	ValidUntil  *time.Time      `json:"validUntil,omitempty"`
	Priority    int             `json:"priority"`
	Items       []PriceListItem `json:"items,omitempty"`
}

// StaffStatus is the employment state of a staff member.
type StaffStatus string

const (
	StaffStatusActive    StaffStatus = "active"
	StaffStatusSuspended StaffStatus = "suspended"
)

// Staff is a platform user attached to the current tenant.
type Staff struct {
	UserID      string      `json:"userId"`
	FirstName   string      `json:"firstName"`
	LastName    string      `json:"lastName"`
	FullName    string      `json:"fullName"`
	Email       string      `json:"email"`
	PhoneNumber string      `json:"phoneNumber,omitempty"`
	Roles       string      `json:"roles"`
	Status      StaffStatus `json:"status"`
}

// StaffRequest attaches a user to the current tenant with a set of roles.
type StaffRequest struct {
	UserID      string   `json:"userId"`
	RoleIDs     []string `json:"roleIds"`
	Permissions []string `json:"permissions,omitempty"`
}

// User is a platform account independent of any tenant.
type User struct {
	ID        string `json:"id"`
	Username  string `json:"username"`
	Email     string `json:"email"`
	FullName  string `json:"fullName,omitempty"`
	IsActive  bool   `json:"isActive"`
	CreatedAt string `json:"createdAt,omitempty"`
	UpdatedAt string `json:"updatedAt,omitempty"`
}

// UserOrganization is one tenant membership of a user.
type UserOrganization struct {
	OrganizationID   string   `json:"organizationId"`
	OrganizationName string   `json:"organizationName"`
	Role             string   `json:"role"`
	Permissions      []string `json:"permissions"`
	IsActive         bool     `json:"isActive"`
	JoinedAt         string   `json:"joinedAt,omitempty"`
}
