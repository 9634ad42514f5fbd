package request

import "bookmarket/internal/usecase"

// CreateAddressRequest is the payload for registering a delivery address.
type CreateAddressRequest struct {
	UserID     string `json:"user_id" binding:"required"`
	Label      string `json:"label"`
	Recipient  string `json:"recipient" binding:"required"`
	Line1      string `json:"line1" binding:"required"`
	Line2      string `json:"line2"`
	City       string `json:"city" binding:"required"`
	PostalCode string `json:"postal_code" binding:"required"`
	Country    string `json:"country" binding:"required"`
	Phone      string `json:"phone"`
	IsDefault  bool   `json:"is_default"`
}

func (r CreateAddressRequest) ToCommand() usecase.CreateAddressCommand {
	return usecase.CreateAddressCommand{
		UserID:     r.UserID,
		Label:      r.Label,
		Recipient:  r.Recipient,
		Line1:      r.Line1,
		Line2:      r.Line2,
		City:       r.City,
		PostalCode: r.PostalCode,
		Country:    r.Country,
		Phone:      r.Phone,
		IsDefault:  r.IsDefault,
	}
}

// UpdateAddressRequest carries a partial update; absent fields stay
// untouched.
type UpdateAddressRequest struct {
	Label      *string `json:"label"`
	Recipient  *string `json:"recipient"`
	Line1      *string `json:"line1"`
	Line2      *string `json:"line2"`
	City       *string `json:"city"`
	PostalCode *string `json:"postal_code"`
	Country    *string `json:"country"`
	Phone      *string `json:"phone"`
}

func (r UpdateAddressRequest) ToCommand() usecase.UpdateAddressCommand {
	return usecase.UpdateAddressCommand{
		Label:      r.Label,
		Recipient:  r.Recipient,
		Line1:      r.Line1,
		Line2:      r.Line2,
		City:       r.City,
		PostalCode: r.PostalCode,
		Country:    r.Country,
		Phone:      r.Phone,
	}
}

// CreateCategoryRequest is the payload for adding a catalog category.
type CreateCategoryRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
}
