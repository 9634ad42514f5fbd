package usecase

import (
	"context"
	"log"
	"strings"
	"time"

	"bookmarket/internal/domain/entities"
	"bookmarket/internal/usecase/interfaces"

	"github.com/google/uuid"
)

// CreateAddressCommand carries the fields for a new shipping address.
type CreateAddressCommand struct {
	UserID     string
	Label      string
	Recipient  string
	Line1      string
	Line2      string
	City       string
	PostalCode string
	Country    string
	Phone      string
	IsDefault  bool
}

// UpdateAddressCommand is a partial update; nil fields are left untouched.
type UpdateAddressCommand struct {
	Label      *string
	Recipient  *string
	Line1      *string
	Line2      *string
	City       *string
	PostalCode *string
	Country    *string
	Phone      *string
}

// IShippingAddressUseCase exposes shipping address operations.
type IShippingAddressUseCase interface {
	CreateAddress(ctx context.Context, cmd CreateAddressCommand) (entities.ShippingAddress, error)
	UpdateAddress(ctx context.Context, id string, cmd UpdateAddressCommand) (entities.ShippingAddress, error)
	GetByID(ctx context.Context, id string) (entities.ShippingAddress, error)
	DeleteAddress(ctx context.Context, id string) error
	ListByUser(ctx context.Context, userID string) ([]entities.ShippingAddress, error)
	SetDefault(ctx context.Context, id string) (entities.ShippingAddress, error)
}

type ShippingAddressUseCase struct {
	repo interfaces.IShippingAddressRepository
}

var _ IShippingAddressUseCase = (*ShippingAddressUseCase)(nil)

func NewShippingAddressUseCase(repo interfaces.IShippingAddressRepository) *ShippingAddressUseCase {
	return &ShippingAddressUseCase{repo: repo}
}

func (u *ShippingAddressUseCase) CreateAddress(ctx context.Context, cmd CreateAddressCommand) (entities.ShippingAddress, error) {
	cmd.UserID = strings.TrimSpace(cmd.UserID)
	if cmd.UserID == "" {
		return entities.ShippingAddress{}, newValidationError("user_id", "is required")
	}
	if err := validateAddressFields(cmd.Recipient, cmd.Line1, cmd.City, cmd.PostalCode, cmd.Country); err != nil {
		return entities.ShippingAddress{}, err
	}

	if cmd.IsDefault {
		if err := u.repo.ClearDefault(ctx, cmd.UserID); err != nil {
			return entities.ShippingAddress{}, err
		}
	}

	now := time.Now().UTC()
	a := entities.ShippingAddress{
		ID:         uuid.NewString(),
		UserID:     cmd.UserID,
		Label:      strings.TrimSpace(cmd.Label),
		Recipient:  strings.TrimSpace(cmd.Recipient),
		Line1:      strings.TrimSpace(cmd.Line1),
		Line2:      strings.TrimSpace(cmd.Line2),
		City:       strings.TrimSpace(cmd.City),
		PostalCode: strings.TrimSpace(cmd.PostalCode),
		Country:    strings.TrimSpace(cmd.Country),
		Phone:      strings.TrimSpace(cmd.Phone),
		IsDefault:  cmd.IsDefault,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	created, err := u.repo.Create(ctx, a)
	if err != nil {
		log.Printf("[address][usecase] create failed user_id=%s err=%v", cmd.UserID, err)
		return entities.ShippingAddress{}, err
	}
	return created, nil
}

func (u *ShippingAddressUseCase) UpdateAddress(ctx context.Context, id string, cmd UpdateAddressCommand) (entities.ShippingAddress, error) {
	a, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.ShippingAddress{}, err
	}

	if cmd.Label != nil {
		a.Label = strings.TrimSpace(*cmd.Label)
	}
	if cmd.Recipient != nil {
		a.Recipient = strings.TrimSpace(*cmd.Recipient)
	}
	if cmd.Line1 != nil {
		a.Line1 = strings.TrimSpace(*cmd.Line1)
	}
	if cmd.Line2 != nil {
		a.Line2 = strings.TrimSpace(*cmd.Line2)
	}
	if cmd.City != nil {
		a.City = strings.TrimSpace(*cmd.City)
	}
	if cmd.PostalCode != nil {
		a.PostalCode = strings.TrimSpace(*cmd.PostalCode)
	}
	if cmd.Country != nil {
		a.Country = strings.TrimSpace(*cmd.Country)
	}
	if cmd.Phone != nil {
		a.Phone = strings.TrimSpace(*cmd.Phone)
	}

	if err := validateAddressFields(a.Recipient, a.Line1, a.City, a.PostalCode, a.Country); err != nil {
		return entities.ShippingAddress{}, err
	}

	a.UpdatedAt = time.Now().UTC()
	updated, err := u.repo.Update(ctx, a)
	if err != nil {
		return entities.ShippingAddress{}, err
	}
	if updated.ID == "" {
		return entities.ShippingAddress{}, ErrAddressNotFound
	}
	return updated, nil
}

func (u *ShippingAddressUseCase) GetByID(ctx context.Context, id string) (entities.ShippingAddress, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.ShippingAddress{}, newValidationError("id", "is required")
	}

	a, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.ShippingAddress{}, err
	}
	if a.ID == "" {
		return entities.ShippingAddress{}, ErrAddressNotFound
	}
	return a, nil
}

func (u *ShippingAddressUseCase) DeleteAddress(ctx context.Context, id string) error {
	a, err := u.GetByID(ctx, id)
	if err != nil {
		return err
	}
	return u.repo.Delete(ctx, a.ID)
}

func (u *ShippingAddressUseCase) ListByUser(ctx context.Context, userID string) ([]entities.ShippingAddress, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return nil, newValidationError("user_id", "is required")
	}
	return u.repo.ListByUser(ctx, userID)
}

// SetDefault makes the address the user's single default.
func (u *ShippingAddressUseCase) SetDefault(ctx context.Context, id string) (entities.ShippingAddress, error) {
	a, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.ShippingAddress{}, err
	}

	if err := u.repo.ClearDefault(ctx, a.UserID); err != nil {
		return entities.ShippingAddress{}, err
	}

	a.IsDefault = true
	a.UpdatedAt = time.Now().UTC()
	updated, err := u.repo.Update(ctx, a)
	if err != nil {
		return entities.ShippingAddress{}, err
	}
	if updated.ID == "" {
		return entities.ShippingAddress{}, ErrAddressNotFound
	}
	log.Printf("[address][usecase] default set address_id=%s user_id=%s", a.ID, a.UserID)
	return updated, nil
}

func validateAddressFields(recipient, line1, city, postalCode, country string) error {
	if strings.TrimSpace(recipient) == "" {
		return newValidationError("recipient", "is required")
	}
	if strings.TrimSpace(line1) == "" {
		return newValidationError("line1", "is required")
	}
	if strings.TrimSpace(city) == "" {
		return newValidationError("city", "is required")
	}
	if strings.TrimSpace(postalCode) == "" {
		return newValidationError("postal_code", "is required")
	}
	if strings.TrimSpace(country) == "" {
		return newValidationError("country", "is required")
	}
	return nil
}
