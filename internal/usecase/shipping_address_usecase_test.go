package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"bookmarket/internal/domain/entities"
	mock_interfaces "bookmarket/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func validAddressCommand() CreateAddressCommand {
	return CreateAddressCommand{
		UserID:     "user-1",
		Label:      "home",
		Recipient:  "Maria Souza",
		Line1:      "Rua das Flores, 100",
		City:       "São Paulo",
		PostalCode: "01000-000",
		Country:    "BR",
	}
}

func storedAddress(id string) entities.ShippingAddress {
	now := time.Now().UTC()
	return entities.ShippingAddress{
		ID:         id,
		UserID:     "user-1",
		Recipient:  "Maria Souza",
		Line1:      "Rua das Flores, 100",
		City:       "São Paulo",
		PostalCode: "01000-000",
		Country:    "BR",
		CreatedAt:  now,
		UpdatedAt:  now,
	}
}

func TestCreateAddressValidation(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mock_interfaces.NewMockIShippingAddressRepository(ctrl)
	uc := NewShippingAddressUseCase(repo)

	cases := []struct {
		name   string
		mutate func(*CreateAddressCommand)
	}{
		{"missing user id", func(c *CreateAddressCommand) { c.UserID = " " }},
		{"missing recipient", func(c *CreateAddressCommand) { c.Recipient = "" }},
		{"missing line1", func(c *CreateAddressCommand) { c.Line1 = "" }},
		{"missing city", func(c *CreateAddressCommand) { c.City = "" }},
		{"missing postal code", func(c *CreateAddressCommand) { c.PostalCode = "" }},
		{"missing country", func(c *CreateAddressCommand) { c.Country = "" }},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cmd := validAddressCommand()
			tc.mutate(&cmd)

			_, err := uc.CreateAddress(context.Background(), cmd)
			if !errors.Is(err, ErrValidation) {
				t.Fatalf("expected validation error, got %v", err)
			}
		})
	}
}

func TestCreateAddress(t *testing.T) {
	t.Run("plain address leaves other defaults alone", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		repo := mock_interfaces.NewMockIShippingAddressRepository(ctrl)
		uc := NewShippingAddressUseCase(repo)

		// Not flagged default, so no ClearDefault expectation.
		repo.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.ShippingAddress{})).
			DoAndReturn(func(_ context.Context, a entities.ShippingAddress) (entities.ShippingAddress, error) {
				if a.ID == "" {
					t.Fatal("expected generated address id")
				}
				if a.IsDefault {
					t.Fatal("address must not be default unless requested")
				}
				return a, nil
			})

		if _, err := uc.CreateAddress(context.Background(), validAddressCommand()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("default address clears previous default first", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		repo := mock_interfaces.NewMockIShippingAddressRepository(ctrl)
		uc := NewShippingAddressUseCase(repo)

		gomock.InOrder(
			repo.EXPECT().ClearDefault(gomock.Any(), "user-1").Return(nil),
			repo.EXPECT().Create(gomock.Any(), gomock.Any()).
				DoAndReturn(func(_ context.Context, a entities.ShippingAddress) (entities.ShippingAddress, error) {
					if !a.IsDefault {
						t.Fatal("expected default flag set")
					}
					return a, nil
				}),
		)

		cmd := validAddressCommand()
		cmd.IsDefault = true
		if _, err := uc.CreateAddress(context.Background(), cmd); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestUpdateAddress(t *testing.T) {
	t.Run("partial update", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		repo := mock_interfaces.NewMockIShippingAddressRepository(ctrl)
		uc := NewShippingAddressUseCase(repo)

		existing := storedAddress("addr-1")
		newCity := "Campinas"

		repo.EXPECT().GetByID(gomock.Any(), "addr-1").Return(existing, nil)
		repo.EXPECT().Update(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, a entities.ShippingAddress) (entities.ShippingAddress, error) {
				if a.City != "Campinas" {
					t.Fatalf("expected updated city, got %q", a.City)
				}
				if a.Line1 != existing.Line1 {
					t.Fatal("untouched fields must be preserved")
				}
				return a, nil
			})

		updated, err := uc.UpdateAddress(context.Background(), "addr-1", UpdateAddressCommand{City: &newCity})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if updated.City != "Campinas" {
			t.Fatalf("unexpected city: %q", updated.City)
		}
	})

	t.Run("blanking a required field is rejected", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		repo := mock_interfaces.NewMockIShippingAddressRepository(ctrl)
		uc := NewShippingAddressUseCase(repo)

		repo.EXPECT().GetByID(gomock.Any(), "addr-1").Return(storedAddress("addr-1"), nil)

		blank := "  "
		_, err := uc.UpdateAddress(context.Background(), "addr-1", UpdateAddressCommand{Recipient: &blank})
		if !errors.Is(err, ErrValidation) {
			t.Fatalf("expected validation error, got %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		repo := mock_interfaces.NewMockIShippingAddressRepository(ctrl)
		uc := NewShippingAddressUseCase(repo)

		repo.EXPECT().GetByID(gomock.Any(), "missing").Return(entities.ShippingAddress{}, nil)

		city := "Campinas"
		_, err := uc.UpdateAddress(context.Background(), "missing", UpdateAddressCommand{City: &city})
		if !errors.Is(err, ErrAddressNotFound) {
			t.Fatalf("expected ErrAddressNotFound, got %v", err)
		}
	})
}

func TestSetDefaultAddress(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mock_interfaces.NewMockIShippingAddressRepository(ctrl)
	uc := NewShippingAddressUseCase(repo)

	existing := storedAddress("addr-1")

	gomock.InOrder(
		repo.EXPECT().GetByID(gomock.Any(), "addr-1").Return(existing, nil),
		repo.EXPECT().ClearDefault(gomock.Any(), "user-1").Return(nil),
		repo.EXPECT().Update(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, a entities.ShippingAddress) (entities.ShippingAddress, error) {
				if !a.IsDefault {
					t.Fatal("expected default flag set before persisting")
				}
				return a, nil
			}),
	)

	updated, err := uc.SetDefault(context.Background(), "addr-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !updated.IsDefault {
		t.Fatal("expected returned address to be default")
	}
}

func TestDeleteAddressNotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mock_interfaces.NewMockIShippingAddressRepository(ctrl)
	uc := NewShippingAddressUseCase(repo)

	repo.EXPECT().GetByID(gomock.Any(), "missing").Return(entities.ShippingAddress{}, nil)

	err := uc.DeleteAddress(context.Background(), "missing")
	if !errors.Is(err, ErrAddressNotFound) {
		t.Fatalf("expected ErrAddressNotFound, got %v", err)
	}
}
