package service

import (
	"context"
	"fmt"

	"locmaq-backend/internal/domain"
	"locmaq-backend/internal/repository"
)

type addressService struct {
	addressRepo repository.AddressRepository
}

func NewAddressService(addressRepo repository.AddressRepository) AddressService {
	return &addressService{addressRepo: addressRepo}
}

func (s *addressService) AddAddress(ctx context.Context, addr *domain.Address) error {
	if addr.UserID == "" || addr.Street == "" || addr.City == "" || addr.State == "" || addr.ZipCode == "" {
		return fmt.Errorf("%w: street, city, state and zip code are required", domain.ErrValidation)
	}
	return s.addressRepo.Create(ctx, addr)
}

func (s *addressService) ListMyAddresses(ctx context.Context, userID string) ([]domain.Address, error) {
	return s.addressRepo.ListByUser(ctx, userID)
}

func (s *addressService) DeleteAddress(ctx context.Context, userID, addressID string) error {
	return s.addressRepo.Delete(ctx, addressID, userID)
}
