package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/Ganga-777/Cloud-Kitchen/app-svc/internal/domain"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

type UserPatch struct {
	Name  *string `json:"name,omitempty"`
	Email *string `json:"email,omitempty"`
	Phone *string `json:"phone,omitempty"`
}

type AddressInput struct {
	Type    domain.AddressType `json:"type"`
	Address string             `json:"address"`
	Default bool               `json:"default"`
}

type AddressPatch struct {
	Type    *domain.AddressType `json:"type,omitempty"`
	Address *string             `json:"address,omitempty"`
}

type PaymentMethodInput struct {
	Type    domain.PaymentType `json:"type"`
	Last4   string             `json:"last4,omitempty"`
	Brand   string             `json:"brand,omitempty"`
	Default bool               `json:"default"`
}

// UserStore holds the signed-in profile. Every profile mutation requires a
// signed-in user.
type UserStore struct {
	store
	user     *domain.User
	loggedIn bool
}

func NewUserStore(snapshots SnapshotStore, logger logrus.FieldLogger) *UserStore {
	s := &UserStore{}
	s.init(snapshots, nil, logger)
	return s
}

func (s *UserStore) Login(ctx context.Context, user domain.User) domain.User {
	s.mu.Lock()
	defer s.mu.Unlock()

	user = cloneUser(user)
	if user.ID == "" {
		user.ID = uuid.NewString()
	}
	normalizeDefaults(&user)
	s.user = &user
	s.loggedIn = true
	s.save(ctx, UserKey, s.record())
	return cloneUser(user)
}

func (s *UserStore) Logout(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.user = nil
	s.loggedIn = false
	s.save(ctx, UserKey, s.record())
}

func (s *UserStore) Current() (domain.User, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.loggedIn || s.user == nil {
		return domain.User{}, false
	}
	return cloneUser(*s.user), true
}

func (s *UserStore) IsLoggedIn() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.loggedIn && s.user != nil
}

func (s *UserStore) UpdateUser(ctx context.Context, patch UserPatch) (domain.User, error) {
	var updated domain.User
	err := s.mutate(ctx, func(user *domain.User) error {
		if patch.Name != nil {
			user.Name = *patch.Name
		}
		if patch.Email != nil {
			user.Email = *patch.Email
		}
		if patch.Phone != nil {
			user.Phone = *patch.Phone
		}
		updated = cloneUser(*user)
		return nil
	})
	return updated, err
}

// AddAddress appends an address. The first address, or one flagged default,
// becomes the only default.
func (s *UserStore) AddAddress(ctx context.Context, in AddressInput) (domain.Address, error) {
	if strings.TrimSpace(in.Address) == "" {
		return domain.Address{}, invalid("address", "must not be empty")
	}
	if in.Type == "" {
		in.Type = domain.AddressOther
	}

	var added domain.Address
	err := s.mutate(ctx, func(user *domain.User) error {
		added = domain.Address{
			ID:      uuid.NewString(),
			Type:    in.Type,
			Address: strings.TrimSpace(in.Address),
			Default: in.Default || len(user.Addresses) == 0,
		}
		if added.Default {
			for i := range user.Addresses {
				user.Addresses[i].Default = false
			}
		}
		user.Addresses = append(user.Addresses, added)
		return nil
	})
	return added, err
}

func (s *UserStore) UpdateAddress(ctx context.Context, id string, patch AddressPatch) (domain.Address, error) {
	var updated domain.Address
	err := s.mutate(ctx, func(user *domain.User) error {
		idx := indexOfAddress(user.Addresses, id)
		if idx < 0 {
			return ErrAddressNotFound
		}
		if patch.Address != nil {
			if strings.TrimSpace(*patch.Address) == "" {
				return invalid("address", "must not be empty")
			}
			user.Addresses[idx].Address = strings.TrimSpace(*patch.Address)
		}
		if patch.Type != nil {
			user.Addresses[idx].Type = *patch.Type
		}
		updated = user.Addresses[idx]
		return nil
	})
	return updated, err
}

// RemoveAddress deletes an address. Removing the default promotes the first
// remaining one.
func (s *UserStore) RemoveAddress(ctx context.Context, id string) error {
	return s.mutate(ctx, func(user *domain.User) error {
		idx := indexOfAddress(user.Addresses, id)
		if idx < 0 {
			return ErrAddressNotFound
		}
		wasDefault := user.Addresses[idx].Default
		user.Addresses = append(user.Addresses[:idx], user.Addresses[idx+1:]...)
		if wasDefault && len(user.Addresses) > 0 {
			user.Addresses[0].Default = true
		}
		return nil
	})
}

func (s *UserStore) SetDefaultAddress(ctx context.Context, id string) error {
	return s.mutate(ctx, func(user *domain.User) error {
		if indexOfAddress(user.Addresses, id) < 0 {
			return ErrAddressNotFound
		}
		for i := range user.Addresses {
			user.Addresses[i].Default = user.Addresses[i].ID == id
		}
		return nil
	})
}

func (s *UserStore) AddPaymentMethod(ctx context.Context, in PaymentMethodInput) (domain.PaymentMethod, error) {
	switch in.Type {
	case domain.PaymentCard, domain.PaymentUPI, domain.PaymentWallet:
	default:
		return domain.PaymentMethod{}, invalid("type", "unknown payment type %q", in.Type)
	}

	var added domain.PaymentMethod
	err := s.mutate(ctx, func(user *domain.User) error {
		added = domain.PaymentMethod{
			ID:      uuid.NewString(),
			Type:    in.Type,
			Last4:   in.Last4,
			Brand:   in.Brand,
			Default: in.Default || len(user.PaymentMethods) == 0,
		}
		if added.Default {
			for i := range user.PaymentMethods {
				user.PaymentMethods[i].Default = false
			}
		}
		user.PaymentMethods = append(user.PaymentMethods, added)
		return nil
	})
	return added, err
}

func (s *UserStore) RemovePaymentMethod(ctx context.Context, id string) error {
	return s.mutate(ctx, func(user *domain.User) error {
		idx := indexOfPaymentMethod(user.PaymentMethods, id)
		if idx < 0 {
			return ErrPaymentMethodNotFound
		}
		wasDefault := user.PaymentMethods[idx].Default
		user.PaymentMethods = append(user.PaymentMethods[:idx], user.PaymentMethods[idx+1:]...)
		if wasDefault && len(user.PaymentMethods) > 0 {
			user.PaymentMethods[0].Default = true
		}
		return nil
	})
}

func (s *UserStore) SetDefaultPaymentMethod(ctx context.Context, id string) error {
	return s.mutate(ctx, func(user *domain.User) error {
		if indexOfPaymentMethod(user.PaymentMethods, id) < 0 {
			return ErrPaymentMethodNotFound
		}
		for i := range user.PaymentMethods {
			user.PaymentMethods[i].Default = user.PaymentMethods[i].ID == id
		}
		return nil
	})
}

func (s *UserStore) Load(ctx context.Context) error {
	var record domain.UserRecord
	found, err := s.load(ctx, UserKey, &record)
	if err != nil {
		return fmt.Errorf("failed to load user: %w", err)
	}
	if !found {
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.user = record.User
	s.loggedIn = record.IsLoggedIn && record.User != nil
	return nil
}

// mutate applies fn to a working copy of the signed-in user and commits it
// only when fn succeeds.
func (s *UserStore) mutate(ctx context.Context, fn func(user *domain.User) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.loggedIn || s.user == nil {
		return ErrNotLoggedIn
	}
	working := cloneUser(*s.user)
	if err := fn(&working); err != nil {
		return err
	}
	s.user = &working
	s.save(ctx, UserKey, s.record())
	return nil
}

func (s *UserStore) record() domain.UserRecord {
	record := domain.UserRecord{IsLoggedIn: s.loggedIn}
	if s.user != nil {
		user := cloneUser(*s.user)
		record.User = &user
	}
	return record
}

func indexOfAddress(addresses []domain.Address, id string) int {
	for i, address := range addresses {
		if address.ID == id {
			return i
		}
	}
	return -1
}

func indexOfPaymentMethod(methods []domain.PaymentMethod, id string) int {
	for i, method := range methods {
		if method.ID == id {
			return i
		}
	}
	return -1
}

// normalizeDefaults keeps the first flagged address and payment method as the
// only defaults. Lists with no flagged entry default to their first entry.
func normalizeDefaults(user *domain.User) {
	found := false
	for i := range user.Addresses {
		user.Addresses[i].Default = user.Addresses[i].Default && !found
		found = found || user.Addresses[i].Default
	}
	if !found && len(user.Addresses) > 0 {
		user.Addresses[0].Default = true
	}

	found = false
	for i := range user.PaymentMethods {
		user.PaymentMethods[i].Default = user.PaymentMethods[i].Default && !found
		found = found || user.PaymentMethods[i].Default
	}
	if !found && len(user.PaymentMethods) > 0 {
		user.PaymentMethods[0].Default = true
	}
}

func cloneUser(user domain.User) domain.User {
	user.Addresses = append([]domain.Address{}, user.Addresses...)
	user.PaymentMethods = append([]domain.PaymentMethod{}, user.PaymentMethods...)
	return user
}
