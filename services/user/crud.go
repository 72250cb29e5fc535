package user

import (
	"fmt"

	"caresync/models"

	"go.mongodb.org/mongo-driver/bson"
)

// GetUserByID fetches a single account.
func (s *DefaultUserService) GetUserByID(id string) (*models.User, error) {
	u, err := s.Repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, fmt.Errorf("user %s not found", id)
	}
	return u, nil
}

// UpdateProfile applies the editable profile fields only.
func (s *DefaultUserService) UpdateProfile(id string, updates models.User) (*models.User, error) {
	fields := bson.M{}
	if updates.Name != "" {
		fields["name"] = updates.Name
	}
	if updates.PhoneNumber != "" {
		fields["phoneNumber"] = updates.PhoneNumber
	}
	if updates.Specialty != "" {
		fields["specialty"] = updates.Specialty
	}
	if len(fields) == 0 {
		return s.GetUserByID(id)
	}

	u, err := s.Repo.Update(id, fields)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, fmt.Errorf("user %s not found", id)
	}
	return u, nil
}

// DeleteUser removes the account.
func (s *DefaultUserService) DeleteUser(id string) error {
	return s.Repo.Delete(id)
}

// ListDoctors returns all registered doctors.
func (s *DefaultUserService) ListDoctors() ([]models.User, error) {
	return s.Repo.ListByRole(models.RoleDoctor)
}
