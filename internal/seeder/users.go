package seeder

import (
	"github.com/planhub/planhub/internal/models"
	"github.com/planhub/planhub/internal/utils"
)

// seedUsers creates the demo accounts, returning every user keyed by email
// so later stages can resolve fixture references.
func (s *Seeder) seedUsers() map[string]*models.User {
	byEmail := make(map[string]*models.User, len(demoUsers))

	for _, fix := range demoUsers {
		user, err := s.ensureUser(fix)
		if err != nil {
			s.log.Warnf("skipping user %s: %v", fix.Email, err)
			continue
		}
		byEmail[user.Email] = user
	}

	return byEmail
}

func (s *Seeder) ensureUser(fix userFixture) (*models.User, error) {
	existing, err := s.users.FindUserByEmail(fix.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return existing, nil
	}

	hash, err := utils.Hash(fix.Password)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Name:         fix.Name,
		Email:        fix.Email,
		PasswordHash: string(hash),
		Role:         "user",
	}
	user.Prepare()
	if err := s.users.Create(user); err != nil {
		return nil, err
	}

	s.log.Infof("created user %s", user.Email)
	return user, nil
}
