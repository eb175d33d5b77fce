package seed

import (
	"fmt"
	"log"

	"vitrine/internal/models"

	"gorm.io/gorm"
)

// Seeder orchestrates database seeding using a Factory.
type Seeder struct {
	db      *gorm.DB
	factory *Factory
}

// NewSeeder creates a Seeder with default options.
func NewSeeder(db *gorm.DB) *Seeder {
	return &Seeder{db: db, factory: NewFactory(db, SeedOptions{})}
}

// ClearAll removes all seeded rows. Children first so FK constraints hold.
func (s *Seeder) ClearAll() error {
	log.Println("🧹 Clearing existing data...")
	tables := []interface{}{
		&models.Comment{},
		&models.Item{},
		&models.User{},
	}
	for _, table := range tables {
		if err := s.db.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(table).Error; err != nil {
			return fmt.Errorf("failed to clear %T: %w", table, err)
		}
	}
	return nil
}

// SeedUsers creates n users and returns them.
func (s *Seeder) SeedUsers(n int) ([]*models.User, error) {
	users := make([]*models.User, 0, n)
	for i := 0; i < n; i++ {
		user, err := s.factory.CreateUser()
		if err != nil {
			return nil, fmt.Errorf("failed to create user %d: %w", i, err)
		}
		users = append(users, user)
	}
	log.Printf("✓ Created %d users", len(users))
	return users, nil
}

// SeedItems creates n items spread across the given users.
func (s *Seeder) SeedItems(users []*models.User, n int) ([]*models.Item, error) {
	if len(users) == 0 {
		return nil, fmt.Errorf("no users to own items")
	}
	items := make([]*models.Item, 0, n)
	for i := 0; i < n; i++ {
		owner := users[s.factory.rnd.Intn(len(users))]
		item, err := s.factory.CreateItem(owner)
		if err != nil {
			return nil, fmt.Errorf("failed to create item %d: %w", i, err)
		}
		items = append(items, item)
	}
	log.Printf("✓ Created %d items", len(items))
	return items, nil
}

// SeedComments adds up to maxPerItem comments to each item, from random users.
func (s *Seeder) SeedComments(users []*models.User, items []*models.Item, maxPerItem int) (int, error) {
	if maxPerItem <= 0 {
		maxPerItem = 5
	}
	total := 0
	for _, item := range items {
		count := s.factory.rnd.Intn(maxPerItem + 1)
		for i := 0; i < count; i++ {
			author := users[s.factory.rnd.Intn(len(users))]
			if _, err := s.factory.CreateComment(author, item); err != nil {
				return total, fmt.Errorf("failed to comment on item %d: %w", item.ID, err)
			}
			total++
		}
	}
	log.Printf("✓ Created %d comments", total)
	return total, nil
}
