// Package seed provides helpers to create demo data for the application
// database. These helpers are intended for development and testing only.
package seed

import (
	"fmt"
	"math/rand"
	"net/url"
	"time"

	"vitrine/internal/models"

	"github.com/brianvoe/gofakeit/v6"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// SeedOptions tunes how the factory generates data.
type SeedOptions struct {
	// SkipBcrypt stores a plaintext password instead of hashing. Dev only.
	SkipBcrypt bool
	// MaxDays is the spread of generated created_at timestamps, in days.
	MaxDays int
}

// Factory builds domain entities and persists them to the database.
type Factory struct {
	db   *gorm.DB
	opts SeedOptions
	rnd  *rand.Rand
}

// NewFactory creates a new Factory bound to the provided Gorm DB.
func NewFactory(db *gorm.DB, opts SeedOptions) *Factory {
	gofakeit.Seed(time.Now().UnixNano())
	if opts.MaxDays <= 0 {
		opts.MaxDays = 90
	}
	// #nosec G404: acceptable for seeding
	return &Factory{db: db, opts: opts, rnd: rand.New(rand.NewSource(time.Now().UnixNano()))}
}

// CreateUser constructs and persists a sample `models.User`.
// Optional override functions may modify the generated user before saving.
func (f *Factory) CreateUser(overrides ...func(*models.User)) (*models.User, error) {
	name := gofakeit.Name()
	user := &models.User{
		Name:       name,
		Email:      gofakeit.Email(),
		ProfileImg: fmt.Sprintf("https://api.dicebear.com/9.x/adventurer/svg?seed=%s", url.QueryEscape(name)),
	}

	if f.opts.SkipBcrypt {
		user.Password = "password123"
	} else {
		hashedPassword, _ := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
		user.Password = string(hashedPassword)
	}

	for _, override := range overrides {
		override(user)
	}

	if err := f.db.Create(user).Error; err != nil {
		return nil, err
	}
	return user, nil
}

// CreateItem constructs and persists a sample `models.Item` owned by the
// given user. Roughly two thirds of generated items are public.
func (f *Factory) CreateItem(user *models.User, overrides ...func(*models.Item)) (*models.Item, error) {
	visibility := models.VisibilityPublic
	if f.rnd.Intn(3) == 0 {
		visibility = models.VisibilityPrivate
	}

	ratings := make([]float64, f.rnd.Intn(6))
	for i := range ratings {
		ratings[i] = float64(f.rnd.Intn(9)+2) / 2 // 1.0 .. 5.0 in half steps
	}

	item := &models.Item{
		Title:       gofakeit.Sentence(4),
		Description: gofakeit.Paragraph(1, 3, 8, "\n"),
		Img:         fmt.Sprintf("https://picsum.photos/seed/%s/800/600", gofakeit.UUID()),
		Visibility:  visibility,
		Ratings:     ratings,
		CreatorName: user.Name,
		CreatorImg:  user.ProfileImg,
		UserID:      user.ID,
	}
	item.CreatedAt = f.spreadTimestamp()

	for _, override := range overrides {
		override(item)
	}

	if err := f.db.Create(item).Error; err != nil {
		return nil, err
	}
	return item, nil
}

// CreateComment constructs and persists a sample `models.Comment` on the
// provided item authored by the provided user.
func (f *Factory) CreateComment(user *models.User, item *models.Item, overrides ...func(*models.Comment)) (*models.Comment, error) {
	comment := &models.Comment{
		ItemID:    item.ID,
		UserID:    user.ID,
		UserName:  user.Name,
		UserImg:   user.ProfileImg,
		Text:      gofakeit.Sentence(10),
		CreatedAt: f.spreadTimestamp(),
	}

	for _, override := range overrides {
		override(comment)
	}

	if err := f.db.Create(comment).Error; err != nil {
		return nil, err
	}
	return comment, nil
}

// spreadTimestamp returns a created_at within the configured day spread so
// seeded listings don't all share one timestamp.
func (f *Factory) spreadTimestamp() time.Time {
	daysBack := f.rnd.Intn(f.opts.MaxDays)
	hoursBack := f.rnd.Intn(24)
	minsBack := f.rnd.Intn(60)
	return time.Now().Add(-time.Duration(daysBack)*24*time.Hour -
		time.Duration(hoursBack)*time.Hour -
		time.Duration(minsBack)*time.Minute)
}
