package config

import (
	"log"

	"masterbike/internal/adapters/persistence/models"
	"masterbike/internal/pkg/password"

	"gorm.io/gorm"
)

// Seeder handles database seeding
type Seeder struct {
	db *gorm.DB
}

// NewSeeder creates a new seeder instance
func NewSeeder(db *gorm.DB) *Seeder {
	return &Seeder{db: db}
}

// Run executes all seeders
func (s *Seeder) Run() error {
	log.Println("🌱 Running database seeders...")

	if err := s.seedAdminUser(); err != nil {
		log.Printf("⚠️ Admin seeder skipped: %v", err)
	}
	if err := s.seedBikes(); err != nil {
		log.Printf("⚠️ Bike seeder skipped: %v", err)
	}
	if err := s.seedInventory(); err != nil {
		log.Printf("⚠️ Inventory seeder skipped: %v", err)
	}

	log.Println("✅ Database seeding completed")
	return nil
}

// seedAdminUser seeds default admin user
// This is for development/testing only
// In production, create admin through secure process
func (s *Seeder) seedAdminUser() error {
	var count int64
	s.db.Model(&models.User{}).Where("role = ?", "admin").Count(&count)
	if count > 0 {
		return nil // Admin already exists
	}

	hashedPassword, err := password.Hash("admin123456")
	if err != nil {
		return err
	}

	admin := &models.User{
		Name:     "Administrador",
		Email:    "admin@masterbike.mx",
		Password: hashedPassword,
		Role:     "admin",
		IsActive: true,
	}

	if err := s.db.Create(admin).Error; err != nil {
		return err
	}

	log.Printf("✅ Admin user created: %s", admin.Email)
	return nil
}

// seedBikes seeds the demo rental fleet
func (s *Seeder) seedBikes() error {
	var count int64
	s.db.Model(&models.Bike{}).Count(&count)
	if count > 0 {
		return nil
	}

	bikes := []models.Bike{
		{Name: "Urbana Clásica", Type: "Urbana", Brand: "Mercurio", HourlyRate: 80, Stock: 6, AvailableForRent: true},
		{Name: "Montaña Trail 29", Type: "Montaña", Brand: "Alubike", HourlyRate: 120, Stock: 4, AvailableForRent: true},
		{Name: "Ruta Aero", Type: "Ruta", Brand: "Benotto", HourlyRate: 150, Stock: 3, AvailableForRent: true},
		{Name: "Eléctrica City", Type: "Eléctrica", Brand: "Veloci", HourlyRate: 200, Stock: 2, AvailableForRent: true},
	}

	if err := s.db.Create(&bikes).Error; err != nil {
		return err
	}

	log.Printf("✅ Seeded %d rental bikes", len(bikes))
	return nil
}

// seedInventory seeds the demo sale catalog
func (s *Seeder) seedInventory() error {
	var count int64
	s.db.Model(&models.InventoryItem{}).Count(&count)
	if count > 0 {
		return nil
	}

	items := []models.InventoryItem{
		{Name: "Montaña Trail 29", Brand: "Alubike", Category: models.CategoryBike, Price: 8900, Stock: 5},
		{Name: "Urbana Clásica", Brand: "Mercurio", Category: models.CategoryBike, Price: 4500, Stock: 8},
		{Name: "Casco urbano", Brand: "Bell", Category: models.CategorySparePart, Price: 450, Stock: 20},
		{Name: "Cadena 10v", Brand: "Shimano", Category: models.CategorySparePart, Price: 380, Stock: 15},
		{Name: "Llanta 29x2.1", Brand: "Maxxis", Category: models.CategorySparePart, Price: 720, Stock: 10},
	}

	if err := s.db.Create(&items).Error; err != nil {
		return err
	}

	log.Printf("✅ Seeded %d inventory items", len(items))
	return nil
}
