package seed

import (
	"fmt"
	"log"

	"skillbridge/internal/models"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Seeder populates the database with demo accounts, listings and applications.
type Seeder struct {
	db      *gorm.DB
	factory *Factory
}

// NewSeeder creates a Seeder bound to the provided Gorm DB.
func NewSeeder(db *gorm.DB) *Seeder {
	return &Seeder{db: db, factory: NewFactory(db)}
}

// ClearAll truncates every seeded table, children first.
func (s *Seeder) ClearAll() error {
	log.Println("Clearing existing data...")
	for _, model := range []any{
		&models.Application{},
		&models.Profile{},
		&models.Internship{},
		&models.User{},
	} {
		if err := s.db.Session(&gorm.Session{AllowGlobalUpdate: true}).
			Unscoped().Delete(model).Error; err != nil {
			return fmt.Errorf("clearing %T: %w", model, err)
		}
	}
	return nil
}

// Run seeds a demo admin, student accounts, listings, applications and a
// profile. Every account gets DefaultPassword.
func (s *Seeder) Run(numStudents, numInternships int) error {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(DefaultPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	admin := &models.User{
		Name:     "Admin User",
		Email:    "admin@skillbridge.com",
		Password: string(hashedPassword),
		Role:     models.RoleAdmin,
	}
	if err := s.db.Create(admin).Error; err != nil {
		return fmt.Errorf("seeding admin: %w", err)
	}

	demoStudent := &models.User{
		Name:     "Demo Student",
		Email:    "student@skillbridge.com",
		Password: string(hashedPassword),
		Role:     models.RoleStudent,
	}
	if err := s.db.Create(demoStudent).Error; err != nil {
		return fmt.Errorf("seeding demo student: %w", err)
	}

	students := []*models.User{demoStudent}
	for i := 1; i < numStudents; i++ {
		student, err := s.factory.CreateUser()
		if err != nil {
			return fmt.Errorf("seeding student %d: %w", i, err)
		}
		students = append(students, student)
	}
	log.Printf("Seeded %d students and 1 admin", len(students))

	internships := make([]*models.Internship, 0, numInternships)
	for i := 0; i < numInternships; i++ {
		internship, err := s.factory.CreateInternship(admin)
		if err != nil {
			return fmt.Errorf("seeding internship %d: %w", i, err)
		}
		internships = append(internships, internship)
	}
	log.Printf("Seeded %d internships", len(internships))

	// Each student applies to up to three distinct listings.
	applications := 0
	for _, student := range students {
		perApplicant := 3
		if perApplicant > len(internships) {
			perApplicant = len(internships)
		}
		for _, i := range s.factory.rand.Perm(len(internships))[:perApplicant] {
			if _, err := s.factory.CreateApplication(student, internships[i]); err != nil {
				return fmt.Errorf("seeding application: %w", err)
			}
			applications++
		}
	}
	log.Printf("Seeded %d applications", applications)

	if _, err := s.factory.CreateProfile(demoStudent); err != nil {
		return fmt.Errorf("seeding profile: %w", err)
	}
	return nil
}
