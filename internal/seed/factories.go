// Package seed provides helpers to create test and demo data for the
// application database. These helpers are intended for development and
// testing only.
package seed

import (
	"fmt"
	"math/rand"
	"time"

	"skillbridge/internal/models"

	"github.com/brianvoe/gofakeit/v6"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// DefaultPassword is the password every seeded account gets.
const DefaultPassword = "password123"

var skillPool = []string{
	"Go", "Python", "JavaScript", "TypeScript", "React", "Node.js",
	"PostgreSQL", "MongoDB", "Docker", "Kubernetes", "AWS", "Redis",
	"Machine Learning", "TensorFlow", "SQL", "REST API", "GraphQL",
	"Linux", "CI/CD", "Terraform",
}

var countryPool = []string{
	"India", "United States", "Germany", "Singapore", "Canada",
	"United Kingdom", "Australia", "Netherlands", "Japan", "Remote",
}

var durationPool = []string{"3 months", "4 months", "5 months", "6 months"}

// Factory builds domain entities and persists them to the database.
type Factory struct {
	db   *gorm.DB
	rand *rand.Rand
}

// NewFactory creates a new Factory bound to the provided Gorm DB.
func NewFactory(db *gorm.DB) *Factory {
	gofakeit.Seed(time.Now().UnixNano())
	return &Factory{
		db:   db,
		rand: rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// CreateUser constructs and persists a sample user. Optional override
// functions may modify the generated user before saving.
func (f *Factory) CreateUser(overrides ...func(*models.User)) (*models.User, error) {
	hashedPassword, _ := bcrypt.GenerateFromPassword([]byte(DefaultPassword), bcrypt.DefaultCost)
	user := &models.User{
		Name:     gofakeit.Name(),
		Email:    gofakeit.Email(),
		Password: string(hashedPassword),
		Role:     models.RoleStudent,
	}
	for _, override := range overrides {
		override(user)
	}
	if err := f.db.Create(user).Error; err != nil {
		return nil, err
	}
	return user, nil
}

// CreateInternship constructs and persists a sample listing owned by creator.
func (f *Factory) CreateInternship(creator *models.User, overrides ...func(*models.Internship)) (*models.Internship, error) {
	skills := f.pickSkills(3 + f.rand.Intn(3))
	internship := &models.Internship{
		Title:       fmt.Sprintf("%s Intern", gofakeit.JobTitle()),
		Company:     gofakeit.Company(),
		Description: gofakeit.Paragraph(1, 3, 12, " "),
		Skills:      skills,
		Country:     countryPool[f.rand.Intn(len(countryPool))],
		Duration:    durationPool[f.rand.Intn(len(durationPool))],
		Stipend:     fmt.Sprintf("$%d/month", 500+f.rand.Intn(2500)),
		// Deadlines spread over the next half year.
		ApplicationDeadline: time.Now().AddDate(0, 0, 14+f.rand.Intn(170)),
		IsActive:            true,
		CreatedByID:         creator.ID,
	}
	for _, override := range overrides {
		override(internship)
	}
	if err := f.db.Create(internship).Error; err != nil {
		return nil, err
	}
	return internship, nil
}

// CreateApplication persists an application by student to internship.
func (f *Factory) CreateApplication(student *models.User, internship *models.Internship, overrides ...func(*models.Application)) (*models.Application, error) {
	application := &models.Application{
		InternshipID: internship.ID,
		StudentID:    student.ID,
		StudentName:  student.Name,
		StudentEmail: student.Email,
		CoverLetter:  gofakeit.Paragraph(1, 2, 10, " "),
		Resume:       gofakeit.URL(),
		Status:       models.StatusPending,
	}
	for _, override := range overrides {
		override(application)
	}
	if err := f.db.Create(application).Error; err != nil {
		return nil, err
	}
	return application, nil
}

// CreateProfile persists a populated profile for user.
func (f *Factory) CreateProfile(user *models.User, overrides ...func(*models.Profile)) (*models.Profile, error) {
	profile := &models.Profile{
		UserID:   user.ID,
		Bio:      gofakeit.Sentence(12),
		Phone:    gofakeit.Phone(),
		Location: gofakeit.City(),
		Education: []models.EducationEntry{{
			School:    gofakeit.Company() + " University",
			Degree:    "B.Tech",
			Field:     "Computer Science",
			StartDate: "2022-08",
			Current:   true,
		}},
		Experience: []models.ExperienceEntry{{
			Company:     gofakeit.Company(),
			Position:    gofakeit.JobTitle(),
			Description: gofakeit.Sentence(10),
			StartDate:   "2024-05",
			EndDate:     "2024-08",
		}},
		Skills: f.pickSkills(4),
		Projects: []models.ProjectEntry{{
			Title:        gofakeit.AppName(),
			Description:  gofakeit.Sentence(8),
			Technologies: f.pickSkills(3),
			Link:         gofakeit.URL(),
		}},
		Resume:    gofakeit.URL(),
		Portfolio: gofakeit.URL(),
		Linkedin:  "https://linkedin.com/in/" + gofakeit.Username(),
		Github:    "https://github.com/" + gofakeit.Username(),
	}
	for _, override := range overrides {
		override(profile)
	}
	if err := f.db.Create(profile).Error; err != nil {
		return nil, err
	}
	return profile, nil
}

func (f *Factory) pickSkills(n int) []string {
	picked := make([]string, 0, n)
	for _, i := range f.rand.Perm(len(skillPool))[:n] {
		picked = append(picked, skillPool[i])
	}
	return picked
}
