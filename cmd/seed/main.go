// Command main runs the database seeder for SkillBridge.
package main

import (
	"flag"
	"log"

	"skillbridge/internal/config"
	"skillbridge/internal/database"
	"skillbridge/internal/seed"
)

func main() {
	numStudents := flag.Int("students", 10, "Number of student accounts to create")
	numInternships := flag.Int("internships", 25, "Number of internship listings to create")
	shouldClean := flag.Bool("clean", true, "Clean database before seeding")
	flag.Parse()

	log.Println("Database Seeder")
	log.Printf("Target: %d students, %d internships, clean=%v\n", *numStudents, *numInternships, *shouldClean)

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	s := seed.NewSeeder(db)

	if *shouldClean {
		if err := s.ClearAll(); err != nil {
			log.Fatalf("Cleanup failed: %v", err)
		}
	}

	if err := s.Run(*numStudents, *numInternships); err != nil {
		log.Fatalf("Seeding failed: %v", err)
	}

	log.Println("All done! Demo accounts: admin@skillbridge.com / student@skillbridge.com")
	log.Printf("All seeded users have the password: %s", seed.DefaultPassword)
}
