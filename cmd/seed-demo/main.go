package main

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/acadra/gradebook-backend/internal/config"
	"github.com/acadra/gradebook-backend/internal/database"
	"github.com/acadra/gradebook-backend/internal/logger"
	"github.com/acadra/gradebook-backend/internal/model"
	"github.com/acadra/gradebook-backend/internal/repository"
	"github.com/acadra/gradebook-backend/internal/service"
)

const (
	seedSemester = 1
	seedYear     = 2024
)

func main() {
	cfg := config.Load()
	log := logger.Setup(cfg.LogLevel, cfg.LogFormat)
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Minute)
	defer cancel()

	pool, err := database.NewPostgresPool(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to PostgreSQL")
	}
	defer pool.Close()

	rdb, err := database.NewRedisClient(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to Redis")
	}
	defer rdb.Close()

	studentRepo := repository.NewStudentRepository(pool)
	catalogRepo := repository.NewCatalogRepository(pool)

	catalogService := service.NewCatalogService(catalogRepo, log)
	rankingService := service.NewRankingService(studentRepo, rdb, cfg.LeaderboardTTL, log)
	resultService := service.NewResultService(studentRepo, catalogRepo, rankingService, log)

	fmt.Printf("=== Seeding catalog %d/%d ===\n", seedSemester, seedYear)

	courses := []model.CourseInput{
		{CourseCode: "CS101", CourseTitle: "Introduction to Programming", Credits: 4},
		{CourseCode: "MA101", CourseTitle: "Calculus I", Credits: 3},
		{CourseCode: "PH101", CourseTitle: "Physics I", Credits: 3},
		{CourseCode: "HS101", CourseTitle: "Technical Communication", Credits: 2},
	}

	catalog, err := catalogService.GetByKey(ctx, seedSemester, seedYear)
	if err != nil {
		catalog, err = catalogService.AddCourses(ctx, seedSemester, seedYear, courses)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to seed catalog")
		}
		fmt.Printf("Created catalog with %d courses\n", len(catalog.Courses))
	} else {
		fmt.Printf("Catalog already exists with %d courses\n", len(catalog.Courses))
	}

	names := []string{
		"Aarav Sharma", "Diya Patel", "Vihaan Reddy", "Ananya Iyer", "Arjun Mehta",
		"Ishita Rao", "Kabir Nair", "Meera Joshi", "Rohan Gupta", "Sanya Kapoor",
		"Aditya Verma", "Navya Singh", "Dev Malhotra", "Priya Menon", "Karan Bhatt",
		"Tara Kulkarni", "Nikhil Desai", "Riya Choudhury", "Sameer Khan", "Anika Das",
	}

	fmt.Printf("=== Seeding %d students with results ===\n", len(names))

	successCount := 0
	for i, name := range names {
		roll := fmt.Sprintf("2024CS%03d", i+1)

		student := &model.Student{
			RollNumber: roll,
			Name:       name,
			Email:      fmt.Sprintf("%s@campus.example.edu", roll),
		}
		if err := studentRepo.Create(ctx, student); err != nil {
			log.Warn().Err(err).Str("roll", roll).Msg("Skipping student")
			continue
		}

		marks := make(map[string]float64, len(catalog.Courses))
		for _, course := range catalog.Courses {
			marks[course.CourseCode] = float64(35 + rand.Intn(66))
		}

		if _, err := resultService.SubmitMarks(ctx, roll, seedSemester, seedYear, marks); err != nil {
			log.Warn().Err(err).Str("roll", roll).Msg("Failed to submit marks")
			continue
		}
		successCount++
	}

	fmt.Printf("Seeded %d students\n", successCount)
}
