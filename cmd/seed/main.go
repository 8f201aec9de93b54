package main

import (
	"medibook/config"
	"medibook/internal/domain/entity"
	"medibook/internal/infrastructure/database"
	"medibook/internal/repository"

	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Seeds the initial admin account and a starter set of doctors. Safe to run
// repeatedly: existing records are left untouched.
func main() {
	logrus.SetFormatter(&logrus.JSONFormatter{})

	cfg, err := config.LoadConfig()
	if err != nil {
		logrus.Fatalf("Failed to load config: %v", err)
	}

	db, err := database.NewPostgresConnection(cfg.DB)
	if err != nil {
		logrus.Fatalf("Failed to connect to database: %v", err)
	}

	if err := database.RunMigrations(db, cfg.DB.MigrationsPath); err != nil {
		logrus.Fatalf("Failed to run migrations: %v", err)
	}

	if err := seedAdmin(db, cfg.Seed); err != nil {
		logrus.Fatalf("Failed to seed admin user: %v", err)
	}

	if err := seedDoctors(db); err != nil {
		logrus.Fatalf("Failed to seed doctors: %v", err)
	}

	logrus.Info("Seeding complete")
}

func seedAdmin(db *gorm.DB, cfg config.SeedConfig) error {
	if cfg.AdminEmail == "" || cfg.AdminPassword == "" {
		logrus.Warn("SEED_ADMIN_EMAIL or SEED_ADMIN_PASSWORD not set, skipping admin seed")
		return nil
	}

	userRepo := repository.NewUserRepository()

	existing, err := userRepo.FindByEmail(db, cfg.AdminEmail)
	if err != nil {
		return err
	}
	if existing != nil {
		logrus.Infof("Admin user %s already exists, skipping", cfg.AdminEmail)
		return nil
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(cfg.AdminPassword), 12)
	if err != nil {
		return err
	}

	admin := &entity.User{
		Name:     "Admin",
		Email:    cfg.AdminEmail,
		Password: string(hashed),
		Role:     entity.RoleAdmin,
	}
	if err := userRepo.Create(db, admin); err != nil {
		return err
	}

	logrus.Infof("Created admin user %s", cfg.AdminEmail)
	return nil
}

func seedDoctors(db *gorm.DB) error {
	doctorRepo := repository.NewDoctorRepository()

	existing, err := doctorRepo.FindAll(db, &entity.DoctorFilter{})
	if err != nil {
		return err
	}
	if len(existing) > 0 {
		logrus.Infof("Doctors already seeded (%d found), skipping", len(existing))
		return nil
	}

	weekdaySlots := []string{"9:00 AM", "10:00 AM", "11:00 AM", "2:00 PM", "3:00 PM"}
	morningSlots := []string{"9:00 AM", "10:00 AM", "11:00 AM"}

	doctors := []entity.Doctor{
		{
			Name:      "Dr. Sarah Johnson",
			Specialty: "Cardiology",
			Bio:       "Board-certified cardiologist with over 15 years of experience in treating heart conditions.",
			ImageURL:  "/images/doctors/sarah-johnson.jpg",
			Availability: entity.Availability{
				{Day: "Monday", Slots: weekdaySlots},
				{Day: "Tuesday", Slots: weekdaySlots},
				{Day: "Wednesday", Slots: weekdaySlots},
				{Day: "Thursday", Slots: weekdaySlots},
				{Day: "Friday", Slots: morningSlots},
			},
		},
		{
			Name:      "Dr. Michael Chen",
			Specialty: "Neurology",
			Bio:       "Specialist in neurological disorders, focused on stroke prevention and recovery.",
			ImageURL:  "/images/doctors/michael-chen.jpg",
			Availability: entity.Availability{
				{Day: "Monday", Slots: weekdaySlots},
				{Day: "Tuesday", Slots: weekdaySlots},
				{Day: "Thursday", Slots: weekdaySlots},
				{Day: "Friday", Slots: morningSlots},
			},
		},
		{
			Name:      "Dr. Emily Rodriguez",
			Specialty: "Pediatrics",
			Bio:       "Caring pediatrician dedicated to children's health from infancy through adolescence.",
			ImageURL:  "/images/doctors/emily-rodriguez.jpg",
			Availability: entity.Availability{
				{Day: "Monday", Slots: weekdaySlots},
				{Day: "Tuesday", Slots: weekdaySlots},
				{Day: "Wednesday", Slots: weekdaySlots},
				{Day: "Friday", Slots: morningSlots},
			},
		},
		{
			Name:      "Dr. James Wilson",
			Specialty: "Orthopedics",
			Bio:       "Orthopedic surgeon specializing in sports injuries and joint replacement.",
			ImageURL:  "/images/doctors/james-wilson.jpg",
			Availability: entity.Availability{
				{Day: "Monday", Slots: weekdaySlots},
				{Day: "Tuesday", Slots: weekdaySlots},
				{Day: "Wednesday", Slots: weekdaySlots},
				{Day: "Thursday", Slots: weekdaySlots},
				{Day: "Friday", Slots: morningSlots},
			},
		},
		{
			Name:      "Dr. Lisa Thompson",
			Specialty: "Dermatology",
			Bio:       "Dermatologist treating skin conditions with a patient-first approach.",
			ImageURL:  "/images/doctors/lisa-thompson.jpg",
			Availability: entity.Availability{
				{Day: "Monday", Slots: weekdaySlots},
				{Day: "Tuesday", Slots: weekdaySlots},
				{Day: "Thursday", Slots: weekdaySlots},
				{Day: "Friday", Slots: morningSlots},
			},
		},
	}

	for i := range doctors {
		if err := doctorRepo.Create(db, &doctors[i]); err != nil {
			return err
		}
	}

	logrus.Infof("Created %d doctors", len(doctors))
	return nil
}
