package db

import (
	"fmt"
	"log"

	"github.com/glowbook/scheduler/models"
)

func Migrate() {
	// Initialize DB connection
	Init()

	// Run AutoMigrate only when explicitly called
	err := DB.AutoMigrate(
		&models.Service{},
		&models.StaffMember{},
		&models.StaffShift{},
		&models.Holiday{},
		&models.Appointment{},
	)
	if err != nil {
		log.Fatal("Failed to run migrations: ", err)
	}

	fmt.Println("✅ Migrations applied successfully!")
}
