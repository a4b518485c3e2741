package database

import (
	"fmt"
	"log"
	"time"

	"fiesta/config"
	"fiesta/metrics"
	"fiesta/models"

	"github.com/google/uuid"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

// InitDB initializes the database connection, migrates the models and
// populates the database with default values if needed
func InitDB() {
	dsn := fmt.Sprintf("host=%s port=%s user=%s dbname=%s password=%s sslmode=disable TimeZone=Asia/Kolkata", config.PostgresHost, config.PostgresPort, config.PostgresUser, config.PostgresDB, config.PostgresPassword)

	var err error
	// TranslateError lets services detect unique index violations through
	// gorm.ErrDuplicatedKey regardless of the underlying driver
	DB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		log.Fatal("failed to connect database: ", err)
	}

	registerMetricsCallbacks(DB)

	if err := Migrate(DB); err != nil {
		log.Fatal("failed to migrate database: ", err)
	}

	Populate()
}

// registerMetricsCallbacks hooks the operation duration histogram into the
// gorm callback chain
func registerMetricsCallbacks(db *gorm.DB) {
	start := func(db *gorm.DB) {
		db.InstanceSet("metrics:start", time.Now())
	}
	finish := func(operation string) func(*gorm.DB) {
		return func(db *gorm.DB) {
			if v, ok := db.InstanceGet("metrics:start"); ok {
				metrics.RecordDBOperation(operation, db.Statement.Table, v.(time.Time))
			}
		}
	}

	db.Callback().Create().Before("gorm:create").Register("metrics:before_create", start)
	db.Callback().Create().After("gorm:create").Register("metrics:after_create", finish("create"))
	db.Callback().Query().Before("gorm:query").Register("metrics:before_query", start)
	db.Callback().Query().After("gorm:query").Register("metrics:after_query", finish("query"))
	db.Callback().Update().Before("gorm:update").Register("metrics:before_update", start)
	db.Callback().Update().After("gorm:update").Register("metrics:after_update", finish("update"))
	db.Callback().Delete().Before("gorm:delete").Register("metrics:before_delete", start)
	db.Callback().Delete().After("gorm:delete").Register("metrics:after_delete", finish("delete"))
}

// Migrate runs the schema migration for every model. The unique indexes on
// students.chest_no and program_registrations (program_id, student_id) are
// what makes concurrent registration attempts safe: the losing writer of a
// race fails at the storage layer instead of creating a duplicate.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.Team{},
		&models.Jury{},
		&models.Student{},
		&models.Program{},
		&models.ProgramRegistration{},
		&models.RegistrationSchedule{},
		&models.ReplacementRequest{},
		&models.Result{},
		&models.Assignment{},
	)
}

// Populate seeds the registration schedule singleton and a starter program
// catalog so a fresh deployment is usable immediately
func Populate() {
	var countSchedule int64
	DB.Model(&models.RegistrationSchedule{}).Count(&countSchedule)
	if countSchedule == 0 {
		now := time.Now().UTC()
		schedule := models.RegistrationSchedule{
			Key:           models.ScheduleKey,
			StartDateTime: now.Format(time.RFC3339),
			EndDateTime:   now.Add(time.Hour).Format(time.RFC3339),
		}
		DB.Create(&schedule)
		log.Println("Default registration schedule created")
	}

	var countProgram int64
	DB.Model(&models.Program{}).Count(&countProgram)
	if countProgram == 0 {
		programs := []models.Program{
			{ID: uuid.NewString(), Name: "Solo Song", Section: "General", Category: "Music", CandidateLimit: 1},
			{ID: uuid.NewString(), Name: "Group Dance", Section: "General", Category: "Dance", CandidateLimit: 7},
			{ID: uuid.NewString(), Name: "Essay Writing", Section: "General", Category: "Literary", CandidateLimit: 2},
		}
		for _, program := range programs {
			DB.Create(&program)
		}
		log.Println("Starter program catalog created")
	}
}
