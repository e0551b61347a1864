package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"time"

	"rental/cmd"
	rentalhttp "rental/internal/adapters/in/http"
	"rental/internal/adapters/out/postgres/carrepo"
	"rental/internal/adapters/out/postgres/customerrepo"
	"rental/internal/adapters/out/postgres/rentalrepo"
	"rental/internal/adapters/out/postgres/reservationrepo"
	"rental/internal/jobs"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// defaultReservationTTL is used when RESERVATION_TTL is not set.
const defaultReservationTTL = 30 * time.Minute

func main() {
	configs := getConfigs()
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	gormDB := connectDB(configs)

	app := cmd.NewCompositionRoot(configs, gormDB, logger)

	jobManager := jobs.NewJobManager(
		app.CreateExpireReservationsCommandHandler(),
		reservationTTL(configs, logger),
		logger,
	)
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(&app, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	config := cmd.Config{
		HTTPPort:       goDotEnvVariable("HTTP_PORT"),
		DBHost:         goDotEnvVariable("DB_HOST"),
		DBPort:         goDotEnvVariable("DB_PORT"),
		DBUser:         goDotEnvVariable("DB_USER"),
		DBPassword:     goDotEnvVariable("DB_PASSWORD"),
		DBName:         goDotEnvVariable("DB_NAME"),
		DBSslMode:      goDotEnvVariable("DB_SSLMODE"),
		ReservationTTL: goDotEnvVariable("RESERVATION_TTL"),
	}
	return config
}

func goDotEnvVariable(key string) string {
	err := godotenv.Load(".env")
	if err != nil {
		log.Fatalf("Error loading .env file")
	}
	return os.Getenv(key)
}

// connectDB opens the gorm connection and runs the schema migrations.
// TranslateError is required so unique-index violations surface as
// gorm.ErrDuplicatedKey for the repositories to map.
func connectDB(configs cmd.Config) *gorm.DB {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser,
		configs.DBPassword, configs.DBName, configs.DBSslMode)

	gormDB, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	err = gormDB.AutoMigrate(
		&carrepo.CarDTO{},
		&reservationrepo.ReservationDTO{},
		&rentalrepo.RentalDTO{},
		&customerrepo.CustomerDTO{},
	)
	if err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	return gormDB
}

func reservationTTL(configs cmd.Config, logger *slog.Logger) time.Duration {
	if configs.ReservationTTL == "" {
		return defaultReservationTTL
	}

	ttl, err := time.ParseDuration(configs.ReservationTTL)
	if err != nil || ttl <= 0 {
		logger.Warn("Invalid RESERVATION_TTL, using default",
			"value", configs.ReservationTTL, "default", defaultReservationTTL)
		return defaultReservationTTL
	}

	return ttl
}

func startWebServer(app *cmd.CompositionRoot, port string) {
	e := echo.New()
	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})

	server := rentalhttp.NewServer(
		app.CreateRegisterCustomerCommandHandler(),
		app.CreateRegisterCarCommandHandler(),
		app.CreateSendCarToMaintenanceCommandHandler(),
		app.CreateReturnCarFromMaintenanceCommandHandler(),
		app.CreateRetireCarCommandHandler(),
		app.CreateCreateReservationCommandHandler(),
		app.CreateChangeReservationPeriodCommandHandler(),
		app.CreateConfirmReservationCommandHandler(),
		app.CreateCancelReservationCommandHandler(),
		app.CreatePickupCarCommandHandler(),
		app.CreateReturnCarCommandHandler(),
		app.CreateGetCustomerReservationsQueryHandler(),
		app.CreateGetActiveRentalsQueryHandler(),
	)
	server.RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
