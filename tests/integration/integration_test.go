package integration_test

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/ruok-app/ruok-api/internal/config"
	"github.com/ruok-app/ruok-api/internal/database"
	"github.com/ruok-app/ruok-api/internal/services"
	"github.com/ruok-app/ruok-api/tests/helpers"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
	"gorm.io/gorm"
)

// TestWithMySQL runs the service layer against a real MySQL container.
// The unique indexes backing tag resolution and slot booking only
// behave like production here, not on SQLite.
func TestWithMySQL(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	ctx := context.Background()

	image := os.Getenv("DB_IMAGE")
	if image == "" {
		image = "mysql:8.0"
	}

	mysqlContainer, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        image,
			ExposedPorts: []string{"3306/tcp"},
			Env: map[string]string{
				"MYSQL_ROOT_PASSWORD": "rootpass",
				"MYSQL_DATABASE":      "testdb",
				"MYSQL_USER":          "testuser",
				"MYSQL_PASSWORD":      "testpass",
			},
			WaitingFor: wait.ForLog("ready for connections").WithStartupTimeout(60 * time.Second),
		},
		Started: true,
	})
	if err != nil {
		t.Fatalf("Failed to start MySQL container: %v", err)
	}
	defer func() {
		if err := mysqlContainer.Terminate(ctx); err != nil {
			t.Logf("Failed to terminate MySQL container: %v", err)
		}
	}()

	host, err := mysqlContainer.Host(ctx)
	if err != nil {
		t.Fatalf("Failed to get container host: %v", err)
	}
	port, err := mysqlContainer.MappedPort(ctx, "3306")
	if err != nil {
		t.Fatalf("Failed to get container port: %v", err)
	}

	cfg := &config.Config{
		DBType:            "mysql",
		DBHost:            host,
		DBPort:            port.Port(),
		DBDatabase:        "testdb",
		DBUser:            "testuser",
		DBPassword:        "testpass",
		DBConnectionLimit: 5,
	}

	// Wait for database to be ready
	time.Sleep(5 * time.Second)

	db, err := database.Connect(cfg)
	if err != nil {
		t.Fatalf("Failed to connect to database: %v", err)
	}
	defer database.Close(db)

	if err := database.AutoMigrate(db); err != nil {
		t.Fatalf("Failed to run migrations: %v", err)
	}

	t.Run("TagResolutionUnderRace", func(t *testing.T) {
		testTagResolutionUnderRace(t, db)
	})

	t.Run("BookingUniqueIndex", func(t *testing.T) {
		testBookingUniqueIndex(t, db)
	})

	t.Run("SeededEmotions", func(t *testing.T) {
		testSeededEmotions(t, db)
	})
}

// Many concurrent resolves of the same new label must converge on a
// single row; the unique index is the arbiter.
func testTagResolutionUnderRace(t *testing.T, db *gorm.DB) {
	userID := helpers.CreateTestUser(t, db, "race@test.com", helpers.GeneratePassword())

	const workers = 8
	ids := make(chan uint64, workers)
	errs := make(chan error, workers)

	for i := 0; i < workers; i++ {
		go func() {
			id, err := services.ResolveActivityTag(db, userID, "Gym")
			if err != nil {
				errs <- err
				return
			}
			ids <- id
		}()
	}

	var first uint64
	for i := 0; i < workers; i++ {
		select {
		case err := <-errs:
			t.Fatalf("Resolve failed: %v", err)
		case id := <-ids:
			if first == 0 {
				first = id
			} else if id != first {
				t.Errorf("Resolved to id %d, want %d", id, first)
			}
		}
	}

	tags, err := services.ListActivityTags(db, userID)
	if err != nil {
		t.Fatalf("Failed to list tags: %v", err)
	}
	if len(tags) != 1 {
		t.Errorf("Expected 1 tag row after %d concurrent resolves, got %d", workers, len(tags))
	}
}

// Two users racing for the same slot: exactly one booking row wins.
func testBookingUniqueIndex(t *testing.T, db *gorm.DB) {
	therapistID := helpers.CreateTestTherapist(t, db, "race-th@test.com", "Stress")

	const racers = 4
	type result struct{ err error }
	results := make(chan result, racers)

	for i := 0; i < racers; i++ {
		userID := helpers.CreateTestUser(t, db,
			helpers.GeneratePassword()+"@race.test", helpers.GeneratePassword())
		go func(uid uint64) {
			_, err := services.CreateBooking(db, uid, services.BookingInput{
				TherapistID: therapistID,
				Date:        "2025-06-01",
				TimeSlot:    "09:00 am",
			})
			results <- result{err}
		}(userID)
	}

	var wins, conflicts int
	for i := 0; i < racers; i++ {
		r := <-results
		if r.err == nil {
			wins++
		} else {
			conflicts++
		}
	}

	if wins != 1 {
		t.Errorf("Expected exactly 1 winning booking, got %d (conflicts %d)", wins, conflicts)
	}

	slots, err := services.GetAvailability(db, therapistID, "2025-06-01")
	if err != nil {
		t.Fatalf("Failed to get availability: %v", err)
	}
	if len(slots) != len(services.SlotUniverse)-1 {
		t.Errorf("Expected one slot taken, %d available, got %d",
			len(services.SlotUniverse)-1, len(slots))
	}
}

// Seeding twice must not duplicate titles.
func testSeededEmotions(t *testing.T, db *gorm.DB) {
	if err := database.SeedEmotions(db); err != nil {
		t.Fatalf("Failed to seed emotions: %v", err)
	}
	first, err := services.ListEmotions(db)
	if err != nil {
		t.Fatalf("Failed to list emotions: %v", err)
	}

	if err := database.SeedEmotions(db); err != nil {
		t.Fatalf("Failed to re-seed emotions: %v", err)
	}
	second, err := services.ListEmotions(db)
	if err != nil {
		t.Fatalf("Failed to list emotions: %v", err)
	}

	if len(first) == 0 || len(first) != len(second) {
		t.Errorf("Expected idempotent seed, got %d then %d entries", len(first), len(second))
	}
}
