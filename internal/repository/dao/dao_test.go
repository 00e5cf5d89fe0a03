package dao

import (
	"context"
	"fmt"
	"log"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/ory/dockertest/v3"
	"github.com/ory/dockertest/v3/docker"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

var testDB *gorm.DB

// TestMain spins up a throwaway Postgres container for the whole package.
// Tests are skipped when Docker is not available.
func TestMain(m *testing.M) {
	pool, err := dockertest.NewPool("")
	if err != nil {
		log.Printf("dockertest unavailable, skipping dao tests: %v", err)
		os.Exit(0)
	}
	if err = pool.Client.Ping(); err != nil {
		log.Printf("docker daemon unreachable, skipping dao tests: %v", err)
		os.Exit(0)
	}

	resource, err := pool.RunWithOptions(&dockertest.RunOptions{
		Repository: "postgres",
		Tag:        "16-alpine",
		Env: []string{
			"POSTGRES_USER=test",
			"POSTGRES_PASSWORD=test",
			"POSTGRES_DB=club_test",
			"listen_addresses = '*'",
		},
	}, func(config *docker.HostConfig) {
		config.AutoRemove = true
		config.RestartPolicy = docker.RestartPolicy{Name: "no"}
	})
	if err != nil {
		log.Fatalf("could not start postgres container: %v", err)
	}

	dsn := fmt.Sprintf(
		"host=localhost port=%s user=test password=test dbname=club_test sslmode=disable",
		resource.GetPort("5432/tcp"),
	)

	if err = pool.Retry(func() error {
		db, openErr := gorm.Open(postgres.Open(dsn), &gorm.Config{
			Logger: gormlogger.Default.LogMode(gormlogger.Silent),
		})
		if openErr != nil {
			return openErr
		}
		testDB = db

		sqlDB, dbErr := db.DB()
		if dbErr != nil {
			return dbErr
		}

		return sqlDB.Ping()
	}); err != nil {
		log.Fatalf("could not connect to postgres container: %v", err)
	}

	if err = InitTables(testDB); err != nil {
		log.Fatalf("could not migrate tables: %v", err)
	}
	if err = SeedReferenceData(testDB); err != nil {
		log.Fatalf("could not seed reference data: %v", err)
	}

	code := m.Run()

	if err = pool.Purge(resource); err != nil {
		log.Printf("could not purge postgres container: %v", err)
	}

	os.Exit(code)
}

func createTestOrganizer(t *testing.T) User {
	t.Helper()

	user, err := NewUserDAO(testDB).Insert(context.Background(), User{
		Email:    uuid.NewString() + "@club.test",
		Password: "hashed-elsewhere",
		Name:     "Test Organizer",
		Role:     "organizer",
	})
	require.NoError(t, err)

	return user
}

func TestSeedReferenceData_Idempotent(t *testing.T) {
	// TestMain already seeded once; seeding again must not duplicate the
	// unique-named reference rows.
	var categoriesBefore, disciplinesBefore int64
	require.NoError(t, testDB.Model(&Category{}).Count(&categoriesBefore).Error)
	require.NoError(t, testDB.Model(&Discipline{}).Count(&disciplinesBefore).Error)

	require.NoError(t, SeedReferenceData(testDB))

	var categoriesAfter, disciplinesAfter int64
	require.NoError(t, testDB.Model(&Category{}).Count(&categoriesAfter).Error)
	require.NoError(t, testDB.Model(&Discipline{}).Count(&disciplinesAfter).Error)

	assert.Equal(t, categoriesBefore, categoriesAfter)
	assert.Equal(t, disciplinesBefore, disciplinesAfter)
}

func TestCategoryDAO_UpsertByName(t *testing.T) {
	ctx := context.Background()
	categoryDAO := NewCategoryDAO(testDB)

	// An existing name resolves to the seeded row instead of inserting.
	existing, err := categoryDAO.UpsertByName(ctx, Category{Name: "SEN", MinAge: 20})
	require.NoError(t, err)
	assert.NotZero(t, existing.ID)

	again, err := categoryDAO.UpsertByName(ctx, Category{Name: "SEN", MinAge: 20})
	require.NoError(t, err)
	assert.Equal(t, existing.ID, again.ID)

	// A new name creates the band.
	name := "TEST-" + uuid.NewString()
	created, err := categoryDAO.UpsertByName(ctx, Category{Name: name, MinAge: 90})
	require.NoError(t, err)
	assert.NotZero(t, created.ID)
	assert.NotEqual(t, existing.ID, created.ID)
}

func TestAthleteDAO_Insert_DuplicateToken(t *testing.T) {
	ctx := context.Background()
	athleteDAO := NewAthleteDAO(testDB)
	token := uuid.NewString()

	athlete := Athlete{
		Name:        "Jonas Berg",
		DateOfBirth: time.Date(2010, 1, 1, 0, 0, 0, 0, time.UTC),
	}

	first, err := athleteDAO.Insert(ctx, athlete, token)
	require.NoError(t, err)
	assert.NotZero(t, first.ID)

	// A replayed token rolls the second insert back.
	_, err = athleteDAO.Insert(ctx, athlete, token)
	require.ErrorIs(t, err, ErrDuplicateSubmission)

	var count int64
	require.NoError(t, testDB.Model(&Athlete{}).Where("name = ?", "Jonas Berg").Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestEventDAO_InsertWithActivity(t *testing.T) {
	ctx := context.Background()
	organizer := createTestOrganizer(t)

	eventDAO := NewEventDAO(testDB)

	start := time.Now().AddDate(0, 1, 0).Truncate(time.Second)
	event := Event{
		Title:       "Spring Open",
		Slug:        "spring-open-" + uuid.NewString(),
		Location:    "Club Stadium",
		StartDate:   start,
		Type:        "COMPETITION",
		OrganizerID: organizer.ID,
	}
	metadata := ActivityMetadata{
		Title:     event.Title,
		Location:  event.Location,
		StartDate: &start,
	}

	created, err := eventDAO.InsertWithActivity(ctx, event, metadata, uuid.NewString())
	require.NoError(t, err)
	assert.NotZero(t, created.ID)
	assert.Equal(t, organizer.Name, created.Organizer.Name)

	// The feed entry lands in the same write.
	var activity Activity
	require.NoError(t, testDB.Where("event_id = ?", created.ID).First(&activity).Error)
	assert.Equal(t, "Spring Open", activity.Metadata.Title)
}

func TestEventDAO_InsertWithActivity_DuplicateToken(t *testing.T) {
	ctx := context.Background()
	organizer := createTestOrganizer(t)

	eventDAO := NewEventDAO(testDB)
	token := uuid.NewString()

	event := Event{
		Title:       "Winter Meet",
		Slug:        "winter-meet-" + uuid.NewString(),
		Location:    "Indoor Hall",
		StartDate:   time.Now().AddDate(0, 2, 0),
		Type:        "MEETING",
		OrganizerID: organizer.ID,
	}

	first, err := eventDAO.InsertWithActivity(ctx, event, ActivityMetadata{Title: event.Title}, token)
	require.NoError(t, err)

	// A replayed token rolls the whole second write back.
	event.Slug = "winter-meet-" + uuid.NewString()
	_, err = eventDAO.InsertWithActivity(ctx, event, ActivityMetadata{Title: event.Title}, token)
	require.ErrorIs(t, err, ErrDuplicateSubmission)

	var count int64
	require.NoError(t, testDB.Model(&Event{}).Where("title = ?", "Winter Meet").Count(&count).Error)
	assert.Equal(t, int64(1), count)

	var activityCount int64
	require.NoError(t, testDB.Model(&Activity{}).Where("event_id = ?", first.ID).Count(&activityCount).Error)
	assert.Equal(t, int64(1), activityCount)
}

func TestSubmissionDAO_DeleteOlderThan(t *testing.T) {
	ctx := context.Background()

	old := Submission{Token: uuid.NewString(), CreatedAt: time.Now().Add(-48 * time.Hour)}
	fresh := Submission{Token: uuid.NewString(), CreatedAt: time.Now()}
	require.NoError(t, testDB.Create(&old).Error)
	require.NoError(t, testDB.Create(&fresh).Error)

	deleted, err := NewSubmissionDAO(testDB).DeleteOlderThan(ctx, time.Now().Add(-24*time.Hour))
	require.NoError(t, err)
	assert.GreaterOrEqual(t, deleted, int64(1))

	var remaining int64
	require.NoError(t, testDB.Model(&Submission{}).Where("token = ?", fresh.Token).Count(&remaining).Error)
	assert.Equal(t, int64(1), remaining)

	var gone int64
	require.NoError(t, testDB.Model(&Submission{}).Where("token = ?", old.Token).Count(&gone).Error)
	assert.Zero(t, gone)
}

func TestCategoryDAO_FindAll_PersistedOrder(t *testing.T) {
	categories, err := NewCategoryDAO(testDB).FindAll(context.Background())
	require.NoError(t, err)
	require.NotEmpty(t, categories)

	for i := 1; i < len(categories); i++ {
		assert.Less(t, categories[i-1].ID, categories[i].ID)
	}
}

func TestActivityDAO_FindPage_NewestFirst(t *testing.T) {
	ctx := context.Background()
	organizer := createTestOrganizer(t)

	eventDAO := NewEventDAO(testDB)
	for i := 0; i < 3; i++ {
		event := Event{
			Title:       fmt.Sprintf("Feed Event %d", i),
			Slug:        "feed-event-" + uuid.NewString(),
			Location:    "Track",
			StartDate:   time.Now().AddDate(0, 0, i+1),
			Type:        "TRAINING",
			OrganizerID: organizer.ID,
		}
		_, err := eventDAO.InsertWithActivity(ctx, event, ActivityMetadata{Title: event.Title}, "")
		require.NoError(t, err)
	}

	page, err := NewActivityDAO(testDB).FindPage(ctx, 3, 0)
	require.NoError(t, err)
	require.Len(t, page, 3)

	for i := 1; i < len(page); i++ {
		assert.False(t, page[i].CreatedAt.After(page[i-1].CreatedAt))
	}
}

func TestActivityDAO_IncrementLikes(t *testing.T) {
	ctx := context.Background()
	organizer := createTestOrganizer(t)

	event := Event{
		Title:       "Likeable Meet",
		Slug:        "likeable-meet-" + uuid.NewString(),
		Location:    "Track",
		StartDate:   time.Now().AddDate(0, 0, 7),
		Type:        "OTHER",
		OrganizerID: organizer.ID,
	}
	created, err := NewEventDAO(testDB).InsertWithActivity(ctx, event, ActivityMetadata{Title: event.Title}, "")
	require.NoError(t, err)

	var activity Activity
	require.NoError(t, testDB.Where("event_id = ?", created.ID).First(&activity).Error)

	activityDAO := NewActivityDAO(testDB)

	liked, err := activityDAO.IncrementLikes(ctx, activity.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, liked.Likes)

	_, err = activityDAO.IncrementLikes(ctx, 999999)
	assert.ErrorIs(t, err, ErrActivityNotFound)
}
