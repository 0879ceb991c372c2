package repositories

import (
	"context"
	"fmt"
	"testing"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/jobboard/internal/models"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

// setupPostgres starts a PostgreSQL container with the schema applied.
func setupPostgres(t *testing.T) *sqlx.DB {
	t.Helper()
	if testing.Short() {
		t.Skip("skipping container test in short mode")
	}

	ctx := context.Background()

	req := testcontainers.ContainerRequest{
		Image:        "postgres:15-alpine",
		Env:          map[string]string{"POSTGRES_PASSWORD": "secret", "POSTGRES_DB": "testdb", "POSTGRES_USER": "postgres"},
		ExposedPorts: []string{"5432/tcp"},
		WaitingFor: wait.ForLog("database system is ready to accept connections").
			WithOccurrence(2).
			WithStartupTimeout(60 * time.Second),
	}

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	require.NoError(t, err)
	t.Cleanup(func() { container.Terminate(ctx) })

	host, err := container.Host(ctx)
	require.NoError(t, err)
	port, err := container.MappedPort(ctx, "5432")
	require.NoError(t, err)

	dsn := fmt.Sprintf("postgres://postgres:secret@%s:%s/testdb?sslmode=disable", host, port.Port())

	var db *sqlx.DB
	for i := 0; i < 10; i++ {
		db, err = sqlx.Connect("pgx", dsn)
		if err == nil {
			break
		}
		time.Sleep(time.Second)
	}
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	db.SetMaxOpenConns(20)
	db.SetMaxIdleConns(10)

	require.NoError(t, Migrate(ctx, db))
	// applying twice must be harmless
	require.NoError(t, Migrate(ctx, db))

	return db
}

// --- fixtures ---

func createUser(t *testing.T, db *sqlx.DB, email string, role models.Role) *models.UserDB {
	t.Helper()
	user, err := NewUserRepository(db, nil).Create(context.Background(), email, "hash", role, true)
	require.NoError(t, err)
	return user
}

func createJob(t *testing.T, db *sqlx.DB, employerID int64, title string) *models.JobDB {
	t.Helper()
	job, err := NewJobRepository(db, nil).Create(context.Background(), models.NewJob{
		EmployerID:  employerID,
		Title:       title,
		Description: "description",
	})
	require.NoError(t, err)
	return job
}

func createResume(t *testing.T, db *sqlx.DB, userID int64, title string) *models.ResumeDB {
	t.Helper()
	resume, err := NewResumeRepository(db, nil).Create(context.Background(), userID, title, "http://files/"+title+".pdf", title+".pdf")
	require.NoError(t, err)
	return resume
}
