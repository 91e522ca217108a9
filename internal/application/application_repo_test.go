package application

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

// The transactional insert is the only path Apply takes in production, so it
// must persist every column the read side orders and renders by.
func TestRepository_CreateWithTx(t *testing.T) {
	ctx := context.Background()

	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	a := &Application{
		ID:          uuid.New(),
		JobID:       uuid.New(),
		ApplicantID: uuid.New(),
		CoverLetter: "Keen to join",
		ResumeURL:   "https://files.example.com/resumes/cv.pdf",
		Status:      StatusApplied,
		AppliedAt:   time.Now().UTC(),
	}

	mock.ExpectBegin()
	mock.ExpectExec(`INSERT INTO applications[\s\S]*applied_at`).
		WithArgs(a.ID, a.JobID, a.ApplicantID, a.CoverLetter, a.ResumeURL, a.Status, a.AppliedAt).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	tx, err := db.Begin()
	assert.NoError(t, err)

	repo := NewRepository(nil).WithTx(tx)
	assert.NoError(t, repo.Create(ctx, a))
	assert.NoError(t, tx.Commit())
	assert.NoError(t, mock.ExpectationsWereMet())
}
