package repositories

import (
	"context"

	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/jobboard/internal/models"
)

// QuestionRepository stores questions employers ask applicants.
type QuestionRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewQuestionRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *QuestionRepository {
	return &QuestionRepository{db: db, txGetter: txGetter}
}

func (r *QuestionRepository) Create(ctx context.Context, applicationID, employerID int64, text string) (*models.EmployerQuestionDB, error) {
	const query = `
		INSERT INTO employer_questions (application_id, employer_id, question_text)
		VALUES ($1, $2, $3)
		RETURNING id, application_id, employer_id, question_text, created_at
	`
	args := []any{applicationID, employerID, text}

	var q models.EmployerQuestionDB
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &q, query, args...)

	logQuery(query, args, q.ID, err)

	if err != nil {
		return nil, err
	}
	return &q, nil
}
