package feedback

import "context"

type StoreAPI interface {
	Get(ctx context.Context, id int64) (Feedback, error)
	ListAll(ctx context.Context) ([]Feedback, error)
	ListByEvaluation(ctx context.Context, evaluationID int64) ([]Feedback, error)
	ListBySubject(ctx context.Context, userID int64) ([]Feedback, error)
	ListByManager(ctx context.Context, managerID int64) ([]Feedback, error)
	ExistsForEvaluation(ctx context.Context, evaluationID int64) (bool, error)
	EvaluationParties(ctx context.Context, evaluationID int64) (subjectID, managerID int64, err error)
	Create(ctx context.Context, evaluationID int64, text string) (Feedback, error)
	Update(ctx context.Context, id int64, text string) (Feedback, error)
	Delete(ctx context.Context, id int64) error
}
