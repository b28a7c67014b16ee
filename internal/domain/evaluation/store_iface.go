package evaluation

import (
	"context"

	"hrsystem/internal/domain/kpi"
)

type StoreAPI interface {
	Get(ctx context.Context, id int64) (Evaluation, error)
	ListAll(ctx context.Context) ([]Evaluation, error)
	ListBySubject(ctx context.Context, userID int64) ([]Evaluation, error)
	ListByManager(ctx context.Context, managerID int64) ([]Evaluation, error)
	ListByManagerAndSubject(ctx context.Context, managerID, userID int64) ([]Evaluation, error)
	Create(ctx context.Context, userID, managerID int64, metrics kpi.Metrics, comments string) (Evaluation, error)
	Update(ctx context.Context, id int64, metrics kpi.Metrics, comments string) (Evaluation, error)
	Delete(ctx context.Context, id int64) error
}
