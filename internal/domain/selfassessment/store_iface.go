package selfassessment

import "context"

type StoreAPI interface {
	Get(ctx context.Context, id int64) (Assessment, error)
	ListAll(ctx context.Context) ([]Assessment, error)
	ListByUser(ctx context.Context, userID int64) ([]Assessment, error)
	HasSkill(ctx context.Context, userID int64, skillName string) (bool, error)
	Create(ctx context.Context, userID int64, skillName string, level int) (Assessment, error)
	Delete(ctx context.Context, id int64) error
}
