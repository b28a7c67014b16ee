package training

import "context"

type StoreAPI interface {
	Get(ctx context.Context, id int64) (Request, error)
	ListAll(ctx context.Context) ([]Request, error)
	ListByUser(ctx context.Context, userID int64) ([]Request, error)
	ListByStatus(ctx context.Context, status string) ([]Request, error)
	CountPending(ctx context.Context, userID int64) (int, error)
	HasCourse(ctx context.Context, userID int64, courseName string) (bool, error)
	Create(ctx context.Context, userID int64, courseName string) (Request, error)
	UpdateStatus(ctx context.Context, id int64, status string) error
	Delete(ctx context.Context, id int64) error
}
