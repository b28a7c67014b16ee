package user

import "context"

type StoreAPI interface {
	Get(ctx context.Context, id int64) (User, error)
	ListAll(ctx context.Context) ([]User, error)
	UsernameTaken(ctx context.Context, username string, excludeID int64) (bool, error)
	EmailTaken(ctx context.Context, email string, excludeID int64) (bool, error)
	Create(ctx context.Context, in Input, passwordHash string) (User, error)
	Update(ctx context.Context, id int64, in Input) (User, error)
	UpdateProfile(ctx context.Context, id int64, in ProfileInput) (User, error)
	PasswordHash(ctx context.Context, id int64) (string, error)
	UpdatePassword(ctx context.Context, id int64, passwordHash string) error
	Delete(ctx context.Context, id int64) error
}
