package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"handy/infras/otel"
	"handy/infras/postgres"
	"handy/internal/domains/address/model"
	"handy/shared/constant"
	gDto "handy/shared/dto"
	gRepo "handy/shared/repository"
)

type Address interface {
	Insert(ctx context.Context, model model.Address) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Address, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Address, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	Delete(ctx context.Context, filter gDto.FilterGroup) error
	FirstGeocodedForUser(ctx context.Context, userID string) (model.Address, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.Address]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Address {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Address](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

// FirstGeocodedForUser returns the user's oldest address that has
// coordinates. Providers use it as their work location for the job board.
func (repo *repositoryImpl) FirstGeocodedForUser(ctx context.Context, userID string) (model.Address, error) {
	filter := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldUserID,
				ArgName:  model.FieldUserID,
				Operator: gDto.FilterOperatorEq,
				Value:    userID,
				Table:    model.TableName,
			},
			gDto.Filter{
				Field:    model.FieldLatitude,
				Operator: gDto.FilterIsNotNull,
				Table:    model.TableName,
			},
		},
	}

	params := gDto.QueryParams{
		Limit:   1,
		SortBy:  constant.FieldCreatedAt,
		SortDir: gDto.SortDirAsc,
	}

	addresses, err := repo.GetAll(ctx, params, filter)
	if err != nil {
		return model.Address{}, err //nolint:wrapcheck
	}

	if len(addresses) == 0 {
		return model.Address{}, nil
	}

	return addresses[0], nil
}
