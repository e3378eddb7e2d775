package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"fmt"
	"handy/infras/otel"
	"handy/infras/postgres"
	"handy/internal/domains/catalog/model"
	"handy/shared/constant"
	gDto "handy/shared/dto"
	"handy/shared/logger"
	gRepo "handy/shared/repository"

	"github.com/jmoiron/sqlx"
)

type Catalog interface {
	Insert(ctx context.Context, model model.Service) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Service, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Service, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	Delete(ctx context.Context, filter gDto.FilterGroup) error
	ResolvePrices(ctx context.Context, serviceIDs []string, providerID string) (map[string]model.ResolvedPrice, error)
	ListProviderServiceIDs(ctx context.Context, providerID string) ([]string, error)
	UpsertProviderService(ctx context.Context, offer model.ProviderService) error
}

type repositoryImpl struct {
	gRepo.Repository[model.Service]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Catalog {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Service](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

// ResolvePrices returns the effective unit price for each requested service.
// When providerID is not empty, the provider's custom price takes precedence
// over the catalog base price. Inactive and unknown services are absent from
// the result map; the caller decides whether that is an error.
func (repo *repositoryImpl) ResolvePrices(ctx context.Context, serviceIDs []string, providerID string) (map[string]model.ResolvedPrice, error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".catalog.ResolvePrices")
	defer scope.End()

	query := `SELECT s.id, s.base_price, ps.custom_price
		FROM services s
		LEFT JOIN provider_services ps ON ps.service_id = s.id AND ps.provider_id = ?
		WHERE s.active = TRUE AND s.id IN (?)`

	query, args, err := sqlx.In(query, providerID, serviceIDs)
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return nil, fmt.Errorf("failed to build price query: %w", err)
	}

	query = repo.db.Read.Rebind(query)
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	var rows []model.ResolvedPrice

	err = repo.db.Read.SelectContext(ctx, &rows, query, args...)
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return nil, fmt.Errorf("failed to resolve service prices: %w", err)
	}

	prices := make(map[string]model.ResolvedPrice, len(rows))
	for _, row := range rows {
		prices[row.ServiceID] = row
	}

	return prices, nil
}

// ListProviderServiceIDs returns the ids of every service the provider offers.
func (repo *repositoryImpl) ListProviderServiceIDs(ctx context.Context, providerID string) ([]string, error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".catalog.ListProviderServiceIDs")
	defer scope.End()

	query := `SELECT service_id FROM provider_services WHERE provider_id = $1`
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	var ids []string

	err := repo.db.Read.SelectContext(ctx, &ids, query, providerID)
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return nil, fmt.Errorf("failed to list provider services: %w", err)
	}

	return ids, nil
}

func (repo *repositoryImpl) UpsertProviderService(ctx context.Context, offer model.ProviderService) error {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".catalog.UpsertProviderService")
	defer scope.End()

	query := `INSERT INTO provider_services (id, provider_id, service_id, custom_price, created_at, modified_at, created_by, modified_by)
		VALUES (:id, :provider_id, :service_id, :custom_price, :created_at, :modified_at, :created_by, :modified_by)
		ON CONFLICT (provider_id, service_id)
		DO UPDATE SET custom_price = EXCLUDED.custom_price, modified_at = EXCLUDED.modified_at, modified_by = EXCLUDED.modified_by`
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	_, err := repo.db.Write.NamedExecContext(ctx, query, offer)
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return fmt.Errorf("failed to upsert provider service: %w", err)
	}

	return nil
}
