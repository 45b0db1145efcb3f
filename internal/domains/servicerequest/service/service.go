package service

import (
	"context"
	"fmt"

	"lodge/config"
	"lodge/infras/otel"
	"lodge/internal/domains/servicerequest/model"
	"lodge/internal/domains/servicerequest/model/dto"
	"lodge/internal/domains/servicerequest/repository"
	"lodge/internal/events"
	"lodge/internal/metrics"
	"lodge/shared"
	"lodge/shared/cache"
	"lodge/shared/constant"
	gDto "lodge/shared/dto"
	"lodge/shared/failure"

	"github.com/rs/zerolog/log"
)

const (
	cacheGetServiceRequest    = "servicerequest:get"
	cacheGetAllServiceRequest = "servicerequest:gets"
	cacheCountServiceRequest  = "servicerequest:count"
)

type ServiceRequest interface {
	Create(ctx context.Context, req dto.CreateServiceRequestRequest) (dto.ServiceRequestResponse, error)
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetServiceRequestsResponse, error)
	Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (int, error)
	Get(ctx context.Context, id string) (dto.ServiceRequestResponse, error)
	Update(ctx context.Context, req dto.UpdateServiceRequestRequest, id string) error
	Delete(ctx context.Context, id string) error
}

type serviceImpl struct {
	repo      repository.ServiceRequest
	cfg       *config.Config
	cache     cache.RedisCache
	publisher events.Publisher
	otel      otel.Otel
}

func New(repo repository.ServiceRequest, cfg *config.Config, cache cache.RedisCache, publisher events.Publisher, otel otel.Otel) ServiceRequest {
	return &serviceImpl{
		repo:      repo,
		cfg:       cfg,
		cache:     cache,
		publisher: publisher,
		otel:      otel,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateServiceRequestRequest) (res dto.ServiceRequestResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	if user == constant.Empty {
		user = constant.SystemGuestPortal
	}

	request := req.ToModel(user)

	if err = s.repo.Insert(ctx, request); err != nil {
		log.Error().Err(err).Msg("failed to create service request")

		return res, fmt.Errorf("failed to create service request: %w", err)
	}

	metrics.IncServiceRequest(request.Type)

	bookingID := constant.Empty
	if request.BookingID != nil {
		bookingID = *request.BookingID
	}

	s.publisher.PublishServiceRequest(ctx, events.ServiceRequestEvent{
		Type:        events.TypeServiceRequestCreated,
		RequestID:   request.ID,
		RoomID:      request.RoomID,
		BookingID:   bookingID,
		RequestType: request.Type,
		Status:      request.Status,
	})

	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheGetAllServiceRequest)
		shared.InvalidateCaches(c, s.cache, cacheCountServiceRequest)
	}()

	res.FromModel(request)

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetServiceRequestsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllServiceRequest, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for service requests")

		return res, nil
	}

	total, err := s.Count(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count service requests")

		return res, fmt.Errorf("failed to count service requests: %w", err)
	}

	models, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get service requests")

		return res, fmt.Errorf("failed to get service requests: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save service requests to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res int, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Count")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheCountServiceRequest, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for service request count")

		return res, nil
	}

	res, err = s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count service requests")

		return res, fmt.Errorf("failed to count service requests: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save service request count to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.ServiceRequestResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheGetServiceRequest, id)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for service request")

		return res, nil
	}

	request, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get service request")

		return res, fmt.Errorf("failed to get service request: %w", err)
	}

	if request.ID == constant.Empty {
		return res, failure.NotFound("service request not found") // nolint:wrapcheck
	}

	res.FromModel(request)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save service request to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateServiceRequestRequest, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Update")
	defer scope.End()
	defer scope.TraceIfError(err)

	if req == (dto.UpdateServiceRequestRequest{}) {
		return failure.BadRequestFromString("update request cannot be empty") // nolint:wrapcheck
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	request, err := s.repo.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get service request")

		return fmt.Errorf("failed to get service request: %w", err)
	}

	if request.ID == constant.Empty {
		return failure.NotFound("service request not found") // nolint:wrapcheck
	}

	updatedFields := shared.TransformFields(req, user)
	if err := s.repo.Update(ctx, updatedFields, filter); err != nil {
		log.Error().Err(err).Msg("failed to update service request")

		return fmt.Errorf("failed to update service request: %w", err)
	}

	if req.Status != constant.Empty && req.Status != request.Status {
		bookingID := constant.Empty
		if request.BookingID != nil {
			bookingID = *request.BookingID
		}

		s.publisher.PublishServiceRequest(ctx, events.ServiceRequestEvent{
			Type:        events.TypeServiceRequestUpdated,
			RequestID:   request.ID,
			RoomID:      request.RoomID,
			BookingID:   bookingID,
			RequestType: request.Type,
			Status:      req.Status,
		})
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetServiceRequest, id)); err != nil {
			log.Error().Err(err).Msg("failed to delete service request from cache")
		}

		shared.InvalidateCaches(c, s.cache, cacheGetAllServiceRequest)
		shared.InvalidateCaches(c, s.cache, cacheCountServiceRequest)
	}()

	return nil
}

func (s *serviceImpl) Delete(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Delete")
	defer scope.End()
	defer scope.TraceIfError(err)

	exist, err := s.repo.Exist(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to check if service request exists")

		return fmt.Errorf("failed to check if service request exists: %w", err)
	}

	if !exist {
		log.Error().Msg("service request not found")

		return failure.NotFound("service request not found") // nolint:wrapcheck
	}

	if err := s.repo.Delete(ctx, shared.FilterByID(id, model.FieldID, model.TableName)); err != nil {
		log.Error().Err(err).Msg("failed to delete service request")

		return fmt.Errorf("failed to delete service request: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetServiceRequest, id)); err != nil {
			log.Error().Err(err).Msg("failed to delete service request from cache")
		}

		shared.InvalidateCaches(c, s.cache, cacheGetAllServiceRequest)
		shared.InvalidateCaches(c, s.cache, cacheCountServiceRequest)
	}()

	return nil
}
