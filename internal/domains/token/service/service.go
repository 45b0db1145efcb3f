package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"

	"lodge/config"
	"lodge/infras/otel"
	"lodge/internal/domains/token/model"
	"lodge/internal/domains/token/repository"
	"lodge/shared"
	"lodge/shared/constant"
	gDto "lodge/shared/dto"
	"lodge/shared/failure"
	gModel "lodge/shared/model"
	"lodge/shared/timezone"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog/log"
	qrcode "github.com/skip2/go-qrcode"
)

const qrSizePx = 256

// RoomToken issues, deactivates and resolves per-stay room tokens. The Tx
// variants participate in the booking state transitions so token state never
// drifts from booking state.
type RoomToken interface {
	IssueTx(ctx context.Context, sqltx *sqlx.Tx, bookingID, roomID string) (model.RoomToken, error)
	DeactivateTx(ctx context.Context, sqltx *sqlx.Tx, bookingID string) error
	GetActive(ctx context.Context, token string) (model.RoomToken, error)
	QRCode(ctx context.Context, bookingID string) ([]byte, error)
}

type serviceImpl struct {
	repo repository.RoomToken
	cfg  *config.Config
	otel otel.Otel
}

func New(repo repository.RoomToken, cfg *config.Config, otel otel.Otel) RoomToken {
	return &serviceImpl{
		repo: repo,
		cfg:  cfg,
		otel: otel,
	}
}

// IssueTx creates a token for a stay, or reactivates the booking's existing
// token (is_active=true, expires_at cleared) when one survives a prior stay.
func (s *serviceImpl) IssueTx(ctx context.Context, sqltx *sqlx.Tx, bookingID, roomID string) (res model.RoomToken, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".IssueTx")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	filter := shared.FilterByID(bookingID, model.FieldBookingID, model.TableName)

	existing, err := s.repo.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get room token")

		return res, fmt.Errorf("failed to get room token: %w", err)
	}

	if existing.ID != constant.Empty {
		err = s.repo.UpdateTx(ctx, sqltx, map[string]any{
			model.FieldIsActive:      true,
			model.FieldExpiresAt:     nil,
			constant.FieldModifiedAt: timezone.Now(),
			constant.FieldModifiedBy: user,
		}, filter)
		if err != nil {
			log.Error().Err(err).Msg("failed to reactivate room token")

			return res, fmt.Errorf("failed to reactivate room token: %w", err)
		}

		existing.IsActive = true
		existing.ExpiresAt = nil

		return existing, nil
	}

	token := model.RoomToken{
		ID:        uuid.NewString(),
		BookingID: bookingID,
		RoomID:    roomID,
		Token:     uuid.NewString(),
		IsActive:  true,
		IssuedAt:  timezone.Now(),
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}

	if err = s.repo.InsertTx(ctx, sqltx, token); err != nil {
		log.Error().Err(err).Msg("failed to insert room token")

		return res, fmt.Errorf("failed to insert room token: %w", err)
	}

	return token, nil
}

// DeactivateTx stamps the booking's token inactive with expires_at=now. A
// booking without a token is not an error; confirmed bookings cancelled
// before check-in never had one.
func (s *serviceImpl) DeactivateTx(ctx context.Context, sqltx *sqlx.Tx, bookingID string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".DeactivateTx")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	filter := shared.FilterByID(bookingID, model.FieldBookingID, model.TableName)

	exist, err := s.repo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check room token")

		return fmt.Errorf("failed to check room token: %w", err)
	}

	if !exist {
		return nil
	}

	err = s.repo.UpdateTx(ctx, sqltx, map[string]any{
		model.FieldIsActive:      false,
		model.FieldExpiresAt:     timezone.Now(),
		constant.FieldModifiedAt: timezone.Now(),
		constant.FieldModifiedBy: user,
	}, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to deactivate room token")

		return fmt.Errorf("failed to deactivate room token: %w", err)
	}

	return nil
}

// GetActive resolves an opaque token value to its row, failing with 401 when
// the token is unknown or no longer active.
func (s *serviceImpl) GetActive(ctx context.Context, token string) (res model.RoomToken, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetActive")
	defer scope.End()
	defer scope.TraceIfError(err)

	row, err := s.repo.Get(ctx, gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldToken,
				Operator: gDto.FilterOperatorEq,
				Value:    token,
				Table:    model.TableName,
			},
		},
	})
	if err != nil {
		log.Error().Err(err).Msg("failed to get room token")

		return res, fmt.Errorf("failed to get room token: %w", err)
	}

	if row.ID == constant.Empty || !row.IsActive {
		return res, failure.Unauthorized("room token is not active") // nolint:wrapcheck
	}

	return row, nil
}

// QRCode renders the guest portal URL for a booking's active token as a PNG.
func (s *serviceImpl) QRCode(ctx context.Context, bookingID string) (png []byte, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".QRCode")
	defer scope.End()
	defer scope.TraceIfError(err)

	token, err := s.repo.Get(ctx, shared.FilterByID(bookingID, model.FieldBookingID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get room token")

		return nil, fmt.Errorf("failed to get room token: %w", err)
	}

	if token.ID == constant.Empty || !token.IsActive {
		return nil, failure.NotFound("no active room token for booking") // nolint:wrapcheck
	}

	portalURL := fmt.Sprintf("%s/guest/%s", s.cfg.App.BaseURL, token.Token)

	png, err = qrcode.Encode(portalURL, qrcode.Medium, qrSizePx)
	if err != nil {
		log.Error().Err(err).Msg("failed to encode QR code")

		return nil, fmt.Errorf("failed to encode QR code: %w", err)
	}

	return png, nil
}
