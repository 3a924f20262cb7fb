// Package billing обрабатывает события внешней биллинговой системы:
// по событию подписки переключает статус подключённого клиенту пакета.
package billing

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/mkravelev/maas-platform/internal/http/handlers/billing/billingwebhook"
)

// Repository описывает операции хранилища, нужные сервису биллинга.
type Repository interface {
	UpdateCustomerPackageStatus(ctx context.Context, id int64, status string) (int, error)
}

// Cache описывает операции кеша, нужные сервису биллинга.
type Cache interface {
	Invalidate(key string) error
}

// Service реализует обработку событий биллинга.
type Service struct {
	repo  Repository
	cache Cache
	log   *slog.Logger
}

// New создает новый Service.
func New(repo Repository, cache Cache, log *slog.Logger) *Service {
	return &Service{
		repo:  repo,
		cache: cache,
		log:   log,
	}
}

const profitabilityCacheKey = "profitability:report"

// eventStatus сопоставляет событие биллинга статусу подключения.
func eventStatus(event string) (string, bool) {
	switch strings.ToLower(event) {
	case billingwebhook.SubscriptionActivated:
		return "ACTIVE", true
	case billingwebhook.SubscriptionSuspended:
		return "SUSPENDED", true
	case billingwebhook.SubscriptionCancelled:
		return "CANCELLED", true
	default:
		return "", false
	}
}

// ProcessWebhookEvent переключает статус подключения пакета по событию
// биллинга. Идентификатор подключения приходит в metadata.
func (s *Service) ProcessWebhookEvent(payload *billingwebhook.Payload) error {
	const op = "services.billing.ProcessWebhookEvent"

	status, ok := eventStatus(payload.Event)
	if !ok {
		s.log.Info("skipping unsupported billing event", slog.String("event", payload.Event))
		return nil
	}

	raw, ok := payload.Object.Metadata["customer_package_id"]
	if !ok {
		return fmt.Errorf("%s: missing customer_package_id in metadata", op)
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return fmt.Errorf("%s: invalid customer_package_id: %w", op, err)
	}

	count, err := s.repo.UpdateCustomerPackageStatus(context.Background(), id, status)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if count == 0 {
		s.log.Warn("billing event matched no customer package",
			slog.Int64("customer_package_id", id),
			slog.String("event", payload.Event))
		return nil
	}

	if err := s.cache.Invalidate(profitabilityCacheKey); err != nil {
		s.log.Warn("failed to invalidate profitability cache", slog.Any("err", err))
	}

	s.log.Info("customer package status updated",
		slog.Int64("customer_package_id", id),
		slog.String("status", status))
	return nil
}
