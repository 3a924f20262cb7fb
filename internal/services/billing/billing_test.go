package billing

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/mkravelev/maas-platform/internal/http/handlers/billing/billingwebhook"
)

type RepoMock struct{ mock.Mock }

func (m *RepoMock) UpdateCustomerPackageStatus(ctx context.Context, id int64, status string) (int, error) {
	args := m.Called(ctx, id, status)
	return args.Int(0), args.Error(1)
}

type CacheMock struct{ mock.Mock }

func (m *CacheMock) Invalidate(key string) error {
	return m.Called(key).Error(0)
}

func testPayload(event, packageID string) *billingwebhook.Payload {
	p := &billingwebhook.Payload{Event: event}
	p.Object.ID = "sub_123"
	p.Object.Status = "active"
	p.Object.Metadata = map[string]string{"customer_package_id": packageID}
	return p
}

func testService(repo *RepoMock, cache *CacheMock) *Service {
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	return New(repo, cache, log)
}

func TestProcessWebhookEvent(t *testing.T) {
	tests := []struct {
		name       string
		event      string
		wantStatus string
	}{
		{"активация подписки", "subscription.activated", "ACTIVE"},
		{"приостановка подписки", "subscription.suspended", "SUSPENDED"},
		{"отмена подписки", "subscription.cancelled", "CANCELLED"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(RepoMock)
			cache := new(CacheMock)
			svc := testService(repo, cache)

			repo.On("UpdateCustomerPackageStatus", mock.Anything, int64(17), tt.wantStatus).Return(1, nil)
			cache.On("Invalidate", "profitability:report").Return(nil)

			err := svc.ProcessWebhookEvent(testPayload(tt.event, "17"))
			assert.NoError(t, err)

			repo.AssertExpectations(t)
			cache.AssertExpectations(t)
		})
	}
}

func TestProcessWebhookEvent_UnknownEventIsIgnored(t *testing.T) {
	repo := new(RepoMock)
	cache := new(CacheMock)
	svc := testService(repo, cache)

	err := svc.ProcessWebhookEvent(testPayload("subscription.renewed", "17"))
	assert.NoError(t, err)

	repo.AssertNotCalled(t, "UpdateCustomerPackageStatus", mock.Anything, mock.Anything, mock.Anything)
}

func TestProcessWebhookEvent_MissingMetadata(t *testing.T) {
	repo := new(RepoMock)
	cache := new(CacheMock)
	svc := testService(repo, cache)

	p := &billingwebhook.Payload{Event: "subscription.activated"}
	err := svc.ProcessWebhookEvent(p)
	assert.Error(t, err)
}

func TestProcessWebhookEvent_BadPackageID(t *testing.T) {
	repo := new(RepoMock)
	cache := new(CacheMock)
	svc := testService(repo, cache)

	err := svc.ProcessWebhookEvent(testPayload("subscription.activated", "abc"))
	assert.Error(t, err)
}

func TestProcessWebhookEvent_NoMatchingPackage(t *testing.T) {
	repo := new(RepoMock)
	cache := new(CacheMock)
	svc := testService(repo, cache)

	repo.On("UpdateCustomerPackageStatus", mock.Anything, int64(17), "ACTIVE").Return(0, nil)

	err := svc.ProcessWebhookEvent(testPayload("subscription.activated", "17"))
	assert.NoError(t, err)

	cache.AssertNotCalled(t, "Invalidate", mock.Anything)
}

func TestProcessWebhookEvent_RepositoryError(t *testing.T) {
	repo := new(RepoMock)
	cache := new(CacheMock)
	svc := testService(repo, cache)

	repo.On("UpdateCustomerPackageStatus", mock.Anything, int64(17), "ACTIVE").Return(0, errors.New("db error"))

	err := svc.ProcessWebhookEvent(testPayload("subscription.activated", "17"))
	assert.Error(t, err)
}
