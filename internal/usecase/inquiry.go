package usecase

import (
	"context"
	"log/slog"
	"time"

	"github.com/deliciosaph/deliciosa/internal/domain"
	"github.com/deliciosaph/deliciosa/internal/service"
)

type InquiryUsecase struct {
	repo   InquiryRepository
	mailer InquiryMailer
	signal SignalPublisher
}

func NewInquiryUsecase(repo InquiryRepository, mailer InquiryMailer, signal SignalPublisher) *InquiryUsecase {
	return &InquiryUsecase{
		repo:   repo,
		mailer: mailer,
		signal: signal,
	}
}

// Submit persists a customer inquiry, then relays it by mail and notifies
// connected editors. Relay and notification are best effort: the inquiry
// is already stored, so their failures are only logged.
func (uc *InquiryUsecase) Submit(ctx context.Context, inq domain.Inquiry) (domain.Inquiry, error) {
	created, err := uc.repo.Create(ctx, inq)
	if err != nil {
		return domain.Inquiry{}, err
	}

	if uc.mailer != nil {
		if err := uc.mailer.SendInquiry(created); err != nil {
			slog.Error(
				"Inquiry mail relay failed",
				slog.String("error", err.Error()),
				slog.String("inquiry", created.ID),
			)
		}
	}

	if uc.signal != nil {
		event := domain.Event{
			Type:      "inquiry.created",
			Body:      created,
			Timestamp: time.Now(),
		}
		if err := uc.signal.Publish(ctx, service.AdminChannel, event); err != nil {
			slog.Error(
				"Inquiry signal publish failed",
				slog.String("error", err.Error()),
				slog.String("inquiry", created.ID),
			)
		}
	}

	return created, nil
}

func (uc *InquiryUsecase) List(ctx context.Context, status domain.InquiryStatus, page, perPage int) ([]domain.Inquiry, int64, error) {
	return uc.repo.List(ctx, status, page, perPage)
}

func (uc *InquiryUsecase) SetStatus(ctx context.Context, id string, status domain.InquiryStatus) error {
	return uc.repo.SetStatus(ctx, id, status)
}

func (uc *InquiryUsecase) Delete(ctx context.Context, id string) error {
	return uc.repo.Delete(ctx, id)
}
