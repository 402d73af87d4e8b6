package usecase

import (
	"context"
	"fmt"
	"testing"

	"github.com/deliciosaph/deliciosa/internal/domain"
	"github.com/deliciosaph/deliciosa/internal/service"
)

type mockInquiryRepo struct {
	created domain.Inquiry
}

func (m *mockInquiryRepo) Create(ctx context.Context, inq domain.Inquiry) (domain.Inquiry, error) {
	inq.ID = "inq-1"
	inq.Status = domain.InquiryStatusNew
	m.created = inq
	return inq, nil
}

func (m *mockInquiryRepo) List(ctx context.Context, status domain.InquiryStatus, page, perPage int) ([]domain.Inquiry, int64, error) {
	return nil, 0, nil
}

func (m *mockInquiryRepo) SetStatus(ctx context.Context, id string, status domain.InquiryStatus) error {
	return nil
}

func (m *mockInquiryRepo) Delete(ctx context.Context, id string) error { return nil }

type mockMailer struct {
	sent []domain.Inquiry
	err  error
}

func (m *mockMailer) SendInquiry(inq domain.Inquiry) error {
	m.sent = append(m.sent, inq)
	return m.err
}

type mockSignal struct {
	channel string
	event   domain.Event
}

func (m *mockSignal) Publish(ctx context.Context, channel string, event domain.Event) error {
	m.channel = channel
	m.event = event
	return nil
}

func TestInquirySubmit(t *testing.T) {
	repo := &mockInquiryRepo{}
	mailer := &mockMailer{}
	signal := &mockSignal{}
	uc := NewInquiryUsecase(repo, mailer, signal)

	created, err := uc.Submit(context.Background(), domain.Inquiry{
		Name:    "Maria",
		Email:   "maria@example.com",
		Message: "Catering for 30 pax?",
	})
	if err != nil {
		t.Fatalf("submit failed: %v", err)
	}

	if created.ID == "" || created.Status != domain.InquiryStatusNew {
		t.Fatalf("unexpected created inquiry: %+v", created)
	}
	if len(mailer.sent) != 1 {
		t.Fatalf("expected one relay mail, got %d", len(mailer.sent))
	}
	if signal.channel != service.AdminChannel {
		t.Fatalf("expected publish on %s, got %s", service.AdminChannel, signal.channel)
	}
	if signal.event.Type != "inquiry.created" {
		t.Fatalf("unexpected event type %s", signal.event.Type)
	}
}

func TestInquirySubmitSurvivesMailFailure(t *testing.T) {
	repo := &mockInquiryRepo{}
	mailer := &mockMailer{err: fmt.Errorf("smtp down")}
	uc := NewInquiryUsecase(repo, mailer, &mockSignal{})

	_, err := uc.Submit(context.Background(), domain.Inquiry{
		Name:    "Maria",
		Email:   "maria@example.com",
		Message: "hi",
	})
	if err != nil {
		t.Fatalf("mail failure must not fail the submit: %v", err)
	}
	if repo.created.Name != "Maria" {
		t.Fatalf("inquiry was not persisted")
	}
}
