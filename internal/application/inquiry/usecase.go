package inquiry

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/isokohq/isoko-api/internal/application/dto"
	"github.com/isokohq/isoko-api/internal/application/notify"
	"github.com/isokohq/isoko-api/internal/domain"
	"github.com/isokohq/isoko-api/internal/domain/entity"
	"github.com/isokohq/isoko-api/internal/domain/repository"
	"github.com/isokohq/isoko-api/pkg/logger"
)

// responseWindowDays is the trailing window the business response rate and
// average response time are computed over.
const responseWindowDays = 30

// minResponseLen rejects throwaway replies; owners must write a real answer.
const minResponseLen = 10

// EventRecorder records an analytics event. Inquiry creation emits a
// contact_click so the dashboard counts form submissions as contacts.
type EventRecorder interface {
	RecordEvent(ctx context.Context, businessID, eventType string) error
}

// Notifier queues outbound notification emails.
type Notifier interface {
	Enqueue(e notify.Email) bool
}

// Usecase implements the customer inquiry lifecycle (new -> read ->
// responded -> closed) and the denormalized response stats on the business.
type Usecase struct {
	inquiries  repository.InquiryRepository
	businesses repository.BusinessRepository
	users      repository.UserRepository
	events     EventRecorder
	notifier   Notifier
	now        func() time.Time
	log        *logger.Logger
}

// NewUsecase wires the inquiry use case.
func NewUsecase(
	inquiries repository.InquiryRepository,
	businesses repository.BusinessRepository,
	users repository.UserRepository,
	events EventRecorder,
	notifier Notifier,
	log *logger.Logger,
) *Usecase {
	return &Usecase{
		inquiries:  inquiries,
		businesses: businesses,
		users:      users,
		events:     events,
		notifier:   notifier,
		now:        time.Now,
		log:        log,
	}
}

// Create files a new inquiry from the public contact form. The inquiry write
// is the source of truth; the analytics event and the owner notification are
// best-effort and never fail the request.
func (uc *Usecase) Create(ctx context.Context, businessID string, req dto.CreateInquiryRequest) (*dto.InquiryResponse, error) {
	b, err := uc.businesses.GetByID(ctx, businessID)
	if err != nil {
		return nil, err
	}
	if b == nil || !b.IsActive() {
		return nil, domain.ErrNotFound
	}

	if strings.TrimSpace(req.CustomerName) == "" {
		return nil, fmt.Errorf("%w: customer_name is required", domain.ErrInvalidInput)
	}
	if !strings.Contains(req.CustomerEmail, "@") {
		return nil, fmt.Errorf("%w: valid customer_email is required", domain.ErrInvalidInput)
	}
	if strings.TrimSpace(req.Subject) == "" {
		return nil, fmt.Errorf("%w: subject is required", domain.ErrInvalidInput)
	}
	if strings.TrimSpace(req.Message) == "" {
		return nil, fmt.Errorf("%w: message is required", domain.ErrInvalidInput)
	}

	inquiryType := req.InquiryType
	if inquiryType == "" {
		inquiryType = entity.InquiryTypeGeneral
	}
	if !entity.ValidInquiryType(inquiryType) {
		return nil, fmt.Errorf("%w: unknown inquiry_type %q", domain.ErrInvalidInput, inquiryType)
	}
	source := req.Source
	if source == "" {
		source = "web"
	}

	now := uc.now().UTC()
	inq := &entity.CustomerInquiry{
		ID:            uuid.NewString(),
		BusinessID:    businessID,
		CustomerName:  req.CustomerName,
		CustomerEmail: req.CustomerEmail,
		CustomerPhone: req.CustomerPhone,
		Subject:       req.Subject,
		Message:       req.Message,
		InquiryType:   inquiryType,
		Status:        entity.InquiryStatusNew,
		Priority:      entity.PriorityNormal,
		Source:        source,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := uc.inquiries.Create(ctx, inq); err != nil {
		return nil, err
	}

	// A form submission is a contact. The dashboard stays best-effort: the
	// inquiry is already stored, so a failed event is logged and dropped.
	if err := uc.events.RecordEvent(ctx, businessID, entity.EventContactClick); err != nil {
		uc.log.Warn().Err(err).Str("business_id", businessID).Msg("inquiry: contact event not recorded")
	}

	uc.notifyOwner(ctx, b, inq)

	created, err := uc.inquiries.GetByID(ctx, inq.ID)
	if err != nil {
		return nil, err
	}
	return toResponse(created), nil
}

// Get returns one inquiry for its business owner or an admin. Fetching an
// unread inquiry marks it read; the guard lives in the repository's WHERE
// clause, so concurrent fetches cannot double-transition.
func (uc *Usecase) Get(ctx context.Context, actorID, inquiryID string) (*dto.InquiryResponse, error) {
	inq, err := uc.load(ctx, actorID, inquiryID)
	if err != nil {
		return nil, err
	}

	if inq.Status == entity.InquiryStatusNew {
		if err := uc.inquiries.MarkAsRead(ctx, inq.ID); err != nil {
			return nil, err
		}
		inq.Status = entity.InquiryStatusRead
	}
	return toResponse(inq), nil
}

// List returns the owner inbox for one business with per-status counts.
func (uc *Usecase) List(ctx context.Context, actorID, businessID string, req dto.ListInquiriesRequest) (*dto.InquiryListResponse, error) {
	if _, err := uc.authorizeBusiness(ctx, actorID, businessID); err != nil {
		return nil, err
	}
	if req.Status != "" && !entity.ValidInquiryStatus(req.Status) {
		return nil, fmt.Errorf("%w: unknown status %q", domain.ErrInvalidInput, req.Status)
	}
	if req.Priority != "" && !entity.ValidPriority(req.Priority) {
		return nil, fmt.Errorf("%w: unknown priority %q", domain.ErrInvalidInput, req.Priority)
	}
	req.Normalize()

	items, total, err := uc.inquiries.ListByBusiness(ctx, businessID, repository.InquiryFilter{
		Status:      req.Status,
		InquiryType: req.InquiryType,
		Priority:    req.Priority,
		SortBy:      req.SortBy,
		Limit:       req.Limit,
		Offset:      req.Offset(),
	})
	if err != nil {
		return nil, err
	}
	counts, err := uc.inquiries.StatusCounts(ctx, businessID)
	if err != nil {
		return nil, err
	}

	out := make([]dto.InquiryResponse, 0, len(items))
	for _, inq := range items {
		out = append(out, *toResponse(inq))
	}
	return &dto.InquiryListResponse{
		Inquiries: out,
		Stats: dto.InquiryStatsResponse{
			Total:     counts.Total,
			New:       counts.New,
			Read:      counts.Read,
			Responded: counts.Responded,
			Closed:    counts.Closed,
		},
		Pagination: dto.PageResponse{Page: req.Page, Limit: req.Limit, Total: total},
	}, nil
}

// Respond stores the owner's reply. Message and timestamp are written in one
// statement so they can never diverge; afterwards the business response rate
// and average response time are recomputed over the trailing window.
func (uc *Usecase) Respond(ctx context.Context, actorID, inquiryID string, req dto.RespondInquiryRequest) (*dto.InquiryResponse, error) {
	inq, err := uc.load(ctx, actorID, inquiryID)
	if err != nil {
		return nil, err
	}
	if inq.RespondedAt != nil {
		return nil, fmt.Errorf("%w: inquiry already responded", domain.ErrConflict)
	}

	msg := strings.TrimSpace(req.ResponseMessage)
	if len(msg) < minResponseLen {
		return nil, fmt.Errorf("%w: response_message must be at least %d characters", domain.ErrInvalidInput, minResponseLen)
	}

	respondedAt := uc.now().UTC()
	if err := uc.inquiries.SetResponse(ctx, inq.ID, msg, respondedAt); err != nil {
		return nil, err
	}

	uc.refreshResponseStats(ctx, inq.BusinessID)
	uc.notifyCustomer(inq, msg)

	inq.Status = entity.InquiryStatusResponded
	inq.ResponseMessage = &msg
	inq.RespondedAt = &respondedAt
	return toResponse(inq), nil
}

// UpdateStatus overwrites the status without transition-order enforcement,
// optionally changing the priority in the same call.
func (uc *Usecase) UpdateStatus(ctx context.Context, actorID, inquiryID string, req dto.UpdateInquiryStatusRequest) (*dto.InquiryResponse, error) {
	inq, err := uc.load(ctx, actorID, inquiryID)
	if err != nil {
		return nil, err
	}
	if !entity.ValidInquiryStatus(req.Status) {
		return nil, fmt.Errorf("%w: unknown status %q", domain.ErrInvalidInput, req.Status)
	}
	if req.Priority != nil && !entity.ValidPriority(*req.Priority) {
		return nil, fmt.Errorf("%w: unknown priority %q", domain.ErrInvalidInput, *req.Priority)
	}

	if err := uc.inquiries.UpdateStatus(ctx, inq.ID, req.Status, req.Priority); err != nil {
		return nil, err
	}
	updated, err := uc.inquiries.GetByID(ctx, inq.ID)
	if err != nil {
		return nil, err
	}
	return toResponse(updated), nil
}

// UpdatePriority changes the priority only.
func (uc *Usecase) UpdatePriority(ctx context.Context, actorID, inquiryID string, req dto.UpdateInquiryPriorityRequest) (*dto.InquiryResponse, error) {
	inq, err := uc.load(ctx, actorID, inquiryID)
	if err != nil {
		return nil, err
	}
	if !entity.ValidPriority(req.Priority) {
		return nil, fmt.Errorf("%w: unknown priority %q", domain.ErrInvalidInput, req.Priority)
	}

	if err := uc.inquiries.UpdatePriority(ctx, inq.ID, req.Priority); err != nil {
		return nil, err
	}
	updated, err := uc.inquiries.GetByID(ctx, inq.ID)
	if err != nil {
		return nil, err
	}
	return toResponse(updated), nil
}

// refreshResponseStats recomputes the denormalized rate and average response
// time from the trailing inquiry history. The response itself is already
// committed, so a failed refresh is logged; the cache catches up on the next
// response.
func (uc *Usecase) refreshResponseStats(ctx context.Context, businessID string) {
	since := uc.now().UTC().AddDate(0, 0, -responseWindowDays)
	stats, err := uc.inquiries.ResponseStatsSince(ctx, businessID, since)
	if err == nil {
		rate := responseRate(stats.Responded, stats.Total)
		err = uc.businesses.UpdateResponseStats(ctx, businessID, rate, avgResponseMinutes(stats.AvgRespHours))
	}
	if err != nil {
		uc.log.Warn().Err(err).Str("business_id", businessID).Msg("inquiry: response stats refresh failed")
	}
}

func (uc *Usecase) notifyOwner(ctx context.Context, b *entity.Business, inq *entity.CustomerInquiry) {
	owner, err := uc.users.GetByID(ctx, b.OwnerID)
	if err != nil || owner == nil || owner.Email == "" {
		if err != nil {
			uc.log.Warn().Err(err).Str("business_id", b.ID).Msg("inquiry: owner lookup failed")
		}
		return
	}
	uc.notifier.Enqueue(notify.Email{
		To:      owner.Email,
		ToName:  owner.Name,
		Subject: fmt.Sprintf("New inquiry for %s: %s", b.Name, inq.Subject),
		Body: fmt.Sprintf("From: %s <%s>\n\n%s", inq.CustomerName, inq.CustomerEmail,
			inq.Message),
	})
}

func (uc *Usecase) notifyCustomer(inq *entity.CustomerInquiry, response string) {
	uc.notifier.Enqueue(notify.Email{
		To:      inq.CustomerEmail,
		ToName:  inq.CustomerName,
		Subject: "Re: " + inq.Subject,
		Body:    response,
	})
}

// load fetches the inquiry and checks the actor may manage its business.
func (uc *Usecase) load(ctx context.Context, actorID, inquiryID string) (*entity.CustomerInquiry, error) {
	inq, err := uc.inquiries.GetByID(ctx, inquiryID)
	if err != nil {
		return nil, err
	}
	if inq == nil {
		return nil, domain.ErrNotFound
	}
	if _, err := uc.authorizeBusiness(ctx, actorID, inq.BusinessID); err != nil {
		return nil, err
	}
	return inq, nil
}

func (uc *Usecase) authorizeBusiness(ctx context.Context, actorID, businessID string) (*entity.Business, error) {
	actor, err := uc.users.GetByID(ctx, actorID)
	if err != nil {
		return nil, err
	}
	if actor == nil {
		return nil, domain.ErrUnauthorized
	}
	b, err := uc.businesses.GetByID(ctx, businessID)
	if err != nil {
		return nil, err
	}
	if b == nil {
		return nil, domain.ErrNotFound
	}
	if !actor.CanManage(b.OwnerID) {
		return nil, domain.ErrForbidden
	}
	return b, nil
}

func toResponse(inq *entity.CustomerInquiry) *dto.InquiryResponse {
	return &dto.InquiryResponse{
		ID:              inq.ID,
		BusinessID:      inq.BusinessID,
		CustomerName:    inq.CustomerName,
		CustomerEmail:   inq.CustomerEmail,
		CustomerPhone:   inq.CustomerPhone,
		Subject:         inq.Subject,
		Message:         inq.Message,
		InquiryType:     inq.InquiryType,
		Status:          inq.Status,
		Priority:        inq.Priority,
		Source:          inq.Source,
		ResponseMessage: inq.ResponseMessage,
		RespondedAt:     inq.RespondedAt,
		CreatedAt:       inq.CreatedAt,
		UpdatedAt:       inq.UpdatedAt,
	}
}
