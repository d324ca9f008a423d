package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"panelapi/internal/jalali"
	"panelapi/internal/model"
	"panelapi/internal/repository"
	"panelapi/internal/serial"
	"panelapi/internal/workflow"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Publisher pushes workflow events to connected clients
type Publisher interface {
	Publish(message []byte)
}

// --- DTOs ---

type CreatePaymentRequestRequest struct {
	Scope       string `json:"scope" binding:"required,oneof=office site finance cash capex projects"`
	Amount      string `json:"amount" binding:"required"` // decimal string, rials
	Description string `json:"description"`
	RequestDate string `json:"request_date"` // Jalali YYYY-MM-DD, defaults to today
	ProjectID   string `json:"project_id"`
}

type UpdatePaymentRequestRequest struct {
	Amount      string `json:"amount"`
	Description string `json:"description"`
	RequestDate string `json:"request_date"`
}

type ActionRequest struct {
	Note string `json:"note"`
}

type PaymentActionResponse struct {
	Type      string `json:"type"`
	FromRole  string `json:"from_role"`
	ToRole    string `json:"to_role"`
	Note      string `json:"note"`
	CreatedAt string `json:"created_at"`
}

type PaymentRequestResponse struct {
	ID          string  `json:"id"`
	Serial      string  `json:"serial"`
	Scope       string  `json:"scope"`
	Status      string  `json:"status"`
	Amount      string  `json:"amount"`
	Description string  `json:"description"`
	RequestDate string  `json:"request_date"`
	ProjectID   *string `json:"project_id"`
	ProjectName string  `json:"project_name,omitempty"`
	CurrentRole string  `json:"current_role"`

	// Badge computed by the workflow resolver
	StepKey     string `json:"step_key"`
	StatusLabel string `json:"status_label"`
	StatusColor string `json:"status_color"`

	Actions   []PaymentActionResponse `json:"actions"`
	CreatedAt string                  `json:"created_at"`
}

// --- Interface ---

type PaymentRequestService interface {
	Create(ctx context.Context, userID string, req CreatePaymentRequestRequest) (PaymentRequestResponse, error)
	Get(ctx context.Context, id string) (PaymentRequestResponse, error)
	List(ctx context.Context, filter repository.RequestFilter) ([]PaymentRequestResponse, int64, error)
	Update(ctx context.Context, id string, req UpdatePaymentRequestRequest) (PaymentRequestResponse, error)
	Delete(ctx context.Context, id string, userID string) error
	Approve(ctx context.Context, id string, userID string, note string) (PaymentRequestResponse, error)
	Reject(ctx context.Context, id string, userID string, note string) (PaymentRequestResponse, error)
	Return(ctx context.Context, id string, userID string, note string) (PaymentRequestResponse, error)
	Import(ctx context.Context, userID string, raw map[string]interface{}) (PaymentRequestResponse, error)
}

type paymentRequestService struct {
	repo      repository.PaymentRequestRepository
	auditRepo repository.AuditRepository
	txManager repository.TransactionManager
	serials   serial.Service
	publisher Publisher
}

func NewPaymentRequestService(
	repo repository.PaymentRequestRepository,
	auditRepo repository.AuditRepository,
	txManager repository.TransactionManager,
	serials serial.Service,
	publisher Publisher,
) PaymentRequestService {
	return &paymentRequestService{
		repo:      repo,
		auditRepo: auditRepo,
		txManager: txManager,
		serials:   serials,
		publisher: publisher,
	}
}

// recordFromModel maps a stored request into the resolver's canonical shape
func recordFromModel(pr *model.PaymentRequest) workflow.Record {
	rec := workflow.Record{
		Scope:        workflow.Scope(pr.Scope),
		Status:       workflow.Status(pr.Status),
		CurrentRole:  pr.CurrentRole,
		AssignedRole: pr.AssignedRole,
		Unit:         pr.WorkflowUnit,
	}
	for _, act := range pr.Actions {
		rec.History = append(rec.History, workflow.Action{
			Type: act.Type,
			From: act.FromRole,
			To:   act.ToRole,
			Note: act.Note,
		})
	}
	return rec
}

func toRequestResponse(pr *model.PaymentRequest) PaymentRequestResponse {
	res := workflow.Resolve(recordFromModel(pr))

	resp := PaymentRequestResponse{
		ID:          pr.ID.String(),
		Serial:      pr.Serial,
		Scope:       pr.Scope,
		Status:      pr.Status,
		Amount:      pr.Amount.String(),
		Description: pr.Description,
		RequestDate: pr.RequestDate,
		CurrentRole: pr.CurrentRole,
		StepKey:     string(res.Step),
		StatusLabel: res.Label,
		StatusColor: res.Color,
		CreatedAt:   pr.CreatedAt.Format(time.RFC3339),
	}
	if pr.ProjectID != nil {
		id := pr.ProjectID.String()
		resp.ProjectID = &id
	}
	if pr.Project != nil {
		resp.ProjectName = pr.Project.Name
	}
	for _, act := range pr.Actions {
		resp.Actions = append(resp.Actions, PaymentActionResponse{
			Type:      act.Type,
			FromRole:  act.FromRole,
			ToRole:    act.ToRole,
			Note:      act.Note,
			CreatedAt: act.CreatedAt.Format(time.RFC3339),
		})
	}
	return resp
}

func (s *paymentRequestService) publishEvent(event string, pr *model.PaymentRequest) {
	if s.publisher == nil {
		return
	}
	res := workflow.Resolve(recordFromModel(pr))
	payload, err := json.Marshal(map[string]interface{}{
		"kind":   "payment_request",
		"event":  event,
		"id":     pr.ID.String(),
		"serial": pr.Serial,
		"scope":  pr.Scope,
		"status": pr.Status,
		"label":  res.Label,
	})
	if err != nil {
		return
	}
	s.publisher.Publish(payload)
}

func (s *paymentRequestService) audit(ctx context.Context, userID, action string, pr *model.PaymentRequest, extra map[string]interface{}) error {
	var actorID *uuid.UUID
	if parsed, err := uuid.Parse(userID); err == nil {
		actorID = &parsed
	}
	details := map[string]interface{}{
		"serial": pr.Serial,
		"scope":  pr.Scope,
		"amount": pr.Amount.String(),
	}
	for k, v := range extra {
		details[k] = v
	}
	raw, _ := json.Marshal(details)
	return s.auditRepo.Create(ctx, &model.AuditLog{
		UserID:     actorID,
		Action:     action,
		EntityID:   pr.ID.String(),
		EntityName: pr.Serial,
		Details:    string(raw),
	})
}

func (s *paymentRequestService) Create(ctx context.Context, userID string, req CreatePaymentRequestRequest) (PaymentRequestResponse, error) {
	amount, err := decimal.NewFromString(req.Amount)
	if err != nil {
		return PaymentRequestResponse{}, fmt.Errorf("invalid amount: %w", err)
	}
	if amount.Sign() <= 0 {
		return PaymentRequestResponse{}, errors.New("amount must be positive")
	}

	requestDate := req.RequestDate
	if requestDate == "" {
		requestDate = jalali.Today()
	}

	var projectID *uuid.UUID
	if req.ProjectID != "" {
		parsed, parseErr := uuid.Parse(req.ProjectID)
		if parseErr != nil {
			return PaymentRequestResponse{}, fmt.Errorf("invalid project_id: %w", parseErr)
		}
		projectID = &parsed
	}

	// Consumed outside the tx: a burned serial on a failed insert keeps the
	// counter monotonic, which is the property that matters.
	serialNo, err := s.serials.Next(ctx, serial.KindPaymentRequest)
	if err != nil {
		return PaymentRequestResponse{}, fmt.Errorf("failed to issue serial: %w", err)
	}

	var requesterID *uuid.UUID
	if parsed, parseErr := uuid.Parse(userID); parseErr == nil {
		requesterID = &parsed
	}

	creator := workflow.FirstStep(workflow.Scope(req.Scope))
	pr := model.PaymentRequest{
		Serial:      serialNo,
		Scope:       req.Scope,
		Status:      model.RequestPending,
		Amount:      amount,
		Description: req.Description,
		RequestDate: requestDate,
		ProjectID:   projectID,
		CurrentRole: creator.Label,
		RequestedBy: requesterID,
	}

	err = s.txManager.RunInTx(ctx, func(txCtx context.Context) error {
		if createErr := s.repo.Create(txCtx, &pr); createErr != nil {
			return fmt.Errorf("failed to create payment request: %w", createErr)
		}
		action := model.PaymentAction{
			RequestID: pr.ID,
			Type:      model.ActionTypeStatus,
			ToRole:    creator.Label,
			ActorID:   requesterID,
		}
		if actErr := s.repo.AppendAction(txCtx, &action); actErr != nil {
			return fmt.Errorf("failed to record initial action: %w", actErr)
		}
		return s.audit(txCtx, userID, model.ActionCreateRequest, &pr, nil)
	})
	if err != nil {
		return PaymentRequestResponse{}, err
	}

	created, err := s.repo.GetByID(ctx, pr.ID.String())
	if err != nil {
		return PaymentRequestResponse{}, fmt.Errorf("failed to reload payment request: %w", err)
	}

	s.publishEvent("created", created)
	return toRequestResponse(created), nil
}

func (s *paymentRequestService) Get(ctx context.Context, id string) (PaymentRequestResponse, error) {
	pr, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return PaymentRequestResponse{}, errors.New("payment request not found")
	}
	return toRequestResponse(pr), nil
}

func (s *paymentRequestService) List(ctx context.Context, filter repository.RequestFilter) ([]PaymentRequestResponse, int64, error) {
	if filter.Page <= 0 {
		filter.Page = 1
	}
	if filter.Limit <= 0 {
		filter.Limit = 20
	}

	requests, total, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	responses := make([]PaymentRequestResponse, 0, len(requests))
	for i := range requests {
		responses = append(responses, toRequestResponse(&requests[i]))
	}
	return responses, total, nil
}

func (s *paymentRequestService) Update(ctx context.Context, id string, req UpdatePaymentRequestRequest) (PaymentRequestResponse, error) {
	pr, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return PaymentRequestResponse{}, errors.New("payment request not found")
	}
	if pr.Status != model.RequestPending {
		return PaymentRequestResponse{}, errors.New("only pending requests can be edited")
	}

	if req.Amount != "" {
		amount, parseErr := decimal.NewFromString(req.Amount)
		if parseErr != nil {
			return PaymentRequestResponse{}, fmt.Errorf("invalid amount: %w", parseErr)
		}
		pr.Amount = amount
	}
	if req.Description != "" {
		pr.Description = req.Description
	}
	if req.RequestDate != "" {
		pr.RequestDate = req.RequestDate
	}

	if err := s.repo.Update(ctx, pr); err != nil {
		return PaymentRequestResponse{}, err
	}
	return toRequestResponse(pr), nil
}

func (s *paymentRequestService) Delete(ctx context.Context, id string, userID string) error {
	pr, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return errors.New("payment request not found")
	}
	return s.txManager.RunInTx(ctx, func(txCtx context.Context) error {
		if delErr := s.repo.Delete(txCtx, id); delErr != nil {
			return delErr
		}
		return s.audit(txCtx, userID, model.ActionDeleteRequest, pr, nil)
	})
}

func (s *paymentRequestService) Approve(ctx context.Context, id string, userID string, note string) (PaymentRequestResponse, error) {
	return s.act(ctx, id, userID, note, model.ActionTypeApproved, model.ActionApproveRequest)
}

func (s *paymentRequestService) Reject(ctx context.Context, id string, userID string, note string) (PaymentRequestResponse, error) {
	return s.act(ctx, id, userID, note, model.ActionTypeRejected, model.ActionRejectRequest)
}

func (s *paymentRequestService) Return(ctx context.Context, id string, userID string, note string) (PaymentRequestResponse, error) {
	return s.act(ctx, id, userID, note, model.ActionTypeReturned, model.ActionReturnRequest)
}

// act appends a history row, moves the current role, and flips status when a
// terminal condition is reached.
func (s *paymentRequestService) act(ctx context.Context, id, userID, note, actionType, auditAction string) (PaymentRequestResponse, error) {
	pr, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return PaymentRequestResponse{}, errors.New("payment request not found")
	}
	if pr.Status != model.RequestPending {
		return PaymentRequestResponse{}, errors.New("request is not pending")
	}

	scope := workflow.Scope(pr.Scope)
	current := workflow.Resolve(recordFromModel(pr))

	var toStep workflow.Step
	switch actionType {
	case model.ActionTypeApproved:
		next, ok := nextStep(scope, current.Step)
		if !ok {
			return PaymentRequestResponse{}, errors.New("request is already at the final step")
		}
		toStep = next
		if next.Key == workflow.StepPaymentDone {
			pr.Status = model.RequestApproved
		}
	case model.ActionTypeRejected:
		toStep = workflow.FirstStep(scope)
		pr.Status = model.RequestRejected
	case model.ActionTypeReturned:
		toStep = workflow.FirstStep(scope)
	default:
		return PaymentRequestResponse{}, errors.New("unknown action")
	}

	var actorID *uuid.UUID
	if parsed, parseErr := uuid.Parse(userID); parseErr == nil {
		actorID = &parsed
	}

	fromLabel := ""
	if from, ok := workflow.StepFor(current.Step); ok {
		fromLabel = from.Label
	}

	err = s.txManager.RunInTx(ctx, func(txCtx context.Context) error {
		action := model.PaymentAction{
			RequestID: pr.ID,
			Type:      actionType,
			FromRole:  fromLabel,
			ToRole:    toStep.Label,
			Note:      note,
			ActorID:   actorID,
		}
		if actErr := s.repo.AppendAction(txCtx, &action); actErr != nil {
			return actErr
		}
		pr.CurrentRole = toStep.Label
		if updErr := s.repo.Update(txCtx, pr); updErr != nil {
			return updErr
		}
		return s.audit(txCtx, userID, auditAction, pr, map[string]interface{}{"note": note, "to": string(toStep.Key)})
	})
	if err != nil {
		return PaymentRequestResponse{}, err
	}

	updated, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return PaymentRequestResponse{}, err
	}

	s.publishEvent(actionType, updated)
	return toRequestResponse(updated), nil
}

func nextStep(scope workflow.Scope, current workflow.StepKey) (workflow.Step, bool) {
	seq := workflow.SequenceFor(scope)
	for i, step := range seq {
		if step.Key == current && i+1 < len(seq) {
			return seq[i+1], true
		}
	}
	return workflow.Step{}, false
}

// Import accepts a loosely-keyed legacy record, normalizes aliased fields at
// the boundary, and stores the canonical request.
func (s *paymentRequestService) Import(ctx context.Context, userID string, raw map[string]interface{}) (PaymentRequestResponse, error) {
	rec, err := workflow.Normalize(raw)
	if err != nil {
		return PaymentRequestResponse{}, err
	}

	amount, err := looseAmount(raw)
	if err != nil {
		return PaymentRequestResponse{}, err
	}

	serialNo, err := s.serials.Next(ctx, serial.KindPaymentRequest)
	if err != nil {
		return PaymentRequestResponse{}, fmt.Errorf("failed to issue serial: %w", err)
	}

	var requesterID *uuid.UUID
	if parsed, parseErr := uuid.Parse(userID); parseErr == nil {
		requesterID = &parsed
	}

	pr := model.PaymentRequest{
		Serial:       serialNo,
		Scope:        string(rec.Scope),
		Status:       string(rec.Status),
		Amount:       amount,
		RequestDate:  jalali.Today(),
		CurrentRole:  rec.CurrentRole,
		AssignedRole: rec.AssignedRole,
		WorkflowUnit: rec.Unit,
		RequestedBy:  requesterID,
	}
	if desc, ok := raw["description"].(string); ok {
		pr.Description = desc
	}

	err = s.txManager.RunInTx(ctx, func(txCtx context.Context) error {
		if createErr := s.repo.Create(txCtx, &pr); createErr != nil {
			return createErr
		}
		for _, act := range rec.History {
			row := model.PaymentAction{
				RequestID: pr.ID,
				Type:      act.Type,
				FromRole:  act.From,
				ToRole:    act.To,
				Note:      act.Note,
			}
			if actErr := s.repo.AppendAction(txCtx, &row); actErr != nil {
				return actErr
			}
		}
		return s.audit(txCtx, userID, model.ActionImportRequest, &pr, nil)
	})
	if err != nil {
		return PaymentRequestResponse{}, err
	}

	created, err := s.repo.GetByID(ctx, pr.ID.String())
	if err != nil {
		return PaymentRequestResponse{}, err
	}
	return toRequestResponse(created), nil
}

func looseAmount(raw map[string]interface{}) (decimal.Decimal, error) {
	for _, key := range []string{"amount", "total", "مبلغ"} {
		switch v := raw[key].(type) {
		case string:
			return decimal.NewFromString(v)
		case float64:
			return decimal.NewFromFloat(v), nil
		}
	}
	return decimal.Zero, errors.New("missing amount")
}
