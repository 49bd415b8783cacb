package service

import (
	"context"
	"errors"
	"strings"

	"go.uber.org/zap"

	"mamacare-api/internal/domain"
	"mamacare-api/internal/email"
)

// BookingService validates booking enquiries and dispatches the confirmation
// emails.
type BookingService struct {
	logger        *zap.Logger
	sender        email.Sender
	operatorEmail string
}

var (
	ErrMissingFields = errors.New("email and service package are required")
	ErrSendFailure   = errors.New("email send failed")
)

func NewBookingService(logger *zap.Logger, sender email.Sender, operatorEmail string) *BookingService {
	return &BookingService{
		logger:        logger,
		sender:        sender,
		operatorEmail: operatorEmail,
	}
}

// Dispatch sends the customer confirmation and then the operator notice.
// The sends are sequential and a failure of either one surfaces as the same
// ErrSendFailure; the underlying cause is only logged.
func (s *BookingService) Dispatch(ctx context.Context, req domain.BookingRequest) error {
	if s.sender == nil {
		return errors.New("booking service not configured")
	}

	req.Email = strings.TrimSpace(req.Email)
	req.ServicesUse = strings.TrimSpace(req.ServicesUse)
	if req.Email == "" || req.ServicesUse == "" {
		return ErrMissingFields
	}

	customerHTML, err := email.RenderCustomerConfirmation(req)
	if err != nil {
		return err
	}
	if err := s.sender.Send(ctx, req.Email, "Service booking confirmation", customerHTML); err != nil {
		if s.logger != nil {
			s.logger.Warn("customer confirmation send failed", zap.Error(err), zap.String("to", req.Email))
		}
		return ErrSendFailure
	}

	if s.operatorEmail == "" {
		return nil
	}
	operatorHTML, err := email.RenderOperatorNotice(req)
	if err != nil {
		return err
	}
	if err := s.sender.Send(ctx, s.operatorEmail, "New service booking: "+req.ServicesUse, operatorHTML); err != nil {
		if s.logger != nil {
			s.logger.Warn("operator notice send failed", zap.Error(err), zap.String("to", s.operatorEmail))
		}
		return ErrSendFailure
	}

	return nil
}
