package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/Madhesh0006/dbms-blood-donation-project/internal/api/metrics"
	"github.com/Madhesh0006/dbms-blood-donation-project/internal/core/domain"
	"github.com/Madhesh0006/dbms-blood-donation-project/internal/core/ports"
)

// RequestService records blood requests and coordinates the match ->
// notify fan-out.
type RequestService struct {
	requests  ports.RequestRepository
	donations ports.DonationRepository
	matcher   ports.DonorService
	notifier  *Notifier
	logger    zerolog.Logger
}

func NewRequestService(
	requests ports.RequestRepository,
	donations ports.DonationRepository,
	matcher ports.DonorService,
	notifier *Notifier,
	logger zerolog.Logger,
) *RequestService {
	return &RequestService{
		requests:  requests,
		donations: donations,
		matcher:   matcher,
		notifier:  notifier,
		logger:    logger,
	}
}

// Record persists a blood request verbatim; validation beyond the
// boundary schema is intentionally absent.
func (s *RequestService) Record(ctx context.Context, in ports.RequestInput) (*domain.Request, error) {
	group, err := domain.ParseBloodGroup(in.BloodGroup)
	if err != nil {
		return nil, err
	}

	req := &domain.Request{
		RequesterName:   in.RequesterName,
		RequesterPhone:  in.RequesterPhone,
		RequesterEmail:  in.RequesterEmail,
		PatientName:     in.PatientName,
		PatientAge:      in.PatientAge,
		PatientGender:   in.PatientGender,
		BloodGroup:      group,
		UnitsRequired:   in.UnitsRequired,
		HospitalName:    in.HospitalName,
		HospitalAddress: in.HospitalAddress,
		Location:        in.Location,
		RequiredDate:    in.RequiredDate,
		CreatedAt:       time.Now().UTC(),
	}

	created, err := s.requests.Create(ctx, req)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to persist blood request")
		return nil, err
	}

	metrics.RequestsRecordedTotal.WithLabelValues(string(group)).Inc()
	s.logger.Info().
		Str("request_id", created.ID).
		Str("blood_group", string(group)).
		Str("location", created.Location).
		Msg("blood request recorded")

	return created, nil
}

// Notify matches donors for the given group and location, then fans
// the request details out to them. The returned result counts donors
// attempted, not deliveries confirmed.
func (s *RequestService) Notify(ctx context.Context, in ports.NotifyInput) (*ports.NotifyResult, error) {
	donors, err := s.matcher.Match(ctx, in.BloodGroup, in.Location)
	if err != nil {
		return nil, err
	}

	attempted, skipped := s.notifier.Dispatch(ctx, donors, in.Details)

	return &ports.NotifyResult{
		Matched:   len(donors),
		Attempted: attempted,
		Skipped:   skipped,
	}, nil
}

// List returns every recorded blood request, newest first.
func (s *RequestService) List(ctx context.Context) ([]domain.Request, error) {
	return s.requests.List(ctx)
}

// RecordDonation persists a completed-donation record verbatim.
func (s *RequestService) RecordDonation(ctx context.Context, in ports.DonationInput) (*domain.DonationRecord, error) {
	rec := &domain.DonationRecord{
		DonorName:      in.DonorName,
		DonorEmail:     in.DonorEmail,
		PatientName:    in.PatientName,
		RequesterEmail: in.RequesterEmail,
		RecordedAt:     time.Now().UTC(),
	}

	created, err := s.donations.Create(ctx, rec)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to persist donation record")
		return nil, err
	}

	s.logger.Info().Str("record_id", created.ID).Msg("donation record inserted")
	return created, nil
}
