package service

import (
	"context"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/Madhesh0006/dbms-blood-donation-project/internal/api/metrics"
	"github.com/Madhesh0006/dbms-blood-donation-project/internal/core/domain"
	"github.com/Madhesh0006/dbms-blood-donation-project/internal/core/ports"
)

// DonorService registers donors and matches them to requests.
type DonorService struct {
	users  ports.UserRepository
	donors ports.DonorRepository
	logger zerolog.Logger
}

func NewDonorService(users ports.UserRepository, donors ports.DonorRepository, logger zerolog.Logger) *DonorService {
	return &DonorService{users: users, donors: donors, logger: logger}
}

// Register resolves the owning user, copies the username onto the
// donor record, evaluates eligibility and availability, stamps
// timestamps, and persists.
func (s *DonorService) Register(ctx context.Context, userID string, in ports.RegisterDonorInput) (*domain.Donor, error) {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	group, err := domain.ParseBloodGroup(in.BloodGroup)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	if _, err := ValidateAge(in.DOB, now); err != nil {
		return nil, err
	}

	donor := &domain.Donor{
		UserID:             user.ID,
		Username:           user.Username,
		Name:               in.Name,
		Gender:             in.Gender,
		Phone:              in.Phone,
		Email:              in.Email,
		BloodGroup:         group,
		Location:           NormalizeLocation(in.Location),
		DOB:                in.DOB,
		LastDonationDate:   in.LastDonationDate,
		AvailabilityStatus: Available(in.LastDonationDate, now),
		CreatedAt:          now,
		UpdatedAt:          now,
	}

	created, err := s.donors.Create(ctx, donor)
	if err != nil {
		s.logger.Error().Err(err).Str("user_id", userID).Msg("failed to persist donor")
		return nil, err
	}

	metrics.DonorsRegisteredTotal.WithLabelValues(string(group)).Inc()
	s.logger.Info().
		Str("donor_id", created.ID).
		Str("blood_group", string(group)).
		Bool("available", created.AvailabilityStatus).
		Msg("donor registered")

	return created, nil
}

// Match selects donors by blood group and location. When the exact
// (group, location) query is empty the search widens to group alone:
// blood-group compatibility is safety-critical and location exactness
// must not block discovery. Availability is intentionally not filtered
// here; callers decide what to do with unavailable donors.
func (s *DonorService) Match(ctx context.Context, bloodGroup, location string) ([]domain.Donor, error) {
	group, err := domain.ParseBloodGroup(strings.TrimSpace(bloodGroup))
	if err != nil {
		return nil, err
	}
	loc := NormalizeLocation(location)

	donors, err := s.donors.FindByGroupAndLocation(ctx, group, loc)
	if err != nil {
		return nil, err
	}
	if len(donors) > 0 {
		metrics.DonorsMatchedTotal.WithLabelValues("exact").Add(float64(len(donors)))
		return donors, nil
	}

	s.logger.Debug().
		Str("blood_group", string(group)).
		Str("location", loc).
		Msg("no exact match, widening to blood group only")

	donors, err = s.donors.FindByGroup(ctx, group)
	if err != nil {
		return nil, err
	}
	metrics.DonorsMatchedTotal.WithLabelValues("fallback").Add(float64(len(donors)))
	return donors, nil
}

// NormalizeLocation applies the matching policy for free-text
// locations: surrounding whitespace is trimmed and case is folded, so
// "CityX", " cityx " and "CITYX" all refer to the same place.
func NormalizeLocation(location string) string {
	return strings.ToLower(strings.TrimSpace(location))
}
