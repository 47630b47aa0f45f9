package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/Madhesh0006/dbms-blood-donation-project/internal/core/domain"
	"github.com/Madhesh0006/dbms-blood-donation-project/internal/core/ports"
)

// ---------------------------------------------------------------------------
// In-memory stub donor repository
// ---------------------------------------------------------------------------

type stubDonorRepo struct {
	donors    []domain.Donor
	createErr error
	findErr   error
	nextID    int
}

func (r *stubDonorRepo) Create(_ context.Context, d *domain.Donor) (*domain.Donor, error) {
	if r.createErr != nil {
		return nil, r.createErr
	}
	clone := *d
	r.nextID++
	clone.ID = id(r.nextID)
	r.donors = append(r.donors, clone)
	return &clone, nil
}

func (r *stubDonorRepo) FindByGroupAndLocation(_ context.Context, group domain.BloodGroup, location string) ([]domain.Donor, error) {
	if r.findErr != nil {
		return nil, r.findErr
	}
	var out []domain.Donor
	for _, d := range r.donors {
		if d.BloodGroup == group && d.Location == location {
			out = append(out, d)
		}
	}
	return out, nil
}

func (r *stubDonorRepo) FindByGroup(_ context.Context, group domain.BloodGroup) ([]domain.Donor, error) {
	if r.findErr != nil {
		return nil, r.findErr
	}
	var out []domain.Donor
	for _, d := range r.donors {
		if d.BloodGroup == group {
			out = append(out, d)
		}
	}
	return out, nil
}

func seedUser(repo *stubUserRepo, username, email string) *domain.User {
	u, _ := repo.Create(context.Background(), &domain.User{Username: username, Email: email, PasswordHash: "x"})
	return u
}

func donorInput(overrides func(*ports.RegisterDonorInput)) ports.RegisterDonorInput {
	in := ports.RegisterDonorInput{
		Name:       "Ravi",
		Gender:     "male",
		Phone:      "9876543210",
		Email:      "ravi@example.com",
		BloodGroup: "O+",
		Location:   "CityX",
		DOB:        time.Now().UTC().AddDate(-25, 0, 0),
	}
	if overrides != nil {
		overrides(&in)
	}
	return in
}

// ---------------------------------------------------------------------------
// Register tests
// ---------------------------------------------------------------------------

func TestDonorService_Register_NeverDonatedIsAvailable(t *testing.T) {
	users := newStubUserRepo()
	user := seedUser(users, "ravi", "ravi@example.com")
	donors := &stubDonorRepo{}
	svc := NewDonorService(users, donors, discardLogger)

	created, err := svc.Register(context.Background(), user.ID, donorInput(nil))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !created.AvailabilityStatus {
		t.Error("a donor with no donation history must be available")
	}
	if created.Username != "ravi" {
		t.Errorf("username must be copied from the owning user, got %q", created.Username)
	}
	if created.Location != "cityx" {
		t.Errorf("location must be normalized, got %q", created.Location)
	}
	if created.BloodGroup != domain.GroupOPositive {
		t.Errorf("blood group: want O+, got %s", created.BloodGroup)
	}
}

func TestDonorService_Register_RecentDonationUnavailable(t *testing.T) {
	users := newStubUserRepo()
	user := seedUser(users, "ravi", "ravi@example.com")
	donors := &stubDonorRepo{}
	svc := NewDonorService(users, donors, discardLogger)

	last := time.Now().UTC().AddDate(0, -1, 0)
	created, err := svc.Register(context.Background(), user.ID, donorInput(func(in *ports.RegisterDonorInput) {
		in.LastDonationDate = &last
	}))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created.AvailabilityStatus {
		t.Error("a donor who donated one month ago must be unavailable")
	}
}

func TestDonorService_Register_Underage(t *testing.T) {
	users := newStubUserRepo()
	user := seedUser(users, "kid", "kid@example.com")
	svc := NewDonorService(users, &stubDonorRepo{}, discardLogger)

	_, err := svc.Register(context.Background(), user.ID, donorInput(func(in *ports.RegisterDonorInput) {
		in.DOB = time.Now().UTC().AddDate(-16, 0, 0)
	}))
	if !errors.Is(err, domain.ErrUnderage) {
		t.Fatalf("expected ErrUnderage, got %v", err)
	}
}

func TestDonorService_Register_UnknownUser(t *testing.T) {
	svc := NewDonorService(newStubUserRepo(), &stubDonorRepo{}, discardLogger)

	_, err := svc.Register(context.Background(), "missing", donorInput(nil))
	if !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestDonorService_Register_InvalidBloodGroup(t *testing.T) {
	users := newStubUserRepo()
	user := seedUser(users, "ravi", "ravi@example.com")
	svc := NewDonorService(users, &stubDonorRepo{}, discardLogger)

	_, err := svc.Register(context.Background(), user.ID, donorInput(func(in *ports.RegisterDonorInput) {
		in.BloodGroup = "Q+"
	}))
	if !errors.Is(err, domain.ErrInvalidBloodGroup) {
		t.Fatalf("expected ErrInvalidBloodGroup, got %v", err)
	}
}

// ---------------------------------------------------------------------------
// Match tests
// ---------------------------------------------------------------------------

func seedDonor(repo *stubDonorRepo, group domain.BloodGroup, location, email string, available bool) {
	_, _ = repo.Create(context.Background(), &domain.Donor{
		Name:               "Donor " + email,
		Email:              email,
		BloodGroup:         group,
		Location:           location,
		AvailabilityStatus: available,
	})
}

func TestDonorService_Match_ExactLocation(t *testing.T) {
	donors := &stubDonorRepo{}
	seedDonor(donors, domain.GroupOPositive, "cityx", "a@example.com", true)
	seedDonor(donors, domain.GroupOPositive, "cityy", "b@example.com", true)
	seedDonor(donors, domain.GroupAPositive, "cityx", "c@example.com", true)
	svc := NewDonorService(newStubUserRepo(), donors, discardLogger)

	// Raw input casing must not matter.
	got, err := svc.Match(context.Background(), "O+", "  CityX ")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 1 || got[0].Email != "a@example.com" {
		t.Fatalf("expected only the cityx O+ donor, got %v", emails(got))
	}
}

func TestDonorService_Match_FallbackToGroup(t *testing.T) {
	donors := &stubDonorRepo{}
	seedDonor(donors, domain.GroupOPositive, "cityy", "b@example.com", true)
	seedDonor(donors, domain.GroupOPositive, "cityz", "d@example.com", false)
	svc := NewDonorService(newStubUserRepo(), donors, discardLogger)

	got, err := svc.Match(context.Background(), "O+", "cityx")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected group-wide fallback with 2 donors, got %v", emails(got))
	}
}

func TestDonorService_Match_ExactNeverUnionsFallback(t *testing.T) {
	donors := &stubDonorRepo{}
	seedDonor(donors, domain.GroupOPositive, "cityx", "a@example.com", true)
	seedDonor(donors, domain.GroupOPositive, "cityy", "b@example.com", true)
	svc := NewDonorService(newStubUserRepo(), donors, discardLogger)

	got, err := svc.Match(context.Background(), "O+", "cityx")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("a non-empty exact match must not union with the fallback, got %v", emails(got))
	}
}

func TestDonorService_Match_Deterministic(t *testing.T) {
	donors := &stubDonorRepo{}
	seedDonor(donors, domain.GroupABNegative, "cityx", "a@example.com", true)
	seedDonor(donors, domain.GroupABNegative, "cityx", "b@example.com", false)
	svc := NewDonorService(newStubUserRepo(), donors, discardLogger)

	first, err := svc.Match(context.Background(), "AB-", "cityx")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := svc.Match(context.Background(), "AB-", "cityx")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(first) != len(second) {
		t.Fatalf("repeated match with unchanged store must return the same set: %v vs %v", emails(first), emails(second))
	}
	for i := range first {
		if first[i].Email != second[i].Email {
			t.Fatalf("repeated match diverged at %d: %v vs %v", i, emails(first), emails(second))
		}
	}
}

func TestDonorService_Match_InvalidGroup(t *testing.T) {
	svc := NewDonorService(newStubUserRepo(), &stubDonorRepo{}, discardLogger)

	_, err := svc.Match(context.Background(), "X+", "cityx")
	if !errors.Is(err, domain.ErrInvalidBloodGroup) {
		t.Fatalf("expected ErrInvalidBloodGroup, got %v", err)
	}
}

func emails(donors []domain.Donor) []string {
	out := make([]string, 0, len(donors))
	for _, d := range donors {
		out = append(out, d.Email)
	}
	return out
}
