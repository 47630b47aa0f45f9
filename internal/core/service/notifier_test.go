package service

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/Madhesh0006/dbms-blood-donation-project/internal/core/domain"
	"github.com/Madhesh0006/dbms-blood-donation-project/internal/core/ports"
)

// ---------------------------------------------------------------------------
// Stub queue and deduper
// ---------------------------------------------------------------------------

type stubQueue struct {
	sent []ports.OutboundEmail
}

func (q *stubQueue) Enqueue(msg ports.OutboundEmail) {
	q.sent = append(q.sent, msg)
}

type stubDeduper struct {
	seen     map[string]bool
	checkErr error
	markErr  error
}

func newStubDeduper() *stubDeduper {
	return &stubDeduper{seen: make(map[string]bool)}
}

func (d *stubDeduper) IsDuplicate(_ context.Context, fingerprint, email string) (bool, error) {
	if d.checkErr != nil {
		return false, d.checkErr
	}
	return d.seen[fingerprint+":"+email], nil
}

func (d *stubDeduper) Mark(_ context.Context, fingerprint, email string) error {
	if d.markErr != nil {
		return d.markErr
	}
	d.seen[fingerprint+":"+email] = true
	return nil
}

func sampleRequest() ports.RequestInput {
	return ports.RequestInput{
		RequesterName:   "Meera",
		RequesterPhone:  "9000000000",
		RequesterEmail:  "meera@example.com",
		PatientName:     "Arun",
		PatientAge:      42,
		PatientGender:   "male",
		BloodGroup:      "B+",
		UnitsRequired:   2,
		HospitalName:    "City Hospital",
		HospitalAddress: "12 Main Road",
		Location:        "cityx",
		RequiredDate:    time.Date(2026, 9, 5, 0, 0, 0, 0, time.UTC),
	}
}

func matchedDonors(n int) []domain.Donor {
	donors := make([]domain.Donor, 0, n)
	for i := 0; i < n; i++ {
		donors = append(donors, domain.Donor{
			ID:         id(i + 1),
			Name:       "Donor " + string(rune('A'+i)),
			Email:      string(rune('a'+i)) + "@example.com",
			BloodGroup: domain.GroupBPositive,
			Location:   "cityx",
		})
	}
	return donors
}

// ---------------------------------------------------------------------------
// Dispatch tests
// ---------------------------------------------------------------------------

func TestNotifier_Dispatch_OnePerDonor(t *testing.T) {
	queue := &stubQueue{}
	notifier := NewNotifier(queue, newStubDeduper(), discardLogger)

	attempted, skipped := notifier.Dispatch(context.Background(), matchedDonors(3), sampleRequest())
	if attempted != 3 || skipped != 0 {
		t.Fatalf("attempted/skipped: want 3/0, got %d/%d", attempted, skipped)
	}
	if len(queue.sent) != 3 {
		t.Fatalf("expected 3 enqueued messages, got %d", len(queue.sent))
	}
	for _, msg := range queue.sent {
		if msg.To == "" {
			t.Error("message without a recipient")
		}
		if !strings.Contains(msg.HTML, "City Hospital") {
			t.Errorf("body must carry the hospital name, got %q", msg.HTML)
		}
		if !strings.Contains(msg.HTML, "B+") {
			t.Errorf("body must carry the blood group, got %q", msg.HTML)
		}
		if !strings.Contains(msg.Subject, "City Hospital") {
			t.Errorf("subject must name the hospital, got %q", msg.Subject)
		}
	}
}

func TestNotifier_Dispatch_BodyIsPersonalized(t *testing.T) {
	queue := &stubQueue{}
	notifier := NewNotifier(queue, newStubDeduper(), discardLogger)

	donors := matchedDonors(2)
	notifier.Dispatch(context.Background(), donors, sampleRequest())
	if len(queue.sent) != 2 {
		t.Fatalf("expected 2 messages, got %d", len(queue.sent))
	}
	for i, msg := range queue.sent {
		if !strings.Contains(msg.HTML, donors[i].Name) {
			t.Errorf("message %d must greet %q, got %q", i, donors[i].Name, msg.HTML)
		}
	}
}

func TestNotifier_Dispatch_SkipsMissingEmail(t *testing.T) {
	queue := &stubQueue{}
	notifier := NewNotifier(queue, newStubDeduper(), discardLogger)

	donors := matchedDonors(2)
	donors[1].Email = ""

	attempted, skipped := notifier.Dispatch(context.Background(), donors, sampleRequest())
	if attempted != 1 || skipped != 1 {
		t.Fatalf("attempted/skipped: want 1/1, got %d/%d", attempted, skipped)
	}
}

func TestNotifier_Dispatch_SkipsAlreadyNotified(t *testing.T) {
	queue := &stubQueue{}
	notifier := NewNotifier(queue, newStubDeduper(), discardLogger)

	donors := matchedDonors(2)
	req := sampleRequest()

	notifier.Dispatch(context.Background(), donors, req)
	attempted, skipped := notifier.Dispatch(context.Background(), donors, req)
	if attempted != 0 || skipped != 2 {
		t.Fatalf("repeat dispatch attempted/skipped: want 0/2, got %d/%d", attempted, skipped)
	}
	if len(queue.sent) != 2 {
		t.Fatalf("repeat dispatch must not enqueue again, got %d messages", len(queue.sent))
	}
}

func TestNotifier_Dispatch_DifferentRequestNotDeduped(t *testing.T) {
	queue := &stubQueue{}
	notifier := NewNotifier(queue, newStubDeduper(), discardLogger)

	donors := matchedDonors(1)
	notifier.Dispatch(context.Background(), donors, sampleRequest())

	other := sampleRequest()
	other.PatientName = "Another Patient"
	attempted, _ := notifier.Dispatch(context.Background(), donors, other)
	if attempted != 1 {
		t.Fatalf("a different request must notify again, attempted = %d", attempted)
	}
}

func TestNotifier_Dispatch_DedupFailureStillNotifies(t *testing.T) {
	queue := &stubQueue{}
	dedup := newStubDeduper()
	dedup.checkErr = errors.New("redis down")
	notifier := NewNotifier(queue, dedup, discardLogger)

	attempted, skipped := notifier.Dispatch(context.Background(), matchedDonors(2), sampleRequest())
	if attempted != 2 || skipped != 0 {
		t.Fatalf("dedup outage must not block delivery, attempted/skipped = %d/%d", attempted, skipped)
	}
}

func TestNotifier_Dispatch_NoDonors(t *testing.T) {
	queue := &stubQueue{}
	notifier := NewNotifier(queue, newStubDeduper(), discardLogger)

	attempted, skipped := notifier.Dispatch(context.Background(), nil, sampleRequest())
	if attempted != 0 || skipped != 0 {
		t.Fatalf("empty fan-out: want 0/0, got %d/%d", attempted, skipped)
	}
	if len(queue.sent) != 0 {
		t.Fatalf("nothing should be enqueued, got %d", len(queue.sent))
	}
}
