package service

import (
	"bytes"
	"context"
	"fmt"
	"hash/fnv"
	html "html/template"
	"strings"

	"github.com/rs/zerolog"

	"github.com/Madhesh0006/dbms-blood-donation-project/internal/core/domain"
	"github.com/Madhesh0006/dbms-blood-donation-project/internal/core/ports"
)

// NotificationQueue accepts rendered messages for asynchronous
// delivery. Enqueue must not block on the actual transport.
type NotificationQueue interface {
	Enqueue(msg ports.OutboundEmail)
}

// NotificationDeduper suppresses repeat notifications for the same
// request/donor pair within the dedup window.
type NotificationDeduper interface {
	IsDuplicate(ctx context.Context, fingerprint, email string) (bool, error)
	Mark(ctx context.Context, fingerprint, email string) error
}

const requestEmailTemplate = `<html>
<body style="font-family: Arial, sans-serif;">
<h2 style="color: #d9534f;">Urgent Blood Requirement</h2>
<p>Dear <b>{{.DonorName}}</b>,</p>
<p>A patient requires your help. Here are the details:</p>
<ul>
<li><b>Patient Name:</b> {{.PatientName}}</li>
<li><b>Patient Age:</b> {{.PatientAge}}</li>
<li><b>Blood Group Required:</b> {{.BloodGroup}}</li>
<li><b>Units Required:</b> {{.UnitsRequired}}</li>
<li><b>Hospital:</b> {{.HospitalName}}</li>
<li><b>Location:</b> {{.HospitalAddress}} ({{.Location}})</li>
<li><b>Contact Person:</b> {{.RequesterName}} ({{.RequesterPhone}})</li>
<li><b>Required Date:</b> {{.RequiredDate}}</li>
</ul>
<p>Please ensure you are eligible to donate (3+ months since last donation and medically fit).</p>
<br/>
<p>Thank you for saving a life!</p>
<p>Blood Donation Support Team</p>
</body>
</html>`

var requestEmail = html.Must(html.New("blood_request").Parse(requestEmailTemplate))

type requestEmailData struct {
	DonorName       string
	PatientName     string
	PatientAge      int
	BloodGroup      string
	UnitsRequired   int
	HospitalName    string
	HospitalAddress string
	Location        string
	RequesterName   string
	RequesterPhone  string
	RequiredDate    string
}

// Notifier renders one notification per matched donor and submits it
// to the queue. Submission is fire-and-forget: the transport outcome
// never reaches the caller, and a failure for one donor never aborts
// the rest of the fan-out.
type Notifier struct {
	queue  NotificationQueue
	dedup  NotificationDeduper
	logger zerolog.Logger
}

func NewNotifier(queue NotificationQueue, dedup NotificationDeduper, logger zerolog.Logger) *Notifier {
	return &Notifier{queue: queue, dedup: dedup, logger: logger}
}

// Dispatch fans a request out to the matched donors and returns the
// number of donors whose message was submitted (attempted, not
// delivered). Donors already notified for this request within the
// dedup window are skipped.
func (n *Notifier) Dispatch(ctx context.Context, donors []domain.Donor, details ports.RequestInput) (attempted, skipped int) {
	fp := requestFingerprint(details)

	for _, donor := range donors {
		if donor.Email == "" {
			n.logger.Warn().Str("donor_id", donor.ID).Msg("donor has no email, skipping")
			skipped++
			continue
		}

		dup, err := n.dedup.IsDuplicate(ctx, fp, donor.Email)
		if err != nil {
			n.logger.Warn().Err(err).Str("donor_email", donor.Email).Msg("dedup check failed, notifying anyway")
		} else if dup {
			n.logger.Debug().Str("donor_email", donor.Email).Msg("already notified for this request, skipping")
			skipped++
			continue
		}

		msg, err := renderRequestEmail(donor, details)
		if err != nil {
			n.logger.Error().Err(err).Str("donor_id", donor.ID).Msg("failed to render notification")
			skipped++
			continue
		}

		if markErr := n.dedup.Mark(ctx, fp, donor.Email); markErr != nil {
			n.logger.Warn().Err(markErr).Str("donor_email", donor.Email).Msg("failed to set dedup key")
		}

		n.queue.Enqueue(msg)
		attempted++
	}

	n.logger.Info().
		Int("matched", len(donors)).
		Int("attempted", attempted).
		Int("skipped", skipped).
		Msg("donor notifications dispatched")

	return attempted, skipped
}

func renderRequestEmail(donor domain.Donor, details ports.RequestInput) (ports.OutboundEmail, error) {
	data := requestEmailData{
		DonorName:       donor.Name,
		PatientName:     details.PatientName,
		PatientAge:      details.PatientAge,
		BloodGroup:      details.BloodGroup,
		UnitsRequired:   details.UnitsRequired,
		HospitalName:    details.HospitalName,
		HospitalAddress: details.HospitalAddress,
		Location:        details.Location,
		RequesterName:   details.RequesterName,
		RequesterPhone:  details.RequesterPhone,
		RequiredDate:    details.RequiredDate.Format("2006-01-02"),
	}

	var body bytes.Buffer
	if err := requestEmail.Execute(&body, data); err != nil {
		return ports.OutboundEmail{}, fmt.Errorf("render notification: %w", err)
	}

	subject := fmt.Sprintf("Urgent: %s blood required at %s", details.BloodGroup, details.HospitalName)
	text := fmt.Sprintf(
		"Dear %s, a patient at %s (%s) urgently needs %d unit(s) of %s blood by %s. Contact %s (%s).",
		donor.Name, details.HospitalName, details.Location, details.UnitsRequired,
		details.BloodGroup, data.RequiredDate, details.RequesterName, details.RequesterPhone,
	)

	return ports.OutboundEmail{
		To:      donor.Email,
		Subject: subject,
		Text:    text,
		HTML:    body.String(),
	}, nil
}

// requestFingerprint derives a stable key for a request so repeat
// NotifyDonors calls for the same need do not re-mail the same donors.
func requestFingerprint(details ports.RequestInput) string {
	h := fnv.New64a()
	_, _ = h.Write([]byte(strings.Join([]string{
		details.PatientName,
		details.BloodGroup,
		details.HospitalName,
		details.Location,
		details.RequiredDate.Format("2006-01-02"),
	}, "|")))
	return fmt.Sprintf("%016x", h.Sum64())
}
