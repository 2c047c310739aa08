package wizard

import (
	"context"
	"errors"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
)

type Mode string

const (
	ModeCreate     Mode = "create"
	ModeReschedule Mode = "reschedule"
)

var (
	ErrValidation    = errors.New("step validation failed")
	ErrCheckInFlight = errors.New("availability check already in flight")
	ErrNotAvailable  = errors.New("room not available")
	ErrNoNextStep    = errors.New("already at the payment step")
	ErrNotAtPayment  = errors.New("wizard is not at the payment step")
)

const availabilityFallback = "This room is not available for the selected dates."

// AvailabilityChecker is the single server round-trip the wizard makes:
// the gate between step 1 and step 2.
type AvailabilityChecker interface {
	CheckAvailability(ctx context.Context, roomID int64, checkIn, checkOut string) (available bool, message string, err error)
}

// GuestRecord is what SelectExistingUser needs from the guest directory.
type GuestRecord struct {
	ID             int64
	Name           string
	Email          string
	WhatsappNumber string
}

// Session is one wizard run. All methods are safe for concurrent use;
// the checking flag keeps at most one availability check in flight.
type Session struct {
	mu sync.Mutex

	id        string
	mode      Mode
	bookingID string

	step              Step
	values            FormValues
	fieldErrors       map[string]string
	availabilityError string
	checking          bool
	updatedAt         time.Time
}

// State is a point-in-time copy of a session for rendering.
type State struct {
	ID                string            `json:"wizard_id"`
	Mode              Mode              `json:"mode"`
	BookingID         string            `json:"booking_id,omitempty"`
	Step              Step              `json:"step"`
	Values            FormValues        `json:"values"`
	Errors            map[string]string `json:"errors"`
	AvailabilityError string            `json:"availability_error,omitempty"`
	Checking          bool              `json:"checking"`
}

func NewSession(mode Mode, bookingID string, values FormValues) *Session {
	return &Session{
		id:          uuid.NewString(),
		mode:        mode,
		bookingID:   bookingID,
		step:        StepRoomDates,
		values:      values,
		fieldErrors: map[string]string{},
		updatedAt:   time.Now(),
	}
}

func (s *Session) ID() string { return s.id }

func (s *Session) Snapshot() State {
	s.mu.Lock()
	defer s.mu.Unlock()

	errs := make(map[string]string, len(s.fieldErrors))
	for k, v := range s.fieldErrors {
		errs[k] = v
	}
	return State{
		ID:                s.id,
		Mode:              s.mode,
		BookingID:         s.bookingID,
		Step:              s.step,
		Values:            s.values,
		Errors:            errs,
		AvailabilityError: s.availabilityError,
		Checking:          s.checking,
	}
}

// SetFields applies field updates. Changing room or dates after going
// back does not re-run the availability check; that only happens again
// on the next Next from step 1.
func (s *Session) SetFields(fields map[string]string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for name, value := range fields {
		s.values.Set(name, value)
	}
	s.touch()
}

// SetGuestType switches between a fresh guest entry and an existing
// directory user. Switching to "new" clears the identity fields and any
// stale errors on them.
func (s *Session) SetGuestType(gt GuestType) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.values.GuestType = gt
	if gt == GuestNew {
		s.values.SelectedUserID = ""
		s.values.GuestName = ""
		s.values.GuestEmail = ""
		s.values.WhatsappNumber = ""
		s.clearErrors("selected_user_id", "guest_name", "guest_email", "whatsapp_number")
	}
	s.touch()
}

// SelectExistingUser fills the guest fields from a directory record and
// clears errors left over from an invalid new-guest attempt.
func (s *Session) SelectExistingUser(u GuestRecord) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.values.GuestType = GuestExisting
	s.values.SelectedUserID = strconv.FormatInt(u.ID, 10)
	s.values.GuestName = u.Name
	s.values.GuestEmail = u.Email
	s.values.WhatsappNumber = u.WhatsappNumber
	s.clearErrors("selected_user_id", "guest_name", "guest_email", "whatsapp_number")
	s.touch()
}

// Next validates the active step and advances. From step 1 it also runs
// the availability gate; the session stays put and records the error
// when the room is taken or the check fails.
func (s *Session) Next(ctx context.Context, checker AvailabilityChecker) error {
	s.mu.Lock()

	s.availabilityError = ""
	s.touch()

	if s.step == StepPayment {
		s.mu.Unlock()
		return ErrNoNextStep
	}

	errs := ValidateStep(s.step, s.values)
	for _, f := range StepFields(s.step) {
		delete(s.fieldErrors, f)
	}
	if len(errs) > 0 {
		for f, msg := range errs {
			s.fieldErrors[f] = msg
		}
		s.mu.Unlock()
		return ErrValidation
	}

	if s.step != StepRoomDates {
		s.step++
		s.mu.Unlock()
		return nil
	}

	if s.checking {
		s.mu.Unlock()
		return ErrCheckInFlight
	}
	s.checking = true
	roomID, _ := strconv.ParseInt(s.values.RoomID, 10, 64)
	checkIn, checkOut := s.values.CheckIn, s.values.CheckOut
	s.mu.Unlock()

	available, message, err := checker.CheckAvailability(ctx, roomID, checkIn, checkOut)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.checking = false

	if err != nil {
		s.availabilityError = err.Error()
		return ErrNotAvailable
	}
	if !available {
		if message == "" {
			message = availabilityFallback
		}
		s.availabilityError = message
		return ErrNotAvailable
	}

	s.step = StepGuestDetails
	return nil
}

// Back decrements the step, floored at step 1. Values are kept and
// forward steps are not re-validated.
func (s *Session) Back() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.step > StepRoomDates {
		s.step--
	}
	s.touch()
}

// SubmitPayload is the booking mutation input built from a completed
// wizard. UserID is set when an existing guest was chosen.
type SubmitPayload struct {
	BookingID      string
	RoomID         int64
	CheckIn        string
	CheckOut       string
	UserID         *int64
	GuestName      string
	GuestEmail     string
	WhatsappNumber string
	Adults         int
	Children       int
	PaymentMethod  string
}

// BuildSubmit re-validates every step and assembles the payload. It
// does not mutate the session; the caller discards the session once the
// mutation succeeds.
func (s *Session) BuildSubmit() (*SubmitPayload, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.step != StepPayment {
		return nil, ErrNotAtPayment
	}

	for _, step := range []Step{StepRoomDates, StepGuestDetails, StepPayment} {
		if errs := ValidateStep(step, s.values); len(errs) > 0 {
			for f, msg := range errs {
				s.fieldErrors[f] = msg
			}
			return nil, ErrValidation
		}
	}

	roomID, _ := strconv.ParseInt(s.values.RoomID, 10, 64)
	adults, _ := strconv.Atoi(s.values.Adults)
	children := 0
	if s.values.Children != "" {
		children, _ = strconv.Atoi(s.values.Children)
	}

	p := &SubmitPayload{
		BookingID:      s.bookingID,
		RoomID:         roomID,
		CheckIn:        s.values.CheckIn,
		CheckOut:       s.values.CheckOut,
		GuestName:      strings.TrimSpace(s.values.GuestName),
		GuestEmail:     strings.TrimSpace(s.values.GuestEmail),
		WhatsappNumber: strings.TrimSpace(s.values.WhatsappNumber),
		Adults:         adults,
		Children:       children,
		PaymentMethod:  s.values.PaymentMethod,
	}
	if s.values.GuestType == GuestExisting && s.values.SelectedUserID != "" {
		if id, err := strconv.ParseInt(s.values.SelectedUserID, 10, 64); err == nil {
			p.UserID = &id
		}
	}
	return p, nil
}

// clearErrors must be called with the mutex held.
func (s *Session) clearErrors(fields ...string) {
	for _, f := range fields {
		delete(s.fieldErrors, f)
	}
}

// touch must be called with the mutex held.
func (s *Session) touch() {
	s.updatedAt = time.Now()
}
