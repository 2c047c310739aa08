package wizard

import (
	"net/mail"
	"strconv"
	"strings"
	"time"
)

const dateLayout = "2006-01-02"

// StepFields lists the field names a step's schema covers. Validation
// of step N never reports errors outside this set.
func StepFields(step Step) []string {
	switch step {
	case StepRoomDates:
		return []string{"room_id", "check_in", "check_out"}
	case StepGuestDetails:
		return []string{
			"guest_type", "selected_user_id", "guest_name",
			"guest_email", "whatsapp_number", "adults", "children",
		}
	case StepPayment:
		return []string{"payment_method"}
	default:
		return nil
	}
}

// ValidateStep runs the active step's schema and returns a
// field -> message map, empty when the step passes.
func ValidateStep(step Step, v FormValues) map[string]string {
	switch step {
	case StepRoomDates:
		return validateRoomDates(v)
	case StepGuestDetails:
		return validateGuestDetails(v)
	case StepPayment:
		return validatePayment(v)
	default:
		return validateRoomDates(v)
	}
}

func validateRoomDates(v FormValues) map[string]string {
	errs := map[string]string{}

	if v.RoomID == "" {
		errs["room_id"] = "Please select a room"
	}
	if v.CheckIn == "" {
		errs["check_in"] = "Check-in date is required"
	}
	if v.CheckOut == "" {
		errs["check_out"] = "Check-out date is required"
	} else if v.CheckIn != "" && !checkOutAfterCheckIn(v.CheckIn, v.CheckOut) {
		errs["check_out"] = "Check-out must be after check-in"
	}

	return errs
}

func checkOutAfterCheckIn(checkIn, checkOut string) bool {
	ci, err1 := time.Parse(dateLayout, checkIn)
	co, err2 := time.Parse(dateLayout, checkOut)
	if err1 != nil || err2 != nil {
		// ISO dates order lexicographically
		return checkOut > checkIn
	}
	return co.After(ci)
}

func validateGuestDetails(v FormValues) map[string]string {
	errs := map[string]string{}

	if v.GuestType != GuestNew && v.GuestType != GuestExisting {
		errs["guest_type"] = "Guest type is required"
	}
	if v.GuestType == GuestExisting && v.SelectedUserID == "" {
		errs["selected_user_id"] = "Please select a user"
	}

	name := strings.TrimSpace(v.GuestName)
	if name == "" {
		errs["guest_name"] = "Guest name is required"
	} else if len(name) < 2 {
		errs["guest_name"] = "Name must be at least 2 characters"
	}

	if v.GuestEmail != "" {
		if _, err := mail.ParseAddress(v.GuestEmail); err != nil {
			errs["guest_email"] = "Invalid email"
		}
	}

	number := strings.TrimSpace(v.WhatsappNumber)
	if number == "" {
		errs["whatsapp_number"] = "WhatsApp number is required"
	} else if len(number) < 10 {
		errs["whatsapp_number"] = "Enter a valid WhatsApp number (at least 10 digits)"
	}

	if v.Adults == "" {
		errs["adults"] = "Required"
	} else if n, err := strconv.Atoi(v.Adults); err != nil || n < 1 {
		errs["adults"] = "At least 1 adult"
	}

	if v.Children != "" {
		if n, err := strconv.Atoi(v.Children); err != nil || n < 0 {
			errs["children"] = "Cannot be negative"
		}
	}

	return errs
}

func validatePayment(v FormValues) map[string]string {
	errs := map[string]string{}

	switch v.PaymentMethod {
	case "":
		errs["payment_method"] = "Payment method is required"
	case "online", "partial", "offline":
	default:
		errs["payment_method"] = "Select a payment method"
	}

	return errs
}
