// Package wizard holds the server-side state for the 3-step booking
// flow: room & dates, guest details, payment. The same machine backs
// both creating a booking and rescheduling one.
package wizard

type Step int

const (
	StepRoomDates    Step = 1
	StepGuestDetails Step = 2
	StepPayment      Step = 3
)

type GuestType string

const (
	GuestNew      GuestType = "new"
	GuestExisting GuestType = "existing"
)

// FormValues carries the wizard form state. Everything is a string:
// values arrive field-by-field from form inputs and are only parsed
// into numbers when the step schema validates or the payload is built.
type FormValues struct {
	RoomID         string    `json:"room_id"`
	CheckIn        string    `json:"check_in"`
	CheckOut       string    `json:"check_out"`
	GuestType      GuestType `json:"guest_type"`
	SelectedUserID string    `json:"selected_user_id"`
	GuestName      string    `json:"guest_name"`
	GuestEmail     string    `json:"guest_email"`
	WhatsappNumber string    `json:"whatsapp_number"`
	Adults         string    `json:"adults"`
	Children       string    `json:"children"`
	PaymentMethod  string    `json:"payment_method"`
}

func InitialValues() FormValues {
	return FormValues{
		GuestType:     GuestNew,
		Adults:        "1",
		Children:      "0",
		PaymentMethod: "online",
	}
}

// Set assigns one named field. Unknown names are ignored so a client
// sending extra keys cannot corrupt the session.
func (v *FormValues) Set(field, value string) {
	switch field {
	case "room_id":
		v.RoomID = value
	case "check_in":
		v.CheckIn = value
	case "check_out":
		v.CheckOut = value
	case "guest_type":
		v.GuestType = GuestType(value)
	case "selected_user_id":
		v.SelectedUserID = value
	case "guest_name":
		v.GuestName = value
	case "guest_email":
		v.GuestEmail = value
	case "whatsapp_number":
		v.WhatsappNumber = value
	case "adults":
		v.Adults = value
	case "children":
		v.Children = value
	case "payment_method":
		v.PaymentMethod = value
	}
}
