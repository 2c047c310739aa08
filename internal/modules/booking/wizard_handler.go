package booking

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"hoteldesk/internal/domain"
	"hoteldesk/internal/pkg/response"
	"hoteldesk/internal/wizard"
)

// WizardHandler drives server-side wizard sessions for the create and
// reschedule booking flows. The booking Service doubles as the
// availability checker gating step 1 -> step 2.
type WizardHandler struct {
	service  *Service
	users    UserRepository
	payments PaymentRepository
	store    *wizard.Store
}

func NewWizardHandler(service *Service, users UserRepository, payments PaymentRepository, store *wizard.Store) *WizardHandler {
	return &WizardHandler{
		service:  service,
		users:    users,
		payments: payments,
		store:    store,
	}
}

func (h *WizardHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/bookings/wizard", h.Start)
	rg.GET("/bookings/wizard/:wid", h.GetState)
	rg.PATCH("/bookings/wizard/:wid/fields", h.SetFields)
	rg.POST("/bookings/wizard/:wid/next", h.Next)
	rg.POST("/bookings/wizard/:wid/back", h.Back)
	rg.POST("/bookings/wizard/:wid/guest-type", h.SetGuestType)
	rg.POST("/bookings/wizard/:wid/guest", h.SelectGuest)
	rg.GET("/bookings/wizard/:wid/quote", h.Quote)
	rg.POST("/bookings/wizard/:wid/submit", h.Submit)
}

type startWizardRequest struct {
	Mode      string `json:"mode" binding:"required,oneof=create reschedule"`
	BookingID string `json:"booking_id"`
}

func (h *WizardHandler) Start(c *gin.Context) {
	var req startWizardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	values := wizard.InitialValues()
	mode := wizard.Mode(req.Mode)

	if mode == wizard.ModeReschedule {
		if req.BookingID == "" {
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "booking_id is required to reschedule")
			return
		}
		prefilled, err := h.prefillFromBooking(c, req.BookingID)
		if err != nil {
			h.writeWizardError(c, err)
			return
		}
		values = prefilled
	}

	s := wizard.NewSession(mode, req.BookingID, values)
	h.store.Put(s)

	response.Success(c, http.StatusCreated, s.Snapshot())
}

func (h *WizardHandler) GetState(c *gin.Context) {
	s, ok := h.session(c)
	if !ok {
		return
	}
	response.Success(c, http.StatusOK, s.Snapshot())
}

type setFieldsRequest struct {
	Fields map[string]string `json:"fields" binding:"required"`
}

func (h *WizardHandler) SetFields(c *gin.Context) {
	s, ok := h.session(c)
	if !ok {
		return
	}

	var req setFieldsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	s.SetFields(req.Fields)
	response.Success(c, http.StatusOK, s.Snapshot())
}

func (h *WizardHandler) Next(c *gin.Context) {
	s, ok := h.session(c)
	if !ok {
		return
	}

	err := s.Next(c.Request.Context(), h.service)
	state := s.Snapshot()

	switch {
	case err == nil:
		response.Success(c, http.StatusOK, state)
	case errors.Is(err, wizard.ErrValidation):
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "Step validation failed", state.Errors)
	case errors.Is(err, wizard.ErrCheckInFlight):
		response.Error(c, http.StatusConflict, "CHECK_IN_FLIGHT", "Availability check already in progress")
	case errors.Is(err, wizard.ErrNotAvailable):
		response.Error(c, http.StatusConflict, "BOOKING_CONFLICT", state.AvailabilityError)
	case errors.Is(err, wizard.ErrNoNextStep):
		response.Error(c, http.StatusConflict, "WIZARD_COMPLETE", "Already at the payment step")
	default:
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to advance wizard")
	}
}

func (h *WizardHandler) Back(c *gin.Context) {
	s, ok := h.session(c)
	if !ok {
		return
	}

	s.Back()
	response.Success(c, http.StatusOK, s.Snapshot())
}

type setGuestTypeRequest struct {
	GuestType string `json:"guest_type" binding:"required,oneof=new existing"`
}

func (h *WizardHandler) SetGuestType(c *gin.Context) {
	s, ok := h.session(c)
	if !ok {
		return
	}

	var req setGuestTypeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid guest type")
		return
	}

	s.SetGuestType(wizard.GuestType(req.GuestType))
	response.Success(c, http.StatusOK, s.Snapshot())
}

type selectGuestRequest struct {
	UserID int64 `json:"user_id" binding:"required"`
}

func (h *WizardHandler) SelectGuest(c *gin.Context) {
	s, ok := h.session(c)
	if !ok {
		return
	}

	var req selectGuestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	user, err := h.users.GetByID(c.Request.Context(), req.UserID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			response.Error(c, http.StatusNotFound, "USER_NOT_FOUND", "User not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load user")
		return
	}

	s.SelectExistingUser(wizard.GuestRecord{
		ID:             user.ID,
		Name:           user.Name,
		Email:          user.Email,
		WhatsappNumber: user.WhatsappNumber,
	})
	response.Success(c, http.StatusOK, s.Snapshot())
}

func (h *WizardHandler) Quote(c *gin.Context) {
	s, ok := h.session(c)
	if !ok {
		return
	}

	values := s.Snapshot().Values
	roomID, _ := strconv.ParseInt(values.RoomID, 10, 64)

	quote, err := h.service.QuoteStay(c.Request.Context(), roomID, values.CheckIn, values.CheckOut)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to compute price")
		return
	}

	response.Success(c, http.StatusOK, quote)
}

func (h *WizardHandler) Submit(c *gin.Context) {
	s, ok := h.session(c)
	if !ok {
		return
	}

	payload, err := s.BuildSubmit()
	if err != nil {
		state := s.Snapshot()
		if errors.Is(err, wizard.ErrValidation) {
			response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "Form validation failed", state.Errors)
			return
		}
		response.Error(c, http.StatusConflict, "WIZARD_INCOMPLETE", "Wizard is not at the payment step")
		return
	}

	var b *domain.Booking
	if s.Snapshot().Mode == wizard.ModeReschedule {
		b, err = h.service.RescheduleBooking(c.Request.Context(), payload.BookingID, RescheduleBookingRequest{
			RoomID:         payload.RoomID,
			CheckIn:        payload.CheckIn,
			CheckOut:       payload.CheckOut,
			GuestName:      payload.GuestName,
			GuestEmail:     payload.GuestEmail,
			WhatsappNumber: payload.WhatsappNumber,
			Adults:         payload.Adults,
			Children:       payload.Children,
			PaymentMethod:  payload.PaymentMethod,
		})
	} else {
		b, err = h.service.CreateBooking(c.Request.Context(), CreateBookingRequest{
			RoomID:         payload.RoomID,
			CheckIn:        payload.CheckIn,
			CheckOut:       payload.CheckOut,
			UserID:         payload.UserID,
			GuestName:      payload.GuestName,
			GuestEmail:     payload.GuestEmail,
			WhatsappNumber: payload.WhatsappNumber,
			Adults:         payload.Adults,
			Children:       payload.Children,
			PaymentMethod:  payload.PaymentMethod,
		})
	}
	if err != nil {
		writeServiceError(c, err, "Failed to submit booking")
		return
	}

	h.store.Delete(s.ID())

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"data":    b,
		"message": "Booking saved successfully",
	})
}

func (h *WizardHandler) session(c *gin.Context) (*wizard.Session, bool) {
	s, ok := h.store.Get(c.Param("wid"))
	if !ok {
		response.Error(c, http.StatusNotFound, "WIZARD_NOT_FOUND", "Wizard session not found or expired")
		return nil, false
	}
	return s, true
}

// prefillFromBooking maps an existing booking into form values so the
// reschedule flow opens with everything filled in.
func (h *WizardHandler) prefillFromBooking(c *gin.Context, bookingID string) (wizard.FormValues, error) {
	b, err := h.service.GetByBookingID(c.Request.Context(), bookingID)
	if err != nil {
		return wizard.FormValues{}, err
	}

	values := wizard.InitialValues()
	values.RoomID = strconv.FormatInt(b.RoomID, 10)
	values.CheckIn = b.CheckIn.Format(dateLayout)
	values.CheckOut = b.CheckOut.Format(dateLayout)
	values.GuestType = wizard.GuestExisting
	values.Adults = strconv.Itoa(b.Adults)
	values.Children = strconv.Itoa(b.Children)

	if b.User != nil {
		values.SelectedUserID = strconv.FormatInt(b.User.ID, 10)
		values.GuestName = b.User.Name
		values.GuestEmail = b.User.Email
		values.WhatsappNumber = b.User.WhatsappNumber
	}

	if payments, err := h.payments.GetByBookingID(c.Request.Context(), bookingID); err == nil && len(payments) > 0 {
		switch payments[0].Method {
		case domain.PaymentOnline, domain.PaymentPartial, domain.PaymentOffline:
			values.PaymentMethod = string(payments[0].Method)
		}
	}

	return values, nil
}

func (h *WizardHandler) writeWizardError(c *gin.Context, err error) {
	if errors.Is(err, ErrNotFound) {
		response.Error(c, http.StatusNotFound, "BOOKING_NOT_FOUND", "Booking not found")
		return
	}
	response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to start wizard")
}
