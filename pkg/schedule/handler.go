package schedule

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/ampliy/ampliy/internal/rest"
	"github.com/ampliy/ampliy/internal/utils"
	"github.com/ampliy/ampliy/pkg/visitor"
	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

type Handler struct {
	store *Store
	clock utils.Clock
}

type EventDTO struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	StartTime time.Time `json:"dateTime"`
}

type CursorDTO struct {
	Year  int `json:"year"`
	Month int `json:"month"`
}

type CellDTO struct {
	Date         string     `json:"date"`
	Day          int        `json:"day"`
	IsBeforeBase bool       `json:"isBeforeBase"`
	Events       []EventDTO `json:"events"`
}

type ScheduleDTO struct {
	Cursor        CursorDTO    `json:"cursor"`
	CanGoPrev     bool         `json:"canGoPrev"`
	Weeks         [][]*CellDTO `json:"weeks"`
	MonthEvents   []EventDTO   `json:"monthEvents"`
	Events        []EventDTO   `json:"events,omitempty"`
	Upcoming      []EventDTO   `json:"upcoming"`
	Toast         *string      `json:"toast"`
	Selected      *EventDTO    `json:"selected,omitempty"`
	PendingDelete *EventDTO    `json:"pendingDelete,omitempty"`
}

func NewHandler(store *Store, clock utils.Clock) *Handler {
	return &Handler{store: store, clock: clock}
}

// GetSchedule godoc
// @Summary Current schedule view of the session
// @Tags Schedule
// @Produce json
// @Param year query int false "Year to show"
// @Param month query int false "Month to show (1-12)"
// @Success 200 {object} ScheduleDTO
// @Failure 400 {object} rest.ErrorResponse "Invalid month"
// @Router /api/schedule [get]
func (h *Handler) GetSchedule(w http.ResponseWriter, r *http.Request) {
	session, v, ok := h.session(w, r)
	if !ok {
		return
	}
	if r.URL.Query().Has("year") || r.URL.Query().Has("month") {
		target, err := parseCursor(r.URL.Query().Get("year"), r.URL.Query().Get("month"))
		if err != nil {
			rest.WriteError(w, http.StatusBadRequest, "Invalid month", err.Error())
			return
		}
		session.GotoMonth(target)
	}
	view := session.View(h.clock.Now())
	rest.WriteJSON(w, http.StatusOK, viewToDTO(view, v.IsAdmin()))
}

func (h *Handler) PreviousMonth(w http.ResponseWriter, r *http.Request) {
	session, _, ok := h.session(w, r)
	if !ok {
		return
	}
	cursor := session.PrevMonth()
	log.Tracef("session %s moved to %s", session.Id(), cursor)
	rest.WriteJSON(w, http.StatusOK, cursorToDTO(cursor))
}

func (h *Handler) NextMonth(w http.ResponseWriter, r *http.Request) {
	session, _, ok := h.session(w, r)
	if !ok {
		return
	}
	cursor := session.NextMonth()
	log.Tracef("session %s moved to %s", session.Id(), cursor)
	rest.WriteJSON(w, http.StatusOK, cursorToDTO(cursor))
}

// CreateEvent godoc
// @Summary Schedule a new class
// @Tags Schedule
// @Accept json
// @Produce json
// @Param event body NewEvent true "Class"
// @Success 201 {object} EventDTO
// @Failure 400 {object} rest.ErrorResponse "Invalid class"
// @Failure 403 {object} rest.ErrorResponse "Admin role required"
// @Router /api/schedule/event [post]
func (h *Handler) CreateEvent(w http.ResponseWriter, r *http.Request) {
	session, ok := h.adminSession(w, r)
	if !ok {
		return
	}

	var in NewEvent
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		rest.WriteError(w, http.StatusBadRequest, "Invalid request body format", err.Error())
		return
	}

	created, err := session.Insert(in)
	if err != nil {
		writeInsertError(w, err)
		return
	}
	log.Debugf("session %s scheduled %s at %s", session.Id(), created.ID, created.StartTime)
	rest.WriteJSON(w, http.StatusCreated, eventToDTO(created))
}

func (h *Handler) CreateSeries(w http.ResponseWriter, r *http.Request) {
	session, ok := h.adminSession(w, r)
	if !ok {
		return
	}

	var in NewSeries
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		rest.WriteError(w, http.StatusBadRequest, "Invalid request body format", err.Error())
		return
	}

	created, err := session.InsertSeries(in)
	if err != nil {
		writeInsertError(w, err)
		return
	}
	rest.WriteJSON(w, http.StatusCreated, eventsToDTO(created))
}

func (h *Handler) SelectEvent(w http.ResponseWriter, r *http.Request) {
	session, ok := h.adminSession(w, r)
	if !ok {
		return
	}
	e, err := session.Select(mux.Vars(r)["eventId"])
	if err != nil {
		writeSessionError(w, err)
		return
	}
	rest.WriteJSON(w, http.StatusOK, eventToDTO(e))
}

func (h *Handler) CloseSelection(w http.ResponseWriter, r *http.Request) {
	session, ok := h.adminSession(w, r)
	if !ok {
		return
	}
	session.CloseSelection()
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) RequestDeletion(w http.ResponseWriter, r *http.Request) {
	session, ok := h.adminSession(w, r)
	if !ok {
		return
	}
	e, err := session.RequestDelete(mux.Vars(r)["eventId"])
	if err != nil {
		writeSessionError(w, err)
		return
	}
	rest.WriteJSON(w, http.StatusOK, eventToDTO(e))
}

func (h *Handler) CancelDeletion(w http.ResponseWriter, r *http.Request) {
	session, ok := h.adminSession(w, r)
	if !ok {
		return
	}
	session.CancelDelete()
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) ConfirmDeletion(w http.ResponseWriter, r *http.Request) {
	session, ok := h.adminSession(w, r)
	if !ok {
		return
	}
	removed, err := session.ConfirmDelete()
	if err != nil {
		writeSessionError(w, err)
		return
	}
	log.Debugf("session %s removed %s", session.Id(), removed.ID)
	w.WriteHeader(http.StatusNoContent)
}

// DeleteEvent godoc
// @Summary Remove a class without confirmation; unknown ids are accepted
// @Tags Schedule
// @Success 204
// @Failure 403 {object} rest.ErrorResponse "Admin role required"
// @Router /api/schedule/event/{eventId} [delete]
func (h *Handler) DeleteEvent(w http.ResponseWriter, r *http.Request) {
	session, ok := h.adminSession(w, r)
	if !ok {
		return
	}
	session.Delete(mux.Vars(r)["eventId"])
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) GetCalendarFeed(w http.ResponseWriter, r *http.Request) {
	session, _, ok := h.session(w, r)
	if !ok {
		return
	}
	feed := session.Feed(h.store.Settings().ClassDuration, h.clock.Now())
	w.Header().Set("Content-Type", "text/calendar; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write([]byte(feed)); err != nil {
		log.Errorf("failed to write calendar feed: %v", err)
	}
}

func (h *Handler) session(w http.ResponseWriter, r *http.Request) (*Session, visitor.Visitor, bool) {
	v, err := visitor.Current(r.Context())
	if err != nil {
		rest.WriteError(w, http.StatusBadRequest, "Missing session", "")
		return nil, visitor.Visitor{}, false
	}
	return h.store.Session(v.SessionId), v, true
}

func (h *Handler) adminSession(w http.ResponseWriter, r *http.Request) (*Session, bool) {
	session, v, ok := h.session(w, r)
	if !ok {
		return nil, false
	}
	if !v.IsAdmin() {
		rest.WriteError(w, http.StatusForbidden, "Admin role required", "")
		return nil, false
	}
	return session, true
}

func parseCursor(year, month string) (Cursor, error) {
	y, err := strconv.Atoi(year)
	if err != nil {
		return Cursor{}, fmt.Errorf("invalid year %q: %w", year, err)
	}
	m, err := strconv.Atoi(month)
	if err != nil {
		return Cursor{}, fmt.Errorf("invalid month %q: %w", month, err)
	}
	if m < 1 || m > 12 {
		return Cursor{}, fmt.Errorf("month %d out of range", m)
	}
	return Cursor{Year: y, Month: time.Month(m)}, nil
}

func writeInsertError(w http.ResponseWriter, err error) {
	var validationErr *ValidationError
	if errors.As(err, &validationErr) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		encodeErr := json.NewEncoder(w).Encode(struct {
			rest.ErrorResponse
			Fields map[string]string `json:"fields,omitempty"`
		}{rest.ErrorResponse{Error: validationErr.Message}, validationErr.Fields})
		if encodeErr != nil {
			log.Errorf("failed to encode validation error: %v", encodeErr)
		}
		return
	}
	log.Errorf("failed to schedule class: %v", err)
	http.Error(w, err.Error(), http.StatusInternalServerError)
}

func writeSessionError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrEventNotFound):
		rest.WriteError(w, http.StatusNotFound, "Event not found", "")
	case errors.Is(err, ErrNoPendingDeletion):
		rest.WriteError(w, http.StatusConflict, "No deletion awaiting confirmation", "")
	default:
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func viewToDTO(view View, admin bool) ScheduleDTO {
	dto := ScheduleDTO{
		Cursor:      cursorToDTO(view.Cursor),
		CanGoPrev:   view.CanGoPrev,
		Weeks:       make([][]*CellDTO, 0, len(view.Weeks)),
		MonthEvents: eventsToDTO(view.MonthEvents),
		Upcoming:    eventsToDTO(view.Upcoming),
	}
	for _, week := range view.Weeks {
		cells := make([]*CellDTO, 0, len(week))
		for _, cell := range week {
			cells = append(cells, cellToDTO(cell))
		}
		dto.Weeks = append(dto.Weeks, cells)
	}
	if view.ToastVisible {
		dto.Toast = &view.Toast
	}
	// the full list and the dialogs belong to the admin panel
	if admin {
		dto.Events = eventsToDTO(view.Events)
		if view.Selected != nil {
			selected := eventToDTO(*view.Selected)
			dto.Selected = &selected
		}
		if view.PendingDelete != nil {
			pending := eventToDTO(*view.PendingDelete)
			dto.PendingDelete = &pending
		}
	}
	return dto
}

func cellToDTO(cell *Cell) *CellDTO {
	if cell == nil {
		return nil
	}
	return &CellDTO{
		Date:         cell.Date.Format(DateLayout),
		Day:          cell.Date.Day(),
		IsBeforeBase: cell.IsBeforeBase,
		Events:       eventsToDTO(cell.Events),
	}
}

func cursorToDTO(c Cursor) CursorDTO {
	return CursorDTO{Year: c.Year, Month: int(c.Month)}
}

func eventToDTO(e Event) EventDTO {
	return EventDTO{ID: e.ID, Title: e.Title, StartTime: e.StartTime}
}

func eventsToDTO(events []Event) []EventDTO {
	dtos := make([]EventDTO, 0, len(events))
	for _, e := range events {
		dtos = append(dtos, eventToDTO(e))
	}
	return dtos
}
