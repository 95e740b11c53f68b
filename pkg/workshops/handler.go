package workshops

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/ampliy/ampliy/internal/rest"
	"github.com/ampliy/ampliy/internal/validation"
	"github.com/ampliy/ampliy/pkg/visitor"
	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

const (
	msgLoginSucceeded    = "Login realizado com sucesso."
	msgInvalidLogin      = "Credenciais inválidas. Use teste@teste.com e senha 123 ou utilize seu cadastro."
	msgRegisterSucceeded = "Cadastro realizado com sucesso. Você já está conectado!"
	msgRegisterMissing   = "Preencha todos os campos para concluir o cadastro."
	msgLoggedOut         = "Sessão encerrada. Faça login novamente."
	msgLoginRequired     = "Faça login para acessar os workshops."
)

type Handler struct {
	service *Service
}

type LessonDTO struct {
	Lesson
	DurationLabel string `json:"durationLabel"`
}

type LessonsDTO struct {
	Lessons []LessonDTO `json:"lessons"`
	Topics  []Topic     `json:"topics"`
}

type AuthDTO struct {
	Email   string `json:"email"`
	Message string `json:"message"`
}

type ProfileDTO struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Cpf   string `json:"cpf"`
	Phone string `json:"phone"`
}

type MeDTO struct {
	Email          string      `json:"email"`
	RegisteredUser *ProfileDTO `json:"registeredUser,omitempty"`
}

type validationErrorResponse struct {
	rest.ErrorResponse
	Fields map[string]string `json:"fields,omitempty"`
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// GetLessons godoc
// @Summary Recorded lessons and their topics
// @Tags Workshops
// @Produce json
// @Success 200 {object} LessonsDTO
// @Router /api/workshops/lessons [get]
func (h *Handler) GetLessons(w http.ResponseWriter, r *http.Request) {
	lessons := Lessons()
	dto := LessonsDTO{Lessons: make([]LessonDTO, 0, len(lessons)), Topics: Topics()}
	for _, lesson := range lessons {
		dto.Lessons = append(dto.Lessons, LessonDTO{Lesson: lesson, DurationLabel: DurationLabel(lesson.DurationSeconds)})
	}
	rest.WriteJSON(w, http.StatusOK, dto)
}

// Login godoc
// @Summary Sign in to the workshops portal
// @Tags Workshops
// @Accept json
// @Produce json
// @Param credentials body LoginInput true "Credentials"
// @Success 200 {object} AuthDTO
// @Failure 401 {object} rest.ErrorResponse "Invalid credentials"
// @Router /api/workshops/login [post]
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	sessionId, ok := sessionIdFrom(w, r)
	if !ok {
		return
	}
	var in LoginInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		rest.WriteError(w, http.StatusBadRequest, "Invalid request body format", err.Error())
		return
	}

	email, err := h.service.Login(r.Context(), sessionId, in)
	if err != nil {
		if errors.Is(err, ErrInvalidCredentials) {
			rest.WriteError(w, http.StatusUnauthorized, msgInvalidLogin, "")
			return
		}
		log.Errorf("failed to log in: %v", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	rest.WriteJSON(w, http.StatusOK, AuthDTO{Email: email, Message: msgLoginSucceeded})
}

// Register godoc
// @Summary Create the visitor's workshops account and sign in with it
// @Tags Workshops
// @Accept json
// @Produce json
// @Param user body RegisterInput true "Account"
// @Success 201 {object} AuthDTO
// @Failure 400 {object} rest.ErrorResponse "Missing or invalid fields"
// @Router /api/workshops/register [post]
func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	sessionId, ok := sessionIdFrom(w, r)
	if !ok {
		return
	}
	var in RegisterInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		rest.WriteError(w, http.StatusBadRequest, "Invalid request body format", err.Error())
		return
	}

	user, err := h.service.Register(r.Context(), sessionId, in)
	if err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			rest.WriteJSON(w, http.StatusBadRequest, validationErrorResponse{
				ErrorResponse: rest.ErrorResponse{Error: msgRegisterMissing},
				Fields:        validation.FieldErrors(err),
			})
			return
		}
		log.Errorf("failed to register: %v", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	log.Debugf("session %s registered a workshops account", sessionId)
	rest.WriteJSON(w, http.StatusCreated, AuthDTO{Email: user.Email, Message: msgRegisterSucceeded})
}

func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	sessionId, ok := sessionIdFrom(w, r)
	if !ok {
		return
	}
	if err := h.service.Logout(r.Context(), sessionId); err != nil {
		log.Errorf("failed to log out: %v", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	rest.WriteJSON(w, http.StatusOK, AuthDTO{Message: msgLoggedOut})
}

func (h *Handler) Me(w http.ResponseWriter, r *http.Request) {
	sessionId, ok := sessionIdFrom(w, r)
	if !ok {
		return
	}
	email, err := h.service.CurrentEmail(r.Context(), sessionId)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	dto := MeDTO{Email: email}
	user, found, err := h.service.RegisteredUser(r.Context(), sessionId)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	if found {
		dto.RegisteredUser = &ProfileDTO{Name: user.Name, Email: user.Email, Cpf: user.Cpf, Phone: user.Phone}
	}
	rest.WriteJSON(w, http.StatusOK, dto)
}

func (h *Handler) StartLesson(w http.ResponseWriter, r *http.Request) {
	sessionId, ok := sessionIdFrom(w, r)
	if !ok {
		return
	}
	progress, err := h.service.StartLesson(r.Context(), sessionId, mux.Vars(r)["lessonId"])
	if err != nil {
		writeServiceError(w, err)
		return
	}
	rest.WriteJSON(w, http.StatusOK, progress)
}

func (h *Handler) CompleteLesson(w http.ResponseWriter, r *http.Request) {
	sessionId, ok := sessionIdFrom(w, r)
	if !ok {
		return
	}
	progress, err := h.service.CompleteLesson(r.Context(), sessionId, mux.Vars(r)["lessonId"])
	if err != nil {
		writeServiceError(w, err)
		return
	}
	rest.WriteJSON(w, http.StatusOK, progress)
}

func (h *Handler) GetProgress(w http.ResponseWriter, r *http.Request) {
	sessionId, ok := sessionIdFrom(w, r)
	if !ok {
		return
	}
	progress, err := h.service.Progress(r.Context(), sessionId)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	rest.WriteJSON(w, http.StatusOK, progress)
}

func sessionIdFrom(w http.ResponseWriter, r *http.Request) (string, bool) {
	v, err := visitor.Current(r.Context())
	if err != nil {
		rest.WriteError(w, http.StatusBadRequest, "Missing session", "")
		return "", false
	}
	return v.SessionId, true
}

func writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrNotAuthenticated):
		rest.WriteError(w, http.StatusUnauthorized, msgLoginRequired, "")
	case errors.Is(err, ErrLessonNotFound):
		rest.WriteError(w, http.StatusNotFound, "Lesson not found", "")
	default:
		log.Errorf("workshops request failed: %v", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}
