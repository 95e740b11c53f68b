package app

import (
	"github.com/gorilla/mux"
)

// RegisterRoutes registers all API endpoints.
func RegisterRoutes(r *mux.Router, deps *Dependencies) {

	// Catalog
	r.HandleFunc("/api/sidebar", deps.CatalogHandler.GetSidebar).Methods("GET")
	r.HandleFunc("/api/content", deps.CatalogHandler.GetContent).Methods("GET")
	r.HandleFunc("/api/catalog", deps.CatalogHandler.GetCatalog).Methods("GET")

	// Plans
	r.HandleFunc("/api/plans", deps.PlansHandler.GetPlans).Methods("GET")
	r.HandleFunc("/api/plans/{planId}/purchase", deps.PlansHandler.ConfirmPurchase).Methods("POST")

	// Schedule
	r.HandleFunc("/api/schedule", deps.ScheduleHandler.GetSchedule).Methods("GET")
	r.HandleFunc("/api/schedule/month/prev", deps.ScheduleHandler.PreviousMonth).Methods("POST")
	r.HandleFunc("/api/schedule/month/next", deps.ScheduleHandler.NextMonth).Methods("POST")
	r.HandleFunc("/api/schedule/event", deps.ScheduleHandler.CreateEvent).Methods("POST")
	r.HandleFunc("/api/schedule/series", deps.ScheduleHandler.CreateSeries).Methods("POST")
	r.HandleFunc("/api/schedule/event/{eventId}", deps.ScheduleHandler.DeleteEvent).Methods("DELETE")
	r.HandleFunc("/api/schedule/event/{eventId}/select", deps.ScheduleHandler.SelectEvent).Methods("POST")
	r.HandleFunc("/api/schedule/event/{eventId}/delete-request", deps.ScheduleHandler.RequestDeletion).Methods("POST")
	r.HandleFunc("/api/schedule/selection", deps.ScheduleHandler.CloseSelection).Methods("DELETE")
	r.HandleFunc("/api/schedule/delete/confirm", deps.ScheduleHandler.ConfirmDeletion).Methods("POST")
	r.HandleFunc("/api/schedule/delete/cancel", deps.ScheduleHandler.CancelDeletion).Methods("POST")
	r.HandleFunc("/api/schedule/calendar.ics", deps.ScheduleHandler.GetCalendarFeed).Methods("GET")

	// Workshops
	r.HandleFunc("/api/workshops/lessons", deps.WorkshopsHandler.GetLessons).Methods("GET")
	r.HandleFunc("/api/workshops/lessons/{lessonId}/start", deps.WorkshopsHandler.StartLesson).Methods("POST")
	r.HandleFunc("/api/workshops/lessons/{lessonId}/complete", deps.WorkshopsHandler.CompleteLesson).Methods("POST")
	r.HandleFunc("/api/workshops/progress", deps.WorkshopsHandler.GetProgress).Methods("GET")
	r.HandleFunc("/api/workshops/login", deps.WorkshopsHandler.Login).Methods("POST")
	r.HandleFunc("/api/workshops/register", deps.WorkshopsHandler.Register).Methods("POST")
	r.HandleFunc("/api/workshops/logout", deps.WorkshopsHandler.Logout).Methods("POST")
	r.HandleFunc("/api/workshops/me", deps.WorkshopsHandler.Me).Methods("GET")
}
