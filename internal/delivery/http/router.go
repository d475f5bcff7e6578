package http

import (
	"net/http"

	"hospital-management-api/internal/delivery/http/handler"
	"hospital-management-api/internal/delivery/http/middleware"
	"hospital-management-api/internal/domain/entity"

	"github.com/gorilla/mux"
)

type Router struct {
	router             *mux.Router
	userHandler        *handler.UserHandler
	appointmentHandler *handler.AppointmentHandler
	messageHandler     *handler.MessageHandler
	authMiddleware     *middleware.AuthMiddleware
	corsMiddleware     *middleware.CORSMiddleware
}

func NewRouter(
	userHandler *handler.UserHandler,
	appointmentHandler *handler.AppointmentHandler,
	messageHandler *handler.MessageHandler,
	authMiddleware *middleware.AuthMiddleware,
	corsMiddleware *middleware.CORSMiddleware,
) *Router {
	return &Router{
		router:             mux.NewRouter(),
		userHandler:        userHandler,
		appointmentHandler: appointmentHandler,
		messageHandler:     messageHandler,
		authMiddleware:     authMiddleware,
		corsMiddleware:     corsMiddleware,
	}
}

// Setup wires the route table. Path spellings follow the portal and dashboard
// clients, so they stay as-is.
func (r *Router) Setup() *mux.Router {
	admin := r.authMiddleware.RequireRole(entity.RoleAdmin)
	patient := r.authMiddleware.RequireRole(entity.RolePatient)

	api := r.router.PathPrefix("/api/v1").Subrouter()

	// Health check
	api.HandleFunc("/health", r.healthCheck).Methods(http.MethodGet)

	// Contact messages
	message := api.PathPrefix("/message").Subrouter()
	message.HandleFunc("/send", r.messageHandler.Send).Methods(http.MethodPost)
	message.Handle("/getMessages", admin(http.HandlerFunc(r.messageHandler.GetAll))).Methods(http.MethodGet)

	// Accounts and sessions
	user := api.PathPrefix("/user").Subrouter()
	user.HandleFunc("/patient/register", r.userHandler.RegisterPatient).Methods(http.MethodPost)
	user.HandleFunc("/login", r.userHandler.Login).Methods(http.MethodPost)
	user.Handle("/admin/addnew", admin(http.HandlerFunc(r.userHandler.CreateAdmin))).Methods(http.MethodPost)
	user.Handle("/doctor/addnew", admin(http.HandlerFunc(r.userHandler.CreateDoctor))).Methods(http.MethodPost)
	user.HandleFunc("/doctors", r.userHandler.GetDoctors).Methods(http.MethodGet)
	user.Handle("/admin/me", admin(http.HandlerFunc(r.userHandler.Me))).Methods(http.MethodGet)
	user.Handle("/patient/me", patient(http.HandlerFunc(r.userHandler.Me))).Methods(http.MethodGet)
	user.Handle("/admin/logout", admin(http.HandlerFunc(r.userHandler.LogoutAdmin))).Methods(http.MethodGet)
	user.Handle("/patient/logout", patient(http.HandlerFunc(r.userHandler.LogoutPatient))).Methods(http.MethodGet)

	// Appointments; delete is admin-gated like the rest of the mutation surface
	appointment := api.PathPrefix("/appointment").Subrouter()
	appointment.Handle("/post", patient(http.HandlerFunc(r.appointmentHandler.Create))).Methods(http.MethodPost)
	appointment.Handle("/getAllAppointments", admin(http.HandlerFunc(r.appointmentHandler.GetAll))).Methods(http.MethodGet)
	appointment.Handle("/update_appointment/{id}", admin(http.HandlerFunc(r.appointmentHandler.UpdateStatus))).Methods(http.MethodPut)
	appointment.Handle("/delete_appointment/{id}", admin(http.HandlerFunc(r.appointmentHandler.Delete))).Methods(http.MethodDelete)

	r.router.Use(r.corsMiddleware.Handle)

	return r.router
}

func (r *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status": "ok"}`))
}
