package http

import (
	"net/http"

	httpSwagger "github.com/swaggo/http-swagger"

	"slotswapper/internal/delivery/http/controllers"
	"slotswapper/internal/delivery/http/middleware"
	"slotswapper/internal/domain"
)

// NewRouter initializes the HTTP router with all application routes. Every
// route except auth and swagger requires a Bearer token.
func NewRouter(
	verifier domain.TokenVerifier,
	authController *controllers.AuthController,
	userController *controllers.UserController,
	slotController *controllers.SlotController,
	swapController *controllers.SwapController,
) *http.ServeMux {
	mux := http.NewServeMux()
	auth := middleware.RequireAuth(verifier)

	// Auth
	mux.HandleFunc("POST /auth/signup", authController.SignUp)
	mux.HandleFunc("POST /auth/login", authController.Login)

	// Users
	mux.HandleFunc("GET /users/me", auth(userController.GetMe))

	// Slots
	mux.HandleFunc("POST /events", auth(slotController.CreateSlot))
	mux.HandleFunc("PUT /events/{eventID}/status", auth(slotController.UpdateSlotStatus))
	mux.HandleFunc("GET /events/mine", auth(slotController.ListMySlots))
	mux.HandleFunc("GET /events/marketplace", auth(slotController.ListMarketplace))

	// Swaps
	mux.HandleFunc("POST /swap-requests", auth(swapController.ProposeSwap))
	mux.HandleFunc("POST /swap-requests/{requestID}/response", auth(swapController.RespondToSwap))
	mux.HandleFunc("GET /swap-requests/mine", auth(swapController.ListMyRequests))

	// Swagger
	mux.Handle("/swagger/", httpSwagger.WrapHandler)

	return mux
}
