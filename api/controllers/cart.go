package controllers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/angelmondragon/storefront-backend/api/middleware"
	"github.com/angelmondragon/storefront-backend/api/responses"
	"github.com/angelmondragon/storefront-backend/api/validators"
	cartsvc "github.com/angelmondragon/storefront-backend/internal/cart"
	"github.com/angelmondragon/storefront-backend/internal/notifications"
	pkgerrors "github.com/angelmondragon/storefront-backend/pkg/errors"
	"github.com/angelmondragon/storefront-backend/pkg/logger"
)

type notificationFeed interface {
	Recent(sessionID string) []notifications.Notification
}

func sessionFromRequest(w http.ResponseWriter, r *http.Request, logg *logger.Logger) (string, bool) {
	sessionID := middleware.SessionIDFromContext(r.Context())
	if sessionID == "" {
		responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "cart session missing"))
		return "", false
	}
	return sessionID, true
}

func CartGet(svc cartsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sessionID, ok := sessionFromRequest(w, r, logg)
		if !ok {
			return
		}
		responses.WriteSuccess(w, newCartResponse(svc.GetCart(r.Context(), sessionID)))
	}
}

// CartAddItem adds a product, defaulting the quantity to one. A refused add still returns the
// unchanged cart and the rejection notification next to the error.
func CartAddItem(svc cartsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sessionID, ok := sessionFromRequest(w, r, logg)
		if !ok {
			return
		}

		var payload addCartItemRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		outcome, err := svc.AddToCart(r.Context(), sessionID, payload.ProductID, payload.quantity())
		if err != nil {
			if pkgerrors.IsCode(err, pkgerrors.CodeOutOfStock) {
				responses.WriteErrorWithData(r.Context(), logg, w, err, newCommandResponse(outcome))
				return
			}
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, newCommandResponse(outcome))
	}
}

// CartUpdateItem sets a line quantity; zero or less removes the line.
func CartUpdateItem(svc cartsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sessionID, ok := sessionFromRequest(w, r, logg)
		if !ok {
			return
		}

		var payload updateCartItemRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		outcome, err := svc.UpdateQuantity(r.Context(), sessionID, chi.URLParam(r, "productId"), *payload.Quantity)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, newCommandResponse(outcome))
	}
}

func CartRemoveItem(svc cartsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sessionID, ok := sessionFromRequest(w, r, logg)
		if !ok {
			return
		}
		outcome := svc.RemoveFromCart(r.Context(), sessionID, chi.URLParam(r, "productId"))
		responses.WriteSuccess(w, newCommandResponse(outcome))
	}
}

func CartClear(svc cartsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sessionID, ok := sessionFromRequest(w, r, logg)
		if !ok {
			return
		}
		responses.WriteSuccess(w, newCommandResponse(svc.ClearCart(r.Context(), sessionID)))
	}
}

func CartSummary(svc cartsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sessionID, ok := sessionFromRequest(w, r, logg)
		if !ok {
			return
		}
		responses.WriteSuccess(w, svc.Summary(r.Context(), sessionID))
	}
}

// CartNotifications lists the session's recent notifications, newest first.
func CartNotifications(feed notificationFeed, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sessionID, ok := sessionFromRequest(w, r, logg)
		if !ok {
			return
		}
		responses.WriteSuccess(w, feed.Recent(sessionID))
	}
}
