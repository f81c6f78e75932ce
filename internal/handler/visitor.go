package handler

import (
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/Rama-Divya/Myhero/internal/domain"
	"github.com/Rama-Divya/Myhero/internal/logger"
)

// VisitorCookieMaxAge keeps the visitor scope for a year, across celebrations
const VisitorCookieMaxAge = 365 * 24 * time.Hour

// visitorRequest is the validated form of the visitor cookie
type visitorRequest struct {
	VisitorID string `validate:"required,visitorid"`
}

// Visitors scopes persisted flags by a cookie held in the visitor's browser,
// the server-side counterpart of per-origin browser storage.
type Visitors struct {
	cookieName string
	secure     bool
}

// NewVisitors creates a resolver for the named cookie
func NewVisitors(cookieName string, secure bool) *Visitors {
	if cookieName == "" {
		cookieName = domain.DefaultVisitorCookie
	}
	return &Visitors{cookieName: cookieName, secure: secure}
}

// Lookup returns the caller's visitor id without issuing one
func (v *Visitors) Lookup(r *http.Request) (string, error) {
	cookie, err := r.Cookie(v.cookieName)
	if err != nil {
		return "", fmt.Errorf("%w: %w", domain.ErrInvalidVisitor, err)
	}
	if err := ValidateVisitorID(cookie.Value); err != nil {
		return "", err
	}
	return cookie.Value, nil
}

// ValidateVisitorID reports domain.ErrInvalidVisitor unless id is a canonical
// v4 uuid
func ValidateVisitorID(id string) error {
	if err := GetValidator().ValidateStruct(visitorRequest{VisitorID: id}); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrInvalidVisitor, FormatValidationError(err))
	}
	return nil
}

// Resolve returns the caller's visitor id, issuing a fresh one (and its
// cookie) when the request has none or an invalid one. Must run before the
// response header is written.
func (v *Visitors) Resolve(w http.ResponseWriter, r *http.Request) string {
	if id, err := v.Lookup(r); err == nil {
		return id
	}

	id := uuid.New().String()
	http.SetCookie(w, &http.Cookie{
		Name:     v.cookieName,
		Value:    id,
		Path:     "/",
		MaxAge:   int(VisitorCookieMaxAge / time.Second),
		HttpOnly: true,
		Secure:   v.secure,
		SameSite: http.SameSiteLaxMode,
	})
	logger.FromContext(r.Context()).Debug(LogMsgVisitorIssued, "visitor_id", id)
	return id
}
