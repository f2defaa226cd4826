package accounts

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/harborview/accounts-backend/internal/utils"
)

// Handler carries the injected stores; constructed once at startup.
type Handler struct {
	users      UserStore
	sessions   *SessionManager
	production bool
}

func NewHandler(users UserStore, sessions *SessionManager, production bool) *Handler {
	return &Handler{users: users, sessions: sessions, production: production}
}

type credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type userInfo struct {
	ID    int    `json:"id"`
	Email string `json:"email"`
}

type loginResponse struct {
	Message string   `json:"message"`
	User    userInfo `json:"user"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeMessage(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"message": msg})
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error_msg": msg})
}

func (h *Handler) RegisterHandler(w http.ResponseWriter, r *http.Request) {
	var creds credentials
	if err := json.NewDecoder(r.Body).Decode(&creds); err != nil {
		writeError(w, http.StatusBadRequest, "email or password is invalid")
		return
	}
	if creds.Email == "" || creds.Password == "" {
		writeError(w, http.StatusBadRequest, "email or password is invalid")
		return
	}

	// Fast path for the common duplicate case; the unique index on email is
	// what actually decides races at insert time.
	_, err := h.users.FindByEmail(creds.Email)
	if err == nil {
		writeError(w, http.StatusBadRequest, "Email already exists")
		return
	}
	if !errors.Is(err, ErrUserNotFound) {
		log.Println("DB Error:", err)
		writeError(w, http.StatusInternalServerError, "Database error")
		return
	}

	hashed, err := HashPassword(creds.Password)
	if err != nil {
		log.Println("Hash Error:", err)
		writeError(w, http.StatusInternalServerError, "Error creating user")
		return
	}

	if _, err := h.users.Insert(creds.Email, hashed); err != nil {
		if errors.Is(err, ErrDuplicateEmail) {
			writeError(w, http.StatusBadRequest, "Email already exists")
			return
		}
		log.Println("DB Insert Error:", err)
		writeError(w, http.StatusInternalServerError, "Error creating user")
		return
	}

	writeMessage(w, http.StatusCreated, "User created successfully")
}

func (h *Handler) LoginHandler(w http.ResponseWriter, r *http.Request) {
	var creds credentials
	if err := json.NewDecoder(r.Body).Decode(&creds); err != nil {
		writeError(w, http.StatusBadRequest, "email or password is invalid")
		return
	}
	if creds.Email == "" || creds.Password == "" {
		writeError(w, http.StatusBadRequest, "email or password is invalid")
		return
	}

	user, err := h.users.FindByEmail(creds.Email)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			writeError(w, http.StatusBadRequest, "Invalid Email")
			return
		}
		log.Println("DB Error:", err)
		writeError(w, http.StatusInternalServerError, "Database Error")
		return
	}

	if !CheckPassword(creds.Password, user.PasswordHash) {
		writeError(w, http.StatusBadRequest, "Email and password didn't match")
		return
	}

	sessionID, err := h.sessions.Create(user.ID, user.Email)
	if err != nil {
		log.Println("Session Create Error:", err)
		writeError(w, http.StatusInternalServerError, "Database Error")
		return
	}

	http.SetCookie(w, sessionCookie(sessionID, h.production))
	writeJSON(w, http.StatusOK, loginResponse{
		Message: "Login Successful",
		User:    userInfo{ID: user.ID, Email: user.Email},
	})
}

func (h *Handler) DashboardHandler(w http.ResponseWriter, r *http.Request) {
	email, ok := utils.GetEmailFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "Unauthorized, please log in")
		return
	}

	writeMessage(w, http.StatusOK, "Welcome "+email)
}

// LogoutHandler destroys the caller's session, if any, and clears the
// cookie. It is deliberately not behind the session middleware: logging out
// with a stale or missing cookie still succeeds.
func (h *Handler) LogoutHandler(w http.ResponseWriter, r *http.Request) {
	if cookie, err := r.Cookie(SessionCookieName); err == nil {
		if err := h.sessions.Destroy(cookie.Value); err != nil {
			log.Println("Session destroy error:", err)
			writeError(w, http.StatusInternalServerError, "Logout failed")
			return
		}
	}

	http.SetCookie(w, clearedSessionCookie(h.production))
	writeMessage(w, http.StatusOK, "Logged out successfully")
}
