package user

import (
	"encoding/json"
	"net/http"
	"os"
	"time"

	"github.com/sinaliza/sinaliza-api/internal/auth"
	"github.com/sinaliza/sinaliza-api/internal/config"
)

type Handler struct {
	service UserService
}

func NewHandler(s UserService) *Handler {
	return &Handler{service: s}
}

func setTokenCookie(w http.ResponseWriter, name, token string, duration time.Duration) {
	http.SetCookie(w, &http.Cookie{
		Name:     name,
		Value:    token,
		Path:     "/",
		Domain:   os.Getenv("COOKIE_DOMAIN"),
		MaxAge:   int(duration.Seconds()),
		HttpOnly: true,
		Secure:   true,
		SameSite: http.SameSiteNoneMode,
	})
}

func (h *Handler) GoogleLogin(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	var payload struct {
		Code string `json:"code"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil || payload.Code == "" {
		log.Warn("Código de autorização ausente no login")
		http.Error(w, "authorization code required", http.StatusBadRequest)
		return
	}

	u, err := h.service.GoogleLogin(r.Context(), payload.Code)
	if err != nil {
		log.WithError(err).Error("Falha no login com Google")
		http.Error(w, "login failed", http.StatusUnauthorized)
		return
	}

	accessToken, err := auth.GenerateJWT(u.ID.String(), string(u.Role), auth.AccessTokenDuration)
	if err != nil {
		log.WithError(err).Error("Falha ao gerar access token")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	refreshToken, err := auth.GenerateJWT(u.ID.String(), string(u.Role), auth.RefreshTokenDuration)
	if err != nil {
		log.WithError(err).Error("Falha ao gerar refresh token")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	setTokenCookie(w, "jwt", accessToken, auth.AccessTokenDuration)
	setTokenCookie(w, "refresh_jwt", refreshToken, auth.RefreshTokenDuration)

	config.JSON(w, http.StatusOK, u)
}

func (h *Handler) RefreshToken(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	cookie, err := r.Cookie("refresh_jwt")
	if err != nil || cookie.Value == "" {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	claims, err := auth.ValidateJWT(cookie.Value)
	if err != nil {
		log.WithError(err).Warn("Refresh token inválido")
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	accessToken, err := auth.GenerateJWT(claims.UserID, claims.Role, auth.AccessTokenDuration)
	if err != nil {
		log.WithError(err).Error("Falha ao gerar access token")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	setTokenCookie(w, "jwt", accessToken, auth.AccessTokenDuration)

	config.JSON(w, http.StatusOK, map[string]string{
		"message": "token refreshed",
	})
}

func (h *Handler) GetUser(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	claims, err := auth.GetUserClaimsFromContext(r.Context())
	if err != nil {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	u, err := h.service.GetByID(r.Context(), claims.UserID)
	if err != nil {
		if err == ErrUserNotFound {
			http.Error(w, "user not found", http.StatusNotFound)
			return
		}
		log.WithError(err).Error("Falha ao buscar usuário")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	config.JSON(w, http.StatusOK, u)
}
