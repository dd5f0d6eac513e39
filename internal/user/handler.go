package user

import (
	"encoding/json"
	"net/http"
	"os"

	"github.com/google/uuid"
	"github.com/maturamate/maturamate-api/internal/auth"
	"github.com/maturamate/maturamate-api/internal/config"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
)

const googleUserInfoURL = "https://www.googleapis.com/oauth2/v2/userinfo"

type Handler struct {
	service Service
}

func NewHandler(s Service) *Handler {
	return &Handler{service: s}
}

func oauthConfig(redirectURI string) *oauth2.Config {
	return &oauth2.Config{
		ClientID:     os.Getenv("GOOGLE_CLIENT_ID"),
		ClientSecret: os.Getenv("GOOGLE_CLIENT_SECRET"),
		RedirectURL:  redirectURI,
		Scopes:       []string{"openid", "email", "profile"},
		Endpoint:     google.Endpoint,
	}
}

func (h *Handler) GoogleLogin(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	var payload GoogleLoginRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		log.WithError(err).Error("Corpo della richiesta non valido per il login")
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if payload.Code == "" {
		http.Error(w, "authorization code required", http.StatusBadRequest)
		return
	}

	cfg := oauthConfig(payload.RedirectURI)

	token, err := cfg.Exchange(r.Context(), payload.Code)
	if err != nil {
		log.WithError(err).Warn("Scambio del codice OAuth fallito")
		http.Error(w, "invalid authorization code", http.StatusUnauthorized)
		return
	}

	client := cfg.Client(r.Context(), token)
	resp, err := client.Get(googleUserInfoURL)
	if err != nil {
		log.WithError(err).Error("Errore nel recupero del profilo Google")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	defer resp.Body.Close()

	var profile GoogleProfile
	if err := json.NewDecoder(resp.Body).Decode(&profile); err != nil {
		log.WithError(err).Error("Profilo Google non decodificabile")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	u, err := h.service.FindOrCreateFromGoogle(r.Context(), profile, token.RefreshToken)
	if err != nil {
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	accessToken, err := auth.GenerateJWT(u.ID.String(), u.Role, auth.AccessTokenDuration)
	if err != nil {
		log.WithError(err).Error("Errore nella generazione del token di accesso")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	refreshToken, err := auth.GenerateJWT(u.ID.String(), u.Role, auth.RefreshTokenDuration)
	if err != nil {
		log.WithError(err).Error("Errore nella generazione del refresh token")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	auth.SetSessionCookies(w, accessToken, refreshToken)
	config.JSON(w, http.StatusOK, u)
}

func (h *Handler) RefreshToken(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	cookie, err := r.Cookie("refresh_token")
	if err != nil || cookie.Value == "" {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	claims, err := auth.ValidateJWT(cookie.Value)
	if err != nil {
		log.WithError(err).Warn("Refresh token non valido")
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	accessToken, err := auth.GenerateJWT(claims.UserID, claims.Role, auth.AccessTokenDuration)
	if err != nil {
		log.WithError(err).Error("Errore nella rigenerazione del token di accesso")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	refreshToken, err := auth.GenerateJWT(claims.UserID, claims.Role, auth.RefreshTokenDuration)
	if err != nil {
		log.WithError(err).Error("Errore nella rigenerazione del refresh token")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	auth.SetSessionCookies(w, accessToken, refreshToken)
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

	id, err := uuid.Parse(claims.UserID)
	if err != nil {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	u, err := h.service.GetByID(r.Context(), id)
	if err != nil {
		log.WithError(err).Error("Errore nel recupero dell'utente corrente")
		http.Error(w, "user not found", http.StatusNotFound)
		return
	}

	config.JSON(w, http.StatusOK, u)
}
