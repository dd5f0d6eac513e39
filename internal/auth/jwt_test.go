package auth_test

import (
	"errors"
	"os"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/maturamate/maturamate-api/internal/auth"
)

const testSecret = "una-chiave-segreta-per-i-test-sicura-e-lunga"
const testUserID = "user-123"
const testRole = "student"

func TestInit(t *testing.T) {
	t.Run("MissingSecret", func(t *testing.T) {
		os.Unsetenv("JWT_SECRET")

		defer func() {
			if r := recover(); r == nil {
				t.Errorf("Init() avrebbe dovuto andare in panico con JWT_SECRET vuoto, ma non lo ha fatto.")
			}
		}()

		auth.Init()
	})

	t.Run("ValidSecret", func(t *testing.T) {
		os.Setenv("JWT_SECRET", testSecret)
		auth.Init()
	})
}

func TestGenerateAndValidateJWT(t *testing.T) {
	os.Setenv("JWT_SECRET", testSecret)
	auth.Init()

	t.Run("ValidToken", func(t *testing.T) {
		tokenStr, err := auth.GenerateJWT(testUserID, testRole, time.Minute*5)
		if err != nil {
			t.Fatalf("GenerateJWT fallito: %v", err)
		}

		claims, err := auth.ValidateJWT(tokenStr)
		if err != nil {
			t.Fatalf("ValidateJWT fallito inaspettatamente: %v", err)
		}

		if claims.UserID != testUserID {
			t.Errorf("UserID errato. Atteso: %s, Ricevuto: %s", testUserID, claims.UserID)
		}
		if claims.Role != testRole {
			t.Errorf("Role errato. Atteso: %s, Ricevuto: %s", testRole, claims.Role)
		}
	})

	t.Run("ExpiredToken", func(t *testing.T) {
		tokenStr, err := auth.GenerateJWT(testUserID, testRole, -time.Second)
		if err != nil {
			t.Fatalf("GenerateJWT fallito: %v", err)
		}

		_, err = auth.ValidateJWT(tokenStr)

		if err == nil {
			t.Fatal("ValidateJWT avrebbe dovuto fallire con un token scaduto, ma è passato.")
		}
		if !errors.Is(err, jwt.ErrTokenExpired) {
			t.Errorf("Errore sbagliato per token scaduto. Atteso: %v, Ricevuto: %v", jwt.ErrTokenExpired, err)
		}
	})

	t.Run("TamperedToken", func(t *testing.T) {
		tokenStr, err := auth.GenerateJWT(testUserID, testRole, time.Minute)
		if err != nil {
			t.Fatalf("GenerateJWT fallito: %v", err)
		}

		_, err = auth.ValidateJWT(tokenStr + "x")

		if err == nil {
			t.Fatal("ValidateJWT avrebbe dovuto fallire con una firma manomessa, ma è passato.")
		}
		if !errors.Is(err, jwt.ErrTokenSignatureInvalid) {
			t.Errorf("Errore sbagliato per firma non valida: %v", err)
		}
	})
}
