package services

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// AuthService signs in against the Identity Toolkit password endpoint.
type AuthService struct {
	apiKey  string
	baseURL string
	client  *http.Client
}

func NewAuthService(apiKey string) *AuthService {
	return &AuthService{
		apiKey:  apiKey,
		baseURL: "https://identitytoolkit.googleapis.com/v1",
		client:  &http.Client{Timeout: 10 * time.Second},
	}
}

// Session holds the credentials obtained for one seeding run.
type Session struct {
	IDToken string
	UserID  string
}

type signInRequest struct {
	Email             string `json:"email"`
	Password          string `json:"password"`
	ReturnSecureToken bool   `json:"returnSecureToken"`
}

type signInResponse struct {
	IDToken string `json:"idToken"`
	LocalID string `json:"localId"`
}

// SignIn exchanges the test account's email/password for an ID token and uid.
func (s *AuthService) SignIn(email, password string) (*Session, error) {
	b, err := json.Marshal(signInRequest{
		Email:             email,
		Password:          password,
		ReturnSecureToken: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal sign-in payload: %w", err)
	}

	u := fmt.Sprintf("%s/accounts:signInWithPassword?key=%s", s.baseURL, s.apiKey)

	resp, err := s.client.Post(u, "application/json", bytes.NewReader(b))
	if err != nil {
		return nil, fmt.Errorf("failed to call sign-in endpoint: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read sign-in response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("sign-in failed %d: %s", resp.StatusCode, string(body))
	}

	var sr signInResponse
	if err := json.Unmarshal(body, &sr); err != nil {
		return nil, fmt.Errorf("failed to parse sign-in JSON: %w", err)
	}
	return &Session{IDToken: sr.IDToken, UserID: sr.LocalID}, nil
}

// TokenExpiry reads the exp claim without verifying the signature. The token
// was just issued by the identity endpoint, so this is for progress output only.
func TokenExpiry(idToken string) (time.Time, error) {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(idToken, claims); err != nil {
		return time.Time{}, fmt.Errorf("failed to parse ID token: %w", err)
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return time.Time{}, fmt.Errorf("ID token has no exp claim")
	}
	return exp.Time, nil
}
