package auth_controller

import (
	"context"
	"encoding/json"
	"io"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pgera1/Khemixall-medical-products/config"
	"github.com/pgera1/Khemixall-medical-products/models"
	"github.com/pgera1/Khemixall-medical-products/utils"
)

// GoogleCallback godoc
// @Summary Google OAuth callback
// @Description Verifies the state token, exchanges the authorization code, fetches the Google profile, upserts the customer, issues a JWT cookie, and redirects back to the storefront.
// @Tags Auth - Google OAuth
// @Produce json
// @Success 307 "Redirect to storefront after login"
// @Failure 400 {object} models.ApiResponse "Invalid state or missing code"
// @Router /auth/google/callback [get]
func GoogleCallback(c *gin.Context) {
	if config.GoogleOAuthConfig == nil {
		redirectToFrontendWithError(c, "Google login is not configured")
		return
	}

	state := c.Query("state")
	savedState, err := c.Cookie("oauth_state")
	if err != nil || state != savedState {
		log.Printf("❌ OAuth state mismatch")
		redirectToFrontendWithError(c, "Invalid state token")
		return
	}

	// Clear state cookie
	c.SetCookie("oauth_state", "", -1, "/", "", false, true)

	code := c.Query("code")
	if code == "" {
		redirectToFrontendWithError(c, "No authorization code")
		return
	}

	token, err := config.GoogleOAuthConfig.Exchange(context.Background(), code)
	if err != nil {
		log.Printf("❌ OAuth exchange failed: %v", err)
		redirectToFrontendWithError(c, "Failed to exchange token")
		return
	}

	// Verify the id_token when the OIDC verifier is configured; the
	// userinfo endpoint remains the profile source either way.
	if config.OIDCVerifier != nil {
		rawIDToken, ok := token.Extra("id_token").(string)
		if !ok {
			redirectToFrontendWithError(c, "Missing id_token")
			return
		}
		if _, err := config.OIDCVerifier.Verify(context.Background(), rawIDToken); err != nil {
			log.Printf("❌ id_token verification failed: %v", err)
			redirectToFrontendWithError(c, "Invalid id_token")
			return
		}
	}

	client := config.GoogleOAuthConfig.Client(context.Background(), token)
	resp, err := client.Get("https://www.googleapis.com/oauth2/v2/userinfo")
	if err != nil {
		log.Printf("❌ Failed to get user info: %v", err)
		redirectToFrontendWithError(c, "Failed to get user info")
		return
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		redirectToFrontendWithError(c, "Failed to read user info")
		return
	}

	var googleUser models.GoogleUserInfo
	if err := json.Unmarshal(body, &googleUser); err != nil {
		log.Printf("❌ Decode failed: %v", err)
		redirectToFrontendWithError(c, "Failed to decode user info")
		return
	}

	googleID := googleUser.Sub
	if googleID == "" {
		googleID = googleUser.ID
	}
	if googleID == "" {
		redirectToFrontendWithError(c, "Google ID not found")
		return
	}

	emailVerified := googleUser.EmailVerified || googleUser.VerifiedEmail

	user, err := createOrUpdateGoogleUser(&googleUser, googleID, emailVerified)
	if err != nil {
		log.Printf("❌ DB error: %v", err)
		redirectToFrontendWithError(c, "Database error")
		return
	}

	jwtToken, err := utils.GenerateJWT(user.ID, user.Email, user.Name)
	if err != nil {
		log.Printf("❌ JWT error: %v", err)
		redirectToFrontendWithError(c, "Failed to generate token")
		return
	}
	setAuthCookie(c, jwtToken)

	log.Printf("✅ Google login: %s (verified: %v)", user.Email, emailVerified)

	c.Redirect(http.StatusTemporaryRedirect, config.GetFrontendURL())
}
