package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"gymtrack/internal/config"
	"gymtrack/internal/infra"
	"gymtrack/internal/models/response_models"
	"gymtrack/internal/services"
	"gymtrack/pkg/middleware"
	"gymtrack/pkg/utils"
)

const stateCookieName = "gt_oauth_state"

type AuthController struct {
	cfg            *config.Config
	identity       infra.IdentityProvider
	accountService services.AccountServiceInterface
}

func NewAuthController(cfg *config.Config, identity infra.IdentityProvider, accountService services.AccountServiceInterface) *AuthController {
	return &AuthController{
		cfg:            cfg,
		identity:       identity,
		accountService: accountService,
	}
}

// Login kicks off the Google authorization-code flow.
func (a *AuthController) Login(c *gin.Context) {
	state := uuid.New().String()
	c.SetCookie(stateCookieName, state, 300, "/", "", false, true)
	c.Redirect(http.StatusFound, a.identity.AuthURL(state))
}

// Callback exchanges the one-time code, upserts the account and hands the
// browser an app token cookie.
func (a *AuthController) Callback(c *gin.Context) {
	state, err := c.Cookie(stateCookieName)
	if err != nil || state == "" || c.Query("state") != state {
		utils.RespondError(c, http.StatusUnauthorized, "OAuth state mismatch")
		return
	}
	c.SetCookie(stateCookieName, "", -1, "/", "", false, true)

	code := c.Query("code")
	if code == "" {
		utils.RespondError(c, http.StatusUnauthorized, "Missing authorization code")
		return
	}

	identity, err := a.identity.Exchange(c.Request.Context(), code)
	if err != nil {
		utils.RespondError(c, http.StatusUnauthorized, "OAuth exchange failed")
		return
	}

	account, err := a.accountService.LoginWithIdentity(c.Request.Context(), identity)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	token, err := utils.CreateToken(a.cfg.JWTSecret, account.ID, string(account.Role), a.cfg.TokenTTL)
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, "Failed to issue token")
		return
	}

	c.SetCookie(middleware.TokenCookieName, token, int(a.cfg.TokenTTL.Seconds()), "/", "", false, true)
	c.Redirect(http.StatusFound, a.cfg.BaseURL)
}

func (a *AuthController) Logout(c *gin.Context) {
	c.SetCookie(middleware.TokenCookieName, "", -1, "/", "", false, true)
	c.Redirect(http.StatusFound, a.cfg.BaseURL)
}

// Me reports who the token belongs to.
func (a *AuthController) Me(c *gin.Context) {
	account, err := a.accountService.GetAccount(c.Request.Context(), c.GetString("user_id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, response_models.AccountResponse{
		ID:          account.ID.String(),
		Email:       account.Email,
		FullName:    account.FullName,
		AvatarURL:   account.AvatarURL,
		Role:        string(account.Role),
		LastLoginAt: account.LastLoginAt,
	}, "")
}
