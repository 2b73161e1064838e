package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"gymtrack/pkg/utils"
)

// currentAccountID reads the authenticated account id set by the JWT
// middleware. A parse failure means a malformed token slipped through, which
// is treated as unauthenticated.
func currentAccountID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.GetString("user_id"))
	if err != nil {
		utils.RespondError(c, http.StatusUnauthorized, "Invalid or expired token")
		return uuid.Nil, false
	}
	return id, true
}

func pathID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid id")
		return uuid.Nil, false
	}
	return id, true
}
