package api

import (
	"github.com/gin-gonic/gin"
)

func (m ApiHandler) login(c *gin.Context) {
	userAccountID, err := userAccountIDFromContext(c)
	if err != nil {
		returnApiError(c, err)
		return
	}

	out := map[string]string{
		"userAccountID": userAccountID.String(),
		"email":         c.GetString("userEmail"),
	}

	c.JSON(200, out)
}
