package handler

import "github.com/gin-gonic/gin"

const stateCookieName = "__oauth_state"

// generateState issues the CSRF state for a login attempt and pins it
// to the browser so the callback can prove both legs came from the
// same client.
func generateState(c *gin.Context) string {
	state := randomValue()
	setFlowCookie(c, stateCookieName, state)
	return state
}

// validateState compares the state echoed by the provider against the
// pinned cookie. Either side missing fails closed.
func validateState(c *gin.Context) bool {
	stateQuery := c.Query("state")
	if stateQuery == "" {
		return false
	}
	return flowCookie(c, stateCookieName) == stateQuery
}
