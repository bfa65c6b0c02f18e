package bootstrap

import "github.com/gin-gonic/gin"

// SetGinMode silences gin's per-route debug output outside development.
// Gin boots in debug mode by default, which prints every registered route
// and a framework banner on startup.
func SetGinMode(env string) {
	switch env {
	case "production", "staging":
		gin.SetMode(gin.ReleaseMode)
	case "test":
		gin.SetMode(gin.TestMode)
	}
}
