package identity

import "github.com/gin-gonic/gin"

// User is the authenticated staff member making the request.
type User struct {
	StaffID int
	Name    string
}

const ginKey = "current_user"

// IntoGinContext stores the authenticated user for downstream handlers.
func IntoGinContext(c *gin.Context, u User) {
	c.Set(ginKey, u)
}

// FromGinContext returns the authenticated user, or the zero User when the
// auth middleware has not run.
func FromGinContext(c *gin.Context) User {
	if v, ok := c.Get(ginKey); ok {
		if u, ok := v.(User); ok {
			return u
		}
	}
	return User{}
}
