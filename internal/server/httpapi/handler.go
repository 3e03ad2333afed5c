package httpapi

import (
	"errors"
	"net/http"
	"strings"

	"github.com/dmitrijs2005/courtbook/internal/common"
	"github.com/dmitrijs2005/courtbook/internal/server/auth"
	"github.com/dmitrijs2005/courtbook/internal/server/users"
	"github.com/gin-gonic/gin"
)

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	AccessToken string         `json:"access_token"`
	User        *users.Profile `json:"user"`
}

func (s *HTTPServer) healthz(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "OK"})
}

func (s *HTTPServer) register(c *gin.Context) {
	var in users.RegisterInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}
	// owners are provisioned with courtctl only
	in.Role = users.RoleUser

	u, err := s.users.CreateUser(c.Request.Context(), in)
	if err != nil {
		s.writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, u)
}

func (s *HTTPServer) login(c *gin.Context) {
	var in loginRequest
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	p, err := s.users.CheckUser(c.Request.Context(), in.Email, in.Password)
	if err != nil {
		s.writeError(c, err)
		return
	}

	token, err := auth.GenerateToken(p.ID, string(p.Role), s.jwtSecret, s.tokenTTL)
	if err != nil {
		s.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, loginResponse{AccessToken: token, User: p})
}

func (s *HTTPServer) listUsers(c *gin.Context) {
	all, err := s.users.GetAllUsers(c.Request.Context())
	if err != nil {
		s.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, all)
}

func (s *HTTPServer) getUser(c *gin.Context) {
	u, err := s.users.GetUserByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		s.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, u)
}

func (s *HTTPServer) getUserHistory(c *gin.Context) {
	history, err := s.users.GetUserHistory(c.Request.Context(), c.Param("id"))
	if err != nil {
		s.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, history)
}

func (s *HTTPServer) searchUsers(c *gin.Context) {
	found, err := s.users.GetUserByName(c.Request.Context(), c.Query("firstName"), c.Query("lastName"))
	if err != nil {
		s.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, found)
}

func (s *HTTPServer) getUserByUsername(c *gin.Context) {
	u, err := s.users.GetUserByUsername(c.Request.Context(), c.Param("username"))
	if err != nil {
		s.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, u)
}

func (s *HTTPServer) updateUser(c *gin.Context) {
	id := c.Param("id")

	claims := claimsFrom(c)
	if claims == nil || claims.UserID != strings.TrimSpace(id) {
		c.JSON(http.StatusForbidden, gin.H{"error": "you can only update your own profile"})
		return
	}

	var in users.ProfileInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	u, err := s.users.UpdateUser(c.Request.Context(), id, in)
	if err != nil {
		s.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, u)
}

var statusBySentinel = []struct {
	err    error
	status int
}{
	{common.ErrValidation, http.StatusBadRequest},
	{common.ErrNotFound, http.StatusNotFound},
	{common.ErrAlreadyExists, http.StatusConflict},
	{common.ErrInvalidCredentials, http.StatusUnauthorized},
	{common.ErrInvalidToken, http.StatusUnauthorized},
	{common.ErrTokenExpired, http.StatusUnauthorized},
}

// writeError maps service errors to a status and a user-facing message.
// Unclassified errors are logged and reported as a bare 500.
func (s *HTTPServer) writeError(c *gin.Context, err error) {
	for _, m := range statusBySentinel {
		if errors.Is(err, m.err) {
			c.JSON(m.status, gin.H{"error": publicMessage(err, m.err)})
			return
		}
	}

	s.logger.Error(c.Request.Context(), "request failed", "error", err, "path", c.FullPath())
	c.JSON(http.StatusInternalServerError, gin.H{"error": common.ErrInternal.Error()})
}

// publicMessage drops the "<sentinel>: " prefix added by fmt.Errorf("%w: ...").
func publicMessage(err, sentinel error) string {
	msg := err.Error()
	if rest, ok := strings.CutPrefix(msg, sentinel.Error()+": "); ok {
		return rest
	}
	return msg
}
