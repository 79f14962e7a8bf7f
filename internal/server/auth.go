package server

import (
	"github.com/gin-gonic/gin"
	authdomain "github.com/nexcubelabs/nexcube/internal/auth/domain"
)

// @Summary      Login
// @Description  Authenticate a dashboard user and open a session
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request body authdomain.LoginRequest true "Login Request"
// @Success      200  {object}  DataResponse
// @Router       /auth/login [post]
func (s *Server) Login(c *gin.Context) {
	var req authdomain.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	session, err := s.authSvc.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		AbortWithError(c, err)
		return
	}
	respondData(c, session)
}

// @Summary      Logout
// @Description  Invalidate the current session
// @Tags         auth
// @Produce      json
// @Security     ApiKeyAuth
// @Success      200  {object}  DataResponse
// @Router       /auth/logout [post]
func (s *Server) Logout(c *gin.Context) {
	if err := s.authSvc.Logout(c.Request.Context(), bearerToken(c)); err != nil {
		AbortWithError(c, err)
		return
	}
	respondData(c, gin.H{"logged_out": true})
}

// @Summary      Current session
// @Description  Return the authenticated session
// @Tags         auth
// @Produce      json
// @Security     ApiKeyAuth
// @Success      200  {object}  DataResponse
// @Router       /auth/me [get]
func (s *Server) Me(c *gin.Context) {
	session := sessionFromContext(c)
	if session == nil {
		AbortWithError(c, authdomain.ErrUnauthorized)
		return
	}
	respondData(c, session)
}
