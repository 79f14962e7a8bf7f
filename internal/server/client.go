package server

import (
	"github.com/gin-gonic/gin"
	clientdomain "github.com/nexcubelabs/nexcube/internal/client/domain"
)

// @Summary      Submit contact
// @Description  Accept a public contact-form submission
// @Tags         contact
// @Accept       json
// @Produce      json
// @Param        request body clientdomain.SubmitContactRequest true "Contact Request"
// @Success      200  {object}  DataResponse
// @Router       /contact [post]
func (s *Server) SubmitContact(c *gin.Context) {
	var req clientdomain.SubmitContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	resp, err := s.clientSvc.SubmitContact(c.Request.Context(), req)
	if err != nil {
		AbortWithError(c, err)
		return
	}
	respondData(c, resp)
}

// @Summary      List clients
// @Description  List client records with optional status, service, and search filters
// @Tags         clients
// @Produce      json
// @Security     ApiKeyAuth
// @Param        status    query  string  false  "Status"
// @Param        service   query  string  false  "Service"
// @Param        search    query  string  false  "Search"
// @Param        page      query  int     false  "Page"
// @Param        page_size query  int     false  "Page Size"
// @Success      200  {object}  ListResponse
// @Router       /admin/clients [get]
func (s *Server) ListClients(c *gin.Context) {
	var req clientdomain.ListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	resp, err := s.clientSvc.List(c.Request.Context(), req)
	if err != nil {
		AbortWithError(c, err)
		return
	}
	respondList(c, resp.Clients, &resp.PageInfo)
}

// @Summary      Get client
// @Tags         clients
// @Produce      json
// @Security     ApiKeyAuth
// @Param        id  path  string  true  "Client ID"
// @Success      200  {object}  DataResponse
// @Router       /admin/clients/{id} [get]
func (s *Server) GetClient(c *gin.Context) {
	resp, err := s.clientSvc.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		AbortWithError(c, err)
		return
	}
	respondData(c, resp)
}

// @Summary      Update client
// @Description  Update client fields, including the hosting package assignment
// @Tags         clients
// @Accept       json
// @Produce      json
// @Security     ApiKeyAuth
// @Param        id       path  string                     true  "Client ID"
// @Param        request  body  clientdomain.UpdateRequest true  "Update Request"
// @Success      200  {object}  DataResponse
// @Router       /admin/clients/{id} [put]
func (s *Server) UpdateClient(c *gin.Context) {
	var req clientdomain.UpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}
	req.ID = c.Param("id")

	resp, err := s.clientSvc.Update(c.Request.Context(), req)
	if err != nil {
		AbortWithError(c, err)
		return
	}
	respondData(c, resp)
}

// @Summary      Delete client
// @Tags         clients
// @Produce      json
// @Security     ApiKeyAuth
// @Param        id  path  string  true  "Client ID"
// @Success      200  {object}  DataResponse
// @Router       /admin/clients/{id} [delete]
func (s *Server) DeleteClient(c *gin.Context) {
	if err := s.clientSvc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		AbortWithError(c, err)
		return
	}
	respondData(c, gin.H{"deleted": true})
}
