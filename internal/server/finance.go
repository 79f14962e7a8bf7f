package server

import (
	"time"

	"github.com/gin-gonic/gin"
	financedomain "github.com/nexcubelabs/nexcube/internal/finance/domain"
	"github.com/nexcubelabs/nexcube/internal/subscription"
)

// @Summary      Create finance record
// @Tags         finances
// @Accept       json
// @Produce      json
// @Security     ApiKeyAuth
// @Param        request body financedomain.CreateRequest true "Create Record Request"
// @Success      200  {object}  DataResponse
// @Router       /admin/finances [post]
func (s *Server) CreateFinanceRecord(c *gin.Context) {
	var req financedomain.CreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	resp, err := s.financeSvc.Create(c.Request.Context(), req)
	if err != nil {
		AbortWithError(c, err)
		return
	}
	respondData(c, resp)
}

// @Summary      List finance records
// @Tags         finances
// @Produce      json
// @Security     ApiKeyAuth
// @Param        type      query  string  false  "Type"
// @Param        status    query  string  false  "Status"
// @Param        from      query  string  false  "From (YYYY-MM-DD)"
// @Param        to        query  string  false  "To (YYYY-MM-DD)"
// @Param        page      query  int     false  "Page"
// @Param        page_size query  int     false  "Page Size"
// @Success      200  {object}  ListResponse
// @Router       /admin/finances [get]
func (s *Server) ListFinanceRecords(c *gin.Context) {
	var req financedomain.ListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	resp, err := s.financeSvc.List(c.Request.Context(), req)
	if err != nil {
		AbortWithError(c, err)
		return
	}
	respondList(c, resp.Records, &resp.PageInfo)
}

// @Summary      Finance summary
// @Description  Income, expense, and net over the period; defaults to the current month
// @Tags         finances
// @Produce      json
// @Security     ApiKeyAuth
// @Param        from  query  string  false  "From (YYYY-MM-DD)"
// @Param        to    query  string  false  "To (YYYY-MM-DD)"
// @Success      200  {object}  DataResponse
// @Router       /admin/finances/summary [get]
func (s *Server) FinanceSummary(c *gin.Context) {
	now := time.Now().UTC()
	from := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 1, 0).Add(-time.Nanosecond)

	if parsed := subscription.ParseDate(c.Query("from")); parsed != nil {
		from = *parsed
	}
	if parsed := subscription.ParseDate(c.Query("to")); parsed != nil {
		to = *parsed
	}

	resp, err := s.financeSvc.Summary(c.Request.Context(), from, to)
	if err != nil {
		AbortWithError(c, err)
		return
	}
	respondData(c, resp)
}

// @Summary      Get finance record
// @Tags         finances
// @Produce      json
// @Security     ApiKeyAuth
// @Param        id  path  string  true  "Record ID"
// @Success      200  {object}  DataResponse
// @Router       /admin/finances/{id} [get]
func (s *Server) GetFinanceRecord(c *gin.Context) {
	resp, err := s.financeSvc.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		AbortWithError(c, err)
		return
	}
	respondData(c, resp)
}

// @Summary      Update finance record
// @Tags         finances
// @Accept       json
// @Produce      json
// @Security     ApiKeyAuth
// @Param        id       path  string                      true  "Record ID"
// @Param        request  body  financedomain.UpdateRequest true  "Update Request"
// @Success      200  {object}  DataResponse
// @Router       /admin/finances/{id} [put]
func (s *Server) UpdateFinanceRecord(c *gin.Context) {
	var req financedomain.UpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}
	req.ID = c.Param("id")

	resp, err := s.financeSvc.Update(c.Request.Context(), req)
	if err != nil {
		AbortWithError(c, err)
		return
	}
	respondData(c, resp)
}

// @Summary      Delete finance record
// @Tags         finances
// @Produce      json
// @Security     ApiKeyAuth
// @Param        id  path  string  true  "Record ID"
// @Success      200  {object}  DataResponse
// @Router       /admin/finances/{id} [delete]
func (s *Server) DeleteFinanceRecord(c *gin.Context) {
	if err := s.financeSvc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		AbortWithError(c, err)
		return
	}
	respondData(c, gin.H{"deleted": true})
}
