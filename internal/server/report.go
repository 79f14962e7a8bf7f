package server

import (
	"strconv"

	"github.com/gin-gonic/gin"
)

// @Summary      Dashboard stats
// @Description  Client, invoice, and current-month finance aggregates
// @Tags         reports
// @Produce      json
// @Security     ApiKeyAuth
// @Success      200  {object}  DataResponse
// @Router       /admin/reports/dashboard [get]
func (s *Server) Dashboard(c *gin.Context) {
	stats, err := s.reportSvc.Dashboard(c.Request.Context())
	if err != nil {
		AbortWithError(c, err)
		return
	}
	respondData(c, stats)
}

// @Summary      Monthly report
// @Description  Trailing income and expense series, oldest month first
// @Tags         reports
// @Produce      json
// @Security     ApiKeyAuth
// @Param        months  query  int  false  "Months (1-24, default 6)"
// @Success      200  {object}  DataResponse
// @Router       /admin/reports/monthly [get]
func (s *Server) MonthlyReport(c *gin.Context) {
	months, _ := strconv.Atoi(c.Query("months"))

	report, err := s.reportSvc.Monthly(c.Request.Context(), months)
	if err != nil {
		AbortWithError(c, err)
		return
	}
	respondData(c, report)
}
