package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
	invoicedomain "github.com/nexcubelabs/nexcube/internal/invoice/domain"
)

// @Summary      Create invoice
// @Description  Create an invoice; the amount is computed from the breakdown items
// @Tags         invoices
// @Accept       json
// @Produce      json
// @Security     ApiKeyAuth
// @Param        request body invoicedomain.CreateRequest true "Create Invoice Request"
// @Success      200  {object}  DataResponse
// @Router       /admin/invoices [post]
func (s *Server) CreateInvoice(c *gin.Context) {
	var req invoicedomain.CreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	resp, err := s.invoiceSvc.Create(c.Request.Context(), req)
	if err != nil {
		AbortWithError(c, err)
		return
	}
	respondData(c, resp)
}

// @Summary      List invoices
// @Tags         invoices
// @Produce      json
// @Security     ApiKeyAuth
// @Param        status    query  string  false  "Status"
// @Param        service   query  string  false  "Service"
// @Param        client_id query  string  false  "Client ID"
// @Param        page      query  int     false  "Page"
// @Param        page_size query  int     false  "Page Size"
// @Success      200  {object}  ListResponse
// @Router       /admin/invoices [get]
func (s *Server) ListInvoices(c *gin.Context) {
	var req invoicedomain.ListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	resp, err := s.invoiceSvc.List(c.Request.Context(), req)
	if err != nil {
		AbortWithError(c, err)
		return
	}
	respondList(c, resp.Invoices, &resp.PageInfo)
}

// @Summary      Get invoice
// @Tags         invoices
// @Produce      json
// @Security     ApiKeyAuth
// @Param        id  path  string  true  "Invoice ID"
// @Success      200  {object}  DataResponse
// @Router       /admin/invoices/{id} [get]
func (s *Server) GetInvoice(c *gin.Context) {
	resp, err := s.invoiceSvc.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		AbortWithError(c, err)
		return
	}
	respondData(c, resp)
}

// @Summary      Invoice PDF
// @Description  Render the printable kwitansi for the invoice
// @Tags         invoices
// @Produce      application/pdf
// @Security     ApiKeyAuth
// @Param        id  path  string  true  "Invoice ID"
// @Success      200  {file}  binary
// @Router       /admin/invoices/{id}/pdf [get]
func (s *Server) InvoicePDF(c *gin.Context) {
	pdf, err := s.invoiceSvc.RenderPDF(c.Request.Context(), c.Param("id"))
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.Header("Content-Disposition", `inline; filename="kwitansi.pdf"`)
	c.Data(http.StatusOK, "application/pdf", pdf)
}

// @Summary      Update invoice
// @Description  Update invoice fields; any breakdown change recomputes the amount
// @Tags         invoices
// @Accept       json
// @Produce      json
// @Security     ApiKeyAuth
// @Param        id       path  string                      true  "Invoice ID"
// @Param        request  body  invoicedomain.UpdateRequest true  "Update Request"
// @Success      200  {object}  DataResponse
// @Router       /admin/invoices/{id} [put]
func (s *Server) UpdateInvoice(c *gin.Context) {
	var req invoicedomain.UpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}
	req.ID = c.Param("id")

	resp, err := s.invoiceSvc.Update(c.Request.Context(), req)
	if err != nil {
		AbortWithError(c, err)
		return
	}
	respondData(c, resp)
}

// @Summary      Delete invoice
// @Tags         invoices
// @Produce      json
// @Security     ApiKeyAuth
// @Param        id  path  string  true  "Invoice ID"
// @Success      200  {object}  DataResponse
// @Router       /admin/invoices/{id} [delete]
func (s *Server) DeleteInvoice(c *gin.Context) {
	if err := s.invoiceSvc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		AbortWithError(c, err)
		return
	}
	respondData(c, gin.H{"deleted": true})
}
