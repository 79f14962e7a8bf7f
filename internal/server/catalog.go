package server

import (
	"github.com/gin-gonic/gin"
	catalogdomain "github.com/nexcubelabs/nexcube/internal/catalog/domain"
)

// @Summary      List packages
// @Description  List active service packages for the marketing site
// @Tags         catalog
// @Produce      json
// @Param        category  query  string  false  "Category"
// @Success      200  {object}  DataResponse
// @Router       /packages [get]
func (s *Server) ListPackages(c *gin.Context) {
	packages, err := s.catalogSvc.ListPackages(c.Request.Context(), c.Query("category"))
	if err != nil {
		AbortWithError(c, err)
		return
	}
	respondData(c, packages)
}

// @Summary      Get package
// @Tags         catalog
// @Produce      json
// @Param        slug  path  string  true  "Package Slug"
// @Success      200  {object}  DataResponse
// @Router       /packages/{slug} [get]
func (s *Server) GetPackage(c *gin.Context) {
	pkg, err := s.catalogSvc.GetPackageBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		AbortWithError(c, err)
		return
	}
	respondData(c, pkg)
}

// @Summary      List portfolio
// @Tags         catalog
// @Produce      json
// @Param        category  query  string  false  "Category"
// @Success      200  {object}  DataResponse
// @Router       /portfolio [get]
func (s *Server) ListPortfolio(c *gin.Context) {
	entries, err := s.catalogSvc.ListPortfolio(c.Request.Context(), c.Query("category"))
	if err != nil {
		AbortWithError(c, err)
		return
	}
	respondData(c, entries)
}

// @Summary      Create package
// @Tags         catalog
// @Accept       json
// @Produce      json
// @Security     ApiKeyAuth
// @Param        request body catalogdomain.UpsertPackageRequest true "Package Request"
// @Success      200  {object}  DataResponse
// @Router       /admin/packages [post]
func (s *Server) CreatePackage(c *gin.Context) {
	var req catalogdomain.UpsertPackageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	pkg, err := s.catalogSvc.CreatePackage(c.Request.Context(), req)
	if err != nil {
		AbortWithError(c, err)
		return
	}
	respondData(c, pkg)
}

// @Summary      Update package
// @Tags         catalog
// @Accept       json
// @Produce      json
// @Security     ApiKeyAuth
// @Param        id       path  string                            true  "Package ID"
// @Param        request  body  catalogdomain.UpsertPackageRequest true "Package Request"
// @Success      200  {object}  DataResponse
// @Router       /admin/packages/{id} [put]
func (s *Server) UpdatePackage(c *gin.Context) {
	var req catalogdomain.UpsertPackageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}
	req.ID = c.Param("id")

	pkg, err := s.catalogSvc.UpdatePackage(c.Request.Context(), req)
	if err != nil {
		AbortWithError(c, err)
		return
	}
	respondData(c, pkg)
}

// @Summary      Delete package
// @Tags         catalog
// @Produce      json
// @Security     ApiKeyAuth
// @Param        id  path  string  true  "Package ID"
// @Success      200  {object}  DataResponse
// @Router       /admin/packages/{id} [delete]
func (s *Server) DeletePackage(c *gin.Context) {
	if err := s.catalogSvc.DeletePackage(c.Request.Context(), c.Param("id")); err != nil {
		AbortWithError(c, err)
		return
	}
	respondData(c, gin.H{"deleted": true})
}

// @Summary      Create portfolio entry
// @Tags         catalog
// @Accept       json
// @Produce      json
// @Security     ApiKeyAuth
// @Param        request body catalogdomain.UpsertPortfolioRequest true "Portfolio Request"
// @Success      200  {object}  DataResponse
// @Router       /admin/portfolio [post]
func (s *Server) CreatePortfolio(c *gin.Context) {
	var req catalogdomain.UpsertPortfolioRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	entry, err := s.catalogSvc.CreatePortfolio(c.Request.Context(), req)
	if err != nil {
		AbortWithError(c, err)
		return
	}
	respondData(c, entry)
}

// @Summary      Update portfolio entry
// @Tags         catalog
// @Accept       json
// @Produce      json
// @Security     ApiKeyAuth
// @Param        id       path  string                              true  "Portfolio ID"
// @Param        request  body  catalogdomain.UpsertPortfolioRequest true "Portfolio Request"
// @Success      200  {object}  DataResponse
// @Router       /admin/portfolio/{id} [put]
func (s *Server) UpdatePortfolio(c *gin.Context) {
	var req catalogdomain.UpsertPortfolioRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}
	req.ID = c.Param("id")

	entry, err := s.catalogSvc.UpdatePortfolio(c.Request.Context(), req)
	if err != nil {
		AbortWithError(c, err)
		return
	}
	respondData(c, entry)
}

// @Summary      Delete portfolio entry
// @Tags         catalog
// @Produce      json
// @Security     ApiKeyAuth
// @Param        id  path  string  true  "Portfolio ID"
// @Success      200  {object}  DataResponse
// @Router       /admin/portfolio/{id} [delete]
func (s *Server) DeletePortfolio(c *gin.Context) {
	if err := s.catalogSvc.DeletePortfolio(c.Request.Context(), c.Param("id")); err != nil {
		AbortWithError(c, err)
		return
	}
	respondData(c, gin.H{"deleted": true})
}
