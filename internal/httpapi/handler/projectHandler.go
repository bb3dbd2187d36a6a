package handler

import (
	"errors"
	"net/http"
	"strconv"

	"portfoliohub/internal/httpapi/dto"
	"portfoliohub/internal/httpapi/middleware"
	"portfoliohub/internal/httpapi/models"
	"portfoliohub/internal/httpapi/repository"
	"portfoliohub/internal/httpapi/service"
	"portfoliohub/internal/storage"

	"github.com/gin-gonic/gin"
)

type ProjectHandler struct {
	projectService service.ProjectService
	uploads        *storage.Store
}

func NewProjectHandler(projectService service.ProjectService, uploads *storage.Store) *ProjectHandler {
	return &ProjectHandler{
		projectService: projectService,
		uploads:        uploads,
	}
}

// Home returns the landing page selection
// GET /
func (h *ProjectHandler) Home(c *gin.Context) {
	home, err := h.projectService.Home(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load projects"})
		return
	}
	c.JSON(http.StatusOK, home)
}

// List returns the published projects, optionally narrowed by category
// and search term
// GET /projects?category=&search=
func (h *ProjectHandler) List(c *gin.Context) {
	filter := repository.ProjectFilter{
		Category: c.Query("category"),
		Search:   c.Query("search"),
	}

	projects, err := h.projectService.ListPublished(c.Request.Context(), filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load projects"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"projects":   projects,
		"categories": models.ProjectCategories,
	})
}

// Detail returns one project with comments and like state. Drafts 404
// for anyone but admins.
// GET /project/:id
func (h *ProjectHandler) Detail(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid project ID"})
		return
	}

	actor := middleware.CurrentActor(c)
	detail, err := h.projectService.Detail(c.Request.Context(), actor, id)
	if err != nil {
		if errors.Is(err, service.ErrProjectNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Project not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load project"})
		return
	}

	c.JSON(http.StatusOK, detail)
}

// Share redirects to the LinkedIn share dialog for a published project
// GET /share_linkedin/:id
func (h *ProjectHandler) Share(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid project ID"})
		return
	}

	shareURL, err := h.projectService.ShareURL(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrProjectNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Project not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to build share link"})
		return
	}

	c.Redirect(http.StatusFound, shareURL)
}

// AdminList returns every project including drafts
// GET /admin/projects
func (h *ProjectHandler) AdminList(c *gin.Context) {
	actor := middleware.CurrentActor(c)
	projects, err := h.projectService.ListAll(c.Request.Context(), actor)
	if err != nil {
		respondProjectError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"projects": projects})
}

// Create adds a project from a multipart form with an optional image
// POST /admin/project/new
func (h *ProjectHandler) Create(c *gin.Context) {
	var form dto.ProjectForm
	if err := c.ShouldBind(&form); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	imagePath, err := h.saveImage(c)
	if err != nil {
		respondUploadError(c, err)
		return
	}

	actor := middleware.CurrentActor(c)
	project, err := h.projectService.Create(c.Request.Context(), actor, form, imagePath)
	if err != nil {
		respondProjectError(c, err)
		return
	}

	c.JSON(http.StatusCreated, project)
}

// Update edits a project; the stored image survives unless a new upload
// comes with the form
// POST /admin/project/:id/edit
func (h *ProjectHandler) Update(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid project ID"})
		return
	}

	var form dto.ProjectForm
	if err := c.ShouldBind(&form); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	imagePath, err := h.saveImage(c)
	if err != nil {
		respondUploadError(c, err)
		return
	}

	actor := middleware.CurrentActor(c)
	project, err := h.projectService.Update(c.Request.Context(), actor, id, form, imagePath)
	if err != nil {
		respondProjectError(c, err)
		return
	}

	c.JSON(http.StatusOK, project)
}

// Delete removes a project along with its comments and likes
// POST /admin/project/:id/delete
func (h *ProjectHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid project ID"})
		return
	}

	actor := middleware.CurrentActor(c)
	if err := h.projectService.Delete(c.Request.Context(), actor, id); err != nil {
		respondProjectError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Project deleted successfully"})
}

// saveImage stores the optional "image" file part. Returns "" when the
// request carries no image.
func (h *ProjectHandler) saveImage(c *gin.Context) (string, error) {
	fileHeader, err := c.FormFile("image")
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) {
			return "", nil
		}
		return "", err
	}

	f, err := fileHeader.Open()
	if err != nil {
		return "", err
	}
	defer f.Close()

	return h.uploads.Save(fileHeader.Filename, f)
}

func respondProjectError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrProjectNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Project not found"})
	case errors.Is(err, service.ErrUnauthorized):
		c.JSON(http.StatusForbidden, gin.H{"error": "Access denied"})
	case errors.Is(err, service.ErrInvalidCategory):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Request failed"})
	}
}

func respondUploadError(c *gin.Context, err error) {
	if errors.Is(err, storage.ErrUnsupportedType) || errors.Is(err, storage.ErrFileTooLarge) {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusInternalServerError, gin.H{"error": "Upload failed"})
}
