// work.go - freelance work marketplace endpoints

package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"karigar-backend/middleware"
	"karigar-backend/models"
	"karigar-backend/store"
)

type PostWorkInput struct {
	Title       string `json:"title" binding:"required"`
	Budget      string `json:"budget" binding:"required"`
	Duration    string `json:"duration" binding:"required"`
	Description string `json:"description" binding:"required"`
}

type ProposalInput struct {
	ProjectID  int    `json:"projectId" binding:"required"`
	Phone      string `json:"phone" binding:"required"`
	Message    string `json:"message"`
	Experience string `json:"experience"`
	Price      string `json:"price"`
}

func (a *API) PostWork(c *gin.Context) {
	var input PostWorkInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
		return
	}
	work := models.Work{
		Title:       input.Title,
		Budget:      input.Budget,
		Duration:    input.Duration,
		Description: input.Description,
		PostedBy:    c.GetString(middleware.ContextUserID),
	}
	if err := a.Store.CreateWork(c.Request.Context(), &work); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "name": work.Title})
}

// AllWorks lists every work except the caller's own.
func (a *API) AllWorks(c *gin.Context) {
	works, err := a.Store.ListWorksExcluding(c.Request.Context(), c.GetString(middleware.ContextUserID))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, works)
}

// MyProjects lists only the works the caller posted.
func (a *API) MyProjects(c *gin.Context) {
	works, err := a.Store.ListWorksBy(c.Request.Context(), c.GetString(middleware.ContextUserID))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, works)
}

func (a *API) ProjectByID(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid project id"})
		return
	}
	work, err := a.Store.GetWorkByID(c.Request.Context(), id)
	if errors.Is(err, store.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "project not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, work)
}

// SubmitProposal attaches the caller's proposal to a work. The sender name
// and email come from the caller's profile; a sender may propose on a given
// work only once.
func (a *API) SubmitProposal(c *gin.Context) {
	var input ProposalInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	user, err := a.Store.GetUserByID(c.Request.Context(), c.GetString(middleware.ContextUserID))
	if errors.Is(err, store.ErrNotFound) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "user not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	proposal := models.Proposal{
		SenderName:    user.Name,
		SenderEmail:   user.Email,
		SenderPhone:   input.Phone,
		SenderMessage: input.Message,
		Experience:    input.Experience,
		Price:         input.Price,
	}
	work, err := a.Store.AddProposal(c.Request.Context(), input.ProjectID, proposal)
	switch {
	case errors.Is(err, store.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "project not found"})
	case errors.Is(err, store.ErrDuplicateProposal):
		c.JSON(http.StatusBadRequest, gin.H{"error": "You have already sent a proposal"})
	case err != nil:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusOK, work)
	}
}

func (a *API) DeleteProject(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "invalid project id"})
		return
	}
	err = a.Store.DeleteWorkByID(c.Request.Context(), id)
	if errors.Is(err, store.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "project not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}
