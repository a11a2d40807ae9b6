package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/gauravchand/vibe-task-board/internal/task"
)

type errorResponse struct {
	Detail string `json:"detail"`
}

type statusResponse struct {
	Status string `json:"status" example:"deleted"`
}

// createTaskRequest accepts an id for symmetry with Task; it is ignored.
type createTaskRequest struct {
	ID        *string `json:"id"`
	Title     *string `json:"title" binding:"required" example:"Water the plants"`
	Completed bool    `json:"completed"`
}

type taskHandler struct {
	svc *task.Service
}

// list godoc
//
//	@Summary	List all tasks
//	@Tags		tasks
//	@Produce	json
//	@Success	200	{array}		task.Task
//	@Failure	500	{object}	errorResponse
//	@Router		/api/tasks [get]
func (h *taskHandler) list(c *gin.Context) {
	tasks, err := h.svc.List(c.Request.Context())
	if err != nil {
		internalError(c, err)
		return
	}
	c.JSON(http.StatusOK, tasks)
}

// create godoc
//
//	@Summary	Create a task
//	@Tags		tasks
//	@Accept		json
//	@Produce	json
//	@Param		task	body		createTaskRequest	true	"New task"
//	@Success	200		{object}	task.Task
//	@Failure	422		{object}	errorResponse
//	@Failure	500		{object}	errorResponse
//	@Router		/api/tasks [post]
func (h *taskHandler) create(c *gin.Context) {
	var req createTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, errorResponse{Detail: err.Error()})
		return
	}

	t, err := h.svc.Create(c.Request.Context(), *req.Title, req.Completed)
	if err != nil {
		internalError(c, err)
		return
	}
	c.JSON(http.StatusOK, t)
}

// toggleComplete godoc
//
//	@Summary	Flip a task's completed flag
//	@Tags		tasks
//	@Produce	json
//	@Param		id	path		string	true	"Task ID"
//	@Success	200	{object}	task.Task
//	@Failure	404	{object}	errorResponse
//	@Failure	500	{object}	errorResponse
//	@Router		/api/tasks/{id}/complete [put]
func (h *taskHandler) toggleComplete(c *gin.Context) {
	t, err := h.svc.ToggleComplete(c.Request.Context(), c.Param("id"))
	if errors.Is(err, task.ErrNotFound) {
		c.JSON(http.StatusNotFound, errorResponse{Detail: "Task not found"})
		return
	}
	if err != nil {
		internalError(c, err)
		return
	}
	c.JSON(http.StatusOK, t)
}

// delete godoc
//
//	@Summary	Delete a task
//	@Tags		tasks
//	@Produce	json
//	@Param		id	path		string	true	"Task ID"
//	@Success	200	{object}	statusResponse
//	@Failure	404	{object}	errorResponse
//	@Failure	500	{object}	errorResponse
//	@Router		/api/tasks/{id} [delete]
func (h *taskHandler) delete(c *gin.Context) {
	err := h.svc.Delete(c.Request.Context(), c.Param("id"))
	if errors.Is(err, task.ErrNotFound) {
		c.JSON(http.StatusNotFound, errorResponse{Detail: "Not found"})
		return
	}
	if err != nil {
		internalError(c, err)
		return
	}
	c.JSON(http.StatusOK, statusResponse{Status: "deleted"})
}

func internalError(c *gin.Context, err error) {
	_ = c.Error(err)
	c.JSON(http.StatusInternalServerError, errorResponse{Detail: err.Error()})
}
