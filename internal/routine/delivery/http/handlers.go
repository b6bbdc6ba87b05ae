package http

import (
	"errors"

	"github.com/gin-gonic/gin"

	"slack-routine-bot/internal/model"
	"slack-routine-bot/internal/routine"
	"slack-routine-bot/pkg/response"
)

// CreateTask godoc
// @Summary     Create a routine task
// @Description Adds a task to the catalog. Deadline uses HH:MM, days accept weekday names or "all".
// @Tags        Admin
// @Accept      json
// @Produce     json
// @Param       body body createTaskReq true "Task definition"
// @Success     200 {object} taskResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/admin/tasks [POST]
func (h *handler) CreateTask(c *gin.Context) {
	ctx := c.Request.Context()

	var req createTaskReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err, nil)
		return
	}
	if err := req.validate(); err != nil {
		response.Error(c, err, nil)
		return
	}

	created, err := h.uc.CreateTask(ctx, req.toDefinition())
	if err != nil {
		h.l.Errorf(ctx, "uc.CreateTask: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, newTaskResp(created))
}

// LookupTask godoc
// @Summary     Look a task up by name fragment
// @Description Case-insensitive substring search over the catalog.
// @Tags        Admin
// @Accept      json
// @Produce     json
// @Param       q query string true "Name fragment"
// @Success     200 {object} taskResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/admin/tasks/lookup [GET]
func (h *handler) LookupTask(c *gin.Context) {
	ctx := c.Request.Context()

	task, err := h.uc.FindTask(ctx, c.Query("q"))
	if err != nil {
		h.respondError(c, err)
		return
	}

	response.OK(c, newTaskResp(task))
}

// Assign godoc
// @Summary     Assign a task
// @Description Sets a task's assignee; an empty user_id clears it.
// @Tags        Admin
// @Accept      json
// @Produce     json
// @Param       body body assignReq true "Assignment"
// @Success     200 {object} response.Resp "OK"
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/admin/assign [POST]
func (h *handler) Assign(c *gin.Context) {
	ctx := c.Request.Context()

	var req assignReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err, nil)
		return
	}

	if err := h.uc.Assign(ctx, req.TaskName, req.UserID); err != nil {
		h.l.Errorf(ctx, "uc.Assign: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, nil)
}

// OpenSession godoc
// @Summary     Open a checklist session
// @Description Posts the day's checklist and resets the session. Defaults to debug mode; day simulates another weekday.
// @Tags        Admin
// @Accept      json
// @Produce     json
// @Param       body body openSessionReq true "Session options"
// @Success     200 {object} openSessionResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/admin/sessions/open [POST]
func (h *handler) OpenSession(c *gin.Context) {
	ctx := c.Request.Context()

	var req openSessionReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err, nil)
		return
	}

	out, err := h.uc.OpenSession(ctx, req.mode(), h.clock.Now(), req.Day)
	if err != nil {
		h.l.Errorf(ctx, "uc.OpenSession: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, newOpenSessionResp(req.mode(), out))
}

// Outstanding godoc
// @Summary     Show outstanding tasks
// @Description Returns the overdue and pending tasks of the production session as of now.
// @Tags        Admin
// @Accept      json
// @Produce     json
// @Param       mode query string false "Session mode (default: production)"
// @Success     200 {object} outstandingResp
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/admin/outstanding [GET]
func (h *handler) Outstanding(c *gin.Context) {
	ctx := c.Request.Context()

	mode := model.ModeProduction
	if c.Query("mode") == string(model.ModeDebug) {
		mode = model.ModeDebug
	}

	out, err := h.uc.ComputeOutstanding(ctx, mode, h.clock.Now())
	if err != nil {
		h.l.Errorf(ctx, "uc.ComputeOutstanding: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, newOutstandingResp(out))
}

// respondError translates engine errors into HTTP responses: validation
// failures are the caller's fault, store failures are ours.
func (h *handler) respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, routine.ErrEmptyTaskName),
		errors.Is(err, routine.ErrTaskNameTaken),
		errors.Is(err, routine.ErrTaskNotFound),
		errors.Is(err, routine.ErrNoTaskMatch):
		response.Error(c, err, nil)
	default:
		response.InternalError(c, err)
	}
}
