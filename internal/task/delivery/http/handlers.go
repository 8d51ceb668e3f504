package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"daily-priority-agent/internal/task"
	"daily-priority-agent/pkg/response"
)

// Prioritize godoc
// @Summary     Prioritize free-text tasks
// @Description Extracts tasks from comma-separated or free text and returns them in priority order. Always answers 200; failures yield an empty list.
// @Tags        Tasks
// @Accept      json
// @Produce     json
// @Param       body body prioritizeReq true "Raw tasks"
// @Success     200  {object} prioritizeResp
// @Router      /api/prioritize [POST]
func (h *handler) Prioritize(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processPrioritizeReq(c)
	if err != nil {
		h.l.Warnf(ctx, "task.delivery.Prioritize: bad request: %v", err)
		c.JSON(http.StatusOK, emptyPrioritizeResp())
		return
	}

	h.l.Infof(ctx, "task.delivery.Prioritize: user=%s input_length=%d", req.UserID, len(req.RawTasks))

	out, err := h.uc.PlanFromText(ctx, task.PlanFromTextInput{RawText: req.RawTasks})
	if err != nil {
		h.l.Warnf(ctx, "task.delivery.Prioritize: uc.PlanFromText: %v", err)
		c.JSON(http.StatusOK, emptyPrioritizeResp())
		return
	}

	c.JSON(http.StatusOK, h.newPrioritizeResp(out.Plan))
}

// CreatePlan godoc
// @Summary     Build a day plan
// @Description Builds the full plan from free text (raw_tasks) or structured tasks (tasks). today defaults to the server date.
// @Tags        Tasks
// @Accept      json
// @Produce     json
// @Param       body body createPlanReq true "Tasks to plan"
// @Success     200  {object} createPlanResp
// @Failure     400  {object} response.Resp "Bad Request"
// @Failure     422  {object} response.Resp "No tasks found"
// @Failure     500  {object} response.Resp "Internal Server Error"
// @Router      /api/v1/plans [POST]
func (h *handler) CreatePlan(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processCreatePlanReq(c)
	if err != nil {
		response.BadRequest(c, err)
		return
	}

	today, err := req.today()
	if err != nil {
		response.BadRequest(c, err)
		return
	}

	var out task.PlanOutput
	if req.fromText() {
		out, err = h.uc.PlanFromText(ctx, task.PlanFromTextInput{RawText: req.RawTasks, Today: today})
	} else {
		tasks := h.toTasks(ctx, req.Tasks)
		out, err = h.uc.PlanFromTasks(ctx, task.PlanFromTasksInput{Tasks: tasks, Today: today})
	}
	if err != nil {
		h.l.Errorf(ctx, "task.delivery.CreatePlan: %v", err)
		h.writeError(c, err)
		return
	}

	response.OK(c, h.newCreatePlanResp(out))
}

func (h *handler) writeError(c *gin.Context, err error) {
	response.Fail(c, h.mapError(err), err)
}
