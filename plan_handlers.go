package main

import (
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"lg/metabolic-plan-api/plan"
)

// calculatePlan computes a plan and meal suggestions for the posted profile.
// POST /api/plan. In date mode the goal date must be a valid YYYY-MM-DD
// strictly after today.
func (h *Handler) calculatePlan(c *gin.Context) {
	req, p, profile, ok := h.bindPlanRequest(c, false)
	if !ok {
		return
	}

	result := p.Compute(profile)
	c.JSON(http.StatusOK, planResponse{
		Client:   req,
		Plan:     result,
		MealPlan: p.BuildMealPlan(profile.Goal, profile.DietPreference, result.Calories),
	})
}

// planReport returns the plan as an .xlsx download.
// POST /api/plan/report. Same body as /api/plan, but an unparseable goal
// date falls back to today instead of failing.
func (h *Handler) planReport(c *gin.Context) {
	req, p, profile, ok := h.bindPlanRequest(c, true)
	if !ok {
		return
	}

	result := p.Compute(profile)
	meals := p.BuildMealPlan(profile.Goal, profile.DietPreference, result.Calories)

	buf, err := buildReportWorkbook(req, result, meals)
	if err != nil {
		log.Printf("[planReport] workbook error: %v", err)
		apiError(c, http.StatusInternalServerError, "failed to build report")
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, reportFilename(req.LastName)))
	c.Data(http.StatusOK, xlsxContentType, buf.Bytes())
}

// bindPlanRequest parses and validates the request body, picks the planner
// for the requested mode and builds the core profile. On failure it writes
// the error response and returns ok=false.
func (h *Handler) bindPlanRequest(c *gin.Context, lenientDate bool) (planRequest, *plan.Planner, plan.ClientProfile, bool) {
	var req planRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Printf("[bindPlanRequest] bind error: %v", err)
		apiError(c, http.StatusBadRequest, "invalid request body")
		return req, nil, plan.ClientProfile{}, false
	}

	mode := h.defaultMode
	switch {
	case req.Mode != "":
		m, ok := plan.ParseMode(req.Mode)
		if !ok {
			apiError(c, http.StatusBadRequest, "mode must be one of: date, intensity")
			return req, nil, plan.ClientProfile{}, false
		}
		mode = m
	case req.GoalDate != "":
		mode = plan.DateMode
	}

	profile := req.profile()
	if mode == plan.DateMode {
		if req.GoalWeight <= 0 {
			apiError(c, http.StatusBadRequest, "goal_weight is required for date mode")
			return req, nil, plan.ClientProfile{}, false
		}
		goalDate, msg := h.parseGoalDate(req.GoalDate, lenientDate)
		if msg != "" {
			apiError(c, http.StatusBadRequest, msg)
			return req, nil, plan.ClientProfile{}, false
		}
		profile.GoalDate = goalDate
	}

	return req, h.planners[mode], profile, true
}

// parseGoalDate returns the goal date, or a client-facing error message.
// When lenient, anything unparseable becomes today and past dates pass
// through for the core to clamp.
func (h *Handler) parseGoalDate(s string, lenient bool) (time.Time, string) {
	now := h.now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)

	d, err := time.Parse(dateLayout, s)
	if err != nil {
		if lenient {
			return today, ""
		}
		return time.Time{}, "please enter a valid goal date, expected YYYY-MM-DD"
	}
	if !lenient && !d.After(today) {
		return time.Time{}, "goal date must be in the future"
	}
	return d, ""
}
