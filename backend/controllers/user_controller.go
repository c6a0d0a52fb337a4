package controllers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"codeprep/backend/config"
	"codeprep/backend/models"
	"codeprep/backend/store"
	"codeprep/backend/tracker"
	"codeprep/backend/utils"
)

type UserController struct {
	Store store.Users
	Cfg   *config.Config
}

func NewUserController(st store.Users, cfg *config.Config) *UserController {
	return &UserController{Store: st, Cfg: cfg}
}

// GetUser returns the account's tracking fields for the dashboard and the
// problem tables.
func (uc *UserController) GetUser(c *fiber.Ctx) error {
	type userInput struct {
		Email string `json:"email"`
	}

	var req userInput
	if err := c.BodyParser(&req); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}

	user, err := uc.Store.FindByEmail(req.Email)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return utils.NotFound(c, "User not found")
		}
		return utils.BadRequest(c, err.Error())
	}

	return c.JSON(trackingFields(user))
}

// UpdateSolved applies one add/remove toggle and persists the record.
func (uc *UserController) UpdateSolved(c *fiber.Ctx) error {
	type solvedInput struct {
		Email     string `json:"email"`
		ProblemID string `json:"problemId"`
		Action    string `json:"action"`
	}

	var req solvedInput
	if err := c.BodyParser(&req); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}
	if req.ProblemID == "" {
		return utils.BadRequest(c, "problemId is required")
	}

	user, err := uc.Store.FindByEmail(req.Email)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return utils.NotFound(c, "User not found")
		}
		return utils.BadRequest(c, err.Error())
	}

	if err := tracker.Apply(user, req.ProblemID, req.Action, tracker.Today()); err != nil {
		return utils.BadRequest(c, err.Error())
	}

	if err := uc.Store.Save(user); err != nil {
		return utils.BadRequest(c, err.Error())
	}

	return c.JSON(fiber.Map{
		"message": "Solved data updated",
		"user":    trackingFields(user),
	})
}

// Dashboard returns the derived statistics for the authenticated account.
func (uc *UserController) Dashboard(c *fiber.Ctx) error {
	email, _ := c.Locals("email").(string)

	user, err := uc.Store.FindByEmail(email)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return utils.NotFound(c, "User not found")
		}
		return utils.BadRequest(c, err.Error())
	}

	streaks := tracker.Streaks(user.SolvedDates)
	heatmap := tracker.Heatmap(user.SolvedDates, user.Recent)
	progress := tracker.Progress(len(user.Solved), uc.Cfg.TotalProblems)

	// Last three actions, most recent first.
	recent := user.Recent
	if len(recent) > 3 {
		recent = recent[len(recent)-3:]
	}
	feed := make([]models.RecentActivity, 0, len(recent))
	for i := len(recent) - 1; i >= 0; i-- {
		feed = append(feed, recent[i])
	}

	return c.JSON(fiber.Map{
		"email":       user.Email,
		"solvedCount": len(user.Solved),
		"progress":    progress,
		"streaks":     streaks,
		"heatmap":     heatmap,
		"recent":      feed,
	})
}

// trackingFields coerces nil slices so the JSON always carries arrays.
func trackingFields(user *models.User) fiber.Map {
	solved := user.Solved
	if solved == nil {
		solved = []string{}
	}
	dates := user.SolvedDates
	if dates == nil {
		dates = []string{}
	}
	recent := user.Recent
	if recent == nil {
		recent = []models.RecentActivity{}
	}
	return fiber.Map{
		"email":       user.Email,
		"solved":      solved,
		"solvedDates": dates,
		"recent":      recent,
	}
}
