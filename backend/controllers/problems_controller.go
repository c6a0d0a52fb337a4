package controllers

import (
	"net/url"

	"github.com/gofiber/fiber/v2"

	"codeprep/backend/config"
	"codeprep/backend/problems"
	"codeprep/backend/tracker"
	"codeprep/backend/utils"
)

type ProblemsController struct {
	Cfg    *config.Config
	Client *problems.Client
}

func NewProblemsController(cfg *config.Config) *ProblemsController {
	return &ProblemsController{Cfg: cfg, Client: problems.NewClient(cfg.CSVBaseURL)}
}

// ListCompanies returns the catalog, optionally filtered by ?search=.
func (pc *ProblemsController) ListCompanies(c *fiber.Ctx) error {
	matched := problems.FilterCompanies(c.Query("search"))
	if matched == nil {
		matched = []string{}
	}
	return c.JSON(fiber.Map{
		"companies": matched,
		"total":     len(problems.Companies),
	})
}

// GetCompanyProblems fetches and parses the company's upstream CSV. Rows
// are annotated with the problem key used by /api/solved and a solve link.
func (pc *ProblemsController) GetCompanyProblems(c *fiber.Ctx) error {
	company, err := url.PathUnescape(c.Params("company"))
	if err != nil {
		return utils.BadRequest(c, "Invalid company name")
	}
	if !problems.KnownCompany(company) {
		return utils.NotFound(c, "Unknown company")
	}

	rows, err := pc.Client.FetchCompany(c.UserContext(), company)
	if err != nil {
		return utils.BadGateway(c, err.Error())
	}

	type problemRow struct {
		problems.Problem
		Key string `json:"key"`
		URL string `json:"url"`
	}

	out := make([]problemRow, 0, len(rows))
	for _, p := range rows {
		out = append(out, problemRow{
			Problem: p,
			Key:     tracker.Key(company, p.Name),
			URL:     problems.LeetCodeURL(p.Name),
		})
	}

	return c.JSON(fiber.Map{
		"company":  company,
		"problems": out,
		"count":    len(out),
	})
}
