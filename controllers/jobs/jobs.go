package jobsController

import (
	"strings"

	"skillflow/database"
	"skillflow/middleware"
	"skillflow/models"

	"github.com/gofiber/fiber/v2"
)

// JobMatch is a listing scored against the user's profile skills
type JobMatch struct {
	models.JobListing
	MatchScore    int      `json:"match_score"`
	MissingSkills []string `json:"missing_skills"`
}

// SearchJobs filters listings by keyword/location and ranks them by overlap
// with the user's profile skills
func SearchJobs(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var user models.User
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", userID, false).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "User not found!", nil)
	}

	keyword := strings.TrimSpace(c.Query("q"))
	location := strings.TrimSpace(c.Query("location"))

	db := database.Database.Db.Model(&models.JobListing{}).
		Where("is_deleted = ? AND is_active = ?", false, true)

	if keyword != "" {
		pattern := "%" + strings.ToLower(keyword) + "%"
		db = db.Where("LOWER(title) LIKE ? OR LOWER(company) LIKE ? OR LOWER(description) LIKE ?", pattern, pattern, pattern)
	}
	if location != "" {
		db = db.Where("LOWER(location) LIKE ?", "%"+strings.ToLower(location)+"%")
	}

	var listings []models.JobListing
	if err := db.Order("created_at desc").Limit(100).Find(&listings).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to search jobs!", nil)
	}

	matches := make([]JobMatch, len(listings))
	for i, job := range listings {
		score, missing := MatchScore(job.SkillsRequired, user.Skills)
		matches[i] = JobMatch{
			JobListing:    job,
			MatchScore:    score,
			MissingSkills: missing,
		}
	}

	// Highest match first, stable within equal scores.
	for i := 1; i < len(matches); i++ {
		for j := i; j > 0 && matches[j].MatchScore > matches[j-1].MatchScore; j-- {
			matches[j], matches[j-1] = matches[j-1], matches[j]
		}
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Jobs fetched successfully!", fiber.Map{
		"jobs":  matches,
		"total": len(matches),
	})
}

// MatchScore computes the percentage of required skills the user has, and the
// skills they are missing. Comparison is case-insensitive. A listing with no
// skill requirements matches everyone at 100.
func MatchScore(required []string, userSkills []string) (int, []string) {
	if len(required) == 0 {
		return 100, nil
	}

	have := make(map[string]bool, len(userSkills))
	for _, s := range userSkills {
		have[strings.ToLower(strings.TrimSpace(s))] = true
	}

	matched := 0
	var missing []string
	for _, s := range required {
		if have[strings.ToLower(strings.TrimSpace(s))] {
			matched++
		} else {
			missing = append(missing, s)
		}
	}

	return matched * 100 / len(required), missing
}

// CreateJobListing adds a listing to the job board. Admin only.
func CreateJobListing(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedJob").(*struct {
		Title          string   `json:"title"`
		Company        string   `json:"company"`
		Location       string   `json:"location"`
		Description    string   `json:"description"`
		ApplyURL       string   `json:"apply_url"`
		SkillsRequired []string `json:"skills_required"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	job := models.JobListing{
		Title:          reqData.Title,
		Company:        reqData.Company,
		Location:       reqData.Location,
		Description:    reqData.Description,
		ApplyURL:       reqData.ApplyURL,
		SkillsRequired: reqData.SkillsRequired,
	}

	if err := database.Database.Db.Create(&job).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create job listing!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Job listing created successfully!", job)
}

// DeactivateJobListing hides a listing from search. Admin only.
func DeactivateJobListing(c *fiber.Ctx) error {
	jobID := c.Locals("jobID").(uint)

	var job models.JobListing
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", jobID, false).First(&job).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Job listing not found!", nil)
	}

	if err := database.Database.Db.Model(&job).Update("is_active", false).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to deactivate job listing!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Job listing deactivated!", nil)
}
