package utils

import (
	"log"
	"time"

	"skillflow/database"
	"skillflow/models"
	courseModels "skillflow/models/course"

	"github.com/robfig/cron/v3"
)

// logScheduler logs scheduler events with timestamp
func logScheduler(message string) {
	log.Printf("[SCHEDULER %s] %s", time.Now().Format(time.RFC3339), message)
}

// recomputeTrending refreshes course ratings from views and enrollments.
// Rating is a 0-5 popularity score shown on the course cards.
func recomputeTrending() {
	db := database.Database.Db

	var courses []courseModels.Course
	if err := db.Where("is_deleted = ? AND status = ?", false, "ACTIVE").Find(&courses).Error; err != nil {
		logScheduler("Error fetching courses for trending recompute: " + err.Error())
		return
	}

	var maxViews int64 = 1
	for _, c := range courses {
		if c.ViewCount > maxViews {
			maxViews = c.ViewCount
		}
	}

	for _, c := range courses {
		var enrollments int64
		db.Model(&courseModels.Enrollment{}).Where("course_id = ? AND is_deleted = ?", c.ID, false).Count(&enrollments)

		// Views dominate, enrollments break ties.
		score := (c.ViewCount*4)/maxViews + min64(enrollments, 1)
		if score > 5 {
			score = 5
		}
		if uint(score) != c.Rating {
			db.Model(&courseModels.Course{}).Where("id = ?", c.ID).Update("rating", uint(score))
		}
	}

	logScheduler("Trending recompute finished")
}

// purgeSoftDeleted removes rows soft-deleted more than 90 days ago
func purgeSoftDeleted() {
	db := database.Database.Db
	cutoff := time.Now().AddDate(0, 0, -90)

	for _, model := range []interface{}{
		&courseModels.Course{},
		&courseModels.Module{},
		&courseModels.ModuleContent{},
		&courseModels.Quiz{},
		&courseModels.Enrollment{},
		&models.JobListing{},
	} {
		if err := db.Unscoped().Where("is_deleted = ? AND updated_at < ?", true, cutoff).Delete(model).Error; err != nil {
			logScheduler("Error purging soft-deleted rows: " + err.Error())
		}
	}

	logScheduler("Soft-delete purge finished")
}

// sendWeeklyDigests mails every learner with an unfinished enrollment
func sendWeeklyDigests() {
	db := database.Database.Db

	var users []models.User
	if err := db.Where("is_deleted = ? AND is_banned = ?", false, false).Find(&users).Error; err != nil {
		logScheduler("Error fetching users for digest: " + err.Error())
		return
	}

	for _, user := range users {
		var enrollments []courseModels.Enrollment
		if err := db.Where("user_id = ? AND status != ? AND is_deleted = ?", user.ID, "COMPLETED", false).Find(&enrollments).Error; err != nil {
			continue
		}

		var titles []string
		for _, e := range enrollments {
			var course courseModels.Course
			if err := db.Where("id = ? AND is_deleted = ?", e.CourseID, false).First(&course).Error; err == nil {
				titles = append(titles, course.Title)
			}
		}
		if len(titles) == 0 {
			continue
		}

		SendWeeklyDigest(user.Email, user.Name, titles)
	}

	logScheduler("Weekly digests sent")
}

// StartScheduler registers and starts all background jobs
func StartScheduler() *cron.Cron {
	c := cron.New()

	c.AddFunc("@hourly", recomputeTrending)
	c.AddFunc("30 3 * * *", purgeSoftDeleted) // daily, off-peak
	c.AddFunc("0 9 * * 1", sendWeeklyDigests) // monday mornings

	c.Start()
	logScheduler("Background scheduler started")
	return c
}

func min64(a, b int64) int64 {
	if a < b {
		return a
	}
	return b
}
