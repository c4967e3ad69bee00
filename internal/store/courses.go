package store

import (
	"context"
	"fmt"
	"strings"

	"github.com/monocle-dev/studytrack/internal/models"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// CourseFields is the client supplied part of a course. Dates are
// YYYY-MM-DD strings.
type CourseFields struct {
	Name      string
	StartDate string
	EndDate   string
}

type courseValues struct {
	name      string
	startDate datatypes.Date
	endDate   datatypes.Date
}

func (f CourseFields) validate() (courseValues, error) {
	var v courseValues
	var err error

	v.name = strings.TrimSpace(f.Name)
	if v.name == "" {
		return v, invalid("name", "is required")
	}

	if v.startDate, err = parseDate("start_date", f.StartDate); err != nil {
		return v, err
	}

	if v.endDate, err = parseDate("end_date", f.EndDate); err != nil {
		return v, err
	}

	if dateBefore(v.endDate, v.startDate) {
		return v, invalid("end_date", "must not be before start_date")
	}

	return v, nil
}

func (v courseValues) apply(c *models.Course) {
	c.Name = v.name
	c.StartDate = v.startDate
	c.EndDate = v.endDate
}

func (s *Store) ListCourses(ctx context.Context, userID uint) ([]models.Course, error) {
	courses := []models.Course{}

	err := s.session(ctx).Transaction(func(tx *gorm.DB) error {
		if err := requireUser(tx, userID); err != nil {
			return err
		}
		return tx.Scopes(ownedBy(userID)).Order("id").Find(&courses).Error
	})

	if err != nil {
		return nil, err
	}

	return courses, nil
}

func (s *Store) CreateCourse(ctx context.Context, userID uint, fields CourseFields) (models.Course, error) {
	values, err := fields.validate()
	if err != nil {
		return models.Course{}, err
	}

	course := models.Course{UserID: userID}
	values.apply(&course)

	err = s.session(ctx).Transaction(func(tx *gorm.DB) error {
		if err := requireUser(tx, userID); err != nil {
			return err
		}
		if err := tx.Create(&course).Error; err != nil {
			return fmt.Errorf("create course: %w", err)
		}
		return nil
	})

	if err != nil {
		return models.Course{}, err
	}

	return course, nil
}

// findCourse loads a course and applies the ownership predicate; a missing
// course and a foreign one are reported identically.
func findCourse(tx *gorm.DB, userID, courseID uint) (models.Course, error) {
	var course models.Course

	if err := tx.First(&course, courseID).Error; err != nil {
		return models.Course{}, notFoundOr(err, ErrCourseNotFound)
	}

	if !BelongsTo(course, userID) {
		return models.Course{}, ErrCourseNotFound
	}

	return course, nil
}

func (s *Store) UpdateCourse(ctx context.Context, userID, courseID uint, fields CourseFields) (models.Course, error) {
	values, err := fields.validate()
	if err != nil {
		return models.Course{}, err
	}

	var course models.Course

	err = s.session(ctx).Transaction(func(tx *gorm.DB) error {
		var err error

		if course, err = findCourse(tx, userID, courseID); err != nil {
			return err
		}

		values.apply(&course)

		if err = tx.Save(&course).Error; err != nil {
			return fmt.Errorf("update course %d: %w", courseID, err)
		}
		return nil
	})

	if err != nil {
		return models.Course{}, err
	}

	return course, nil
}

// DeleteCourse removes the course together with its assignments.
func (s *Store) DeleteCourse(ctx context.Context, userID, courseID uint) error {
	return s.session(ctx).Transaction(func(tx *gorm.DB) error {
		course, err := findCourse(tx, userID, courseID)
		if err != nil {
			return err
		}

		err = tx.Scopes(ownedBy(userID)).Where("course_id = ?", course.ID).Delete(&models.Assignment{}).Error
		if err != nil {
			return fmt.Errorf("delete assignments of course %d: %w", course.ID, err)
		}

		if err := tx.Delete(&course).Error; err != nil {
			return fmt.Errorf("delete course %d: %w", course.ID, err)
		}
		return nil
	})
}
