package store

import (
	"context"
	"fmt"
	"strings"

	"github.com/monocle-dev/studytrack/internal/models"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type AssignmentFields struct {
	Title       string
	Description string
	DueDate     string
	Priority    *int
	CourseID    uint
}

type assignmentValues struct {
	title       string
	description string
	dueDate     datatypes.Date
	priority    *int
	courseID    uint
}

func (f AssignmentFields) validate() (assignmentValues, error) {
	var v assignmentValues
	var err error

	v.title = strings.TrimSpace(f.Title)
	if v.title == "" {
		return v, invalid("title", "is required")
	}

	if v.dueDate, err = parseDate("due_date", f.DueDate); err != nil {
		return v, err
	}

	if f.CourseID == 0 {
		return v, invalid("course_id", "is required")
	}

	v.description = f.Description
	v.courseID = f.CourseID

	if f.Priority != nil {
		p := *f.Priority
		v.priority = &p
	}

	return v, nil
}

// checkCourse resolves the referenced course under the caller's ownership
// and keeps the due date inside the course's run.
func (v assignmentValues) checkCourse(tx *gorm.DB, userID uint) error {
	course, err := findCourse(tx, userID, v.courseID)
	if err != nil {
		return err
	}

	if dateBefore(v.dueDate, course.StartDate) || dateBefore(course.EndDate, v.dueDate) {
		return invalid("due_date", "must be within the course dates %s - %s",
			FormatDate(course.StartDate), FormatDate(course.EndDate))
	}

	return nil
}

func (v assignmentValues) apply(a *models.Assignment) {
	a.Title = v.title
	a.Description = v.description
	a.DueDate = v.dueDate
	a.Priority = v.priority
	a.CourseID = v.courseID
}

func (s *Store) ListAssignments(ctx context.Context, userID uint) ([]models.Assignment, error) {
	assignments := []models.Assignment{}

	err := s.session(ctx).Transaction(func(tx *gorm.DB) error {
		if err := requireUser(tx, userID); err != nil {
			return err
		}
		return tx.Scopes(ownedBy(userID)).Order("id").Find(&assignments).Error
	})

	if err != nil {
		return nil, err
	}

	return assignments, nil
}

func (s *Store) CreateAssignment(ctx context.Context, userID uint, fields AssignmentFields) (models.Assignment, error) {
	values, err := fields.validate()
	if err != nil {
		return models.Assignment{}, err
	}

	assignment := models.Assignment{UserID: userID}
	values.apply(&assignment)

	err = s.session(ctx).Transaction(func(tx *gorm.DB) error {
		if err := requireUser(tx, userID); err != nil {
			return err
		}

		if err := values.checkCourse(tx, userID); err != nil {
			return err
		}

		if err := tx.Create(&assignment).Error; err != nil {
			return fmt.Errorf("create assignment: %w", err)
		}
		return nil
	})

	if err != nil {
		return models.Assignment{}, err
	}

	return assignment, nil
}

func findAssignment(tx *gorm.DB, userID, assignmentID uint) (models.Assignment, error) {
	var assignment models.Assignment

	if err := tx.First(&assignment, assignmentID).Error; err != nil {
		return models.Assignment{}, notFoundOr(err, ErrAssignmentNotFound)
	}

	if !BelongsTo(assignment, userID) {
		return models.Assignment{}, ErrAssignmentNotFound
	}

	return assignment, nil
}

func (s *Store) UpdateAssignment(ctx context.Context, userID, assignmentID uint, fields AssignmentFields) (models.Assignment, error) {
	values, err := fields.validate()
	if err != nil {
		return models.Assignment{}, err
	}

	var assignment models.Assignment

	err = s.session(ctx).Transaction(func(tx *gorm.DB) error {
		var err error

		if assignment, err = findAssignment(tx, userID, assignmentID); err != nil {
			return err
		}

		if err = values.checkCourse(tx, userID); err != nil {
			return err
		}

		values.apply(&assignment)

		if err = tx.Save(&assignment).Error; err != nil {
			return fmt.Errorf("update assignment %d: %w", assignmentID, err)
		}
		return nil
	})

	if err != nil {
		return models.Assignment{}, err
	}

	return assignment, nil
}

func (s *Store) DeleteAssignment(ctx context.Context, userID, assignmentID uint) error {
	return s.session(ctx).Transaction(func(tx *gorm.DB) error {
		assignment, err := findAssignment(tx, userID, assignmentID)
		if err != nil {
			return err
		}

		if err := tx.Delete(&assignment).Error; err != nil {
			return fmt.Errorf("delete assignment %d: %w", assignment.ID, err)
		}
		return nil
	})
}
