package editor

import (
	"errors"
	"strings"

	"go.uber.org/zap"

	"github.com/256dpi/prereqs/internal/activity"
	"github.com/256dpi/prereqs/internal/course"
)

const (
	msgEnterCourse       = "Please enter a course name."
	msgEnterRemoveCourse = "Please enter a course name to remove."
	msgAdded             = "Prerequisite added successfully!"
	msgRemoved           = "Course removed successfully!"
	msgNotFound          = "Course not found."
	msgCleared           = "All courses cleared and sample data restored."
)

// Editor holds the input fields of a front-end and applies them to a tree.
// It must be used from a single goroutine.
type Editor struct {
	Course       string
	Prerequisite string

	tree    *course.Tree
	history *activity.History
	logger  *zap.Logger
}

// New creates an editor. The logger may be nil.
func New(tree *course.Tree, history *activity.History, logger *zap.Logger) *Editor {
	// check logger
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Editor{
		tree:    tree,
		history: history,
		logger:  logger,
	}
}

func (e *Editor) Tree() *course.Tree {
	return e.tree
}

func (e *Editor) History() *activity.History {
	return e.history
}

// Add adds the prerequisite from the input fields and clears them.
func (e *Editor) Add() activity.Event {
	// get input
	name := strings.TrimSpace(e.Course)
	prerequisite := strings.TrimSpace(e.Prerequisite)

	// add prerequisite
	err := e.tree.AddPrerequisite(name, prerequisite)
	if errors.Is(err, course.ErrInvalidInput) {
		return e.record(activity.Warning, msgEnterCourse)
	} else if err != nil {
		return e.record(activity.Error, err.Error())
	}

	// log
	e.logger.Info("prerequisite added",
		zap.String("course", name),
		zap.String("prerequisite", prerequisite))

	// reset input
	e.Course = ""
	e.Prerequisite = ""

	return e.record(activity.Info, msgAdded)
}

// Remove removes the course from the input field. The field is only cleared
// on success.
func (e *Editor) Remove() activity.Event {
	// get input
	name := strings.TrimSpace(e.Course)

	// remove course
	err := e.tree.RemoveCourse(name)
	if errors.Is(err, course.ErrInvalidInput) {
		return e.record(activity.Warning, msgEnterRemoveCourse)
	} else if errors.Is(err, course.ErrNotFound) {
		return e.record(activity.Error, msgNotFound)
	} else if err != nil {
		return e.record(activity.Error, err.Error())
	}

	// log
	e.logger.Info("course removed", zap.String("course", name))

	// reset input
	e.Course = ""

	return e.record(activity.Info, msgRemoved)
}

// Clear resets the tree to the sample data without asking. Confirmation is
// up to the caller.
func (e *Editor) Clear() activity.Event {
	// clear tree
	e.tree.ClearAll()

	// log
	e.logger.Info("tree cleared")

	// reset input
	e.Course = ""
	e.Prerequisite = ""

	return e.record(activity.Info, msgCleared)
}

func (e *Editor) record(level activity.Level, message string) activity.Event {
	// log problems
	switch level {
	case activity.Warning:
		e.logger.Warn(message)
	case activity.Error:
		e.logger.Error(message)
	}

	return e.history.Add(level, message)
}

// ParsePair splits "course:prerequisite" on the first colon. Without a colon
// the prerequisite is empty.
func ParsePair(s string) (string, string) {
	name, prerequisite, _ := strings.Cut(s, ":")
	return strings.TrimSpace(name), strings.TrimSpace(prerequisite)
}
