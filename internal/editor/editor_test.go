package editor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/256dpi/prereqs/internal/activity"
	"github.com/256dpi/prereqs/internal/course"
)

func newEditor() (*Editor, *observer.ObservedLogs) {
	core, logs := observer.New(zap.InfoLevel)
	tree := course.NewTree(nil, nil)
	return New(tree, activity.NewHistory(10), zap.New(core)), logs
}

func TestEditorAdd(t *testing.T) {
	e, logs := newEditor()

	e.Course = " Compilers "
	e.Prerequisite = "Automata Theory"
	event := e.Add()
	assert.Equal(t, activity.Info, event.Level)
	assert.Equal(t, msgAdded, event.Message)
	assert.Empty(t, e.Course)
	assert.Empty(t, e.Prerequisite)
	assert.True(t, e.Tree().HasCourse("Compilers"))
	assert.Equal(t, 1, logs.FilterMessage("prerequisite added").Len())

	// duplicates still succeed
	e.Course = "Compilers"
	e.Prerequisite = "Automata Theory"
	event = e.Add()
	assert.Equal(t, msgAdded, event.Message)
	assert.Equal(t, 2, e.History().Len())
}

func TestEditorAddInvalid(t *testing.T) {
	e, logs := newEditor()

	e.Course = "  "
	e.Prerequisite = "Automata Theory"
	event := e.Add()
	assert.Equal(t, activity.Warning, event.Level)
	assert.Equal(t, msgEnterCourse, event.Message)
	assert.Equal(t, "Automata Theory", e.Prerequisite)
	assert.False(t, e.Tree().HasCourse("Automata Theory"))
	assert.Equal(t, 1, logs.FilterMessage(msgEnterCourse).Len())
}

func TestEditorRemove(t *testing.T) {
	e, _ := newEditor()

	e.Course = "Algorithms"
	e.Prerequisite = "kept"
	event := e.Remove()
	assert.Equal(t, activity.Info, event.Level)
	assert.Equal(t, msgRemoved, event.Message)
	assert.Empty(t, e.Course)
	assert.Equal(t, "kept", e.Prerequisite)
	assert.False(t, e.Tree().HasCourse("Algorithms"))

	e.Course = "Algorithms"
	event = e.Remove()
	assert.Equal(t, activity.Error, event.Level)
	assert.Equal(t, msgNotFound, event.Message)
	assert.Equal(t, "Algorithms", e.Course)

	e.Course = ""
	event = e.Remove()
	assert.Equal(t, activity.Warning, event.Level)
	assert.Equal(t, msgEnterRemoveCourse, event.Message)
}

func TestEditorClear(t *testing.T) {
	e, _ := newEditor()

	e.Course = "Compilers"
	e.Add()
	e.Course = "Machine Learning"
	e.Remove()

	e.Course = "draft"
	e.Prerequisite = "draft"
	event := e.Clear()
	assert.Equal(t, msgCleared, event.Message)
	assert.Empty(t, e.Course)
	assert.Empty(t, e.Prerequisite)
	assert.False(t, e.Tree().HasCourse("Compilers"))
	assert.True(t, e.Tree().HasCourse("Machine Learning"))

	last, ok := e.History().Last()
	assert.True(t, ok)
	assert.Equal(t, event, last)
}

func TestParsePair(t *testing.T) {
	table := []struct {
		in           string
		course       string
		prerequisite string
	}{
		{"Compilers:Automata Theory", "Compilers", "Automata Theory"},
		{" Compilers : Automata Theory ", "Compilers", "Automata Theory"},
		{"Compilers", "Compilers", ""},
		{"Compilers:", "Compilers", ""},
		{"A:B:C", "A", "B:C"},
		{"", "", ""},
	}

	for _, item := range table {
		c, p := ParsePair(item.in)
		assert.Equal(t, item.course, c, item.in)
		assert.Equal(t, item.prerequisite, p, item.in)
	}
}
