package course

import (
	"fmt"
	"strings"
	"time"

	"github.com/samber/lo"
	"go.uber.org/zap"
)

// RootLabel is the fixed label of the root node.
const RootLabel = "Computer Science Courses"

// Tree is the prerequisite tree and its one-entry-per-label index. A tree is
// not safe for concurrent use.
type Tree struct {
	root     *Node
	index    map[string]*Node
	names    []string
	modified time.Time
	logger   *zap.Logger
	metrics  *Metrics
}

// NewTree creates a seeded tree. The logger and metrics may be nil.
func NewTree(logger *zap.Logger, metrics *Metrics) *Tree {
	// check logger
	if logger == nil {
		logger = zap.NewNop()
	}

	// create tree
	t := &Tree{
		root:    newNode(RootLabel),
		index:   map[string]*Node{},
		logger:  logger,
		metrics: metrics,
	}

	// seed tree
	t.seed(SeedPairs)
	t.touch()

	return t
}

// Root returns the traversal root. Callers must not retain children across
// mutations.
func (t *Tree) Root() *Node {
	return t.root
}

// HasCourse reports whether the exact name is indexed.
func (t *Tree) HasCourse(name string) bool {
	_, ok := t.index[name]
	return ok
}

// Courses returns the indexed names in insertion order.
func (t *Tree) Courses() []string {
	return append([]string(nil), t.names...)
}

// Size returns the number of nodes below the root.
func (t *Tree) Size() int {
	var size int
	t.root.Walk(func(_ int, _ *Node) {
		size++
	})

	return size - 1
}

// Modified returns the time of the last mutation.
func (t *Tree) Modified() time.Time {
	return t.modified
}

// AddPrerequisite ensures the course exists and attaches the prerequisite
// below it unless the course already has a direct child with that label. An
// empty prerequisite only ensures the course.
func (t *Tree) AddPrerequisite(course, prerequisite string) error {
	// trim input
	course = strings.TrimSpace(course)
	prerequisite = strings.TrimSpace(prerequisite)

	// check course
	if course == "" {
		t.metrics.observe(opAdd, ErrInvalidInput)
		return fmt.Errorf("add prerequisite: empty course: %w", ErrInvalidInput)
	}

	// ensure course
	courseNode := t.ensureCourse(course)

	// handle prerequisite
	if prerequisite != "" {
		// index prerequisite
		if _, ok := t.index[prerequisite]; !ok {
			t.register(prerequisite, newNode(prerequisite))
		}

		// attach prerequisite
		if !IsDirectChild(courseNode, prerequisite) {
			courseNode.push(prerequisite)
		} else {
			t.logger.Debug("duplicate prerequisite ignored",
				zap.String("course", course),
				zap.String("prerequisite", prerequisite))
		}
	}

	// log
	t.logger.Debug("prerequisite added",
		zap.String("course", course),
		zap.String("prerequisite", prerequisite))

	// finish
	t.touch()
	t.metrics.observe(opAdd, nil)

	return nil
}

// RemoveCourse detaches the indexed node of the course together with its
// subtree and drops its index entry. Other nodes with the same label stay in
// the tree.
func (t *Tree) RemoveCourse(course string) error {
	// trim input
	course = strings.TrimSpace(course)

	// check course
	if course == "" {
		t.metrics.observe(opRemove, ErrInvalidInput)
		return fmt.Errorf("remove course: empty course: %w", ErrInvalidInput)
	}

	// lookup node
	node, ok := t.index[course]
	if !ok {
		t.metrics.observe(opRemove, ErrNotFound)
		return fmt.Errorf("remove course %q: %w", course, ErrNotFound)
	}

	// detach node
	node.detach()

	// unregister
	delete(t.index, course)
	t.names = lo.Filter(t.names, func(name string, _ int) bool {
		return name != course
	})

	// log
	t.logger.Debug("course removed", zap.String("course", course))

	// finish
	t.touch()
	t.metrics.observe(opRemove, nil)

	return nil
}

// ClearAll removes all courses and reapplies the seed pairs.
func (t *Tree) ClearAll() {
	// detach children
	for _, child := range t.root.children {
		child.parent = nil
	}
	t.root.children = nil

	// clear index
	t.index = map[string]*Node{}
	t.names = nil

	// reseed
	t.seed(SeedPairs)

	// log
	t.logger.Debug("tree cleared", zap.Int("courses", len(t.names)))

	// finish
	t.touch()
	t.metrics.observe(opClear, nil)
}

func (t *Tree) ensureCourse(course string) *Node {
	// get node
	node, ok := t.index[course]
	if ok {
		return node
	}

	// create node
	node = t.root.push(course)
	t.register(course, node)

	return node
}

func (t *Tree) register(label string, node *Node) {
	t.index[label] = node
	t.names = append(t.names, label)
}

func (t *Tree) touch() {
	t.modified = time.Now()
	t.metrics.update(len(t.names), t.Size())
}
