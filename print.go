package main

import (
	"fmt"

	"github.com/256dpi/prereqs/internal/course"
	"github.com/256dpi/prereqs/internal/editor"
)

type printCommand struct {
	Add    []string `help:"Add a prerequisite before printing." placeholder:"COURSE[:PREREQUISITE]" sep:"none"`
	Remove []string `help:"Remove a course before printing." placeholder:"COURSE" sep:"none"`
	Stats  bool     `help:"Also print the tree metrics."`
}

func (c *printCommand) Run(e *env) error {
	// create tree
	tree := course.NewTree(e.logger.Named("tree"), e.metrics)

	// apply additions
	for _, pair := range c.Add {
		name, prerequisite := editor.ParsePair(pair)
		err := tree.AddPrerequisite(name, prerequisite)
		if err != nil {
			return fmt.Errorf("--add %q: %w", pair, err)
		}
	}

	// apply removals
	for _, name := range c.Remove {
		err := tree.RemoveCourse(name)
		if err != nil {
			return fmt.Errorf("--remove %q: %w", name, err)
		}
	}

	// render tree
	err := course.Render(e.out, tree.Root())
	if err != nil {
		return err
	}

	// write stats
	if c.Stats {
		return course.WriteStats(e.out, e.gatherer)
	}

	return nil
}
