// Package model defines shared data structures.
package model

import "github.com/verte-zerg/wordfind/internal/finder"

// Config holds resolved settings for one invocation, after config-file
// values have been merged under command-line flags.
type Config struct {
	Pattern  string
	Include  string
	Exclude  string
	GUI      bool
	WordList string
	Strict   bool
}

// Request returns the query described by the config.
func (c Config) Request() finder.Request {
	return finder.Request{
		Pattern: c.Pattern,
		Include: c.Include,
		Exclude: c.Exclude,
	}
}
