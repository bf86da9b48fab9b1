// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// Event is the predicate function for event builders.
type Event func(*sql.Selector)

// Poem is the predicate function for poem builders.
type Poem func(*sql.Selector)

// PublishTracker is the predicate function for publishtracker builders.
type PublishTracker func(*sql.Selector)

// Recitation is the predicate function for recitation builders.
type Recitation func(*sql.Selector)

// RecitationProfile is the predicate function for recitationprofile builders.
type RecitationProfile func(*sql.Selector)

// UploadSession is the predicate function for uploadsession builders.
type UploadSession func(*sql.Selector)

// UploadSessionFile is the predicate function for uploadsessionfile builders.
type UploadSessionFile func(*sql.Selector)
