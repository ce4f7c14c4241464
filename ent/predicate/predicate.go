// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// Assignment is the predicate function for assignment builders.
type Assignment func(*sql.Selector)

// BroadcastRecord is the predicate function for broadcastrecord builders.
type BroadcastRecord func(*sql.Selector)

// ClickRecord is the predicate function for clickrecord builders.
type ClickRecord func(*sql.Selector)

// DeliveryRecord is the predicate function for deliveryrecord builders.
type DeliveryRecord func(*sql.Selector)

// DuplicateGroup is the predicate function for duplicategroup builders.
type DuplicateGroup func(*sql.Selector)

// ExtractionJob is the predicate function for extractionjob builders.
type ExtractionJob func(*sql.Selector)

// Rating is the predicate function for rating builders.
type Rating func(*sql.Selector)

// RawMessage is the predicate function for rawmessage builders.
type RawMessage func(*sql.Selector)

// TutorProfile is the predicate function for tutorprofile builders.
type TutorProfile func(*sql.Selector)
