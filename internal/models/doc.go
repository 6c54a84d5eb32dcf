// Package models defines the records DevLearn persists and passes between
// its repositories, session manager and presentation layer.
//
// JSON field names are camelCase so stored collections keep the shape the
// web client wrote.
package models
