// Package services contains the DevLearn application services. Each one
// combines validation, repositories, the session manager and the activity
// log the way a page handler would, and is what the presentation layer
// calls.
package services
