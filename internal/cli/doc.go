// Package cli is the terminal front end of DevLearn.
//
// It plays the part of the web pages: each command runs the page guard,
// collects form input with per-field feedback, calls the application
// services and renders the outcome through a Presenter (field errors,
// modals and redirects).
//
// Commands
//
//	help                       list commands for the current state
//	signup | login             create an account or sign in
//	google-signup              sign up through the simulated Google provider
//	google-login               sign in with the first Google-linked account
//	logout                     sign out (asks for confirmation)
//	dashboard                  profile summary and recent activity
//	edit-profile               change name, email or password
//	activity                   full activity log
//	courses|ebooks|videos [s]  list a catalog, s is alphabetical or category
//	add-course|add-ebook|add-video
//	interest <course>          show interest in a course
//	download <e-book>          download an e-book
//	watch <video>              play a video
//	contact                    contact form with draft autosave
//	exit | quit
package cli
