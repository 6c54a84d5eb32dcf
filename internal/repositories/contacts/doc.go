// Package contacts stores contact form submissions and the single
// autosaved draft.
//
// Submissions live newest first under "devlearn_contacts", capped at a
// fixed count. The draft lives under "devlearn_contact_draft" and expires
// a fixed time after it was last saved; an expired draft is deleted the
// first time it is read.
package contacts
