package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/dmitrijs2005/devlearn/internal/session"
)

// Modal identifiers.
const (
	ModalSignupSuccess = "successModal"
	ModalProfileSaved  = "updateModal"
	ModalContactSent   = "contactModal"
)

var modalText = map[string]string{
	ModalSignupSuccess: "Account created successfully! Welcome to DevLearn.",
	ModalProfileSaved:  "Profile updated successfully!",
	ModalContactSent:   "Thank you for your message! We'll get back to you within 24 hours.",
}

// Presenter renders what the core asks for: field errors by field id,
// modals by id and page redirects.
type Presenter interface {
	session.Navigator
	ShowFieldError(field, msg string)
	ClearFieldError(field string)
	ShowModal(id string)
	HideModal(id string)
}

type consolePresenter struct {
	out    io.Writer
	page   session.Page
	errors map[string]string
	modal  string
}

func newConsolePresenter(out io.Writer) *consolePresenter {
	return &consolePresenter{out: out, page: session.PageHome, errors: map[string]string{}}
}

func (p *consolePresenter) Redirect(_ context.Context, target session.Page) {
	p.page = target
	clear(p.errors)
	fmt.Fprintf(p.out, "-> %s\n", target)
}

func (p *consolePresenter) ShowFieldError(field, msg string) {
	p.errors[field] = msg
	fmt.Fprintf(p.out, "  ! %s: %s\n", field, msg)
}

func (p *consolePresenter) ClearFieldError(field string) {
	delete(p.errors, field)
}

func (p *consolePresenter) ShowModal(id string) {
	p.modal = id
	text, ok := modalText[id]
	if !ok {
		text = id
	}
	fmt.Fprintf(p.out, "[ %s ]\n", text)
}

func (p *consolePresenter) HideModal(id string) {
	if p.modal == id {
		p.modal = ""
	}
}
