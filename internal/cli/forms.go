package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/devlearn/internal/common"
	"github.com/dmitrijs2005/devlearn/internal/validation"
)

// getSimpleText, getPassword and getMultiline are test seams.
var (
	getSimpleText = GetSimpleText
	getPassword   = GetPassword
	getMultiline  = GetMultiline
)

// ask prompts for field, keeping def on empty input, and shows the field's
// validation message as soon as the value is entered.
func (a *App) ask(field, prompt, def string) (string, error) {
	if def != "" {
		prompt = fmt.Sprintf("%s [%s]", prompt, def)
	}
	v, err := getSimpleText(a.reader, prompt, a.out)
	if err != nil {
		return "", err
	}
	if v == "" {
		v = def
	}
	a.blur(field, v)
	return v, nil
}

func (a *App) askMultiline(field, prompt, def string) (string, error) {
	if def != "" {
		fmt.Fprintf(a.out, "Current: %s\n", def)
	}
	v, err := getMultiline(a.reader, prompt, a.out)
	if err != nil {
		return "", err
	}
	if v == "" {
		v = def
	}
	a.blur(field, v)
	return v, nil
}

// askSecret reads a password. The returned string is a copy; the raw
// buffer is wiped.
func (a *App) askSecret(field, prompt string) (string, error) {
	pw, err := getPassword(a.reader, prompt, a.out)
	if err != nil {
		return "", err
	}
	defer common.WipeByteArray(pw)

	v := string(pw)
	a.blur(field, v)
	return v, nil
}

func (a *App) blur(field, value string) {
	if msg := validation.ValidateField(field, value); msg != "" {
		a.presenter.ShowFieldError(field, msg)
		return
	}
	a.presenter.ClearFieldError(field)
}

// confirm asks a yes/no question; anything but y or yes is no.
func (a *App) confirm(question string) bool {
	v, err := getSimpleText(a.reader, question+" (y/N)", a.out)
	if err != nil {
		return false
	}
	switch strings.ToLower(v) {
	case "y", "yes":
		return true
	}
	return false
}

// inputError reports a prompt failure. EOF aborts the form quietly.
func (a *App) inputError(ctx context.Context, err error) error {
	a.log.Debug(ctx, "input aborted", "err", err)
	fmt.Fprintln(a.out)
	return err
}
