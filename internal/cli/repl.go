package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printlnFn is a test seam for REPL output.
var printlnFn = fmt.Println

// execIface is the command surface the REPL dispatches to. *App satisfies
// it; tests use a stub.
type execIface interface {
	isLoggedIn(ctx context.Context) bool
	Signup(ctx context.Context) error
	Login(ctx context.Context) error
	GoogleSignup(ctx context.Context) error
	GoogleLogin(ctx context.Context) error
	Logout(ctx context.Context) error
	Dashboard(ctx context.Context) error
	EditProfile(ctx context.Context) error
	Activity(ctx context.Context) error
	List(ctx context.Context, kind, order string) error
	AddCourse(ctx context.Context) error
	AddEbook(ctx context.Context) error
	AddVideo(ctx context.Context) error
	Interest(ctx context.Context, course string) error
	Download(ctx context.Context, ebook string) error
	Watch(ctx context.Context, video string) error
	Contact(ctx context.Context) error
	DiscardDraft(ctx context.Context) error
}

// runREPL reads commands from reader until EOF, "exit" or "quit", or until
// ctx is cancelled. The first word selects the command; the rest is its
// argument. Handler errors are reported by the handlers themselves.
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader) {
	for {
		if ctx.Err() != nil {
			return
		}
		printlnFn(fmt.Sprintf("devlearn> %s > ", statusFn()))

		line, err := readLine(reader)
		if err != nil {
			return
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd, arg := parts[0], strings.Join(parts[1:], " ")

		switch cmd {
		case "help":
			if a.isLoggedIn(ctx) {
				printlnFn("Available commands: dashboard, edit-profile, activity, courses|ebooks|videos [alphabetical|category], " +
					"add-course, add-ebook, add-video, interest <course>, download <e-book>, watch <video>, contact [discard], logout, exit")
			} else {
				printlnFn("Available commands: signup, login, google-signup, google-login, contact [discard], exit")
			}

		case "signup":
			_ = a.Signup(ctx)

		case "login":
			_ = a.Login(ctx)

		case "google-signup":
			_ = a.GoogleSignup(ctx)

		case "google-login":
			_ = a.GoogleLogin(ctx)

		case "logout":
			_ = a.Logout(ctx)

		case "dashboard", "profile":
			_ = a.Dashboard(ctx)

		case "edit-profile":
			_ = a.EditProfile(ctx)

		case "activity":
			_ = a.Activity(ctx)

		case "courses", "ebooks", "videos":
			_ = a.List(ctx, cmd, arg)

		case "add-course":
			_ = a.AddCourse(ctx)

		case "add-ebook":
			_ = a.AddEbook(ctx)

		case "add-video":
			_ = a.AddVideo(ctx)

		case "interest":
			_ = a.Interest(ctx, arg)

		case "download":
			_ = a.Download(ctx, arg)

		case "watch":
			_ = a.Watch(ctx, arg)

		case "contact":
			if strings.EqualFold(arg, "discard") {
				_ = a.DiscardDraft(ctx)
			} else {
				_ = a.Contact(ctx)
			}

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}
