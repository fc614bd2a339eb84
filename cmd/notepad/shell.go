package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"
	"time"

	"github.com/aretw0/notepad/pkg/core"
)

const shellHelp = `Commands:
  list [query]     list notes, optionally filtered
  search [query]   set or clear the list filter
  new              create a note
  open <id>        open a note
  title <text>     set the title of the open note
  write <text>     replace the content of the open note
  append <text>    add a line to the content of the open note
  save             save the open note
  show             print the open note with its status
  delete <id>      delete a note
  state            print the editing state
  help             show this help
  quit             leave the shell`

// noteShell is the interactive front end over a core.Store. It renders
// views and asks the user whenever the store defers an action.
type noteShell struct {
	store *core.Store
	in    *bufio.Scanner
	out   io.Writer
	now   func() time.Time

	mu sync.Mutex // serializes writes to out
}

func newShell(store *core.Store, in io.Reader, out io.Writer) *noteShell {
	return &noteShell{
		store: store,
		in:    bufio.NewScanner(in),
		out:   out,
		now:   time.Now,
	}
}

func (s *noteShell) printf(format string, args ...any) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fmt.Fprintf(s.out, format, args...)
}

// readLine prompts and reads one line. ok is false at end of input.
func (s *noteShell) readLine(prompt string) (string, bool) {
	s.printf("%s", prompt)
	if !s.in.Scan() {
		return "", false
	}
	return strings.TrimSpace(s.in.Text()), true
}

// run reads commands until quit or end of input.
func (s *noteShell) run(ctx context.Context) error {
	s.printf("Type 'help' for commands.\n")
	s.renderList(s.store.View())

	for {
		if err := ctx.Err(); err != nil {
			return nil
		}
		line, ok := s.readLine(s.prompt())
		if !ok {
			s.printf("\n")
			if err := s.store.BeforeExit(); err != nil {
				s.printf("Warning: %v. They were not saved.\n", err)
			}
			return s.in.Err()
		}
		if line == "" {
			continue
		}
		quit, err := s.exec(ctx, line)
		if err != nil {
			s.printf("Error: %v\n", err)
		}
		if quit {
			return nil
		}
	}
}

func (s *noteShell) prompt() string {
	v := s.store.View()
	if v.Current == nil {
		return "notepad> "
	}
	marker := ""
	if v.Dirty {
		marker = "*"
	}
	return fmt.Sprintf("notepad [%s%s]> ", v.Current.ID, marker)
}

// exec runs one command line and reports whether the shell should stop.
func (s *noteShell) exec(ctx context.Context, line string) (bool, error) {
	name, arg, _ := strings.Cut(line, " ")
	arg = strings.TrimSpace(arg)

	switch strings.ToLower(name) {
	case "help", "?":
		s.printf("%s\n", shellHelp)
	case "list", "ls":
		v := s.store.View()
		if arg != "" {
			v = s.store.SetSearchQuery(arg)
		}
		s.renderList(v)
	case "search":
		s.renderList(s.store.SetSearchQuery(arg))
	case "new":
		v, err := s.store.Create(ctx)
		if err != nil {
			return false, err
		}
		return false, s.settle(ctx, v)
	case "open":
		if arg == "" {
			return false, errors.New("usage: open <id>")
		}
		if _, err := s.store.Get(arg); err != nil {
			return false, err
		}
		v, err := s.store.Select(ctx, arg)
		if err != nil {
			return false, err
		}
		return false, s.settle(ctx, v)
	case "title":
		return false, s.edit(core.EditTitle(arg))
	case "write":
		return false, s.edit(core.EditContent(arg))
	case "append":
		content := s.store.View().Draft.Content
		if content != "" {
			content += "\n"
		}
		return false, s.edit(core.EditContent(content + arg))
	case "save":
		v := s.store.View()
		if v.Current == nil {
			return false, errors.New("no note is open")
		}
		v, err := s.store.Save(ctx, core.SaveManual)
		if err != nil {
			return false, err
		}
		s.printf("%s\n", v.Status)
	case "show":
		s.renderEditor(s.store.View())
	case "delete", "rm":
		return false, s.delete(ctx, arg)
	case "state":
		v := s.store.View()
		s.printf("%s\n", v.State)
	case "quit", "exit", "q":
		return s.quit(), nil
	default:
		return false, fmt.Errorf("unknown command %q (try 'help')", name)
	}
	return false, nil
}

func (s *noteShell) edit(e core.Edit) error {
	if s.store.View().Current == nil {
		return errors.New("no note is open: use 'new' or 'open <id>'")
	}
	v, err := s.store.UpdateDraft(e)
	if err != nil {
		return err
	}
	s.printf("%s\n", v.Status)
	return nil
}

// settle resolves a deferred action by asking the user, then renders the
// outcome.
func (s *noteShell) settle(ctx context.Context, v core.View) error {
	for v.NeedsConfirmation() {
		answer, ok := s.readLine(fmt.Sprintf("You have unsaved changes (%s). [s]ave, [d]iscard or [c]ancel? ", v.Pending))
		if !ok {
			answer = "cancel"
		}
		r, err := core.ParseResolution(strings.ToLower(answer))
		if err != nil {
			s.printf("Please answer save, discard or cancel.\n")
			continue
		}
		next, err := s.store.Resolve(ctx, r)
		if err != nil {
			// A failed save leaves the request pending; ask again.
			s.printf("Error: %v\n", err)
			if next.NeedsConfirmation() {
				v = next
				continue
			}
			return nil
		}
		v = next
		if r == core.Cancel {
			s.printf("Cancelled. Still editing %s.\n", v.Current.ID)
			return nil
		}
	}
	s.renderEditor(v)
	return nil
}

func (s *noteShell) delete(ctx context.Context, id string) error {
	if id == "" {
		return errors.New("usage: delete <id>")
	}
	note, err := s.store.Get(id)
	if err != nil {
		return err
	}
	answer, ok := s.readLine(fmt.Sprintf("Delete %q? [y/N] ", note.Title))
	if !ok || !isYes(answer) {
		s.printf("Cancelled.\n")
		return nil
	}
	v, err := s.store.Delete(ctx, id)
	if err != nil {
		return err
	}
	s.printf("Deleted %s.\n", id)
	s.renderList(v)
	return nil
}

// quit asks before leaving with unsaved changes. It never saves.
func (s *noteShell) quit() bool {
	if err := s.store.BeforeExit(); err == nil {
		return true
	}
	answer, ok := s.readLine("You have unsaved changes. Quit anyway? [y/N] ")
	return !ok || isYes(answer)
}

func (s *noteShell) renderList(v core.View) {
	if len(v.Notes) == 0 {
		s.printf("%s\n", emptyListMessage(v.EmptyReason, v.Query))
		return
	}
	currentID := ""
	if v.Current != nil {
		currentID = v.Current.ID
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	printNoteList(s.out, s.now(), v.Notes, currentID)
}

func (s *noteShell) renderEditor(v core.View) {
	if v.Screen != core.ScreenEditor || v.Current == nil {
		s.printf("No note is open.\n")
		return
	}
	s.printf("== %s (%s) ==\n", v.Draft.Title, v.Current.ID)
	if v.Draft.Content != "" {
		s.printf("%s\n", v.Draft.Content)
	}
	status := v.Status
	if status == "" {
		status = "Last saved " + relativeDate(s.now(), v.Current.DateModified)
	}
	s.printf("-- %d words, %d characters | %s\n", v.Stats.Words, v.Stats.Characters, status)
}

// notifyExternal reports a change made to the stored notes by another process.
func (s *noteShell) notifyExternal(e fmt.Stringer) {
	s.printf("\n! stored notes changed outside this session (%s); reopen to see them\n", e)
}
