// Package session runs the numbered-menu read-modify-write loop over one todo file.
package session

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/idilsaglam/todo/internal/model"
	"github.com/idilsaglam/todo/internal/ui"
)

const EmptyMessage = "Your todo list is empty."

// ErrInputClosed is returned when standard input ends before Exit is chosen.
// Nothing is written back in that case.
var ErrInputClosed = errors.New("input closed before exit")

// Storage reads and writes the whole backing file.
type Storage interface {
	Path() string
	Load() (string, error)
	Save(text string) error
}

type State int

const (
	Running State = iota
	Exiting
)

func (s State) String() string {
	if s == Exiting {
		return "exiting"
	}
	return "running"
}

// Action is a menu selection.
type Action uint64

const (
	ActionView Action = iota + 1
	ActionAdd
	ActionRemove
	ActionToggle
	ActionExit
)

var menu = []struct {
	action Action
	label  string
}{
	{ActionView, "View todo list"},
	{ActionAdd, "Add a new todo"},
	{ActionRemove, "Remove a todo"},
	{ActionToggle, "Toggle a todo"},
	{ActionExit, "Exit"},
}

// Session owns the in-memory list from Load until the final Save.
type Session struct {
	store Storage
	in    *bufio.Reader
	con   *ui.Console
	log   *log.Logger

	items []model.Item
	state State
}

func New(store Storage, in io.Reader, con *ui.Console, logger *log.Logger) *Session {
	return &Session{
		store: store,
		in:    bufio.NewReader(in),
		con:   con,
		log:   logger,
		items: []model.Item{},
	}
}

func (s *Session) Items() []model.Item { return s.items }

// Replace swaps the whole list, e.g. after a full-screen edit.
func (s *Session) Replace(items []model.Item) { s.items = items }

func (s *Session) State() State { return s.state }

// Load reads the backing file and decodes it. Unparsable lines are skipped
// with a warning.
func (s *Session) Load() error {
	s.log.Debug("using todo file", "path", s.store.Path())
	text, err := s.store.Load()
	if err != nil {
		return err
	}
	s.items = model.ParseList(text, func(lineNo int, err error) {
		s.log.Warn("skipping todo line", "path", s.store.Path(), "line", lineNo, "err", err)
	})
	s.state = Running
	return nil
}

// Save overwrites the backing file with the current list.
func (s *Session) Save() error {
	if err := s.store.Save(model.FormatList(s.items)); err != nil {
		return err
	}
	s.log.Debug("saved todo file", "path", s.store.Path(), "items", len(s.items))
	return nil
}

// Run loads the file, drives the menu until Exit, then writes the list back.
func (s *Session) Run() error {
	if err := s.Load(); err != nil {
		return err
	}
	return s.Loop()
}

// Loop drives the menu over an already loaded list.
func (s *Session) Loop() error {
	s.PrintList()
	for s.state == Running {
		s.printMenu()
		line, err := s.readLine()
		if err != nil {
			return err
		}
		sel, err := strconv.ParseUint(strings.TrimSpace(line), 10, 32)
		if err != nil {
			s.log.Warn("ignoring selection", "input", strings.TrimSpace(line))
			continue
		}
		if err := s.Dispatch(Action(sel)); err != nil {
			return err
		}
	}
	if err := s.Save(); err != nil {
		return err
	}
	s.con.OK(fmt.Sprintf("saved %d items to %s", len(s.items), s.store.Path()))
	return nil
}

// Dispatch runs one menu action. Unknown actions are logged and ignored.
func (s *Session) Dispatch(a Action) error {
	switch a {
	case ActionView:
		s.PrintList()
	case ActionAdd:
		return s.add()
	case ActionRemove:
		return s.withIndex(func(idx int) {
			s.items = append(s.items[:idx], s.items[idx+1:]...)
			s.con.OK("removed")
		})
	case ActionToggle:
		return s.withIndex(func(idx int) {
			s.items[idx].Toggle()
			s.con.OK("toggled")
		})
	case ActionExit:
		s.con.Println("Exiting...")
		s.state = Exiting
	default:
		s.log.Warn("ignoring selection", "input", uint64(a))
	}
	return nil
}

// PrintList prints the numbered list, or EmptyMessage when there is nothing.
func (s *Session) PrintList() {
	if len(s.items) == 0 {
		s.con.Println(s.con.Muted(EmptyMessage))
		return
	}
	for i, it := range s.items {
		s.con.Printf("%d. %s\n", i+1, model.FormatItem(it))
	}
	done, _ := model.Stats(s.items)
	s.con.Println(s.con.Muted(s.con.ProgressBar(done, len(s.items), 20)))
}

func (s *Session) printMenu() {
	lines := make([]string, 0, len(menu))
	for _, m := range menu {
		lines = append(lines, fmt.Sprintf("%d. %s", m.action, m.label))
	}
	s.con.Panel(lines)
	s.con.Printf("%s ", s.con.Accent(">"))
}

func (s *Session) add() error {
	s.con.Printf("Description: ")
	line, err := s.readLine()
	if err != nil {
		return err
	}
	if strings.TrimSpace(line) == "" {
		s.log.Warn("add: empty description")
		return nil
	}
	s.items = append(s.items, model.Item{Description: line})
	s.con.OK("added")
	return nil
}

// withIndex prompts for a 1-based index and calls fn with the 0-based one
// when it names an existing item.
func (s *Session) withIndex(fn func(idx int)) error {
	s.con.Printf("Index: ")
	line, err := s.readLine()
	if err != nil {
		return err
	}
	in := strings.TrimSpace(line)
	n, err := strconv.ParseUint(in, 10, 32)
	if err != nil {
		s.log.Warn("not a number", "input", in)
		return nil
	}
	if n < 1 || n > uint64(len(s.items)) {
		s.log.Warn(fmt.Sprintf("index out of range: have %d, got %d", len(s.items), n))
		return nil
	}
	fn(int(n) - 1)
	return nil
}

// readLine returns one line without its terminator. A final line without a
// newline is still returned; EOF with nothing read is ErrInputClosed.
func (s *Session) readLine() (string, error) {
	line, err := s.in.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) {
			if line == "" {
				return "", ErrInputClosed
			}
		} else {
			return "", fmt.Errorf("read input: %w", err)
		}
	}
	line = strings.TrimSuffix(line, "\n")
	return strings.TrimSuffix(line, "\r"), nil
}
