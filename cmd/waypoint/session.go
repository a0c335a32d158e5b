package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/vitalvas/waypoint/routefile"
	"github.com/vitalvas/waypoint/router"
)

const prompt = "waypoint> "

// screen is the component type the shell pushes: it only remembers which
// component name built it and for which path.
type screen struct {
	component string
	path      string
}

// screenFactories returns one factory per component named in f.
func screenFactories(f *routefile.File, logger *slog.Logger) map[string]router.Factory[*screen] {
	out := make(map[string]router.Factory[*screen], len(f.Routes))

	for _, r := range f.Routes {
		name := r.Component
		if _, ok := out[name]; ok {
			continue
		}

		out[name] = router.Funcs[*screen]{
			BuildFunc: func(path string) (*screen, error) {
				return &screen{component: name, path: strings.Clone(path)}, nil
			},
			DestroyFunc: func(s *screen) error {
				logger.Debug("destroy screen", "component", s.component, "path", s.path)
				return nil
			},
		}
	}

	return out
}

type session struct {
	router *router.Router[*screen]
	out    io.Writer
}

var errQuit = errors.New("quit")

// run executes commands read from in until EOF or quit. With interactive
// set it prompts before each line and keeps going after failed commands;
// otherwise the number of failed commands is reported at the end.
func (s *session) run(in io.Reader, interactive bool) error {
	sc := bufio.NewScanner(in)
	failed := 0

	for {
		if interactive {
			fmt.Fprint(s.out, prompt)
		}

		if !sc.Scan() {
			break
		}

		err := s.exec(sc.Text())
		if errors.Is(err, errQuit) {
			return nil
		}

		if err != nil {
			errorMsg(s.out, "%s", err)
			failed++
		}
	}

	if err := sc.Err(); err != nil {
		return fmt.Errorf("read commands: %w", err)
	}

	if interactive {
		fmt.Fprintln(s.out)
	} else if failed > 0 {
		return fmt.Errorf("%d commands failed", failed)
	}

	return nil
}

// exec runs one command line. Blank lines and lines starting with '#' are
// ignored.
func (s *session) exec(line string) error {
	line = strings.TrimSpace(line)
	if line == "" || strings.HasPrefix(line, "#") {
		return nil
	}

	name, arg, _ := strings.Cut(line, " ")
	arg = strings.TrimSpace(arg)

	switch name {
	case "go":
		sc, err := s.router.Navigate(arg)
		if err != nil {
			return err
		}
		s.pushed(sc)
	case "open":
		sc, err := s.router.NavigateURI(arg)
		if err != nil {
			return err
		}
		s.pushed(sc)
	case "back":
		sc, err := s.router.Back()
		if sc != nil {
			success(s.out, "back to %s [%s] depth %d", sc.path, sc.component, s.router.Len())
		}
		return err
	case "clear":
		err := s.router.Clear()
		success(s.out, "cleared")
		return err
	case "current":
		e, err := s.router.CurrentEntry()
		if err != nil {
			return err
		}
		field(s.out, "id", e.ID)
		field(s.out, "route", e.Route.Label())
		field(s.out, "path", e.Path)
		field(s.out, "component", e.Component.component)
	case "history":
		history := s.router.History()
		if len(history) == 0 {
			warn(s.out, "history is empty")
		}
		for i, p := range history {
			marker := " "
			if i == len(history)-1 {
				marker = "*"
			}
			fmt.Fprintf(s.out, "%s %d %s\n", marker, i, p)
		}
	case "params":
		params, err := s.router.Params()
		if err != nil {
			return err
		}
		if len(params) == 0 {
			warn(s.out, "no parameters")
		}
		for _, p := range params {
			field(s.out, p.Key, p.Value)
		}
	case "help", "?":
		s.help()
	case "quit", "exit":
		return errQuit
	default:
		return fmt.Errorf("unknown command %q, try help", name)
	}

	return nil
}

func (s *session) pushed(sc *screen) {
	success(s.out, "%s [%s] depth %d/%d", sc.path, sc.component, s.router.Len(), s.router.Cap())
}

func (s *session) help() {
	fmt.Fprint(s.out, `Commands:
  go PATH     navigate to PATH
  open URI    navigate to the path of URI
  back        pop the current entry
  clear       pop every entry
  current     show the current entry
  history     list the stack, bottom first
  params      show the current route parameters
  help        show this help
  quit        leave the shell
`)
}
