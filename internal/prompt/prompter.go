package prompt

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/balkashynov/circuit/internal/models"
	"github.com/balkashynov/circuit/internal/parser"
	"github.com/balkashynov/circuit/internal/store"
)

// ErrCancelled is returned when the user backs out of a prompt
var ErrCancelled = errors.New("cancelled")

// Prompter reads answers line by line and re-prompts on invalid input
type Prompter struct {
	in  *bufio.Scanner
	out io.Writer
}

// New creates a prompter over in/out
func New(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{in: bufio.NewScanner(in), out: out}
}

// Out returns the writer prompts are printed to
func (p *Prompter) Out() io.Writer {
	return p.out
}

// ReadLine prints prompt and returns the next line, trimmed.
// It returns io.EOF when input is exhausted.
func (p *Prompter) ReadLine(prompt string) (string, error) {
	fmt.Fprint(p.out, prompt)
	if !p.in.Scan() {
		if err := p.in.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return strings.TrimSpace(p.in.Text()), nil
}

// Confirm asks a y/n question; anything other than y/yes is no
func (p *Prompter) Confirm(prompt string) (bool, error) {
	answer, err := p.ReadLine(prompt + " (y/n): ")
	if err != nil {
		return false, err
	}
	answer = strings.ToLower(answer)
	return answer == "y" || answer == "yes", nil
}

// AskDuration loops until the answer parses as a positive duration
func (p *Prompter) AskDuration(prompt string) (int, error) {
	return p.ask(prompt, parser.ParseDuration)
}

// AskRest loops until the answer parses as a rest duration (zero allowed)
func (p *Prompter) AskRest(prompt string) (int, error) {
	return p.ask(prompt, parser.ParseRest)
}

// AskSets loops until the answer is a whole number >= 1
func (p *Prompter) AskSets(prompt string) (int, error) {
	return p.ask(prompt, parser.ParseSets)
}

func (p *Prompter) ask(prompt string, parse func(string) (int, error)) (int, error) {
	for {
		raw, err := p.ReadLine(prompt)
		if err != nil {
			return 0, err
		}
		value, err := parse(raw)
		if err != nil {
			p.printValidation(err)
			continue
		}
		return value, nil
	}
}

func (p *Prompter) printValidation(err error) {
	var verr *models.ValidationError
	if errors.As(err, &verr) {
		switch verr.Reason {
		case "empty input":
			fmt.Fprintln(p.out, "Please enter a value.")
			return
		case "not a number":
			fmt.Fprintln(p.out, "Enter a number, or a value like 30s / 0.5m.")
			return
		}
	}
	fmt.Fprintf(p.out, "Invalid value: %v\n", err)
}

// AskName asks for a menu name. When the name already exists the user is
// asked to confirm the overwrite; declining asks again.
func (p *Prompter) AskName(existing map[string]models.Menu) (string, error) {
	for {
		name, err := p.ReadLine("Menu name: ")
		if err != nil {
			return "", err
		}
		if name == "" {
			fmt.Fprintln(p.out, "Please enter a menu name.")
			continue
		}
		if _, ok := existing[name]; ok {
			overwrite, err := p.Confirm(fmt.Sprintf("A menu named %q exists. Overwrite?", name))
			if err != nil {
				return "", err
			}
			if !overwrite {
				continue
			}
		}
		return name, nil
	}
}

// CreateMenu walks the user through defining a menu
func (p *Prompter) CreateMenu(existing map[string]models.Menu) (models.Menu, error) {
	fmt.Fprintln(p.out, "\n--- New menu ---")

	name, err := p.AskName(existing)
	if err != nil {
		return models.Menu{}, err
	}
	work, err := p.AskDuration("Work time per set (e.g. 45s, 1.5m): ")
	if err != nil {
		return models.Menu{}, err
	}
	rest, err := p.AskRest("Rest time (e.g. 15s, 1m, 0 for none): ")
	if err != nil {
		return models.Menu{}, err
	}
	sets, err := p.AskSets("Sets: ")
	if err != nil {
		return models.Menu{}, err
	}

	return models.NewMenu(name, work, rest, sets)
}

// PrintMenus writes a numbered listing in name order
func (p *Prompter) PrintMenus(menus map[string]models.Menu) {
	for i, name := range store.SortedNames(menus) {
		menu := menus[name]
		fmt.Fprintf(p.out, "%d. %s | sets: %d, work: %s, rest: %s\n",
			i+1, menu.Name, menu.Sets,
			parser.FormatDuration(menu.WorkSeconds),
			parser.FormatDuration(menu.RestSeconds))
	}
}

// ChooseMenu lists menus and asks for a number. An empty answer cancels.
func (p *Prompter) ChooseMenu(menus map[string]models.Menu) (models.Menu, error) {
	if len(menus) == 0 {
		fmt.Fprintln(p.out, "No saved menus.")
		return models.Menu{}, ErrCancelled
	}

	fmt.Fprintln(p.out, "\n--- Menus ---")
	p.PrintMenus(menus)
	names := store.SortedNames(menus)

	for {
		choice, err := p.ReadLine("Number (Enter to cancel): ")
		if err != nil {
			return models.Menu{}, err
		}
		if choice == "" {
			return models.Menu{}, ErrCancelled
		}
		index, err := strconv.Atoi(choice)
		if err != nil {
			fmt.Fprintln(p.out, "Please enter a number.")
			continue
		}
		if index < 1 || index > len(names) {
			fmt.Fprintln(p.out, "Choose a number from the list.")
			continue
		}
		return menus[names[index-1]], nil
	}
}
