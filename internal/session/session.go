// Package session drives the interactive menu. It holds no business logic:
// each menu entry reads the store, hands the records to the summary,
// report, chart or advisor packages and prints the result.
package session

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/rs/zerolog"

	"github.com/spendlog-dev/spendlog/internal/categories"
	"github.com/spendlog-dev/spendlog/internal/ledger"
)

const banner = 50

// errInputClosed ends the session when the input reaches EOF.
var errInputClosed = errors.New("input closed")

// Options configures a Session.
type Options struct {
	Store     *ledger.Store
	Catalog   *categories.Catalog // nil uses the default categories
	ChartPath string
	In        io.Reader
	Out       io.Writer
	Log       zerolog.Logger
	Now       func() time.Time // nil uses time.Now
	NoColor   bool
}

// Session is one interactive run against a store.
type Session struct {
	store     *ledger.Store
	catalog   *categories.Catalog
	chartPath string
	in        *bufio.Scanner
	out       io.Writer
	log       zerolog.Logger
	now       func() time.Time

	ok   *color.Color
	warn *color.Color
	bad  *color.Color
	head *color.Color
}

// New creates a Session from opts.
func New(opts Options) *Session {
	s := &Session{
		store:     opts.Store,
		catalog:   opts.Catalog,
		chartPath: opts.ChartPath,
		out:       opts.Out,
		log:       opts.Log,
		now:       opts.Now,
		ok:        color.New(color.FgGreen),
		warn:      color.New(color.FgYellow),
		bad:       color.New(color.FgRed),
		head:      color.New(color.Bold),
	}
	if opts.In != nil {
		s.in = bufio.NewScanner(opts.In)
	}
	if s.catalog == nil {
		s.catalog = categories.NewCatalog(nil)
	}
	if s.now == nil {
		s.now = time.Now
	}
	if opts.NoColor {
		for _, c := range []*color.Color{s.ok, s.warn, s.bad, s.head} {
			c.DisableColor()
		}
	}
	return s
}

type menuItem struct {
	label  string
	action func() error
}

func (s *Session) menu() []menuItem {
	return []menuItem{
		{"Add New Transaction", s.Add},
		{"View All Transactions", s.List},
		{"Spending Summary", s.Summary},
		{"Visualize Spending (Charts)", s.Visualize},
		{"Financial Advisor", s.Advise},
		{"Exit", nil},
	}
}

// Run prints the welcome banner, makes sure the store exists and loops over
// the menu until the user exits or the input ends.
func (s *Session) Run() error {
	s.section("WELCOME TO SPENDLOG")
	fmt.Fprintln(s.out, "Track expenses - Get insights - Manage your money")

	if err := s.Init(); err != nil {
		return err
	}

	items := s.menu()
	for {
		s.section("PERSONAL FINANCE TRACKER")
		for i, it := range items {
			fmt.Fprintf(s.out, "%d. %s\n", i+1, it.label)
		}
		fmt.Fprintln(s.out, strings.Repeat("=", banner))

		choice, err := s.prompt(fmt.Sprintf("\nEnter your choice (1-%d): ", len(items)))
		if err != nil {
			return nil
		}

		idx, valid := parseChoice(choice, len(items))
		switch {
		case !valid:
			s.bad.Fprintf(s.out, "\nInvalid choice. Please enter a number between 1-%d.\n", len(items))
		case items[idx].action == nil:
			s.section("Thank you for using spendlog!")
			return nil
		default:
			if err := items[idx].action(); err != nil {
				if errors.Is(err, errInputClosed) {
					return nil
				}
				s.reportError(err)
			}
		}

		if _, err := s.prompt("\nPress Enter to continue..."); err != nil {
			return nil
		}
	}
}

// Init creates the store if needed and reports whether it was created.
func (s *Session) Init() error {
	created, err := s.store.Initialize()
	if err != nil {
		s.log.Error().Err(err).Str("path", s.store.Path()).Msg("initializing store")
		return fmt.Errorf("initializing store: %w", err)
	}
	if created {
		s.ok.Fprintf(s.out, "Created new transactions file: %s\n", s.store.Path())
	} else {
		s.ok.Fprintf(s.out, "Found existing transactions file: %s\n", s.store.Path())
	}
	s.log.Debug().Str("path", s.store.Path()).Bool("created", created).Msg("store ready")
	return nil
}

func parseChoice(input string, n int) (int, bool) {
	input = strings.TrimSpace(input)
	if len(input) != 1 || input[0] < '1' || int(input[0]-'0') > n {
		return 0, false
	}
	return int(input[0] - '1'), true
}

func (s *Session) section(title string) {
	rule := strings.Repeat("=", banner)
	fmt.Fprintln(s.out, "\n"+rule)
	s.head.Fprintln(s.out, title)
	fmt.Fprintln(s.out, rule)
}

func (s *Session) reportError(err error) {
	var pe *ledger.ParseError
	var ioe *ledger.IOError
	switch {
	case errors.As(err, &pe):
		s.bad.Fprintf(s.out, "\nThe transactions file looks corrupted: %v\n", err)
	case errors.As(err, &ioe):
		s.bad.Fprintf(s.out, "\nCould not access the transactions file: %v\n", err)
	default:
		s.bad.Fprintf(s.out, "\nError: %v\n", err)
	}
	s.log.Error().Err(err).Msg("action failed")
}

// prompt prints msg and reads one line. It returns errInputClosed at EOF.
func (s *Session) prompt(msg string) (string, error) {
	fmt.Fprint(s.out, msg)
	if s.in == nil || !s.in.Scan() {
		if s.in != nil && s.in.Err() != nil {
			s.log.Warn().Err(s.in.Err()).Msg("reading input")
		}
		return "", errInputClosed
	}
	return strings.TrimSpace(s.in.Text()), nil
}
