package ui

import (
	"context"
	"errors"
	"log"
	"net"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"bustrip/internal/api"
	"bustrip/internal/config"
	"bustrip/internal/domain"
	"bustrip/internal/eventbus"
	"bustrip/internal/otp"
	"bustrip/internal/search"
	"bustrip/internal/session"
	"bustrip/internal/storage"
	"bustrip/internal/trip"
	"bustrip/internal/ui/input"
	inputtypes "bustrip/internal/ui/input/types"
	"bustrip/internal/ui/views"
)

// Deps are the collaborators the model needs. Store and Bus may be nil.
type Deps struct {
	Config  *config.Config
	Bus     eventbus.EventBus
	Backend Backend
	Session *session.Session
	Store   storage.Store
	Start   inputtypes.Mode
	Now     func() time.Time
}

// StartMode picks the first screen from what is already known about the user
func StartMode(onboarded, authenticated bool) inputtypes.Mode {
	switch {
	case authenticated:
		return inputtypes.ModeHome
	case onboarded:
		return inputtypes.ModeLogin
	default:
		return inputtypes.ModeOnboarding
	}
}

// onboardingState tracks the country then language choice
type onboardingState struct {
	countries     []domain.Country
	stage         int // 0 country, 1 language
	countryIndex  int
	languageIndex int
}

func (o *onboardingState) country() domain.Country {
	if o.countryIndex < 0 || o.countryIndex >= len(o.countries) {
		return domain.Country{}
	}
	return o.countries[o.countryIndex]
}

// options returns what the current stage lists
func (o *onboardingState) options() []string {
	if o.stage == 0 {
		names := make([]string, len(o.countries))
		for i, c := range o.countries {
			names[i] = c.Name
		}
		return names
	}
	return o.country().AvailableLanguages
}

func (o *onboardingState) index() *int {
	if o.stage == 0 {
		return &o.countryIndex
	}
	return &o.languageIndex
}

// Model is the Bubble Tea model for every screen
type Model struct {
	bus     eventbus.EventBus
	config  *config.Config
	backend Backend
	session *session.Session
	store   storage.Store
	now     func() time.Time

	width   int
	height  int
	help    help.Model
	spinner spinner.Model

	inPagerMode bool // tracks if we're currently in pager mode
	showHelp    bool
	status      string
	statusErr   bool

	renderer     *views.Renderer
	inputHandler *input.Handler
	routes       *RoutePager
	program      *tea.Program

	onboarding onboardingState

	fieldErrors map[string]string
	busy        bool // a request that blocks resubmitting is in flight
	busyLabel   string

	code      *otp.Reducer
	codeFocus int
	codeDone  string             // set by the reducer on completion until handled
	codeEmail string             // address the code was sent to
	pending   *api.LoginResponse // sign-in waiting on code verification

	cities     *search.Controller[domain.City]
	cityIndex  int
	cityTarget string

	selection *trip.Selection
	calendar  time.Time

	buses    []domain.Bus
	busIndex int
	busSeq   uint64
}

// NewModel creates a new UI model
func NewModel(d Deps) *Model {
	now := d.Now
	if now == nil {
		now = time.Now
	}
	cfg := d.Config
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	sess := d.Session
	if sess == nil {
		sess = session.New(d.Store, d.Bus)
	}

	m := &Model{
		bus:          d.Bus,
		config:       cfg,
		backend:      d.Backend,
		session:      sess,
		store:        d.Store,
		now:          now,
		help:         help.New(),
		spinner:      spinner.New(spinner.WithSpinner(spinner.Dot)),
		renderer:     views.NewRenderer(),
		inputHandler: input.New(d.Start),
		routes:       NewRoutePager(nil),
		selection:    trip.NewSelection(now),
		fieldErrors:  map[string]string{},
	}

	m.onboarding.countries = domain.DefaultCountries()
	for i, c := range m.onboarding.countries {
		if c.Name == cfg.Preferences.Country {
			m.onboarding.countryIndex = i
		}
	}

	m.code = otp.New(cfg.OTP.Length)
	handles := make([]otp.FocusHandle, m.code.Len())
	for i := range handles {
		handles[i] = otp.FocusFunc(func() { m.codeFocus = i })
	}
	m.code.Attach(handles)
	m.code.OnComplete = func(value string) { m.codeDone = value }

	lookup := func(ctx context.Context, term string) ([]domain.City, error) {
		return m.backend.SearchCities(ctx, term)
	}
	m.cities = search.New[domain.City](lookup, search.Options{
		Quiet:   cfg.Debounce(),
		Timeout: cfg.Timeout(),
		Bus:     d.Bus,
	})

	return m
}

// SetProgram sets the program reference used to hand the terminal to the pager
func (m *Model) SetProgram(p *tea.Program) {
	m.program = p
	m.routes = NewRoutePager(p)
}

// Init returns an initial command
func (m *Model) Init() tea.Cmd {
	cmds := []tea.Cmd{m.spinner.Tick}
	if form := m.inputHandler.Form(); form != nil {
		cmds = append(cmds, form.Focus(0))
	}
	if m.inputHandler.CurrentMode() == inputtypes.ModeOnboarding {
		cmds = append(cmds, fetchCountries(m.backend, m.config.Timeout()))
	}
	return tea.Batch(cmds...)
}

// Update handles messages
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		return m, m.handleKey(msg)

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case pauseRenderingMsg:
		m.inPagerMode = true
		return m, nil

	case resumeRenderingMsg:
		m.inPagerMode = false
		return m, nil
	}

	// Debounce ticks and lookup results for the city field
	if handled, cmd := m.cities.Update(msg); handled {
		m.clampCityIndex()
		return m, cmd
	}

	if cmd, handled := m.handleResult(msg); handled {
		return m, cmd
	}

	// Cursor blink and other messages for the focused field
	return m, m.inputHandler.Update(msg)
}

func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	if m.showHelp && msg.Type != tea.KeyCtrlC {
		switch msg.String() {
		case "?", "esc", "q":
			m.showHelp = false
		}
		return nil
	}

	actions, cmd := m.inputHandler.HandleKey(msg, m.context())

	cmds := []tea.Cmd{cmd}
	for _, action := range actions {
		if actionCmd := m.processAction(action); actionCmd != nil {
			cmds = append(cmds, actionCmd)
		}
	}
	return tea.Batch(cmds...)
}

// context snapshots the state the mode handlers read
func (m *Model) context() *input.ModelContext {
	ctx := &input.ModelContext{
		Segment: m.codeFocus,
		IsBusy:  m.busy,
	}
	switch m.inputHandler.CurrentMode() {
	case inputtypes.ModeOnboarding:
		ctx.Index = *m.onboarding.index()
		ctx.Total = len(m.onboarding.options())
	case inputtypes.ModeCitySearch:
		ctx.Index = m.cityIndex
		ctx.Total = len(m.cities.Results())
	case inputtypes.ModeBusList:
		ctx.Index = m.busIndex
		ctx.Total = len(m.buses)
	}
	return ctx
}

// setMode switches screens, running the enter and exit hooks of both
func (m *Model) setMode(mode inputtypes.Mode) tea.Cmd {
	from := m.inputHandler.CurrentMode()

	// Leaving the city search unmounts its controller
	if from == inputtypes.ModeCitySearch && mode != inputtypes.ModeCitySearch {
		m.cities.Reset()
		m.cityIndex = 0
	}
	if mode == inputtypes.ModeDatePicker {
		m.calendar = m.selection.Date
	}

	m.showHelp = false
	m.fieldErrors = map[string]string{}
	m.setStatus("", false)

	actions, cmd := m.inputHandler.ChangeMode(mode, m.context())
	cmds := []tea.Cmd{cmd}
	for _, action := range actions {
		if actionCmd := m.processAction(action); actionCmd != nil {
			cmds = append(cmds, actionCmd)
		}
	}
	return tea.Batch(cmds...)
}

// Mode returns the current screen
func (m *Model) Mode() inputtypes.Mode {
	return m.inputHandler.CurrentMode()
}

func (m *Model) setStatus(msg string, isErr bool) {
	m.status = msg
	m.statusErr = isErr
}

// showError turns a failed request into field messages or a status line
func (m *Model) showError(err error) {
	var verr *api.ValidationError
	if errors.As(err, &verr) {
		m.fieldErrors = verr.Fields
		if msg, ok := verr.Fields["otp"]; ok {
			m.setStatus(msg, true)
			return
		}
		m.setStatus("Please fix the highlighted fields", true)
		return
	}

	log.Printf("Request failed: %v", err)

	var apiErr *api.Error
	switch {
	case errors.As(err, &apiErr) && apiErr.Message != "":
		m.setStatus(apiErr.Message, true)
	case isTimeout(err):
		m.setStatus("The server took too long to answer. Please try again.", true)
	default:
		m.setStatus("Something went wrong. Please try again.", true)
	}
}

func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}

func (m *Model) clampCityIndex() {
	n := len(m.cities.Results())
	if m.cityIndex >= n {
		m.cityIndex = n - 1
	}
	if m.cityIndex < 0 {
		m.cityIndex = 0
	}
}

// View renders the UI
func (m *Model) View() string {
	if m.inPagerMode {
		return ""
	}
	if m.width == 0 {
		return "Loading..."
	}
	return m.renderer.Render(m.buildViewState())
}
