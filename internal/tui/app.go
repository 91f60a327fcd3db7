// ABOUTME: Root bubbletea model for the verleih TUI
// ABOUTME: Routes between login and the authenticated screens via the session monitor

package tui

import (
	"context"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/rs/zerolog"

	"github.com/holgerweigert/verleih/internal/api"
	"github.com/holgerweigert/verleih/internal/format"
	"github.com/holgerweigert/verleih/internal/session"
	"github.com/holgerweigert/verleih/internal/tui/styles"
)

// money renders a known amount through the optional-amount formatter.
func money(v float64) string {
	return format.Currency(&v)
}

// Screen represents the current TUI screen
type Screen int

const (
	ScreenLogin Screen = iota
	ScreenHome
	ScreenCustomers
	ScreenProducts
	ScreenRentals
	ScreenRentalDetail
	ScreenNewRental
)

// sessionChangedMsg is sent when the login-state monitor flips
type sessionChangedMsg session.State

// homeLoadedMsg is sent when dashboard data arrives
type homeLoadedMsg struct {
	stats   *api.Stats
	rentals []api.Rental
	err     error
}

// customersLoadedMsg is sent when the customer list arrives
type customersLoadedMsg struct {
	customers []api.Customer
	err       error
}

// productsLoadedMsg is sent when the product list arrives
type productsLoadedMsg struct {
	products []api.Product
	err      error
}

// rentalsLoadedMsg is sent when a rental listing arrives
type rentalsLoadedMsg struct {
	rentals []api.Rental
	filter  api.RentalFilter
	err     error
}

// rentalLoadedMsg is sent when a single rental arrives
type rentalLoadedMsg struct {
	rental *api.Rental
	err    error
}

// loginResultMsg is sent when a login attempt completes
type loginResultMsg struct {
	err error
}

// rentalReturnedMsg is sent when a return was recorded
type rentalReturnedMsg struct {
	rental *api.Rental
	err    error
}

// rentalCreatedMsg is sent when a new rental was created
type rentalCreatedMsg struct {
	rental *api.Rental
	err    error
}

// newRentalDataMsg carries the pick lists for the new-rental flow
type newRentalDataMsg struct {
	customers []api.Customer
	products  []api.Product
	err       error
}

// App is the root model for the TUI
type App struct {
	client  *api.Client
	store   session.Store
	monitor *session.Monitor
	log     zerolog.Logger

	screen  Screen
	width   int
	height  int
	loading bool
	spin    spinner.Model
	err     error

	// Child screens
	login     *loginScreen
	home      *homeScreen
	customers *customersScreen
	products  *productsScreen
	rentals   *rentalsScreen
	detail    *rentalDetailScreen
	newRental *newRentalScreen
}

// New creates the TUI application. The monitor must already be running.
func New(client *api.Client, store session.Store, monitor *session.Monitor, log zerolog.Logger) *App {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(styles.PrimaryLight)

	a := &App{
		client:  client,
		store:   store,
		monitor: monitor,
		log:     log,
		spin:    sp,
		login:   newLoginScreen(),
	}
	if _, ok := store.Token(); ok {
		a.screen = ScreenHome
		a.loading = true
	} else {
		a.screen = ScreenLogin
	}
	return a
}

// Init implements tea.Model
func (a *App) Init() tea.Cmd {
	cmds := []tea.Cmd{a.waitForSession(), a.spin.Tick}
	if a.screen == ScreenHome {
		cmds = append(cmds, a.loadHome())
	}
	return tea.Batch(cmds...)
}

// waitForSession blocks on the next monitor transition. It is
// re-issued after every received message so expired sessions demote
// the UI to the login screen without any user action.
func (a *App) waitForSession() tea.Cmd {
	return func() tea.Msg {
		state, ok := <-a.monitor.Changes()
		if !ok {
			return nil
		}
		return sessionChangedMsg(state)
	}
}

// Requests deliberately run on a background context: leaving a screen
// does not cancel them, and a late response for a screen that is gone
// must simply be dropped.
func (a *App) loadHome() tea.Cmd {
	return func() tea.Msg {
		ctx := context.Background()
		stats, err := a.client.Stats(ctx)
		if err != nil {
			return homeLoadedMsg{err: err}
		}
		rentals, err := a.client.Rentals(ctx, api.FilterActive)
		if err != nil {
			return homeLoadedMsg{err: err}
		}
		return homeLoadedMsg{stats: stats, rentals: rentals}
	}
}

func (a *App) loadCustomers(search string) tea.Cmd {
	return func() tea.Msg {
		customers, err := a.client.Customers(context.Background(), search)
		return customersLoadedMsg{customers: customers, err: err}
	}
}

func (a *App) loadProducts() tea.Cmd {
	return func() tea.Msg {
		products, err := a.client.Products(context.Background())
		return productsLoadedMsg{products: products, err: err}
	}
}

func (a *App) loadRentals(filter api.RentalFilter) tea.Cmd {
	return func() tea.Msg {
		rentals, err := a.client.Rentals(context.Background(), filter)
		return rentalsLoadedMsg{rentals: rentals, filter: filter, err: err}
	}
}

func (a *App) loadRental(id int) tea.Cmd {
	return func() tea.Msg {
		rental, err := a.client.Rental(context.Background(), id)
		return rentalLoadedMsg{rental: rental, err: err}
	}
}

func (a *App) doLogin(username, password string) tea.Cmd {
	return func() tea.Msg {
		_, err := a.client.Login(context.Background(), username, password)
		return loginResultMsg{err: err}
	}
}

func (a *App) doReturn(id int, req api.ReturnRequest) tea.Cmd {
	return func() tea.Msg {
		rental, err := a.client.ReturnRental(context.Background(), id, req)
		return rentalReturnedMsg{rental: rental, err: err}
	}
}

func (a *App) doCreateRental(req *api.CreateRentalRequest) tea.Cmd {
	return func() tea.Msg {
		rental, err := a.client.CreateRental(context.Background(), req)
		return rentalCreatedMsg{rental: rental, err: err}
	}
}

func (a *App) loadNewRentalData() tea.Cmd {
	return func() tea.Msg {
		ctx := context.Background()
		customers, err := a.client.Customers(ctx, "")
		if err != nil {
			return newRentalDataMsg{err: err}
		}
		products, err := a.client.AvailableProducts(ctx)
		if err != nil {
			return newRentalDataMsg{err: err}
		}
		return newRentalDataMsg{customers: customers, products: products}
	}
}

// Update implements tea.Model
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		return a, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		a.spin, cmd = a.spin.Update(msg)
		return a, cmd

	case sessionChangedMsg:
		return a.updateSession(session.State(msg))

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return a, tea.Quit
		}
		switch a.screen {
		case ScreenLogin:
			return a.updateLogin(msg)
		case ScreenHome:
			return a.updateHome(msg)
		case ScreenCustomers:
			return a.updateCustomers(msg)
		case ScreenProducts:
			return a.updateProducts(msg)
		case ScreenRentals:
			return a.updateRentals(msg)
		case ScreenRentalDetail:
			return a.updateRentalDetail(msg)
		case ScreenNewRental:
			return a.updateNewRental(msg)
		}
		return a, nil

	case homeLoadedMsg:
		a.loading = false
		if msg.err != nil {
			return a.handleLoadError(msg.err)
		}
		a.home = newHomeScreen(msg.stats, msg.rentals)
		a.err = nil
		return a, nil

	case customersLoadedMsg:
		a.loading = false
		if msg.err != nil {
			return a.handleLoadError(msg.err)
		}
		if a.customers == nil {
			a.customers = newCustomersScreen()
		}
		a.customers.setCustomers(msg.customers)
		a.err = nil
		return a, nil

	case productsLoadedMsg:
		a.loading = false
		if msg.err != nil {
			return a.handleLoadError(msg.err)
		}
		a.products = newProductsScreen(msg.products)
		a.err = nil
		return a, nil

	case rentalsLoadedMsg:
		a.loading = false
		if msg.err != nil {
			return a.handleLoadError(msg.err)
		}
		if a.rentals == nil {
			a.rentals = newRentalsScreen()
		}
		a.rentals.setRentals(msg.rentals, msg.filter)
		a.err = nil
		return a, nil

	case rentalLoadedMsg:
		a.loading = false
		if msg.err != nil {
			return a.handleLoadError(msg.err)
		}
		a.detail = newRentalDetailScreen(msg.rental)
		a.screen = ScreenRentalDetail
		a.err = nil
		return a, nil

	case loginResultMsg:
		a.loading = false
		if msg.err != nil {
			a.login.setError(msg.err)
			return a, nil
		}
		// The monitor flips to authenticated via the store
		// notification; switch eagerly so the dashboard starts
		// loading right away.
		a.screen = ScreenHome
		a.loading = true
		return a, a.loadHome()

	case rentalReturnedMsg:
		a.loading = false
		if msg.err != nil {
			return a.handleLoadError(msg.err)
		}
		a.detail = newRentalDetailScreen(msg.rental)
		a.err = nil
		return a, nil

	case rentalCreatedMsg:
		a.loading = false
		if msg.err != nil {
			return a.handleLoadError(msg.err)
		}
		a.detail = newRentalDetailScreen(msg.rental)
		a.screen = ScreenRentalDetail
		a.err = nil
		return a, nil

	case newRentalDataMsg:
		a.loading = false
		if msg.err != nil {
			return a.handleLoadError(msg.err)
		}
		a.newRental = newNewRentalScreen(msg.customers, msg.products)
		a.screen = ScreenNewRental
		a.err = nil
		return a, nil
	}

	return a, nil
}

// updateSession routes on a login-state transition.
func (a *App) updateSession(state session.State) (tea.Model, tea.Cmd) {
	a.log.Debug().Stringer("state", state).Msg("session state changed")
	cmds := []tea.Cmd{a.waitForSession()}

	switch state {
	case session.StateUnauthenticated:
		if a.screen != ScreenLogin {
			// Token expired or cleared elsewhere: back to login.
			a.screen = ScreenLogin
			a.login = newLoginScreen()
			a.loading = false
		}
	case session.StateAuthenticated:
		if a.screen == ScreenLogin {
			a.screen = ScreenHome
			a.loading = true
			cmds = append(cmds, a.loadHome())
		}
	}
	return a, tea.Batch(cmds...)
}

// handleLoadError records a load failure. Authorization failures need
// no handling here: the 401 side effect cleared the store and the
// session monitor routes back to login.
func (a *App) handleLoadError(err error) (tea.Model, tea.Cmd) {
	a.err = err
	a.log.Error().Err(err).Msg("load failed")
	return a, nil
}

// View implements tea.Model
func (a *App) View() string {
	var body string
	switch {
	case a.loading:
		body = styles.Card.Render(a.spin.View() + " Lade Daten...")
	case a.screen == ScreenLogin:
		body = a.login.View()
	case a.screen == ScreenHome && a.home != nil:
		body = a.home.View()
	case a.screen == ScreenCustomers && a.customers != nil:
		body = a.customers.View()
	case a.screen == ScreenProducts && a.products != nil:
		body = a.products.View()
	case a.screen == ScreenRentals && a.rentals != nil:
		body = a.rentals.View()
	case a.screen == ScreenRentalDetail && a.detail != nil:
		body = a.detail.View()
	case a.screen == ScreenNewRental && a.newRental != nil:
		body = a.newRental.View()
	default:
		body = styles.Card.Render(a.spin.View() + " Lade Daten...")
	}

	if a.err != nil {
		body += "\n" + styles.ErrorBanner.Render("Fehler: "+a.err.Error())
	}
	return body + "\n"
}
