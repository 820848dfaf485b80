package main

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/jwebster45206/rockhound/internal/imageprobe"
	"github.com/jwebster45206/rockhound/pkg/card"
	"github.com/jwebster45206/rockhound/pkg/catalog"
	"github.com/jwebster45206/rockhound/pkg/imagecache"
)

const (
	SearchPlaceholder = "Search by name, mineral or type..."
	NotAvailableText  = "not available"
	collapsedMinerals = 3
)

// BrowseUI is the BubbleTea model that runs the catalog browser.
// https://github.com/charmbracelet/bubbletea
type BrowseUI struct {
	config   *BrowseConfig
	client   *http.Client
	catalog  *catalog.Catalog
	deck     *card.Deck
	failures *imagecache.MemoryCache
	prober   *imageprobe.Prober

	search   textinput.Model
	viewport viewport.Model
	visible  []catalog.Location
	selected int
	ready    bool
	width    int
	height   int
	status   string

	// Probe bookkeeping per (location id, image index) slot. Failed slots
	// live in the failure cache and are never probed again.
	probedOK map[string]bool
	probing  map[string]bool
}

type imageProbeMsg struct {
	locationID  string
	imageIndex  int
	displayName string
	err         error
}

type failureReportedMsg struct {
	err error
}

var (
	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("214")). // amber
			Bold(true)

	selectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("0")).
			Background(lipgloss.Color("214")).
			Bold(true)

	cardTitleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("86")). // green
			Bold(true)

	typeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("39")) // teal

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")) // dark grey

	failedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")) // red

	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))

	separatorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))
)

var titleCaser = cases.Title(language.English)

func NewBrowseUI(cfg *BrowseConfig, client *http.Client, locations []catalog.Location) (BrowseUI, error) {
	cat, err := catalog.New(locations)
	if err != nil {
		return BrowseUI{}, err
	}

	ti := textinput.New()
	ti.Placeholder = SearchPlaceholder
	ti.Prompt = labelStyle.Render("search: ")
	ti.CharLimit = 100
	ti.Focus()

	vp := viewport.New(60, 20)

	deck := card.NewDeck()
	visible := cat.FilteredLocations()
	deck.Reconcile(visible)

	return BrowseUI{
		config:   cfg,
		client:   client,
		catalog:  cat,
		deck:     deck,
		failures: imagecache.NewMemoryCache(),
		prober:   imageprobe.New(cfg.Timeout),
		search:   ti,
		viewport: vp,
		visible:  visible,
		probedOK: make(map[string]bool),
		probing:  make(map[string]bool),
	}, nil
}

func slotKey(locationID string, imageIndex int) string {
	return fmt.Sprintf("%s:%d", locationID, imageIndex)
}

func (m BrowseUI) Init() tea.Cmd {
	cmds := []tea.Cmd{textinput.Blink}
	if m.config.PreloadImages {
		// One eager pass over every image of every location, filtered in
		// view or not. Failures land in the cache before first render.
		for _, loc := range m.catalog.Locations() {
			for i := range loc.Images {
				m.probing[slotKey(loc.ID, i)] = true
				cmds = append(cmds, m.probeImage(loc, i))
			}
		}
	}
	return tea.Batch(cmds...)
}

func (m BrowseUI) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.viewport.Width = m.width - 4
		m.viewport.Height = m.height - 6
		m.search.Width = m.width - 14
		m.ready = true
		m.writeCatalogContent()

	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			return m, tea.Quit

		case tea.KeyUp:
			if m.selected > 0 {
				m.selected--
			}
			m.writeCatalogContent()

		case tea.KeyDown:
			if m.selected < len(m.visible)-1 {
				m.selected++
			}
			m.writeCatalogContent()

		case tea.KeyEnter:
			// Expand/collapse only; the carousel has its own keys.
			if st := m.selectedState(); st != nil {
				st.ToggleExpanded()
				cmds = append(cmds, m.probeVisible()...)
			}
			m.writeCatalogContent()

		case tea.KeyLeft, tea.KeyRight:
			// Carousel step, deliberately not coupled to expand/collapse.
			if st := m.selectedState(); st != nil {
				if msg.Type == tea.KeyRight {
					st.AdvanceImage(card.Next)
				} else {
					st.AdvanceImage(card.Prev)
				}
				cmds = append(cmds, m.probeVisible()...)
			}
			m.writeCatalogContent()

		case tea.KeyCtrlY:
			m.status = m.copyImageURI()
			m.writeCatalogContent()

		default:
			var cmd tea.Cmd
			before := m.search.Value()
			m.search, cmd = m.search.Update(msg)
			cmds = append(cmds, cmd)

			if m.search.Value() != before {
				m.applySearch()
				cmds = append(cmds, m.probeVisible()...)
			}
		}

	case imageProbeMsg:
		key := slotKey(msg.locationID, msg.imageIndex)
		delete(m.probing, key)
		if msg.err != nil {
			// Recorded against the stable id, so this is safe even when the
			// card has been filtered out since the probe started. Card
			// state is never touched from here.
			_ = m.failures.RecordFailure(context.Background(), msg.locationID, msg.imageIndex, msg.displayName)
			cmds = append(cmds, m.reportFailure(msg.locationID, msg.imageIndex, msg.displayName))
		} else {
			m.probedOK[key] = true
		}
		m.writeCatalogContent()

	case failureReportedMsg:
		if msg.err != nil {
			m.status = "offline: failure kept locally"
			m.writeCatalogContent()
		}
	}

	var vpCmd tea.Cmd
	m.viewport, vpCmd = m.viewport.Update(msg)
	cmds = append(cmds, vpCmd)

	return m, tea.Batch(cmds...)
}

// applySearch pushes the search box value into the catalog and reconciles
// the deck: cards leaving the view lose their state, cards re-entering
// start fresh. Recorded image failures survive either way.
func (m *BrowseUI) applySearch() {
	m.catalog.SetSearchTerm(m.search.Value())
	m.visible = m.catalog.FilteredLocations()
	m.deck.Reconcile(m.visible)
	if m.selected >= len(m.visible) {
		m.selected = len(m.visible) - 1
	}
	if m.selected < 0 {
		m.selected = 0
	}
	m.writeCatalogContent()
}

func (m *BrowseUI) selectedState() *card.State {
	if m.selected < 0 || m.selected >= len(m.visible) {
		return nil
	}
	return m.deck.Get(m.visible[m.selected].ID)
}

// probeVisible returns probe commands for every image slot currently on
// screen that has no verdict yet. Known-bad slots are never re-probed.
func (m *BrowseUI) probeVisible() []tea.Cmd {
	var cmds []tea.Cmd
	for _, loc := range m.visible {
		st := m.deck.Get(loc.ID)
		if st == nil || !st.Expanded || len(loc.Images) == 0 {
			continue
		}
		idx := st.CarouselIndex
		key := slotKey(loc.ID, idx)
		if m.probedOK[key] || m.probing[key] || m.failures.HasFailure(loc.ID, idx) {
			continue
		}
		m.probing[key] = true
		cmds = append(cmds, m.probeImage(loc, idx))
	}
	return cmds
}

func (m BrowseUI) probeImage(loc catalog.Location, imageIndex int) tea.Cmd {
	uri := loc.Images[imageIndex]
	return func() tea.Msg {
		err := m.prober.Probe(context.Background(), uri)
		return imageProbeMsg{
			locationID:  loc.ID,
			imageIndex:  imageIndex,
			displayName: loc.Name,
			err:         err,
		}
	}
}

func (m BrowseUI) reportFailure(locationID string, imageIndex int, displayName string) tea.Cmd {
	return func() tea.Msg {
		err := reportImageFailure(m.client, m.config.APIBaseURL, locationID, imageIndex, displayName)
		return failureReportedMsg{err: err}
	}
}

func (m *BrowseUI) copyImageURI() string {
	if m.selected < 0 || m.selected >= len(m.visible) {
		return ""
	}
	loc := m.visible[m.selected]
	st := m.deck.Get(loc.ID)
	if st == nil {
		return ""
	}
	uri := m.displayURI(loc, st.CarouselIndex)
	if err := clipboard.WriteAll(uri); err != nil {
		return "clipboard unavailable"
	}
	return "image URL copied"
}

// displayURI applies the three-tier resolve for one slot, re-evaluated on
// every render so a late failure flips the slot to its placeholder.
func (m *BrowseUI) displayURI(loc catalog.Location, imageIndex int) string {
	fallback := ""
	if imageIndex >= 0 && imageIndex < len(loc.Images) {
		fallback = loc.Images[imageIndex]
	}
	uri, _ := m.failures.Resolve(context.Background(), loc.ID, imageIndex, fallback)
	return uri
}

func (m *BrowseUI) writeCatalogContent() {
	width := m.viewport.Width
	if width <= 0 {
		width = 60
	}

	var content strings.Builder
	for i, loc := range m.visible {
		st := m.deck.Get(loc.ID)
		if st == nil {
			continue
		}
		content.WriteString(m.renderCard(loc, st, i == m.selected, width))
		content.WriteString("\n")
	}

	if len(m.visible) == 0 {
		content.WriteString(labelStyle.Render("No locations match your search.") + "\n")
	}

	m.viewport.SetContent(content.String())
}

func (m *BrowseUI) renderCard(loc catalog.Location, st *card.State, selected bool, width int) string {
	var b strings.Builder

	marker := "▶ "
	if st.Expanded {
		marker = "▼ "
	}

	title := cardTitleStyle.Render(marker + loc.Name)
	if selected {
		title = selectedStyle.Render(marker + loc.Name)
	}
	b.WriteString(title)
	if loc.Type != "" {
		b.WriteString("  " + typeStyle.Render("["+titleCaser.String(loc.Type)+"]"))
	}
	b.WriteString("\n")

	b.WriteString("  " + labelStyle.Render("minerals: ") + mineralSummary(loc.Minerals) + "\n")

	if !st.Expanded {
		return b.String()
	}

	if loc.Description != "" {
		b.WriteString("\n" + wordwrap.String(loc.Description, width-4) + "\n\n")
	}
	b.WriteString("  " + labelStyle.Render("difficulty: ") + orNotAvailable(loc.Difficulty) + "\n")
	b.WriteString("  " + labelStyle.Render("access:     ") + orNotAvailable(loc.Access) + "\n")
	b.WriteString("  " + labelStyle.Render("tools:      ") + orNotAvailable(strings.Join(loc.Tools, ", ")) + "\n")
	b.WriteString("  " + m.renderCarousel(loc, st) + "\n")

	return b.String()
}

func (m *BrowseUI) renderCarousel(loc catalog.Location, st *card.State) string {
	if len(loc.Images) == 0 {
		return labelStyle.Render("image:      ") + m.displayURI(loc, 0)
	}

	idx := st.CarouselIndex
	line := labelStyle.Render(fmt.Sprintf("image %d/%d:  ", idx+1, len(loc.Images))) + m.displayURI(loc, idx)
	if m.failures.HasFailure(loc.ID, idx) {
		line += " " + failedStyle.Render("(failed)")
	}
	if len(loc.Images) > 1 {
		line += " " + labelStyle.Render("←/→")
	}
	return line
}

func mineralSummary(minerals []string) string {
	if len(minerals) == 0 {
		return NotAvailableText
	}
	if len(minerals) <= collapsedMinerals {
		return strings.Join(minerals, ", ")
	}
	shown := strings.Join(minerals[:collapsedMinerals], ", ")
	return fmt.Sprintf("%s %s", shown, labelStyle.Render(fmt.Sprintf("+%d more", len(minerals)-collapsedMinerals)))
}

func orNotAvailable(s string) string {
	if strings.TrimSpace(s) == "" {
		return NotAvailableText
	}
	return s
}

func (m BrowseUI) View() string {
	if !m.ready {
		return "\n  Initializing..."
	}

	var b strings.Builder
	b.WriteString("  " + titleStyle.Render("ROCKHOUND") + statusLine(m.status) + "\n")
	b.WriteString("  " + m.search.View() + "\n")
	sepWidth := m.width - 4
	if sepWidth < 1 {
		sepWidth = 1
	}
	b.WriteString("  " + separatorStyle.Render(strings.Repeat("─", sepWidth)) + "\n")
	b.WriteString(m.viewport.View() + "\n")
	b.WriteString("  " + statusStyle.Render("↑/↓ select · enter expand · ←/→ images · ctrl+y copy url · esc quit"))
	return b.String()
}

func statusLine(status string) string {
	if status == "" {
		return ""
	}
	return "  " + statusStyle.Render(status)
}
