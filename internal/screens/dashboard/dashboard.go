package dashboard

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/pylearn/internal/catalog"
	"github.com/abhisek/pylearn/internal/router"
	"github.com/abhisek/pylearn/internal/screen"
	"github.com/abhisek/pylearn/internal/screens/activity"
	"github.com/abhisek/pylearn/internal/screens/editor"
	"github.com/abhisek/pylearn/internal/screens/lesson"
	"github.com/abhisek/pylearn/internal/session"
	"github.com/abhisek/pylearn/internal/ui/components"
	"github.com/abhisek/pylearn/internal/ui/layout"
)

const (
	tabLessons = iota
	tabProblems
	tabProjects
	tabResources
)

// flashMsg carries the result of a dashboard action.
type flashMsg struct {
	Text string
	Err  bool
}

// DashboardScreen shows the learner's progress and the content of the
// current stage.
type DashboardScreen struct {
	store        *session.Store
	loginFactory func() screen.Screen
	tabs         components.Tabs
	menu         components.Menu
	stageID      int
	flash        flashMsg
}

var _ screen.Screen = (*DashboardScreen)(nil)
var _ screen.KeyHintProvider = (*DashboardScreen)(nil)
var _ screen.Resumer = (*DashboardScreen)(nil)

// New creates a DashboardScreen. loginFactory builds the screen shown
// after logout.
func New(st *session.Store, loginFactory func() screen.Screen) *DashboardScreen {
	d := &DashboardScreen{
		store:        st,
		loginFactory: loginFactory,
		tabs:         components.NewTabs("Lessons", "Problems", "Projects", "Resources"),
	}
	if cur, ok := st.CurrentStage(); ok {
		d.stageID = cur.ID
	}
	d.refresh()
	return d
}

func (d *DashboardScreen) Init() tea.Cmd {
	return nil
}

// Resume picks up completions made on the lesson and editor screens.
func (d *DashboardScreen) Resume() tea.Cmd {
	d.refresh()
	return nil
}

func (d *DashboardScreen) Title() string {
	return "Dashboard"
}

func (d *DashboardScreen) KeyHints() []layout.KeyHint {
	hints := []layout.KeyHint{
		{Key: "Tab", Description: "Switch"},
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: d.enterHint()},
	}
	if d.tabs.Active == tabProjects {
		hints = append(hints, layout.KeyHint{Key: "c", Description: "Complete"})
	}
	return append(hints,
		layout.KeyHint{Key: "a", Description: "Activity"},
		layout.KeyHint{Key: "x", Description: "Logout"},
	)
}

func (d *DashboardScreen) enterHint() string {
	switch d.tabs.Active {
	case tabProblems:
		return "Solve"
	case tabProjects:
		return "Start"
	case tabResources:
		return "Link"
	default:
		return "Open"
	}
}

func (d *DashboardScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case flashMsg:
		d.flash = msg
		d.refresh()
		return d, nil

	case tea.KeyMsg:
		key := msg.String()
		if d.tabs.HandleKey(key) {
			d.menu.Selected = 0
			d.flash = flashMsg{}
			d.refresh()
			return d, nil
		}

		switch key {
		case "a":
			st := d.store
			return d, func() tea.Msg {
				return router.PushScreenMsg{Screen: activity.New(st)}
			}
		case "x":
			d.store.Logout(context.Background())
			next := d.loginFactory()
			return d, func() tea.Msg {
				return router.ResetScreenMsg{Screen: next}
			}
		case "c":
			if d.tabs.Active == tabProjects {
				return d, d.completeProject()
			}
			return d, nil
		}
	}

	var cmd tea.Cmd
	d.menu, cmd = d.menu.Update(msg)
	return d, cmd
}

// refresh rebuilds the list for the active tab from the store.
func (d *DashboardScreen) refresh() {
	var items []components.MenuItem
	switch d.tabs.Active {
	case tabLessons:
		items = d.lessonItems()
	case tabProblems:
		items = d.problemItems()
	case tabProjects:
		items = d.projectItems()
	case tabResources:
		items = d.resourceItems()
	}
	d.menu.SetItems(items)
}

func (d *DashboardScreen) lessonItems() []components.MenuItem {
	st := d.store
	lessons := st.Lessons(d.stageID)
	items := make([]components.MenuItem, 0, len(lessons))
	for _, l := range lessons {
		id := l.ID
		items = append(items, components.MenuItem{
			Label:  fmt.Sprintf("%s %d. %s", l.State.Icon(), l.Order, l.Title),
			Detail: fmt.Sprintf("%d min · %s", l.Duration, l.State.Label()),
			Action: func() tea.Cmd {
				return func() tea.Msg {
					return router.PushScreenMsg{Screen: lesson.New(st, id)}
				}
			},
		})
	}
	return items
}

func (d *DashboardScreen) problemItems() []components.MenuItem {
	st := d.store
	problems := st.Problems(d.stageID)
	items := make([]components.MenuItem, 0, len(problems))
	for _, p := range problems {
		id := p.ID
		items = append(items, components.MenuItem{
			Label:  fmt.Sprintf("%s %s", doneIcon(p.IsCompleted), p.Title),
			Detail: fmt.Sprintf("%s · %s · %s", p.Difficulty, strings.Join(p.Tags, ", "), p.Source),
			Action: func() tea.Cmd {
				return func() tea.Msg {
					return router.PushScreenMsg{Screen: editor.New(st, id)}
				}
			},
		})
	}
	return items
}

func (d *DashboardScreen) projectItems() []components.MenuItem {
	st := d.store
	projects := st.Projects(d.stageID)
	items := make([]components.MenuItem, 0, len(projects))
	for _, p := range projects {
		id := p.ID
		items = append(items, components.MenuItem{
			Label:  fmt.Sprintf("%s %s", doneIcon(p.IsCompleted), p.Title),
			Detail: fmt.Sprintf("%s · ~%dh · %s", p.Difficulty, p.EstimatedHours, strings.Join(p.Skills, ", ")),
			Action: func() tea.Cmd {
				return func() tea.Msg {
					text, err := st.StartProject(context.Background(), id)
					if err != nil {
						return flashMsg{Text: err.Error(), Err: true}
					}
					return flashMsg{Text: text}
				}
			},
		})
	}
	return items
}

func (d *DashboardScreen) resourceItems() []components.MenuItem {
	resources := d.store.Resources(d.stageID)
	items := make([]components.MenuItem, 0, len(resources))
	for _, r := range resources {
		url := r.URL
		detail := r.Description
		if r.IsFree {
			detail += " · Free"
		}
		items = append(items, components.MenuItem{
			Label:  fmt.Sprintf("%s %s", r.Kind.Icon(), r.Title),
			Detail: detail,
			Action: func() tea.Cmd {
				return func() tea.Msg {
					return flashMsg{Text: "Open " + url}
				}
			},
		})
	}
	return items
}

// completeProject marks the selected project complete.
func (d *DashboardScreen) completeProject() tea.Cmd {
	projects := d.store.Projects(d.stageID)
	if d.menu.Selected < 0 || d.menu.Selected >= len(projects) {
		return nil
	}
	st := d.store
	id := projects[d.menu.Selected].ID
	return func() tea.Msg {
		out, err := st.CompleteProject(context.Background(), id)
		if err != nil {
			return flashMsg{Text: err.Error(), Err: true}
		}
		return flashMsg{Text: out.Message}
	}
}

func doneIcon(done bool) string {
	if done {
		return "✓"
	}
	return "○"
}

func (d *DashboardScreen) View(width, height int) string {
	sideWidth := sidebarWidth(width)
	mainWidth := width - sideWidth - 3
	if mainWidth < 20 {
		mainWidth = 20
	}

	sidebar := renderSidebar(d.store.Progress(), sideWidth)

	var sections []string
	if stage, err := d.store.Stage(d.stageID); err == nil {
		if mod, found := d.store.Module(stage.ID); found {
			sections = append(sections, renderModuleCard(mod, stage, mainWidth))
		}
	}
	sections = append(sections, d.tabs.View(d.tabCounts()))
	sections = append(sections, "")
	if len(d.menu.Items) == 0 {
		sections = append(sections, renderEmpty(d.tabs.Labels[d.tabs.Active]))
	} else {
		sections = append(sections, d.menu.View())
	}
	if d.flash.Text != "" {
		sections = append(sections, renderFlash(d.flash))
	}

	main := lipgloss.NewStyle().
		Width(mainWidth).
		Render(strings.Join(sections, "\n"))

	return lipgloss.JoinHorizontal(lipgloss.Top, " ", sidebar, " ", main)
}

func (d *DashboardScreen) tabCounts() []int {
	return []int{
		len(d.store.Lessons(d.stageID)),
		len(d.store.Problems(d.stageID)),
		len(d.store.Projects(d.stageID)),
		len(d.store.Resources(d.stageID)),
	}
}

// sidebarWidth narrows the sidebar on compact terminals.
func sidebarWidth(width int) int {
	if layout.IsCompactWidth(width) {
		return 26
	}
	return 32
}

func renderEmpty(tab string) string {
	return fmt.Sprintf("    No %s for this stage yet.", strings.ToLower(tab))
}

// stageLabel returns the sidebar label for a stage.
func stageLabel(st session.StageEntry) string {
	if st.Status == catalog.StageInProgress {
		return fmt.Sprintf("%s (%d/%d)", st.Status.Label(), st.CompletedLessons, st.TotalLessons)
	}
	return st.Status.Label()
}
