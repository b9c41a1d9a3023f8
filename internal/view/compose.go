// Package view turns the dashboard's state cells into a panel tree and
// renders it as HTML.
package view

import (
	"github.com/ziadkadry99/mission-control/internal/nav"
	"github.com/ziadkadry99/mission-control/internal/provider"
	"github.com/ziadkadry99/mission-control/internal/theme"
)

// Screen is the top-level view.
type Screen string

const (
	ScreenLogin     Screen = "login"
	ScreenDashboard Screen = "dashboard"
)

// Input is everything Compose reads. The three state cells are
// independent; Section is ignored while unauthenticated.
type Input struct {
	Authenticated bool
	Theme         theme.Theme
	Section       nav.Section
	LoginError    string
	Data          *provider.Snapshot
}

// Tree is the composed view.
type Tree struct {
	Screen    Screen
	Theme     theme.Theme
	Dark      bool
	Toggle    ThemeToggle
	Login     *LoginView
	Dashboard *DashboardView
}

// ThemeToggle is the control available on both screens.
type ThemeToggle struct {
	Label  string
	Target theme.Theme
}

// LoginView is the passphrase form.
type LoginView struct {
	Error string
}

// NavItem is one sidebar control.
type NavItem struct {
	Section nav.Section
	Label   string
	Active  bool
}

// DashboardView is the authenticated shell. Exactly one of Overview, Ops
// and Usage is set.
type DashboardView struct {
	Active   nav.Section
	Title    string
	Nav      []NavItem
	Overview *OverviewGroup
	Ops      *OpsGroup
	Usage    *UsageGroup
}

// Chip is a rounded status badge.
type Chip struct {
	Label  string
	Detail string
	Tone   Tone
}

type OverviewGroup struct {
	Skills       []Chip
	Health       HealthPanel
	Connections  []ConnectionRow
	MissingTools []provider.MissingTool
}

type HealthPanel struct {
	Uptime       string
	RecentErrors int
	APIs         []APIRow
}

type APIRow struct {
	Name   string
	Status string
	Tone   Tone
}

type ConnectionRow struct {
	Name string
	Note string
	Chip Chip
}

type OpsGroup struct {
	Projects    []ProjectRow
	SubAgents   []provider.SubAgent
	Crons       []provider.Cron
	QuickStatus []Chip
}

type ProjectRow struct {
	Name    string
	Updated string
	Chip    Chip
}

type UsageGroup struct {
	Tokens24h     int64
	Cost24h       float64
	TopModels     []provider.ModelShare
	Security      SecurityPanel
	Optimisations []string
}

type SecurityPanel struct {
	Score           int
	Rating          Chip
	Alerts          []NoteRow
	APIKeys         []NoteRow
	Access          []AccessRow
	Recommendations []string
}

// NoteRow is a titled row with a note and a chip.
type NoteRow struct {
	Title string
	Note  string
	Chip  Chip
}

type AccessRow struct {
	When   string
	IP     string
	Action string
	Result string
	Tone   Tone
}

// Panel titles, in display order per group.
var groupPanels = map[nav.Section][]string{
	nav.Overview: {"Skills", "System health", "Connections", "Missing tools"},
	nav.Ops:      {"Projects", "Sub-agents", "Crons", "Quick status"},
	nav.Usage:    {"Usage", "Security", "Optimisations"},
}

// PanelTitles lists the panels of the visible group.
func (d *DashboardView) PanelTitles() []string {
	return append([]string(nil), groupPanels[d.Active]...)
}

// Compose maps the state cells and static data to a panel tree.
func Compose(in Input) Tree {
	th, ok := theme.Parse(string(in.Theme))
	if !ok {
		th = theme.Default
	}

	t := Tree{
		Theme: th,
		Dark:  th == theme.Dark,
		Toggle: ThemeToggle{
			Label:  "Dark",
			Target: th.Opposite(),
		},
	}
	if th == theme.Dark {
		t.Toggle.Label = "Light"
	}

	if !in.Authenticated {
		t.Screen = ScreenLogin
		t.Login = &LoginView{Error: in.LoginError}
		return t
	}

	data := in.Data
	if data == nil {
		data = &provider.Snapshot{}
	}

	section, err := nav.ParseSection(string(in.Section))
	if err != nil {
		section = nav.Overview
	}

	d := &DashboardView{Active: section, Title: section.Title()}
	for _, s := range nav.Sections() {
		d.Nav = append(d.Nav, NavItem{Section: s, Label: s.Label(), Active: s == section})
	}

	switch section {
	case nav.Ops:
		d.Ops = composeOps(data)
	case nav.Usage:
		d.Usage = composeUsage(data)
	default:
		d.Overview = composeOverview(data)
	}

	t.Screen = ScreenDashboard
	t.Dashboard = d
	return t
}

func composeOverview(data *provider.Snapshot) *OverviewGroup {
	g := &OverviewGroup{
		Health: HealthPanel{
			Uptime:       data.SystemHealth.Uptime,
			RecentErrors: data.SystemHealth.RecentErrors,
		},
		MissingTools: data.MissingTools,
	}
	for _, s := range data.Skills {
		g.Skills = append(g.Skills, Chip{Label: s.Name, Detail: s.Version, Tone: statusTone(s.Status)})
	}
	for _, a := range data.SystemHealth.APIStatus {
		g.Health.APIs = append(g.Health.APIs, APIRow{Name: a.Name, Status: a.Status, Tone: apiTone(a.Status)})
	}
	for _, c := range data.Connections {
		g.Connections = append(g.Connections, ConnectionRow{
			Name: c.Name,
			Note: c.Note,
			Chip: Chip{Label: c.Status, Tone: connectionTone(c.Status)},
		})
	}
	return g
}

func composeOps(data *provider.Snapshot) *OpsGroup {
	g := &OpsGroup{
		SubAgents: data.SubAgents,
		Crons:     data.Crons,
	}
	for _, p := range data.Projects {
		g.Projects = append(g.Projects, ProjectRow{
			Name:    p.Name,
			Updated: p.Updated,
			Chip:    Chip{Label: p.Status, Tone: projectTone(p.Status)},
		})
	}
	for _, q := range data.QuickStatus {
		g.QuickStatus = append(g.QuickStatus, Chip{Label: q.Label, Tone: chipTone(q.Tone)})
	}
	return g
}

func composeUsage(data *provider.Snapshot) *UsageGroup {
	sec := data.Security
	tone, label := scoreRating(sec.Score)

	g := &UsageGroup{
		Tokens24h:     data.Usage.Tokens24h,
		Cost24h:       data.Usage.Cost24h,
		TopModels:     data.Usage.TopModels,
		Optimisations: data.Optimisations,
		Security: SecurityPanel{
			Score:           sec.Score,
			Rating:          Chip{Label: label, Tone: tone},
			Recommendations: sec.Recommendations,
		},
	}
	for _, a := range sec.Alerts {
		g.Security.Alerts = append(g.Security.Alerts, NoteRow{
			Title: a.Title,
			Note:  a.Note,
			Chip:  Chip{Label: a.Severity, Tone: severityTone(a.Severity)},
		})
	}
	for _, k := range sec.APIKeys {
		g.Security.APIKeys = append(g.Security.APIKeys, NoteRow{
			Title: k.Name,
			Note:  k.Note,
			Chip:  Chip{Label: k.Status, Tone: statusTone(k.Status)},
		})
	}
	for _, x := range sec.Access {
		g.Security.Access = append(g.Security.Access, AccessRow{
			When:   x.When,
			IP:     x.IP,
			Action: x.Action,
			Result: x.Result,
			Tone:   accessTone(x.Result),
		})
	}
	return g
}
