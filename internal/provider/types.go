package provider

// Skill is an installed agent capability.
type Skill struct {
	Name    string `yaml:"name" json:"name"`
	Version string `yaml:"version" json:"version"`
	Status  string `yaml:"status" json:"status"` // ok, warn, error
}

// APIStatus is the reachability of one upstream API.
type APIStatus struct {
	Name   string `yaml:"name" json:"name"`
	Status string `yaml:"status" json:"status"`
}

// SystemHealth summarizes the host.
type SystemHealth struct {
	Uptime       string      `yaml:"uptime" json:"uptime"`
	RecentErrors int         `yaml:"recent_errors" json:"recent_errors"`
	APIStatus    []APIStatus `yaml:"api_status" json:"api_status"`
}

// Connection is an integration with an external service.
type Connection struct {
	Name   string `yaml:"name" json:"name"`
	Status string `yaml:"status" json:"status"` // connected, degraded, disconnected
	Note   string `yaml:"note" json:"note"`
}

// MissingTool is a capability the operator still has to wire up.
type MissingTool struct {
	Name string `yaml:"name" json:"name"`
	Why  string `yaml:"why" json:"why"`
}

// Project is a tracked piece of work.
type Project struct {
	Name    string `yaml:"name" json:"name"`
	Status  string `yaml:"status" json:"status"` // active, blocked, done
	Updated string `yaml:"updated" json:"updated"`
}

// SubAgent is a recent delegated run.
type SubAgent struct {
	ID     string `yaml:"id" json:"id"`
	When   string `yaml:"when" json:"when"`
	Task   string `yaml:"task" json:"task"`
	Result string `yaml:"result" json:"result"`
}

// Cron is a scheduled job.
type Cron struct {
	Name     string `yaml:"name" json:"name"`
	Schedule string `yaml:"schedule" json:"schedule"`
	Next     string `yaml:"next" json:"next"`
}

// StatusChip is a one-line status shown as a chip.
type StatusChip struct {
	Label string `yaml:"label" json:"label"`
	Tone  string `yaml:"tone" json:"tone"` // good, warn, bad, neutral
}

// ModelShare is one model's share of token usage, in percent.
type ModelShare struct {
	Name  string `yaml:"name" json:"name"`
	Share int    `yaml:"share" json:"share"`
}

// Usage is the last 24 hours of model consumption.
type Usage struct {
	Tokens24h int64        `yaml:"tokens_24h" json:"tokens_24h"`
	Cost24h   float64      `yaml:"cost_24h" json:"cost_24h"`
	TopModels []ModelShare `yaml:"top_models" json:"top_models"`
}

// Alert is an open security finding.
type Alert struct {
	Title    string `yaml:"title" json:"title"`
	Severity string `yaml:"severity" json:"severity"` // high, med, low
	Note     string `yaml:"note" json:"note"`
}

// APIKey is the health of one stored credential.
type APIKey struct {
	Name   string `yaml:"name" json:"name"`
	Status string `yaml:"status" json:"status"`
	Note   string `yaml:"note" json:"note"`
}

// Access is one recent access attempt.
type Access struct {
	When   string `yaml:"when" json:"when"`
	IP     string `yaml:"ip" json:"ip"`
	Action string `yaml:"action" json:"action"`
	Result string `yaml:"result" json:"result"` // success, fail
}

// Security is the security posture panel.
type Security struct {
	Score           int      `yaml:"score" json:"score"`
	Alerts          []Alert  `yaml:"alerts" json:"alerts"`
	APIKeys         []APIKey `yaml:"api_keys" json:"api_keys"`
	Access          []Access `yaml:"access" json:"access"`
	Recommendations []string `yaml:"recommendations" json:"recommendations"`
}

// Snapshot is every record set the dashboard displays. It is read-only
// once loaded.
type Snapshot struct {
	Skills        []Skill       `yaml:"skills" json:"skills"`
	SystemHealth  SystemHealth  `yaml:"system_health" json:"system_health"`
	Connections   []Connection  `yaml:"connections" json:"connections"`
	MissingTools  []MissingTool `yaml:"missing_tools" json:"missing_tools"`
	Projects      []Project     `yaml:"projects" json:"projects"`
	SubAgents     []SubAgent    `yaml:"sub_agents" json:"sub_agents"`
	Crons         []Cron        `yaml:"crons" json:"crons"`
	QuickStatus   []StatusChip  `yaml:"quick_status" json:"quick_status"`
	Usage         Usage         `yaml:"usage" json:"usage"`
	Security      Security      `yaml:"security" json:"security"`
	Optimisations []string      `yaml:"optimisations" json:"optimisations"`
}
