package models

// GroupSummary describes one persisted group in a grouping run
type GroupSummary struct {
	DeveloperID     string `json:"developer_id"`
	PrimaryName     string `json:"primary_name"`
	PrimaryEmail    string `json:"primary_email"`
	AliasesCount    int    `json:"aliases_count"`
	ConfidenceScore int    `json:"confidence_score"`
}

// GroupingSummary is the result of an auto-grouping run
type GroupingSummary struct {
	TotalDevelopers int            `json:"total_developers"`
	GroupsCreated   int            `json:"groups_created"`
	Groups          []GroupSummary `json:"groups"`
}

// GroupingResult is the outcome of a manual grouping attempt. Conflicts are
// reported here rather than as errors so callers can show partial progress.
type GroupingResult struct {
	Success         bool   `json:"success"`
	Error           string `json:"error,omitempty"`
	GroupID         string `json:"group_id,omitempty"`
	PrimaryName     string `json:"primary_name,omitempty"`
	PrimaryEmail    string `json:"primary_email,omitempty"`
	AliasesCount    int    `json:"aliases_count"`
	ConfidenceScore int    `json:"confidence_score"`
}

// GroupedDeveloper is a developer with its aliases, for listings and exports
type GroupedDeveloper struct {
	Developer    *Developer        `json:"developer"`
	Aliases      []*DeveloperAlias `json:"aliases"`
	TotalCommits int               `json:"total_commits"`
}

// ReconcileReport summarizes an orphan reconciliation pass
type ReconcileReport struct {
	Orphans           int `json:"orphans"`
	Reassigned        int `json:"reassigned"`
	DevelopersCreated int `json:"developers_created"`
	RemainingOrphans  int `json:"remaining_orphans"`
}

// CleanupReport summarizes a duplicate-collapse pass
type CleanupReport struct {
	AliasGroupsMerged     int `json:"alias_groups_merged"`
	AliasesDeleted        int `json:"aliases_deleted"`
	DeveloperGroupsMerged int `json:"developer_groups_merged"`
	DevelopersDeleted     int `json:"developers_deleted"`
	DanglingFixed         int `json:"dangling_fixed"`
}
