package models

import (
	"time"
)

const (
	// DateLayout is the wire format of policy upload dates.
	DateLayout = "2006-01-02"
	// TimestampLayout is the wire format of analysis creation times.
	TimestampLayout = "2006-01-02 15:04:05"

	// PolicyStatusUploaded is the only status a policy ever has.
	PolicyStatusUploaded = "Uploaded"
)

// User represents a registered account
type User struct {
	ID       int     `json:"id"`      // Sequential, assigned at registration
	Name     string  `json:"name"`
	Email    string  `json:"email"`   // Unique, used as the login key
	Password string  `json:"-"`       // Compared verbatim, never serialized
	Company  *string `json:"company"` // null when not supplied
}

// Policy represents an uploaded policy document owned by one user
type Policy struct {
	ID             int       `json:"id"`
	Name           string    `json:"name"`
	Type           string    `json:"type"` // Free text, e.g. "Privacy Policy"
	UserID         int       `json:"user_id"`
	UploadDate     time.Time `json:"-"`
	Status         string    `json:"status"`
	ContentPreview string    `json:"content_preview"` // At most the first 500 bytes, decoded
	Notes          *string   `json:"notes,omitempty"`
}

// PolicySummary is the list projection of a Policy.
type PolicySummary struct {
	ID             int     `json:"id"`
	Name           string  `json:"name"`
	Type           string  `json:"type"`
	UserID         int     `json:"user_id"`
	UploadDate     string  `json:"upload_date"`
	Status         string  `json:"status"`
	ContentPreview *string `json:"content_preview"` // First 100 characters, null when empty
}

// AnalysisResult is one (mock) analysis run against a policy.
// Many results may reference the same policy.
type AnalysisResult struct {
	ID           int               `json:"id"`
	PolicyID     int               `json:"policy_id"`
	AnalysisType string            `json:"analysis_type"`
	Summary      string            `json:"summary"`
	Compliance   map[string]string `json:"compliance"` // Regulation -> "NN% compliant"
	Readability  string            `json:"readability"`
	Insights     []string          `json:"insights"`
	CreatedAt    time.Time         `json:"-"`
}

// RecentActivity is one entry of the dashboard activity feed.
type RecentActivity struct {
	Type       string `json:"type"`
	PolicyName string `json:"policy_name"`
	Date       string `json:"date"`
}

// DashboardStats aggregates a user's policies and analyses.
type DashboardStats struct {
	TotalPolicies      int              `json:"total_policies"`
	TotalAnalyses      int              `json:"total_analyses"`
	AvgComplianceScore string           `json:"avg_compliance_score"`
	RecentActivities   []RecentActivity `json:"recent_activities"`
}
