package db

import (
	"sort"

	"policyedge/models"
)

const (
	recentActivityLimit = 3
	// avgComplianceScore is a fixed figure until real scoring exists.
	avgComplianceScore = "85%"
)

// DashboardStats aggregates the owner's policies and the analyses run on them.
// Recent activity lists up to three uploads, newest upload date first;
// uploads on the same date keep their upload order.
func (db *Database) DashboardStats(ownerID int) models.DashboardStats {
	policies := db.Policies.ListForOwner(ownerID)

	owned := make(map[int]struct{}, len(policies))
	for _, p := range policies {
		owned[p.ID] = struct{}{}
	}

	sort.SliceStable(policies, func(i, j int) bool {
		return policies[i].UploadDate.Format(models.DateLayout) > policies[j].UploadDate.Format(models.DateLayout)
	})
	if len(policies) > recentActivityLimit {
		policies = policies[:recentActivityLimit]
	}

	activities := make([]models.RecentActivity, 0, len(policies))
	for _, p := range policies {
		activities = append(activities, models.RecentActivity{
			Type:       "upload",
			PolicyName: p.Name,
			Date:       p.UploadDate.Format(models.DateLayout),
		})
	}

	return models.DashboardStats{
		TotalPolicies:      len(owned),
		TotalAnalyses:      db.Analyses.CountForPolicies(owned),
		AvgComplianceScore: avgComplianceScore,
		RecentActivities:   activities,
	}
}
