package db

import (
	"time"

	"github.com/rs/zerolog/log"

	"policyedge/models"
)

// Clock returns the current time. Tests replace it to get fixed dates.
type Clock func() time.Time

// Database groups the three in-memory registries.
// Nothing is persisted: all state is lost when the process exits.
type Database struct {
	Users    *UserStore
	Policies *PolicyStore
	Analyses *AnalysisStore
}

// Options tunes NewDatabase.
type Options struct {
	Clock        Clock // Defaults to time.Now
	SeedDemoUser bool  // Register DemoUser as user 1
}

// DemoUser is the account the service starts with when seeding is enabled.
var DemoUser = models.User{
	Name:     "Demo User",
	Email:    "demo@example.com",
	Password: "password123",
	Company:  strPtr("PolicyEdgeAI"),
}

// NewDatabase creates empty registries, optionally seeded with DemoUser.
func NewDatabase(opts Options) (*Database, error) {
	clock := opts.Clock
	if clock == nil {
		clock = time.Now
	}

	db := &Database{
		Users:    NewUserStore(),
		Policies: NewPolicyStore(clock),
		Analyses: NewAnalysisStore(clock),
	}

	if opts.SeedDemoUser {
		seeded, err := db.Users.Create(DemoUser)
		if err != nil {
			return nil, err
		}
		log.Info().Int("user_id", seeded.ID).Str("email", seeded.Email).Msg("seeded demo user")
	}

	return db, nil
}

func strPtr(s string) *string {
	return &s
}
