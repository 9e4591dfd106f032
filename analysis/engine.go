package analysis

import (
	"fmt"

	"policyedge/models"
)

// PolicyFinder resolves a policy scoped to its owner. It must return an
// error wrapping db.ErrNotFound both for missing and for foreign policies.
type PolicyFinder interface {
	GetOwned(ownerID, policyID int) (models.Policy, error)
}

// ResultStore persists and fetches analysis results.
type ResultStore interface {
	Create(result models.AnalysisResult) models.AnalysisResult
	GetByID(id int) (models.AnalysisResult, error)
}

// Engine runs analyses and serves stored results.
type Engine struct {
	policies PolicyFinder
	results  ResultStore
	strategy Strategy
}

// NewEngine wires an engine. A nil strategy means DefaultRules.
func NewEngine(policies PolicyFinder, results ResultStore, strategy Strategy) *Engine {
	if strategy == nil {
		strategy = DefaultRules()
	}
	return &Engine{policies: policies, results: results, strategy: strategy}
}

// Analyze runs the strategy against one of the owner's policies and stores
// the outcome as a new result. analysisType is recorded verbatim.
func (e *Engine) Analyze(ownerID, policyID int, analysisType string) (models.AnalysisResult, error) {
	policy, err := e.policies.GetOwned(ownerID, policyID)
	if err != nil {
		return models.AnalysisResult{}, err
	}

	bundle := e.strategy.Bundle(policy.Type)
	return e.results.Create(models.AnalysisResult{
		PolicyID:     policy.ID,
		AnalysisType: analysisType,
		Summary:      fmt.Sprintf(summaryTemplate, policy.Type),
		Compliance:   bundle.Compliance,
		Readability:  readability,
		Insights:     bundle.Insights,
	}), nil
}

// Result returns a stored result if its policy belongs to ownerID.
// A foreign result is reported exactly like a missing one.
func (e *Engine) Result(ownerID, analysisID int) (models.AnalysisResult, error) {
	result, err := e.results.GetByID(analysisID)
	if err != nil {
		return models.AnalysisResult{}, err
	}
	if _, err := e.policies.GetOwned(ownerID, result.PolicyID); err != nil {
		return models.AnalysisResult{}, fmt.Errorf("analysis %d: %w", analysisID, err)
	}
	return result, nil
}
