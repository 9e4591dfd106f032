package models

import "encoding/json"

// MarshalJSON renders UploadDate as a calendar date.
func (p Policy) MarshalJSON() ([]byte, error) {
	type alias Policy
	return json.Marshal(struct {
		alias
		UploadDate string `json:"upload_date"`
	}{alias(p), p.UploadDate.Format(DateLayout)})
}

// MarshalJSON renders CreatedAt in TimestampLayout.
func (r AnalysisResult) MarshalJSON() ([]byte, error) {
	type alias AnalysisResult
	return json.Marshal(struct {
		alias
		CreatedAt string `json:"created_at"`
	}{alias(r), r.CreatedAt.Format(TimestampLayout)})
}
