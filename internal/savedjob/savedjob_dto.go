package savedjob

type JobSummary struct {
	Title    string   `json:"title"`
	Location string   `json:"location"`
	JobType  string   `json:"jobType"`
	Min      *float64 `json:"salaryMin,omitempty"`
	Max      *float64 `json:"salaryMax,omitempty"`
	Currency string   `json:"currency,omitempty"`
	Status   string   `json:"status"`
}

type SavedJobResponse struct {
	ID      string      `json:"id"`
	JobID   string      `json:"jobId"`
	SavedAt string      `json:"savedAt"`
	Job     *JobSummary `json:"job,omitempty"`
}
