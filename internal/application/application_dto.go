package application

type ApplyRequest struct {
	CoverLetter string `json:"coverLetter" binding:"omitempty,max=2000"`
}

type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

type JobSummary struct {
	Title    string `json:"title"`
	Location string `json:"location"`
	JobType  string `json:"jobType"`
	Salary   Salary `json:"salary"`
	Status   string `json:"status"`
}

type Salary struct {
	Min      *float64 `json:"min,omitempty"`
	Max      *float64 `json:"max,omitempty"`
	Currency string   `json:"currency,omitempty"`
}

type ApplicantSummary struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone,omitempty"`
}

type ApplicationResponse struct {
	ID          string            `json:"id"`
	JobID       string            `json:"jobId"`
	ApplicantID string            `json:"applicantId"`
	CoverLetter string            `json:"coverLetter,omitempty"`
	ResumeURL   string            `json:"resumeUrl"`
	Status      string            `json:"status"`
	AppliedAt   string            `json:"appliedAt"`
	Job         *JobSummary       `json:"job,omitempty"`
	Applicant   *ApplicantSummary `json:"applicant,omitempty"`
}
