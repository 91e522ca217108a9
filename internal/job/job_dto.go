package job

type RangeInput struct {
	Min *float64 `json:"min" binding:"omitempty,min=0"`
	Max *float64 `json:"max" binding:"omitempty,min=0"`
}

type ExperienceInput struct {
	Min *int `json:"min" binding:"omitempty,min=0"`
	Max *int `json:"max" binding:"omitempty,min=0"`
}

type CreateJobRequest struct {
	Title       string          `json:"title" binding:"required,min=5,max=100"`
	Description string          `json:"description" binding:"required,min=20,max=5000"`
	Location    string          `json:"location" binding:"required"`
	JobType     string          `json:"jobType" binding:"required,oneof=full-time part-time internship contract"`
	Salary      RangeInput      `json:"salary"`
	Skills      []string        `json:"skills"`
	Experience  ExperienceInput `json:"experience"`
}

type UpdateJobRequest struct {
	Title       *string          `json:"title" binding:"omitempty,min=5,max=100"`
	Description *string          `json:"description" binding:"omitempty,min=20,max=5000"`
	Location    *string          `json:"location"`
	JobType     *string          `json:"jobType" binding:"omitempty,oneof=full-time part-time internship contract"`
	Salary      *RangeInput      `json:"salary"`
	Skills      *[]string        `json:"skills"`
	Experience  *ExperienceInput `json:"experience"`
}

// ListFilter narrows the public listing. Only active jobs are ever listed.
type ListFilter struct {
	Keyword  string
	Location string
	JobType  string
	Page     int
	Limit    int
}

type SalaryResponse struct {
	Min      *float64 `json:"min,omitempty"`
	Max      *float64 `json:"max,omitempty"`
	Currency string   `json:"currency,omitempty"`
}

type ExperienceResponse struct {
	Min *int `json:"min,omitempty"`
	Max *int `json:"max,omitempty"`
}

type JobResponse struct {
	ID             string             `json:"id"`
	Title          string             `json:"title"`
	Description    string             `json:"description"`
	CompanyID      string             `json:"companyId"`
	EmployerID     string             `json:"employerId"`
	Location       string             `json:"location"`
	JobType        string             `json:"jobType"`
	Salary         SalaryResponse     `json:"salary"`
	Skills         []string           `json:"skills"`
	Experience     ExperienceResponse `json:"experience"`
	Status         string             `json:"status"`
	CreatedAt      string             `json:"createdAt"`
	ApplicantCount *int64             `json:"applicantCount,omitempty"`
}

// JobListResponse matches the public listing contract: jobs plus page-count
// bookkeeping for the client.
type JobListResponse struct {
	Jobs        []JobResponse `json:"jobs"`
	CurrentPage int           `json:"currentPage"`
	TotalPages  int           `json:"totalPages"`
	TotalJobs   int64         `json:"totalJobs"`
}

type EmployerStatsResponse struct {
	TotalJobs         int64 `json:"totalJobs"`
	ActiveJobs        int64 `json:"activeJobs"`
	TotalApplications int64 `json:"totalApplications"`
}
