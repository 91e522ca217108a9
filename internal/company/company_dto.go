package company

type RegisterCompanyRequest struct {
	Name        string `json:"companyName" binding:"required,min=2,max=100"`
	Description string `json:"description" binding:"omitempty,max=1000"`
	Website     string `json:"website" binding:"omitempty,url"`
	Logo        string `json:"logo"`
	Location    string `json:"location"`
}

// UpdateCompanyRequest carries only the fields the caller wants changed.
type UpdateCompanyRequest struct {
	Name        *string `json:"companyName" binding:"omitempty,min=2,max=100"`
	Description *string `json:"description" binding:"omitempty,max=1000"`
	Website     *string `json:"website" binding:"omitempty,url"`
	Logo        *string `json:"logo"`
	Location    *string `json:"location"`
}

type CompanyResponse struct {
	ID          string `json:"id"`
	EmployerID  string `json:"employerId"`
	Name        string `json:"companyName"`
	Description string `json:"description,omitempty"`
	Website     string `json:"website,omitempty"`
	Logo        string `json:"logo,omitempty"`
	Location    string `json:"location,omitempty"`
	CreatedAt   string `json:"createdAt"`
}
