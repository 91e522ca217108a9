package resume

type ResumeResponse struct {
	ID        string `json:"id"`
	FileName  string `json:"fileName"`
	FileURL   string `json:"fileUrl"`
	IsActive  bool   `json:"isActive"`
	CreatedAt string `json:"createdAt"`
}
